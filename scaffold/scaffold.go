// Package scaffold sequences fetching, extraction, rendering and writing
// into the fresh-run and update-run workflows.
package scaffold

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/fwojciec/advent"
)

// State is a step of a scaffolding run.
type State int

const (
	StateInit State = iota
	StateStructureChecked
	StateProblemFetched
	StateInputFetched
	StateProgramSetup
	StateDone
)

var stateNames = map[State]string{
	StateInit:             "init",
	StateStructureChecked: "structure checked",
	StateProblemFetched:   "problem fetched",
	StateInputFetched:     "input fetched",
	StateProgramSetup:     "program setup",
	StateDone:             "done",
}

func (s State) String() string {
	return stateNames[s]
}

// Artifact records what happened to one file.
type Artifact struct {
	Name   string
	Result advent.WriteResult
}

// Result describes a run. It is returned even when the run fails so
// callers can report how far it got.
type Result struct {
	Day       advent.Day
	Mode      advent.Mode
	DataDir   string
	States    []State
	Artifacts []Artifact
	Warnings  []string
}

// Reached reports whether the run passed through s.
func (r *Result) Reached(s State) bool {
	for _, got := range r.States {
		if got == s {
			return true
		}
	}
	return false
}

// Scaffolder builds or refreshes the workspace of one puzzle.
type Scaffolder struct {
	Fetcher   advent.Fetcher
	Extractor advent.ArticleExtractor
	Converter advent.Converter
	Workspace advent.Workspace
	Logger    *slog.Logger

	// BaseURL is the puzzle site root. Defaults to advent.DefaultBaseURL.
	BaseURL string
}

// Run scaffolds the given day. A fresh run creates the directory and writes
// the problem, examples, input and stub. When the directory already exists
// only the problem and examples are refreshed. The first fetch or I/O error
// stops the run; files written before it are kept.
func (s *Scaffolder) Run(ctx context.Context, day advent.Day) (*Result, error) {
	r := &Result{Day: day, States: []State{StateInit}}

	if err := day.Validate(); err != nil {
		return r, err
	}
	r.DataDir = s.Workspace.Paths(day).DataDir

	s.step("Setting up structure", day)
	created, err := s.Workspace.CreateDayDir(day)
	if err != nil {
		return r, fmt.Errorf("setting up structure: %w", err)
	}
	if created == advent.AlreadyExists {
		r.Mode = advent.ModeUpdate
		s.warn(r, fmt.Sprintf("path %s already exists, updating problem only", r.DataDir))
	}
	r.States = append(r.States, StateStructureChecked)

	s.step("Downloading problem", day)
	if err := s.downloadProblem(ctx, day, r); err != nil {
		return r, fmt.Errorf("downloading problem: %w", err)
	}
	r.States = append(r.States, StateProblemFetched)

	if r.Mode == advent.ModeFresh {
		s.step("Downloading input", day)
		if err := s.downloadInput(ctx, day, r); err != nil {
			return r, fmt.Errorf("downloading input: %w", err)
		}
		r.States = append(r.States, StateInputFetched)

		s.step("Setting up program", day)
		if err := s.setupProgram(day, r); err != nil {
			return r, fmt.Errorf("setting up program: %w", err)
		}
		r.States = append(r.States, StateProgramSetup)
	}

	r.States = append(r.States, StateDone)
	s.step("Building successful", day)
	return r, nil
}

func (s *Scaffolder) downloadProblem(ctx context.Context, day advent.Day, r *Result) error {
	html, err := s.Fetcher.Fetch(ctx, day.URL(s.baseURL()))
	if err != nil {
		return err
	}

	articles, err := s.Extractor.ExtractArticles(html)
	if err != nil {
		return err
	}
	if len(articles) == 0 {
		s.warn(r, "there are no articles in the html")
	}

	problem, err := advent.RenderProblem(s.Converter, articles)
	if err != nil {
		return err
	}
	result, err := s.Workspace.WriteProblem(day, problem)
	if err != nil {
		return err
	}
	r.Artifacts = append(r.Artifacts, Artifact{Name: "problem.md", Result: result})

	for i, article := range articles {
		example, ok := advent.RenderExample(article, i+1)
		if !ok {
			s.warn(r, fmt.Sprintf("article %d has no example", i+1))
			continue
		}
		result, err := s.Workspace.WriteExample(day, example.Index, example.Content)
		if err != nil {
			return err
		}
		r.Artifacts = append(r.Artifacts, Artifact{Name: fmt.Sprintf("example%d.txt", example.Index), Result: result})
	}

	return nil
}

func (s *Scaffolder) downloadInput(ctx context.Context, day advent.Day, r *Result) error {
	input, err := s.Fetcher.Fetch(ctx, day.InputURL(s.baseURL()))
	if err != nil {
		return err
	}

	result, err := s.Workspace.WriteInput(day, input)
	if err != nil {
		return err
	}
	if result == advent.Skipped {
		s.warn(r, fmt.Sprintf("file %s already exists", s.Workspace.Paths(day).Input))
	}
	r.Artifacts = append(r.Artifacts, Artifact{Name: "input.txt", Result: result})
	return nil
}

func (s *Scaffolder) setupProgram(day advent.Day, r *Result) error {
	result, err := s.Workspace.WriteStub(day)
	if err != nil {
		return err
	}
	if result == advent.Skipped {
		s.warn(r, fmt.Sprintf("file %s already exists", s.Workspace.Paths(day).Stub))
	}
	r.Artifacts = append(r.Artifacts, Artifact{Name: "stub", Result: result})
	return nil
}

func (s *Scaffolder) baseURL() string {
	if s.BaseURL == "" {
		return advent.DefaultBaseURL
	}
	return s.BaseURL
}

func (s *Scaffolder) step(step string, day advent.Day) {
	s.logger().Info(fmt.Sprintf("%s for %s...", step, day))
}

func (s *Scaffolder) warn(r *Result, msg string) {
	r.Warnings = append(r.Warnings, msg)
	s.logger().Warn(msg)
}

func (s *Scaffolder) logger() *slog.Logger {
	if s.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return s.Logger
}
