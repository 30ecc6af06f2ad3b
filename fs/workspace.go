// Package fs lays out puzzle workspaces on the local filesystem.
package fs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/advent"
)

// Ensure Workspace implements advent.Workspace at compile time.
var _ advent.Workspace = (*Workspace)(nil)

// Workspace writes puzzle artifacts below a root directory:
//
//	data/aoc<year>/day<N>/problem.md
//	data/aoc<year>/day<N>/example<K>.txt
//	data/aoc<year>/day<N>/input.txt
//	src/aoc<year>/day<N>.<ext>
type Workspace struct {
	root string
	lang *Language
}

// NewWorkspace creates a Workspace rooted at root that generates stubs in lang.
func NewWorkspace(root string, lang *Language) *Workspace {
	return &Workspace{root: root, lang: lang}
}

func yearDir(day advent.Day) string {
	return fmt.Sprintf("aoc%d", day.Year)
}

// Paths returns the artifact locations for the day.
func (w *Workspace) Paths(day advent.Day) advent.Paths {
	dataDir := filepath.Join(w.root, "data", yearDir(day), fmt.Sprintf("day%d", day.Day))
	return advent.Paths{
		DataDir: dataDir,
		Problem: filepath.Join(dataDir, "problem.md"),
		Input:   filepath.Join(dataDir, "input.txt"),
		Stub:    filepath.Join(w.root, "src", yearDir(day), fmt.Sprintf("day%d.%s", day.Day, w.lang.Ext)),
	}
}

// ExamplePath returns the location of the example with the given 1-based index.
func (w *Workspace) ExamplePath(day advent.Day, index int) string {
	return filepath.Join(w.Paths(day).DataDir, fmt.Sprintf("example%d.txt", index))
}

// CreateDayDir creates the day's data directory. Parent directories are
// created as needed; the day directory itself is created with a single
// Mkdir so an existing one is reported rather than reused silently.
func (w *Workspace) CreateDayDir(day advent.Day) (advent.CreateResult, error) {
	dir := w.Paths(day).DataDir

	if err := os.MkdirAll(filepath.Dir(dir), 0755); err != nil {
		return advent.Created, err
	}

	err := os.Mkdir(dir, 0755)
	if err == nil {
		return advent.Created, nil
	}
	if !errors.Is(err, os.ErrExist) {
		return advent.Created, err
	}

	info, statErr := os.Stat(dir)
	if statErr != nil {
		return advent.Created, statErr
	}
	if !info.IsDir() {
		return advent.Created, advent.Errorf(advent.EINVALID, "%s exists and is not a directory", dir)
	}
	return advent.AlreadyExists, nil
}

// WriteProblem overwrites problem.md.
func (w *Workspace) WriteProblem(day advent.Day, content string) (advent.WriteResult, error) {
	return overwrite(w.Paths(day).Problem, content)
}

// WriteExample overwrites example<index>.txt.
func (w *Workspace) WriteExample(day advent.Day, index int, content string) (advent.WriteResult, error) {
	if index < 1 {
		return advent.Skipped, advent.Errorf(advent.EINVALID, "example index must be positive, got %d", index)
	}
	return overwrite(w.ExamplePath(day, index), content)
}

// WriteInput writes input.txt unless it already exists.
func (w *Workspace) WriteInput(day advent.Day, content string) (advent.WriteResult, error) {
	return writeIfAbsent(w.Paths(day).Input, content)
}

// WriteStub writes the solution stub unless it already exists.
func (w *Workspace) WriteStub(day advent.Day) (advent.WriteResult, error) {
	content, err := w.RenderStub(day)
	if err != nil {
		return advent.Skipped, err
	}
	return writeIfAbsent(w.Paths(day).Stub, content)
}

// RenderStub returns the stub source for the day without touching disk.
func (w *Workspace) RenderStub(day advent.Day) (string, error) {
	return w.lang.Render(day)
}

// overwrite always writes content to path. The result tells whether the
// previous content differed.
func overwrite(path, content string) (advent.WriteResult, error) {
	result := advent.Written
	if old, err := os.ReadFile(path); err == nil && xxhash.Sum64(old) == xxhash.Sum64String(content) {
		result = advent.Unchanged
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return advent.Written, err
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return advent.Written, err
	}
	return result, nil
}

// writeIfAbsent creates path with content. An existing file is left as is.
func writeIfAbsent(path, content string) (advent.WriteResult, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return advent.Skipped, err
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if errors.Is(err, os.ErrExist) {
		return advent.Skipped, nil
	} else if err != nil {
		return advent.Skipped, err
	}

	if _, err := f.WriteString(content); err != nil {
		_ = f.Close()
		return advent.Skipped, err
	}
	if err := f.Close(); err != nil {
		return advent.Skipped, err
	}
	return advent.Written, nil
}
