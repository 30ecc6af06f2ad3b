package main

import (
	"context"
	"io"
	"time"

	"github.com/fwojciec/advent"
	"github.com/fwojciec/advent/scaffold"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx        context.Context
	Stdout     io.Writer
	Stderr     io.Writer
	Scaffolder *scaffold.Scaffolder
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Year    int           `arg:"" help:"Puzzle year (2015 or later)"`
	Day     int           `arg:"" help:"Puzzle day (1-25)"`
	Dir     string        `short:"d" default:"." help:"Workspace root directory"`
	Lang    string        `short:"l" default:"rust" enum:"rust,go" help:"Language of the generated solution stub (${enum})"`
	BaseURL string        `name:"base-url" default:"https://adventofcode.com" help:"Puzzle site root"`
	Timeout time.Duration `short:"t" default:"30s" help:"HTTP request timeout"`
	Rate    float64       `default:"1" help:"Maximum requests per second, 0 disables throttling"`
	Verbose bool          `short:"v" help:"Log request details"`
}

// SetupCmd scaffolds or refreshes one puzzle workspace.
type SetupCmd struct {
	Day advent.Day
}
