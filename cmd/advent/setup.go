package main

import (
	"fmt"

	"github.com/fwojciec/advent"
	"github.com/fwojciec/advent/scaffold"
)

// Run executes the setup command.
func (c *SetupCmd) Run(deps *Dependencies) error {
	result, err := deps.Scaffolder.Run(deps.Ctx, c.Day)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", errorMessage(err))
		switch advent.ErrorCode(err) {
		case advent.EUNAUTHORIZED:
			fmt.Fprintln(deps.Stderr, "Hint: the session cookie may have expired, copy a fresh one into AOC_SESSION")
		case advent.ENOTFOUND:
			fmt.Fprintf(deps.Stderr, "Hint: %s may not be unlocked yet\n", c.Day)
		}
		// Later runs see the directory and only refresh the problem.
		if result.Mode == advent.ModeFresh && result.Reached(scaffold.StateStructureChecked) {
			fmt.Fprintf(deps.Stderr, "Hint: remove %s to redo the full setup, otherwise the next run only updates the problem\n", result.DataDir)
		}
		return &reportedError{err: err}
	}

	fmt.Fprintf(deps.Stdout, "%s run for %s\n", result.Mode, c.Day)
	for _, a := range result.Artifacts {
		fmt.Fprintf(deps.Stdout, "  %-12s %s\n", a.Name, a.Result)
	}

	return nil
}
