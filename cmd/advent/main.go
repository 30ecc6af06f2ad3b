package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/advent"
	"github.com/fwojciec/advent/fs"
	"github.com/fwojciec/advent/goquery"
	"github.com/fwojciec/advent/htmltomarkdown"
	adventhttp "github.com/fwojciec/advent/http"
	"github.com/fwojciec/advent/scaffold"
	adventslog "github.com/fwojciec/advent/slog"
)

// SessionEnv is the environment variable holding the session cookie value.
const SessionEnv = "AOC_SESSION"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Session token. Set before calling Run().
	Session string
}

// NewMain returns a new instance of Main with the session read from the environment.
func NewMain() *Main {
	return &Main{
		Session: os.Getenv(SessionEnv),
	}
}

// Run executes the CLI with the given arguments. Failures are reported on
// stderr before being returned.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	err := m.run(ctx, args, stdout, stderr)
	var reported *reportedError
	if err != nil && !errors.As(err, &reported) {
		fmt.Fprintf(stderr, "error: %s\n", errorMessage(err))
	}
	return err
}

func (m *Main) run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("advent"),
		kong.Description("Set up the workspace for one Advent of Code puzzle"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle no arguments
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no arguments provided")
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	if m.Session == "" {
		return advent.Errorf(advent.ECONFIG, "%s not set, please export your session cookie", SessionEnv)
	}

	lang, err := fs.LookupLanguage(cli.Lang)
	if err != nil {
		return err
	}

	logger := newLogger(stderr, cli.Verbose)

	fetcher, err := adventhttp.NewFetcher(m.Session,
		adventhttp.WithBaseURL(cli.BaseURL),
		adventhttp.WithTimeout(cli.Timeout),
		adventhttp.WithRateLimit(cli.Rate),
	)
	if err != nil {
		return err
	}
	defer fetcher.Close()

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Scaffolder: &scaffold.Scaffolder{
			Fetcher:   adventslog.NewLoggingFetcher(fetcher, logger),
			Extractor: goquery.NewArticleExtractor(),
			Converter: htmltomarkdown.NewConverter(htmltomarkdown.WithDomain(cli.BaseURL)),
			Workspace: fs.NewWorkspace(cli.Dir, lang),
			Logger:    logger,
			BaseURL:   cli.BaseURL,
		},
	}

	cmd := &SetupCmd{
		Day: advent.Day{Year: cli.Year, Day: cli.Day},
	}

	return cmd.Run(deps)
}

// reportedError marks an error a command has already printed.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }

func (e *reportedError) Unwrap() error { return e.err }

// errorMessage returns the user-facing message of err. Application errors
// show their message only; anything else is shown in full.
func errorMessage(err error) string {
	if advent.ErrorCode(err) == advent.EINTERNAL {
		return err.Error()
	}
	return advent.ErrorMessage(err)
}

// newLogger returns a text logger without timestamps, suited to step narration.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && len(groups) == 0 {
				return slog.Attr{}
			}
			return a
		},
	}))
}
