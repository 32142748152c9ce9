// Command seqscan checks a delimited text file against a YAML column schema
// and prints every failing field.
//
// Configuration comes from the environment, optionally seeded from ./.env:
//
//	SEQSCAN_SCHEMA         path to the schema file (required)
//	SEQSCAN_INPUT          input file, "-" or empty for standard input
//	SEQSCAN_MAX_ISSUES     issues to print before truncating (default 100)
//	SEQSCAN_MAX_LINE_SIZE  longest accepted line in bytes (default 1 MiB)
//	APP_ENV                development, staging or production
//	APP_NAME               service name attached to log records
//
// The exit status is 0 when every line passed, 1 when any line failed and
// 2 when the scan could not run.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/charseq/pkg/config"
	"github.com/dmitrymomot/charseq/pkg/ingest"
	"github.com/dmitrymomot/charseq/pkg/logger"
	"github.com/dmitrymomot/charseq/pkg/validator"
)

const (
	exitOK      = 0
	exitInvalid = 1
	exitSetup   = 2
)

type Config struct {
	AppName     string `env:"APP_NAME" envDefault:"seqscan"`
	Env         string `env:"APP_ENV" envDefault:"development"`
	Schema      string `env:"SEQSCAN_SCHEMA,required"`
	Input       string `env:"SEQSCAN_INPUT"`
	MaxIssues   int    `env:"SEQSCAN_MAX_ISSUES" envDefault:"100"`
	MaxLineSize int    `env:"SEQSCAN_MAX_LINE_SIZE" envDefault:"1048576"`
}

func (c Config) validate() error {
	return validator.Apply(
		validator.MinNum("SEQSCAN_MAX_ISSUES", c.MaxIssues, 1),
		validator.MinNum("SEQSCAN_MAX_LINE_SIZE", c.MaxLineSize, 64),
	)
}

type runIDKey struct{}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, stdin io.Reader, stdout, stderr io.Writer) int {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		fmt.Fprintf(stderr, "seqscan: %v\n", err)
		return exitSetup
	}
	if err := cfg.validate(); err != nil {
		fmt.Fprintf(stderr, "seqscan: %v\n", err)
		return exitSetup
	}

	log := logger.New(
		logger.WithEnvironment(cfg.Env, cfg.AppName),
		logger.WithOutput(stderr),
		logger.WithContextValue("run_id", runIDKey{}),
	)
	ctx = context.WithValue(ctx, runIDKey{}, uuid.NewString())

	schema, err := ingest.LoadSchemaFile(cfg.Schema)
	if err != nil {
		log.ErrorContext(ctx, "load schema", logger.Path(cfg.Schema), logger.Error(err))
		return exitSetup
	}

	sc, err := ingest.NewScanner(schema,
		ingest.WithLogger(log),
		ingest.WithMaxIssues(cfg.MaxIssues),
		ingest.WithMaxLineSize(cfg.MaxLineSize),
	)
	if err != nil {
		log.ErrorContext(ctx, "build scanner", logger.Error(err))
		return exitSetup
	}

	in, closeInput, err := openInput(cfg.Input, stdin)
	if err != nil {
		log.ErrorContext(ctx, "open input", logger.Path(cfg.Input), logger.Error(err))
		return exitSetup
	}
	defer closeInput()

	start := time.Now()
	rep, err := sc.Scan(ctx, in)
	if err != nil {
		log.ErrorContext(ctx, "scan aborted", logger.Path(cfg.Input), logger.Error(err))
		return exitSetup
	}
	log.InfoContext(ctx, "scan complete",
		logger.Path(cfg.Input),
		logger.Duration(time.Since(start)),
		logger.Group("report",
			slog.Int("lines", rep.Lines),
			slog.Int("valid", rep.Valid),
			slog.Int("invalid", rep.Invalid),
			slog.Int("skipped", rep.Skipped),
		),
	)

	printReport(stdout, rep)
	if rep.Invalid > 0 {
		return exitInvalid
	}
	return exitOK
}

func openInput(path string, stdin io.Reader) (io.Reader, func(), error) {
	if path == "" || path == "-" {
		return stdin, func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { _ = f.Close() }, nil
}

func printReport(w io.Writer, rep *ingest.Report) {
	for _, issue := range rep.Issues {
		fmt.Fprintln(w, issue.Error())
	}
	if rep.Truncated {
		fmt.Fprintln(w, "... more issues omitted")
	}
	fmt.Fprintf(w, "%d lines, %d valid, %d invalid, %d skipped\n",
		rep.Lines, rep.Valid, rep.Invalid, rep.Skipped)
}
