package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/pflag"
	"golang.org/x/term"

	"inflect/internal/config"
	"inflect/internal/logging"
	"inflect/pkg/inflection"
)

var (
	// Version is set at build time via -ldflags "-X main.Version=...".
	Version = "dev"
	Commit  = "none"
)

var errNoInput = errors.New("no words given and stdin is a terminal")

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		slog.Error("inflect error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	cfg, fs, err := config.Load(args)
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if showVersion, _ := fs.GetBool("version"); showVersion {
		fmt.Fprintf(stdout, "inflect %s (%s)\n", Version, Commit)
		return nil
	}

	validationResult := cfg.Validate()
	for _, warn := range validationResult.Warnings {
		slog.Warn("configuration warning",
			slog.String("field", warn.Field),
			slog.String("message", warn.Message),
			slog.String("hint", warn.Hint),
		)
	}
	if validationResult.HasErrors() {
		for _, err := range validationResult.Errors {
			slog.Error("configuration error",
				slog.String("field", err.Field),
				slog.String("message", err.Message),
				slog.String("hint", err.Hint),
			)
		}
		return fmt.Errorf("configuration validation failed")
	}

	logger := logging.NewLogger(cfg.Logging, nil)

	inf, err := inflection.New(cfg.Inflection, logger.Logger)
	if err != nil {
		return fmt.Errorf("failed to build inflector: %w", err)
	}

	positional := fs.Args()
	if len(positional) == 0 {
		return fmt.Errorf("missing operation (one of: %s)", operationNames())
	}
	op, ok := lookupOperation(positional[0])
	if !ok {
		return fmt.Errorf("unknown operation %q (one of: %s)", positional[0], operationNames())
	}

	ctx := logging.WithLogger(context.Background(), logger.WithFields(slog.String("operation", op.name)))
	t := transformer{op: op, inf: inf, opts: cfg.Transform}

	words := positional[1:]
	if len(words) > 0 {
		return t.words(ctx, words, stdout)
	}
	if f, ok := stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return errNoInput
	}
	return t.lines(ctx, stdin, stdout)
}
