package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"github.com/QuangTung97/hashbench"
	"github.com/QuangTung97/hashbench/corpus"
	"github.com/QuangTung97/hashbench/harness"
	"log/slog"
	"os"
	"os/signal"
	"strings"
)

type listFlag []string

func (l *listFlag) String() string {
	return strings.Join(*l, ";")
}

func (l *listFlag) Set(value string) error {
	*l = append(*l, value)
	return nil
}

func splitList(s string) []string {
	var result []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			result = append(result, part)
		}
	}
	return result
}

func run(args []string) error {
	fs := flag.NewFlagSet("hashbench", flag.ContinueOnError)
	debug := fs.Bool("debug", false, "low iteration mode for fast correctness checks")
	iterations := fs.Int64("iterations", 0, "total operation budget per scenario (0 = mode default)")
	repeat := fs.Int64("repeat", 0, "outer iteration count of every scenario (0 = derived from budget)")
	scenarios := fs.String("scenario", "", "comma separated scenarios to run (default all)")
	verbose := fs.Bool("v", false, "debug logging")
	var impls listFlag
	fs.Var(&impls, "impl", "implementation label to run, repeatable (default all)")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	cfg := harness.DefaultConfig()
	if *debug {
		cfg = harness.DebugConfig()
	}
	if *iterations > 0 {
		cfg.Iterations = *iterations
	}
	cfg.Repeat = *repeat

	selected, err := harness.SelectScenarios(splitList(*scenarios))
	if err != nil {
		return err
	}
	implementations, err := harness.SelectImplementations(hashbench.Implementations(), impls)
	if err != nil {
		return err
	}

	runner, err := harness.NewRunner(cfg, corpus.Default(),
		harness.WithOutput(os.Stdout),
		harness.WithLogger(logger),
		harness.WithScenarios(selected...),
		harness.WithImplementations(implementations...),
	)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	results, err := runner.Run(ctx)
	if err != nil {
		return err
	}
	logger.Info("benchmark finished", slog.Int("results", len(results)))
	return nil
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "hashbench:", err)
		os.Exit(1)
	}
}
