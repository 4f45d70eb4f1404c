package harness

//go:generate moq -out mock_test.go -pkg harness .. Table Resizable

import (
	"context"
	"errors"
	"fmt"
	"github.com/QuangTung97/hashbench"
	"github.com/QuangTung97/hashbench/corpus"
	"golang.org/x/exp/slices"
	"io"
	"log/slog"
)

// ErrScenarioPanic wraps a panic raised by a table during a scenario
var ErrScenarioPanic = errors.New("harness: scenario panicked")

// Runner runs scenarios over implementations and writes the report.
type Runner struct {
	cfg       Config
	corpus    *corpus.Corpus
	impls     []hashbench.Implementation
	scenarios []Scenario

	reporter *Reporter
	logger   *slog.Logger
}

// RunnerOption ...
type RunnerOption func(r *Runner)

// WithOutput sets the report writer, io.Discard by default.
func WithOutput(w io.Writer) RunnerOption {
	return func(r *Runner) {
		r.reporter = NewReporter(w)
	}
}

// WithLogger ...
func WithLogger(logger *slog.Logger) RunnerOption {
	return func(r *Runner) {
		r.logger = logger
	}
}

// WithImplementations replaces hashbench.Implementations().
func WithImplementations(impls ...hashbench.Implementation) RunnerOption {
	return func(r *Runner) {
		r.impls = impls
	}
}

// WithScenarios replaces Scenarios().
func WithScenarios(scenarios ...Scenario) RunnerOption {
	return func(r *Runner) {
		r.scenarios = scenarios
	}
}

// NewRunner ...
func NewRunner(cfg Config, c *corpus.Corpus, options ...RunnerOption) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if c == nil {
		return nil, fmt.Errorf("%w: nil corpus", ErrInvalidConfig)
	}

	r := &Runner{
		cfg:       cfg,
		corpus:    c,
		impls:     hashbench.Implementations(),
		scenarios: Scenarios(),
		reporter:  NewReporter(io.Discard),
		logger:    slog.New(slog.DiscardHandler),
	}
	for _, fn := range options {
		fn(r)
	}
	return r, nil
}

// Run runs every scenario in order. Scenario failures are logged and skipped,
// only context cancellation and report write errors stop the run.
func (r *Runner) Run(ctx context.Context) ([]Result, error) {
	r.logger.Info("benchmark started",
		slog.String("mode", r.cfg.Mode()),
		slog.Int64("iterations", r.cfg.Iterations),
		slog.Int("corpus_size", r.corpus.Len()),
		slog.Int("implementations", len(r.impls)),
	)

	var results []Result
	for _, s := range r.scenarios {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		scenarioResults, err := r.RunScenario(s)
		results = append(results, scenarioResults...)
		if err != nil {
			return results, err
		}
	}
	return results, nil
}

// RunScenario runs one scenario for every implementation and writes its
// report block. Implementations without Resize are skipped by rehash
// scenarios.
func (r *Runner) RunScenario(s Scenario) ([]Result, error) {
	repeat := r.cfg.RepeatFor(s.Name, r.corpus.Len())
	r.logger.Debug("scenario started", slog.String("scenario", string(s.Name)), slog.Int64("repeat", repeat))

	r.reporter.Header(s)

	var results []Result
	for _, impl := range r.impls {
		m, err := r.measure(s, repeat, impl)
		if errors.Is(err, ErrNotResizable) {
			r.logger.Debug("implementation skipped, not resizable",
				slog.String("scenario", string(s.Name)),
				slog.String("implementation", impl.Label),
			)
			continue
		}
		if err != nil {
			r.logger.Warn("scenario aborted",
				slog.String("scenario", string(s.Name)),
				slog.String("implementation", impl.Label),
				slog.Any("error", err),
			)
			continue
		}

		res := Result{
			Scenario: s.Name,
			Label:    impl.Label,
			Checksum: m.Checksum,
			Elapsed:  m.Elapsed,
		}
		r.reporter.Result(res)
		results = append(results, res)
	}
	return results, r.reporter.Err()
}

// measure builds a fresh workload outside of any timed region. Panics of the
// factory or the table become ErrScenarioPanic.
func (r *Runner) measure(s Scenario, repeat int64, impl hashbench.Implementation) (m Measurement, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("%w: %v", ErrScenarioPanic, p)
		}
	}()

	w := r.corpus.Workload()
	return s.Run(w, repeat, impl.New)
}

// SelectScenarios returns the scenarios with the given names in run order.
// An empty list selects every scenario.
func SelectScenarios(names []string) ([]Scenario, error) {
	all := Scenarios()
	if len(names) == 0 {
		return all, nil
	}

	for _, name := range names {
		known := slices.ContainsFunc(all, func(s Scenario) bool {
			return string(s.Name) == name
		})
		if !known {
			return nil, fmt.Errorf("%w: %q", ErrUnknownScenario, name)
		}
	}

	var result []Scenario
	for _, s := range all {
		if slices.Contains(names, string(s.Name)) {
			result = append(result, s)
		}
	}
	return result, nil
}

// SelectImplementations keeps the implementations whose label is listed.
// An empty list keeps all of them.
func SelectImplementations(impls []hashbench.Implementation, labels []string) ([]hashbench.Implementation, error) {
	if len(labels) == 0 {
		return impls, nil
	}

	var result []hashbench.Implementation
	for _, impl := range impls {
		if slices.Contains(labels, impl.Label) {
			result = append(result, impl)
		}
	}
	if len(result) != len(labels) {
		return nil, fmt.Errorf("%w: unknown implementation in %q", ErrInvalidConfig, labels)
	}
	return result, nil
}
