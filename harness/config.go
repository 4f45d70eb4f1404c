package harness

import (
	"errors"
	"fmt"
)

const (
	// ReleaseIterations is the total operation budget of a release run
	ReleaseIterations int64 = 3000000
	// DebugIterations is the total operation budget of a debug run
	DebugIterations int64 = 10000
	// DebugRepeat is the fixed outer iteration count of most scenarios in debug mode
	DebugRepeat int64 = 100
)

// ErrInvalidConfig ...
var ErrInvalidConfig = errors.New("harness: invalid config")

// Config controls how long every scenario runs.
type Config struct {
	// Release selects budget-derived repeat counts for every scenario.
	// In debug mode most scenarios use DebugRepeat.
	Release bool

	// Iterations is the target number of basic operations per scenario.
	Iterations int64

	// Repeat overrides the outer iteration count of every scenario when > 0.
	// rehash2 still runs half of it.
	Repeat int64
}

// DefaultConfig is the release configuration.
func DefaultConfig() Config {
	return Config{
		Release:    true,
		Iterations: ReleaseIterations,
	}
}

// DebugConfig is the low iteration configuration for fast correctness checks.
func DebugConfig() Config {
	return Config{
		Release:    false,
		Iterations: DebugIterations,
	}
}

// Validate ...
func (c Config) Validate() error {
	if c.Iterations < 1 {
		return fmt.Errorf("%w: iterations must be >= 1, got %d", ErrInvalidConfig, c.Iterations)
	}
	if c.Repeat < 0 {
		return fmt.Errorf("%w: repeat must be >= 0, got %d", ErrInvalidConfig, c.Repeat)
	}
	return nil
}

// Mode ...
func (c Config) Mode() string {
	if c.Release {
		return "release"
	}
	return "debug"
}

// RepeatFor returns the outer iteration count of a scenario over a corpus
// of corpusSize keys. The result is never < 1.
func (c Config) RepeatFor(name ScenarioName, corpusSize int) int64 {
	var repeat int64
	switch {
	case c.Repeat > 0:
		repeat = c.Repeat
	case name == Find || c.Release:
		repeat = c.Iterations / int64(corpusSize)
	default:
		repeat = DebugRepeat
	}

	if name == Rehash2 {
		repeat /= 2
	}
	if repeat < 1 {
		return 1
	}
	return repeat
}
