package harness

import (
	"github.com/loov/hrtime"
	"time"
)

// Stopwatch measures elapsed time on the monotonic high resolution clock.
// Time of consecutive Start/Stop pairs is summed.
type Stopwatch struct {
	start   time.Duration
	total   time.Duration
	running bool
}

// Start ...
func (s *Stopwatch) Start() {
	if s.running {
		return
	}
	s.running = true
	s.start = hrtime.Now()
}

// Stop ...
func (s *Stopwatch) Stop() {
	if !s.running {
		return
	}
	s.total += hrtime.Since(s.start)
	s.running = false
}

// Elapsed returns the summed time, including the current span if running.
func (s *Stopwatch) Elapsed() time.Duration {
	if s.running {
		return s.total + hrtime.Since(s.start)
	}
	return s.total
}

// Reset ...
func (s *Stopwatch) Reset() {
	*s = Stopwatch{}
}

// Millis converts d into fractional milliseconds.
func Millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
