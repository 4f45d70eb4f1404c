package harness

import (
	"fmt"
	"io"
	"strings"
	"time"
)

var (
	titleRule  = strings.Repeat("-=", 30)
	resultRule = strings.Repeat("-", 73)
)

// Result is one report line.
type Result struct {
	Scenario ScenarioName
	Label    string
	Checksum uint64
	Elapsed  time.Duration
}

// Millis ...
func (r Result) Millis() float64 {
	return Millis(r.Elapsed)
}

// Reporter writes the console report. The first write error is kept and
// every later write is skipped.
type Reporter struct {
	w   io.Writer
	err error
}

// NewReporter ...
func NewReporter(w io.Writer) *Reporter {
	return &Reporter{w: w}
}

func (r *Reporter) printf(format string, args ...interface{}) {
	if r.err != nil {
		return
	}
	_, r.err = fmt.Fprintf(r.w, format, args...)
}

// Header writes the heading block of a scenario.
func (r *Reporter) Header(s Scenario) {
	r.printf("%s\n", titleRule)
	r.printf("  %s()\n", s.Title())
	r.printf("%s\n", titleRule)
	r.printf("\n")
}

// Result writes the block of one implementation.
func (r *Reporter) Result(res Result) {
	r.printf("%s\n", resultRule)
	r.printf(" %-28s  sum = %-10d  time: %8.2f ms\n", res.Label, res.Checksum, res.Millis())
	r.printf("%s\n", resultRule)
	r.printf("\n")
}

// Err returns the first write error.
func (r *Reporter) Err() error {
	return r.err
}
