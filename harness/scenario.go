package harness

import (
	"errors"
	"fmt"
	"github.com/QuangTung97/hashbench"
	"github.com/QuangTung97/hashbench/corpus"
	"time"
)

// ScenarioName ...
type ScenarioName string

// Scenario names in run order
const (
	Find        ScenarioName = "find"
	Insert      ScenarioName = "insert"
	Erase       ScenarioName = "erase"
	InsertErase ScenarioName = "insert_erase"
	Rehash      ScenarioName = "rehash"
	Rehash2     ScenarioName = "rehash2"
)

const (
	rehashFirstBucketCount = 128
	rehashDoublings        = 7
)

var (
	// ErrNotResizable is returned by rehash scenarios for a table without Resize
	ErrNotResizable = errors.New("harness: table is not resizable")
	// ErrUnknownScenario ...
	ErrUnknownScenario = errors.New("harness: unknown scenario")
)

// Measurement is the outcome of one scenario on one implementation.
type Measurement struct {
	Checksum uint64
	Elapsed  time.Duration
}

type scenarioFunc func(w corpus.Workload, repeat int64, newTable hashbench.Factory) (Measurement, error)

// Scenario is one named benchmark with its own timed region.
type Scenario struct {
	Name ScenarioName

	// NeedsResize is set for scenarios that require hashbench.Resizable.
	NeedsResize bool

	run scenarioFunc
}

// Title is the scenario heading of the report.
func (s Scenario) Title() string {
	return "hashtable_" + string(s.Name) + "_benchmark"
}

// Run measures newTable over w.
func (s Scenario) Run(w corpus.Workload, repeat int64, newTable hashbench.Factory) (Measurement, error) {
	return s.run(w, repeat, newTable)
}

// Scenarios returns every scenario in run order.
func Scenarios() []Scenario {
	return []Scenario{
		{Name: Find, run: runFind},
		{Name: Insert, run: runInsert},
		{Name: Erase, run: runErase},
		{Name: InsertErase, run: runInsertErase},
		{Name: Rehash, NeedsResize: true, run: runRehash},
		{Name: Rehash2, NeedsResize: true, run: runRehash2},
	}
}

func insertAll(table hashbench.Table, w corpus.Workload) {
	for i := range w.Fields {
		table.Insert(w.Fields[i], w.Indexes[i])
	}
}

func removeAll(table hashbench.Table, w corpus.Workload) {
	for _, key := range w.Fields {
		table.Remove(key)
	}
}

func newResizable(newTable hashbench.Factory) (hashbench.Resizable, error) {
	table := newTable()
	r, ok := table.(hashbench.Resizable)
	if !ok {
		return nil, fmt.Errorf("%w: %T", ErrNotResizable, table)
	}
	return r, nil
}

// resizeLadder resizes to 128 buckets then doubles seven times, summing the
// resulting bucket counts.
func resizeLadder(table hashbench.Resizable) (uint64, error) {
	sum := uint64(0)
	bucketCount := rehashFirstBucketCount
	for step := 0; step <= rehashDoublings; step++ {
		if err := table.Resize(bucketCount); err != nil {
			return sum, err
		}
		sum += uint64(table.BucketCount())
		bucketCount *= 2
	}
	return sum, nil
}

// runFind: one table filled untimed, every key looked up repeat times.
func runFind(w corpus.Workload, repeat int64, newTable hashbench.Factory) (Measurement, error) {
	table := newTable()
	insertAll(table, w)

	checksum := uint64(0)
	var sw Stopwatch

	sw.Start()
	for i := int64(0); i < repeat; i++ {
		for _, key := range w.Fields {
			if table.Contains(key) {
				checksum++
			}
		}
	}
	sw.Stop()

	return Measurement{Checksum: checksum, Elapsed: sw.Elapsed()}, nil
}

// runInsert: construction and insertion of a fresh table is timed per iteration.
func runInsert(w corpus.Workload, repeat int64, newTable hashbench.Factory) (Measurement, error) {
	checksum := uint64(0)
	var sw Stopwatch

	for i := int64(0); i < repeat; i++ {
		sw.Start()
		table := newTable()
		insertAll(table, w)
		sw.Stop()

		checksum += uint64(table.Count())
	}

	return Measurement{Checksum: checksum, Elapsed: sw.Elapsed()}, nil
}

// runErase: only the removal loop of each iteration is timed.
func runErase(w corpus.Workload, repeat int64, newTable hashbench.Factory) (Measurement, error) {
	checksum := uint64(0)
	var sw Stopwatch

	for i := int64(0); i < repeat; i++ {
		table := newTable()
		insertAll(table, w)
		checksum += uint64(table.Count())

		sw.Start()
		removeAll(table, w)
		sw.Stop()

		checksum += uint64(table.Count())
	}

	return Measurement{Checksum: checksum, Elapsed: sw.Elapsed()}, nil
}

// runInsertErase: one table for all iterations, the whole loop is one span.
func runInsertErase(w corpus.Workload, repeat int64, newTable hashbench.Factory) (Measurement, error) {
	table := newTable()

	checksum := uint64(0)
	var sw Stopwatch

	sw.Start()
	for i := int64(0); i < repeat; i++ {
		insertAll(table, w)
		checksum += uint64(table.Count())

		removeAll(table, w)
		checksum += uint64(table.Count())
	}
	sw.Stop()

	return Measurement{Checksum: checksum, Elapsed: sw.Elapsed()}, nil
}

// runRehash: one table filled untimed, the resize ladder runs repeat times
// over the same entries.
func runRehash(w corpus.Workload, repeat int64, newTable hashbench.Factory) (Measurement, error) {
	table, err := newResizable(newTable)
	if err != nil {
		return Measurement{}, err
	}
	insertAll(table, w)

	checksum := uint64(0)
	var sw Stopwatch

	sw.Start()
	for i := int64(0); i < repeat; i++ {
		checksum += uint64(table.Count())

		sum, err := resizeLadder(table)
		checksum += sum
		if err != nil {
			sw.Stop()
			return Measurement{Checksum: checksum, Elapsed: sw.Elapsed()}, err
		}
	}
	sw.Stop()

	return Measurement{Checksum: checksum, Elapsed: sw.Elapsed()}, nil
}

// runRehash2: a fresh table is built and filled inside every timed iteration.
func runRehash2(w corpus.Workload, repeat int64, newTable hashbench.Factory) (Measurement, error) {
	checksum := uint64(0)
	var sw Stopwatch

	sw.Start()
	for i := int64(0); i < repeat; i++ {
		table, err := newResizable(newTable)
		if err != nil {
			sw.Stop()
			return Measurement{Checksum: checksum, Elapsed: sw.Elapsed()}, err
		}
		insertAll(table, w)
		checksum += uint64(table.Count())

		sum, err := resizeLadder(table)
		checksum += sum
		if err != nil {
			sw.Stop()
			return Measurement{Checksum: checksum, Elapsed: sw.Elapsed()}, err
		}
	}
	sw.Stop()

	return Measurement{Checksum: checksum, Elapsed: sw.Elapsed()}, nil
}

// LadderChecksum is the bucket count sum of one resize ladder on a table
// with exact power of two sizing.
func LadderChecksum() uint64 {
	sum := uint64(0)
	for step := 0; step <= rehashDoublings; step++ {
		sum += uint64(rehashFirstBucketCount << step)
	}
	return sum
}
