package hashbench

import (
	"fmt"
	"math"
	"math/bits"
)

const (
	// DefaultBucketCount is the bucket count of a new Dictionary
	DefaultBucketCount = 64
	// DefaultLoadFactor is the entries per bucket ratio that triggers auto growth
	DefaultLoadFactor = 0.75
	// MaxBucketCount is the largest bucket count a Dictionary accepts
	MaxBucketCount = 1 << 30
)

// Dictionary is a separate chaining hash table from string to string
// with a power of two bucket count.
//
// Until the first call to Resize the bucket array doubles whenever the
// entry count reaches BucketCount() * load factor. Resize pins the bucket
// count: after it, Insert, Remove and Reserve never change BucketCount().
//
// Dictionary is NOT safe for concurrent use.
type Dictionary struct {
	buckets   []*entry
	mask      uint64
	count     int
	threshold int

	loadFactor float64
	pinned     bool

	mode HashMode
	hash HashFunc

	free freeList
}

var _ Resizable = &Dictionary{}

type dictionaryOptions struct {
	bucketCount int
	loadFactor  float64
	mode        HashMode
}

// Option configures a Dictionary.
type Option func(opts *dictionaryOptions)

// WithBucketCount sets the initial bucket count, rounded up to a power of two.
func WithBucketCount(n int) Option {
	return func(opts *dictionaryOptions) {
		opts.bucketCount = n
	}
}

// WithLoadFactor ...
func WithLoadFactor(f float64) Option {
	return func(opts *dictionaryOptions) {
		opts.loadFactor = f
	}
}

// WithHashMode ...
func WithHashMode(mode HashMode) Option {
	return func(opts *dictionaryOptions) {
		opts.mode = mode
	}
}

// NewDictionary creates an empty Dictionary, panics on invalid options.
func NewDictionary(options ...Option) *Dictionary {
	opts := dictionaryOptions{
		bucketCount: DefaultBucketCount,
		loadFactor:  DefaultLoadFactor,
		mode:        HashXXH64,
	}
	for _, fn := range options {
		fn(&opts)
	}

	if opts.bucketCount < 1 {
		panic("bucketCount must not be < 1")
	}
	if opts.bucketCount > MaxBucketCount {
		panic("bucketCount must not be > MaxBucketCount")
	}
	if !(opts.loadFactor > 0) || math.IsInf(opts.loadFactor, 1) {
		panic("loadFactor must be > 0")
	}

	d := &Dictionary{
		loadFactor: opts.loadFactor,
		mode:       opts.mode,
		hash:       opts.mode.Func(),
	}
	d.setBuckets(make([]*entry, nextPowerOfTwo(opts.bucketCount)))
	return d
}

// DictionaryLabel is the report label of a Dictionary using the hash mode.
func DictionaryLabel(mode HashMode) string {
	return "Dictionary[" + mode.String() + "]"
}

// Label ...
func (d *Dictionary) Label() string {
	return DictionaryLabel(d.mode)
}

func (d *Dictionary) setBuckets(buckets []*entry) {
	d.buckets = buckets
	d.mask = uint64(len(buckets) - 1)
	d.threshold = int(float64(len(buckets)) * d.loadFactor)
}

func (d *Dictionary) find(key string) *entry {
	h := d.hash(key)
	for e := d.buckets[h&d.mask]; e != nil; e = e.next {
		if e.hash == h && e.key == key {
			return e
		}
	}
	return nil
}

// Insert stores the pair if key is absent and reports whether it did.
// The empty key is rejected.
func (d *Dictionary) Insert(key string, value string) bool {
	if len(key) == 0 {
		return false
	}

	h := d.hash(key)
	index := h & d.mask
	for e := d.buckets[index]; e != nil; e = e.next {
		if e.hash == h && e.key == key {
			return false
		}
	}

	if !d.pinned && d.count >= d.threshold && len(d.buckets) < MaxBucketCount {
		d.rehash(len(d.buckets) * 2)
		index = h & d.mask
	}

	e := d.free.pop()
	e.hash = h
	e.key = key
	e.value = value
	e.next = d.buckets[index]
	d.buckets[index] = e
	d.count++
	return true
}

// Contains ...
func (d *Dictionary) Contains(key string) bool {
	if len(key) == 0 {
		return false
	}
	return d.find(key) != nil
}

// Get returns the value stored for key.
func (d *Dictionary) Get(key string) (string, bool) {
	if len(key) == 0 {
		return "", false
	}
	e := d.find(key)
	if e == nil {
		return "", false
	}
	return e.value, true
}

// Remove deletes key and reports whether it was present.
func (d *Dictionary) Remove(key string) bool {
	if len(key) == 0 {
		return false
	}

	h := d.hash(key)
	prev := &d.buckets[h&d.mask]
	for e := *prev; e != nil; e = *prev {
		if e.hash == h && e.key == key {
			*prev = e.next
			d.free.push(e)
			d.count--
			return true
		}
		prev = &e.next
	}
	return false
}

// Count ...
func (d *Dictionary) Count() int {
	return d.count
}

// BucketCount ...
func (d *Dictionary) BucketCount() int {
	return len(d.buckets)
}

// Resize rehashes every entry into nextPowerOfTwo(bucketCount) buckets,
// shrinking or growing, and disables auto growth.
// The rehash happens even when the size does not change.
// A count outside [1, MaxBucketCount] leaves the table untouched.
func (d *Dictionary) Resize(bucketCount int) error {
	if bucketCount < 1 || bucketCount > MaxBucketCount {
		return fmt.Errorf("%w: got %d, want 1..%d", ErrInvalidBucketCount, bucketCount, MaxBucketCount)
	}
	d.pinned = true
	d.rehash(nextPowerOfTwo(bucketCount))
	return nil
}

// Reserve grows the bucket array so that n entries fit under the load factor,
// capped at MaxBucketCount. It never shrinks and does nothing on a pinned table.
func (d *Dictionary) Reserve(n int) {
	if n <= 0 || d.pinned {
		return
	}
	need := math.Ceil(float64(n) / d.loadFactor)
	if need > MaxBucketCount {
		need = MaxBucketCount
	}
	want := nextPowerOfTwo(int(need))
	if want > len(d.buckets) {
		d.rehash(want)
	}
}

// Clear removes every entry, the bucket count is kept.
func (d *Dictionary) Clear() {
	for i, e := range d.buckets {
		for e != nil {
			next := e.next
			d.free.push(e)
			e = next
		}
		d.buckets[i] = nil
	}
	d.count = 0
}

// LoadFactor ...
func (d *Dictionary) LoadFactor() float64 {
	return d.loadFactor
}

// Pinned reports whether Resize has disabled auto growth.
func (d *Dictionary) Pinned() bool {
	return d.pinned
}

func (d *Dictionary) rehash(bucketCount int) {
	old := d.buckets
	d.setBuckets(make([]*entry, bucketCount))
	for _, e := range old {
		for e != nil {
			next := e.next
			index := e.hash & d.mask
			e.next = d.buckets[index]
			d.buckets[index] = e
			e = next
		}
	}
}

func nextPowerOfTwo(n int) int {
	return 1 << bits.Len64(uint64(n-1))
}
