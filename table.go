package hashbench

import (
	"errors"
)

// ErrInvalidBucketCount is returned by Resize for a bucket count out of range
var ErrInvalidBucketCount = errors.New("hashbench: bucket count out of range")

// Table is the capability set every benchmarked implementation provides.
// Insert only stores the pair when the key is absent and never overwrites.
type Table interface {
	Insert(key string, value string) bool
	Contains(key string) bool
	Remove(key string) bool
	Count() int
}

// Resizable is a Table whose bucket array size is controlled by the caller.
type Resizable interface {
	Table

	// Resize rehashes every entry into a bucket array of the given size.
	// Implementations may round up to their nearest valid size.
	Resize(bucketCount int) error
	BucketCount() int
}

// Factory ...
type Factory func() Table

// Implementation names a Table constructor for reports.
type Implementation struct {
	Label string
	New   Factory
}

// Implementations returns every table implementation in this package,
// the built-in map baseline first.
func Implementations() []Implementation {
	impls := []Implementation{
		{Label: GoMapLabel, New: func() Table { return NewGoMap() }},
		{Label: HaxMapLabel, New: func() Table { return NewHaxMap() }},
	}
	for _, mode := range HashModes() {
		impls = append(impls, Implementation{
			Label: DictionaryLabel(mode),
			New: func() Table {
				return NewDictionary(WithHashMode(mode))
			},
		})
	}
	return impls
}
