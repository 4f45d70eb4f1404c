// Package corpus holds the fixed set of string keys that drives every benchmark.
package corpus

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	// ErrEmptyKey is returned by New for a key of length 0
	ErrEmptyKey = errors.New("corpus: empty key")
	// ErrEmptyCorpus is returned by New when no key is given
	ErrEmptyCorpus = errors.New("corpus: no keys")
)

// HeaderFields are HTTP request and response header field names, in source
// order. "Date" and "Via" appear twice, "Last" ends the list.
var HeaderFields = []string{
	// Request
	"Accept",
	"Accept-Charset",
	"Accept-Encoding",
	"Accept-Language",
	"Authorization",
	"Cache-Control",
	"Connection",
	"Cookie",
	"Content-Length",
	"Content-MD5",
	"Content-Type",
	"Date",
	"DNT",
	"From",
	"Front-End-Https",
	"Host",
	"If-Match",
	"If-Modified-Since",
	"If-None-Match",
	"If-Range",
	"If-Unmodified-Since",
	"Max-Forwards",
	"Pragma",
	"Proxy-Authorization",
	"Range",
	"Referer",
	"User-Agent",
	"Upgrade",
	"Via",
	"Warning",
	"X-ATT-DeviceId",
	"X-Content-Type-Options",
	"X-Forwarded-For",
	"X-Forwarded-Proto",
	"X-Powered-By",
	"X-Requested-With",
	"X-XSS-Protection",

	// Response
	"Access-Control-Allow-Origin",
	"Accept-Ranges",
	"Age",
	"Allow",
	"Content-Encoding",
	"Content-Language",
	"Content-Disposition",
	"Content-Range",
	"Date",
	"ETag",
	"Expires",
	"Last-Modified",
	"Link",
	"Location",
	"P3P",
	"Proxy-Authenticate",
	"Refresh",
	"Retry-After",
	"Server",
	"Set-Cookie",
	"Strict-Transport-Security",
	"Trailer",
	"Transfer-Encoding",
	"Vary",
	"Via",
	"WWW-Authenticate",

	"Last",
}

// Corpus is an immutable ordered sequence of unique non-empty keys.
type Corpus struct {
	keys []string
}

// New builds a Corpus from keys. Duplicates are dropped, the first
// occurrence keeps its position.
func New(keys []string) (*Corpus, error) {
	seen := make(map[string]struct{}, len(keys))
	unique := make([]string, 0, len(keys))
	for i, k := range keys {
		if len(k) == 0 {
			return nil, fmt.Errorf("%w: at index %d", ErrEmptyKey, i)
		}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		unique = append(unique, k)
	}
	if len(unique) == 0 {
		return nil, ErrEmptyCorpus
	}
	return &Corpus{keys: unique}, nil
}

// MustNew is like New but panics on error.
func MustNew(keys []string) *Corpus {
	c, err := New(keys)
	if err != nil {
		panic(err)
	}
	return c
}

// Default returns the corpus over HeaderFields.
func Default() *Corpus {
	return MustNew(HeaderFields)
}

// Len ...
func (c *Corpus) Len() int {
	return len(c.keys)
}

// Keys returns a copy of the keys.
func (c *Corpus) Keys() []string {
	result := make([]string, len(c.keys))
	copy(result, c.keys)
	return result
}

// Workload is the pair of parallel operand arrays of one scenario.
// Fields[i] is key i of the corpus, Indexes[i] is i in decimal.
type Workload struct {
	Fields  []string
	Indexes []string
}

// Workload builds fresh operand arrays.
func (c *Corpus) Workload() Workload {
	w := Workload{
		Fields:  make([]string, len(c.keys)),
		Indexes: make([]string, len(c.keys)),
	}
	for i, k := range c.keys {
		w.Fields[i] = k
		w.Indexes[i] = strconv.Itoa(i)
	}
	return w
}

// Len ...
func (w Workload) Len() int {
	return len(w.Fields)
}
