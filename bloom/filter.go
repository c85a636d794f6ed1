// Package bloom remembers which posting URLs a scan batch has already
// queued. A Bloom filter answers the common "never seen" case; its hits are
// confirmed against the exact set of keys.
package bloom

import (
	"net/url"
	"strings"
	"sync"

	"github.com/bits-and-blooms/bloom/v3"
)

// Filter records posting URLs. URLs that differ only by fragment, host case
// or a trailing slash are treated as the same posting.
type Filter struct {
	mu   sync.Mutex
	f    *bloom.BloomFilter
	keys map[string]struct{}
}

// NewFilter creates a filter sized for n expected URLs with the given false
// positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f:    bloom.NewWithEstimates(n, fpRate),
		keys: make(map[string]struct{}, n),
	}
}

// Seen adds rawURL to the filter and reports whether an equivalent URL was
// added before.
func (f *Filter) Seen(rawURL string) bool {
	key := Normalize(rawURL)

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.f.TestAndAddString(key) {
		if _, ok := f.keys[key]; ok {
			return true
		}
	}
	f.keys[key] = struct{}{}
	return false
}

// Normalize returns the form of rawURL used as the filter key.
func Normalize(rawURL string) string {
	s := strings.TrimSpace(rawURL)
	u, err := url.Parse(s)
	if err != nil || u.Host == "" {
		return s
	}
	u.Fragment = ""
	u.Host = strings.ToLower(u.Host)
	u.Path = strings.TrimSuffix(u.Path, "/")
	return u.String()
}
