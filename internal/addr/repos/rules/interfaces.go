package rules

import "github.com/haukened/namevet/internal/addr/domain"

// BloomSizer computes Bloom filter parameters from capacity (n) and
// target FP rate (p). It returns m (number of bits) and k (number of
// hash functions).
type BloomSizer interface {
	Size(n uint64, p float64) (m uint64, k uint8)
}

// BloomFilter is the minimal interface the repository needs from a
// Bloom filter over rule anchor labels. A filter is built once per
// snapshot and swapped whole; it is never mutated afterwards.
type BloomFilter interface {
	Add(key []byte)
	MightContain(key []byte) bool
}

// BloomFactory builds a BloomFilter sized for a dataset.
type BloomFactory interface {
	New(capacity uint64, fpRate float64) BloomFilter
}

// RuleCache caches per-anchor rule slices with basic metrics.
type RuleCache interface {
	Get(anchor string) ([]domain.Rule, bool)
	Put(anchor string, rules []domain.Rule)
	Len() int
	Purge()
	Stats() (hits, misses, evictions uint64)
}

// Store abstracts the compiled-ruleset index keyed by anchor label.
// RulesFor returns every rule anchored at the given most-significant
// label; RebuildAll atomically replaces the whole ruleset snapshot.
type Store interface {
	RulesFor(anchor string) ([]domain.Rule, error)
	RebuildAll(rules []domain.Rule, version uint64, updatedUnix int64) error
	Stats() StoreStats
	Close() error
}

// Repository is the composition layer wiring bloom → cache → store.
// It satisfies the parser's Ruleset capability: Rules returns the
// rules anchored at a label, falling back to none (and therefore the
// matcher's default rule) on any internal error.
type Repository interface {
	Rules(anchor string) []domain.Rule
	UpdateAll(rules []domain.Rule, version uint64, updatedUnix int64) error
	RepoStats() RepoStats
}
