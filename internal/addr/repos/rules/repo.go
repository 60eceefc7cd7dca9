// Package rules provides the public suffix ruleset repository: a
// bloom → cache → store read pipeline over a compiled rule index,
// with atomic snapshot updates. It implements the parser's Ruleset
// capability.
package rules

import (
	"sync"

	"github.com/haukened/namevet/internal/addr/domain"
	"github.com/haukened/namevet/internal/addr/services/parser"
)

// repository composes a Store, a Bloom filter (via factory), and a
// RuleCache. Reads go bloom → cache → store; UpdateAll rebuilds the
// store, swaps in a fresh filter, and purges the cache.
type repository struct {
	mu      sync.RWMutex
	store   Store
	cache   RuleCache
	bloom   BloomFilter
	factory BloomFactory
	fpRate  float64
}

// NewRepository constructs a Repository. fpRate is the target
// false-positive rate for the Bloom filter when rebuilding.
func NewRepository(store Store, cache RuleCache, factory BloomFactory, fpRate float64) Repository {
	return &repository{store: store, cache: cache, factory: factory, fpRate: fpRate}
}

// Rules returns the rules anchored at the given label.
// Policy: on internal errors, prefer the default rule (no rules).
func (r *repository) Rules(anchor string) []domain.Rule {
	// 1) bloom: early-out when the anchor is definitely unlisted
	if !r.checkBloom(anchor) {
		return nil
	}
	// 2) cache
	if rs, ok := r.cache.Get(anchor); ok {
		return rs
	}
	// 3) store, then populate the cache (negative results included,
	//    since bloom false positives repeat for hot anchors)
	rs, err := r.store.RulesFor(anchor)
	if err != nil {
		return nil
	}
	r.cache.Put(anchor, rs)
	return rs
}

// UpdateAll performs an atomic snapshot update across store, bloom,
// and cache.
func (r *repository) UpdateAll(ruleset []domain.Rule, version uint64, updatedUnix int64) error {
	// 1) Rebuild the persistent index first.
	if err := r.store.RebuildAll(ruleset, version, updatedUnix); err != nil {
		return err
	}

	// 2) Build a fresh Bloom filter over distinct anchors.
	anchors := make(map[string]struct{}, len(ruleset))
	for _, ru := range ruleset {
		anchors[ru.Anchor()] = struct{}{}
	}
	bf := r.factory.New(uint64(len(anchors)), r.fpRate)
	for a := range anchors {
		bf.Add([]byte(a))
	}

	// 3) Swap bloom and purge the rule cache under lock.
	r.mu.Lock()
	r.bloom = bf
	r.cache.Purge()
	r.mu.Unlock()
	return nil
}

// RepoStats reports cache counters and store metadata.
func (r *repository) RepoStats() RepoStats {
	hits, misses, evictions := r.cache.Stats()
	return RepoStats{
		Hits:      hits,
		Misses:    misses,
		Evictions: evictions,
		Store:     r.store.Stats(),
	}
}

// checkBloom returns true if the store should be consulted
// (maybe-positive), or false if the anchor is definitely unlisted.
// With no filter loaded it returns true to keep reads authoritative.
func (r *repository) checkBloom(anchor string) bool {
	r.mu.RLock()
	bf := r.bloom
	r.mu.RUnlock()
	if bf == nil {
		return true
	}
	return bf.MightContain([]byte(anchor))
}

var _ Repository = (*repository)(nil)
var _ parser.Ruleset = (*repository)(nil)
