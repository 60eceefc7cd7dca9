// Package mem provides a map-backed rules.Store. It backs tests and
// callers that load the list at startup and do not want a database on
// disk; small synthetic rulesets plug straight into the matcher this
// way.
package mem

import (
	"sync"

	"github.com/haukened/namevet/internal/addr/domain"
	"github.com/haukened/namevet/internal/addr/repos/rules"
)

// memStore implements rules.Store in memory.
type memStore struct {
	mu       sync.RWMutex
	byAnchor map[string][]domain.Rule
	count    uint64
	version  uint64
	updated  int64
}

// New returns an empty in-memory Store.
func New() rules.Store {
	return &memStore{byAnchor: make(map[string][]domain.Rule)}
}

// NewFromRules returns a Store pre-populated with the given rules,
// versioned 1. Intended for tests and synthetic rulesets.
func NewFromRules(ruleset []domain.Rule) rules.Store {
	s := &memStore{byAnchor: make(map[string][]domain.Rule)}
	_ = s.RebuildAll(ruleset, 1, 0)
	return s
}

func (s *memStore) RulesFor(anchor string) ([]domain.Rule, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	// Entries are replaced whole by RebuildAll and rules are
	// immutable values, so handing out the stored slice is safe.
	return s.byAnchor[anchor], nil
}

func (s *memStore) RebuildAll(ruleset []domain.Rule, version uint64, updatedUnix int64) error {
	byAnchor := make(map[string][]domain.Rule, len(ruleset))
	for _, r := range ruleset {
		byAnchor[r.Anchor()] = append(byAnchor[r.Anchor()], r)
	}
	s.mu.Lock()
	s.byAnchor = byAnchor
	s.count = uint64(len(ruleset))
	s.version = version
	s.updated = updatedUnix
	s.mu.Unlock()
	return nil
}

func (s *memStore) Stats() rules.StoreStats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return rules.StoreStats{
		Version:     s.version,
		UpdatedUnix: s.updated,
		Anchors:     uint64(len(s.byAnchor)),
		Rules:       s.count,
	}
}

func (s *memStore) Close() error { return nil }

var _ rules.Store = (*memStore)(nil)
