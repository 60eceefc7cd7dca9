package lru

import (
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/haukened/namevet/internal/addr/domain"
	"github.com/haukened/namevet/internal/addr/repos/rules"
)

// ruleCache is an LRU-backed implementation of rules.RuleCache. It
// caches the rule slice per anchor label and tracks hits, misses,
// and evictions.
type ruleCache struct {
	lru       *lru.Cache[string, []domain.Rule]
	hits      uint64
	misses    uint64
	evictions uint64
}

// disabledCache is a no-op RuleCache used when size <= 0.
type disabledCache struct{}

// New creates a RuleCache with the given capacity. If size <= 0, a
// disabled no-op cache is returned that always misses and tracks no
// metrics.
func New(size int) (rules.RuleCache, error) {
	if size <= 0 {
		return &disabledCache{}, nil
	}

	var rc ruleCache
	// NewWithEvict observes evictions, including Purge-induced ones.
	cache, err := lru.NewWithEvict(size, func(_ string, _ []domain.Rule) {
		atomic.AddUint64(&rc.evictions, 1)
	})
	if err != nil {
		return nil, err
	}
	rc.lru = cache
	return &rc, nil
}

// Get looks up the rules for an anchor, counting hit or miss.
func (c *ruleCache) Get(anchor string) ([]domain.Rule, bool) {
	if val, ok := c.lru.Get(anchor); ok {
		atomic.AddUint64(&c.hits, 1)
		return val, true
	}
	atomic.AddUint64(&c.misses, 1)
	return nil, false
}

// Put stores the rules for an anchor. A nil slice is a valid entry:
// it records that the anchor has no explicit rules.
func (c *ruleCache) Put(anchor string, rs []domain.Rule) {
	c.lru.Add(anchor, rs)
}

// Len returns the number of entries in the cache.
func (c *ruleCache) Len() int { return c.lru.Len() }

// Purge clears all entries. Evictions are counted via the callback.
func (c *ruleCache) Purge() { c.lru.Purge() }

// Stats returns cumulative hit/miss/eviction counters.
func (c *ruleCache) Stats() (hits, misses, evictions uint64) {
	return atomic.LoadUint64(&c.hits), atomic.LoadUint64(&c.misses), atomic.LoadUint64(&c.evictions)
}

// disabledCache implementation

func (d *disabledCache) Get(string) ([]domain.Rule, bool) { return nil, false }

func (d *disabledCache) Put(string, []domain.Rule) {}

func (d *disabledCache) Len() int { return 0 }

func (d *disabledCache) Purge() {}

func (d *disabledCache) Stats() (uint64, uint64, uint64) { return 0, 0, 0 }

var _ rules.RuleCache = (*ruleCache)(nil)
var _ rules.RuleCache = (*disabledCache)(nil)
