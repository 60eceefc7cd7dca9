package lru

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haukened/namevet/internal/addr/domain"
)

func plainRule(t *testing.T, labels ...string) domain.Rule {
	t.Helper()
	r, err := domain.NewRule(labels, domain.RuleKindPlain, domain.SectionICANN)
	require.NoError(t, err)
	return r
}

func TestCache_GetPut(t *testing.T) {
	c, err := New(8)
	require.NoError(t, err)

	rs := []domain.Rule{plainRule(t, "com"), plainRule(t, "com", "uk")}
	c.Put("com", rs)

	got, ok := c.Get("com")
	require.True(t, ok)
	assert.Equal(t, rs, got)
	assert.Equal(t, 1, c.Len())

	_, ok = c.Get("net")
	assert.False(t, ok)

	hits, misses, _ := c.Stats()
	assert.Equal(t, uint64(1), hits)
	assert.Equal(t, uint64(1), misses)
}

// A nil slice is a legitimate cached value: it records that the anchor
// has no explicit rules.
func TestCache_NegativeEntry(t *testing.T) {
	c, err := New(8)
	require.NoError(t, err)

	c.Put("zz", nil)
	got, ok := c.Get("zz")
	assert.True(t, ok)
	assert.Nil(t, got)

	hits, misses, _ := c.Stats()
	assert.Equal(t, uint64(1), hits)
	assert.Equal(t, uint64(0), misses)
}

func TestCache_Eviction(t *testing.T) {
	c, err := New(2)
	require.NoError(t, err)

	c.Put("a", []domain.Rule{plainRule(t, "a")})
	c.Put("b", []domain.Rule{plainRule(t, "b")})
	c.Put("c", []domain.Rule{plainRule(t, "c")})

	assert.Equal(t, 2, c.Len())
	_, _, evictions := c.Stats()
	assert.Equal(t, uint64(1), evictions)

	// "a" was the least recently used entry.
	_, ok := c.Get("a")
	assert.False(t, ok)
	_, ok = c.Get("c")
	assert.True(t, ok)
}

func TestCache_Purge(t *testing.T) {
	c, err := New(8)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		c.Put(fmt.Sprintf("anchor-%d", i), nil)
	}
	require.Equal(t, 5, c.Len())

	c.Purge()
	assert.Equal(t, 0, c.Len())
	_, _, evictions := c.Stats()
	assert.Equal(t, uint64(5), evictions)
}

func TestCache_Disabled(t *testing.T) {
	for _, size := range []int{0, -1} {
		c, err := New(size)
		require.NoError(t, err)

		c.Put("com", []domain.Rule{plainRule(t, "com")})
		_, ok := c.Get("com")
		assert.False(t, ok)
		assert.Equal(t, 0, c.Len())

		c.Purge()
		hits, misses, evictions := c.Stats()
		assert.Zero(t, hits)
		assert.Zero(t, misses)
		assert.Zero(t, evictions)
	}
}
