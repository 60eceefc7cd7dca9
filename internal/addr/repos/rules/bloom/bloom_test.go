package bloom

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSizer(t *testing.T) {
	s := NewSizer()

	// n=10000, p=0.01 -> roughly 9.6 bits per element, 7 hashes.
	m, k := s.Size(10000, 0.01)
	assert.InDelta(t, 95851, float64(m), 5)
	assert.Equal(t, uint8(7), k)

	// Lower FP rate needs more bits and hashes.
	m2, k2 := s.Size(10000, 0.001)
	assert.Greater(t, m2, m)
	assert.GreaterOrEqual(t, k2, k)
}

func TestSizer_Clamps(t *testing.T) {
	s := NewSizer()

	m, k := s.Size(0, 0.01)
	assert.GreaterOrEqual(t, m, uint64(1))
	assert.GreaterOrEqual(t, k, uint8(1))

	// Invalid p falls back to the 1% default.
	m1, k1 := s.Size(1000, 0)
	m2, k2 := s.Size(1000, 0.01)
	assert.Equal(t, m2, m1)
	assert.Equal(t, k2, k1)

	m3, _ := s.Size(1000, 1.5)
	assert.Equal(t, m2, m3)
}

func TestFactoryFilter(t *testing.T) {
	f := NewFactory().New(1000, 0.01)

	keys := make([][]byte, 0, 100)
	for i := 0; i < 100; i++ {
		keys = append(keys, []byte(fmt.Sprintf("anchor-%d", i)))
	}
	for _, k := range keys {
		f.Add(k)
	}
	for _, k := range keys {
		assert.True(t, f.MightContain(k), "added key %q must test positive", k)
	}

	// Negatives can false-positive, but at 1% over a filter sized for
	// 10x the load, most of these must miss.
	misses := 0
	for i := 0; i < 100; i++ {
		if !f.MightContain([]byte(fmt.Sprintf("absent-%d", i))) {
			misses++
		}
	}
	assert.Greater(t, misses, 90)
}

func TestFactory_ZeroCapacity(t *testing.T) {
	f := NewFactory().New(0, 0.01)
	f.Add([]byte("com"))
	assert.True(t, f.MightContain([]byte("com")))
}
