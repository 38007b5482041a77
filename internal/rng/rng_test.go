package rng

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSameSeedSameSequence(t *testing.T) {
	a := New(99)
	b := New(99)
	for i := 0; i < 50; i++ {
		assert.Equal(t, a.Intn(1000), b.Intn(1000))
	}
}

func TestSeedFromPhrase(t *testing.T) {
	assert.Equal(t, int64(42), SeedFromPhrase("42"))
	assert.Equal(t, int64(0), SeedFromPhrase("   "))
	assert.Equal(t, SeedFromPhrase("rusty elevator"), SeedFromPhrase("rusty elevator"))
	assert.NotEqual(t, SeedFromPhrase("rusty elevator"), SeedFromPhrase("rusty escalator"))
	assert.GreaterOrEqual(t, SeedFromPhrase("negative?"), int64(0))
}

func TestZeroSeedIsTimeBased(t *testing.T) {
	assert.NotZero(t, New(0).Seed())
}

func TestRangeBounds(t *testing.T) {
	r := New(7)
	for i := 0; i < 500; i++ {
		v := r.Range(-1, 1)
		assert.True(t, v >= -1 && v <= 1, "value %d out of range", v)
	}
	assert.Equal(t, 5, r.Range(5, 5))
	assert.Equal(t, 5, r.Range(5, 2))
}

func TestRollN(t *testing.T) {
	r := New(3)
	rolls, err := r.RollN(10, 6)
	require.NoError(t, err)
	require.Len(t, rolls, 10)
	for _, v := range rolls {
		assert.True(t, v >= 1 && v <= 6)
	}

	_, err = r.Roll(0)
	assert.Error(t, err)
	_, err = r.RollN(-1, 6)
	assert.Error(t, err)
}

func TestChance(t *testing.T) {
	r := New(11)
	assert.False(t, r.Chance(1, 0))
	assert.True(t, r.Chance(5, 5))
	assert.False(t, r.Chance(0, 5))
}
