// Package rng provides the seeded random source shared by floor generation and AI.
package rng

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/cespare/xxhash/v2"
)

// Rand is an explicitly owned random source. The whole game threads one
// instance through generation and AI so a fixed seed replays a run exactly.
type Rand struct {
	*rand.Rand
	seed int64
}

// New creates a source for the given seed. A seed of 0 means a time based seed.
func New(seed int64) *Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Rand{Rand: rand.New(rand.NewSource(seed)), seed: seed}
}

// FromPhrase creates a source from a seed phrase (see SeedFromPhrase).
func FromPhrase(phrase string) *Rand {
	return New(SeedFromPhrase(phrase))
}

// Seed returns the seed this source was created with.
func (r *Rand) Seed() int64 {
	return r.seed
}

// SeedFromPhrase turns user input into a seed. Integers are used as-is,
// anything else is hashed so "rusty elevator" is as good a seed as 42.
// An empty phrase yields 0 (time based).
func SeedFromPhrase(phrase string) int64 {
	phrase = strings.TrimSpace(phrase)
	if phrase == "" {
		return 0
	}
	if n, err := strconv.ParseInt(phrase, 10, 64); err == nil {
		return n
	}
	return int64(xxhash.Sum64String(phrase) &^ (1 << 63))
}

// Range returns a uniform integer in [lo, hi]. If hi < lo it returns lo.
func (r *Rand) Range(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.Intn(hi-lo+1)
}

// Step returns -1, 0 or 1.
func (r *Rand) Step() int {
	return r.Intn(3) - 1
}

// Chance returns true with probability n in d.
func (r *Rand) Chance(n, d int) bool {
	if d <= 0 {
		return false
	}
	return r.Intn(d) < n
}

// Roll rolls one die with the given number of sides.
func (r *Rand) Roll(size int) (int, error) {
	if size <= 0 {
		return 0, fmt.Errorf("invalid die size %d", size)
	}
	return r.Intn(size) + 1, nil
}

// RollN rolls count dice with the given number of sides.
func (r *Rand) RollN(count, size int) ([]int, error) {
	if count < 0 {
		return nil, fmt.Errorf("invalid dice count %d", count)
	}
	results := make([]int, count)
	for i := range results {
		v, err := r.Roll(size)
		if err != nil {
			return nil, err
		}
		results[i] = v
	}
	return results, nil
}

var _ dice.Roller = (*Rand)(nil)
