package gamedata

import "github.com/samdwyer/floorcrawl/internal/entity"

// Source is the slice of a random generator a Randomizer needs.
// Both *math/rand.Rand and *rng.Rand satisfy it.
type Source interface {
	Intn(n int) int
}

// Randomizer draws classes with probability proportional to their chance.
type Randomizer struct {
	classes     []*ObjectClass
	totalWeight int
}

// NewRandomizer builds a sampler over classes. It returns nil when no class
// has a positive chance.
func NewRandomizer(classes []*ObjectClass) *Randomizer {
	r := &Randomizer{}
	for _, c := range classes {
		if c.Chance <= 0 {
			continue
		}
		r.classes = append(r.classes, c)
		r.totalWeight += c.Chance
	}
	if r.totalWeight == 0 {
		return nil
	}
	return r
}

// Draw selects a class using weighted probability.
func (r *Randomizer) Draw(rng Source) *ObjectClass {
	roll := rng.Intn(r.totalWeight)

	cumulative := 0
	for _, c := range r.classes {
		cumulative += c.Chance
		if roll < cumulative {
			return c
		}
	}
	return r.classes[len(r.classes)-1]
}

// Spawn draws a class and instantiates it at (x, y).
func (r *Randomizer) Spawn(rng Source, x, y int) *entity.Object {
	return r.Draw(rng).NewObject(x, y)
}

// Len returns the number of drawable classes.
func (r *Randomizer) Len() int {
	return len(r.classes)
}
