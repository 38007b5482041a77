// Package entity provides the universal game object and its optional components.
package entity

import (
	"math"

	"github.com/google/uuid"
)

// Position is a grid coordinate.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Color is an RGB display color.
type Color struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

var (
	ColorWhite   = Color{255, 255, 255}
	ColorDarkRed = Color{191, 0, 0}
)

// Object is any entity on the floor: terrain fixture, item, or actor.
// Its role is decided by which optional components are set. Fighter plus Ai
// makes a monster, Function makes a usable item, neither makes inert dressing.
type Object struct {
	ID          string    `json:"id"`
	X           int       `json:"x"`
	Y           int       `json:"y"`
	Symbol      rune      `json:"symbol"`
	Color       Color     `json:"color"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Blocks      Blocks    `json:"blocks"`
	BlocksView  Blocks    `json:"blocks_view"`
	Alive       bool      `json:"alive"`
	PickUp      bool      `json:"pick_up,omitempty"`
	OpensInto   string    `json:"opens_into,omitempty"`
	Fighter     *Fighter  `json:"fighter,omitempty"`
	Ai          *Ai       `json:"ai,omitempty"`
	Function    Function  `json:"function,omitempty"`
	Inventory   []*Object `json:"inventory,omitempty"`
}

// NewID returns a fresh object identity.
func NewID() string {
	return uuid.NewString()
}

// New creates a bare object with a fresh identity.
func New(x, y int, symbol rune, name string, color Color, blocks Blocks) *Object {
	return &Object{
		ID:     NewID(),
		X:      x,
		Y:      y,
		Symbol: symbol,
		Color:  color,
		Name:   name,
		Blocks: blocks,
	}
}

// Pos returns the object's position.
func (o *Object) Pos() Position {
	return Position{X: o.X, Y: o.Y}
}

// SetPos moves the object without any blocking checks.
func (o *Object) SetPos(x, y int) {
	o.X = x
	o.Y = y
}

// At reports whether the object stands at (x, y).
func (o *Object) At(x, y int) bool {
	return o.X == x && o.Y == y
}

// Distance returns the euclidean distance to (x, y).
func (o *Object) Distance(x, y int) float64 {
	return math.Hypot(float64(x-o.X), float64(y-o.Y))
}

// DistanceTo returns the euclidean distance to another object.
func (o *Object) DistanceTo(other *Object) float64 {
	return o.Distance(other.X, other.Y)
}

// IsMonster reports whether the object is a live, AI driven fighter.
func (o *Object) IsMonster() bool {
	return o.Fighter != nil && o.Ai != nil
}

// Clone returns a deep copy that shares no mutable state with o.
// The copy keeps o's ID; callers spawning new instances assign a fresh one.
func (o *Object) Clone() *Object {
	if o == nil {
		return nil
	}
	c := *o
	if o.Fighter != nil {
		f := *o.Fighter
		c.Fighter = &f
	}
	c.Ai = o.Ai.Clone()
	if o.Inventory != nil {
		c.Inventory = make([]*Object, len(o.Inventory))
		for i, item := range o.Inventory {
			c.Inventory[i] = item.Clone()
		}
	}
	return &c
}
