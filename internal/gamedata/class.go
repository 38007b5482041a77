// Package gamedata loads object class catalogs and spawns objects from them.
package gamedata

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/samdwyer/floorcrawl/internal/entity"
)

// Category and class names the generator relies on.
const (
	CategoryTerrain  = "terrain"
	CategoryPlayer   = "player"
	CategoryMonster  = "zombie"
	CategoryItem     = "item"
	CategoryDressing = "environmental weapon"
	ClassWall        = "wall"
	ClassFloor       = "floor"
	ClassDoor        = "door"
	ClassEntrance    = "entrance"
	ClassStairs      = "stairs"
	ClassPlayer      = "player"
)

var (
	ErrUnknownClass    = errors.New("unknown object class")
	ErrUnknownCategory = errors.New("unknown object category")
)

// FighterDef is the combat template of a class. Spawned fighters start at full health.
type FighterDef struct {
	MaxHP   int    `json:"max_hp" yaml:"max_hp"`
	Defense int    `json:"defense" yaml:"defense"`
	Power   int    `json:"power" yaml:"power"`
	OnDeath string `json:"on_death" yaml:"on_death"`
}

// ObjectClass is an immutable template objects are spawned from.
type ObjectClass struct {
	Name        string      `json:"name" yaml:"name"`
	Symbol      string      `json:"symbol" yaml:"symbol"`
	Description string      `json:"description" yaml:"description"`
	Color       string      `json:"color" yaml:"color"`
	Blocks      string      `json:"blocks" yaml:"blocks"`
	BlocksView  string      `json:"blocks_view" yaml:"blocks_view"`
	Alive       bool        `json:"alive" yaml:"alive"`
	Chance      int         `json:"chance" yaml:"chance"`
	Category    string      `json:"category" yaml:"category"`
	PickUp      bool        `json:"pick_up" yaml:"pick_up"`
	OpensInto   string      `json:"opens_into" yaml:"opens_into"`
	Fighter     *FighterDef `json:"fighter" yaml:"fighter"`
	Ai          string      `json:"ai" yaml:"ai"`
	Function    string      `json:"function" yaml:"function"`
	Inventory   []string    `json:"inventory" yaml:"inventory"`

	prototype *entity.Object
}

// ClassesFile is the layout of a catalog file.
type ClassesFile struct {
	Classes []ObjectClass `json:"classes" yaml:"classes"`
}

// NewObject spawns a fresh instance at (x, y). The instance is a deep copy
// and never shares state with the class or other instances.
func (c *ObjectClass) NewObject(x, y int) *entity.Object {
	o := c.prototype.Clone()
	o.X, o.Y = x, y
	if c.Category != CategoryTerrain {
		o.ID = entity.NewID()
	}
	for _, item := range o.Inventory {
		item.ID = entity.NewID()
	}
	return o
}

// compile validates the class and builds its prototype, without inventory.
func (c *ObjectClass) compile() error {
	symbol, size := utf8.DecodeRuneInString(c.Symbol)
	if size == 0 || size != len(c.Symbol) {
		return fmt.Errorf("symbol %q must be a single character", c.Symbol)
	}
	color, err := ParseColor(c.Color)
	if err != nil {
		return err
	}

	o := &entity.Object{
		Symbol:      symbol,
		Color:       color,
		Name:        c.Name,
		Description: c.Description,
		Alive:       c.Alive,
		PickUp:      c.PickUp,
		OpensInto:   c.OpensInto,
	}
	if err := o.Blocks.UnmarshalText([]byte(c.Blocks)); err != nil {
		return err
	}
	if err := o.BlocksView.UnmarshalText([]byte(c.BlocksView)); err != nil {
		return err
	}
	if c.Function != "" {
		if o.Function, err = entity.ParseFunction(c.Function); err != nil {
			return err
		}
	}
	if c.Fighter != nil {
		f := &entity.Fighter{
			MaxHP:   c.Fighter.MaxHP,
			HP:      c.Fighter.MaxHP,
			Defense: c.Fighter.Defense,
			Power:   c.Fighter.Power,
		}
		if err := f.OnDeath.UnmarshalText([]byte(c.Fighter.OnDeath)); err != nil {
			return err
		}
		o.Fighter = f
	}
	if c.Ai != "" {
		kind, err := entity.ParseAiKind(c.Ai)
		if err != nil {
			return err
		}
		o.Ai = &entity.Ai{Kind: kind}
	}

	c.prototype = o
	return nil
}

// stock fills the prototype's starting inventory once every class is compiled.
func (c *ObjectClass) stock(lookup func(string) (*ObjectClass, bool)) error {
	for _, name := range c.Inventory {
		item, ok := lookup(name)
		if !ok {
			return fmt.Errorf("inventory entry %q: %w", name, ErrUnknownClass)
		}
		c.prototype.Inventory = append(c.prototype.Inventory, item.prototype.Clone())
	}
	return nil
}
