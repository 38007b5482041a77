// Package world provides the floor model, its generator, and movement rules.
package world

import "github.com/samdwyer/floorcrawl/internal/entity"

// Tile is one grid cell: a stack of placed objects, painted bottom to top.
// Index 0 holds the terrain fixture (wall, floor or door).
type Tile struct {
	Explored bool             `json:"explored"`
	Items    []*entity.Object `json:"items"`
}

// Blocks folds the movement blocking of every item on the tile.
func (t *Tile) Blocks() entity.Blocks {
	b := entity.BlocksNo
	for _, item := range t.Items {
		if b = entity.MaxBlocks(b, item.Blocks); b == entity.BlocksFull {
			break
		}
	}
	return b
}

// BlocksView folds the sight blocking of every item on the tile.
func (t *Tile) BlocksView() entity.Blocks {
	b := entity.BlocksNo
	for _, item := range t.Items {
		if b = entity.MaxBlocks(b, item.BlocksView); b == entity.BlocksFull {
			break
		}
	}
	return b
}

// Terrain returns the bottom fixture, or nil for an empty tile.
func (t *Tile) Terrain() *entity.Object {
	if len(t.Items) == 0 {
		return nil
	}
	return t.Items[0]
}

// Top returns the most recently placed object, or nil for an empty tile.
func (t *Tile) Top() *entity.Object {
	if len(t.Items) == 0 {
		return nil
	}
	return t.Items[len(t.Items)-1]
}

// Door returns the first object on the tile that can be opened.
func (t *Tile) Door() *entity.Object {
	for _, item := range t.Items {
		if item.OpensInto != "" {
			return item
		}
	}
	return nil
}

// Find returns the first object with the given name.
func (t *Tile) Find(name string) *entity.Object {
	for _, item := range t.Items {
		if item.Name == name {
			return item
		}
	}
	return nil
}

// Remove takes obj off the tile, keeping the order of the rest.
func (t *Tile) Remove(obj *entity.Object) bool {
	for i, item := range t.Items {
		if item == obj {
			t.Items = append(t.Items[:i], t.Items[i+1:]...)
			return true
		}
	}
	return false
}

// Replace swaps old for obj in place, keeping its stack position.
func (t *Tile) Replace(old, obj *entity.Object) bool {
	for i, item := range t.Items {
		if item == old {
			t.Items[i] = obj
			return true
		}
	}
	return false
}
