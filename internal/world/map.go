package world

import "github.com/samdwyer/floorcrawl/internal/entity"

const (
	// Default floor dimensions.
	DefaultWidth  = 80
	DefaultHeight = 43
)

// Map is one floor.
type Map struct {
	Width  int      `json:"width"`
	Height int      `json:"height"`
	Tiles  [][]Tile `json:"tiles"`

	// Entry is where the player arrives; Stairs is the way up.
	Entry  entity.Position `json:"entry"`
	Stairs entity.Position `json:"stairs"`

	// Rooms are the carved interiors, kept only while a floor is populated.
	Rooms []Rect `json:"-"`
}

// NewMap creates a floor where every cell holds one object from fill.
func NewMap(width, height int, fill func(x, y int) *entity.Object) *Map {
	tiles := make([][]Tile, height)
	for y := range tiles {
		tiles[y] = make([]Tile, width)
		for x := range tiles[y] {
			tiles[y][x].Items = []*entity.Object{fill(x, y)}
		}
	}
	return &Map{Width: width, Height: height, Tiles: tiles}
}

// InBounds reports whether (x, y) is on the floor.
func (m *Map) InBounds(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// Tile returns the tile at (x, y), or nil when out of bounds.
func (m *Map) Tile(x, y int) *Tile {
	if !m.InBounds(x, y) {
		return nil
	}
	return &m.Tiles[y][x]
}

// SetTerrain replaces the whole stack at the object's position with obj.
func (m *Map) SetTerrain(obj *entity.Object) {
	m.Tiles[obj.Y][obj.X].Items = []*entity.Object{obj}
}

// Place puts obj on top of the stack at its position.
func (m *Map) Place(obj *entity.Object) {
	t := &m.Tiles[obj.Y][obj.X]
	t.Items = append(t.Items, obj)
}

// IsBlocked returns how strongly (x, y) blocks movement: the most
// restrictive of the tile's items and any live actor standing there.
// Cells off the floor are fully blocked.
func (m *Map) IsBlocked(x, y int, actors []*entity.Object) entity.Blocks {
	t := m.Tile(x, y)
	if t == nil {
		return entity.BlocksFull
	}
	b := t.Blocks()
	if b == entity.BlocksFull {
		return b
	}
	for _, a := range actors {
		if a.Alive && a.At(x, y) {
			if b = entity.MaxBlocks(b, a.Blocks); b == entity.BlocksFull {
				return b
			}
		}
	}
	return b
}

// BlocksView is IsBlocked for line of sight.
func (m *Map) BlocksView(x, y int, actors []*entity.Object) entity.Blocks {
	t := m.Tile(x, y)
	if t == nil {
		return entity.BlocksFull
	}
	b := t.BlocksView()
	if b == entity.BlocksFull {
		return b
	}
	for _, a := range actors {
		if a.Alive && a.At(x, y) {
			if b = entity.MaxBlocks(b, a.BlocksView); b == entity.BlocksFull {
				return b
			}
		}
	}
	return b
}

// IsPassable reports whether terrain alone lets something walk through
// (x, y), treating doors as passable since they can be opened.
func (m *Map) IsPassable(x, y int) bool {
	t := m.Tile(x, y)
	if t == nil {
		return false
	}
	return t.Blocks() != entity.BlocksFull || t.Door() != nil
}

// RoomIndexAt returns the index of the room containing the position, or -1.
func (m *Map) RoomIndexAt(x, y int) int {
	for i, room := range m.Rooms {
		if room.Contains(x, y) {
			return i
		}
	}
	return -1
}

// Explore marks every tile as explored.
func (m *Map) Explore() {
	for y := range m.Tiles {
		for x := range m.Tiles[y] {
			m.Tiles[y][x].Explored = true
		}
	}
}
