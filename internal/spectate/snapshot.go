// Package spectate streams the game to read-only websocket viewers.
package spectate

import (
	"github.com/samdwyer/floorcrawl/internal/game"
	"github.com/samdwyer/floorcrawl/internal/msglog"
)

// ActorView is a visible actor.
type ActorView struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
	X      int    `json:"x"`
	Y      int    `json:"y"`
	HP     int    `json:"hp"`
	MaxHP  int    `json:"max_hp"`
}

// Snapshot is what a spectator receives after every turn. Rows hold one
// glyph per cell: what the player sees now, remembered terrain for explored
// cells, and a space for the unknown.
type Snapshot struct {
	Depth  int              `json:"depth"`
	Turn   int              `json:"turn"`
	Width  int              `json:"width"`
	Height int              `json:"height"`
	Rows   []string         `json:"rows"`
	Actors []ActorView      `json:"actors"`
	Log    []msglog.Message `json:"log"`
}

const snapshotLogLines = 5

// NewSnapshot builds a snapshot limited to what the player knows.
func NewSnapshot(v *game.View) Snapshot {
	m := v.Map
	s := Snapshot{
		Depth:  v.Depth,
		Turn:   v.Turn,
		Width:  m.Width,
		Height: m.Height,
		Rows:   make([]string, m.Height),
	}

	grid := make([][]rune, m.Height)
	for y := range grid {
		grid[y] = make([]rune, m.Width)
		for x := range grid[y] {
			grid[y][x] = ' '
			t := m.Tile(x, y)
			switch {
			case v.FOV.IsVisible(x, y):
				if top := t.Top(); top != nil {
					grid[y][x] = top.Symbol
				}
			case t.Explored:
				if terrain := t.Terrain(); terrain != nil {
					grid[y][x] = terrain.Symbol
				}
			}
		}
	}

	for _, a := range v.Actors {
		if !v.FOV.IsVisible(a.X, a.Y) {
			continue
		}
		av := ActorView{ID: a.ID, Name: a.Name, Symbol: string(a.Symbol), X: a.X, Y: a.Y}
		if a.Fighter != nil {
			av.HP, av.MaxHP = a.Fighter.HP, a.Fighter.MaxHP
		}
		s.Actors = append(s.Actors, av)
	}
	// Remains first so live actors are drawn over them.
	for _, alive := range []bool{false, true} {
		for _, a := range v.Actors {
			if a.Alive == alive && v.FOV.IsVisible(a.X, a.Y) {
				grid[a.Y][a.X] = a.Symbol
			}
		}
	}

	for y, row := range grid {
		s.Rows[y] = string(row)
	}
	if n := len(v.Log); n > snapshotLogLines {
		s.Log = v.Log[n-snapshotLogLines:]
	} else {
		s.Log = v.Log
	}
	return s
}
