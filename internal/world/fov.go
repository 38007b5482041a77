package world

import "github.com/samdwyer/floorcrawl/internal/entity"

// octants transforms row/column offsets into each of the eight octants.
var octants = [4][8]int{
	{1, 0, 0, -1, -1, 0, 0, 1},
	{0, 1, -1, 0, 0, -1, 1, 0},
	{0, 1, 1, 0, 0, -1, -1, 0},
	{1, 0, 0, 1, -1, 0, 0, -1},
}

// FOV is the set of cells currently visible from one observer.
type FOV struct {
	width, height int
	visible       []bool
}

// NewFOV creates an empty field of view sized for m.
func NewFOV(m *Map) *FOV {
	return &FOV{width: m.Width, height: m.Height, visible: make([]bool, m.Width*m.Height)}
}

// IsVisible reports whether (x, y) was visible at the last Compute.
func (f *FOV) IsVisible(x, y int) bool {
	if x < 0 || y < 0 || x >= f.width || y >= f.height {
		return false
	}
	return f.visible[y*f.width+x]
}

// Count returns the number of visible cells.
func (f *FOV) Count() int {
	n := 0
	for _, v := range f.visible {
		if v {
			n++
		}
	}
	return n
}

// Compute recalculates visibility from (ox, oy) with recursive shadowcasting
// and marks every visible tile explored. Cells whose sight blocking is Full
// stop light but are themselves visible.
func (f *FOV) Compute(m *Map, actors []*entity.Object, ox, oy, radius int) {
	clear(f.visible)
	if radius <= 0 || !m.InBounds(ox, oy) {
		return
	}

	opaque := func(x, y int) bool {
		return m.BlocksView(x, y, actors) == entity.BlocksFull
	}
	f.light(m, ox, oy)
	for i := 0; i < 8; i++ {
		f.castLight(m, opaque, ox, oy, 1, 1.0, 0.0, radius,
			octants[0][i], octants[1][i], octants[2][i], octants[3][i])
	}
}

func (f *FOV) light(m *Map, x, y int) {
	f.visible[y*f.width+x] = true
	m.Tiles[y][x].Explored = true
}

func (f *FOV) castLight(m *Map, opaque func(x, y int) bool, cx, cy, row int, start, end float64, radius, xx, xy, yx, yy int) {
	if start < end {
		return
	}
	radiusSq := radius * radius

	for j := row; j <= radius; j++ {
		dx, dy := -j-1, -j
		blocked := false
		newStart := start

		for {
			dx++
			if dx > 0 {
				break
			}

			lSlope := (float64(dx) - 0.5) / (float64(dy) + 0.5)
			rSlope := (float64(dx) + 0.5) / (float64(dy) - 0.5)
			if start < rSlope {
				continue
			}
			if end > lSlope {
				break
			}

			x := cx + dx*xx + dy*xy
			y := cy + dx*yx + dy*yy
			if m.InBounds(x, y) && dx*dx+dy*dy <= radiusSq {
				f.light(m, x, y)
			}

			if blocked {
				if opaque(x, y) {
					newStart = rSlope
					continue
				}
				blocked = false
				start = newStart
			} else if opaque(x, y) && j < radius {
				blocked = true
				f.castLight(m, opaque, cx, cy, j+1, start, lSlope, radius, xx, xy, yx, yy)
				newStart = rSlope
			}
		}
		if blocked {
			break
		}
	}
}
