package world

import (
	"math"

	"github.com/samdwyer/floorcrawl/internal/entity"
)

// MoveBy steps actors[id] by (dx, dy) when the target cell does not block
// at all. A blocked move is a silent no-op and reports false.
func MoveBy(m *Map, actors []*entity.Object, id, dx, dy int) bool {
	a := actors[id]
	x, y := a.X+dx, a.Y+dy
	if m.IsBlocked(x, y, actors) != entity.BlocksNo {
		return false
	}
	a.SetPos(x, y)
	return true
}

// MoveTowards takes one rounded unit step from actors[id] toward (tx, ty).
// There is no pathfinding, so actors can get stuck behind obstacles.
func MoveTowards(m *Map, actors []*entity.Object, id, tx, ty int) bool {
	a := actors[id]
	dx := float64(tx - a.X)
	dy := float64(ty - a.Y)
	distance := math.Hypot(dx, dy)
	if distance == 0 {
		return false
	}
	return MoveBy(m, actors, id, int(math.Round(dx/distance)), int(math.Round(dy/distance)))
}

// FighterAt returns the index of the first actor with a Fighter at (x, y), or -1.
func FighterAt(actors []*entity.Object, x, y int) int {
	for i, a := range actors {
		if a.Fighter != nil && a.At(x, y) {
			return i
		}
	}
	return -1
}
