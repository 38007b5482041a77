package world

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/samdwyer/floorcrawl/internal/entity"
)

var neighbours = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// Reachable returns every cell that can be walked to from start, ignoring
// actors and treating doors as open.
func Reachable(m *Map, start entity.Position) mapset.Set[entity.Position] {
	seen := mapset.New[entity.Position]()
	if !m.IsPassable(start.X, start.Y) {
		return seen
	}

	queue := []entity.Position{start}
	seen.Put(start)
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		for _, d := range neighbours {
			next := entity.Position{X: cur.X + d[0], Y: cur.Y + d[1]}
			if seen.Has(next) || !m.IsPassable(next.X, next.Y) {
				continue
			}
			seen.Put(next)
			queue = append(queue, next)
		}
	}
	return seen
}

// UnreachableRooms returns the indexes of rooms with no cell reachable from start.
func UnreachableRooms(m *Map, start entity.Position) []int {
	reach := Reachable(m, start)
	var missing []int
	for i, room := range m.Rooms {
		cx, cy := room.Center()
		if !reach.Has(entity.Position{X: cx, Y: cy}) {
			missing = append(missing, i)
		}
	}
	return missing
}
