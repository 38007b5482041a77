package world

import "github.com/samdwyer/floorcrawl/internal/entity"

// ASCII draws the whole floor, one string per row: the top object of each
// tile with live actors over everything else.
func ASCII(m *Map, actors []*entity.Object) []string {
	grid := make([][]rune, m.Height)
	for y := range grid {
		grid[y] = make([]rune, m.Width)
		for x := range grid[y] {
			grid[y][x] = ' '
			if top := m.Tiles[y][x].Top(); top != nil {
				grid[y][x] = top.Symbol
			}
		}
	}
	for _, a := range actors {
		if a.Alive && m.InBounds(a.X, a.Y) {
			grid[a.Y][a.X] = a.Symbol
		}
	}
	rows := make([]string, m.Height)
	for y, row := range grid {
		rows[y] = string(row)
	}
	return rows
}
