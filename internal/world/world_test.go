package world

import (
	"testing"

	"github.com/samdwyer/floorcrawl/internal/entity"
)

// openMap returns a floor with nothing but walkable ground.
func openMap(w, h int) *Map {
	return NewMap(w, h, func(x, y int) *entity.Object {
		return entity.New(x, y, '.', "floor", entity.ColorWhite, entity.BlocksNo)
	})
}

func wallAt(x, y int) *entity.Object {
	o := entity.New(x, y, '#', "wall", entity.ColorWhite, entity.BlocksFull)
	o.BlocksView = entity.BlocksFull
	return o
}

func actorAt(x, y int) *entity.Object {
	a := entity.New(x, y, 'Z', "zombie", entity.ColorWhite, entity.BlocksFull)
	a.Alive = true
	a.Fighter = &entity.Fighter{MaxHP: 5, HP: 5}
	return a
}

func TestRect(t *testing.T) {
	r := Rect{X1: 2, Y1: 3, X2: 6, Y2: 9}
	if x, y := r.Center(); x != 4 || y != 6 {
		t.Errorf("Center() = (%d,%d), want (4,6)", x, y)
	}
	if r.Width() != 5 || r.Height() != 7 {
		t.Errorf("size = %dx%d, want 5x7", r.Width(), r.Height())
	}
	if !r.Contains(2, 3) || !r.Contains(6, 9) || r.Contains(7, 9) {
		t.Error("Contains should be inclusive of both corners only")
	}

	tests := []struct {
		other Rect
		want  bool
	}{
		{Rect{X1: 6, Y1: 9, X2: 8, Y2: 10}, true},
		{Rect{X1: 7, Y1: 0, X2: 8, Y2: 20}, false},
		{Rect{X1: 0, Y1: 0, X2: 20, Y2: 20}, true},
	}
	for _, tt := range tests {
		if got := r.Intersects(tt.other); got != tt.want {
			t.Errorf("Intersects(%+v) = %v, want %v", tt.other, got, tt.want)
		}
	}

	u := r.Union(Rect{X1: 0, Y1: 5, X2: 3, Y2: 12})
	if u != (Rect{X1: 0, Y1: 3, X2: 6, Y2: 12}) {
		t.Errorf("Union = %+v", u)
	}
}

func TestIsBlockedFoldsItemsAndActors(t *testing.T) {
	m := openMap(5, 5)
	var actors []*entity.Object

	if got := m.IsBlocked(2, 2, actors); got != entity.BlocksNo {
		t.Fatalf("empty floor blocks = %v", got)
	}

	crate := entity.New(2, 2, '=', "crate", entity.ColorWhite, entity.BlocksHalf)
	m.Place(crate)
	if got := m.IsBlocked(2, 2, actors); got != entity.BlocksHalf {
		t.Errorf("with crate = %v, want half", got)
	}

	m.Place(wallAt(2, 2))
	if got := m.IsBlocked(2, 2, actors); got != entity.BlocksFull {
		t.Errorf("adding a full item must not lower blocking, got %v", got)
	}

	// An actor never makes a fully blocked tile less blocked.
	ghost := actorAt(2, 2)
	ghost.Blocks = entity.BlocksNo
	actors = append(actors, ghost)
	if got := m.IsBlocked(2, 2, actors); got != entity.BlocksFull {
		t.Errorf("actor on wall = %v, want full", got)
	}

	actors = append(actors, actorAt(3, 3))
	if got := m.IsBlocked(3, 3, actors); got != entity.BlocksFull {
		t.Errorf("live actor = %v, want full", got)
	}
	actors[1].Alive = false
	if got := m.IsBlocked(3, 3, actors); got != entity.BlocksNo {
		t.Errorf("dead actor = %v, want no", got)
	}

	if got := m.IsBlocked(-1, 0, actors); got != entity.BlocksFull {
		t.Errorf("out of bounds = %v, want full", got)
	}
}

func TestBlocksViewIgnoresMovementOnly(t *testing.T) {
	m := openMap(3, 3)
	actors := []*entity.Object{actorAt(1, 1)}
	if got := m.BlocksView(1, 1, actors); got != entity.BlocksNo {
		t.Errorf("actor blocks view = %v, want no", got)
	}
	m.Place(wallAt(1, 1))
	if got := m.BlocksView(1, 1, actors); got != entity.BlocksFull {
		t.Errorf("wall blocks view = %v, want full", got)
	}
}

func TestMoveByWall(t *testing.T) {
	m := openMap(10, 10)
	m.Place(wallAt(6, 5))
	actors := []*entity.Object{actorAt(5, 5)}

	if MoveBy(m, actors, 0, 1, 0) {
		t.Error("move into wall should fail")
	}
	if actors[0].X != 5 || actors[0].Y != 5 {
		t.Errorf("position = (%d,%d), want (5,5)", actors[0].X, actors[0].Y)
	}

	if !MoveBy(m, actors, 0, 0, 1) {
		t.Error("move onto open floor should succeed")
	}
	if actors[0].Y != 6 {
		t.Errorf("y = %d, want 6", actors[0].Y)
	}
}

func TestMoveByHalfBlockedFails(t *testing.T) {
	m := openMap(4, 4)
	m.Place(entity.New(2, 1, '=', "crate", entity.ColorWhite, entity.BlocksHalf))
	actors := []*entity.Object{actorAt(1, 1)}
	if MoveBy(m, actors, 0, 1, 0) {
		t.Error("movement needs a cell that does not block at all")
	}
}

func TestMoveTowards(t *testing.T) {
	tests := []struct {
		name   string
		tx, ty int
		wx, wy int
	}{
		{"east", 9, 5, 6, 5},
		{"north west diagonal", 2, 2, 4, 4},
		{"mostly south", 6, 9, 5, 6},
		{"same cell", 5, 5, 5, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := openMap(10, 10)
			actors := []*entity.Object{actorAt(5, 5)}
			MoveTowards(m, actors, 0, tt.tx, tt.ty)
			if actors[0].X != tt.wx || actors[0].Y != tt.wy {
				t.Errorf("position = (%d,%d), want (%d,%d)", actors[0].X, actors[0].Y, tt.wx, tt.wy)
			}
		})
	}
}

func TestFighterAt(t *testing.T) {
	rock := entity.New(1, 1, '*', "rock", entity.ColorWhite, entity.BlocksNo)
	actors := []*entity.Object{rock, actorAt(1, 1)}
	if got := FighterAt(actors, 1, 1); got != 1 {
		t.Errorf("FighterAt = %d, want 1", got)
	}
	if got := FighterAt(actors, 0, 0); got != -1 {
		t.Errorf("FighterAt empty cell = %d, want -1", got)
	}
}

func TestTileHelpers(t *testing.T) {
	m := openMap(3, 3)
	tile := m.Tile(1, 1)
	kit := entity.New(1, 1, '!', "first aid kit", entity.ColorWhite, entity.BlocksNo)
	m.Place(kit)

	if tile.Terrain().Name != "floor" || tile.Top() != kit {
		t.Error("terrain stays at index 0 with items on top")
	}
	if tile.Find("first aid kit") != kit {
		t.Error("Find should locate the kit")
	}
	if !tile.Remove(kit) || tile.Remove(kit) {
		t.Error("Remove should succeed exactly once")
	}
	if m.Tile(3, 0) != nil {
		t.Error("Tile out of bounds should be nil")
	}
}

func TestFOVStopsAtWalls(t *testing.T) {
	m := openMap(11, 11)
	// A wall line at x == 7 from y 0..10.
	for y := 0; y < 11; y++ {
		m.SetTerrain(wallAt(7, y))
	}
	fov := NewFOV(m)
	fov.Compute(m, nil, 5, 5, 8)

	if !fov.IsVisible(5, 5) {
		t.Error("observer cell must be visible")
	}
	if !fov.IsVisible(6, 5) || !fov.IsVisible(7, 5) {
		t.Error("floor and the wall face should be visible")
	}
	if fov.IsVisible(8, 5) || fov.IsVisible(9, 5) {
		t.Error("cells behind the wall must not be visible")
	}
	if !m.Tiles[5][7].Explored || m.Tiles[5][9].Explored {
		t.Error("only visible cells become explored")
	}

	// Explored flags persist across recomputes.
	fov.Compute(m, nil, 1, 1, 1)
	if fov.IsVisible(7, 5) {
		t.Error("visibility should be recomputed")
	}
	if !m.Tiles[5][7].Explored {
		t.Error("explored must persist")
	}
}

func TestFOVRadius(t *testing.T) {
	m := openMap(30, 30)
	fov := NewFOV(m)
	fov.Compute(m, nil, 15, 15, 3)
	if !fov.IsVisible(15, 12) || fov.IsVisible(15, 11) {
		t.Error("radius should bound visibility")
	}
	fov.Compute(m, nil, 15, 15, 0)
	if fov.Count() != 0 {
		t.Errorf("blind observer sees %d cells", fov.Count())
	}
}

func TestReachableThroughDoor(t *testing.T) {
	m := openMap(7, 3)
	for y := 0; y < 3; y++ {
		m.SetTerrain(wallAt(3, y))
	}
	start := entity.Position{X: 1, Y: 1}
	if Reachable(m, start).Has(entity.Position{X: 5, Y: 1}) {
		t.Fatal("wall should separate the halves")
	}

	door := wallAt(3, 1)
	door.OpensInto = "open door"
	m.SetTerrain(door)
	if !Reachable(m, start).Has(entity.Position{X: 5, Y: 1}) {
		t.Error("a closed door should count as a passage")
	}
}

func TestTileReplaceKeepsOrder(t *testing.T) {
	m := openMap(3, 3)
	door := wallAt(1, 1)
	m.SetTerrain(door)
	item := entity.New(1, 1, '/', "crowbar", entity.ColorWhite, entity.BlocksNo)
	m.Place(item)

	open := entity.New(1, 1, '\'', "open door", entity.ColorWhite, entity.BlocksNo)
	tile := m.Tile(1, 1)
	if !tile.Replace(door, open) {
		t.Fatal("Replace() = false for an object on the tile")
	}
	if tile.Terrain() != open || tile.Top() != item {
		t.Errorf("stack = %v, want open door under crowbar", tile.Items)
	}
	if tile.Replace(door, open) {
		t.Error("Replace() = true for an object no longer on the tile")
	}
}

func TestASCII(t *testing.T) {
	m := openMap(4, 3)
	m.SetTerrain(wallAt(0, 1))
	m.Place(entity.New(2, 2, '/', "crowbar", entity.ColorWhite, entity.BlocksNo))
	dead := actorAt(3, 0)
	dead.Alive = false
	actors := []*entity.Object{actorAt(1, 1), dead}

	got := ASCII(m, actors)

	want := []string{"....", "#Z..", "../."}
	for y := range want {
		if got[y] != want[y] {
			t.Errorf("row %d = %q, want %q", y, got[y], want[y])
		}
	}
}
