package world

import (
	"context"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/floorcrawl/internal/entity"
	"github.com/samdwyer/floorcrawl/internal/gamedata"
	"github.com/samdwyer/floorcrawl/internal/logger"
	"github.com/samdwyer/floorcrawl/internal/rng"
	"github.com/samdwyer/floorcrawl/internal/telemetry"
)

// GenConfig tunes floor generation.
type GenConfig struct {
	Width  int
	Height int

	// BSP parameters
	MinLeafSize int // smallest partition edge, walls included
	MaxDepth    int

	MaxRoomItems int // usable items per room, 0..MaxRoomItems
	MaxDressing  int // environmental weapons per floor, 1..MaxDressing

	// Monsters per floor are rolled as MonsterDice d MonsterSides.
	MonsterDice  int
	MonsterSides int
}

// DefaultGenConfig returns the standard floor layout.
func DefaultGenConfig() GenConfig {
	return GenConfig{
		Width:        DefaultWidth,
		Height:       DefaultHeight,
		MinLeafSize:  8,
		MaxDepth:     4,
		MaxRoomItems: 1,
		MaxDressing:  2,
		MonsterDice:  2,
		MonsterSides: 4,
	}
}

// Generator builds floors from the object catalog.
type Generator struct {
	catalog *gamedata.Catalog
	cfg     GenConfig
	rng     *rng.Rand
	dice    dice.Roller

	wall, floor, door, entrance, stairs *gamedata.ObjectClass
	monsters, items, dressing           *gamedata.Randomizer
}

// NewGenerator creates a generator. Every class and category it needs must
// exist in catalog; a missing one is a broken content file and panics.
func NewGenerator(catalog *gamedata.Catalog, cfg GenConfig, r *rng.Rand) *Generator {
	return &Generator{
		catalog:  catalog,
		cfg:      cfg,
		rng:      r,
		dice:     r,
		wall:     catalog.MustClass(gamedata.ClassWall),
		floor:    catalog.MustClass(gamedata.ClassFloor),
		door:     catalog.MustClass(gamedata.ClassDoor),
		entrance: catalog.MustClass(gamedata.ClassEntrance),
		stairs:   catalog.MustClass(gamedata.ClassStairs),
		monsters: catalog.Randomizer(gamedata.CategoryMonster),
		items:    catalog.Randomizer(gamedata.CategoryItem),
		dressing: catalog.Randomizer(gamedata.CategoryDressing),
	}
}

// SetDice replaces the roller used for monster counts.
func (g *Generator) SetDice(d dice.Roller) {
	g.dice = d
}

// Config returns the generator's configuration.
func (g *Generator) Config() GenConfig {
	return g.cfg
}

// MakeMap generates a new floor. The player at actors[0] is kept and moved
// to the entry; every other actor is dropped. The returned actor list holds
// the player followed by the floor's monsters.
func (g *Generator) MakeMap(ctx context.Context, actors []*entity.Object) (*Map, []*entity.Object) {
	_, span := telemetry.Tracer("world").Start(ctx, "floor.generate")
	defer span.End()
	startTime := time.Now()

	player := actors[0]
	actors = []*entity.Object{player}

	m := NewMap(g.cfg.Width, g.cfg.Height, g.wall.NewObject)

	root := &bspNode{rect: Rect{X1: 0, Y1: 0, X2: m.Width, Y2: m.Height}}
	g.partition(root)

	// Children before parents, so every partition is carved before its
	// parent joins it to its sibling.
	tree := levels(root)
	for i := len(tree) - 1; i >= 0; i-- {
		for _, n := range tree[i] {
			if n.isLeaf() {
				g.carveRoom(m, n)
				continue
			}
			n.rect = n.left.rect.Union(n.right.rect)
			g.connect(m, n)
		}
	}

	entry := g.placeEntry(m, player)
	g.placeStairs(m, entry)
	g.placeDressing(m, actors)
	itemCount := g.placeItems(m, entry, actors)
	actors = g.placeMonsters(m, entry, actors)

	log := logger.Component("generator").WithFields(logrus.Fields{
		"seed":     g.rng.Seed(),
		"rooms":    len(m.Rooms),
		"monsters": len(actors) - 1,
		"items":    itemCount,
	})
	if missing := UnreachableRooms(m, m.Entry); len(missing) > 0 {
		log.WithField("unreachable", missing).Warn("floor has unreachable rooms")
	} else {
		log.Debug("floor generated")
	}

	span.SetAttributes(
		attribute.Int("floor.width", m.Width),
		attribute.Int("floor.height", m.Height),
		attribute.Int("floor.rooms", len(m.Rooms)),
		attribute.Int("floor.monsters", len(actors)-1),
		attribute.Int("floor.items", itemCount),
		attribute.Int64("floor.generation_ms", time.Since(startTime).Milliseconds()),
	)
	return m, actors
}

// placeEntry finds the room at the top-left anchor, puts the player there,
// and cuts the entrance into the wall above. It returns the room's index.
func (g *Generator) placeEntry(m *Map, player *entity.Object) int {
	entry := m.RoomIndexAt(1, 1)
	if entry < 0 {
		entry = 0
	}
	room := m.Rooms[entry]

	m.Entry = entity.Position{X: room.X1 + 1, Y: room.Y1}
	player.SetPos(m.Entry.X, m.Entry.Y)
	m.SetTerrain(g.entrance.NewObject(m.Entry.X, room.Y1-1))
	return entry
}

// placeStairs prefers a room touching the far edges of the floor. Among
// several, the first found wins unless a later one is picked at random.
func (g *Generator) placeStairs(m *Map, entry int) {
	chosen, seen := -1, 0
	for i, room := range m.Rooms {
		if i == entry || (room.X2 < m.Width-2 && room.Y2 < m.Height-2) {
			continue
		}
		seen++
		if chosen < 0 || g.rng.Intn(seen) == 0 {
			chosen = i
		}
	}
	if chosen < 0 {
		chosen = len(m.Rooms) - 1
		if chosen == entry && chosen > 0 {
			chosen--
		}
	}

	x, y := m.Rooms[chosen].Center()
	m.Stairs = entity.Position{X: x, Y: y}
	m.Place(g.stairs.NewObject(x, y))
}

// placeDressing leaves one or two environmental weapons just inside the
// corner of random rooms.
func (g *Generator) placeDressing(m *Map, actors []*entity.Object) {
	if g.dressing == nil {
		return
	}
	count := g.rng.Range(1, g.cfg.MaxDressing)
	for i := 0; i < count; i++ {
		room := m.Rooms[g.rng.Intn(len(m.Rooms))]
		x, y := room.X1+1, room.Y1+1
		if m.IsBlocked(x, y, actors) == entity.BlocksNo {
			m.Place(g.dressing.Spawn(g.rng, x, y))
		}
	}
}

func (g *Generator) placeItems(m *Map, entry int, actors []*entity.Object) int {
	if g.items == nil {
		return 0
	}
	placed := 0
	for i, room := range m.Rooms {
		if i == entry {
			continue
		}
		count := g.rng.Range(0, g.cfg.MaxRoomItems)
		for j := 0; j < count; j++ {
			x, y := g.randomCell(room)
			if m.IsBlocked(x, y, actors) != entity.BlocksNo {
				continue
			}
			m.Place(g.items.Spawn(g.rng, x, y))
			placed++
		}
	}
	return placed
}

// placeMonsters scatters a rolled number of monsters over rooms other than
// the entry. A spawn landing on a blocked cell is skipped, not retried.
func (g *Generator) placeMonsters(m *Map, entry int, actors []*entity.Object) []*entity.Object {
	if g.monsters == nil || len(m.Rooms) < 2 || g.cfg.MonsterDice <= 0 {
		return actors
	}
	rolls, err := g.dice.RollN(g.cfg.MonsterDice, g.cfg.MonsterSides)
	if err != nil {
		logger.Component("generator").WithError(err).Warn("monster roll failed")
		return actors
	}
	count := 0
	for _, r := range rolls {
		count += r
	}

	for i := 0; i < count; i++ {
		idx := g.rng.Intn(len(m.Rooms) - 1)
		if idx >= entry {
			idx++
		}
		x, y := g.randomCell(m.Rooms[idx])
		if m.IsBlocked(x, y, actors) != entity.BlocksNo {
			continue
		}
		actors = append(actors, g.monsters.Spawn(g.rng, x, y))
	}
	return actors
}

func (g *Generator) randomCell(room Rect) (int, int) {
	return g.rng.Range(room.X1, room.X2), g.rng.Range(room.Y1, room.Y2)
}

func (g *Generator) isFloor(m *Map, x, y int) bool {
	t := m.Tile(x, y)
	return t != nil && t.Blocks() == entity.BlocksNo
}

func (g *Generator) setFloor(m *Map, x, y int) {
	m.SetTerrain(g.floor.NewObject(x, y))
}

func (g *Generator) setDoor(m *Map, x, y int) {
	m.SetTerrain(g.door.NewObject(x, y))
}
