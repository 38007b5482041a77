package game

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/floorcrawl/internal/ai"
	"github.com/samdwyer/floorcrawl/internal/entity"
	"github.com/samdwyer/floorcrawl/internal/gamedata"
	"github.com/samdwyer/floorcrawl/internal/logger"
	"github.com/samdwyer/floorcrawl/internal/persistence"
	"github.com/samdwyer/floorcrawl/internal/rng"
	"github.com/samdwyer/floorcrawl/internal/telemetry"
	"github.com/samdwyer/floorcrawl/internal/world"
)

// Main menu entries.
var mainMenuOptions = []string{"Play a new game", "Continue last game", "Quit"}

const (
	loadFailedText = "\nSaved game failed to load.\n"
	viewLogLines   = 50
)

// Game holds the entire game state.
type Game struct {
	cfg       Config
	catalog   *gamedata.Catalog
	store     persistence.Store
	surface   Surface
	observers []Observer

	rng    *rng.Rand
	gen    *world.Generator
	tracer trace.Tracer
	log    *logrus.Entry

	actors []*entity.Object
	world  *World
	fov    *world.FOV

	lastPlayerPos entity.Position
	fovDirty      bool
}

// New creates a game instance. No floor exists until NewGame, Continue or
// Restore is called.
func New(cfg Config, catalog *gamedata.Catalog, store persistence.Store, surface Surface) *Game {
	r := rng.New(cfg.Seed)
	return &Game{
		cfg:     cfg,
		catalog: catalog,
		store:   store,
		surface: surface,
		rng:     r,
		gen:     world.NewGenerator(catalog, cfg.Gen, r),
		tracer:  telemetry.Tracer("game"),
		log:     logger.Component("game").WithField("seed", r.Seed()),
	}
}

// AddObserver registers o to be notified after every turn.
func (g *Game) AddObserver(o Observer) {
	g.observers = append(g.observers, o)
}

// Actors returns the actor list; index 0 is the player.
func (g *Game) Actors() []*entity.Object {
	return g.actors
}

// World returns the current world state.
func (g *Game) World() *World {
	return g.world
}

// Player returns the player.
func (g *Game) Player() *entity.Object {
	return g.actors[ai.Player]
}

// FOV returns the player's current field of view.
func (g *Game) FOV() *world.FOV {
	return g.fov
}

// Rand returns the game's random source.
func (g *Game) Rand() *rng.Rand {
	return g.rng
}

// NewGame creates the player and the first floor.
func (g *Game) NewGame(ctx context.Context) {
	player := g.catalog.MustClass(gamedata.ClassPlayer).NewObject(0, 0)
	w := &World{Depth: 1}
	w.Map, g.actors = g.gen.MakeMap(ctx, []*entity.Object{player})
	g.Restore(g.actors, w)
	w.Log.Info("Welcome, survivor. The only way out is up.")
	g.log.WithField("depth", w.Depth).Info("new game")
}

// Restore installs an actor list and world, resetting the view.
func (g *Game) Restore(actors []*entity.Object, w *World) {
	g.actors = actors
	g.world = w
	g.fov = world.NewFOV(w.Map)
	g.fovDirty = true
}

// SaveGame writes the actor list and world to the configured slot.
func (g *Game) SaveGame(ctx context.Context) error {
	ctx, span := g.tracer.Start(ctx, "game.save")
	defer span.End()

	data, err := Encode(g.actors, g.world)
	if err == nil {
		err = g.store.Save(ctx, g.cfg.SaveSlot, data)
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "save failed")
		g.log.WithError(err).Error("save failed")
		return fmt.Errorf("save game: %w", err)
	}
	span.SetAttributes(attribute.Int("save.bytes", len(data)))
	g.log.WithFields(logrus.Fields{"slot": g.cfg.SaveSlot, "bytes": len(data)}).Info("game saved")
	return nil
}

// Continue loads the saved game from the configured slot.
func (g *Game) Continue(ctx context.Context) error {
	ctx, span := g.tracer.Start(ctx, "game.load")
	defer span.End()

	data, err := g.store.Load(ctx, g.cfg.SaveSlot)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "load failed")
		return fmt.Errorf("load game: %w", err)
	}
	actors, w, err := Decode(data)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "decode failed")
		return fmt.Errorf("load game: %w", err)
	}
	g.Restore(actors, w)
	span.SetAttributes(attribute.Int("world.depth", w.Depth), attribute.Int("world.turn", w.Turn))
	g.log.WithFields(logrus.Fields{"slot": g.cfg.SaveSlot, "depth": w.Depth}).Info("game loaded")
	return nil
}

// MainMenu runs the main menu until the player quits or ctx is cancelled,
// which returns ctx's error. Dismissing the menu shows it again. Otherwise
// only a failed save on exit or a broken surface ends it with an error.
func (g *Game) MainMenu(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		choice, ok := g.surface.Menu(ctx, "", mainMenuOptions)
		if !ok {
			continue
		}
		switch choice {
		case 0:
			g.NewGame(ctx)
		case 1:
			if err := g.Continue(ctx); err != nil {
				if !errors.Is(err, persistence.ErrNotFound) {
					g.log.WithError(err).Warn("continue failed")
				}
				g.surface.MessageBox(ctx, loadFailedText)
				continue
			}
		case 2:
			return nil
		default:
			continue
		}
		if err := g.Play(ctx); err != nil {
			return err
		}
	}
}

// Play runs the turn loop until the player exits, then saves.
func (g *Game) Play(ctx context.Context) error {
	for {
		g.refreshFOV()
		g.surface.Render(g.View())

		in, err := g.surface.NextInput(ctx)
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}
		if g.Step(ctx, in) == Exit {
			return g.SaveGame(ctx)
		}
	}
}

// Step resolves one player input and, when it took a turn, lets every
// monster act in actor list order.
func (g *Game) Step(ctx context.Context, in Input) ActionResult {
	ctx, span := g.tracer.Start(ctx, "game.turn")
	defer span.End()

	g.refreshFOV()
	result := g.HandleInput(ctx, in)
	span.SetAttributes(
		attribute.Int("game.turn", g.world.Turn),
		attribute.String("game.action", in.Command.String()),
		attribute.String("game.result", result.String()),
	)
	if result != TookTurn {
		return result
	}

	g.refreshFOV()
	if g.Player().Alive {
		g.runMonsters()
	}
	g.world.Turn++
	g.notify(ctx)
	return result
}

func (g *Game) runMonsters() {
	t := ai.Turn{
		Map:    g.world.Map,
		Actors: g.actors,
		FOV:    g.fov,
		Log:    &g.world.Log,
		Rand:   g.rng,
	}
	// Monsters killed earlier in the sweep have no Ai and are skipped.
	for id := range g.actors {
		if g.actors[id].Ai != nil {
			ai.TakeTurn(id, t)
		}
	}
}

// refreshFOV recomputes the field of view when the player moved or the
// floor changed since the last computation.
func (g *Game) refreshFOV() {
	player := g.Player()
	if !g.fovDirty && player.Pos() == g.lastPlayerPos {
		return
	}
	g.fov.Compute(g.world.Map, g.actors, player.X, player.Y, g.cfg.FOVRadius)
	g.lastPlayerPos = player.Pos()
	g.fovDirty = false
}

// View returns the current frame description.
func (g *Game) View() *View {
	return &View{
		Map:    g.world.Map,
		Actors: g.actors,
		FOV:    g.fov,
		Log:    g.world.Log.Tail(viewLogLines),
		Depth:  g.world.Depth,
		Turn:   g.world.Turn,
		Player: g.Player(),
	}
}

func (g *Game) notify(ctx context.Context) {
	if len(g.observers) == 0 {
		return
	}
	v := g.View()
	for _, o := range g.observers {
		o.Observe(ctx, v)
	}
}

// nextFloor replaces the floor, keeping only the player.
func (g *Game) nextFloor(ctx context.Context) {
	ctx, span := g.tracer.Start(ctx, "game.next_floor")
	defer span.End()

	m, actors := g.gen.MakeMap(ctx, g.actors)
	g.world.Map = m
	g.world.Depth++
	g.Restore(actors, g.world)

	span.SetAttributes(attribute.Int("world.depth", g.world.Depth), attribute.Int("world.actors", len(actors)))
	g.log.WithField("depth", g.world.Depth).Info("next floor")
	g.refreshFOV()
	g.notify(ctx)
}
