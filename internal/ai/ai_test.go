package ai

import (
	"testing"

	"github.com/samdwyer/floorcrawl/internal/entity"
	"github.com/samdwyer/floorcrawl/internal/msglog"
	"github.com/samdwyer/floorcrawl/internal/rng"
	"github.com/samdwyer/floorcrawl/internal/world"
)

func openMap(w, h int) *world.Map {
	return world.NewMap(w, h, func(x, y int) *entity.Object {
		return entity.New(x, y, '.', "floor", entity.ColorWhite, entity.BlocksNo)
	})
}

func fighter(x, y int, name string, power, defense int, cb entity.DeathCallback) *entity.Object {
	o := entity.New(x, y, 'Z', name, entity.ColorWhite, entity.BlocksFull)
	o.Alive = true
	o.Fighter = &entity.Fighter{MaxHP: 10, HP: 10, Power: power, Defense: defense, OnDeath: cb}
	return o
}

type scene struct {
	turn   Turn
	player *entity.Object
}

// newScene puts the player at (2,2) on an open 20x20 floor, followed by monsters.
func newScene(monsters ...*entity.Object) *scene {
	m := openMap(20, 20)
	player := fighter(2, 2, "player", 5, 0, entity.PlayerDeath)
	actors := append([]*entity.Object{player}, monsters...)
	fov := world.NewFOV(m)
	fov.Compute(m, actors, player.X, player.Y, 6)
	return &scene{
		turn: Turn{
			Map:    m,
			Actors: actors,
			FOV:    fov,
			Log:    &msglog.Log{},
			Rand:   rng.New(1),
		},
		player: player,
	}
}

func TestBasicChasesVisiblePlayer(t *testing.T) {
	z := fighter(6, 2, "runner zombie", 3, 0, entity.MonsterDeath)
	z.Ai = &entity.Ai{Kind: entity.AiBasic}
	s := newScene(z)

	TakeTurn(1, s.turn)

	if z.X != 5 || z.Y != 2 {
		t.Errorf("zombie at (%d,%d), want (5,2)", z.X, z.Y)
	}
	if z.Ai == nil || z.Ai.Kind != entity.AiBasic {
		t.Errorf("ai = %+v, want basic", z.Ai)
	}
}

func TestBasicAttacksAdjacentPlayer(t *testing.T) {
	z := fighter(3, 3, "runner zombie", 3, 0, entity.MonsterDeath)
	z.Ai = &entity.Ai{Kind: entity.AiBasic}
	s := newScene(z)

	TakeTurn(1, s.turn)

	if s.player.Fighter.HP != 7 {
		t.Errorf("player hp = %d, want 7", s.player.Fighter.HP)
	}
	if z.X != 3 || z.Y != 3 {
		t.Error("attacking zombie should not move")
	}
}

func TestNoAttackOnDeadPlayer(t *testing.T) {
	z := fighter(3, 2, "runner zombie", 3, 0, entity.MonsterDeath)
	z.Ai = &entity.Ai{Kind: entity.AiChrysalis}
	s := newScene(z)
	s.player.Fighter.HP = 0

	TakeTurn(1, s.turn)

	if s.turn.Log.Len() != 0 {
		t.Errorf("dead player was attacked: %+v", s.turn.Log.Messages)
	}
}

func TestBasicWandersOutOfView(t *testing.T) {
	z := fighter(15, 15, "runner zombie", 3, 0, entity.MonsterDeath)
	z.Ai = &entity.Ai{Kind: entity.AiBasic}
	s := newScene(z)

	moved := false
	for i := 0; i < 20; i++ {
		before := z.Pos()
		TakeTurn(1, s.turn)
		after := z.Pos()
		if after != before {
			moved = true
		}
		if abs(after.X-before.X) > 1 || abs(after.Y-before.Y) > 1 {
			t.Fatalf("wander jumped from %+v to %+v", before, after)
		}
	}
	if !moved {
		t.Error("basic zombie never wandered in 20 turns")
	}
}

func TestChrysalisWaitsOutOfView(t *testing.T) {
	z := fighter(15, 15, "Chrysalis zombie", 3, 0, entity.MonsterDeath)
	z.Ai = &entity.Ai{Kind: entity.AiChrysalis}
	s := newScene(z)

	for i := 0; i < 10; i++ {
		TakeTurn(1, s.turn)
	}
	if z.X != 15 || z.Y != 15 {
		t.Errorf("chrysalis moved to (%d,%d)", z.X, z.Y)
	}
	if z.Ai.Kind != entity.AiChrysalis {
		t.Errorf("ai = %v, want chrysalis", z.Ai.Kind)
	}
}

func TestStunRoundTrip(t *testing.T) {
	z := fighter(3, 3, "runner zombie", 3, 0, entity.MonsterDeath)
	basic := &entity.Ai{Kind: entity.AiBasic}
	z.Ai = &entity.Ai{Kind: entity.AiStunned, Previous: basic, RemainingTurns: 0}
	s := newScene(z)

	TakeTurn(1, s.turn)
	if z.Ai.Kind != entity.AiStunned || z.Ai.RemainingTurns != -1 {
		t.Fatalf("after first turn ai = %+v, want stunned with -1", z.Ai)
	}
	if s.player.Fighter.HP != 10 {
		t.Error("stunned zombie must not attack")
	}

	TakeTurn(1, s.turn)
	if z.Ai != basic {
		t.Errorf("after second turn ai = %+v, want the original basic", z.Ai)
	}

	texts := []string{s.turn.Log.Messages[0].Text, s.turn.Log.Messages[1].Text}
	if texts[0] != "The runner zombie is stunned!" || texts[1] != "The runner zombie is no longer stunned!" {
		t.Errorf("messages = %q", texts)
	}
}

func TestStunLastsRemainingPlusOneTurns(t *testing.T) {
	z := fighter(10, 10, "runner zombie", 3, 0, entity.MonsterDeath)
	z.Ai = entity.Stun(&entity.Ai{Kind: entity.AiChrysalis}, 3)
	s := newScene(z)

	for i := 0; i < 4; i++ {
		TakeTurn(1, s.turn)
		if z.Ai.Kind != entity.AiStunned {
			t.Fatalf("recovered early on turn %d", i+1)
		}
	}
	TakeTurn(1, s.turn)
	if z.Ai.Kind != entity.AiChrysalis {
		t.Errorf("ai = %v, want chrysalis", z.Ai.Kind)
	}
}

func TestStunnedMonsterStumbles(t *testing.T) {
	z := fighter(10, 10, "runner zombie", 3, 0, entity.MonsterDeath)
	z.Ai = entity.Stun(&entity.Ai{Kind: entity.AiBasic}, 20)
	s := newScene(z)

	moved := false
	for i := 0; i < 20; i++ {
		x, y := z.X, z.Y
		TakeTurn(1, s.turn)
		if abs(z.X-x) > 1 || abs(z.Y-y) > 1 {
			t.Fatalf("turn %d: stumbled from (%d,%d) to (%d,%d)", i+1, x, y, z.X, z.Y)
		}
		if z.X != x || z.Y != y {
			moved = true
		}
	}
	if !moved {
		t.Error("stunned zombie never moved")
	}
	if s.player.Fighter.HP != 10 {
		t.Error("stunned zombie must not attack")
	}
}

func TestActorWithoutAiIsSkipped(t *testing.T) {
	rock := entity.New(5, 5, '*', "rock", entity.ColorWhite, entity.BlocksNo)
	s := newScene(rock)
	TakeTurn(1, s.turn)
	if rock.Ai != nil || rock.X != 5 {
		t.Error("object without ai should be untouched")
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
