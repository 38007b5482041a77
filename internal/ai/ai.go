// Package ai runs monster behavior, one transition per monster per turn.
package ai

import (
	"github.com/samdwyer/floorcrawl/internal/entity"
	"github.com/samdwyer/floorcrawl/internal/msglog"
	"github.com/samdwyer/floorcrawl/internal/rng"
	"github.com/samdwyer/floorcrawl/internal/world"
)

// Player is the index of the player in the actor list.
const Player = 0

// Turn is the world a monster acts in.
type Turn struct {
	Map    *world.Map
	Actors []*entity.Object
	FOV    *world.FOV // the player's view; a monster in it can see the player
	Log    *msglog.Log
	Rand   *rng.Rand
}

// TakeTurn runs one transition for actors[id]. The current behavior is
// taken off the actor and replaced by the one it returns, so a behavior
// decides its own successor. Actors without an Ai are skipped.
func TakeTurn(id int, t Turn) {
	monster := t.Actors[id]
	current := monster.Ai
	if current == nil {
		return
	}
	monster.Ai = nil

	next := step(id, current, t)

	// Death clears behavior; do not bring it back.
	if monster.Alive {
		monster.Ai = next
	}
}

func step(id int, current *entity.Ai, t Turn) *entity.Ai {
	switch current.Kind {
	case entity.AiBasic:
		if !chase(id, t) {
			wander(id, t)
		}
		return current
	case entity.AiChrysalis:
		chase(id, t)
		return current
	case entity.AiStunned:
		return stunned(id, current, t)
	default:
		return current
	}
}

// chase moves toward or attacks the player when the monster is in view.
// It reports whether the player was seen.
func chase(id int, t Turn) bool {
	monster := t.Actors[id]
	if !t.FOV.IsVisible(monster.X, monster.Y) {
		return false
	}
	player := t.Actors[Player]
	if monster.DistanceTo(player) >= 2 {
		world.MoveTowards(t.Map, t.Actors, id, player.X, player.Y)
	} else if player.Fighter != nil && player.Fighter.HP > 0 {
		monster.Attack(player, t.Log)
	}
	return true
}

func wander(id int, t Turn) {
	world.MoveBy(t.Map, t.Actors, id, t.Rand.Step(), t.Rand.Step())
}

// stunned stumbles one random step per turn, never attacking, and restores
// the wrapped behavior once the counter runs out.
func stunned(id int, current *entity.Ai, t Turn) *entity.Ai {
	name := t.Actors[id].Name
	if current.RemainingTurns >= 0 {
		wander(id, t)
		t.Log.Status("The %s is stunned!", name)
		return &entity.Ai{
			Kind:           entity.AiStunned,
			Previous:       current.Previous,
			RemainingTurns: current.RemainingTurns - 1,
		}
	}
	t.Log.Alert("The %s is no longer stunned!", name)
	if current.Previous == nil {
		return &entity.Ai{Kind: entity.AiBasic}
	}
	return current.Previous
}
