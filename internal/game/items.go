package game

import (
	"context"
	"math"
	"slices"

	"github.com/samdwyer/floorcrawl/internal/ai"
	"github.com/samdwyer/floorcrawl/internal/entity"
)

// Item effect tuning.
const (
	HealAmount      = 3
	LightningRange  = 10
	LightningDamage = 10
	FireballRadius  = 5
	FireballDamage  = 10
	StunRange       = 5
	StunTurns       = 3
)

// UseResult says whether an item was consumed.
type UseResult int

const (
	UsedUp UseResult = iota
	Cancelled
)

// UseItem applies the effect of the item in the given inventory slot.
// A consumed item leaves the inventory and spends the turn.
func (g *Game) UseItem(ctx context.Context, slot int) ActionResult {
	player := g.Player()
	item := player.Inventory[slot]

	var result UseResult
	switch item.Function {
	case entity.FunctionHeal:
		result = g.castHeal()
	case entity.FunctionLightning:
		result = g.castLightning()
	case entity.FunctionFireball:
		result = g.castFireball(ctx)
	case entity.FunctionStun:
		result = g.castStun(ctx)
	default:
		g.world.Log.Alert("The %s cannot be used.", item.Name)
		return DidNotTakeTurn
	}

	if result == Cancelled {
		g.world.Log.Info("Cancelled")
		return DidNotTakeTurn
	}
	// The effect may have killed the player but never touches the inventory.
	player.Inventory = slices.Delete(player.Inventory, slot, slot+1)
	return TookTurn
}

func (g *Game) castHeal() UseResult {
	f := g.Player().Fighter
	if f.HP == f.MaxHP {
		g.world.Log.Alert("You are already at full health.")
		return Cancelled
	}
	g.world.Log.Success("Your wounds start to feel better!")
	g.Player().Heal(HealAmount)
	return UsedUp
}

func (g *Game) castLightning() UseResult {
	id := g.closestMonster(LightningRange)
	if id < 0 {
		g.world.Log.Alert("No enemy is within range.")
		return Cancelled
	}
	monster := g.actors[id]
	g.world.Log.Success("A lightning bolt strikes the %s with loud thunder! The damage is %d hit points.",
		monster.Name, LightningDamage)
	monster.TakeDamage(LightningDamage, &g.world.Log)
	return UsedUp
}

func (g *Game) castFireball(ctx context.Context) UseResult {
	g.world.Log.Info("Pick a target tile for the molotov, or cancel.")
	target, ok := g.surface.PickTile(ctx, g.View(), 0)
	if !ok {
		return Cancelled
	}
	g.world.Log.Success("The molotov explodes, burning everything within a %d radius!", FireballRadius)
	for _, a := range g.actors {
		if a.Fighter == nil || !a.Alive || a.Distance(target.X, target.Y) > FireballRadius {
			continue
		}
		g.world.Log.Success("The %s gets burned for %d hit points.", a.Name, FireballDamage)
		a.TakeDamage(FireballDamage, &g.world.Log)
	}
	return UsedUp
}

func (g *Game) castStun(ctx context.Context) UseResult {
	g.world.Log.Info("Pick an enemy to stun, or cancel.")
	target, ok := g.surface.PickTile(ctx, g.View(), StunRange)
	if !ok {
		return Cancelled
	}
	id := g.monsterAt(target.X, target.Y)
	if id < 0 || g.Player().Distance(target.X, target.Y) > StunRange {
		g.world.Log.Alert("No enemy is within range.")
		return Cancelled
	}
	monster := g.actors[id]
	monster.Ai = entity.Stun(monster.Ai, StunTurns)
	g.world.Log.Info("The eyes of the %s look vacant and it starts to stumble around!", monster.Name)
	return UsedUp
}

// closestMonster returns the visible monster nearest to the player within
// maxRange, or -1.
func (g *Game) closestMonster(maxRange float64) int {
	player := g.Player()
	closest, best := -1, math.Inf(1)
	for id, a := range g.actors {
		if id == ai.Player || !a.IsMonster() || !g.fov.IsVisible(a.X, a.Y) {
			continue
		}
		if d := player.DistanceTo(a); d <= maxRange && d < best {
			closest, best = id, d
		}
	}
	return closest
}

// monsterAt returns the visible monster at (x, y), or -1.
func (g *Game) monsterAt(x, y int) int {
	for id, a := range g.actors {
		if id != ai.Player && a.IsMonster() && a.At(x, y) && g.fov.IsVisible(x, y) {
			return id
		}
	}
	return -1
}
