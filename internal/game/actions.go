package game

import (
	"context"
	"slices"
	"strings"

	"github.com/samdwyer/floorcrawl/internal/ai"
	"github.com/samdwyer/floorcrawl/internal/world"
)

const (
	useHeader      = "Press the key next to an item to use it, or any other to cancel."
	dropHeader     = "Press the key next to an item to drop it, or any other to cancel."
	emptyInventory = "Inventory is empty."
)

// HandleInput resolves one player intent. A dead player can only exit.
func (g *Game) HandleInput(ctx context.Context, in Input) ActionResult {
	if in.Command == CommandExit {
		return Exit
	}
	if !g.Player().Alive {
		return DidNotTakeTurn
	}

	switch in.Command {
	case CommandMove:
		return g.moveOrAttack(in.Dx, in.Dy)
	case CommandWait:
		return TookTurn
	case CommandPickUp:
		g.pickUp()
		return DidNotTakeTurn
	case CommandInventory:
		return g.useFromInventory(ctx)
	case CommandDrop:
		g.dropFromInventory(ctx)
		return DidNotTakeTurn
	case CommandDescend:
		return g.descend(ctx)
	default:
		return DidNotTakeTurn
	}
}

// moveOrAttack attacks a fighter in the target cell, opens a closed door,
// or steps. Bumping a wall still spends the turn.
func (g *Game) moveOrAttack(dx, dy int) ActionResult {
	player := g.Player()
	x, y := player.X+dx, player.Y+dy

	if target := world.FighterAt(g.actors, x, y); target > ai.Player {
		player.Attack(g.actors[target], &g.world.Log)
		return TookTurn
	}
	if g.openDoor(x, y) {
		return TookTurn
	}
	world.MoveBy(g.world.Map, g.actors, ai.Player, dx, dy)
	return TookTurn
}

func (g *Game) openDoor(x, y int) bool {
	t := g.world.Map.Tile(x, y)
	if t == nil {
		return false
	}
	door := t.Door()
	if door == nil {
		return false
	}
	class := g.catalog.MustClass(door.OpensInto)
	t.Replace(door, class.NewObject(x, y))
	g.world.Log.Info("You open the %s.", door.Name)
	g.fovDirty = true
	return true
}

func (g *Game) pickUp() {
	player := g.Player()
	t := g.world.Map.Tile(player.X, player.Y)

	var names []string
	for _, item := range slices.Clone(t.Items) {
		if !item.PickUp {
			continue
		}
		if len(player.Inventory) >= g.cfg.InventorySize {
			g.world.Log.Alert("Your inventory is full, cannot pick up %s.", item.Name)
			break
		}
		t.Remove(item)
		player.Inventory = append(player.Inventory, item)
		names = append(names, item.Name)
	}
	if len(names) > 0 {
		g.world.Log.Info("You picked up %s", strings.Join(names, ", "))
	}
}

// inventoryMenu asks the player to choose an inventory slot.
func (g *Game) inventoryMenu(ctx context.Context, header string) (int, bool) {
	inventory := g.Player().Inventory
	if len(inventory) == 0 {
		g.surface.Menu(ctx, header, []string{emptyInventory})
		return 0, false
	}
	options := make([]string, len(inventory))
	for i, item := range inventory {
		options[i] = item.Name
	}
	choice, ok := g.surface.Menu(ctx, header, options)
	if !ok || choice < 0 || choice >= len(inventory) {
		return 0, false
	}
	return choice, true
}

func (g *Game) useFromInventory(ctx context.Context) ActionResult {
	slot, ok := g.inventoryMenu(ctx, useHeader)
	if !ok {
		return DidNotTakeTurn
	}
	return g.UseItem(ctx, slot)
}

func (g *Game) dropFromInventory(ctx context.Context) {
	slot, ok := g.inventoryMenu(ctx, dropHeader)
	if !ok {
		return
	}
	player := g.Player()
	item := player.Inventory[slot]
	player.Inventory = slices.Delete(player.Inventory, slot, slot+1)
	item.SetPos(player.X, player.Y)
	g.world.Map.Place(item)
	g.world.Log.Info("You dropped a %s.", item.Name)
}

func (g *Game) descend(ctx context.Context) ActionResult {
	if g.Player().Pos() != g.world.Map.Stairs {
		g.world.Log.Alert("There are no stairs here.")
		return DidNotTakeTurn
	}
	g.world.Log.Status("You climb the stairs to the next floor.")
	g.nextFloor(ctx)
	return DidNotTakeTurn
}
