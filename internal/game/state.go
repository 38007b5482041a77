// Package game provides the turn loop, player actions and save/load.
package game

// ActionResult classifies what a player action cost.
type ActionResult int

const (
	// TookTurn lets every monster act afterwards.
	TookTurn ActionResult = iota
	// DidNotTakeTurn leaves the monsters where they are.
	DidNotTakeTurn
	// Exit saves and leaves the loop.
	Exit
)

// String returns a human-readable result name.
func (r ActionResult) String() string {
	switch r {
	case TookTurn:
		return "took_turn"
	case DidNotTakeTurn:
		return "did_not_take_turn"
	case Exit:
		return "exit"
	default:
		return "unknown"
	}
}

// Command is a player intent decoded by the surface.
type Command int

const (
	CommandNone Command = iota
	CommandMove
	CommandWait
	CommandPickUp
	CommandInventory
	CommandDrop
	CommandDescend
	CommandExit
)

// String returns a human-readable command name.
func (c Command) String() string {
	switch c {
	case CommandNone:
		return "none"
	case CommandMove:
		return "move"
	case CommandWait:
		return "wait"
	case CommandPickUp:
		return "pick_up"
	case CommandInventory:
		return "inventory"
	case CommandDrop:
		return "drop"
	case CommandDescend:
		return "descend"
	case CommandExit:
		return "exit"
	default:
		return "unknown"
	}
}

// Input is one decoded player intent. Dx and Dy are set for CommandMove.
type Input struct {
	Command Command
	Dx, Dy  int
}

// Move returns a move input.
func Move(dx, dy int) Input {
	return Input{Command: CommandMove, Dx: dx, Dy: dy}
}
