package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/floorcrawl/internal/game"
)

type delta struct{ dx, dy int }

var moveKeys = map[tcell.Key]delta{
	tcell.KeyUp:    {0, -1},
	tcell.KeyDown:  {0, 1},
	tcell.KeyLeft:  {-1, 0},
	tcell.KeyRight: {1, 0},
	tcell.KeyHome:  {-1, -1},
	tcell.KeyPgUp:  {1, -1},
	tcell.KeyEnd:   {-1, 1},
	tcell.KeyPgDn:  {1, 1},
}

// Vi keys and the numeric keypad with num lock on.
var moveRunes = map[rune]delta{
	'k': {0, -1}, '8': {0, -1},
	'j': {0, 1}, '2': {0, 1},
	'h': {-1, 0}, '4': {-1, 0},
	'l': {1, 0}, '6': {1, 0},
	'y': {-1, -1}, '7': {-1, -1},
	'u': {1, -1}, '9': {1, -1},
	'b': {-1, 1}, '1': {-1, 1},
	'n': {1, 1}, '3': {1, 1},
}

var commandRunes = map[rune]game.Command{
	' ': game.CommandWait,
	'5': game.CommandWait,
	'.': game.CommandWait,
	',': game.CommandPickUp,
	'g': game.CommandPickUp,
	'i': game.CommandInventory,
	'd': game.CommandDrop,
	'>': game.CommandDescend,
}

// DecodeKey maps a key press to a player intent. Keys without a meaning
// report false.
func DecodeKey(ev *tcell.EventKey) (game.Input, bool) {
	switch ev.Key() {
	case tcell.KeyCtrlQ, tcell.KeyCtrlC:
		return game.Input{Command: game.CommandExit}, true
	case tcell.KeyRune:
		r := ev.Rune()
		if r == 'q' && ev.Modifiers()&tcell.ModCtrl != 0 {
			return game.Input{Command: game.CommandExit}, true
		}
		if d, ok := moveRunes[r]; ok {
			return game.Move(d.dx, d.dy), true
		}
		if c, ok := commandRunes[r]; ok {
			return game.Input{Command: c}, true
		}
		return game.Input{}, false
	}
	if d, ok := moveKeys[ev.Key()]; ok {
		return game.Move(d.dx, d.dy), true
	}
	return game.Input{}, false
}

// menuIndex maps a menu letter to its option index, or -1.
func menuIndex(ev *tcell.EventKey) int {
	if ev.Key() != tcell.KeyRune {
		return -1
	}
	r := ev.Rune()
	if r >= 'A' && r <= 'Z' {
		r += 'a' - 'A'
	}
	if r < 'a' || r > 'z' {
		return -1
	}
	return int(r - 'a')
}
