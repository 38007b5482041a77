package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/floorcrawl/internal/entity"
	"github.com/samdwyer/floorcrawl/internal/game"
)

// MenuWidth is the width of modal menus.
const MenuWidth = 50

// ErrScreenClosed is returned when the terminal goes away while waiting
// for input.
var ErrScreenClosed = errors.New("screen closed")

// Terminal is the tcell implementation of game.Surface.
type Terminal struct {
	screen   *Screen
	renderer *Renderer
	title    string
	last     *game.View
}

var _ game.Surface = (*Terminal)(nil)

// NewTerminal creates a surface drawing on screen.
func NewTerminal(screen *Screen, title string) *Terminal {
	return &Terminal{screen: screen, renderer: NewRenderer(screen), title: title}
}

// Close restores the terminal.
func (t *Terminal) Close() {
	t.screen.Close()
}

// Render draws a frame and remembers it for redraws.
func (t *Terminal) Render(v *game.View) {
	t.last = v
	t.renderer.Render(v)
}

func (t *Terminal) redraw() {
	if t.last != nil {
		t.renderer.Render(t.last)
		return
	}
	t.screen.Clear()
	t.screen.Show()
}

// poll waits for the next screen event. A cancelled ctx interrupts the
// wait and is returned as its error.
func (t *Terminal) poll(ctx context.Context) (tcell.Event, error) {
	stop := context.AfterFunc(ctx, func() {
		_ = t.screen.PostEvent(tcell.NewEventInterrupt(nil))
	})
	defer stop()

	for {
		switch ev := t.screen.PollEvent().(type) {
		case nil:
			return nil, ErrScreenClosed
		case *tcell.EventInterrupt:
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		default:
			return ev, nil
		}
	}
}

// NextInput waits for a key that means something. Mouse movement updates
// the names shown under the pointer.
func (t *Terminal) NextInput(ctx context.Context) (game.Input, error) {
	for {
		ev, err := t.poll(ctx)
		if err != nil {
			return game.Input{}, err
		}
		switch ev := ev.(type) {
		case *tcell.EventResize:
			t.screen.Sync()
			t.redraw()
		case *tcell.EventMouse:
			x, y := ev.Position()
			t.renderer.Mouse = entity.Position{X: x, Y: y}
			t.redraw()
		case *tcell.EventKey:
			if in, ok := DecodeKey(ev); ok {
				return in, nil
			}
		}
	}
}

// Menu draws a lettered list over the current frame and waits for one key.
// A cancelled ctx or a closed screen counts as no choice.
func (t *Terminal) Menu(ctx context.Context, header string, options []string) (int, bool) {
	if len(options) > 26 {
		panic(fmt.Sprintf("menu with %d options, at most 26 fit", len(options)))
	}
	t.redraw()
	if header == "" && t.last == nil {
		t.drawTitle()
	}
	t.drawMenu(header, options)

	for {
		ev, err := t.poll(ctx)
		if err != nil {
			return 0, false
		}
		switch ev := ev.(type) {
		case *tcell.EventResize:
			t.screen.Sync()
		case *tcell.EventKey:
			i := menuIndex(ev)
			if i >= 0 && i < len(options) {
				return i, true
			}
			return 0, false
		}
	}
}

// MessageBox shows text until any key is pressed.
func (t *Terminal) MessageBox(ctx context.Context, text string) {
	t.Menu(ctx, text, nil)
}

func (t *Terminal) drawTitle() {
	w, h := t.screen.Size()
	style := tcell.StyleDefault.Foreground(tcell.ColorLightYellow).Bold(true)
	t.screen.Print((w-len(t.title))/2, h/2-4, len(t.title), t.title, style)
	t.screen.Show()
}

func (t *Terminal) drawMenu(header string, options []string) {
	lines := wrap(strings.Trim(header, "\n"), MenuWidth)
	if header == "" {
		lines = nil
	}
	height := len(lines) + len(options)
	w, h := t.screen.Size()
	x, y := (w-MenuWidth)/2, (h-height)/2

	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	t.screen.Fill(x, y, MenuWidth, height, style)
	for i, line := range lines {
		t.screen.Print(x, y+i, MenuWidth, line, style)
	}
	for i, opt := range options {
		label := fmt.Sprintf("(%c) %s", 'a'+i, opt)
		t.screen.Print(x, y+len(lines)+i, MenuWidth, label, style)
	}
	t.screen.Show()
}

// PickTile moves a cursor from the player with the movement keys or the
// mouse. Enter or a left click confirms a visible cell in range; Escape or
// a right click cancels.
func (t *Terminal) PickTile(ctx context.Context, v *game.View, maxRange float64) (entity.Position, bool) {
	cursor := v.Player.Pos()
	t.renderer.Cursor = &cursor
	defer func() { t.renderer.Cursor = nil }()

	valid := func(p entity.Position) bool {
		if !v.FOV.IsVisible(p.X, p.Y) {
			return false
		}
		return maxRange <= 0 || v.Player.Distance(p.X, p.Y) <= maxRange
	}

	for {
		t.Render(v)
		ev, err := t.poll(ctx)
		if err != nil {
			return entity.Position{}, false
		}
		switch ev := ev.(type) {
		case *tcell.EventResize:
			t.screen.Sync()
		case *tcell.EventMouse:
			x, y := ev.Position()
			cursor = entity.Position{X: x, Y: y}
			t.renderer.Mouse = cursor
			switch {
			case ev.Buttons()&tcell.Button1 != 0 && valid(cursor):
				return cursor, true
			case ev.Buttons()&tcell.Button2 != 0:
				return entity.Position{}, false
			}
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyEscape:
				return entity.Position{}, false
			case tcell.KeyEnter:
				if valid(cursor) {
					return cursor, true
				}
				continue
			}
			if in, ok := DecodeKey(ev); ok && in.Command == game.CommandMove {
				next := entity.Position{X: cursor.X + in.Dx, Y: cursor.Y + in.Dy}
				if v.Map.InBounds(next.X, next.Y) {
					cursor = next
				}
			}
		}
	}
}

// wrap breaks text into lines no wider than width, keeping explicit breaks.
func wrap(text string, width int) []string {
	var lines []string
	for _, para := range strings.Split(text, "\n") {
		line := ""
		for _, word := range strings.Fields(para) {
			switch {
			case line == "":
				line = word
			case len(line)+1+len(word) <= width:
				line += " " + word
			default:
				lines = append(lines, line)
				line = word
			}
		}
		lines = append(lines, line)
	}
	return lines
}
