package ui

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/floorcrawl/internal/entity"
	"github.com/samdwyer/floorcrawl/internal/game"
	"github.com/samdwyer/floorcrawl/internal/msglog"
	"github.com/samdwyer/floorcrawl/internal/world"
)

// Panel layout below the floor.
const (
	PanelHeight = 7
	BarWidth    = 20
	msgX        = BarWidth + 2
)

var (
	colorDarkWall    = tcell.ColorBlack
	colorLightWall   = tcell.NewRGBColor(31, 31, 31)
	colorDarkGround  = tcell.NewRGBColor(63, 63, 63)
	colorLightGround = tcell.NewRGBColor(127, 127, 127)
	colorRemembered  = tcell.ColorDimGray
	colorCursor      = tcell.ColorYellow
)

// SeverityColor returns the panel color of a message.
func SeverityColor(s msglog.Severity) tcell.Color {
	switch s {
	case msglog.Alert:
		return tcell.ColorRed
	case msglog.Success:
		return tcell.ColorGreen
	case msglog.StatusChange:
		return tcell.ColorWhite
	default:
		return tcell.ColorLightGray
	}
}

func toColor(c entity.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen *Screen

	// Mouse is the cell under the pointer; names there are shown in the panel.
	Mouse entity.Position
	// Cursor highlights a targeting cell when set.
	Cursor *entity.Position
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen, Mouse: entity.Position{X: -1, Y: -1}}
}

// Render draws the floor, the visible actors and the status panel.
func (r *Renderer) Render(v *game.View) {
	r.screen.Clear()
	r.drawMap(v)
	r.drawActors(v)
	if r.Cursor != nil {
		r.screen.SetContent(r.Cursor.X, r.Cursor.Y, 'X', tcell.StyleDefault.Foreground(colorCursor).Bold(true))
	}
	r.drawPanel(v)
	r.screen.Show()
}

// drawMap paints explored cells: background by wall or ground, the top
// item where the player can see, and remembered terrain elsewhere.
func (r *Renderer) drawMap(v *game.View) {
	m := v.Map
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			t := m.Tile(x, y)
			visible := v.FOV.IsVisible(x, y)
			if !visible && !t.Explored {
				continue
			}
			style := tcell.StyleDefault.Background(tileBackground(t, visible))
			symbol := ' '
			if visible {
				if top := t.Top(); top != nil {
					symbol = top.Symbol
					style = style.Foreground(toColor(top.Color))
				}
			} else if terrain := t.Terrain(); terrain != nil {
				symbol = terrain.Symbol
				style = style.Foreground(colorRemembered)
			}
			r.screen.SetContent(x, y, symbol, style)
		}
	}
}

func tileBackground(t *world.Tile, visible bool) tcell.Color {
	wall := t.BlocksView() == entity.BlocksFull
	switch {
	case visible && wall:
		return colorLightWall
	case visible:
		return colorLightGround
	case wall:
		return colorDarkWall
	default:
		return colorDarkGround
	}
}

// drawActors draws visible actors, least blocking first so live monsters
// cover remains.
func (r *Renderer) drawActors(v *game.View) {
	var visible []*entity.Object
	for _, a := range v.Actors {
		if v.FOV.IsVisible(a.X, a.Y) {
			visible = append(visible, a)
		}
	}
	slices.SortStableFunc(visible, func(a, b *entity.Object) int {
		return cmp.Compare(a.Blocks, b.Blocks)
	})
	for _, a := range visible {
		style := tcell.StyleDefault.
			Foreground(toColor(a.Color)).
			Background(colorLightGround)
		r.screen.SetContent(a.X, a.Y, a.Symbol, style)
	}
}

func (r *Renderer) drawPanel(v *game.View) {
	top := v.Map.Height
	width, _ := r.screen.Size()
	r.screen.Fill(0, top, width, PanelHeight, tcell.StyleDefault.Background(tcell.ColorBlack))

	if f := v.Player.Fighter; f != nil {
		r.drawBar(1, top+1, BarWidth, "HP", f.HP, f.MaxHP, tcell.ColorRed, tcell.ColorMaroon)
	}
	info := tcell.StyleDefault.Foreground(tcell.ColorLightGray)
	r.screen.Print(1, top+3, BarWidth, fmt.Sprintf("Floor %d", v.Depth), info)
	r.screen.Print(1, top+4, BarWidth, fmt.Sprintf("Turn %d", v.Turn), info)

	r.screen.Print(1, top, width-1, r.namesUnderMouse(v), info)

	// Newest message at the bottom.
	lines := PanelHeight - 1
	msgs := v.Log
	if len(msgs) > lines {
		msgs = msgs[len(msgs)-lines:]
	}
	y := top + PanelHeight - len(msgs)
	for _, msg := range msgs {
		r.screen.Print(msgX, y, width-msgX, msg.Text, tcell.StyleDefault.Foreground(SeverityColor(msg.Severity)))
		y++
	}
}

func (r *Renderer) drawBar(x, y, width int, name string, value, maximum int, bar, back tcell.Color) {
	filled := 0
	if maximum > 0 {
		filled = value * width / maximum
	}
	for i := 0; i < width; i++ {
		bg := back
		if i < filled {
			bg = bar
		}
		r.screen.SetContent(x+i, y, ' ', tcell.StyleDefault.Background(bg))
	}
	label := fmt.Sprintf("%s: %d/%d", name, value, maximum)
	start := x + (width-len(label))/2
	for i, ch := range label {
		bg := back
		if start+i-x < filled {
			bg = bar
		}
		r.screen.SetContent(start+i, y, ch, tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(bg))
	}
}

// namesUnderMouse lists what the player can see at the pointer.
func (r *Renderer) namesUnderMouse(v *game.View) string {
	x, y := r.Mouse.X, r.Mouse.Y
	if !v.FOV.IsVisible(x, y) {
		return ""
	}
	var names []string
	for _, a := range v.Actors {
		if a.At(x, y) {
			names = append(names, a.Name)
		}
	}
	if t := v.Map.Tile(x, y); t != nil {
		for _, item := range t.Items[min(1, len(t.Items)):] {
			names = append(names, item.Name)
		}
	}
	return strings.Join(names, ", ")
}
