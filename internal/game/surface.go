package game

import (
	"context"

	"github.com/samdwyer/floorcrawl/internal/entity"
	"github.com/samdwyer/floorcrawl/internal/msglog"
	"github.com/samdwyer/floorcrawl/internal/world"
)

//go:generate mockgen -destination=gamemock/mock_surface.go -package=gamemock . Surface,Observer

// View is what a surface needs to draw one frame. It shares state with
// the game and must not be modified.
type View struct {
	Map    *world.Map
	Actors []*entity.Object
	FOV    *world.FOV
	Log    []msglog.Message
	Depth  int
	Turn   int
	Player *entity.Object
}

// Surface is the display and input collaborator.
type Surface interface {
	// NextInput blocks until the player expresses an intent.
	NextInput(ctx context.Context) (Input, error)
	// Render draws a full frame.
	Render(view *View)
	// Menu shows a modal list and returns the chosen index, or false
	// when the player dismissed it or ctx was cancelled.
	Menu(ctx context.Context, header string, options []string) (int, bool)
	// MessageBox shows text until the player acknowledges it or ctx is
	// cancelled.
	MessageBox(ctx context.Context, text string)
	// PickTile lets the player choose a visible tile no further than
	// maxRange from the player. A maxRange of 0 means unlimited.
	PickTile(ctx context.Context, view *View, maxRange float64) (entity.Position, bool)
}

// Observer is notified after every turn.
type Observer interface {
	Observe(ctx context.Context, view *View)
}
