package game

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"

	"github.com/samdwyer/floorcrawl/internal/entity"
	"github.com/samdwyer/floorcrawl/internal/msglog"
	"github.com/samdwyer/floorcrawl/internal/world"
)

// World is the game state saved next to the actor list.
type World struct {
	Map   *world.Map `json:"map"`
	Log   msglog.Log `json:"log"`
	Depth int        `json:"depth"`
	Turn  int        `json:"turn"`
}

type saveBlob struct {
	Actors []*entity.Object `json:"actors"`
	World  *World           `json:"world"`
}

// Encode serializes the actor list and world into one save blob.
func Encode(actors []*entity.Object, w *World) ([]byte, error) {
	data, err := json.Marshal(saveBlob{Actors: actors, World: w})
	if err != nil {
		return nil, fmt.Errorf("encode save: %w", err)
	}
	return data, nil
}

// Decode restores a save blob written by Encode.
func Decode(data []byte) ([]*entity.Object, *World, error) {
	var blob saveBlob
	if err := json.Unmarshal(data, &blob); err != nil {
		return nil, nil, fmt.Errorf("decode save: %w", err)
	}
	if err := blob.validate(); err != nil {
		return nil, nil, fmt.Errorf("decode save: %w", err)
	}
	return blob.Actors, blob.World, nil
}

func (b *saveBlob) validate() error {
	if len(b.Actors) == 0 || b.Actors[0] == nil {
		return errors.New("no player")
	}
	if b.Actors[0].Fighter == nil {
		return errors.New("player has no fighter")
	}
	if b.World == nil || b.World.Map == nil {
		return errors.New("no map")
	}
	m := b.World.Map
	if m.Width <= 0 || m.Height <= 0 || len(m.Tiles) != m.Height {
		return fmt.Errorf("map is %dx%d with %d rows", m.Width, m.Height, len(m.Tiles))
	}
	for y, row := range m.Tiles {
		if len(row) != m.Width {
			return fmt.Errorf("map row %d has %d tiles", y, len(row))
		}
		for x, t := range row {
			if len(t.Items) == 0 {
				return fmt.Errorf("tile (%d,%d) has no terrain", x, y)
			}
			if slices.Contains(t.Items, nil) {
				return fmt.Errorf("tile (%d,%d) holds an empty object", x, y)
			}
		}
	}
	if !m.InBounds(m.Entry.X, m.Entry.Y) {
		return fmt.Errorf("entry (%d,%d) is off the map", m.Entry.X, m.Entry.Y)
	}
	if !m.InBounds(m.Stairs.X, m.Stairs.Y) {
		return fmt.Errorf("stairs (%d,%d) are off the map", m.Stairs.X, m.Stairs.Y)
	}
	for i, a := range b.Actors {
		if a == nil {
			return fmt.Errorf("actor %d is empty", i)
		}
		if !m.InBounds(a.X, a.Y) {
			return fmt.Errorf("actor %d (%s) at (%d,%d) is off the map", i, a.Name, a.X, a.Y)
		}
		if slices.Contains(a.Inventory, nil) {
			return fmt.Errorf("actor %d (%s) carries an empty object", i, a.Name)
		}
	}
	return nil
}
