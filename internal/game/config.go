package game

import "github.com/samdwyer/floorcrawl/internal/world"

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation. Used for reproducible floor generation.
	// A seed of 0 means a random seed will be generated.
	Seed int64

	// SaveSlot names the saved game in the store.
	SaveSlot string

	FOVRadius     int
	InventorySize int // menu letters a..z

	Gen world.GenConfig
}

// DefaultConfig returns the standard game settings.
func DefaultConfig() Config {
	return Config{
		SaveSlot:      "savegame",
		FOVRadius:     10,
		InventorySize: 26,
		Gen:           world.DefaultGenConfig(),
	}
}
