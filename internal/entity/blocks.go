package entity

import "fmt"

// Blocks is how strongly something obstructs movement or sight.
// Levels are ordered so the most restrictive of several sources is their max.
type Blocks int

const (
	BlocksNo Blocks = iota
	BlocksHalf
	BlocksFull
)

// String returns the catalog spelling of the level.
func (b Blocks) String() string {
	switch b {
	case BlocksNo:
		return "no"
	case BlocksHalf:
		return "half"
	case BlocksFull:
		return "full"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (b Blocks) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
// An empty value decodes to BlocksNo.
func (b *Blocks) UnmarshalText(text []byte) error {
	switch string(text) {
	case "", "no":
		*b = BlocksNo
	case "half":
		*b = BlocksHalf
	case "full":
		*b = BlocksFull
	default:
		return fmt.Errorf("unknown blocking level %q", text)
	}
	return nil
}

// MaxBlocks returns the more restrictive of two levels.
func MaxBlocks(a, b Blocks) Blocks {
	if a > b {
		return a
	}
	return b
}
