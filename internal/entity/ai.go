package entity

import "fmt"

// AiKind is a monster behavior variant.
type AiKind int

const (
	AiBasic AiKind = iota
	AiChrysalis
	AiStunned
)

// String returns the catalog spelling of the variant.
func (k AiKind) String() string {
	switch k {
	case AiBasic:
		return "basic"
	case AiChrysalis:
		return "chrysalis"
	case AiStunned:
		return "stunned"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k AiKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *AiKind) UnmarshalText(text []byte) error {
	kind, err := ParseAiKind(string(text))
	if err != nil {
		return err
	}
	*k = kind
	return nil
}

// ParseAiKind converts a catalog AI name into its kind.
func ParseAiKind(name string) (AiKind, error) {
	switch name {
	case "basic":
		return AiBasic, nil
	case "chrysalis":
		return AiChrysalis, nil
	case "stunned":
		return AiStunned, nil
	default:
		return AiBasic, fmt.Errorf("unknown ai %q", name)
	}
}

// Ai is the behavior component. A stunned Ai owns the behavior it will
// restore once RemainingTurns drops below zero.
type Ai struct {
	Kind           AiKind `json:"kind"`
	Previous       *Ai    `json:"previous,omitempty"`
	RemainingTurns int    `json:"remaining_turns,omitempty"`
}

// Clone deep-copies the behavior chain.
func (a *Ai) Clone() *Ai {
	if a == nil {
		return nil
	}
	c := *a
	c.Previous = a.Previous.Clone()
	return &c
}

// Stun wraps current in a stunned state lasting turns. Stunning an already
// stunned monster refreshes the counter and keeps the original behavior,
// so stun states never nest. A nil current restores to Basic.
func Stun(current *Ai, turns int) *Ai {
	if current != nil && current.Kind == AiStunned {
		return &Ai{Kind: AiStunned, Previous: current.Previous, RemainingTurns: turns}
	}
	if current == nil {
		current = &Ai{Kind: AiBasic}
	}
	return &Ai{Kind: AiStunned, Previous: current, RemainingTurns: turns}
}
