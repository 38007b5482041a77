package entity

import "fmt"

// Function is the use effect of an item.
type Function int

const (
	FunctionNone Function = iota
	FunctionHeal
	FunctionLightning
	FunctionFireball
	FunctionStun
)

var functionNames = map[Function]string{
	FunctionNone:      "",
	FunctionHeal:      "heal",
	FunctionLightning: "lightning",
	FunctionFireball:  "fireball",
	FunctionStun:      "stun",
}

// String returns the catalog spelling of the function.
func (f Function) String() string {
	if name, ok := functionNames[f]; ok {
		return name
	}
	return "unknown"
}

// MarshalText implements encoding.TextMarshaler.
func (f Function) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *Function) UnmarshalText(text []byte) error {
	fn, err := ParseFunction(string(text))
	if err != nil {
		return err
	}
	*f = fn
	return nil
}

// ParseFunction converts a catalog function name. The empty name is FunctionNone.
func ParseFunction(name string) (Function, error) {
	for fn, n := range functionNames {
		if n == name {
			return fn, nil
		}
	}
	return FunctionNone, fmt.Errorf("unknown item function %q", name)
}
