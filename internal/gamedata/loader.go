package gamedata

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path"

	"gopkg.in/yaml.v3"
)

// Load reads and unmarshals a catalog file from fsys.
// Files ending in .yaml or .yml are decoded as YAML, everything else as JSON.
func Load[T any](fsys fs.FS, filename string) (T, error) {
	var result T

	content, err := fs.ReadFile(fsys, filename)
	if err != nil {
		return result, fmt.Errorf("failed to read catalog file %s: %w", filename, err)
	}

	switch path.Ext(filename) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(content, &result); err != nil {
			return result, fmt.Errorf("failed to parse YAML from %s: %w", filename, err)
		}
	default:
		if err := json.Unmarshal(content, &result); err != nil {
			return result, fmt.Errorf("failed to parse JSON from %s: %w", filename, err)
		}
	}

	return result, nil
}

// MustLoad reads and unmarshals a catalog file, panicking on error.
// Use this for data that must be present for the game to function.
func MustLoad[T any](fsys fs.FS, filename string) T {
	result, err := Load[T](fsys, filename)
	if err != nil {
		panic(err)
	}
	return result
}
