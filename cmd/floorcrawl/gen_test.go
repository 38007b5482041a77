package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/floorcrawl/internal/config"
	"github.com/samdwyer/floorcrawl/internal/world"
)

func TestGenPrintsFloors(t *testing.T) {
	cfg = config.Default()
	cfg.Seed = "42"
	genFloors = 2
	var buf bytes.Buffer
	genCmd.SetOut(&buf)
	t.Cleanup(func() { genCmd.SetOut(nil) })

	require.NoError(t, runGen(genCmd, nil))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "seed 42\n"))
	assert.Contains(t, out, "floor 1:")
	assert.Contains(t, out, "floor 2:")
	assert.Equal(t, 2, strings.Count(out, "unreachable rooms []"))
	assert.Equal(t, 2, strings.Count(out, "@"))

	rows := strings.Split(out, "\n")
	assert.Len(t, rows[1], world.DefaultWidth)
}

func TestRootRejectsBadConfig(t *testing.T) {
	cfg = config.Default()
	cfg.SaveBackend = "floppy"

	err := rootCmd.PersistentPreRunE(rootCmd, nil)

	assert.ErrorContains(t, err, "floppy")
}
