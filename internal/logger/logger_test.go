package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitWritesJSONToFile(t *testing.T) {
	prev := Log
	t.Cleanup(func() { Log = prev })

	path := filepath.Join(t.TempDir(), "game.log")
	closer, err := Init(Options{Level: "debug", Format: "json", File: path})
	require.NoError(t, err)

	assert.Equal(t, logrus.DebugLevel, Log.GetLevel())
	Component("generator").WithField("rooms", 9).Info("floor generated")
	require.NoError(t, closer.Close())

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	line := string(content)
	assert.True(t, strings.Contains(line, `"component":"generator"`), line)
	assert.True(t, strings.Contains(line, `"rooms":9`), line)
}

func TestInitBadLevelFallsBackToInfo(t *testing.T) {
	prev := Log
	t.Cleanup(func() { Log = prev })

	closer, err := Init(Options{Level: "loud"})
	require.NoError(t, err)
	defer closer.Close()
	assert.Equal(t, logrus.InfoLevel, Log.GetLevel())
}

func TestInitUnwritableFile(t *testing.T) {
	prev := Log
	t.Cleanup(func() { Log = prev })

	_, err := Init(Options{File: filepath.Join(t.TempDir(), "missing", "dir", "x.log")})
	assert.Error(t, err)
	assert.Same(t, prev, Log, "failed Init must not replace the logger")
}
