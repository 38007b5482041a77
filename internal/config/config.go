// Package config gathers process settings from .env files, the
// environment and command line flags, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/floorcrawl/internal/game"
	"github.com/samdwyer/floorcrawl/internal/logger"
	"github.com/samdwyer/floorcrawl/internal/persistence"
	"github.com/samdwyer/floorcrawl/internal/rng"
	"github.com/samdwyer/floorcrawl/internal/telemetry"
)

// EnvPrefix prefixes every environment variable read here.
const EnvPrefix = "FLOORCRAWL_"

// Config holds process settings.
type Config struct {
	// Seed is a number or any phrase; empty means time based.
	Seed string

	SaveBackend string
	SaveDir     string
	SaveSlot    string
	RedisAddr   string
	PostgresDSN string

	// SpectateAddr enables the websocket spectator feed when set.
	SpectateAddr string

	LogLevel  string
	LogFormat string
	LogFile   string

	Telemetry bool
	// TraceSampleRatio keeps this fraction of turn traces; 0 keeps all.
	TraceSampleRatio float64

	FOVRadius int
}

// Default returns the settings used when nothing overrides them.
func Default() Config {
	return Config{
		SaveBackend: persistence.BackendFile,
		SaveDir:     ".",
		SaveSlot:    "savegame",
		LogLevel:    "info",
		LogFormat:   "text",
		LogFile:     "floorcrawl.log",
		FOVRadius:   game.DefaultConfig().FOVRadius,
	}
}

// Load reads envFiles (default ".env") into the environment, then builds
// a Config from defaults and FLOORCRAWL_ variables. Missing env files are
// not an error.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to load %s: %w", f, err)
		}
	}

	cfg := Default()
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	strs := map[string]*string{
		"SEED":         &c.Seed,
		"SAVE_BACKEND": &c.SaveBackend,
		"SAVE_DIR":     &c.SaveDir,
		"SAVE_SLOT":    &c.SaveSlot,
		"REDIS_ADDR":   &c.RedisAddr,
		"POSTGRES_DSN": &c.PostgresDSN,
		"SPECTATE":     &c.SpectateAddr,
		"LOG_LEVEL":    &c.LogLevel,
		"LOG_FORMAT":   &c.LogFormat,
		"LOG_FILE":     &c.LogFile,
	}
	for name, dst := range strs {
		if v, ok := lookup(EnvPrefix + name); ok {
			*dst = v
		}
	}

	if v, ok := lookup(EnvPrefix + "FOV_RADIUS"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %sFOV_RADIUS %q: %w", EnvPrefix, v, err)
		}
		c.FOVRadius = n
	}
	if v, ok := lookup(EnvPrefix + "TELEMETRY"); ok {
		on, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %sTELEMETRY %q: %w", EnvPrefix, v, err)
		}
		c.Telemetry = on
	}
	if v, ok := lookup(EnvPrefix + "TRACE_SAMPLE_RATIO"); ok {
		r, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("invalid %sTRACE_SAMPLE_RATIO %q: %w", EnvPrefix, v, err)
		}
		c.TraceSampleRatio = r
	}
	if v, ok := lookup("OTEL_EXPORTER_OTLP_ENDPOINT"); ok && v != "" {
		c.Telemetry = true
	}
	return nil
}

// BindFlags registers flags whose defaults are the current values, so an
// unset flag keeps what the environment said.
func (c *Config) BindFlags(fs *pflag.FlagSet) {
	fs.StringVar(&c.Seed, "seed", c.Seed, "floor seed: a number or any phrase")
	fs.StringVar(&c.SaveBackend, "save-backend", c.SaveBackend, "where games are saved: file, redis or postgres")
	fs.StringVar(&c.SaveDir, "save-dir", c.SaveDir, "directory for the file backend")
	fs.StringVar(&c.SaveSlot, "save-slot", c.SaveSlot, "name of the saved game")
	fs.StringVar(&c.RedisAddr, "redis-addr", c.RedisAddr, "redis address for the redis backend")
	fs.StringVar(&c.PostgresDSN, "postgres-dsn", c.PostgresDSN, "connection string for the postgres backend")
	fs.StringVar(&c.SpectateAddr, "spectate", c.SpectateAddr, "serve a websocket spectator feed on this address")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level")
	fs.StringVar(&c.LogFile, "log-file", c.LogFile, "log file; the terminal belongs to the game")
	fs.BoolVar(&c.Telemetry, "telemetry", c.Telemetry, "export traces over OTLP")
	fs.Float64Var(&c.TraceSampleRatio, "trace-sample-ratio", c.TraceSampleRatio, "fraction of traces kept; 0 keeps all")
}

// Validate reports settings that cannot work.
func (c Config) Validate() error {
	switch c.SaveBackend {
	case persistence.BackendFile:
	case persistence.BackendRedis:
		if c.RedisAddr == "" {
			return errors.New("redis save backend needs a redis address")
		}
	case persistence.BackendPostgres:
		if c.PostgresDSN == "" {
			return errors.New("postgres save backend needs a DSN")
		}
	default:
		return fmt.Errorf("unknown save backend %q", c.SaveBackend)
	}
	if strings.TrimSpace(c.SaveSlot) == "" {
		return errors.New("save slot must not be empty")
	}
	if c.TraceSampleRatio < 0 || c.TraceSampleRatio > 1 {
		return fmt.Errorf("trace sample ratio must be within [0, 1], got %g", c.TraceSampleRatio)
	}
	if c.FOVRadius <= 0 {
		return fmt.Errorf("fov radius must be positive, got %d", c.FOVRadius)
	}
	return nil
}

// SeedValue resolves the seed phrase to a generator seed.
func (c Config) SeedValue() int64 {
	return rng.SeedFromPhrase(c.Seed)
}

// Game returns the gameplay settings.
func (c Config) Game() game.Config {
	g := game.DefaultConfig()
	g.Seed = c.SeedValue()
	g.SaveSlot = c.SaveSlot
	g.FOVRadius = c.FOVRadius
	return g
}

// Store returns the persistence settings.
func (c Config) Store() persistence.Options {
	return persistence.Options{
		Backend:     c.SaveBackend,
		Dir:         c.SaveDir,
		RedisAddr:   c.RedisAddr,
		PostgresDSN: c.PostgresDSN,
	}
}

// Logger returns the logging settings.
func (c Config) Logger() logger.Options {
	return logger.Options{Level: c.LogLevel, Format: c.LogFormat, File: c.LogFile}
}

// Tracing returns the telemetry settings. The resource carries the seed and
// save backend so traces from one run can be grouped.
func (c Config) Tracing() telemetry.Options {
	return telemetry.Options{
		Enabled:     c.Telemetry,
		SampleRatio: c.TraceSampleRatio,
		Attributes: []attribute.KeyValue{
			attribute.Int64("game.seed", c.SeedValue()),
			attribute.String("game.save_backend", c.SaveBackend),
		},
	}
}
