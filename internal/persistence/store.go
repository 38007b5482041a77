// Package persistence stores whole-game save blobs.
package persistence

import (
	"context"
	"errors"
	"fmt"
)

// ErrNotFound is returned when a slot has no saved game.
var ErrNotFound = errors.New("saved game not found")

// Store saves and loads opaque save blobs by slot name. A Save replaces the
// slot's previous content in one step; readers never see a partial blob.
type Store interface {
	Save(ctx context.Context, slot string, data []byte) error
	Load(ctx context.Context, slot string) ([]byte, error)
	Close() error
}

// Backend names accepted by Open.
const (
	BackendFile     = "file"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
)

// Options selects and configures a backend.
type Options struct {
	Backend     string
	Dir         string // file backend
	RedisAddr   string // redis backend
	PostgresDSN string // postgres backend
}

// Open creates the store named by opts.Backend.
func Open(ctx context.Context, opts Options) (Store, error) {
	switch opts.Backend {
	case "", BackendFile:
		return NewFileStore(opts.Dir)
	case BackendRedis:
		return NewRedisStore(ctx, &RedisConfig{Addr: opts.RedisAddr})
	case BackendPostgres:
		return NewPostgresStore(ctx, opts.PostgresDSN)
	default:
		return nil, fmt.Errorf("unknown save backend %q", opts.Backend)
	}
}
