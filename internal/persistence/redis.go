package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const saveKeyPrefix = "floorcrawl:save:"

// RedisConfig holds the configuration for the redis store.
// Client takes precedence over Addr when set.
type RedisConfig struct {
	Addr   string
	Client *redis.Client
}

// Validate ensures a client or an address is provided.
func (c *RedisConfig) Validate() error {
	if c.Client == nil && c.Addr == "" {
		return errors.New("redis address is required")
	}
	return nil
}

// RedisStore keeps each slot under its own key.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore connects to redis and checks the connection.
func NewRedisStore(ctx context.Context, cfg *RedisConfig) (*RedisStore, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	client := cfg.Client
	if client == nil {
		client = redis.NewClient(&redis.Options{Addr: cfg.Addr})
	}
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return &RedisStore{client: client}, nil
}

func saveKey(slot string) string {
	return saveKeyPrefix + slot
}

// Save replaces the slot's value.
func (s *RedisStore) Save(ctx context.Context, slot string, data []byte) error {
	if err := s.client.Set(ctx, saveKey(slot), data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save slot %s: %w", slot, err)
	}
	return nil
}

// Load reads the slot's value.
func (s *RedisStore) Load(ctx context.Context, slot string) ([]byte, error) {
	data, err := s.client.Get(ctx, saveKey(slot)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("slot %s: %w", slot, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load slot %s: %w", slot, err)
	}
	return data, nil
}

// Close closes the redis connection.
func (s *RedisStore) Close() error {
	return s.client.Close()
}

var _ Store = (*RedisStore)(nil)
