package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const (
	// DefaultKeyPrefix namespaces every ledger key in Redis
	DefaultKeyPrefix = "scorage"
)

// Config holds configuration for the Redis store
type Config struct {
	// Redis client
	RedisClient *redis.Client

	// Prefix namespaces keys, defaults to DefaultKeyPrefix
	Prefix string

	// Disabled turns Set into a no-op
	Disabled bool
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client   *redis.Client
	prefix   string
	disabled bool
}

// NewRedis creates a new Redis-backed store
func NewRedis(cfg *Config) (*redisRepository, error) {
	// Validate config
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	prefix := cfg.Prefix
	if prefix == "" {
		prefix = DefaultKeyPrefix
	}

	return &redisRepository{
		client:   cfg.RedisClient,
		prefix:   prefix,
		disabled: cfg.Disabled,
	}, nil
}

// Enabled reports whether writes reach Redis
func (r *redisRepository) Enabled() bool {
	return !r.disabled
}

// Get reads a ledger key from Redis
func (r *redisRepository) Get(ctx context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil || !validKey(input.LedgerID, input.Key) {
		return nil, ErrInvalidInput
	}

	value, err := r.client.Get(ctx, r.key(input.LedgerID, input.Key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return &GetOutput{Found: false}, nil
		}
		return nil, fmt.Errorf("failed to get %s: %w", input.Key, err)
	}

	return &GetOutput{
		Value: value,
		Found: true,
	}, nil
}

// Set writes a ledger key to Redis
func (r *redisRepository) Set(ctx context.Context, input *SetInput) error {
	if input == nil || !validKey(input.LedgerID, input.Key) {
		return ErrInvalidInput
	}

	if r.disabled {
		return nil
	}

	// No expiration, a ledger lives until it is overwritten
	if err := r.client.Set(ctx, r.key(input.LedgerID, input.Key), input.Value, 0).Err(); err != nil {
		return fmt.Errorf("failed to set %s: %w", input.Key, err)
	}

	return nil
}

func (r *redisRepository) key(ledgerID, key string) string {
	return fmt.Sprintf("%s:%s:%s", r.prefix, ledgerID, key)
}
