package binding

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"guildkeeper/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefix for Redis
	bindingKeyPrefix = "leaderboard:binding:"
)

// ErrBindingNotFound is returned when no binding exists for a board kind
var ErrBindingNotFound = errors.New("leaderboard binding not found")

// Config holds configuration for the Redis binding repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed binding repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// SaveBinding persists the binding for a board kind to Redis
func (r *redisRepository) SaveBinding(ctx context.Context, input *SaveBindingInput) error {
	if input == nil || input.Binding == nil {
		return errors.New("input and binding cannot be nil")
	}

	if input.Binding.Kind == "" {
		return errors.New("board kind cannot be empty")
	}

	bindingJSON, err := json.Marshal(input.Binding)
	if err != nil {
		return fmt.Errorf("failed to marshal binding: %w", err)
	}

	bindingKey := fmt.Sprintf("%s%s", bindingKeyPrefix, input.Binding.Kind)
	if err := r.client.Set(ctx, bindingKey, bindingJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to save binding: %w", err)
	}

	return nil
}

// GetBinding retrieves the binding for a board kind from Redis
func (r *redisRepository) GetBinding(ctx context.Context, input *GetBindingInput) (*models.LeaderboardBinding, error) {
	if input == nil || input.Kind == "" {
		return nil, errors.New("input and board kind cannot be empty")
	}

	bindingKey := fmt.Sprintf("%s%s", bindingKeyPrefix, input.Kind)
	bindingJSON, err := r.client.Get(ctx, bindingKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrBindingNotFound
		}
		return nil, fmt.Errorf("failed to get binding: %w", err)
	}

	var b models.LeaderboardBinding
	if err := json.Unmarshal([]byte(bindingJSON), &b); err != nil {
		return nil, fmt.Errorf("failed to unmarshal binding: %w", err)
	}

	return &b, nil
}
