package tier

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"guildkeeper/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Tiers are stored as a Redis list of JSON entries so evaluation
	// order matches the order they were configured in.
	tiersListKey = "voicetiers"
)

// Config holds configuration for the Redis tier repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed tier repository
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

// AddTier appends a tier entry to Redis
func (r *redisRepository) AddTier(ctx context.Context, input *AddTierInput) error {
	if input == nil || input.Tier == nil {
		return errors.New("input and tier cannot be nil")
	}

	if input.Tier.RoleID == "" {
		return errors.New("role ID cannot be empty")
	}

	tierJSON, err := json.Marshal(input.Tier)
	if err != nil {
		return fmt.Errorf("failed to marshal tier: %w", err)
	}

	if err := r.client.RPush(ctx, tiersListKey, tierJSON).Err(); err != nil {
		return fmt.Errorf("failed to add tier: %w", err)
	}

	return nil
}

// RemoveTier removes all entries for a role by rewriting the list
func (r *redisRepository) RemoveTier(ctx context.Context, input *RemoveTierInput) error {
	if input == nil || input.RoleID == "" {
		return errors.New("input and role ID cannot be empty")
	}

	output, err := r.ListTiers(ctx)
	if err != nil {
		return err
	}

	kept := make([]interface{}, 0, len(output.Tiers))
	for _, t := range output.Tiers {
		if t.RoleID == input.RoleID {
			continue
		}

		tierJSON, err := json.Marshal(t)
		if err != nil {
			return fmt.Errorf("failed to marshal tier: %w", err)
		}
		kept = append(kept, tierJSON)
	}

	pipe := r.client.Pipeline()
	pipe.Del(ctx, tiersListKey)
	if len(kept) > 0 {
		pipe.RPush(ctx, tiersListKey, kept...)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to remove tier: %w", err)
	}

	return nil
}

// ListTiers retrieves all tiers in configured order from Redis
func (r *redisRepository) ListTiers(ctx context.Context) (*ListTiersOutput, error) {
	entries, err := r.client.LRange(ctx, tiersListKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list tiers: %w", err)
	}

	tiers := make([]*models.VoiceTier, 0, len(entries))
	for _, entry := range entries {
		var t models.VoiceTier
		if err := json.Unmarshal([]byte(entry), &t); err != nil {
			return nil, fmt.Errorf("failed to unmarshal tier: %w", err)
		}
		tiers = append(tiers, &t)
	}

	return &ListTiersOutput{
		Tiers: tiers,
	}, nil
}
