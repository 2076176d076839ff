package guildconfig

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
	settingsKeyPrefix = "guildconfig:"
)

// ErrSettingsNotFound is returned when a guild has not been set up
var ErrSettingsNotFound = errors.New("guild settings not found")

// Config holds configuration for the Redis guild config repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed guild config repository
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

// SaveSettings persists a guild's settings to Redis
func (r *redisRepository) SaveSettings(ctx context.Context, input *SaveSettingsInput) error {
	if input == nil || input.Settings == nil {
		return errors.New("input and settings cannot be nil")
	}

	if input.Settings.GuildID == "" {
		return errors.New("guild ID cannot be empty")
	}

	settingsJSON, err := json.Marshal(input.Settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	settingsKey := fmt.Sprintf("%s%s", settingsKeyPrefix, input.Settings.GuildID)
	if err := r.client.Set(ctx, settingsKey, settingsJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	return nil
}

// GetSettings retrieves a guild's settings from Redis
func (r *redisRepository) GetSettings(ctx context.Context, input *GetSettingsInput) (*models.GuildSettings, error) {
	if input == nil || input.GuildID == "" {
		return nil, errors.New("input and guild ID cannot be empty")
	}

	settingsKey := fmt.Sprintf("%s%s", settingsKeyPrefix, input.GuildID)
	settingsJSON, err := r.client.Get(ctx, settingsKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrSettingsNotFound
		}
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}

	var settings models.GuildSettings
	if err := json.Unmarshal([]byte(settingsJSON), &settings); err != nil {
		return nil, fmt.Errorf("failed to unmarshal settings: %w", err)
	}

	return &settings, nil
}

// DeleteSettings removes a guild's settings from Redis
func (r *redisRepository) DeleteSettings(ctx context.Context, input *DeleteSettingsInput) error {
	if input == nil || input.GuildID == "" {
		return errors.New("input and guild ID cannot be empty")
	}

	settingsKey := fmt.Sprintf("%s%s", settingsKeyPrefix, input.GuildID)
	if err := r.client.Del(ctx, settingsKey).Err(); err != nil {
		return fmt.Errorf("failed to delete settings: %w", err)
	}

	return nil
}
