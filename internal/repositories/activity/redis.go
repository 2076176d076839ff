package activity

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"guildkeeper/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key layout: counters live in two hashes keyed by user ID, and a
	// list records the order members were first seen in, which is the
	// stable tie-breaker for leaderboard ordering.
	chatHashKey   = "activity:chat"
	voiceHashKey  = "activity:voice"
	orderListKey  = "activity:order"
	membersSetKey = "activity:members"
)

// ErrRecordNotFound is returned when a member has no activity yet
var ErrRecordNotFound = errors.New("activity record not found")

// Config holds configuration for the Redis activity repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed activity repository
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

// registerMember appends the member to the first-seen order list the
// first time they show up in either counter.
func (r *redisRepository) registerMember(ctx context.Context, userID string) error {
	added, err := r.client.SAdd(ctx, membersSetKey, userID).Result()
	if err != nil {
		return fmt.Errorf("failed to register member: %w", err)
	}

	if added > 0 {
		if err := r.client.RPush(ctx, orderListKey, userID).Err(); err != nil {
			return fmt.Errorf("failed to record member order: %w", err)
		}
	}

	return nil
}

// IncrementChatMessages adds one to a member's message counter
func (r *redisRepository) IncrementChatMessages(ctx context.Context, input *IncrementChatMessagesInput) error {
	if input == nil || input.UserID == "" {
		return errors.New("input and user ID cannot be empty")
	}

	if err := r.registerMember(ctx, input.UserID); err != nil {
		return err
	}

	if err := r.client.HIncrBy(ctx, chatHashKey, input.UserID, 1).Err(); err != nil {
		return fmt.Errorf("failed to increment chat counter: %w", err)
	}

	return nil
}

// AddVoiceMinutes adds minutes to a member's voice counter and clamps
// the total to the cap when one is configured.
func (r *redisRepository) AddVoiceMinutes(ctx context.Context, input *AddVoiceMinutesInput) error {
	if input == nil || input.UserID == "" {
		return errors.New("input and user ID cannot be empty")
	}

	if input.Minutes < 0 {
		return errors.New("minutes cannot be negative")
	}

	if input.Minutes == 0 {
		// Not even a first-seen entry: a zero accrual must leave the
		// ledger exactly as it was
		return nil
	}

	if err := r.registerMember(ctx, input.UserID); err != nil {
		return err
	}

	total, err := r.client.HIncrBy(ctx, voiceHashKey, input.UserID, int64(input.Minutes)).Result()
	if err != nil {
		return fmt.Errorf("failed to increment voice counter: %w", err)
	}

	if input.Cap > 0 && total > int64(input.Cap) {
		if err := r.client.HSet(ctx, voiceHashKey, input.UserID, input.Cap).Err(); err != nil {
			return fmt.Errorf("failed to clamp voice counter: %w", err)
		}
	}

	return nil
}

// GetRecord retrieves a member's counters from Redis
func (r *redisRepository) GetRecord(ctx context.Context, input *GetRecordInput) (*models.ActivityRecord, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	known, err := r.client.SIsMember(ctx, membersSetKey, input.UserID).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to check member: %w", err)
	}

	if !known {
		return nil, ErrRecordNotFound
	}

	pipe := r.client.Pipeline()
	chatCmd := pipe.HGet(ctx, chatHashKey, input.UserID)
	voiceCmd := pipe.HGet(ctx, voiceHashKey, input.UserID)

	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get counters: %w", err)
	}

	return &models.ActivityRecord{
		UserID:       input.UserID,
		ChatMessages: parseCounter(chatCmd),
		VoiceMinutes: parseCounter(voiceCmd),
	}, nil
}

// ListRecords retrieves every record in first-seen order
func (r *redisRepository) ListRecords(ctx context.Context) (*ListRecordsOutput, error) {
	userIDs, err := r.client.LRange(ctx, orderListKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}

	if len(userIDs) == 0 {
		return &ListRecordsOutput{
			Records: []*models.ActivityRecord{},
		}, nil
	}

	pipe := r.client.Pipeline()
	chatCmds := make([]*redis.StringCmd, len(userIDs))
	voiceCmds := make([]*redis.StringCmd, len(userIDs))

	for i, userID := range userIDs {
		chatCmds[i] = pipe.HGet(ctx, chatHashKey, userID)
		voiceCmds[i] = pipe.HGet(ctx, voiceHashKey, userID)
	}

	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get counters: %w", err)
	}

	records := make([]*models.ActivityRecord, 0, len(userIDs))
	for i, userID := range userIDs {
		records = append(records, &models.ActivityRecord{
			UserID:       userID,
			ChatMessages: parseCounter(chatCmds[i]),
			VoiceMinutes: parseCounter(voiceCmds[i]),
		})
	}

	return &ListRecordsOutput{
		Records: records,
	}, nil
}

// Reset clears the entire ledger
func (r *redisRepository) Reset(ctx context.Context) error {
	if err := r.client.Del(ctx, chatHashKey, voiceHashKey, orderListKey, membersSetKey).Err(); err != nil {
		return fmt.Errorf("failed to reset ledger: %w", err)
	}

	return nil
}

// parseCounter converts a hash field result into an int, treating a
// missing field as zero.
func parseCounter(cmd *redis.StringCmd) int {
	raw, err := cmd.Result()
	if err != nil {
		return 0
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}

	return value
}
