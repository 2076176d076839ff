package voiceroom

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"guildkeeper/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	roomKeyPrefix       = "voiceroom:room:"
	guildRoomsKeyPrefix = "voiceroom:guild:"
	ownerHashKey        = "voiceroom:owners"
)

// ErrRoomNotFound is returned when a room is not found
var ErrRoomNotFound = errors.New("room not found")

// Config holds configuration for the Redis room repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed room repository
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

// SaveRoom persists a room to Redis
func (r *redisRepository) SaveRoom(ctx context.Context, input *SaveRoomInput) error {
	if input == nil || input.Room == nil {
		return errors.New("input and room cannot be nil")
	}

	room := input.Room
	if room.ID == "" {
		return errors.New("room ID cannot be empty")
	}

	// If the room already exists under a different owner, drop the old
	// ownership index entry so transfers leave no stale mapping.
	existing, err := r.GetRoom(ctx, &GetRoomInput{RoomID: room.ID})
	if err != nil && !errors.Is(err, ErrRoomNotFound) {
		return err
	}

	roomJSON, err := json.Marshal(room)
	if err != nil {
		return fmt.Errorf("failed to marshal room: %w", err)
	}

	pipe := r.client.Pipeline()

	if existing != nil && existing.OwnerID != room.OwnerID {
		pipe.HDel(ctx, ownerHashKey, existing.OwnerID)
	}

	roomKey := fmt.Sprintf("%s%s", roomKeyPrefix, room.ID)
	pipe.Set(ctx, roomKey, roomJSON, 0)

	guildRoomsKey := fmt.Sprintf("%s%s", guildRoomsKeyPrefix, room.GuildID)
	pipe.SAdd(ctx, guildRoomsKey, room.ID)

	if room.OwnerID != "" {
		pipe.HSet(ctx, ownerHashKey, room.OwnerID, room.ID)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save room: %w", err)
	}

	return nil
}

// GetRoom retrieves a room by channel ID from Redis
func (r *redisRepository) GetRoom(ctx context.Context, input *GetRoomInput) (*models.Room, error) {
	if input == nil || input.RoomID == "" {
		return nil, errors.New("input and room ID cannot be empty")
	}

	roomKey := fmt.Sprintf("%s%s", roomKeyPrefix, input.RoomID)
	roomJSON, err := r.client.Get(ctx, roomKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrRoomNotFound
		}
		return nil, fmt.Errorf("failed to get room: %w", err)
	}

	var room models.Room
	if err := json.Unmarshal([]byte(roomJSON), &room); err != nil {
		return nil, fmt.Errorf("failed to unmarshal room: %w", err)
	}

	return &room, nil
}

// GetRoomByOwner retrieves the room a member currently owns
func (r *redisRepository) GetRoomByOwner(ctx context.Context, input *GetRoomByOwnerInput) (*models.Room, error) {
	if input == nil || input.OwnerID == "" {
		return nil, errors.New("input and owner ID cannot be empty")
	}

	roomID, err := r.client.HGet(ctx, ownerHashKey, input.OwnerID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrRoomNotFound
		}
		return nil, fmt.Errorf("failed to look up owner: %w", err)
	}

	return r.GetRoom(ctx, &GetRoomInput{RoomID: roomID})
}

// ListRooms retrieves all rooms in a guild from Redis
func (r *redisRepository) ListRooms(ctx context.Context, input *ListRoomsInput) (*ListRoomsOutput, error) {
	if input == nil || input.GuildID == "" {
		return nil, errors.New("input and guild ID cannot be empty")
	}

	guildRoomsKey := fmt.Sprintf("%s%s", guildRoomsKeyPrefix, input.GuildID)
	roomIDs, err := r.client.SMembers(ctx, guildRoomsKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list room IDs: %w", err)
	}

	rooms := make([]*models.Room, 0, len(roomIDs))
	for _, roomID := range roomIDs {
		room, err := r.GetRoom(ctx, &GetRoomInput{RoomID: roomID})
		if err != nil {
			if errors.Is(err, ErrRoomNotFound) {
				// Room was deleted between listing and fetching
				continue
			}
			return nil, err
		}
		rooms = append(rooms, room)
	}

	return &ListRoomsOutput{
		Rooms: rooms,
	}, nil
}

// DeleteRoom removes a room and its index entries from Redis
func (r *redisRepository) DeleteRoom(ctx context.Context, input *DeleteRoomInput) error {
	if input == nil || input.RoomID == "" {
		return errors.New("input and room ID cannot be empty")
	}

	room, err := r.GetRoom(ctx, &GetRoomInput{RoomID: input.RoomID})
	if err != nil {
		if errors.Is(err, ErrRoomNotFound) {
			return nil
		}
		return err
	}

	pipe := r.client.Pipeline()

	roomKey := fmt.Sprintf("%s%s", roomKeyPrefix, room.ID)
	pipe.Del(ctx, roomKey)

	guildRoomsKey := fmt.Sprintf("%s%s", guildRoomsKeyPrefix, room.GuildID)
	pipe.SRem(ctx, guildRoomsKey, room.ID)

	if room.OwnerID != "" {
		pipe.HDel(ctx, ownerHashKey, room.OwnerID)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete room: %w", err)
	}

	return nil
}
