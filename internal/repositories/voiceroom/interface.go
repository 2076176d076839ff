package voiceroom

import (
	"context"

	"guildkeeper/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go guildkeeper/internal/repositories/voiceroom Repository

// Repository defines the interface for ephemeral room persistence
type Repository interface {
	// SaveRoom persists a room, reindexing ownership if it changed
	SaveRoom(ctx context.Context, input *SaveRoomInput) error

	// GetRoom retrieves a room by channel ID
	GetRoom(ctx context.Context, input *GetRoomInput) (*models.Room, error)

	// GetRoomByOwner retrieves the room a member currently owns
	GetRoomByOwner(ctx context.Context, input *GetRoomByOwnerInput) (*models.Room, error)

	// ListRooms retrieves all rooms in a guild
	ListRooms(ctx context.Context, input *ListRoomsInput) (*ListRoomsOutput, error)

	// DeleteRoom removes a room and its ownership index entry
	DeleteRoom(ctx context.Context, input *DeleteRoomInput) error
}
