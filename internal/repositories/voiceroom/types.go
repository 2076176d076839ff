package voiceroom

import "guildkeeper/internal/models"

// SaveRoomInput contains parameters for saving a room
type SaveRoomInput struct {
	Room *models.Room
}

// GetRoomInput contains parameters for retrieving a room
type GetRoomInput struct {
	RoomID string
}

// GetRoomByOwnerInput contains parameters for the ownership lookup
type GetRoomByOwnerInput struct {
	OwnerID string
}

// ListRoomsInput contains parameters for listing a guild's rooms
type ListRoomsInput struct {
	GuildID string
}

// ListRoomsOutput contains the rooms in a guild
type ListRoomsOutput struct {
	Rooms []*models.Room
}

// DeleteRoomInput contains parameters for deleting a room
type DeleteRoomInput struct {
	RoomID string
}
