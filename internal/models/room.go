package models

import (
	"time"
)

// RoomStatus represents the current state of an ephemeral voice room
type RoomStatus string

const (
	// RoomStatusActive indicates the room exists and has (or recently had) occupants
	RoomStatusActive RoomStatus = "active"

	// RoomStatusPendingDelete indicates the room went empty and is inside
	// its teardown grace window
	RoomStatusPendingDelete RoomStatus = "pending_delete"
)

// Room represents one join-to-create personal voice channel
type Room struct {
	// ID is the Discord channel ID of the voice room
	ID string

	// GuildID is the Discord server the room belongs to
	GuildID string

	// OwnerID is the Discord user ID of the room owner. Ownership is
	// independent of occupancy; the owner need not be in the room.
	OwnerID string

	// Status is the current lifecycle state of the room
	Status RoomStatus

	// Locked indicates the @everyone connect permission is denied
	Locked bool

	// Hidden indicates the @everyone view permission is denied
	Hidden bool

	// UserLimit is the configured member cap, 0 means unlimited
	UserLimit int

	// CreatedAt is when the room was created
	CreatedAt time.Time
}
