package rooms

import (
	"time"

	"guildkeeper/internal/common/clock"
	"guildkeeper/internal/common/uuid"
	"guildkeeper/internal/models"
	"guildkeeper/internal/platform"
	guildconfigRepo "guildkeeper/internal/repositories/guildconfig"
	voiceroomRepo "guildkeeper/internal/repositories/voiceroom"
)

// Default names for the voice-master topology
const (
	DefaultMasterCategoryName  = "Voice Master VC"
	DefaultPublicCategoryName  = "Public VC"
	DefaultPrivateCategoryName = "Private VC"
	DefaultJoinToCreateName    = "Join To Create"
	DefaultJoinRandomName      = "Join Random"
)

// unlimitedOccupancy stands in for "no cap" when picking a random room
const unlimitedOccupancy = 99

// Config holds configuration for the rooms service
type Config struct {
	// TeardownGrace is how long an empty room survives before the
	// emptiness re-check and deletion, defaults to 5 seconds
	TeardownGrace time.Duration

	// Repository dependencies
	RoomRepo        voiceroomRepo.Repository
	GuildConfigRepo guildconfigRepo.Repository

	// Service dependencies
	Platform      platform.Platform
	Clock         clock.Clock
	UUIDGenerator uuid.UUID
}

// SetupInput contains parameters for setting up the voice-master topology
type SetupInput struct {
	GuildID string
}

// SetupOutput contains the resulting topology
type SetupOutput struct {
	Settings *models.GuildSettings

	// AlreadySetUp is true when an existing topology was kept
	AlreadySetUp bool
}

// ResetSetupInput contains parameters for rebuilding the topology
type ResetSetupInput struct {
	GuildID string
}

// HandleVoiceStateInput contains one presence transition
type HandleVoiceStateInput struct {
	GuildID        string
	UserID         string
	PreviousRoomID string
	NewRoomID      string
}

// HandleVoiceStateOutput describes what the transition triggered
type HandleVoiceStateOutput struct {
	// CreatedRoomID is set when a join-to-create room was spawned
	CreatedRoomID string

	// MovedToRoomID is set when the member was placed into a room
	MovedToRoomID string

	// TeardownScheduled is set when a room entered its grace window
	TeardownScheduled bool
}

// FinalizeTeardownInput identifies the deferred deletion to run
type FinalizeTeardownInput struct {
	RoomID string

	// Token is the deletion attempt this call belongs to; a stale
	// token means the room was revived and re-emptied in between
	Token string
}

// FinalizeTeardownOutput reports whether the room was deleted
type FinalizeTeardownOutput struct {
	Deleted bool
}

// GetRoomInput contains parameters for retrieving a room
type GetRoomInput struct {
	RoomID string
}

// GetRoomOutput contains the room
type GetRoomOutput struct {
	Room *models.Room
}

// LockInput identifies the room to lock
type LockInput struct {
	RoomID string
}

// UnlockInput identifies the room to unlock
type UnlockInput struct {
	RoomID string
}

// HideInput identifies the room to hide
type HideInput struct {
	RoomID string
}

// UnhideInput identifies the room to unhide
type UnhideInput struct {
	RoomID string
}

// KickInput identifies the member to disconnect from a room
type KickInput struct {
	RoomID   string
	TargetID string
}

// BanInput identifies the member to ban from a room
type BanInput struct {
	RoomID   string
	TargetID string
}

// PermitInput identifies the member to allow into a room
type PermitInput struct {
	RoomID   string
	TargetID string
}

// MuteInput identifies the member to mute or unmute in a room
type MuteInput struct {
	RoomID   string
	TargetID string
	Muted    bool
}

// SetLimitInput contains the room's new member cap
type SetLimitInput struct {
	RoomID string
	Limit  int
}

// RenameInput contains the room's new name
type RenameInput struct {
	RoomID string
	Name   string
}

// TransferInput contains the room's new owner
type TransferInput struct {
	RoomID     string
	NewOwnerID string
}

// InfoInput identifies the room to describe
type InfoInput struct {
	RoomID string
}

// InfoOutput describes a room and its occupancy
type InfoOutput struct {
	Room *models.Room

	// OccupantCount is the live member count from the gateway
	OccupantCount int
}
