package rooms

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go guildkeeper/internal/services/rooms Service

// Service defines the interface for the ephemeral room lifecycle
type Service interface {
	// Setup creates the voice-master categories and template channels
	// and records their IDs. Calling it again is a no-op once set up.
	Setup(ctx context.Context, input *SetupInput) (*SetupOutput, error)

	// ResetSetup tears the voice-master topology down and rebuilds it
	ResetSetup(ctx context.Context, input *ResetSetupInput) (*SetupOutput, error)

	// HandleVoiceState reacts to one presence transition: template
	// joins spawn or place, tracked-room changes drive teardown
	HandleVoiceState(ctx context.Context, input *HandleVoiceStateInput) (*HandleVoiceStateOutput, error)

	// FinalizeTeardown runs the deferred emptiness re-check for a room
	// whose grace window expired
	FinalizeTeardown(ctx context.Context, input *FinalizeTeardownInput) (*FinalizeTeardownOutput, error)

	// GetRoom retrieves a managed room
	GetRoom(ctx context.Context, input *GetRoomInput) (*GetRoomOutput, error)

	// Lock denies @everyone connect while keeping the owner in
	Lock(ctx context.Context, input *LockInput) error

	// Unlock restores @everyone connect
	Unlock(ctx context.Context, input *UnlockInput) error

	// Hide denies @everyone view and moves the room to the private
	// category when one is configured
	Hide(ctx context.Context, input *HideInput) error

	// Unhide restores @everyone view and moves the room back
	Unhide(ctx context.Context, input *UnhideInput) error

	// Kick disconnects a member currently in the room
	Kick(ctx context.Context, input *KickInput) error

	// Ban denies a member's connect permission and drops them if present
	Ban(ctx context.Context, input *BanInput) error

	// Permit grants a member connect permission, overriding a ban
	Permit(ctx context.Context, input *PermitInput) error

	// Mute server-mutes or unmutes a member currently in the room
	Mute(ctx context.Context, input *MuteInput) error

	// SetLimit sets the room's member cap
	SetLimit(ctx context.Context, input *SetLimitInput) error

	// Rename renames the room
	Rename(ctx context.Context, input *RenameInput) error

	// Transfer reassigns ownership; the new owner need not be present
	Transfer(ctx context.Context, input *TransferInput) error

	// Info describes the room and its current occupancy
	Info(ctx context.Context, input *InfoInput) (*InfoOutput, error)
}
