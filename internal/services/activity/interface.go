package activity

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go guildkeeper/internal/services/activity Service

// Service defines the interface for the activity ledger and the voice
// session tracker.
type Service interface {
	// RecordMessage counts one posted message for a member
	RecordMessage(ctx context.Context, input *RecordMessageInput) error

	// HandleVoiceState folds a presence transition into the tracker.
	// Only the zero-to-one transition opens a session and only the
	// one-to-zero transition closes it; room-to-room moves are no-ops.
	HandleVoiceState(ctx context.Context, input *HandleVoiceStateInput) (*HandleVoiceStateOutput, error)

	// GetStats retrieves a member's counters, zeroed if unknown
	GetStats(ctx context.Context, input *GetStatsInput) (*GetStatsOutput, error)

	// TopN returns the highest-ranked members for a board kind
	TopN(ctx context.Context, input *TopNInput) (*TopNOutput, error)

	// Reset clears the whole ledger and all open sessions
	Reset(ctx context.Context) error
}
