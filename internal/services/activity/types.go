package activity

import (
	"guildkeeper/internal/common/clock"
	"guildkeeper/internal/models"
	activityRepo "guildkeeper/internal/repositories/activity"
)

// Config holds configuration for the activity service
type Config struct {
	// VoiceMinuteCap bounds a member's total voice minutes so marathon
	// sessions cannot distort the boards, 0 means unlimited
	VoiceMinuteCap int

	// Repository dependencies
	ActivityRepo activityRepo.Repository

	// Service dependencies
	Clock clock.Clock
}

// RecordMessageInput contains parameters for counting a message
type RecordMessageInput struct {
	// UserID is the message author
	UserID string
}

// HandleVoiceStateInput contains one voice presence transition
type HandleVoiceStateInput struct {
	// UserID is the member whose presence changed
	UserID string

	// PreviousRoomID is the channel the member was in, empty if none
	PreviousRoomID string

	// NewRoomID is the channel the member is in now, empty if none
	NewRoomID string
}

// HandleVoiceStateOutput contains the result of a presence transition
type HandleVoiceStateOutput struct {
	// SessionClosed is true when the member fully left voice
	SessionClosed bool

	// MinutesAccrued is the whole minutes folded into the ledger when
	// the session closed
	MinutesAccrued int
}

// GetStatsInput contains parameters for retrieving a member's counters
type GetStatsInput struct {
	// UserID is the member to look up
	UserID string
}

// GetStatsOutput contains a member's counters
type GetStatsOutput struct {
	// Record is the member's counters, zeroed if they have no activity
	Record *models.ActivityRecord
}

// TopNInput contains parameters for ranking members
type TopNInput struct {
	// Kind selects which counter to rank by
	Kind models.BoardKind

	// N is the maximum number of entries to return
	N int
}

// TopNOutput contains the ranked members, highest first
type TopNOutput struct {
	// Entries is ordered by counter value descending, ties broken by
	// first-seen order so re-renders stay stable
	Entries []*models.LeaderboardEntry
}
