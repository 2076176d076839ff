package models

import (
	"time"
)

// VoiceSession tracks one member's open stretch of voice presence.
// Sessions are ephemeral: they live in memory only and are discarded
// when the member fully leaves voice, after their elapsed minutes have
// been folded into the activity record.
type VoiceSession struct {
	// UserID is the Discord user ID of the member in voice
	UserID string

	// StartedAt is when the member first entered any voice channel
	StartedAt time.Time
}
