package models

// ActivityRecord holds the accumulated activity counters for a single member.
// Counters only ever grow; the full ledger reset is the one exception.
type ActivityRecord struct {
	// UserID is the Discord user ID the counters belong to
	UserID string

	// ChatMessages is the number of messages the member has posted
	ChatMessages int

	// VoiceMinutes is the number of minutes the member has spent in voice channels
	VoiceMinutes int
}
