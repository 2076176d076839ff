package models

// BoardKind identifies which activity metric a leaderboard reflects
type BoardKind string

const (
	// BoardKindChat ranks members by posted messages
	BoardKindChat BoardKind = "chat"

	// BoardKindVoice ranks members by accumulated voice minutes
	BoardKindVoice BoardKind = "voice"
)

// LeaderboardBinding ties a board kind to its rendered message.
// At most one live rendered message exists per kind; MessageID is
// empty until the first successful render.
type LeaderboardBinding struct {
	// Kind is the board this binding belongs to
	Kind BoardKind

	// ChannelID is the channel the board is rendered into
	ChannelID string

	// MessageID is the last rendered message, empty if none
	MessageID string
}

// LeaderboardEntry is one ranked row of a rendered board
type LeaderboardEntry struct {
	// UserID is the ranked member
	UserID string

	// Value is the metric for the board kind (messages or minutes)
	Value int
}
