package leaderboard

// LeaderboardError is a custom error type for leaderboard errors
type LeaderboardError string

// Error implements the error interface
func (e LeaderboardError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrBindingNotSet      LeaderboardError = "no channel is bound for this board"
	ErrUnknownKind        LeaderboardError = "unknown board kind"
	ErrNilConfig          LeaderboardError = "config cannot be nil"
	ErrNilActivityService LeaderboardError = "activity service cannot be nil"
	ErrNilBindingRepo     LeaderboardError = "binding repository cannot be nil"
	ErrNilPlatform        LeaderboardError = "platform cannot be nil"
)
