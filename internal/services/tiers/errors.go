package tiers

// TierError is a custom error type for tier errors
type TierError string

// Error implements the error interface
func (e TierError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig          TierError = "config cannot be nil"
	ErrNilTierRepo        TierError = "tier repository cannot be nil"
	ErrNilActivityService TierError = "activity service cannot be nil"
	ErrNilPlatform        TierError = "platform cannot be nil"
)
