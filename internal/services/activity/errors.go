package activity

// ActivityError is a custom error type for activity-related errors
type ActivityError string

// Error implements the error interface
func (e ActivityError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig       ActivityError = "config cannot be nil"
	ErrNilActivityRepo ActivityError = "activity repository cannot be nil"
	ErrNilClock        ActivityError = "clock cannot be nil"
	ErrUnknownKind     ActivityError = "unknown board kind"
)
