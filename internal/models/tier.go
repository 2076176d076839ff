package models

// VoiceTier maps a voice-minute threshold to a role grant
type VoiceTier struct {
	// RoleID is the Discord role granted at this tier
	RoleID string

	// MinMinutes is the voice-minute threshold for the tier
	MinMinutes int
}
