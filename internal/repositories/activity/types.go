package activity

import "guildkeeper/internal/models"

// IncrementChatMessagesInput contains parameters for counting a message
type IncrementChatMessagesInput struct {
	UserID string
}

// AddVoiceMinutesInput contains parameters for accumulating voice minutes
type AddVoiceMinutesInput struct {
	UserID  string
	Minutes int

	// Cap is the maximum total voice minutes, 0 means unlimited
	Cap int
}

// GetRecordInput contains parameters for retrieving a member's counters
type GetRecordInput struct {
	UserID string
}

// ListRecordsOutput contains all activity records in first-seen order
type ListRecordsOutput struct {
	Records []*models.ActivityRecord
}
