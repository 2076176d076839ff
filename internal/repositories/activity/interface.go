package activity

import (
	"context"

	"guildkeeper/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go guildkeeper/internal/repositories/activity Repository

// Repository defines the interface for activity counter persistence
type Repository interface {
	// IncrementChatMessages adds one to a member's message counter
	IncrementChatMessages(ctx context.Context, input *IncrementChatMessagesInput) error

	// AddVoiceMinutes adds minutes to a member's voice counter, clamping
	// to the configured cap when one is set
	AddVoiceMinutes(ctx context.Context, input *AddVoiceMinutesInput) error

	// GetRecord retrieves a member's counters
	GetRecord(ctx context.Context, input *GetRecordInput) (*models.ActivityRecord, error)

	// ListRecords retrieves all records in first-seen order
	ListRecords(ctx context.Context) (*ListRecordsOutput, error)

	// Reset clears the entire ledger
	Reset(ctx context.Context) error
}
