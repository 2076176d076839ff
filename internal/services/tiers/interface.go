package tiers

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go guildkeeper/internal/services/tiers Service

// Service defines the interface for voice tier evaluation
type Service interface {
	// AddTier registers a voice-minute threshold for a role
	AddTier(ctx context.Context, input *AddTierInput) error

	// RemoveTier unregisters a role's threshold
	RemoveTier(ctx context.Context, input *RemoveTierInput) error

	// ListTiers retrieves all tiers in the order they were added
	ListTiers(ctx context.Context) (*ListTiersOutput, error)

	// Reconcile aligns a member's tier roles with their accrued voice
	// minutes, granting met tiers and revoking unmet ones. Running it
	// twice in a row changes nothing.
	Reconcile(ctx context.Context, input *ReconcileInput) (*ReconcileOutput, error)
}
