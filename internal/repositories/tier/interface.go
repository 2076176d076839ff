package tier

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go guildkeeper/internal/repositories/tier Repository

// Repository defines the interface for voice tier persistence
type Repository interface {
	// AddTier appends a tier entry
	AddTier(ctx context.Context, input *AddTierInput) error

	// RemoveTier removes all entries for a role
	RemoveTier(ctx context.Context, input *RemoveTierInput) error

	// ListTiers retrieves all tiers in the order they were added
	ListTiers(ctx context.Context) (*ListTiersOutput, error)
}
