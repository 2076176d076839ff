package binding

import (
	"context"

	"guildkeeper/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go guildkeeper/internal/repositories/binding Repository

// Repository defines the interface for leaderboard binding persistence
type Repository interface {
	// SaveBinding persists the binding for a board kind
	SaveBinding(ctx context.Context, input *SaveBindingInput) error

	// GetBinding retrieves the binding for a board kind
	GetBinding(ctx context.Context, input *GetBindingInput) (*models.LeaderboardBinding, error)
}
