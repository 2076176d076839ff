package leaderboard

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go guildkeeper/internal/services/leaderboard Service

// Service defines the interface for leaderboard rendering
type Service interface {
	// SetBinding binds a board kind to a channel. Any previously
	// rendered message is abandoned and the next render posts fresh.
	SetBinding(ctx context.Context, input *SetBindingInput) (*SetBindingOutput, error)

	// Render draws one board into its bound channel, editing the
	// existing message in place or posting a new one if it is gone
	Render(ctx context.Context, input *RenderInput) (*RenderOutput, error)

	// RenderAll renders every board that has a binding
	RenderAll(ctx context.Context) error

	// Start begins the periodic refresh loop
	Start(ctx context.Context)

	// Stop halts the periodic refresh loop
	Stop()
}
