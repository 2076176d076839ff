package leaderboard

import (
	"time"

	"guildkeeper/internal/models"
	"guildkeeper/internal/platform"
	bindingRepo "guildkeeper/internal/repositories/binding"
	activityService "guildkeeper/internal/services/activity"
)

// Config holds configuration for the leaderboard service
type Config struct {
	// GuildID is the guild whose members are ranked
	GuildID string

	// RefreshInterval is how often bound boards are re-rendered,
	// defaults to 5 minutes
	RefreshInterval time.Duration

	// TopSize is how many entries each board shows, defaults to 10
	TopSize int

	// Repository dependencies
	BindingRepo bindingRepo.Repository

	// Service dependencies
	ActivityService activityService.Service
	Platform        platform.Platform
}

// SetBindingInput contains parameters for binding a board to a channel
type SetBindingInput struct {
	Kind      models.BoardKind
	ChannelID string
}

// SetBindingOutput contains the saved binding
type SetBindingOutput struct {
	Binding *models.LeaderboardBinding
}

// RenderInput identifies the board to render
type RenderInput struct {
	Kind models.BoardKind
}

// RenderOutput describes the rendered message
type RenderOutput struct {
	// MessageID is the message now holding the board
	MessageID string

	// Recreated is true when the previous message was gone and a new
	// one was posted in its place
	Recreated bool
}
