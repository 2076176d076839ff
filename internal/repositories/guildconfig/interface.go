package guildconfig

import (
	"context"

	"guildkeeper/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go guildkeeper/internal/repositories/guildconfig Repository

// Repository defines the interface for guild settings persistence
type Repository interface {
	// SaveSettings persists the voice-master topology for a guild
	SaveSettings(ctx context.Context, input *SaveSettingsInput) error

	// GetSettings retrieves a guild's voice-master topology
	GetSettings(ctx context.Context, input *GetSettingsInput) (*models.GuildSettings, error)

	// DeleteSettings removes a guild's voice-master topology
	DeleteSettings(ctx context.Context, input *DeleteSettingsInput) error
}
