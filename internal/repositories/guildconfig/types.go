package guildconfig

import "guildkeeper/internal/models"

// SaveSettingsInput contains parameters for saving guild settings
type SaveSettingsInput struct {
	Settings *models.GuildSettings
}

// GetSettingsInput contains parameters for retrieving guild settings
type GetSettingsInput struct {
	GuildID string
}

// DeleteSettingsInput contains parameters for deleting guild settings
type DeleteSettingsInput struct {
	GuildID string
}
