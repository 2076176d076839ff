package tier

import "guildkeeper/internal/models"

// AddTierInput contains parameters for adding a tier
type AddTierInput struct {
	Tier *models.VoiceTier
}

// RemoveTierInput contains parameters for removing a tier
type RemoveTierInput struct {
	RoleID string
}

// ListTiersOutput contains all configured tiers
type ListTiersOutput struct {
	Tiers []*models.VoiceTier
}
