package tiers

import (
	"guildkeeper/internal/models"
	"guildkeeper/internal/platform"
	tierRepo "guildkeeper/internal/repositories/tier"
	activityService "guildkeeper/internal/services/activity"
)

// Config holds configuration for the tiers service
type Config struct {
	// GuildID is the guild whose roles are managed
	GuildID string

	// Repository dependencies
	TierRepo tierRepo.Repository

	// Service dependencies
	ActivityService activityService.Service
	Platform        platform.Platform
}

// AddTierInput contains parameters for registering a tier
type AddTierInput struct {
	RoleID     string
	MinMinutes int
}

// RemoveTierInput contains parameters for unregistering a tier
type RemoveTierInput struct {
	RoleID string
}

// ListTiersOutput contains all configured tiers
type ListTiersOutput struct {
	Tiers []*models.VoiceTier
}

// ReconcileInput identifies the member to reconcile
type ReconcileInput struct {
	UserID string
}

// ReconcileOutput lists the role changes that were applied
type ReconcileOutput struct {
	// Granted holds the role IDs newly given to the member
	Granted []string

	// Revoked holds the role IDs taken away from the member
	Revoked []string
}
