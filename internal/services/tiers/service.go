package tiers

import (
	"context"
	"errors"

	"guildkeeper/internal/models"
	"guildkeeper/internal/platform"
	tierRepo "guildkeeper/internal/repositories/tier"
	activityService "guildkeeper/internal/services/activity"
)

// service implements the Service interface
type service struct {
	config   *Config
	tierRepo tierRepo.Repository
	activity activityService.Service
	platform platform.Platform
	guildID  string
}

// New creates a new tiers service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.TierRepo == nil {
		return nil, ErrNilTierRepo
	}

	if cfg.ActivityService == nil {
		return nil, ErrNilActivityService
	}

	if cfg.Platform == nil {
		return nil, ErrNilPlatform
	}

	return &service{
		config:   cfg,
		tierRepo: cfg.TierRepo,
		activity: cfg.ActivityService,
		platform: cfg.Platform,
		guildID:  cfg.GuildID,
	}, nil
}

// AddTier registers a voice-minute threshold for a role
func (s *service) AddTier(ctx context.Context, input *AddTierInput) error {
	if input == nil || input.RoleID == "" {
		return errors.New("input and role ID cannot be empty")
	}

	if input.MinMinutes < 0 {
		return errors.New("minute threshold cannot be negative")
	}

	return s.tierRepo.AddTier(ctx, &tierRepo.AddTierInput{
		Tier: &models.VoiceTier{
			RoleID:     input.RoleID,
			MinMinutes: input.MinMinutes,
		},
	})
}

// RemoveTier unregisters a role's threshold
func (s *service) RemoveTier(ctx context.Context, input *RemoveTierInput) error {
	if input == nil || input.RoleID == "" {
		return errors.New("input and role ID cannot be empty")
	}

	return s.tierRepo.RemoveTier(ctx, &tierRepo.RemoveTierInput{
		RoleID: input.RoleID,
	})
}

// ListTiers retrieves all tiers in the order they were added
func (s *service) ListTiers(ctx context.Context) (*ListTiersOutput, error) {
	output, err := s.tierRepo.ListTiers(ctx)
	if err != nil {
		return nil, err
	}

	return &ListTiersOutput{Tiers: output.Tiers}, nil
}

// Reconcile aligns a member's tier roles with their accrued minutes.
// The full tier list is walked every time so a member who slipped past
// a threshold while the bot was down still converges.
func (s *service) Reconcile(ctx context.Context, input *ReconcileInput) (*ReconcileOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	tiers, err := s.tierRepo.ListTiers(ctx)
	if err != nil {
		return nil, err
	}

	if len(tiers.Tiers) == 0 {
		return &ReconcileOutput{}, nil
	}

	stats, err := s.activity.GetStats(ctx, &activityService.GetStatsInput{
		UserID: input.UserID,
	})
	if err != nil {
		return nil, err
	}

	roles, err := s.platform.MemberRoles(ctx, s.guildID, input.UserID)
	if err != nil {
		return nil, err
	}

	held := make(map[string]bool, len(roles))
	for _, roleID := range roles {
		held[roleID] = true
	}

	output := &ReconcileOutput{}
	minutes := stats.Record.VoiceMinutes

	for _, tier := range tiers.Tiers {
		met := minutes >= tier.MinMinutes

		switch {
		case met && !held[tier.RoleID]:
			if err := s.platform.GrantRole(ctx, s.guildID, input.UserID, tier.RoleID); err != nil {
				return nil, err
			}
			output.Granted = append(output.Granted, tier.RoleID)
		case !met && held[tier.RoleID]:
			if err := s.platform.RevokeRole(ctx, s.guildID, input.UserID, tier.RoleID); err != nil {
				return nil, err
			}
			output.Revoked = append(output.Revoked, tier.RoleID)
		}
	}

	return output, nil
}
