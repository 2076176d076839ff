package leaderboard

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"guildkeeper/internal/models"
	"guildkeeper/internal/platform"
	bindingRepo "guildkeeper/internal/repositories/binding"
	activityService "guildkeeper/internal/services/activity"
)

var medals = []string{"🥇", "🥈", "🥉"}

// service implements the Service interface
type service struct {
	config      *Config
	bindingRepo bindingRepo.Repository
	activity    activityService.Service
	platform    platform.Platform
	guildID     string
	interval    time.Duration
	topSize     int

	stopOnce sync.Once
	done     chan struct{}
}

// New creates a new leaderboard service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.ActivityService == nil {
		return nil, ErrNilActivityService
	}

	if cfg.BindingRepo == nil {
		return nil, ErrNilBindingRepo
	}

	if cfg.Platform == nil {
		return nil, ErrNilPlatform
	}

	interval := cfg.RefreshInterval
	if interval <= 0 {
		interval = 5 * time.Minute
	}

	topSize := cfg.TopSize
	if topSize <= 0 {
		topSize = 10
	}

	return &service{
		config:      cfg,
		bindingRepo: cfg.BindingRepo,
		activity:    cfg.ActivityService,
		platform:    cfg.Platform,
		guildID:     cfg.GuildID,
		interval:    interval,
		topSize:     topSize,
		done:        make(chan struct{}),
	}, nil
}

// SetBinding binds a board kind to a channel
func (s *service) SetBinding(ctx context.Context, input *SetBindingInput) (*SetBindingOutput, error) {
	if input == nil || input.ChannelID == "" {
		return nil, errors.New("input and channel ID cannot be empty")
	}

	if input.Kind != models.BoardKindChat && input.Kind != models.BoardKindVoice {
		return nil, ErrUnknownKind
	}

	binding := &models.LeaderboardBinding{
		Kind:      input.Kind,
		ChannelID: input.ChannelID,
	}

	err := s.bindingRepo.SaveBinding(ctx, &bindingRepo.SaveBindingInput{
		Binding: binding,
	})
	if err != nil {
		return nil, err
	}

	return &SetBindingOutput{Binding: binding}, nil
}

// Render draws one board into its bound channel
func (s *service) Render(ctx context.Context, input *RenderInput) (*RenderOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	binding, err := s.bindingRepo.GetBinding(ctx, &bindingRepo.GetBindingInput{
		Kind: input.Kind,
	})
	if err != nil {
		if errors.Is(err, bindingRepo.ErrBindingNotFound) {
			return nil, ErrBindingNotSet
		}
		return nil, err
	}

	content, err := s.buildBoard(ctx, input.Kind)
	if err != nil {
		return nil, err
	}

	messageID, recreated, err := s.placeMessage(ctx, binding, content)
	if err != nil {
		return nil, err
	}

	if messageID != binding.MessageID {
		binding.MessageID = messageID
		err = s.bindingRepo.SaveBinding(ctx, &bindingRepo.SaveBindingInput{
			Binding: binding,
		})
		if err != nil {
			return nil, err
		}
	}

	return &RenderOutput{
		MessageID: messageID,
		Recreated: recreated,
	}, nil
}

// placeMessage edits the board message in place, posting a fresh one
// when none exists yet or the old one was deleted out from under us.
func (s *service) placeMessage(ctx context.Context, binding *models.LeaderboardBinding, content *platform.MessageContent) (string, bool, error) {
	if binding.MessageID == "" {
		messageID, err := s.platform.SendMessage(ctx, binding.ChannelID, content)
		return messageID, false, err
	}

	exists, err := s.platform.FetchMessage(ctx, binding.ChannelID, binding.MessageID)
	if err != nil {
		return "", false, err
	}

	if !exists {
		messageID, err := s.platform.SendMessage(ctx, binding.ChannelID, content)
		return messageID, true, err
	}

	err = s.platform.EditMessage(ctx, binding.ChannelID, binding.MessageID, content)
	if err != nil {
		if errors.Is(err, platform.ErrResourceMissing) {
			messageID, sendErr := s.platform.SendMessage(ctx, binding.ChannelID, content)
			return messageID, true, sendErr
		}
		return "", false, err
	}

	return binding.MessageID, false, nil
}

func (s *service) buildBoard(ctx context.Context, kind models.BoardKind) (*platform.MessageContent, error) {
	top, err := s.activity.TopN(ctx, &activityService.TopNInput{
		Kind: kind,
		N:    s.topSize,
	})
	if err != nil {
		return nil, err
	}

	var title, unit string
	switch kind {
	case models.BoardKindChat:
		title = "💬 Chat Leaderboard"
		unit = "messages"
	case models.BoardKindVoice:
		title = "🔊 Voice Leaderboard"
		unit = "minutes"
	default:
		return nil, ErrUnknownKind
	}

	var lines []string
	for i, entry := range top.Entries {
		name, err := s.platform.MemberDisplayName(ctx, s.guildID, entry.UserID)
		if err != nil {
			name = entry.UserID
		}

		rank := fmt.Sprintf("%d.", i+1)
		if i < len(medals) {
			rank = medals[i]
		}

		lines = append(lines, fmt.Sprintf("%s **%s** — %d %s", rank, name, entry.Value, unit))
	}

	description := "No activity recorded yet."
	if len(lines) > 0 {
		description = strings.Join(lines, "\n")
	}

	return &platform.MessageContent{
		Title:       title,
		Description: description,
		Footer:      fmt.Sprintf("Updates every %d minutes", int(s.interval.Minutes())),
	}, nil
}

// RenderAll renders every board that has a binding. One board's
// failure must not starve the other, so each kind is attempted and the
// errors are reported together afterwards.
func (s *service) RenderAll(ctx context.Context) error {
	var errs []error
	for _, kind := range []models.BoardKind{models.BoardKindChat, models.BoardKindVoice} {
		_, err := s.Render(ctx, &RenderInput{Kind: kind})
		if err != nil && !errors.Is(err, ErrBindingNotSet) {
			log.Printf("Failed to render %s board: %v", kind, err)
			errs = append(errs, fmt.Errorf("render %s board: %w", kind, err))
		}
	}

	return errors.Join(errs...)
}

// Start begins the periodic refresh loop
func (s *service) Start(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-s.done:
				return
			case <-ticker.C:
				if err := s.RenderAll(ctx); err != nil {
					log.Printf("Failed to refresh leaderboards: %v", err)
				}
			}
		}
	}()
}

// Stop halts the periodic refresh loop
func (s *service) Stop() {
	s.stopOnce.Do(func() {
		close(s.done)
	})
}
