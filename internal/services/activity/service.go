package activity

import (
	"context"
	"errors"
	"sort"
	"sync"

	"guildkeeper/internal/common/clock"
	"guildkeeper/internal/models"
	activityRepo "guildkeeper/internal/repositories/activity"
)

// service implements the Service interface
type service struct {
	config       *Config
	activityRepo activityRepo.Repository
	clock        clock.Clock

	// Open voice sessions are deliberately in-memory only: a restart
	// drops the gateway connection anyway, so open sessions are stale
	// the moment the process dies. Handlers run on separate goroutines,
	// hence the mutex around the check-then-act on the map.
	mu       sync.Mutex
	sessions map[string]*models.VoiceSession
}

// New creates a new activity service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.ActivityRepo == nil {
		return nil, ErrNilActivityRepo
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	return &service{
		config:       cfg,
		activityRepo: cfg.ActivityRepo,
		clock:        cfg.Clock,
		sessions:     make(map[string]*models.VoiceSession),
	}, nil
}

// RecordMessage counts one posted message for a member
func (s *service) RecordMessage(ctx context.Context, input *RecordMessageInput) error {
	if input == nil || input.UserID == "" {
		return errors.New("input and user ID cannot be empty")
	}

	return s.activityRepo.IncrementChatMessages(ctx, &activityRepo.IncrementChatMessagesInput{
		UserID: input.UserID,
	})
}

// HandleVoiceState folds a presence transition into the tracker
func (s *service) HandleVoiceState(ctx context.Context, input *HandleVoiceStateInput) (*HandleVoiceStateOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	joined := input.PreviousRoomID == "" && input.NewRoomID != ""
	left := input.PreviousRoomID != "" && input.NewRoomID == ""

	if joined {
		s.mu.Lock()
		// A duplicate join must not reset an already-running clock
		if _, open := s.sessions[input.UserID]; !open {
			s.sessions[input.UserID] = &models.VoiceSession{
				UserID:    input.UserID,
				StartedAt: s.clock.Now(),
			}
		}
		s.mu.Unlock()

		return &HandleVoiceStateOutput{}, nil
	}

	if !left {
		// Room-to-room move or spurious event, nothing to do
		return &HandleVoiceStateOutput{}, nil
	}

	s.mu.Lock()
	session, open := s.sessions[input.UserID]
	if open {
		delete(s.sessions, input.UserID)
	}
	s.mu.Unlock()

	if !open {
		// Duplicate leave, nothing to account
		return &HandleVoiceStateOutput{}, nil
	}

	elapsed := int(s.clock.Now().Sub(session.StartedAt).Minutes())
	if elapsed < 0 {
		elapsed = 0
	}

	err := s.activityRepo.AddVoiceMinutes(ctx, &activityRepo.AddVoiceMinutesInput{
		UserID:  input.UserID,
		Minutes: elapsed,
		Cap:     s.config.VoiceMinuteCap,
	})
	if err != nil {
		return nil, err
	}

	return &HandleVoiceStateOutput{
		SessionClosed:  true,
		MinutesAccrued: elapsed,
	}, nil
}

// GetStats retrieves a member's counters, zeroed if unknown
func (s *service) GetStats(ctx context.Context, input *GetStatsInput) (*GetStatsOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	record, err := s.activityRepo.GetRecord(ctx, &activityRepo.GetRecordInput{
		UserID: input.UserID,
	})
	if err != nil {
		if errors.Is(err, activityRepo.ErrRecordNotFound) {
			return &GetStatsOutput{
				Record: &models.ActivityRecord{UserID: input.UserID},
			}, nil
		}
		return nil, err
	}

	return &GetStatsOutput{
		Record: record,
	}, nil
}

// TopN returns the highest-ranked members for a board kind
func (s *service) TopN(ctx context.Context, input *TopNInput) (*TopNOutput, error) {
	if input == nil || input.N <= 0 {
		return nil, errors.New("input and n cannot be empty")
	}

	if input.Kind != models.BoardKindChat && input.Kind != models.BoardKindVoice {
		return nil, ErrUnknownKind
	}

	output, err := s.activityRepo.ListRecords(ctx)
	if err != nil {
		return nil, err
	}

	entries := make([]*models.LeaderboardEntry, 0, len(output.Records))
	for _, record := range output.Records {
		value := record.ChatMessages
		if input.Kind == models.BoardKindVoice {
			value = record.VoiceMinutes
		}

		entries = append(entries, &models.LeaderboardEntry{
			UserID: record.UserID,
			Value:  value,
		})
	}

	// Stable sort keeps first-seen order for equal values, which keeps
	// repeated renders deterministic
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Value > entries[j].Value
	})

	if len(entries) > input.N {
		entries = entries[:input.N]
	}

	return &TopNOutput{
		Entries: entries,
	}, nil
}

// Reset clears the whole ledger and all open sessions
func (s *service) Reset(ctx context.Context) error {
	s.mu.Lock()
	s.sessions = make(map[string]*models.VoiceSession)
	s.mu.Unlock()

	return s.activityRepo.Reset(ctx)
}
