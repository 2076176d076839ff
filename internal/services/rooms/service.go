package rooms

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"guildkeeper/internal/common/clock"
	"guildkeeper/internal/common/uuid"
	"guildkeeper/internal/models"
	"guildkeeper/internal/platform"
	guildconfigRepo "guildkeeper/internal/repositories/guildconfig"
	voiceroomRepo "guildkeeper/internal/repositories/voiceroom"
)

// service implements the Service interface
type service struct {
	config          *Config
	roomRepo        voiceroomRepo.Repository
	guildConfigRepo guildconfigRepo.Repository
	platform        platform.Platform
	clock           clock.Clock
	uuidGenerator   uuid.UUID
	grace           time.Duration

	// pending maps a room to the token of its in-flight teardown.
	// A revived room gets its entry dropped, so a timer firing with a
	// stale token aborts instead of deleting an occupied room.
	mu      sync.Mutex
	pending map[string]string
}

// New creates a new rooms service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.RoomRepo == nil {
		return nil, ErrNilRoomRepo
	}

	if cfg.GuildConfigRepo == nil {
		return nil, ErrNilConfigRepo
	}

	if cfg.Platform == nil {
		return nil, ErrNilPlatform
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	grace := cfg.TeardownGrace
	if grace <= 0 {
		grace = 5 * time.Second
	}

	return &service{
		config:          cfg,
		roomRepo:        cfg.RoomRepo,
		guildConfigRepo: cfg.GuildConfigRepo,
		platform:        cfg.Platform,
		clock:           cfg.Clock,
		uuidGenerator:   cfg.UUIDGenerator,
		grace:           grace,
		pending:         make(map[string]string),
	}, nil
}

// Setup creates the voice-master categories and template channels
func (s *service) Setup(ctx context.Context, input *SetupInput) (*SetupOutput, error) {
	if input == nil || input.GuildID == "" {
		return nil, errors.New("input and guild ID cannot be empty")
	}

	existing, err := s.guildConfigRepo.GetSettings(ctx, &guildconfigRepo.GetSettingsInput{
		GuildID: input.GuildID,
	})
	if err != nil && !errors.Is(err, guildconfigRepo.ErrSettingsNotFound) {
		return nil, err
	}

	if existing != nil {
		return &SetupOutput{
			Settings:     existing,
			AlreadySetUp: true,
		}, nil
	}

	masterID, err := s.platform.CreateCategory(ctx, input.GuildID, DefaultMasterCategoryName)
	if err != nil {
		return nil, fmt.Errorf("failed to create master category: %w", err)
	}

	publicID, err := s.platform.CreateCategory(ctx, input.GuildID, DefaultPublicCategoryName)
	if err != nil {
		return nil, fmt.Errorf("failed to create public category: %w", err)
	}

	privateID, err := s.platform.CreateCategory(ctx, input.GuildID, DefaultPrivateCategoryName)
	if err != nil {
		return nil, fmt.Errorf("failed to create private category: %w", err)
	}

	joinToCreate, err := s.platform.CreateVoiceRoom(ctx, &platform.CreateVoiceRoomInput{
		GuildID:  input.GuildID,
		ParentID: masterID,
		Name:     DefaultJoinToCreateName,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create join-to-create channel: %w", err)
	}

	joinRandom, err := s.platform.CreateVoiceRoom(ctx, &platform.CreateVoiceRoomInput{
		GuildID:  input.GuildID,
		ParentID: masterID,
		Name:     DefaultJoinRandomName,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create join-random channel: %w", err)
	}

	settings := &models.GuildSettings{
		GuildID:           input.GuildID,
		MasterCategoryID:  masterID,
		PublicCategoryID:  publicID,
		PrivateCategoryID: privateID,
		JoinToCreateID:    joinToCreate.RoomID,
		JoinRandomID:      joinRandom.RoomID,
	}

	err = s.guildConfigRepo.SaveSettings(ctx, &guildconfigRepo.SaveSettingsInput{
		Settings: settings,
	})
	if err != nil {
		return nil, err
	}

	return &SetupOutput{
		Settings: settings,
	}, nil
}

// ResetSetup tears the topology down and rebuilds it from scratch
func (s *service) ResetSetup(ctx context.Context, input *ResetSetupInput) (*SetupOutput, error) {
	if input == nil || input.GuildID == "" {
		return nil, errors.New("input and guild ID cannot be empty")
	}

	settings, err := s.guildConfigRepo.GetSettings(ctx, &guildconfigRepo.GetSettingsInput{
		GuildID: input.GuildID,
	})
	if err != nil && !errors.Is(err, guildconfigRepo.ErrSettingsNotFound) {
		return nil, err
	}

	if settings != nil {
		rooms, err := s.roomRepo.ListRooms(ctx, &voiceroomRepo.ListRoomsInput{
			GuildID: input.GuildID,
		})
		if err != nil {
			return nil, err
		}

		for _, room := range rooms.Rooms {
			s.deleteChannelBestEffort(ctx, room.ID)
			if err := s.roomRepo.DeleteRoom(ctx, &voiceroomRepo.DeleteRoomInput{RoomID: room.ID}); err != nil {
				return nil, err
			}
		}

		for _, channelID := range []string{
			settings.JoinToCreateID,
			settings.JoinRandomID,
			settings.MasterCategoryID,
			settings.PublicCategoryID,
			settings.PrivateCategoryID,
		} {
			s.deleteChannelBestEffort(ctx, channelID)
		}

		err = s.guildConfigRepo.DeleteSettings(ctx, &guildconfigRepo.DeleteSettingsInput{
			GuildID: input.GuildID,
		})
		if err != nil {
			return nil, err
		}
	}

	return s.Setup(ctx, &SetupInput{GuildID: input.GuildID})
}

// deleteChannelBestEffort removes a channel, tolerating ones that are
// already gone.
func (s *service) deleteChannelBestEffort(ctx context.Context, channelID string) {
	if channelID == "" {
		return
	}

	if err := s.platform.DeleteChannel(ctx, channelID); err != nil && !errors.Is(err, platform.ErrResourceMissing) {
		log.Printf("Failed to delete channel %s: %v", channelID, err)
	}
}

// HandleVoiceState reacts to one presence transition
func (s *service) HandleVoiceState(ctx context.Context, input *HandleVoiceStateInput) (*HandleVoiceStateOutput, error) {
	if input == nil || input.GuildID == "" || input.UserID == "" {
		return nil, errors.New("input, guild ID and user ID cannot be empty")
	}

	settings, err := s.guildConfigRepo.GetSettings(ctx, &guildconfigRepo.GetSettingsInput{
		GuildID: input.GuildID,
	})
	if err != nil {
		if errors.Is(err, guildconfigRepo.ErrSettingsNotFound) {
			// Nothing managed in this guild yet
			return &HandleVoiceStateOutput{}, nil
		}
		return nil, err
	}

	output := &HandleVoiceStateOutput{}

	if input.NewRoomID != "" {
		switch input.NewRoomID {
		case settings.JoinToCreateID:
			return s.spawnRoom(ctx, settings, input)
		case settings.JoinRandomID:
			return s.placeIntoRandomRoom(ctx, input)
		default:
			s.reviveIfPending(ctx, input.NewRoomID)
		}
	}

	if input.PreviousRoomID != "" && input.PreviousRoomID != input.NewRoomID {
		scheduled, err := s.maybeScheduleTeardown(ctx, input.GuildID, input.PreviousRoomID)
		if err != nil {
			return nil, err
		}
		output.TeardownScheduled = scheduled
	}

	return output, nil
}

// spawnRoom creates a personal room for the joining member and moves
// them into it. A failed move tears the fresh channel back down so no
// orphaned empty room is left behind.
func (s *service) spawnRoom(ctx context.Context, settings *models.GuildSettings, input *HandleVoiceStateInput) (*HandleVoiceStateOutput, error) {
	// A member who already owns a room gets moved back into it instead
	// of accumulating a second one
	owned, err := s.roomRepo.GetRoomByOwner(ctx, &voiceroomRepo.GetRoomByOwnerInput{
		OwnerID: input.UserID,
	})
	if err == nil {
		s.reviveIfPending(ctx, owned.ID)
		if err := s.platform.MoveMember(ctx, input.GuildID, input.UserID, owned.ID); err != nil {
			return nil, err
		}
		return &HandleVoiceStateOutput{
			MovedToRoomID: owned.ID,
		}, nil
	}
	if !errors.Is(err, voiceroomRepo.ErrRoomNotFound) {
		return nil, err
	}

	name := "Personal Room"
	if displayName, err := s.platform.MemberDisplayName(ctx, input.GuildID, input.UserID); err == nil {
		name = fmt.Sprintf("%s's Room", displayName)
	}

	created, err := s.platform.CreateVoiceRoom(ctx, &platform.CreateVoiceRoomInput{
		GuildID:  input.GuildID,
		ParentID: settings.PublicCategoryID,
		Name:     name,
	})
	if err != nil {
		return nil, err
	}

	room := &models.Room{
		ID:        created.RoomID,
		GuildID:   input.GuildID,
		OwnerID:   input.UserID,
		Status:    models.RoomStatusActive,
		CreatedAt: s.clock.Now(),
	}

	err = s.roomRepo.SaveRoom(ctx, &voiceroomRepo.SaveRoomInput{Room: room})
	if err != nil {
		s.deleteChannelBestEffort(ctx, created.RoomID)
		return nil, err
	}

	err = s.platform.MoveMember(ctx, input.GuildID, input.UserID, created.RoomID)
	if err != nil {
		s.deleteChannelBestEffort(ctx, created.RoomID)
		if delErr := s.roomRepo.DeleteRoom(ctx, &voiceroomRepo.DeleteRoomInput{RoomID: created.RoomID}); delErr != nil {
			log.Printf("Failed to forget room %s: %v", created.RoomID, delErr)
		}
		return nil, err
	}

	return &HandleVoiceStateOutput{
		CreatedRoomID: created.RoomID,
		MovedToRoomID: created.RoomID,
	}, nil
}

// placeIntoRandomRoom moves the member into any public room with space
// left. When no room qualifies the member simply stays on the template
// channel.
func (s *service) placeIntoRandomRoom(ctx context.Context, input *HandleVoiceStateInput) (*HandleVoiceStateOutput, error) {
	rooms, err := s.roomRepo.ListRooms(ctx, &voiceroomRepo.ListRoomsInput{
		GuildID: input.GuildID,
	})
	if err != nil {
		return nil, err
	}

	for _, room := range rooms.Rooms {
		if room.Status != models.RoomStatusActive || room.Locked || room.Hidden {
			continue
		}

		occupants, err := s.platform.RoomOccupants(ctx, input.GuildID, room.ID)
		if err != nil {
			continue
		}

		limit := room.UserLimit
		if limit <= 0 {
			limit = unlimitedOccupancy
		}

		if len(occupants) < limit {
			if err := s.platform.MoveMember(ctx, input.GuildID, input.UserID, room.ID); err != nil {
				return nil, err
			}

			return &HandleVoiceStateOutput{
				MovedToRoomID: room.ID,
			}, nil
		}
	}

	return &HandleVoiceStateOutput{}, nil
}

// reviveIfPending cancels a scheduled teardown when somebody joins a
// room inside its grace window.
func (s *service) reviveIfPending(ctx context.Context, roomID string) {
	room, err := s.roomRepo.GetRoom(ctx, &voiceroomRepo.GetRoomInput{RoomID: roomID})
	if err != nil || room.Status != models.RoomStatusPendingDelete {
		return
	}

	s.mu.Lock()
	delete(s.pending, roomID)
	s.mu.Unlock()

	room.Status = models.RoomStatusActive
	if err := s.roomRepo.SaveRoom(ctx, &voiceroomRepo.SaveRoomInput{Room: room}); err != nil {
		log.Printf("Failed to revive room %s: %v", roomID, err)
	}
}

// maybeScheduleTeardown starts the grace window for a managed room
// that just went empty.
func (s *service) maybeScheduleTeardown(ctx context.Context, guildID, roomID string) (bool, error) {
	room, err := s.roomRepo.GetRoom(ctx, &voiceroomRepo.GetRoomInput{RoomID: roomID})
	if err != nil {
		if errors.Is(err, voiceroomRepo.ErrRoomNotFound) {
			return false, nil
		}
		return false, err
	}

	occupants, err := s.platform.RoomOccupants(ctx, guildID, room.ID)
	if err != nil {
		return false, err
	}

	if len(occupants) > 0 {
		return false, nil
	}

	token := s.uuidGenerator.NewUUID()

	s.mu.Lock()
	s.pending[room.ID] = token
	s.mu.Unlock()

	room.Status = models.RoomStatusPendingDelete
	if err := s.roomRepo.SaveRoom(ctx, &voiceroomRepo.SaveRoomInput{Room: room}); err != nil {
		return false, err
	}

	time.AfterFunc(s.grace, func() {
		_, err := s.FinalizeTeardown(context.Background(), &FinalizeTeardownInput{
			RoomID: room.ID,
			Token:  token,
		})
		if err != nil {
			log.Printf("Failed to finalize teardown of room %s: %v", room.ID, err)
		}
	})

	return true, nil
}

// FinalizeTeardown runs the deferred emptiness re-check. Emptiness is
// confirmed at execution time, not at decision time: a member who
// slipped in during the grace window aborts the deletion.
func (s *service) FinalizeTeardown(ctx context.Context, input *FinalizeTeardownInput) (*FinalizeTeardownOutput, error) {
	if input == nil || input.RoomID == "" {
		return nil, errors.New("input and room ID cannot be empty")
	}

	s.mu.Lock()
	current, ok := s.pending[input.RoomID]
	if !ok || current != input.Token {
		s.mu.Unlock()
		return &FinalizeTeardownOutput{}, nil
	}
	s.mu.Unlock()

	room, err := s.roomRepo.GetRoom(ctx, &voiceroomRepo.GetRoomInput{RoomID: input.RoomID})
	if err != nil {
		if errors.Is(err, voiceroomRepo.ErrRoomNotFound) {
			return &FinalizeTeardownOutput{}, nil
		}
		return nil, err
	}

	occupants, err := s.platform.RoomOccupants(ctx, room.GuildID, room.ID)
	if err != nil {
		return nil, err
	}

	if len(occupants) > 0 {
		s.mu.Lock()
		delete(s.pending, input.RoomID)
		s.mu.Unlock()

		room.Status = models.RoomStatusActive
		if err := s.roomRepo.SaveRoom(ctx, &voiceroomRepo.SaveRoomInput{Room: room}); err != nil {
			return nil, err
		}

		return &FinalizeTeardownOutput{}, nil
	}

	err = s.platform.DeleteChannel(ctx, room.ID)
	if err != nil && !errors.Is(err, platform.ErrResourceMissing) {
		// Deletion failed: the room stays PendingDelete rather than
		// being forgotten while the channel still exists
		return nil, err
	}

	s.mu.Lock()
	delete(s.pending, input.RoomID)
	s.mu.Unlock()

	if err := s.roomRepo.DeleteRoom(ctx, &voiceroomRepo.DeleteRoomInput{RoomID: room.ID}); err != nil {
		return nil, err
	}

	return &FinalizeTeardownOutput{
		Deleted: true,
	}, nil
}

// GetRoom retrieves a managed room
func (s *service) GetRoom(ctx context.Context, input *GetRoomInput) (*GetRoomOutput, error) {
	if input == nil || input.RoomID == "" {
		return nil, errors.New("input and room ID cannot be empty")
	}

	room, err := s.getRoom(ctx, input.RoomID)
	if err != nil {
		return nil, err
	}

	return &GetRoomOutput{Room: room}, nil
}

func (s *service) getRoom(ctx context.Context, roomID string) (*models.Room, error) {
	room, err := s.roomRepo.GetRoom(ctx, &voiceroomRepo.GetRoomInput{RoomID: roomID})
	if err != nil {
		if errors.Is(err, voiceroomRepo.ErrRoomNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}

	return room, nil
}

// everyone builds the @everyone principal for a room's guild
func everyone(guildID string) platform.Principal {
	return platform.Principal{
		ID:   guildID,
		Type: platform.PrincipalTypeRole,
	}
}

func member(userID string) platform.Principal {
	return platform.Principal{
		ID:   userID,
		Type: platform.PrincipalTypeMember,
	}
}

// Lock denies @everyone connect while keeping the owner in. The
// permission edits land before the category move so nobody can slip in
// through a moved-but-not-yet-locked room.
func (s *service) Lock(ctx context.Context, input *LockInput) error {
	if input == nil || input.RoomID == "" {
		return errors.New("input and room ID cannot be empty")
	}

	room, err := s.getRoom(ctx, input.RoomID)
	if err != nil {
		return err
	}

	err = s.platform.SetPermissionRule(ctx, &platform.SetPermissionRuleInput{
		RoomID:     room.ID,
		Principal:  everyone(room.GuildID),
		Permission: platform.PermissionConnect,
		Rule:       platform.RuleDeny,
	})
	if err != nil {
		return err
	}

	err = s.platform.SetPermissionRule(ctx, &platform.SetPermissionRuleInput{
		RoomID:     room.ID,
		Principal:  member(room.OwnerID),
		Permission: platform.PermissionConnect,
		Rule:       platform.RuleAllow,
	})
	if err != nil {
		return err
	}

	if err := s.moveToPrivateIfConfigured(ctx, room); err != nil {
		return err
	}

	room.Locked = true
	return s.roomRepo.SaveRoom(ctx, &voiceroomRepo.SaveRoomInput{Room: room})
}

// Unlock restores @everyone connect
func (s *service) Unlock(ctx context.Context, input *UnlockInput) error {
	if input == nil || input.RoomID == "" {
		return errors.New("input and room ID cannot be empty")
	}

	room, err := s.getRoom(ctx, input.RoomID)
	if err != nil {
		return err
	}

	err = s.platform.SetPermissionRule(ctx, &platform.SetPermissionRuleInput{
		RoomID:     room.ID,
		Principal:  everyone(room.GuildID),
		Permission: platform.PermissionConnect,
		Rule:       platform.RuleAllow,
	})
	if err != nil {
		return err
	}

	room.Locked = false
	return s.roomRepo.SaveRoom(ctx, &voiceroomRepo.SaveRoomInput{Room: room})
}

// Hide denies @everyone view and moves the room to the private category
func (s *service) Hide(ctx context.Context, input *HideInput) error {
	if input == nil || input.RoomID == "" {
		return errors.New("input and room ID cannot be empty")
	}

	room, err := s.getRoom(ctx, input.RoomID)
	if err != nil {
		return err
	}

	err = s.platform.SetPermissionRule(ctx, &platform.SetPermissionRuleInput{
		RoomID:     room.ID,
		Principal:  everyone(room.GuildID),
		Permission: platform.PermissionView,
		Rule:       platform.RuleDeny,
	})
	if err != nil {
		return err
	}

	if err := s.moveToPrivateIfConfigured(ctx, room); err != nil {
		return err
	}

	room.Hidden = true
	return s.roomRepo.SaveRoom(ctx, &voiceroomRepo.SaveRoomInput{Room: room})
}

// Unhide restores @everyone view and moves the room back to public
func (s *service) Unhide(ctx context.Context, input *UnhideInput) error {
	if input == nil || input.RoomID == "" {
		return errors.New("input and room ID cannot be empty")
	}

	room, err := s.getRoom(ctx, input.RoomID)
	if err != nil {
		return err
	}

	err = s.platform.SetPermissionRule(ctx, &platform.SetPermissionRuleInput{
		RoomID:     room.ID,
		Principal:  everyone(room.GuildID),
		Permission: platform.PermissionView,
		Rule:       platform.RuleAllow,
	})
	if err != nil {
		return err
	}

	settings, err := s.guildConfigRepo.GetSettings(ctx, &guildconfigRepo.GetSettingsInput{
		GuildID: room.GuildID,
	})
	if err == nil && settings.PublicCategoryID != "" {
		if err := s.platform.SetChannelParent(ctx, room.ID, settings.PublicCategoryID); err != nil {
			return err
		}
	}

	room.Hidden = false
	return s.roomRepo.SaveRoom(ctx, &voiceroomRepo.SaveRoomInput{Room: room})
}

func (s *service) moveToPrivateIfConfigured(ctx context.Context, room *models.Room) error {
	settings, err := s.guildConfigRepo.GetSettings(ctx, &guildconfigRepo.GetSettingsInput{
		GuildID: room.GuildID,
	})
	if err != nil {
		if errors.Is(err, guildconfigRepo.ErrSettingsNotFound) {
			return nil
		}
		return err
	}

	if settings.PrivateCategoryID == "" {
		return nil
	}

	return s.platform.SetChannelParent(ctx, room.ID, settings.PrivateCategoryID)
}

// Kick disconnects a member currently in the room
func (s *service) Kick(ctx context.Context, input *KickInput) error {
	if input == nil || input.RoomID == "" || input.TargetID == "" {
		return errors.New("input, room ID and target ID cannot be empty")
	}

	room, err := s.getRoom(ctx, input.RoomID)
	if err != nil {
		return err
	}

	occupants, err := s.platform.RoomOccupants(ctx, room.GuildID, room.ID)
	if err != nil {
		return err
	}

	if !contains(occupants, input.TargetID) {
		return ErrTargetNotPresent
	}

	return s.platform.DisconnectMember(ctx, room.GuildID, input.TargetID)
}

// Ban denies a member's connect permission and drops them if present.
// The denial is scoped to this room's channel and dies with it.
func (s *service) Ban(ctx context.Context, input *BanInput) error {
	if input == nil || input.RoomID == "" || input.TargetID == "" {
		return errors.New("input, room ID and target ID cannot be empty")
	}

	room, err := s.getRoom(ctx, input.RoomID)
	if err != nil {
		return err
	}

	err = s.platform.SetPermissionRule(ctx, &platform.SetPermissionRuleInput{
		RoomID:     room.ID,
		Principal:  member(input.TargetID),
		Permission: platform.PermissionConnect,
		Rule:       platform.RuleDeny,
	})
	if err != nil {
		return err
	}

	occupants, err := s.platform.RoomOccupants(ctx, room.GuildID, room.ID)
	if err != nil {
		return err
	}

	if contains(occupants, input.TargetID) {
		return s.platform.DisconnectMember(ctx, room.GuildID, input.TargetID)
	}

	return nil
}

// Permit grants a member connect permission, overriding a ban
func (s *service) Permit(ctx context.Context, input *PermitInput) error {
	if input == nil || input.RoomID == "" || input.TargetID == "" {
		return errors.New("input, room ID and target ID cannot be empty")
	}

	room, err := s.getRoom(ctx, input.RoomID)
	if err != nil {
		return err
	}

	return s.platform.SetPermissionRule(ctx, &platform.SetPermissionRuleInput{
		RoomID:     room.ID,
		Principal:  member(input.TargetID),
		Permission: platform.PermissionConnect,
		Rule:       platform.RuleAllow,
	})
}

// Mute server-mutes or unmutes a member currently in the room
func (s *service) Mute(ctx context.Context, input *MuteInput) error {
	if input == nil || input.RoomID == "" || input.TargetID == "" {
		return errors.New("input, room ID and target ID cannot be empty")
	}

	room, err := s.getRoom(ctx, input.RoomID)
	if err != nil {
		return err
	}

	occupants, err := s.platform.RoomOccupants(ctx, room.GuildID, room.ID)
	if err != nil {
		return err
	}

	if !contains(occupants, input.TargetID) {
		return ErrTargetNotPresent
	}

	return s.platform.SetMemberMute(ctx, room.GuildID, input.TargetID, input.Muted)
}

// SetLimit sets the room's member cap
func (s *service) SetLimit(ctx context.Context, input *SetLimitInput) error {
	if input == nil || input.RoomID == "" {
		return errors.New("input and room ID cannot be empty")
	}

	if input.Limit < 0 {
		return errors.New("limit cannot be negative")
	}

	room, err := s.getRoom(ctx, input.RoomID)
	if err != nil {
		return err
	}

	if err := s.platform.SetUserLimit(ctx, room.ID, input.Limit); err != nil {
		return err
	}

	room.UserLimit = input.Limit
	return s.roomRepo.SaveRoom(ctx, &voiceroomRepo.SaveRoomInput{Room: room})
}

// Rename renames the room
func (s *service) Rename(ctx context.Context, input *RenameInput) error {
	if input == nil || input.RoomID == "" || input.Name == "" {
		return errors.New("input, room ID and name cannot be empty")
	}

	room, err := s.getRoom(ctx, input.RoomID)
	if err != nil {
		return err
	}

	return s.platform.RenameRoom(ctx, room.ID, input.Name)
}

// Transfer reassigns ownership unconditionally
func (s *service) Transfer(ctx context.Context, input *TransferInput) error {
	if input == nil || input.RoomID == "" || input.NewOwnerID == "" {
		return errors.New("input, room ID and new owner ID cannot be empty")
	}

	room, err := s.getRoom(ctx, input.RoomID)
	if err != nil {
		return err
	}

	room.OwnerID = input.NewOwnerID
	return s.roomRepo.SaveRoom(ctx, &voiceroomRepo.SaveRoomInput{Room: room})
}

// Info describes the room and its current occupancy
func (s *service) Info(ctx context.Context, input *InfoInput) (*InfoOutput, error) {
	if input == nil || input.RoomID == "" {
		return nil, errors.New("input and room ID cannot be empty")
	}

	room, err := s.getRoom(ctx, input.RoomID)
	if err != nil {
		return nil, err
	}

	occupants, err := s.platform.RoomOccupants(ctx, room.GuildID, room.ID)
	if err != nil {
		return nil, err
	}

	return &InfoOutput{
		Room:          room,
		OccupantCount: len(occupants),
	}, nil
}

func contains(items []string, target string) bool {
	for _, item := range items {
		if item == target {
			return true
		}
	}
	return false
}
