package rooms

import (
	"context"
	"errors"
	"testing"
	"time"

	clockMocks "guildkeeper/internal/common/clock/mocks"
	uuidMocks "guildkeeper/internal/common/uuid/mocks"
	"guildkeeper/internal/models"
	"guildkeeper/internal/platform"
	platformMocks "guildkeeper/internal/platform/mocks"
	guildconfigRepo "guildkeeper/internal/repositories/guildconfig"
	voiceroomRepo "guildkeeper/internal/repositories/voiceroom"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RoomsServiceTestSuite struct {
	suite.Suite
	mockCtrl     *gomock.Controller
	mockPlatform *platformMocks.MockPlatform
	mockClock    *clockMocks.MockClock
	mockUUID     *uuidMocks.MockUUID
	mr           *miniredis.Miniredis
	client       *redis.Client
	roomRepo     voiceroomRepo.Repository
	configRepo   guildconfigRepo.Repository
	service      Service
	ctx          context.Context
	testTime     time.Time
}

func (s *RoomsServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockPlatform = platformMocks.NewMockPlatform(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.mockUUID = uuidMocks.NewMockUUID(s.mockCtrl)
	s.ctx = context.Background()
	s.testTime = time.Date(2025, 4, 19, 12, 0, 0, 0, time.UTC)

	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	roomRepo, err := voiceroomRepo.NewRedis(&voiceroomRepo.Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.roomRepo = roomRepo

	configRepo, err := guildconfigRepo.NewRedis(&guildconfigRepo.Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.configRepo = configRepo

	svc, err := New(&Config{
		// Long enough that timers never fire inside a test run; the
		// deferred re-check is driven directly through FinalizeTeardown
		TeardownGrace:   time.Hour,
		RoomRepo:        s.roomRepo,
		GuildConfigRepo: s.configRepo,
		Platform:        s.mockPlatform,
		Clock:           s.mockClock,
		UUIDGenerator:   s.mockUUID,
	})
	s.Require().NoError(err)
	s.service = svc
}

func (s *RoomsServiceTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
	s.mockCtrl.Finish()
}

func TestRoomsServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RoomsServiceTestSuite))
}

func (s *RoomsServiceTestSuite) seedSettings() *models.GuildSettings {
	settings := &models.GuildSettings{
		GuildID:           "guild-1",
		MasterCategoryID:  "cat-master",
		PublicCategoryID:  "cat-public",
		PrivateCategoryID: "cat-private",
		JoinToCreateID:    "chan-create",
		JoinRandomID:      "chan-random",
	}
	err := s.configRepo.SaveSettings(s.ctx, &guildconfigRepo.SaveSettingsInput{
		Settings: settings,
	})
	s.Require().NoError(err)
	return settings
}

func (s *RoomsServiceTestSuite) seedRoom(room *models.Room) *models.Room {
	if room.GuildID == "" {
		room.GuildID = "guild-1"
	}
	if room.Status == "" {
		room.Status = models.RoomStatusActive
	}
	err := s.roomRepo.SaveRoom(s.ctx, &voiceroomRepo.SaveRoomInput{Room: room})
	s.Require().NoError(err)
	return room
}

func (s *RoomsServiceTestSuite) TestSetupCreatesTopology() {
	s.mockPlatform.EXPECT().CreateCategory(s.ctx, "guild-1", DefaultMasterCategoryName).Return("cat-master", nil)
	s.mockPlatform.EXPECT().CreateCategory(s.ctx, "guild-1", DefaultPublicCategoryName).Return("cat-public", nil)
	s.mockPlatform.EXPECT().CreateCategory(s.ctx, "guild-1", DefaultPrivateCategoryName).Return("cat-private", nil)
	s.mockPlatform.EXPECT().CreateVoiceRoom(s.ctx, &platform.CreateVoiceRoomInput{
		GuildID:  "guild-1",
		ParentID: "cat-master",
		Name:     DefaultJoinToCreateName,
	}).Return(&platform.CreateVoiceRoomOutput{RoomID: "chan-create"}, nil)
	s.mockPlatform.EXPECT().CreateVoiceRoom(s.ctx, &platform.CreateVoiceRoomInput{
		GuildID:  "guild-1",
		ParentID: "cat-master",
		Name:     DefaultJoinRandomName,
	}).Return(&platform.CreateVoiceRoomOutput{RoomID: "chan-random"}, nil)

	output, err := s.service.Setup(s.ctx, &SetupInput{GuildID: "guild-1"})
	s.Require().NoError(err)
	s.False(output.AlreadySetUp)
	s.Equal("chan-create", output.Settings.JoinToCreateID)

	saved, err := s.configRepo.GetSettings(s.ctx, &guildconfigRepo.GetSettingsInput{GuildID: "guild-1"})
	s.Require().NoError(err)
	s.Equal("cat-private", saved.PrivateCategoryID)
}

func (s *RoomsServiceTestSuite) TestSetupIsIdempotent() {
	s.seedSettings()

	output, err := s.service.Setup(s.ctx, &SetupInput{GuildID: "guild-1"})
	s.Require().NoError(err)
	s.True(output.AlreadySetUp)
	s.Equal("chan-create", output.Settings.JoinToCreateID)
}

func (s *RoomsServiceTestSuite) TestJoinToCreateSpawnsRoom() {
	s.seedSettings()

	s.mockPlatform.EXPECT().MemberDisplayName(s.ctx, "guild-1", "user-1").Return("Alex", nil)
	s.mockPlatform.EXPECT().CreateVoiceRoom(s.ctx, &platform.CreateVoiceRoomInput{
		GuildID:  "guild-1",
		ParentID: "cat-public",
		Name:     "Alex's Room",
	}).Return(&platform.CreateVoiceRoomOutput{RoomID: "room-1"}, nil)
	s.mockClock.EXPECT().Now().Return(s.testTime)
	s.mockPlatform.EXPECT().MoveMember(s.ctx, "guild-1", "user-1", "room-1").Return(nil)

	output, err := s.service.HandleVoiceState(s.ctx, &HandleVoiceStateInput{
		GuildID:   "guild-1",
		UserID:    "user-1",
		NewRoomID: "chan-create",
	})
	s.Require().NoError(err)
	s.Equal("room-1", output.CreatedRoomID)
	s.Equal("room-1", output.MovedToRoomID)

	room, err := s.roomRepo.GetRoom(s.ctx, &voiceroomRepo.GetRoomInput{RoomID: "room-1"})
	s.Require().NoError(err)
	s.Equal("user-1", room.OwnerID)
	s.Equal(models.RoomStatusActive, room.Status)
}

func (s *RoomsServiceTestSuite) TestJoinToCreateReusesOwnedRoom() {
	s.seedSettings()
	s.seedRoom(&models.Room{ID: "room-1", OwnerID: "user-1", Status: models.RoomStatusPendingDelete})

	// No CreateVoiceRoom expectation: the owner is moved back into
	// their existing room rather than spawning a second one
	s.mockPlatform.EXPECT().MoveMember(s.ctx, "guild-1", "user-1", "room-1").Return(nil)

	output, err := s.service.HandleVoiceState(s.ctx, &HandleVoiceStateInput{
		GuildID:   "guild-1",
		UserID:    "user-1",
		NewRoomID: "chan-create",
	})
	s.Require().NoError(err)
	s.Empty(output.CreatedRoomID)
	s.Equal("room-1", output.MovedToRoomID)

	room, err := s.roomRepo.GetRoom(s.ctx, &voiceroomRepo.GetRoomInput{RoomID: "room-1"})
	s.Require().NoError(err)
	s.Equal(models.RoomStatusActive, room.Status)
}

func (s *RoomsServiceTestSuite) TestSpawnCompensatesFailedMove() {
	s.seedSettings()

	s.mockPlatform.EXPECT().MemberDisplayName(s.ctx, "guild-1", "user-1").Return("Alex", nil)
	s.mockPlatform.EXPECT().CreateVoiceRoom(s.ctx, gomock.Any()).Return(&platform.CreateVoiceRoomOutput{RoomID: "room-1"}, nil)
	s.mockClock.EXPECT().Now().Return(s.testTime)
	s.mockPlatform.EXPECT().MoveMember(s.ctx, "guild-1", "user-1", "room-1").Return(errors.New("member already disconnected"))
	s.mockPlatform.EXPECT().DeleteChannel(s.ctx, "room-1").Return(nil)

	_, err := s.service.HandleVoiceState(s.ctx, &HandleVoiceStateInput{
		GuildID:   "guild-1",
		UserID:    "user-1",
		NewRoomID: "chan-create",
	})
	s.Require().Error(err)

	_, err = s.roomRepo.GetRoom(s.ctx, &voiceroomRepo.GetRoomInput{RoomID: "room-1"})
	s.ErrorIs(err, voiceroomRepo.ErrRoomNotFound)
}

func (s *RoomsServiceTestSuite) TestJoinRandomSkipsFullRooms() {
	s.seedSettings()
	s.seedRoom(&models.Room{ID: "room-full", OwnerID: "owner-1", UserLimit: 2})
	s.seedRoom(&models.Room{ID: "room-open", OwnerID: "owner-2", UserLimit: 5})

	s.mockPlatform.EXPECT().RoomOccupants(s.ctx, "guild-1", "room-full").Return([]string{"a", "b"}, nil)
	s.mockPlatform.EXPECT().RoomOccupants(s.ctx, "guild-1", "room-open").Return([]string{"c"}, nil)
	s.mockPlatform.EXPECT().MoveMember(s.ctx, "guild-1", "user-1", "room-open").Return(nil)

	output, err := s.service.HandleVoiceState(s.ctx, &HandleVoiceStateInput{
		GuildID:   "guild-1",
		UserID:    "user-1",
		NewRoomID: "chan-random",
	})
	s.Require().NoError(err)
	s.Equal("room-open", output.MovedToRoomID)
}

func (s *RoomsServiceTestSuite) TestJoinRandomIgnoresLockedAndHiddenRooms() {
	s.seedSettings()
	s.seedRoom(&models.Room{ID: "room-locked", OwnerID: "owner-1", Locked: true})
	s.seedRoom(&models.Room{ID: "room-hidden", OwnerID: "owner-2", Hidden: true})

	output, err := s.service.HandleVoiceState(s.ctx, &HandleVoiceStateInput{
		GuildID:   "guild-1",
		UserID:    "user-1",
		NewRoomID: "chan-random",
	})
	s.Require().NoError(err)
	s.Empty(output.MovedToRoomID)
}

func (s *RoomsServiceTestSuite) TestEmptyRoomEntersGraceWindow() {
	s.seedSettings()
	s.seedRoom(&models.Room{ID: "room-1", OwnerID: "user-1"})

	s.mockPlatform.EXPECT().RoomOccupants(s.ctx, "guild-1", "room-1").Return(nil, nil)
	s.mockUUID.EXPECT().NewUUID().Return("token-1")

	output, err := s.service.HandleVoiceState(s.ctx, &HandleVoiceStateInput{
		GuildID:        "guild-1",
		UserID:         "user-1",
		PreviousRoomID: "room-1",
	})
	s.Require().NoError(err)
	s.True(output.TeardownScheduled)

	room, err := s.roomRepo.GetRoom(s.ctx, &voiceroomRepo.GetRoomInput{RoomID: "room-1"})
	s.Require().NoError(err)
	s.Equal(models.RoomStatusPendingDelete, room.Status)
}

func (s *RoomsServiceTestSuite) TestReviveDuringGraceCancelsTeardown() {
	s.seedSettings()
	s.seedRoom(&models.Room{ID: "room-1", OwnerID: "user-1"})

	s.mockPlatform.EXPECT().RoomOccupants(s.ctx, "guild-1", "room-1").Return(nil, nil)
	s.mockUUID.EXPECT().NewUUID().Return("token-1")

	_, err := s.service.HandleVoiceState(s.ctx, &HandleVoiceStateInput{
		GuildID:        "guild-1",
		UserID:         "user-1",
		PreviousRoomID: "room-1",
	})
	s.Require().NoError(err)

	// Somebody joins inside the grace window
	_, err = s.service.HandleVoiceState(s.ctx, &HandleVoiceStateInput{
		GuildID:   "guild-1",
		UserID:    "user-2",
		NewRoomID: "room-1",
	})
	s.Require().NoError(err)

	room, err := s.roomRepo.GetRoom(s.ctx, &voiceroomRepo.GetRoomInput{RoomID: "room-1"})
	s.Require().NoError(err)
	s.Equal(models.RoomStatusActive, room.Status)

	// The expired timer finds a stale token and issues no deletion
	output, err := s.service.FinalizeTeardown(s.ctx, &FinalizeTeardownInput{
		RoomID: "room-1",
		Token:  "token-1",
	})
	s.Require().NoError(err)
	s.False(output.Deleted)
}

func (s *RoomsServiceTestSuite) TestFinalizeTeardownDeletesEmptyRoom() {
	s.seedSettings()
	s.seedRoom(&models.Room{ID: "room-1", OwnerID: "user-1"})

	s.mockPlatform.EXPECT().RoomOccupants(s.ctx, "guild-1", "room-1").Return(nil, nil).Times(2)
	s.mockUUID.EXPECT().NewUUID().Return("token-1")
	s.mockPlatform.EXPECT().DeleteChannel(s.ctx, "room-1").Return(nil)

	_, err := s.service.HandleVoiceState(s.ctx, &HandleVoiceStateInput{
		GuildID:        "guild-1",
		UserID:         "user-1",
		PreviousRoomID: "room-1",
	})
	s.Require().NoError(err)

	output, err := s.service.FinalizeTeardown(s.ctx, &FinalizeTeardownInput{
		RoomID: "room-1",
		Token:  "token-1",
	})
	s.Require().NoError(err)
	s.True(output.Deleted)

	_, err = s.roomRepo.GetRoom(s.ctx, &voiceroomRepo.GetRoomInput{RoomID: "room-1"})
	s.ErrorIs(err, voiceroomRepo.ErrRoomNotFound)
}

func (s *RoomsServiceTestSuite) TestFinalizeTeardownAbortsWhenReoccupied() {
	s.seedSettings()
	s.seedRoom(&models.Room{ID: "room-1", OwnerID: "user-1"})

	s.mockPlatform.EXPECT().RoomOccupants(s.ctx, "guild-1", "room-1").Return(nil, nil)
	s.mockUUID.EXPECT().NewUUID().Return("token-1")

	_, err := s.service.HandleVoiceState(s.ctx, &HandleVoiceStateInput{
		GuildID:        "guild-1",
		UserID:         "user-1",
		PreviousRoomID: "room-1",
	})
	s.Require().NoError(err)

	// Emptiness is re-checked when the window expires, not trusted
	// from when it was scheduled
	s.mockPlatform.EXPECT().RoomOccupants(s.ctx, "guild-1", "room-1").Return([]string{"user-2"}, nil)

	output, err := s.service.FinalizeTeardown(s.ctx, &FinalizeTeardownInput{
		RoomID: "room-1",
		Token:  "token-1",
	})
	s.Require().NoError(err)
	s.False(output.Deleted)

	room, err := s.roomRepo.GetRoom(s.ctx, &voiceroomRepo.GetRoomInput{RoomID: "room-1"})
	s.Require().NoError(err)
	s.Equal(models.RoomStatusActive, room.Status)
}

func (s *RoomsServiceTestSuite) TestFailedDeleteKeepsPendingState() {
	s.seedSettings()
	s.seedRoom(&models.Room{ID: "room-1", OwnerID: "user-1"})

	s.mockPlatform.EXPECT().RoomOccupants(s.ctx, "guild-1", "room-1").Return(nil, nil).Times(2)
	s.mockUUID.EXPECT().NewUUID().Return("token-1")
	s.mockPlatform.EXPECT().DeleteChannel(s.ctx, "room-1").Return(errors.New("rate limited"))

	_, err := s.service.HandleVoiceState(s.ctx, &HandleVoiceStateInput{
		GuildID:        "guild-1",
		UserID:         "user-1",
		PreviousRoomID: "room-1",
	})
	s.Require().NoError(err)

	_, err = s.service.FinalizeTeardown(s.ctx, &FinalizeTeardownInput{
		RoomID: "room-1",
		Token:  "token-1",
	})
	s.Require().Error(err)

	room, err := s.roomRepo.GetRoom(s.ctx, &voiceroomRepo.GetRoomInput{RoomID: "room-1"})
	s.Require().NoError(err)
	s.Equal(models.RoomStatusPendingDelete, room.Status)
}

func (s *RoomsServiceTestSuite) TestLockAppliesPermissionsBeforeMove() {
	s.seedSettings()
	s.seedRoom(&models.Room{ID: "room-1", OwnerID: "user-1"})

	gomock.InOrder(
		s.mockPlatform.EXPECT().SetPermissionRule(s.ctx, &platform.SetPermissionRuleInput{
			RoomID:     "room-1",
			Principal:  platform.Principal{ID: "guild-1", Type: platform.PrincipalTypeRole},
			Permission: platform.PermissionConnect,
			Rule:       platform.RuleDeny,
		}).Return(nil),
		s.mockPlatform.EXPECT().SetPermissionRule(s.ctx, &platform.SetPermissionRuleInput{
			RoomID:     "room-1",
			Principal:  platform.Principal{ID: "user-1", Type: platform.PrincipalTypeMember},
			Permission: platform.PermissionConnect,
			Rule:       platform.RuleAllow,
		}).Return(nil),
		s.mockPlatform.EXPECT().SetChannelParent(s.ctx, "room-1", "cat-private").Return(nil),
	)

	err := s.service.Lock(s.ctx, &LockInput{RoomID: "room-1"})
	s.Require().NoError(err)

	room, err := s.roomRepo.GetRoom(s.ctx, &voiceroomRepo.GetRoomInput{RoomID: "room-1"})
	s.Require().NoError(err)
	s.True(room.Locked)
}

func (s *RoomsServiceTestSuite) TestUnlockRestoresEveryoneConnect() {
	s.seedSettings()
	s.seedRoom(&models.Room{ID: "room-1", OwnerID: "user-1", Locked: true})

	s.mockPlatform.EXPECT().SetPermissionRule(s.ctx, &platform.SetPermissionRuleInput{
		RoomID:     "room-1",
		Principal:  platform.Principal{ID: "guild-1", Type: platform.PrincipalTypeRole},
		Permission: platform.PermissionConnect,
		Rule:       platform.RuleAllow,
	}).Return(nil)

	err := s.service.Unlock(s.ctx, &UnlockInput{RoomID: "room-1"})
	s.Require().NoError(err)

	room, err := s.roomRepo.GetRoom(s.ctx, &voiceroomRepo.GetRoomInput{RoomID: "room-1"})
	s.Require().NoError(err)
	s.False(room.Locked)
}

func (s *RoomsServiceTestSuite) TestKickRequiresPresence() {
	s.seedRoom(&models.Room{ID: "room-1", OwnerID: "user-1"})

	s.mockPlatform.EXPECT().RoomOccupants(s.ctx, "guild-1", "room-1").Return([]string{"user-1"}, nil)

	err := s.service.Kick(s.ctx, &KickInput{RoomID: "room-1", TargetID: "user-2"})
	s.ErrorIs(err, ErrTargetNotPresent)
}

func (s *RoomsServiceTestSuite) TestBanDisconnectsPresentTarget() {
	s.seedRoom(&models.Room{ID: "room-1", OwnerID: "user-1"})

	s.mockPlatform.EXPECT().SetPermissionRule(s.ctx, &platform.SetPermissionRuleInput{
		RoomID:     "room-1",
		Principal:  platform.Principal{ID: "user-2", Type: platform.PrincipalTypeMember},
		Permission: platform.PermissionConnect,
		Rule:       platform.RuleDeny,
	}).Return(nil)
	s.mockPlatform.EXPECT().RoomOccupants(s.ctx, "guild-1", "room-1").Return([]string{"user-1", "user-2"}, nil)
	s.mockPlatform.EXPECT().DisconnectMember(s.ctx, "guild-1", "user-2").Return(nil)

	err := s.service.Ban(s.ctx, &BanInput{RoomID: "room-1", TargetID: "user-2"})
	s.Require().NoError(err)
}

func (s *RoomsServiceTestSuite) TestBanOfAbsentTargetOnlyDeniesConnect() {
	s.seedRoom(&models.Room{ID: "room-1", OwnerID: "user-1"})

	s.mockPlatform.EXPECT().SetPermissionRule(s.ctx, gomock.Any()).Return(nil)
	s.mockPlatform.EXPECT().RoomOccupants(s.ctx, "guild-1", "room-1").Return([]string{"user-1"}, nil)

	err := s.service.Ban(s.ctx, &BanInput{RoomID: "room-1", TargetID: "user-2"})
	s.Require().NoError(err)
}

func (s *RoomsServiceTestSuite) TestTransferDoesNotRequirePresence() {
	s.seedRoom(&models.Room{ID: "room-1", OwnerID: "user-1"})

	err := s.service.Transfer(s.ctx, &TransferInput{RoomID: "room-1", NewOwnerID: "user-2"})
	s.Require().NoError(err)

	room, err := s.roomRepo.GetRoomByOwner(s.ctx, &voiceroomRepo.GetRoomByOwnerInput{
		OwnerID: "user-2",
	})
	s.Require().NoError(err)
	s.Equal("room-1", room.ID)
}

func (s *RoomsServiceTestSuite) TestMuteRequiresPresence() {
	s.seedRoom(&models.Room{ID: "room-1", OwnerID: "user-1"})

	s.mockPlatform.EXPECT().RoomOccupants(s.ctx, "guild-1", "room-1").Return([]string{"user-1", "user-2"}, nil)
	s.mockPlatform.EXPECT().SetMemberMute(s.ctx, "guild-1", "user-2", true).Return(nil)

	err := s.service.Mute(s.ctx, &MuteInput{RoomID: "room-1", TargetID: "user-2", Muted: true})
	s.Require().NoError(err)

	s.mockPlatform.EXPECT().RoomOccupants(s.ctx, "guild-1", "room-1").Return([]string{"user-1"}, nil)

	err = s.service.Mute(s.ctx, &MuteInput{RoomID: "room-1", TargetID: "user-3", Muted: true})
	s.ErrorIs(err, ErrTargetNotPresent)
}

func (s *RoomsServiceTestSuite) TestSetLimitPersists() {
	s.seedRoom(&models.Room{ID: "room-1", OwnerID: "user-1"})

	s.mockPlatform.EXPECT().SetUserLimit(s.ctx, "room-1", 4).Return(nil)

	err := s.service.SetLimit(s.ctx, &SetLimitInput{RoomID: "room-1", Limit: 4})
	s.Require().NoError(err)

	room, err := s.roomRepo.GetRoom(s.ctx, &voiceroomRepo.GetRoomInput{RoomID: "room-1"})
	s.Require().NoError(err)
	s.Equal(4, room.UserLimit)
}

func (s *RoomsServiceTestSuite) TestCommandsOnUnmanagedChannelFail() {
	err := s.service.Lock(s.ctx, &LockInput{RoomID: "not-a-room"})
	s.ErrorIs(err, ErrRoomNotFound)
}
