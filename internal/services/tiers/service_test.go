package tiers

import (
	"context"
	"testing"
	"time"

	clockMocks "guildkeeper/internal/common/clock/mocks"
	platformMocks "guildkeeper/internal/platform/mocks"
	activityRepo "guildkeeper/internal/repositories/activity"
	tierRepo "guildkeeper/internal/repositories/tier"
	activityService "guildkeeper/internal/services/activity"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type TiersServiceTestSuite struct {
	suite.Suite
	mockCtrl     *gomock.Controller
	mockPlatform *platformMocks.MockPlatform
	mockClock    *clockMocks.MockClock
	mr           *miniredis.Miniredis
	client       *redis.Client
	activity     activityService.Service
	service      Service
	ctx          context.Context
	testTime     time.Time
}

func (s *TiersServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockPlatform = platformMocks.NewMockPlatform(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.ctx = context.Background()
	s.testTime = time.Date(2025, 4, 19, 12, 0, 0, 0, time.UTC)

	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	tiers, err := tierRepo.NewRedis(&tierRepo.Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)

	actRepo, err := activityRepo.NewRedis(&activityRepo.Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)

	activity, err := activityService.New(&activityService.Config{
		ActivityRepo: actRepo,
		Clock:        s.mockClock,
	})
	s.Require().NoError(err)
	s.activity = activity

	svc, err := New(&Config{
		GuildID:         "guild-1",
		TierRepo:        tiers,
		ActivityService: s.activity,
		Platform:        s.mockPlatform,
	})
	s.Require().NoError(err)
	s.service = svc
}

func (s *TiersServiceTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
	s.mockCtrl.Finish()
}

func TestTiersServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TiersServiceTestSuite))
}

func (s *TiersServiceTestSuite) addTier(roleID string, minMinutes int) {
	err := s.service.AddTier(s.ctx, &AddTierInput{
		RoleID:     roleID,
		MinMinutes: minMinutes,
	})
	s.Require().NoError(err)
}

// accrueMinutes closes a voice session of the given length for a member
func (s *TiersServiceTestSuite) accrueMinutes(userID string, minutes int) {
	s.mockClock.EXPECT().Now().Return(s.testTime)
	_, err := s.activity.HandleVoiceState(s.ctx, &activityService.HandleVoiceStateInput{
		UserID:    userID,
		NewRoomID: "room-1",
	})
	s.Require().NoError(err)

	s.mockClock.EXPECT().Now().Return(s.testTime.Add(time.Duration(minutes) * time.Minute))
	_, err = s.activity.HandleVoiceState(s.ctx, &activityService.HandleVoiceStateInput{
		UserID:         userID,
		PreviousRoomID: "room-1",
	})
	s.Require().NoError(err)
}

func (s *TiersServiceTestSuite) TestReconcileGrantsMetTiers() {
	s.addTier("role-bronze", 10)
	s.addTier("role-silver", 60)
	s.addTier("role-gold", 300)

	s.accrueMinutes("user-1", 90)

	s.mockPlatform.EXPECT().MemberRoles(s.ctx, "guild-1", "user-1").Return(nil, nil)
	s.mockPlatform.EXPECT().GrantRole(s.ctx, "guild-1", "user-1", "role-bronze").Return(nil)
	s.mockPlatform.EXPECT().GrantRole(s.ctx, "guild-1", "user-1", "role-silver").Return(nil)

	output, err := s.service.Reconcile(s.ctx, &ReconcileInput{UserID: "user-1"})
	s.Require().NoError(err)
	s.Equal([]string{"role-bronze", "role-silver"}, output.Granted)
	s.Empty(output.Revoked)
}

func (s *TiersServiceTestSuite) TestReconcileRevokesUnmetTiers() {
	s.addTier("role-gold", 300)

	s.accrueMinutes("user-1", 20)

	// Held from before the ledger was reset
	s.mockPlatform.EXPECT().MemberRoles(s.ctx, "guild-1", "user-1").Return([]string{"role-gold"}, nil)
	s.mockPlatform.EXPECT().RevokeRole(s.ctx, "guild-1", "user-1", "role-gold").Return(nil)

	output, err := s.service.Reconcile(s.ctx, &ReconcileInput{UserID: "user-1"})
	s.Require().NoError(err)
	s.Equal([]string{"role-gold"}, output.Revoked)
}

func (s *TiersServiceTestSuite) TestReconcileIsIdempotent() {
	s.addTier("role-bronze", 10)

	s.accrueMinutes("user-1", 30)

	// Member already holds exactly what they earned
	s.mockPlatform.EXPECT().MemberRoles(s.ctx, "guild-1", "user-1").Return([]string{"role-bronze"}, nil)

	output, err := s.service.Reconcile(s.ctx, &ReconcileInput{UserID: "user-1"})
	s.Require().NoError(err)
	s.Empty(output.Granted)
	s.Empty(output.Revoked)
}

func (s *TiersServiceTestSuite) TestReconcileIgnoresUnrelatedRoles() {
	s.addTier("role-bronze", 10)

	s.accrueMinutes("user-1", 30)

	s.mockPlatform.EXPECT().MemberRoles(s.ctx, "guild-1", "user-1").Return([]string{"role-moderator", "role-bronze"}, nil)

	output, err := s.service.Reconcile(s.ctx, &ReconcileInput{UserID: "user-1"})
	s.Require().NoError(err)
	s.Empty(output.Granted)
	s.Empty(output.Revoked)
}

func (s *TiersServiceTestSuite) TestReconcileWithNoTiersIsNoOp() {
	output, err := s.service.Reconcile(s.ctx, &ReconcileInput{UserID: "user-1"})
	s.Require().NoError(err)
	s.Empty(output.Granted)
	s.Empty(output.Revoked)
}

func (s *TiersServiceTestSuite) TestReconcileMemberWithNoActivity() {
	s.addTier("role-bronze", 10)

	s.mockPlatform.EXPECT().MemberRoles(s.ctx, "guild-1", "user-ghost").Return(nil, nil)

	output, err := s.service.Reconcile(s.ctx, &ReconcileInput{UserID: "user-ghost"})
	s.Require().NoError(err)
	s.Empty(output.Granted)
}

func (s *TiersServiceTestSuite) TestRemoveTier() {
	s.addTier("role-bronze", 10)
	s.addTier("role-silver", 60)

	err := s.service.RemoveTier(s.ctx, &RemoveTierInput{RoleID: "role-bronze"})
	s.Require().NoError(err)

	output, err := s.service.ListTiers(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(output.Tiers, 1)
	s.Equal("role-silver", output.Tiers[0].RoleID)
}
