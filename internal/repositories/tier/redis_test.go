package tier

import (
	"context"
	"testing"

	"guildkeeper/internal/models"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr     *miniredis.Miniredis
	client *redis.Client
	repo   Repository
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) TestAddAndListPreservesOrder() {
	ctx := context.Background()

	tiers := []*models.VoiceTier{
		{RoleID: "role-bronze", MinMinutes: 60},
		{RoleID: "role-silver", MinMinutes: 300},
		{RoleID: "role-gold", MinMinutes: 600},
	}

	for _, t := range tiers {
		err := s.repo.AddTier(ctx, &AddTierInput{Tier: t})
		s.Require().NoError(err)
	}

	output, err := s.repo.ListTiers(ctx)
	s.Require().NoError(err)
	s.Require().Len(output.Tiers, 3)
	s.Equal("role-bronze", output.Tiers[0].RoleID)
	s.Equal("role-silver", output.Tiers[1].RoleID)
	s.Equal("role-gold", output.Tiers[2].RoleID)
	s.Equal(300, output.Tiers[1].MinMinutes)
}

func (s *RedisRepositoryTestSuite) TestRemoveTier() {
	ctx := context.Background()

	for _, t := range []*models.VoiceTier{
		{RoleID: "role-bronze", MinMinutes: 60},
		{RoleID: "role-silver", MinMinutes: 300},
	} {
		err := s.repo.AddTier(ctx, &AddTierInput{Tier: t})
		s.Require().NoError(err)
	}

	err := s.repo.RemoveTier(ctx, &RemoveTierInput{RoleID: "role-bronze"})
	s.Require().NoError(err)

	output, err := s.repo.ListTiers(ctx)
	s.Require().NoError(err)
	s.Require().Len(output.Tiers, 1)
	s.Equal("role-silver", output.Tiers[0].RoleID)

	// Removing an unknown role is a no-op
	err = s.repo.RemoveTier(ctx, &RemoveTierInput{RoleID: "role-unknown"})
	s.Require().NoError(err)

	output, err = s.repo.ListTiers(ctx)
	s.Require().NoError(err)
	s.Len(output.Tiers, 1)
}

func (s *RedisRepositoryTestSuite) TestListEmpty() {
	output, err := s.repo.ListTiers(context.Background())
	s.Require().NoError(err)
	s.Empty(output.Tiers)
}
