package activity

import (
	"context"
	"testing"

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
	// Create a new miniredis server for each test
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

func (s *RedisRepositoryTestSuite) TestIncrementChatMessages() {
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		err := s.repo.IncrementChatMessages(ctx, &IncrementChatMessagesInput{
			UserID: "user-1",
		})
		s.Require().NoError(err)
	}

	record, err := s.repo.GetRecord(ctx, &GetRecordInput{
		UserID: "user-1",
	})
	s.Require().NoError(err)
	s.Equal(3, record.ChatMessages)
	s.Equal(0, record.VoiceMinutes)
}

func (s *RedisRepositoryTestSuite) TestAddVoiceMinutesClampsToCap() {
	ctx := context.Background()

	err := s.repo.AddVoiceMinutes(ctx, &AddVoiceMinutesInput{
		UserID:  "user-1",
		Minutes: 10000,
		Cap:     600,
	})
	s.Require().NoError(err)

	err = s.repo.AddVoiceMinutes(ctx, &AddVoiceMinutesInput{
		UserID:  "user-1",
		Minutes: 10000,
		Cap:     600,
	})
	s.Require().NoError(err)

	record, err := s.repo.GetRecord(ctx, &GetRecordInput{
		UserID: "user-1",
	})
	s.Require().NoError(err)
	s.Equal(600, record.VoiceMinutes)
}

func (s *RedisRepositoryTestSuite) TestAddVoiceMinutesUncapped() {
	ctx := context.Background()

	err := s.repo.AddVoiceMinutes(ctx, &AddVoiceMinutesInput{
		UserID:  "user-1",
		Minutes: 10000,
		Cap:     0,
	})
	s.Require().NoError(err)

	err = s.repo.AddVoiceMinutes(ctx, &AddVoiceMinutesInput{
		UserID:  "user-1",
		Minutes: 500,
		Cap:     0,
	})
	s.Require().NoError(err)

	record, err := s.repo.GetRecord(ctx, &GetRecordInput{
		UserID: "user-1",
	})
	s.Require().NoError(err)
	s.Equal(10500, record.VoiceMinutes)
}

func (s *RedisRepositoryTestSuite) TestAddZeroMinutesIsNoOp() {
	ctx := context.Background()

	err := s.repo.AddVoiceMinutes(ctx, &AddVoiceMinutesInput{
		UserID:  "user-1",
		Minutes: 0,
		Cap:     600,
	})
	s.Require().NoError(err)

	// No ledger entry at all: a zero accrual must not even create a
	// first-seen record that would surface on the boards
	_, err = s.repo.GetRecord(ctx, &GetRecordInput{
		UserID: "user-1",
	})
	s.Require().Error(err)
	s.Equal(ErrRecordNotFound, err)

	output, err := s.repo.ListRecords(ctx)
	s.Require().NoError(err)
	s.Empty(output.Records)
}

func (s *RedisRepositoryTestSuite) TestListRecordsPreservesFirstSeenOrder() {
	ctx := context.Background()

	for _, userID := range []string{"user-a", "user-b", "user-c"} {
		err := s.repo.IncrementChatMessages(ctx, &IncrementChatMessagesInput{
			UserID: userID,
		})
		s.Require().NoError(err)
	}

	// More activity for an existing member must not reorder the list
	err := s.repo.IncrementChatMessages(ctx, &IncrementChatMessagesInput{
		UserID: "user-a",
	})
	s.Require().NoError(err)

	output, err := s.repo.ListRecords(ctx)
	s.Require().NoError(err)
	s.Require().Len(output.Records, 3)
	s.Equal("user-a", output.Records[0].UserID)
	s.Equal("user-b", output.Records[1].UserID)
	s.Equal("user-c", output.Records[2].UserID)
	s.Equal(2, output.Records[0].ChatMessages)
}

func (s *RedisRepositoryTestSuite) TestReset() {
	ctx := context.Background()

	err := s.repo.IncrementChatMessages(ctx, &IncrementChatMessagesInput{
		UserID: "user-1",
	})
	s.Require().NoError(err)

	err = s.repo.Reset(ctx)
	s.Require().NoError(err)

	_, err = s.repo.GetRecord(ctx, &GetRecordInput{
		UserID: "user-1",
	})
	s.Require().Error(err)
	s.Equal(ErrRecordNotFound, err)

	output, err := s.repo.ListRecords(ctx)
	s.Require().NoError(err)
	s.Empty(output.Records)
}

func (s *RedisRepositoryTestSuite) TestGetNonExistentRecord() {
	_, err := s.repo.GetRecord(context.Background(), &GetRecordInput{
		UserID: "nobody",
	})
	s.Require().Error(err)
	s.Equal(ErrRecordNotFound, err)
}
