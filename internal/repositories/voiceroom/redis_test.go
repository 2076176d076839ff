package voiceroom

import (
	"context"
	"testing"
	"time"

	"guildkeeper/internal/models"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	client  *redis.Client
	repo    Repository
	testNow time.Time
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

	s.testNow = time.Date(2025, 4, 5, 10, 0, 0, 0, time.UTC)
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) testRoom() *models.Room {
	return &models.Room{
		ID:        "room-1",
		GuildID:   "guild-1",
		OwnerID:   "owner-1",
		Status:    models.RoomStatusActive,
		CreatedAt: s.testNow,
	}
}

func (s *RedisRepositoryTestSuite) TestSaveAndGetRoom() {
	ctx := context.Background()

	err := s.repo.SaveRoom(ctx, &SaveRoomInput{Room: s.testRoom()})
	s.Require().NoError(err)

	room, err := s.repo.GetRoom(ctx, &GetRoomInput{RoomID: "room-1"})
	s.Require().NoError(err)
	s.Equal("room-1", room.ID)
	s.Equal("guild-1", room.GuildID)
	s.Equal("owner-1", room.OwnerID)
	s.Equal(models.RoomStatusActive, room.Status)
	s.False(room.Locked)
	s.False(room.Hidden)
}

func (s *RedisRepositoryTestSuite) TestGetRoomByOwner() {
	ctx := context.Background()

	err := s.repo.SaveRoom(ctx, &SaveRoomInput{Room: s.testRoom()})
	s.Require().NoError(err)

	room, err := s.repo.GetRoomByOwner(ctx, &GetRoomByOwnerInput{OwnerID: "owner-1"})
	s.Require().NoError(err)
	s.Equal("room-1", room.ID)

	_, err = s.repo.GetRoomByOwner(ctx, &GetRoomByOwnerInput{OwnerID: "nobody"})
	s.Require().Error(err)
	s.Equal(ErrRoomNotFound, err)
}

func (s *RedisRepositoryTestSuite) TestTransferReindexesOwnership() {
	ctx := context.Background()

	err := s.repo.SaveRoom(ctx, &SaveRoomInput{Room: s.testRoom()})
	s.Require().NoError(err)

	transferred := s.testRoom()
	transferred.OwnerID = "owner-2"
	err = s.repo.SaveRoom(ctx, &SaveRoomInput{Room: transferred})
	s.Require().NoError(err)

	room, err := s.repo.GetRoomByOwner(ctx, &GetRoomByOwnerInput{OwnerID: "owner-2"})
	s.Require().NoError(err)
	s.Equal("room-1", room.ID)

	// The previous owner no longer maps to the room
	_, err = s.repo.GetRoomByOwner(ctx, &GetRoomByOwnerInput{OwnerID: "owner-1"})
	s.Require().Error(err)
	s.Equal(ErrRoomNotFound, err)
}

func (s *RedisRepositoryTestSuite) TestListRooms() {
	ctx := context.Background()

	first := s.testRoom()
	second := s.testRoom()
	second.ID = "room-2"
	second.OwnerID = "owner-2"
	other := s.testRoom()
	other.ID = "room-3"
	other.GuildID = "guild-2"
	other.OwnerID = "owner-3"

	for _, room := range []*models.Room{first, second, other} {
		err := s.repo.SaveRoom(ctx, &SaveRoomInput{Room: room})
		s.Require().NoError(err)
	}

	output, err := s.repo.ListRooms(ctx, &ListRoomsInput{GuildID: "guild-1"})
	s.Require().NoError(err)
	s.Require().Len(output.Rooms, 2)

	roomIDs := map[string]bool{}
	for _, room := range output.Rooms {
		roomIDs[room.ID] = true
	}
	s.True(roomIDs["room-1"])
	s.True(roomIDs["room-2"])
}

func (s *RedisRepositoryTestSuite) TestDeleteRoom() {
	ctx := context.Background()

	err := s.repo.SaveRoom(ctx, &SaveRoomInput{Room: s.testRoom()})
	s.Require().NoError(err)

	err = s.repo.DeleteRoom(ctx, &DeleteRoomInput{RoomID: "room-1"})
	s.Require().NoError(err)

	_, err = s.repo.GetRoom(ctx, &GetRoomInput{RoomID: "room-1"})
	s.Require().Error(err)
	s.Equal(ErrRoomNotFound, err)

	_, err = s.repo.GetRoomByOwner(ctx, &GetRoomByOwnerInput{OwnerID: "owner-1"})
	s.Require().Error(err)
	s.Equal(ErrRoomNotFound, err)

	output, err := s.repo.ListRooms(ctx, &ListRoomsInput{GuildID: "guild-1"})
	s.Require().NoError(err)
	s.Empty(output.Rooms)

	// Deleting a missing room is a no-op
	err = s.repo.DeleteRoom(ctx, &DeleteRoomInput{RoomID: "room-1"})
	s.Require().NoError(err)
}
