package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/wordtiles/internal/model"
	"github.com/mcoot/wordtiles/internal/storage/memory"
	"github.com/mcoot/wordtiles/internal/storage/storagetest"
)

// countingStorage records backend reads and can be told to fail writes
type countingStorage struct {
	*memory.Storage
	gets    int
	saveErr error
}

func (c *countingStorage) GetGame(ctx context.Context, id model.GameID) (*model.Game, error) {
	c.gets++
	return c.Storage.GetGame(ctx, id)
}

func (c *countingStorage) SaveGame(ctx context.Context, game *model.Game) error {
	if c.saveErr != nil {
		return c.saveErr
	}
	return c.Storage.SaveGame(ctx, game)
}

type StorageSuite struct {
	storagetest.Suite
	backend *countingStorage
	cache   *Storage
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.backend = &countingStorage{Storage: memory.New()}

	store, err := New(s.backend, 2)
	s.Require().NoError(err)

	s.cache = store
	s.Storage = store
	s.Ctx = context.Background()
}

func (s *StorageSuite) game(id model.GameID) *model.Game {
	return storagetest.NewGame(id, time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
}

func (s *StorageSuite) TestReadsAreServedFromCache() {
	s.Require().NoError(s.cache.SaveGame(s.Ctx, s.game("game-1")))

	for range 3 {
		_, err := s.cache.GetGame(s.Ctx, "game-1")
		s.Require().NoError(err)
	}
	s.Equal(0, s.backend.gets)
}

func (s *StorageSuite) TestMissLoadsFromBackend() {
	s.Require().NoError(s.backend.Storage.SaveGame(s.Ctx, s.game("game-1")))

	_, err := s.cache.GetGame(s.Ctx, "game-1")
	s.Require().NoError(err)
	_, err = s.cache.GetGame(s.Ctx, "game-1")
	s.Require().NoError(err)

	s.Equal(1, s.backend.gets)
}

func (s *StorageSuite) TestEvictsLeastRecentlyUsed() {
	s.Require().NoError(s.cache.SaveGame(s.Ctx, s.game("game-1")))
	s.Require().NoError(s.cache.SaveGame(s.Ctx, s.game("game-2")))
	s.Require().NoError(s.cache.SaveGame(s.Ctx, s.game("game-3")))

	s.Equal(2, s.cache.Len())

	_, err := s.cache.GetGame(s.Ctx, "game-1")
	s.Require().NoError(err)
	s.Equal(1, s.backend.gets)
}

func (s *StorageSuite) TestFailedSaveInvalidates() {
	game := s.game("game-1")
	s.Require().NoError(s.cache.SaveGame(s.Ctx, game))

	s.backend.saveErr = errors.New("disk full")
	game.Score = 50
	s.Error(s.cache.SaveGame(s.Ctx, game))

	got, err := s.cache.GetGame(s.Ctx, "game-1")
	s.Require().NoError(err)
	s.Equal(0, got.Score)
	s.Equal(1, s.backend.gets)
}

func (s *StorageSuite) TestNewRejectsNonPositiveSize() {
	_, err := New(s.backend, 0)
	s.Error(err)
}
