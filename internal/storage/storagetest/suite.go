// Package storagetest holds the behaviour every storage backend must share
package storagetest

import (
	"context"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/wordtiles/internal/dependencies/mocks"
	"github.com/mcoot/wordtiles/internal/model"
	"github.com/mcoot/wordtiles/internal/storage"
)

// Suite runs the shared storage checks. Embed it in a backend suite and
// set Storage in SetupTest.
type Suite struct {
	suite.Suite
	Storage storage.Storage
	Ctx     context.Context
}

// NewGame builds a started game with a filled tray and one pending tile
func NewGame(id model.GameID, updatedAt time.Time) *model.Game {
	board, _ := model.NewBoard(model.DefaultBoardSize)
	rnd := mocks.NewMockRandom()
	game := &model.Game{
		ID:        id,
		State:     model.GameStateActive,
		Board:     board,
		Inventory: model.NewLetterInventory(model.DefaultDistribution(), rnd),
		Tray:      model.NewTray(model.DefaultTrayCapacity),
		Pending:   model.NewPendingPlacement(),
		FirstWord: true,
		CreatedAt: updatedAt,
		UpdatedAt: updatedAt,
	}
	game.Tray.Refill(game.Inventory, rnd, game.NextTileID)

	tile, _ := game.Tray.Remove(game.Tray.Tiles[0].ID)
	_ = game.Pending.Add(tile, board.Center(), board)
	return game
}

func (s *Suite) TestSaveAndGetGame() {
	game := NewGame("game-1", time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))

	s.Require().NoError(s.Storage.SaveGame(s.Ctx, game))

	got, err := s.Storage.GetGame(s.Ctx, "game-1")
	s.Require().NoError(err)
	s.Equal(game.ID, got.ID)
	s.Equal(game.State, got.State)
	s.Equal(game.Tray.Letters(), got.Tray.Letters())
	s.Equal(game.BagRemaining(), got.BagRemaining())
	s.Equal(game.Pending.Coordinates(), got.Pending.Coordinates())
	s.Equal(model.BonusTripleWord, got.Board.BonusAt(got.Board.Center()))
	s.Equal(game.TileSeq, got.TileSeq)
	s.True(game.UpdatedAt.Equal(got.UpdatedAt))
}

func (s *Suite) TestSavedGameRoundTripsConfirmedTiles() {
	game := NewGame("game-1", time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.Require().NoError(game.Board.Place(model.NewTile("t99", 'Q', 10), model.At(0, 0)))

	s.Require().NoError(s.Storage.SaveGame(s.Ctx, game))

	got, err := s.Storage.GetGame(s.Ctx, "game-1")
	s.Require().NoError(err)
	occupant := got.Board.Occupant(model.At(0, 0))
	s.Require().NotNil(occupant)
	s.Equal('Q', occupant.Letter)
	s.Equal(10, occupant.Points)
}

func (s *Suite) TestGetGameNotFound() {
	_, err := s.Storage.GetGame(s.Ctx, "nonexistent")
	s.ErrorIs(err, model.ErrGameNotFound)
}

func (s *Suite) TestSaveGameOverwrites() {
	game := NewGame("game-1", time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.Require().NoError(s.Storage.SaveGame(s.Ctx, game))

	game.Score = 42
	s.Require().NoError(s.Storage.SaveGame(s.Ctx, game))

	got, err := s.Storage.GetGame(s.Ctx, "game-1")
	s.Require().NoError(err)
	s.Equal(42, got.Score)
}

func (s *Suite) TestReturnedGameIsDetached() {
	game := NewGame("game-1", time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.Require().NoError(s.Storage.SaveGame(s.Ctx, game))

	got, err := s.Storage.GetGame(s.Ctx, "game-1")
	s.Require().NoError(err)
	got.Score = 99
	got.Tray.Tiles = nil

	again, err := s.Storage.GetGame(s.Ctx, "game-1")
	s.Require().NoError(err)
	s.Equal(0, again.Score)
	s.Equal(game.Tray.Len(), again.Tray.Len())
}

func (s *Suite) TestDeleteGame() {
	game := NewGame("game-1", time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.Require().NoError(s.Storage.SaveGame(s.Ctx, game))

	s.Require().NoError(s.Storage.DeleteGame(s.Ctx, "game-1"))

	_, err := s.Storage.GetGame(s.Ctx, "game-1")
	s.ErrorIs(err, model.ErrGameNotFound)
}

func (s *Suite) TestDeleteMissingGameIsFine() {
	s.NoError(s.Storage.DeleteGame(s.Ctx, "nonexistent"))
}

func (s *Suite) TestListGames() {
	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	s.Require().NoError(s.Storage.SaveGame(s.Ctx, NewGame("game-old", base)))
	s.Require().NoError(s.Storage.SaveGame(s.Ctx, NewGame("game-new", base.Add(time.Hour))))

	summaries, err := s.Storage.ListGames(s.Ctx)
	s.Require().NoError(err)
	s.Require().Len(summaries, 2)
	s.Equal(model.GameID("game-new"), summaries[0].ID)
	s.Equal(model.GameID("game-old"), summaries[1].ID)
	s.Equal(91, summaries[0].BagRemaining)
}

func (s *Suite) TestListGamesAfterDelete() {
	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	s.Require().NoError(s.Storage.SaveGame(s.Ctx, NewGame("game-1", base)))
	s.Require().NoError(s.Storage.DeleteGame(s.Ctx, "game-1"))

	summaries, err := s.Storage.ListGames(s.Ctx)
	s.Require().NoError(err)
	s.Empty(summaries)
}
