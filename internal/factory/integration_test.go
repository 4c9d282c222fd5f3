package factory

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/mcoot/wordtiles/internal/model"
	"github.com/mcoot/wordtiles/internal/services/game"
	"github.com/mcoot/wordtiles/internal/storage/cache"
	"github.com/mcoot/wordtiles/internal/storage/memory"
	redisstorage "github.com/mcoot/wordtiles/internal/storage/redis"
	"github.com/mcoot/wordtiles/internal/storage/sqlite"
	"github.com/mcoot/wordtiles/internal/testutil"
)

type IntegrationSuite struct {
	suite.Suite
	app *TestApp
	ctx context.Context
}

func TestIntegrationSuite(t *testing.T) {
	suite.Run(t, new(IntegrationSuite))
}

func (s *IntegrationSuite) SetupTest() {
	// Deals "TTIHCAA" and leaves one A in the bag
	s.app = NewTestAppWithRuleset(testutil.Ruleset("AAACHITT"))
	s.ctx = context.Background()
}

func (s *IntegrationSuite) place(id model.GameID, letter rune, col, row int) {
	_, err := s.app.GameController.PlaceLetter(s.ctx, id, letter, model.At(col, row))
	s.Require().NoError(err)
}

// Test: a game from creation through two words to abandonment
func (s *IntegrationSuite) TestCompleteGameFlow() {
	s.app.MockIDs.QueueGameID("GAME01")
	s.app.MockRandom.QueueString("secretsecretsecretsecretsecret00")

	// Step 1: Create a game
	created, err := s.app.GameController.CreateGame(s.ctx, game.NewGameOptions{})
	s.Require().NoError(err)
	s.Equal(model.GameID("GAME01"), created.Game.ID)
	s.Require().NoError(s.app.GameController.Authorize(s.ctx, "GAME01", created.Token))

	// Step 2: A first word off the center is rejected and rolled back
	s.place("GAME01", 'H', 0, 0)
	s.place("GAME01", 'I', 1, 0)
	result, err := s.app.GameController.SubmitTurn(s.ctx, "GAME01")
	s.Require().NoError(err)
	s.Equal(model.RejectMissingCenterAnchor, result.Verdict.Reason)
	s.Equal(7, result.Game.Tray.Len())

	// Step 3: HI through the center scores (4 + 1) * 3
	s.place("GAME01", 'H', 6, 7)
	s.place("GAME01", 'I', 7, 7)
	result, err = s.app.GameController.SubmitTurn(s.ctx, "GAME01")
	s.Require().NoError(err)
	s.Require().True(result.Verdict.Accepted())
	s.Equal(15, result.Turn.Score)
	s.True(result.BagExhausted)

	// Step 4: A second word must touch the first
	s.place("GAME01", 'T', 6, 8)
	s.place("GAME01", 'A', 7, 8)
	result, err = s.app.GameController.SubmitTurn(s.ctx, "GAME01")
	s.Require().NoError(err)
	s.Require().True(result.Verdict.Accepted())
	s.Equal(4, result.Turn.Score)

	// Step 5: State is persisted
	stored, err := s.app.GameController.GetGame(s.ctx, "GAME01")
	s.Require().NoError(err)
	s.Equal(19, stored.Score)
	s.Len(stored.Turns, 2)
	s.Equal(4, stored.Board.OccupiedCount())
	s.Equal("TCAA", stored.Tray.Letters())
	s.Equal(0, stored.BagRemaining())

	summaries, err := s.app.GameController.ListGames(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(summaries, 1)
	s.Equal(2, summaries[0].TurnsPlayed)

	// Step 6: Abandon
	s.Require().NoError(s.app.GameController.AbandonGame(s.ctx, "GAME01"))
	_, err = s.app.GameController.SubmitTurn(s.ctx, "GAME01")
	s.ErrorIs(err, model.ErrGameAbandoned)

	s.Equal([]model.EventType{
		model.EventGameCreated,
		model.EventTilePlaced,
		model.EventTilePlaced,
		model.EventTurnRejected,
		model.EventTilePlaced,
		model.EventTilePlaced,
		model.EventTurnAccepted,
		model.EventBagExhausted,
		model.EventTilePlaced,
		model.EventTilePlaced,
		model.EventTurnAccepted,
		model.EventGameAbandoned,
	}, s.app.Events.Types())
}

// Test: the bag drains to empty and the tray shrinks
func (s *IntegrationSuite) TestDefaultBagDrains() {
	app := NewTestApp()
	created, err := app.GameController.CreateGame(s.ctx, game.NewGameOptions{})
	s.Require().NoError(err)
	s.Equal(91, created.Game.BagRemaining())
	s.Equal(model.DefaultTrayCapacity, created.Game.Tray.Len())
}

func TestNewDefaultsToMemory(t *testing.T) {
	app, err := New(Config{})
	if err != nil {
		t.Fatal(err)
	}
	defer app.Close()

	if _, ok := app.Storage.(*memory.Storage); !ok {
		t.Fatalf("expected memory storage, got %T", app.Storage)
	}
	if app.Ruleset.BoardSize != model.DefaultBoardSize {
		t.Fatalf("expected default ruleset, got board size %d", app.Ruleset.BoardSize)
	}
}

type FactorySuite struct {
	suite.Suite
}

func TestFactorySuite(t *testing.T) {
	suite.Run(t, new(FactorySuite))
}

func (s *FactorySuite) TestSQLiteStorage() {
	app, err := New(Config{
		StorageType: StorageTypeSQLite,
		SQLitePath:  filepath.Join(s.T().TempDir(), "games.db"),
	})
	s.Require().NoError(err)
	defer app.Close()

	s.IsType(&sqlite.Storage{}, app.Storage)
}

func (s *FactorySuite) TestRedisStorage() {
	mr := miniredis.RunT(s.T())
	redisCfg := redisstorage.DefaultConfig()
	redisCfg.URL = "redis://" + mr.Addr()

	app, err := New(Config{StorageType: StorageTypeRedis, RedisConfig: &redisCfg})
	s.Require().NoError(err)
	defer app.Close()

	s.IsType(&redisstorage.Storage{}, app.Storage)
}

func (s *FactorySuite) TestRedisRequiresConfig() {
	_, err := New(Config{StorageType: StorageTypeRedis})
	s.Error(err)
}

func (s *FactorySuite) TestSQLiteRequiresPath() {
	_, err := New(Config{StorageType: StorageTypeSQLite})
	s.Error(err)
}

func (s *FactorySuite) TestUnknownStorage() {
	_, err := New(Config{StorageType: "postgres"})
	s.ErrorContains(err, "invalid StorageType")
}

func (s *FactorySuite) TestCacheWrapsBackend() {
	app, err := New(Config{CacheSize: 16})
	s.Require().NoError(err)
	defer app.Close()

	s.IsType(&cache.Storage{}, app.Storage)
}

func (s *FactorySuite) TestInvalidRulesetRejected() {
	rs := testutil.Ruleset("AB")
	rs.BoardSize = 14

	_, err := New(Config{Ruleset: rs})
	s.ErrorIs(err, model.ErrInvalidBoardSize)
}
