package game

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mcoot/wordtiles/internal/config"
	"github.com/mcoot/wordtiles/internal/dependencies/clock"
	"github.com/mcoot/wordtiles/internal/dependencies/ids"
	"github.com/mcoot/wordtiles/internal/dependencies/random"
	"github.com/mcoot/wordtiles/internal/events"
	"github.com/mcoot/wordtiles/internal/model"
	"github.com/mcoot/wordtiles/internal/services/auth"
	"github.com/mcoot/wordtiles/internal/services/board"
	"github.com/mcoot/wordtiles/internal/services/scoring"
	"github.com/mcoot/wordtiles/internal/services/validation"
	"github.com/mcoot/wordtiles/internal/storage"
)

// Controller runs the turn flow: tiles move from the tray to the board,
// submissions are validated and scored, and the tray is refilled
type Controller struct {
	storage           storage.Storage
	boardService      *board.Service
	validationService *validation.Service
	scoringService    *scoring.Service
	authService       *auth.Service
	publisher         events.Publisher
	ids               ids.Generator
	clock             clock.Clock
	random            random.Random
	ruleset           config.Ruleset
	locks             *gameLocks
	logger            *slog.Logger
}

// ControllerConfig holds the dependencies of a Controller
type ControllerConfig struct {
	Storage           storage.Storage
	BoardService      *board.Service
	ValidationService *validation.Service
	ScoringService    *scoring.Service
	AuthService       *auth.Service
	Publisher         events.Publisher
	IDs               ids.Generator
	Clock             clock.Clock
	Random            random.Random
	Ruleset           config.Ruleset
	Logger            *slog.Logger
}

// NewController creates a new GameController
func NewController(cfg ControllerConfig) *Controller {
	publisher := cfg.Publisher
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	return &Controller{
		storage:           cfg.Storage,
		boardService:      cfg.BoardService,
		validationService: cfg.ValidationService,
		scoringService:    cfg.ScoringService,
		authService:       cfg.AuthService,
		publisher:         publisher,
		ids:               cfg.IDs,
		clock:             cfg.Clock,
		random:            cfg.Random,
		ruleset:           cfg.Ruleset,
		locks:             newGameLocks(),
		logger:            cfg.Logger,
	}
}

// NewGameOptions overrides parts of the ruleset for a single game.
// Zero values keep the ruleset's setting.
type NewGameOptions struct {
	BoardSize    int
	TrayCapacity int
}

// CreatedGame is a new game and the owner token that guards it.
// The token is not stored and cannot be recovered later.
type CreatedGame struct {
	Game  *model.Game
	Token string
}

// TurnResult is the outcome of a submission
type TurnResult struct {
	Verdict model.Verdict
	// Set only when the verdict accepted the placement
	Turn         *model.TurnRecord
	BagExhausted bool
	Game         *model.Game
}

// CreateGame deals a fresh board, bag and tray
func (c *Controller) CreateGame(ctx context.Context, opts NewGameOptions) (*CreatedGame, error) {
	size := c.ruleset.BoardSize
	if opts.BoardSize != 0 {
		size = opts.BoardSize
	}
	capacity := c.ruleset.TrayCapacity
	if opts.TrayCapacity != 0 {
		capacity = opts.TrayCapacity
	}
	if !model.ValidTrayCapacity(capacity) {
		return nil, fmt.Errorf("%w: tray capacity %d (1-%d)", model.ErrInvalidRuleset, capacity, model.MaxTrayCapacity)
	}

	boardObj, err := model.NewBoard(size)
	if err != nil {
		return nil, err
	}
	dist, err := c.ruleset.Distribution()
	if err != nil {
		return nil, err
	}

	token, hash, err := c.authService.IssueToken()
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	now := c.clock.Now()
	game := &model.Game{
		ID:             c.ids.GameID(),
		State:          model.GameStateActive,
		Board:          boardObj,
		Inventory:      model.NewLetterInventory(dist, c.random),
		Tray:           model.NewTray(capacity),
		Pending:        model.NewPendingPlacement(),
		FirstWord:      true,
		OwnerTokenHash: hash,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	game.Tray.Refill(game.Inventory, c.random, game.NextTileID)

	if err := c.save(ctx, game); err != nil {
		return nil, err
	}

	c.logger.Info("game created",
		slog.String("game_id", string(game.ID)),
		slog.Int("board_size", size),
		slog.Int("tray_capacity", capacity),
		slog.Int("bag_remaining", game.BagRemaining()),
	)

	c.publish(ctx, game.ID, model.EventGameCreated, model.GameCreatedPayload{
		BoardSize:    size,
		TrayCapacity: capacity,
		BagRemaining: game.BagRemaining(),
	})

	return &CreatedGame{Game: game, Token: token}, nil
}

// GetGame retrieves a game by ID
func (c *Controller) GetGame(ctx context.Context, gameID model.GameID) (*model.Game, error) {
	return c.storage.GetGame(ctx, gameID)
}

// ListGames returns summaries of every stored game
func (c *Controller) ListGames(ctx context.Context) ([]model.GameSummary, error) {
	return c.storage.ListGames(ctx)
}

// Authorize checks the owner token presented for a game
func (c *Controller) Authorize(ctx context.Context, gameID model.GameID, token string) error {
	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return err
	}
	return c.authService.VerifyToken(game, token)
}

// PlaceTile moves a tile from the tray onto a free cell for this turn
func (c *Controller) PlaceTile(ctx context.Context, gameID model.GameID, tileID model.TileID, at model.Coordinate) (*model.Game, error) {
	unlock := c.locks.lock(gameID)
	defer unlock()

	game, err := c.loadActive(ctx, gameID)
	if err != nil {
		return nil, err
	}
	return c.placeTileLocked(ctx, game, tileID, at)
}

// PlaceLetter places the first tray tile carrying the letter
func (c *Controller) PlaceLetter(ctx context.Context, gameID model.GameID, letter rune, at model.Coordinate) (*model.Game, error) {
	upper, err := board.ParseLetter(letter)
	if err != nil {
		return nil, err
	}

	unlock := c.locks.lock(gameID)
	defer unlock()

	game, err := c.loadActive(ctx, gameID)
	if err != nil {
		return nil, err
	}

	for _, tile := range game.Tray.Tiles {
		if tile.Letter == upper {
			return c.placeTileLocked(ctx, game, tile.ID, at)
		}
	}
	return nil, model.ErrTileNotInTray
}

// placeTileLocked expects the caller to hold the game's lock
func (c *Controller) placeTileLocked(ctx context.Context, game *model.Game, tileID model.TileID, at model.Coordinate) (*model.Game, error) {
	gameID := game.ID
	tile, ok := game.Tray.Find(tileID)
	if !ok {
		return nil, model.ErrTileNotInTray
	}
	if err := c.boardService.ValidatePlacement(game.Board, game.Pending, at); err != nil {
		return nil, err
	}

	game.Tray.Remove(tileID)
	if err := game.Pending.Add(tile, at, game.Board); err != nil {
		return nil, err
	}

	game.UpdatedAt = c.clock.Now()
	if err := c.save(ctx, game); err != nil {
		return nil, err
	}

	c.publish(ctx, gameID, model.EventTilePlaced, model.TilePlacedPayload{
		TileID: tileID,
		Letter: string(tile.Letter),
		At:     at,
	})

	return game, nil
}

// RemoveTile takes a pending tile back into the tray
func (c *Controller) RemoveTile(ctx context.Context, gameID model.GameID, tileID model.TileID) (*model.Game, error) {
	unlock := c.locks.lock(gameID)
	defer unlock()

	game, err := c.loadActive(ctx, gameID)
	if err != nil {
		return nil, err
	}

	tile, ok := game.Pending.Remove(tileID)
	if !ok {
		return nil, model.ErrTileNotPending
	}
	if err := game.Tray.Return(tile); err != nil {
		return nil, fmt.Errorf("return tile %s to tray: %w", tileID, err)
	}

	game.UpdatedAt = c.clock.Now()
	if err := c.save(ctx, game); err != nil {
		return nil, err
	}

	c.publish(ctx, gameID, model.EventTileRemoved, model.TileRemovedPayload{TileID: tileID})

	return game, nil
}

// RecallTiles returns every pending tile to the tray without submitting
func (c *Controller) RecallTiles(ctx context.Context, gameID model.GameID) (*model.Game, error) {
	unlock := c.locks.lock(gameID)
	defer unlock()

	game, err := c.loadActive(ctx, gameID)
	if err != nil {
		return nil, err
	}

	count := game.Pending.Len()
	if count == 0 {
		return game, nil
	}
	if err := game.Pending.Rollback(game.Tray); err != nil {
		return nil, fmt.Errorf("recall tiles: %w", err)
	}

	game.UpdatedAt = c.clock.Now()
	if err := c.save(ctx, game); err != nil {
		return nil, err
	}

	c.publish(ctx, gameID, model.EventTilesRecalled, model.TilesRecalledPayload{Count: count})

	return game, nil
}

// SubmitTurn validates the pending placement. An accepted placement is
// scored, committed and the tray refilled; a rejected one goes back to the tray.
// Rejections are reported in the result, not as errors.
func (c *Controller) SubmitTurn(ctx context.Context, gameID model.GameID) (*TurnResult, error) {
	unlock := c.locks.lock(gameID)
	defer unlock()

	game, err := c.loadActive(ctx, gameID)
	if err != nil {
		return nil, err
	}

	verdict := c.validationService.Validate(game.Board, game.Pending, game.FirstWord)
	if !verdict.Accepted() {
		return c.rejectTurn(ctx, game, verdict)
	}

	wordScore := c.scoringService.ScoreTurn(game.Board, game.Pending, verdict)
	coords := game.Pending.Coordinates()

	if err := game.Pending.Commit(game.Board); err != nil {
		return nil, fmt.Errorf("commit placement: %w", err)
	}

	now := c.clock.Now()
	turn := model.TurnRecord{
		Number:      len(game.Turns) + 1,
		Word:        wordScore.Word,
		Axis:        verdict.Axis,
		Coordinates: coords,
		Score:       wordScore.Score,
		PlayedAt:    now,
	}
	game.Turns = append(game.Turns, turn)
	game.Score += wordScore.Score
	game.FirstWord = false

	hadLetters := !game.Inventory.IsEmpty()
	refill := game.Tray.Refill(game.Inventory, c.random, game.NextTileID)

	game.UpdatedAt = now
	if err := c.save(ctx, game); err != nil {
		return nil, err
	}

	c.logger.Info("turn accepted",
		slog.String("game_id", string(game.ID)),
		slog.String("word", turn.Word),
		slog.Int("score", turn.Score),
		slog.Int("total_score", game.Score),
		slog.Int("bag_remaining", game.BagRemaining()),
	)

	c.publish(ctx, gameID, model.EventTurnAccepted, model.TurnAcceptedPayload{
		Turn:       turn,
		TotalScore: game.Score,
	})
	if hadLetters && game.Inventory.IsEmpty() {
		c.publish(ctx, gameID, model.EventBagExhausted, model.BagExhaustedPayload{
			TrayRemaining: game.Tray.Len(),
		})
	}

	return &TurnResult{
		Verdict:      verdict,
		Turn:         &turn,
		BagExhausted: refill.BagExhausted,
		Game:         game,
	}, nil
}

// rejectTurn rolls the pending tiles back into the tray
func (c *Controller) rejectTurn(ctx context.Context, game *model.Game, verdict model.Verdict) (*TurnResult, error) {
	if err := game.Pending.Rollback(game.Tray); err != nil {
		return nil, fmt.Errorf("roll back placement: %w", err)
	}

	game.UpdatedAt = c.clock.Now()
	if err := c.save(ctx, game); err != nil {
		return nil, err
	}

	c.logger.Info("turn rejected",
		slog.String("game_id", string(game.ID)),
		slog.String("reason", string(verdict.Reason)),
	)

	c.publish(ctx, game.ID, model.EventTurnRejected, model.TurnRejectedPayload{Reason: verdict.Reason})

	return &TurnResult{Verdict: verdict, Game: game}, nil
}

// AbandonGame ends a game. Abandoning twice is a no-op.
func (c *Controller) AbandonGame(ctx context.Context, gameID model.GameID) error {
	unlock := c.locks.lock(gameID)
	defer unlock()

	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return err
	}

	if game.State == model.GameStateAbandoned {
		return nil
	}

	game.State = model.GameStateAbandoned
	game.UpdatedAt = c.clock.Now()

	if err := c.save(ctx, game); err != nil {
		return err
	}

	c.logger.Info("game abandoned",
		slog.String("game_id", string(gameID)),
		slog.Int("score", game.Score),
	)

	c.publish(ctx, gameID, model.EventGameAbandoned, model.GameAbandonedPayload{Reason: "abandoned by owner"})

	return nil
}

// loadActive fetches a game that still accepts moves
func (c *Controller) loadActive(ctx context.Context, gameID model.GameID) (*model.Game, error) {
	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if !game.IsActive() {
		return nil, model.ErrGameAbandoned
	}
	return game, nil
}

func (c *Controller) save(ctx context.Context, game *model.Game) error {
	if err := c.storage.SaveGame(ctx, game); err != nil {
		c.logger.Error("failed to save game",
			slog.String("game_id", string(game.ID)),
			slog.String("error", err.Error()),
		)
		return err
	}
	return nil
}

// publish sends an event; failures are logged and otherwise ignored
func (c *Controller) publish(ctx context.Context, gameID model.GameID, eventType model.EventType, payload any) {
	event := model.Event{
		Type:      eventType,
		Timestamp: c.clock.Now(),
		GameID:    gameID,
		Payload:   payload,
	}
	if err := c.publisher.Publish(ctx, event); err != nil {
		c.logger.Warn("failed to publish event",
			slog.String("game_id", string(gameID)),
			slog.String("event_type", string(eventType)),
			slog.String("error", err.Error()),
		)
	}
}

// Interface for dependency injection
type ControllerInterface interface {
	CreateGame(ctx context.Context, opts NewGameOptions) (*CreatedGame, error)
	GetGame(ctx context.Context, gameID model.GameID) (*model.Game, error)
	ListGames(ctx context.Context) ([]model.GameSummary, error)
	Authorize(ctx context.Context, gameID model.GameID, token string) error
	PlaceTile(ctx context.Context, gameID model.GameID, tileID model.TileID, at model.Coordinate) (*model.Game, error)
	PlaceLetter(ctx context.Context, gameID model.GameID, letter rune, at model.Coordinate) (*model.Game, error)
	RemoveTile(ctx context.Context, gameID model.GameID, tileID model.TileID) (*model.Game, error)
	RecallTiles(ctx context.Context, gameID model.GameID) (*model.Game, error)
	SubmitTurn(ctx context.Context, gameID model.GameID) (*TurnResult, error)
	AbandonGame(ctx context.Context, gameID model.GameID) error
}

var _ ControllerInterface = (*Controller)(nil)
