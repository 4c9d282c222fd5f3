package response

import (
	"time"

	"github.com/mcoot/wordtiles/internal/model"
	"github.com/mcoot/wordtiles/internal/services/board"
	"github.com/mcoot/wordtiles/internal/services/game"
)

// Coordinate represents a board position
type Coordinate struct {
	Col int `json:"col"`
	Row int `json:"row"`
}

// CoordinateFromModel converts model.Coordinate
func CoordinateFromModel(c model.Coordinate) Coordinate {
	return Coordinate{Col: c.Col, Row: c.Row}
}

// Tile represents a tray tile
type Tile struct {
	ID     string `json:"id"`
	Letter string `json:"letter"`
	Points int    `json:"points"`
}

// TileFromModel converts model.LetterTile
func TileFromModel(t *model.LetterTile) Tile {
	return Tile{
		ID:     string(t.ID),
		Letter: string(t.Letter),
		Points: t.Points,
	}
}

// Turn represents one accepted word
type Turn struct {
	Number      int          `json:"number"`
	Word        string       `json:"word"`
	Axis        string       `json:"axis"`
	Coordinates []Coordinate `json:"coordinates"`
	Score       int          `json:"score"`
	PlayedAt    time.Time    `json:"played_at"`
}

// TurnFromModel converts model.TurnRecord
func TurnFromModel(t model.TurnRecord) Turn {
	coords := make([]Coordinate, len(t.Coordinates))
	for i, c := range t.Coordinates {
		coords[i] = CoordinateFromModel(c)
	}
	return Turn{
		Number:      t.Number,
		Word:        t.Word,
		Axis:        string(t.Axis),
		Coordinates: coords,
		Score:       t.Score,
		PlayedAt:    t.PlayedAt,
	}
}

// GameState represents the current game state
type GameState struct {
	ID           string         `json:"id"`
	State        string         `json:"state"`
	Board        board.Snapshot `json:"board"`
	Tray         []Tile         `json:"tray"`
	TrayCapacity int            `json:"tray_capacity"`
	Pending      int            `json:"pending"`
	Score        int            `json:"score"`
	BagRemaining int            `json:"bag_remaining"`
	FirstWord    bool           `json:"first_word"`
	Prompt       string         `json:"prompt,omitempty"`
	Turns        []Turn         `json:"turns"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

// GameStateFromModel converts model.Game to response GameState
func GameStateFromModel(g *model.Game, boardService *board.Service) GameState {
	tray := make([]Tile, len(g.Tray.Tiles))
	for i, t := range g.Tray.Tiles {
		tray[i] = TileFromModel(t)
	}

	turns := make([]Turn, len(g.Turns))
	for i, t := range g.Turns {
		turns[i] = TurnFromModel(t)
	}

	var prompt string
	if g.FirstWord && g.IsActive() {
		prompt = FirstWordPrompt
	}

	return GameState{
		ID:           string(g.ID),
		State:        string(g.State),
		Board:        boardService.Snapshot(g.Board, g.Pending),
		Tray:         tray,
		TrayCapacity: g.Tray.Capacity,
		Pending:      g.Pending.Len(),
		Score:        g.Score,
		BagRemaining: g.BagRemaining(),
		FirstWord:    g.FirstWord,
		Prompt:       prompt,
		Turns:        turns,
		CreatedAt:    g.CreatedAt,
		UpdatedAt:    g.UpdatedAt,
	}
}

// CreateGameResponse is the response after starting a game.
// The token is only ever returned here.
type CreateGameResponse struct {
	Game  GameState `json:"game"`
	Token string    `json:"token"`
}

// SubmitResponse is the response after submitting a turn
type SubmitResponse struct {
	Accepted     bool      `json:"accepted"`
	Reason       string    `json:"reason,omitempty"`
	Message      string    `json:"message"`
	Word         string    `json:"word,omitempty"`
	Score        int       `json:"score"`
	TotalScore   int       `json:"total_score"`
	BagRemaining int       `json:"bag_remaining"`
	BagExhausted bool      `json:"bag_exhausted"`
	Game         GameState `json:"game"`
}

// SubmitResponseFromResult converts a game.TurnResult
func SubmitResponseFromResult(result *game.TurnResult, boardService *board.Service) SubmitResponse {
	resp := SubmitResponse{
		Accepted:     result.Verdict.Accepted(),
		Reason:       string(result.Verdict.Reason),
		TotalScore:   result.Game.Score,
		BagRemaining: result.Game.BagRemaining(),
		BagExhausted: result.BagExhausted,
		Game:         GameStateFromModel(result.Game, boardService),
	}
	if result.Turn != nil {
		resp.Word = result.Turn.Word
		resp.Score = result.Turn.Score
	}
	resp.Message = VerdictMessage(result.Verdict, resp.Score)
	return resp
}

// GameSummary represents a game in listings
type GameSummary struct {
	ID           string    `json:"id"`
	State        string    `json:"state"`
	Score        int       `json:"score"`
	TurnsPlayed  int       `json:"turns_played"`
	BagRemaining int       `json:"bag_remaining"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// GameSummaryFromModel converts model.GameSummary
func GameSummaryFromModel(g model.GameSummary) GameSummary {
	return GameSummary{
		ID:           string(g.ID),
		State:        string(g.State),
		Score:        g.Score,
		TurnsPlayed:  g.TurnsPlayed,
		BagRemaining: g.BagRemaining,
		UpdatedAt:    g.UpdatedAt,
	}
}

// GameList is the response for listing games
type GameList struct {
	Games []GameSummary `json:"games"`
}

// GameListFromModel converts a slice of summaries
func GameListFromModel(summaries []model.GameSummary) GameList {
	games := make([]GameSummary, len(summaries))
	for i, s := range summaries {
		games[i] = GameSummaryFromModel(s)
	}
	return GameList{Games: games}
}
