package model

import (
	"fmt"
	"time"
)

// GameID uniquely identifies a game
type GameID string

// GameState represents the current phase of a game
type GameState string

const (
	GameStateActive    GameState = "active"    // Accepting placements and submissions
	GameStateAbandoned GameState = "abandoned" // Game was cancelled
)

// Game is a single solitaire game: the board, the bag, the player's tray
// and whatever they have placed this turn
type Game struct {
	ID        GameID            `json:"id"`
	State     GameState         `json:"state"`
	Board     *Board            `json:"board"`
	Inventory *LetterInventory  `json:"inventory"`
	Tray      *Tray             `json:"tray"`
	Pending   *PendingPlacement `json:"pending"`

	// FirstWord is true until a submission has been accepted
	FirstWord bool         `json:"first_word"`
	Score     int          `json:"score"`
	Turns     []TurnRecord `json:"turns"`

	// OwnerTokenHash is the bcrypt hash of the token issued at creation
	OwnerTokenHash string `json:"owner_token_hash"`

	// TileSeq counts tiles minted for this game
	TileSeq int `json:"tile_seq"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TurnRecord is one accepted submission
type TurnRecord struct {
	Number      int          `json:"number"`
	Word        string       `json:"word"`
	Axis        Axis         `json:"axis"`
	Coordinates []Coordinate `json:"coordinates"`
	Score       int          `json:"score"`
	PlayedAt    time.Time    `json:"played_at"`
}

// IsActive returns true while the game accepts moves
func (g *Game) IsActive() bool {
	return g.State == GameStateActive
}

// NextTileID mints the identity for the next tile drawn in this game
func (g *Game) NextTileID() TileID {
	g.TileSeq++
	return TileID(fmt.Sprintf("t%d", g.TileSeq))
}

// BagRemaining returns the number of letters left to draw
func (g *Game) BagRemaining() int {
	return g.Inventory.Remaining()
}

// Clone returns a deep copy of the game
func (g *Game) Clone() *Game {
	c := *g
	c.Board = g.Board.Clone()
	c.Inventory = g.Inventory.Clone()
	c.Tray = g.Tray.Clone()
	c.Pending = g.Pending.Clone()
	c.Turns = make([]TurnRecord, len(g.Turns))
	for i, turn := range g.Turns {
		turn.Coordinates = append([]Coordinate(nil), turn.Coordinates...)
		c.Turns[i] = turn
	}
	return &c
}

// GameSummary is a lightweight listing entry
type GameSummary struct {
	ID           GameID    `json:"id"`
	State        GameState `json:"state"`
	Score        int       `json:"score"`
	TurnsPlayed  int       `json:"turns_played"`
	BagRemaining int       `json:"bag_remaining"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Summary returns the listing entry for the game
func (g *Game) Summary() GameSummary {
	return GameSummary{
		ID:           g.ID,
		State:        g.State,
		Score:        g.Score,
		TurnsPlayed:  len(g.Turns),
		BagRemaining: g.BagRemaining(),
		UpdatedAt:    g.UpdatedAt,
	}
}
