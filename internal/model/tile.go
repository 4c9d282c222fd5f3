package model

// TileID uniquely identifies a tile within a game
type TileID string

// TileState is the lifecycle position of a tile
type TileState string

const (
	TileStateTray      TileState = "tray"      // In the player's tray
	TileStatePending   TileState = "pending"   // On the board, not yet submitted
	TileStateConfirmed TileState = "confirmed" // Permanently on the board
)

// LetterTile is a single lettered tile drawn from the bag
type LetterTile struct {
	ID     TileID    `json:"id"`
	Letter rune      `json:"letter"`
	Points int       `json:"points"`
	State  TileState `json:"state"`
}

// NewTile creates a tile in the tray state
func NewTile(id TileID, letter rune, points int) *LetterTile {
	return &LetterTile{
		ID:     id,
		Letter: letter,
		Points: points,
		State:  TileStateTray,
	}
}

// IsConfirmed returns true once the tile is permanently on the board
func (t *LetterTile) IsConfirmed() bool {
	return t.State == TileStateConfirmed
}

// Clone returns an independent copy of the tile
func (t *LetterTile) Clone() *LetterTile {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}
