package model

// Tray capacity bounds
const (
	DefaultTrayCapacity = 7 // Tiles a player holds between turns
	MaxTrayCapacity     = 20
)

// ValidTrayCapacity reports whether a tray can be created with capacity
func ValidTrayCapacity(capacity int) bool {
	return capacity >= 1 && capacity <= MaxTrayCapacity
}

// Tray holds the tiles available to the player, in draw order
type Tray struct {
	Capacity int           `json:"capacity"`
	Tiles    []*LetterTile `json:"tiles"`
}

// RefillResult reports what a refill drew
type RefillResult struct {
	Drawn        []*LetterTile
	BagExhausted bool // The bag ran out before the tray was full
}

// NewTray creates an empty tray
func NewTray(capacity int) *Tray {
	return &Tray{
		Capacity: capacity,
		Tiles:    make([]*LetterTile, 0, capacity),
	}
}

// Refill draws from the inventory until the tray is full or the bag is empty.
// newID mints the identity of each drawn tile.
func (t *Tray) Refill(inv *LetterInventory, rnd Intner, newID func() TileID) RefillResult {
	var result RefillResult
	for len(t.Tiles) < t.Capacity {
		letter, ok := inv.Draw(rnd)
		if !ok {
			result.BagExhausted = true
			break
		}
		tile := NewTile(newID(), letter, inv.PointValue(letter))
		t.Tiles = append(t.Tiles, tile)
		result.Drawn = append(result.Drawn, tile)
	}
	return result
}

// Find returns the tile with the given ID
func (t *Tray) Find(id TileID) (*LetterTile, bool) {
	for _, tile := range t.Tiles {
		if tile.ID == id {
			return tile, true
		}
	}
	return nil, false
}

// Remove takes a tile out of the tray. Missing IDs are a no-op.
func (t *Tray) Remove(id TileID) (*LetterTile, bool) {
	for i, tile := range t.Tiles {
		if tile.ID == id {
			t.Tiles = append(t.Tiles[:i], t.Tiles[i+1:]...)
			return tile, true
		}
	}
	return nil, false
}

// Return puts a tile back at the end of the tray
func (t *Tray) Return(tile *LetterTile) error {
	if len(t.Tiles) >= t.Capacity {
		return ErrTrayCapacityExceeded
	}
	tile.State = TileStateTray
	t.Tiles = append(t.Tiles, tile)
	return nil
}

// Len returns the number of tiles held
func (t *Tray) Len() int {
	return len(t.Tiles)
}

// Letters returns the tray letters in order
func (t *Tray) Letters() string {
	letters := make([]rune, len(t.Tiles))
	for i, tile := range t.Tiles {
		letters[i] = tile.Letter
	}
	return string(letters)
}

// Clone returns a deep copy of the tray
func (t *Tray) Clone() *Tray {
	tiles := make([]*LetterTile, len(t.Tiles))
	for i, tile := range t.Tiles {
		tiles[i] = tile.Clone()
	}
	return &Tray{Capacity: t.Capacity, Tiles: tiles}
}
