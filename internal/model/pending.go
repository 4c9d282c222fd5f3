package model

// Placement is a tile put on the board this turn but not yet submitted
type Placement struct {
	Tile *LetterTile `json:"tile"`
	At   Coordinate  `json:"at"`
}

// PendingPlacement is the set of tiles placed during the current turn.
// No coordinate appears twice and none is occupied on the board.
type PendingPlacement struct {
	Entries []Placement `json:"entries"`
}

// NewPendingPlacement creates an empty pending set
func NewPendingPlacement() *PendingPlacement {
	return &PendingPlacement{}
}

// Add puts a tile on a free cell for this turn
func (p *PendingPlacement) Add(tile *LetterTile, at Coordinate, board *Board) error {
	if !board.IsValid(at) {
		return ErrInvalidPosition
	}
	if board.IsOccupied(at) || p.Has(at) {
		return ErrCellOccupied
	}

	tile.State = TileStatePending
	p.Entries = append(p.Entries, Placement{Tile: tile, At: at})
	return nil
}

// Remove takes a tile back off the board by identity
func (p *PendingPlacement) Remove(id TileID) (*LetterTile, bool) {
	for i, entry := range p.Entries {
		if entry.Tile.ID == id {
			p.Entries = append(p.Entries[:i], p.Entries[i+1:]...)
			return entry.Tile, true
		}
	}
	return nil, false
}

// Has returns true if a pending tile sits on the coordinate
func (p *PendingPlacement) Has(at Coordinate) bool {
	_, ok := p.TileAt(at)
	return ok
}

// TileAt returns the pending tile on the coordinate
func (p *PendingPlacement) TileAt(at Coordinate) (*LetterTile, bool) {
	for _, entry := range p.Entries {
		if entry.At == at {
			return entry.Tile, true
		}
	}
	return nil, false
}

// Coordinates returns the pending coordinates in placement order
func (p *PendingPlacement) Coordinates() []Coordinate {
	coords := make([]Coordinate, len(p.Entries))
	for i, entry := range p.Entries {
		coords[i] = entry.At
	}
	return coords
}

// Len returns the number of pending tiles
func (p *PendingPlacement) Len() int {
	return len(p.Entries)
}

// IsEmpty returns true if nothing has been placed this turn
func (p *PendingPlacement) IsEmpty() bool {
	return len(p.Entries) == 0
}

// Commit anchors every pending tile to the board and clears the set.
// All target cells are checked first so a failure leaves the board untouched.
func (p *PendingPlacement) Commit(board *Board) error {
	for _, entry := range p.Entries {
		if !board.IsValid(entry.At) {
			return ErrInvalidPosition
		}
		if board.IsOccupied(entry.At) {
			return ErrCellOccupied
		}
	}

	for _, entry := range p.Entries {
		if err := board.Place(entry.Tile, entry.At); err != nil {
			return err
		}
		entry.Tile.State = TileStateConfirmed
	}
	p.Entries = nil
	return nil
}

// Rollback returns every pending tile to the tray and clears the set
func (p *PendingPlacement) Rollback(tray *Tray) error {
	for len(p.Entries) > 0 {
		entry := p.Entries[0]
		if err := tray.Return(entry.Tile); err != nil {
			return err
		}
		p.Entries = p.Entries[1:]
	}
	p.Entries = nil
	return nil
}

// Clone returns a deep copy of the pending set
func (p *PendingPlacement) Clone() *PendingPlacement {
	if p.Entries == nil {
		return &PendingPlacement{}
	}
	entries := make([]Placement, len(p.Entries))
	for i, entry := range p.Entries {
		entries[i] = Placement{Tile: entry.Tile.Clone(), At: entry.At}
	}
	return &PendingPlacement{Entries: entries}
}
