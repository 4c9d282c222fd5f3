package model

// Cell is a single square of the board
type Cell struct {
	Coordinate Coordinate  `json:"coordinate"`
	Bonus      BonusKind   `json:"bonus"`
	Occupant   *LetterTile `json:"occupant,omitempty"` // nil when empty
}

// Board is the square grid of cells for a game. Bonuses are fixed at
// construction; occupancy only changes through Place.
type Board struct {
	Size  int      `json:"size"`
	Cells [][]Cell `json:"cells"` // Row-major: Cells[row][col]
}

// NewBoard creates an empty board with the bonus layout for its size
func NewBoard(size int) (*Board, error) {
	if !ValidBoardSize(size) {
		return nil, ErrInvalidBoardSize
	}

	l := newLayout(size)
	cells := make([][]Cell, size)
	for row := range cells {
		cells[row] = make([]Cell, size)
		for col := range cells[row] {
			cells[row][col] = Cell{
				Coordinate: At(col, row),
				Bonus:      l.bonusAt(col, row),
			}
		}
	}

	return &Board{
		Size:  size,
		Cells: cells,
	}, nil
}

// IsValid returns true if the coordinate is within bounds
func (b *Board) IsValid(c Coordinate) bool {
	return c.Row >= 0 && c.Row < b.Size && c.Col >= 0 && c.Col < b.Size
}

// IsOccupied returns true if a confirmed tile sits on the cell.
// Coordinates off the board report as occupied.
func (b *Board) IsOccupied(c Coordinate) bool {
	if !b.IsValid(c) {
		return true
	}
	return b.Cells[c.Row][c.Col].Occupant != nil
}

// BonusAt returns the bonus of the cell, or BonusNone off the board
func (b *Board) BonusAt(c Coordinate) BonusKind {
	if !b.IsValid(c) {
		return BonusNone
	}
	return b.Cells[c.Row][c.Col].Bonus
}

// Occupant returns the tile on the cell, or nil if empty or off the board
func (b *Board) Occupant(c Coordinate) *LetterTile {
	if !b.IsValid(c) {
		return nil
	}
	return b.Cells[c.Row][c.Col].Occupant
}

// Center returns the coordinate the first word must cover
func (b *Board) Center() Coordinate {
	return At(b.Size/2, b.Size/2)
}

// Place puts a tile on an empty cell. It is the only way occupancy changes.
func (b *Board) Place(tile *LetterTile, c Coordinate) error {
	if !b.IsValid(c) {
		return ErrInvalidPosition
	}
	if b.IsOccupied(c) {
		return ErrCellOccupied
	}
	b.Cells[c.Row][c.Col].Occupant = tile
	return nil
}

// OccupiedCount returns the number of cells holding a tile
func (b *Board) OccupiedCount() int {
	count := 0
	for row := range b.Cells {
		for col := range b.Cells[row] {
			if b.Cells[row][col].Occupant != nil {
				count++
			}
		}
	}
	return count
}

// IsEmpty returns true if no tile has been placed yet
func (b *Board) IsEmpty() bool {
	return b.OccupiedCount() == 0
}

// Clone returns a deep copy of the board
func (b *Board) Clone() *Board {
	cells := make([][]Cell, len(b.Cells))
	for row := range b.Cells {
		cells[row] = make([]Cell, len(b.Cells[row]))
		for col, cell := range b.Cells[row] {
			cell.Occupant = cell.Occupant.Clone()
			cells[row][col] = cell
		}
	}
	return &Board{Size: b.Size, Cells: cells}
}
