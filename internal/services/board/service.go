package board

import (
	"github.com/samber/lo"

	"github.com/mcoot/wordtiles/internal/model"
)

// CellState is what currently sits on a cell
type CellState string

const (
	CellEmpty     CellState = "empty"
	CellPending   CellState = "pending"
	CellConfirmed CellState = "confirmed"
)

// CellView is a read-only description of one cell for clients
type CellView struct {
	Col    int          `json:"col"`
	Row    int          `json:"row"`
	Bonus  string       `json:"bonus"`
	Style  BonusStyle   `json:"style"`
	State  CellState    `json:"state"`
	TileID model.TileID `json:"tile_id,omitempty"`
	Letter string       `json:"letter,omitempty"`
	Points int          `json:"points,omitempty"`
	Center bool         `json:"center,omitempty"`
}

// Snapshot is the board as seen by the player, pending tiles included
type Snapshot struct {
	Size  int          `json:"size"`
	Rows  [][]CellView `json:"rows"`
	Tiles int          `json:"tiles"` // Confirmed tiles on the board
}

// Service provides board operations that sit outside the model
type Service struct{}

// New creates a new BoardService
func New() *Service {
	return &Service{}
}

// ValidatePlacement checks if a coordinate is on the board and free this turn
func (s *Service) ValidatePlacement(board *model.Board, pending *model.PendingPlacement, at model.Coordinate) error {
	if !board.IsValid(at) {
		return model.ErrInvalidPosition
	}
	if board.IsOccupied(at) || pending.Has(at) {
		return model.ErrCellOccupied
	}
	return nil
}

// ParseLetter returns the upper-case form of an ASCII A-Z letter
func ParseLetter(letter rune) (rune, error) {
	upper, ok := model.NormalizeLetter(letter)
	if !ok {
		return 0, model.ErrInvalidLetter
	}
	return upper, nil
}

// Snapshot builds the client view of the board
func (s *Service) Snapshot(board *model.Board, pending *model.PendingPlacement) Snapshot {
	center := board.Center()
	rows := lo.Map(board.Cells, func(cells []model.Cell, _ int) []CellView {
		return lo.Map(cells, func(cell model.Cell, _ int) CellView {
			view := CellView{
				Col:    cell.Coordinate.Col,
				Row:    cell.Coordinate.Row,
				Bonus:  cell.Bonus.String(),
				Style:  StyleFor(cell.Bonus),
				State:  CellEmpty,
				Center: cell.Coordinate == center,
			}
			tile := cell.Occupant
			if tile != nil {
				view.State = CellConfirmed
			} else if t, ok := pending.TileAt(cell.Coordinate); ok {
				tile = t
				view.State = CellPending
			}
			if tile != nil {
				view.TileID = tile.ID
				view.Letter = string(tile.Letter)
				view.Points = tile.Points
			}
			return view
		})
	})

	return Snapshot{
		Size:  board.Size,
		Rows:  rows,
		Tiles: board.OccupiedCount(),
	}
}

// Interface for dependency injection
type ServiceInterface interface {
	ValidatePlacement(board *model.Board, pending *model.PendingPlacement, at model.Coordinate) error
	Snapshot(board *model.Board, pending *model.PendingPlacement) Snapshot
}

var _ ServiceInterface = (*Service)(nil)
