package validation

import (
	"github.com/samber/lo"

	"github.com/mcoot/wordtiles/internal/model"
)

// MinWordTiles is the fewest tiles a single submission may place
const MinWordTiles = 2

// Service checks whether the pending placement forms a legal turn.
// It never mutates the board or the pending set.
type Service struct{}

// New creates a new ValidationService
func New() *Service {
	return &Service{}
}

// Validate runs the placement checks in order and reports the first failure
func (s *Service) Validate(board *model.Board, pending *model.PendingPlacement, firstWord bool) model.Verdict {
	coords := pending.Coordinates()
	if len(coords) == 0 {
		return model.Reject(model.RejectEmptyPlacement)
	}

	if firstWord {
		if !lo.Contains(coords, board.Center()) {
			return model.Reject(model.RejectMissingCenterAnchor)
		}
	} else if !isConnected(board, pending, coords) {
		return model.Reject(model.RejectNotConnected)
	}

	axis, ok := Collinear(coords)
	if !ok {
		return model.Reject(model.RejectNotCollinear)
	}

	if hasGap(board, pending, axis, coords) {
		return model.Reject(model.RejectGapInWord)
	}

	if len(coords) < MinWordTiles {
		return model.Reject(model.RejectWordTooShort)
	}

	return model.Accept(axis)
}

// Collinear returns the axis shared by every coordinate. A single
// coordinate counts as horizontal.
func Collinear(coords []model.Coordinate) (model.Axis, bool) {
	if len(coords) == 0 {
		return "", false
	}
	first := coords[0]

	if lo.EveryBy(coords, func(c model.Coordinate) bool { return c.Row == first.Row }) {
		return model.AxisHorizontal, true
	}
	if lo.EveryBy(coords, func(c model.Coordinate) bool { return c.Col == first.Col }) {
		return model.AxisVertical, true
	}
	return "", false
}

// Span returns the lowest and highest position of the coordinates along the axis
func Span(axis model.Axis, coords []model.Coordinate) (int, int) {
	positions := lo.Map(coords, func(c model.Coordinate, _ int) int { return axis.Along(c) })
	return lo.Min(positions), lo.Max(positions)
}

// isConnected reports whether some pending tile touches a confirmed tile
func isConnected(board *model.Board, pending *model.PendingPlacement, coords []model.Coordinate) bool {
	return lo.SomeBy(coords, func(c model.Coordinate) bool {
		for _, n := range c.Neighbors() {
			if board.IsValid(n) && board.IsOccupied(n) && !pending.Has(n) {
				return true
			}
		}
		return false
	})
}

// hasGap reports whether any cell strictly between the ends of the
// placement is empty on the board and not pending
func hasGap(board *model.Board, pending *model.PendingPlacement, axis model.Axis, coords []model.Coordinate) bool {
	lowest, highest := Span(axis, coords)
	for v := lowest + 1; v < highest; v++ {
		at := axis.Point(coords[0], v)
		if !board.IsOccupied(at) && !pending.Has(at) {
			return true
		}
	}
	return false
}

// Interface for dependency injection
type ServiceInterface interface {
	Validate(board *model.Board, pending *model.PendingPlacement, firstWord bool) model.Verdict
}

var _ ServiceInterface = (*Service)(nil)
