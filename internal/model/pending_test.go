package model

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type PendingSuite struct {
	suite.Suite
	board   *Board
	tray    *Tray
	pending *PendingPlacement
}

func TestPendingSuite(t *testing.T) {
	suite.Run(t, new(PendingSuite))
}

func (s *PendingSuite) SetupTest() {
	board, err := NewBoard(DefaultBoardSize)
	s.Require().NoError(err)
	s.board = board
	s.tray = NewTray(DefaultTrayCapacity)
	s.pending = NewPendingPlacement()
}

// take moves a fresh tile through the tray the way the controller does
func (s *PendingSuite) take(id TileID, letter rune) *LetterTile {
	s.Require().NoError(s.tray.Return(NewTile(id, letter, 1)))
	tile, ok := s.tray.Remove(id)
	s.Require().True(ok)
	return tile
}

func (s *PendingSuite) TestAddMarksPending() {
	tile := s.take("t1", 'A')

	s.Require().NoError(s.pending.Add(tile, At(7, 7), s.board))

	s.Equal(TileStatePending, tile.State)
	s.True(s.pending.Has(At(7, 7)))
	s.False(s.board.IsOccupied(At(7, 7)))
}

func (s *PendingSuite) TestAddRejectsDuplicateCoordinate() {
	s.Require().NoError(s.pending.Add(s.take("t1", 'A'), At(7, 7), s.board))

	other := s.take("t2", 'B')
	err := s.pending.Add(other, At(7, 7), s.board)

	s.ErrorIs(err, ErrCellOccupied)
	s.Equal(1, s.pending.Len())
	s.Equal(TileStateTray, other.State)
}

func (s *PendingSuite) TestAddRejectsBoardOccupied() {
	s.Require().NoError(s.board.Place(NewTile("t0", 'Z', 10), At(7, 7)))

	err := s.pending.Add(s.take("t1", 'A'), At(7, 7), s.board)
	s.ErrorIs(err, ErrCellOccupied)
	s.True(s.pending.IsEmpty())
}

func (s *PendingSuite) TestAddRejectsOffBoard() {
	err := s.pending.Add(s.take("t1", 'A'), At(-1, 7), s.board)
	s.ErrorIs(err, ErrInvalidPosition)
}

func (s *PendingSuite) TestRemoveByIdentity() {
	s.Require().NoError(s.pending.Add(s.take("t1", 'A'), At(7, 7), s.board))
	s.Require().NoError(s.pending.Add(s.take("t2", 'B'), At(8, 7), s.board))

	tile, ok := s.pending.Remove("t1")
	s.Require().True(ok)
	s.Equal('A', tile.Letter)
	s.Equal([]Coordinate{At(8, 7)}, s.pending.Coordinates())

	_, ok = s.pending.Remove("t1")
	s.False(ok)
}

func (s *PendingSuite) TestCommitAnchorsTiles() {
	first := s.take("t1", 'H')
	second := s.take("t2", 'I')
	s.Require().NoError(s.pending.Add(first, At(6, 7), s.board))
	s.Require().NoError(s.pending.Add(second, At(7, 7), s.board))

	s.Require().NoError(s.pending.Commit(s.board))

	s.True(s.pending.IsEmpty())
	s.True(first.IsConfirmed())
	s.True(second.IsConfirmed())
	s.Same(first, s.board.Occupant(At(6, 7)))
	s.Same(second, s.board.Occupant(At(7, 7)))
}

func (s *PendingSuite) TestCommitIsAllOrNothing() {
	s.Require().NoError(s.pending.Add(s.take("t1", 'A'), At(6, 7), s.board))
	s.Require().NoError(s.pending.Add(s.take("t2", 'B'), At(7, 7), s.board))
	s.Require().NoError(s.board.Place(NewTile("t0", 'Z', 10), At(7, 7)))

	err := s.pending.Commit(s.board)

	s.ErrorIs(err, ErrCellOccupied)
	s.False(s.board.IsOccupied(At(6, 7)))
	s.Equal(2, s.pending.Len())
}

func (s *PendingSuite) TestRollbackRestoresTray() {
	for _, letter := range "CAT" {
		s.Require().NoError(s.tray.Return(NewTile(TileID(string(letter)), letter, 1)))
	}
	s.Require().Equal("CAT", s.tray.Letters())

	c, _ := s.tray.Remove("C")
	a, _ := s.tray.Remove("A")
	s.Require().NoError(s.pending.Add(c, At(7, 7), s.board))
	s.Require().NoError(s.pending.Add(a, At(8, 7), s.board))

	s.Require().NoError(s.pending.Rollback(s.tray))

	s.True(s.pending.IsEmpty())
	s.ElementsMatch([]rune("CAT"), []rune(s.tray.Letters()))
	for _, tile := range s.tray.Tiles {
		s.Equal(TileStateTray, tile.State)
	}
	s.True(s.board.IsEmpty())
}
