package model

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"
)

type TraySuite struct {
	suite.Suite
	inv  *LetterInventory
	tray *Tray
	seq  int
}

func TestTraySuite(t *testing.T) {
	suite.Run(t, new(TraySuite))
}

func (s *TraySuite) SetupTest() {
	s.inv = NewLetterInventory(DefaultDistribution(), lastIntner{})
	s.tray = NewTray(DefaultTrayCapacity)
	s.seq = 0
}

func (s *TraySuite) nextID() TileID {
	s.seq++
	return TileID(fmt.Sprintf("t%d", s.seq))
}

func (s *TraySuite) TestRefillFillsToCapacity() {
	result := s.tray.Refill(s.inv, firstIntner{}, s.nextID)

	s.Len(result.Drawn, 7)
	s.False(result.BagExhausted)
	s.Equal(7, s.tray.Len())
	s.Equal(91, s.inv.Remaining())
	for _, tile := range s.tray.Tiles {
		s.Equal(TileStateTray, tile.State)
		s.Equal(s.inv.PointValue(tile.Letter), tile.Points)
	}
}

func (s *TraySuite) TestRefillTopsUpOnly() {
	s.tray.Refill(s.inv, firstIntner{}, s.nextID)
	s.tray.Remove("t1")
	s.tray.Remove("t2")

	result := s.tray.Refill(s.inv, firstIntner{}, s.nextID)

	s.Len(result.Drawn, 2)
	s.Equal(7, s.tray.Len())
	s.Equal(89, s.inv.Remaining())
}

func (s *TraySuite) TestRefillStopsWhenBagRunsOut() {
	dist := LetterDistribution{}
	dist.Counts[0] = 3
	inv := NewLetterInventory(dist, lastIntner{})

	result := s.tray.Refill(inv, firstIntner{}, s.nextID)

	s.True(result.BagExhausted)
	s.Len(result.Drawn, 3)
	s.Equal(3, s.tray.Len())
	s.Equal("AAA", s.tray.Letters())
}

func (s *TraySuite) TestRemoveMissingIsNoop() {
	s.tray.Refill(s.inv, firstIntner{}, s.nextID)

	tile, ok := s.tray.Remove("nope")
	s.False(ok)
	s.Nil(tile)
	s.Equal(7, s.tray.Len())
}

func (s *TraySuite) TestReturnAppends() {
	tray := NewTray(2)
	tile := NewTile("t9", 'Q', 10)
	tile.State = TileStatePending

	s.Require().NoError(tray.Return(tile))

	s.Equal(1, tray.Len())
	s.Equal(TileStateTray, tile.State)
}

func (s *TraySuite) TestReturnOverCapacity() {
	tray := NewTray(1)
	s.Require().NoError(tray.Return(NewTile("t1", 'A', 1)))

	err := tray.Return(NewTile("t2", 'B', 3))
	s.ErrorIs(err, ErrTrayCapacityExceeded)
	s.Equal(1, tray.Len())
}
