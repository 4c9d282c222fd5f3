package model

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

// firstIntner always picks index 0
type firstIntner struct{}

func (firstIntner) Intn(int) int { return 0 }

// lastIntner always picks the highest index
type lastIntner struct{}

func (lastIntner) Intn(n int) int { return n - 1 }

type InventorySuite struct {
	suite.Suite
	dist LetterDistribution
}

func TestInventorySuite(t *testing.T) {
	suite.Run(t, new(InventorySuite))
}

func (s *InventorySuite) SetupTest() {
	s.dist = DefaultDistribution()
}

func (s *InventorySuite) TestDefaultDistributionTotal() {
	s.Equal(98, s.dist.Total())
	s.NoError(s.dist.Validate())
}

func (s *InventorySuite) TestPointTable() {
	inv := NewLetterInventory(s.dist, lastIntner{})

	expected := map[int][]rune{
		1:  []rune("AEILNORSTU"),
		2:  []rune("DG"),
		3:  []rune("BCMP"),
		4:  []rune("FHVWY"),
		5:  []rune("K"),
		8:  []rune("JX"),
		10: []rune("QZ"),
	}
	for points, letters := range expected {
		for _, letter := range letters {
			s.Equal(points, inv.PointValue(letter), "letter %c", letter)
		}
	}
}

func (s *InventorySuite) TestPointValueFoldsCase() {
	inv := NewLetterInventory(s.dist, lastIntner{})

	s.Equal(10, inv.PointValue('q'))
	s.Equal(0, inv.PointValue('?'))
	s.Equal(0, inv.PointValue('É'))
}

func (s *InventorySuite) TestDrainMatchesDistribution() {
	inv := NewLetterInventory(s.dist, lastIntner{})
	s.Equal(98, inv.Remaining())

	var counts [AlphabetSize]int
	for range 98 {
		letter, ok := inv.Draw(firstIntner{})
		s.Require().True(ok)
		counts[letter-'A']++
	}

	s.Equal(s.dist.Counts, counts)
	s.Equal(0, inv.Remaining())
	s.True(inv.IsEmpty())

	_, ok := inv.Draw(firstIntner{})
	s.False(ok)
}

func (s *InventorySuite) TestDrawRemovesChosenLetter() {
	dist := LetterDistribution{}
	dist.Counts[0] = 1 // A
	dist.Counts[1] = 1 // B
	dist.Counts[2] = 1 // C

	// lastIntner leaves the shuffle as the identity
	inv := NewLetterInventory(dist, lastIntner{})
	s.Equal([]rune("ABC"), inv.Letters)

	letter, ok := inv.Draw(firstIntner{})
	s.Require().True(ok)
	s.Equal('A', letter)
	s.Equal([]rune("CB"), inv.Letters)
}

func (s *InventorySuite) TestValidateRejectsEmptyAndNegative() {
	s.ErrorIs(LetterDistribution{}.Validate(), ErrInvalidRuleset)

	dist := DefaultDistribution()
	dist.Points[4] = -1
	s.ErrorIs(dist.Validate(), ErrInvalidRuleset)
}

func (s *InventorySuite) TestCloneIsIndependent() {
	inv := NewLetterInventory(s.dist, lastIntner{})
	clone := inv.Clone()

	_, _ = clone.Draw(firstIntner{})

	s.Equal(98, inv.Remaining())
	s.Equal(97, clone.Remaining())
}
