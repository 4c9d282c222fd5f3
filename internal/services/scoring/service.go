package scoring

import (
	"sort"
	"strings"

	"github.com/samber/lo"

	"github.com/mcoot/wordtiles/internal/model"
)

// ScoredLetter is one letter of a submitted word with the bonus of its cell
type ScoredLetter struct {
	Letter rune
	Points int
	Bonus  model.BonusKind
	At     model.Coordinate
}

// WordScore is the scored result of an accepted submission
type WordScore struct {
	Word    string // Full run between the ends of the placement, board tiles included
	Letters []ScoredLetter
	Score   int
}

// Service provides scoring for accepted placements
type Service struct{}

// New creates a new ScoringService
func New() *Service {
	return &Service{}
}

// ScoreWord sums the letters after letter bonuses and applies every word
// bonus. Word bonuses compound.
func (s *Service) ScoreWord(letters []ScoredLetter) int {
	sum := 0
	wordMultiplier := 1
	for _, l := range letters {
		sum += l.Points * l.Bonus.LetterMultiplier()
		wordMultiplier *= l.Bonus.WordMultiplier()
	}
	return sum * wordMultiplier
}

// ResolveWord orders the pending tiles along the axis and pairs each with
// the bonus of its cell. Confirmed tiles the word runs through are not included.
func (s *Service) ResolveWord(board *model.Board, pending *model.PendingPlacement, axis model.Axis) []ScoredLetter {
	letters := lo.Map(pending.Entries, func(p model.Placement, _ int) ScoredLetter {
		return ScoredLetter{
			Letter: p.Tile.Letter,
			Points: p.Tile.Points,
			Bonus:  board.BonusAt(p.At),
			At:     p.At,
		}
	})
	sort.Slice(letters, func(i, j int) bool {
		return axis.Along(letters[i].At) < axis.Along(letters[j].At)
	})
	return letters
}

// SpanWord reads the letters from the first to the last pending tile along
// the axis, taking confirmed tiles for the cells in between
func (s *Service) SpanWord(board *model.Board, pending *model.PendingPlacement, axis model.Axis) string {
	if pending.IsEmpty() {
		return ""
	}
	coords := pending.Coordinates()
	positions := lo.Map(coords, func(c model.Coordinate, _ int) int { return axis.Along(c) })

	var b strings.Builder
	for v := lo.Min(positions); v <= lo.Max(positions); v++ {
		at := axis.Point(coords[0], v)
		if tile, ok := pending.TileAt(at); ok {
			b.WriteRune(tile.Letter)
		} else if tile := board.Occupant(at); tile != nil {
			b.WriteRune(tile.Letter)
		}
	}
	return b.String()
}

// ScoreTurn scores the pending placement of an accepted verdict
func (s *Service) ScoreTurn(board *model.Board, pending *model.PendingPlacement, verdict model.Verdict) WordScore {
	letters := s.ResolveWord(board, pending, verdict.Axis)
	return WordScore{
		Word:    s.SpanWord(board, pending, verdict.Axis),
		Letters: letters,
		Score:   s.ScoreWord(letters),
	}
}

// Interface for dependency injection
type ServiceInterface interface {
	ScoreWord(letters []ScoredLetter) int
	ResolveWord(board *model.Board, pending *model.PendingPlacement, axis model.Axis) []ScoredLetter
	SpanWord(board *model.Board, pending *model.PendingPlacement, axis model.Axis) string
	ScoreTurn(board *model.Board, pending *model.PendingPlacement, verdict model.Verdict) WordScore
}

var _ ServiceInterface = (*Service)(nil)
