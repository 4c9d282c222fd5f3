package model

import "fmt"

// AlphabetSize is the number of letters a distribution covers (A-Z)
const AlphabetSize = 26

// LetterDistribution describes how many of each letter the bag starts with
// and what each letter is worth. Index 0 is 'A'.
type LetterDistribution struct {
	Counts [AlphabetSize]int `json:"counts" yaml:"counts"`
	Points [AlphabetSize]int `json:"points" yaml:"points"`
}

// DefaultDistribution returns the standard 98-letter English set
func DefaultDistribution() LetterDistribution {
	return LetterDistribution{
		//       A  B  C  D  E   F  G  H  I  J  K  L  M  N  O  P  Q  R  S  T  U  V  W  X  Y  Z
		Counts: [AlphabetSize]int{9, 2, 2, 4, 12, 2, 3, 2, 9, 1, 1, 4, 2, 6, 8, 2, 1, 6, 4, 6, 4, 2, 2, 1, 2, 1},
		Points: [AlphabetSize]int{1, 3, 3, 2, 1, 4, 2, 4, 1, 8, 5, 1, 3, 1, 1, 3, 10, 1, 1, 1, 1, 4, 4, 8, 4, 10},
	}
}

// Total returns the number of letters in a full bag
func (d LetterDistribution) Total() int {
	total := 0
	for _, n := range d.Counts {
		total += n
	}
	return total
}

// Validate checks the tables are usable
func (d LetterDistribution) Validate() error {
	for i := range AlphabetSize {
		if d.Counts[i] < 0 {
			return fmt.Errorf("%w: negative count for %c", ErrInvalidRuleset, 'A'+rune(i))
		}
		if d.Points[i] < 0 {
			return fmt.Errorf("%w: negative points for %c", ErrInvalidRuleset, 'A'+rune(i))
		}
	}
	if d.Total() == 0 {
		return fmt.Errorf("%w: distribution has no letters", ErrInvalidRuleset)
	}
	return nil
}

// letterIndex maps a letter to its table index, folding lower case.
// Returns -1 for anything outside A-Z.
func letterIndex(letter rune) int {
	switch {
	case letter >= 'A' && letter <= 'Z':
		return int(letter - 'A')
	case letter >= 'a' && letter <= 'z':
		return int(letter - 'a')
	default:
		return -1
	}
}

// NormalizeLetter returns the upper-case form of an A-Z letter
func NormalizeLetter(letter rune) (rune, bool) {
	idx := letterIndex(letter)
	if idx < 0 {
		return 0, false
	}
	return 'A' + rune(idx), true
}
