package model

import "fmt"

// BonusKind is the fixed score multiplier carried by a cell
type BonusKind int

const (
	BonusNone BonusKind = iota
	BonusDoubleLetter
	BonusTripleLetter
	BonusDoubleWord
	BonusTripleWord
)

var bonusNames = map[BonusKind]string{
	BonusNone:         "none",
	BonusDoubleLetter: "double_letter",
	BonusTripleLetter: "triple_letter",
	BonusDoubleWord:   "double_word",
	BonusTripleWord:   "triple_word",
}

func (b BonusKind) String() string {
	if name, ok := bonusNames[b]; ok {
		return name
	}
	return fmt.Sprintf("bonus(%d)", int(b))
}

// MarshalText encodes the bonus by name so stored games stay readable
func (b BonusKind) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// UnmarshalText decodes a bonus name
func (b *BonusKind) UnmarshalText(text []byte) error {
	for kind, name := range bonusNames {
		if name == string(text) {
			*b = kind
			return nil
		}
	}
	return fmt.Errorf("unknown bonus kind %q", string(text))
}

// LetterMultiplier returns the factor applied to a letter on this cell
func (b BonusKind) LetterMultiplier() int {
	switch b {
	case BonusDoubleLetter:
		return 2
	case BonusTripleLetter:
		return 3
	default:
		return 1
	}
}

// WordMultiplier returns the factor applied to a word covering this cell
func (b BonusKind) WordMultiplier() int {
	switch b {
	case BonusDoubleWord:
		return 2
	case BonusTripleWord:
		return 3
	default:
		return 1
	}
}
