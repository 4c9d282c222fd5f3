package model

// Board sizes the bonus layout can be scaled to
const (
	DefaultBoardSize = 15
	MinBoardSize     = 5
	MaxBoardSize     = 25
)

// referenceSize is the board the layout offsets below are written for
const referenceSize = 15

var (
	tripleLetterMajor = []int{1, 5, 9, 13}
	tripleLetterMinor = []int{5, 9}
	doubleLetterEdge  = []int{3, 11}
	doubleLetterInner = []int{2, 6, 8, 12}
	doubleLetterCross = []int{6, 8}
)

// ValidBoardSize reports whether the layout can be built for size
func ValidBoardSize(size int) bool {
	return size >= MinBoardSize && size <= MaxBoardSize && size%2 == 1
}

// layout computes the bonus for each coordinate of a board of a given size.
// Offsets are scaled from the 15x15 reference board.
type layout struct {
	size   int
	center int

	tlMajor, tlMinor []int
	dlEdge, dlInner  []int
	dlCross          []int
}

func newLayout(size int) layout {
	return layout{
		size:    size,
		center:  size / 2,
		tlMajor: scaleOffsets(tripleLetterMajor, size),
		tlMinor: scaleOffsets(tripleLetterMinor, size),
		dlEdge:  scaleOffsets(doubleLetterEdge, size),
		dlInner: scaleOffsets(doubleLetterInner, size),
		dlCross: scaleOffsets(doubleLetterCross, size),
	}
}

func scaleOffsets(offsets []int, size int) []int {
	scaled := make([]int, len(offsets))
	for i, o := range offsets {
		scaled[i] = (o*(size-1) + (referenceSize-1)/2) / (referenceSize - 1)
	}
	return scaled
}

func in(v int, set ...int) bool {
	for _, s := range set {
		if v == s {
			return true
		}
	}
	return false
}

// bonusAt applies the rules in precedence order; the first match wins
func (l layout) bonusAt(x, y int) BonusKind {
	last := l.size - 1
	c := l.center

	if (in(x, 0, last, c) && in(y, 0, last, c)) || (x == c && y == c) {
		return BonusTripleWord
	}

	if x == y || x == last-y {
		return BonusDoubleWord
	}

	if (in(x, l.tlMajor...) && in(y, l.tlMinor...)) ||
		(in(y, l.tlMajor...) && in(x, l.tlMinor...)) {
		return BonusTripleLetter
	}

	if (in(x, l.dlEdge...) && in(y, 0, c, last)) ||
		(in(y, l.dlEdge...) && in(x, 0, c, last)) ||
		(in(x, l.dlInner...) && in(y, l.dlCross...)) ||
		(in(y, l.dlInner...) && in(x, l.dlCross...)) {
		return BonusDoubleLetter
	}

	return BonusNone
}
