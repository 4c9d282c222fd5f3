package model

// Intner is the source of randomness the bag draws with
type Intner interface {
	// Intn returns a uniform value in [0, n)
	Intn(n int) int
}

// LetterInventory is the bag of letters not yet drawn.
// Letters leave the bag on draw and never come back.
type LetterInventory struct {
	Letters []rune            `json:"letters"`
	Points  [AlphabetSize]int `json:"points"`
}

// NewLetterInventory fills a bag from the distribution and shuffles it once
func NewLetterInventory(dist LetterDistribution, rnd Intner) *LetterInventory {
	letters := make([]rune, 0, dist.Total())
	for i, n := range dist.Counts {
		for range n {
			letters = append(letters, 'A'+rune(i))
		}
	}

	inv := &LetterInventory{
		Letters: letters,
		Points:  dist.Points,
	}
	inv.shuffle(rnd)
	return inv
}

// shuffle is a Fisher-Yates pass
func (inv *LetterInventory) shuffle(rnd Intner) {
	for i := len(inv.Letters) - 1; i > 0; i-- {
		j := rnd.Intn(i + 1)
		inv.Letters[i], inv.Letters[j] = inv.Letters[j], inv.Letters[i]
	}
}

// Draw removes a uniformly chosen letter. Returns false once the bag is empty.
func (inv *LetterInventory) Draw(rnd Intner) (rune, bool) {
	n := len(inv.Letters)
	if n == 0 {
		return 0, false
	}

	idx := rnd.Intn(n)
	letter := inv.Letters[idx]
	inv.Letters[idx] = inv.Letters[n-1]
	inv.Letters = inv.Letters[:n-1]
	return letter, true
}

// PointValue returns the score of a letter, 0 for anything outside A-Z
func (inv *LetterInventory) PointValue(letter rune) int {
	idx := letterIndex(letter)
	if idx < 0 {
		return 0
	}
	return inv.Points[idx]
}

// Remaining returns how many letters are left in the bag
func (inv *LetterInventory) Remaining() int {
	return len(inv.Letters)
}

// IsEmpty returns true once every letter has been drawn
func (inv *LetterInventory) IsEmpty() bool {
	return len(inv.Letters) == 0
}

// Clone returns a deep copy of the inventory
func (inv *LetterInventory) Clone() *LetterInventory {
	letters := make([]rune, len(inv.Letters))
	copy(letters, inv.Letters)
	return &LetterInventory{
		Letters: letters,
		Points:  inv.Points,
	}
}
