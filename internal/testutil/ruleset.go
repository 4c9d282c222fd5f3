package testutil

import (
	"github.com/mcoot/wordtiles/internal/config"
	"github.com/mcoot/wordtiles/internal/model"
)

// Ruleset returns the default rules with a bag holding exactly the given
// letters. Point values stay at their defaults.
//
// With mocks.MockRandom's default behaviour the bag is not shuffled and
// draws come off the end, so a fresh tray holds the letters in reverse
// alphabetical order: Ruleset("AACHITT") deals "TTIHCAA".
func Ruleset(letters string) config.Ruleset {
	rs := config.DefaultRuleset()
	counts := make(map[string]int, model.AlphabetSize)
	for _, r := range letters {
		if upper, ok := model.NormalizeLetter(r); ok {
			counts[string(upper)]++
		}
	}
	for key, rule := range rs.Letters {
		rule.Count = counts[key]
		rs.Letters[key] = rule
	}
	return rs
}
