package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/mcoot/wordtiles/internal/model"
)

//go:embed defaults/ruleset.yaml
var defaultRulesetYAML []byte

// RulesetFile is the file name looked up in the user and local config directories
const RulesetFile = "ruleset.yaml"

// LetterRule is the bag count and point value of one letter
type LetterRule struct {
	Count  int `yaml:"count"`
	Points int `yaml:"points"`
}

// Ruleset holds the rules a new game is created with
type Ruleset struct {
	BoardSize    int                   `yaml:"board_size"`
	TrayCapacity int                   `yaml:"tray_capacity"`
	Letters      map[string]LetterRule `yaml:"letters"`
}

// DefaultRuleset returns the standard rules without touching the filesystem
func DefaultRuleset() Ruleset {
	dist := model.DefaultDistribution()
	letters := make(map[string]LetterRule, model.AlphabetSize)
	for i := range model.AlphabetSize {
		letters[string('A'+rune(i))] = LetterRule{
			Count:  dist.Counts[i],
			Points: dist.Points[i],
		}
	}
	return Ruleset{
		BoardSize:    model.DefaultBoardSize,
		TrayCapacity: model.DefaultTrayCapacity,
		Letters:      letters,
	}
}

// Distribution converts the letter table into the model's form
func (r Ruleset) Distribution() (model.LetterDistribution, error) {
	var dist model.LetterDistribution
	var seen [model.AlphabetSize]bool
	if len(r.Letters) != model.AlphabetSize {
		return dist, fmt.Errorf("%w: expected %d letters, got %d", model.ErrInvalidRuleset, model.AlphabetSize, len(r.Letters))
	}
	for key, rule := range r.Letters {
		runes := []rune(key)
		if len(runes) != 1 {
			return dist, fmt.Errorf("%w: letter key %q", model.ErrInvalidRuleset, key)
		}
		letter, ok := model.NormalizeLetter(runes[0])
		if !ok {
			return dist, fmt.Errorf("%w: letter key %q", model.ErrInvalidRuleset, key)
		}
		idx := letter - 'A'
		if seen[idx] {
			return dist, fmt.Errorf("%w: letter %c listed twice", model.ErrInvalidRuleset, letter)
		}
		seen[idx] = true
		dist.Counts[idx] = rule.Count
		dist.Points[idx] = rule.Points
	}
	if err := dist.Validate(); err != nil {
		return dist, err
	}
	return dist, nil
}

// Validate checks the ruleset can build a game
func (r Ruleset) Validate() error {
	if !model.ValidBoardSize(r.BoardSize) {
		return fmt.Errorf("%w: %d (odd sizes %d-%d)", model.ErrInvalidBoardSize, r.BoardSize, model.MinBoardSize, model.MaxBoardSize)
	}
	if !model.ValidTrayCapacity(r.TrayCapacity) {
		return fmt.Errorf("%w: tray capacity %d (1-%d)", model.ErrInvalidRuleset, r.TrayCapacity, model.MaxTrayCapacity)
	}
	_, err := r.Distribution()
	return err
}

// LoadRuleset loads the game rules.
// Search order: customPath -> ~/.wordtiles/ruleset.yaml -> ./configs/ruleset.yaml -> embedded default
func LoadRuleset(customPath string) (Ruleset, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Ruleset{}, fmt.Errorf("failed to read ruleset %s: %w", customPath, err)
		}
		return parseRuleset(data, customPath)
	}

	candidates := []string{filepath.Join("configs", RulesetFile)}
	if userPath := userConfigPath(RulesetFile); userPath != "" {
		candidates = append([]string{userPath}, candidates...)
	}
	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return Ruleset{}, fmt.Errorf("failed to read ruleset %s: %w", path, err)
		}
		// The first file found wins, even when it is broken
		return parseRuleset(data, path)
	}

	return parseRuleset(defaultRulesetYAML, "embedded default")
}

func parseRuleset(data []byte, source string) (Ruleset, error) {
	var rs Ruleset
	if err := yaml.Unmarshal(data, &rs); err != nil {
		return Ruleset{}, fmt.Errorf("failed to parse ruleset %s: %w", source, err)
	}
	if err := rs.Validate(); err != nil {
		return Ruleset{}, fmt.Errorf("ruleset %s: %w", source, err)
	}
	return rs, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".wordtiles", filename)
}
