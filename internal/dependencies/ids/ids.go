package ids

import (
	"github.com/google/uuid"

	"github.com/mcoot/wordtiles/internal/model"
)

// Generator mints identifiers for new games
type Generator interface {
	GameID() model.GameID
}

// UUIDGenerator issues random v4 UUIDs
type UUIDGenerator struct{}

// New creates a new UUIDGenerator
func New() *UUIDGenerator {
	return &UUIDGenerator{}
}

// GameID returns a fresh game identifier
func (g *UUIDGenerator) GameID() model.GameID {
	return model.GameID(uuid.NewString())
}

// ValidGameID reports whether s looks like an ID this generator issued
func ValidGameID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}
