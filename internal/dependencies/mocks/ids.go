package mocks

import (
	"fmt"

	"github.com/mcoot/wordtiles/internal/dependencies/ids"
	"github.com/mcoot/wordtiles/internal/model"
)

// MockIDs is a mock implementation of ids.Generator for testing
type MockIDs struct {
	// GameIDs is a queue of IDs to return from GameID
	GameIDs []model.GameID
	index   int
	issued  int
}

// Ensure MockIDs implements Generator
var _ ids.Generator = (*MockIDs)(nil)

// NewMockIDs creates a new MockIDs
func NewMockIDs() *MockIDs {
	return &MockIDs{}
}

// GameID returns the next queued ID, or game-N once the queue is empty
func (m *MockIDs) GameID() model.GameID {
	m.issued++
	if m.index < len(m.GameIDs) {
		id := m.GameIDs[m.index]
		m.index++
		return id
	}
	return model.GameID(fmt.Sprintf("game-%d", m.issued))
}

// QueueGameID adds values to the GameID result queue
func (m *MockIDs) QueueGameID(values ...model.GameID) {
	m.GameIDs = append(m.GameIDs, values...)
}
