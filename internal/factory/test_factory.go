package factory

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/mcoot/wordtiles/internal/config"
	"github.com/mcoot/wordtiles/internal/dependencies/mocks"
	"github.com/mcoot/wordtiles/internal/services/auth"
	"github.com/mcoot/wordtiles/internal/storage/memory"
	"github.com/mcoot/wordtiles/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
	MockIDs    *mocks.MockIDs
	Events     *mocks.EventRecorder
}

// NewTestApp creates an App configured for testing with mocked dependencies
func NewTestApp() *TestApp {
	return NewTestAppWithRuleset(config.DefaultRuleset())
}

// NewTestAppWithRuleset creates a test App dealing from the given rules.
// testutil.Ruleset builds one with a known bag.
func NewTestAppWithRuleset(ruleset config.Ruleset) *TestApp {
	store := memory.New()
	recorder := mocks.NewEventRecorder()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()
	mockIDs := mocks.NewMockIDs()

	app := newWithDependencies(
		store,
		recorder,
		mockClock,
		mockRandom,
		mockIDs,
		ruleset,
		auth.Config{BcryptCost: bcrypt.MinCost},
		testutil.NopLogger(),
	)

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
		MockIDs:    mockIDs,
		Events:     recorder,
	}
}
