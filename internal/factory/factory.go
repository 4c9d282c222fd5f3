package factory

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/mcoot/wordtiles/internal/config"
	"github.com/mcoot/wordtiles/internal/dependencies/clock"
	"github.com/mcoot/wordtiles/internal/dependencies/ids"
	"github.com/mcoot/wordtiles/internal/dependencies/random"
	"github.com/mcoot/wordtiles/internal/events"
	"github.com/mcoot/wordtiles/internal/services/auth"
	"github.com/mcoot/wordtiles/internal/services/board"
	"github.com/mcoot/wordtiles/internal/services/game"
	"github.com/mcoot/wordtiles/internal/services/scoring"
	"github.com/mcoot/wordtiles/internal/services/validation"
	"github.com/mcoot/wordtiles/internal/storage"
	"github.com/mcoot/wordtiles/internal/storage/cache"
	"github.com/mcoot/wordtiles/internal/storage/memory"
	redisstorage "github.com/mcoot/wordtiles/internal/storage/redis"
	"github.com/mcoot/wordtiles/internal/storage/sqlite"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
	StorageTypeSQLite = "sqlite"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock     clock.Clock
	Random    random.Random
	IDs       ids.Generator
	Publisher events.Publisher

	Ruleset config.Ruleset

	// Services
	BoardService      *board.Service
	ValidationService *validation.Service
	ScoringService    *scoring.Service
	AuthService       *auth.Service
	GameController    *game.Controller
}

// Config holds configuration for the application factory
type Config struct {
	// Ruleset is the rules new games are created with (optional)
	// If zero value, config.DefaultRuleset() is used
	Ruleset config.Ruleset
	// AuthConfig holds configuration for the auth service (optional)
	// If zero value, defaults to auth.DefaultConfig()
	AuthConfig auth.Config
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory", "redis" or "sqlite")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// SQLitePath is the database file (required if StorageType is "sqlite")
	SQLitePath string
	// CacheSize wraps the backend in an LRU read cache when positive
	CacheSize int
	// NATSURL publishes game events to NATS when set
	NATSURL string
}

// FromServerConfig builds a factory config from the server settings
func FromServerConfig(srv config.Server, ruleset config.Ruleset, logger *slog.Logger) Config {
	cfg := Config{
		Ruleset:     ruleset,
		Logger:      logger,
		StorageType: srv.StorageType,
		SQLitePath:  srv.SQLitePath,
		CacheSize:   srv.CacheSize,
		NATSURL:     srv.NATSURL,
	}
	if srv.StorageType == StorageTypeRedis {
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = srv.RedisURL
		cfg.RedisConfig = &redisCfg
	}
	return cfg
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	ruleset := cfg.Ruleset
	if ruleset.Letters == nil {
		ruleset = config.DefaultRuleset()
	}
	if err := ruleset.Validate(); err != nil {
		return nil, err
	}

	store, err := newStorage(cfg)
	if err != nil {
		return nil, err
	}

	var publisher events.Publisher = events.NopPublisher{}
	if cfg.NATSURL != "" {
		natsPublisher, err := events.NewNATSPublisher(cfg.NATSURL)
		if err != nil {
			_ = store.Close()
			return nil, err
		}
		publisher = natsPublisher
	}

	// Create external dependencies
	clk := clock.New()
	rnd := random.New()
	gen := ids.New()

	// Use default auth config if not provided
	authCfg := cfg.AuthConfig
	if authCfg.BcryptCost == 0 {
		authCfg = auth.DefaultConfig()
	}

	return newWithDependencies(store, publisher, clk, rnd, gen, ruleset, authCfg, logger), nil
}

// newStorage creates the configured backend, cached if requested
func newStorage(cfg Config) (storage.Storage, error) {
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	var store storage.Storage
	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	case StorageTypeSQLite:
		if cfg.SQLitePath == "" {
			return nil, errors.New("SQLitePath required when StorageType is sqlite")
		}
		sqliteStore, err := sqlite.Open(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		store = sqliteStore
	default:
		return nil, fmt.Errorf("invalid StorageType %q: must be 'memory', 'redis' or 'sqlite'", storageType)
	}

	if cfg.CacheSize > 0 {
		cached, err := cache.New(store, cfg.CacheSize)
		if err != nil {
			_ = store.Close()
			return nil, err
		}
		store = cached
	}
	return store, nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(
	store storage.Storage,
	publisher events.Publisher,
	clk clock.Clock,
	rnd random.Random,
	gen ids.Generator,
	ruleset config.Ruleset,
	authCfg auth.Config,
	logger *slog.Logger,
) *App {
	// Create services
	boardService := board.New()
	validationService := validation.New()
	scoringService := scoring.New()
	authService := auth.New(rnd, authCfg)
	gameController := game.NewController(game.ControllerConfig{
		Storage:           store,
		BoardService:      boardService,
		ValidationService: validationService,
		ScoringService:    scoringService,
		AuthService:       authService,
		Publisher:         publisher,
		IDs:               gen,
		Clock:             clk,
		Random:            rnd,
		Ruleset:           ruleset,
		Logger:            logger,
	})

	return &App{
		Storage:           store,
		Clock:             clk,
		Random:            rnd,
		IDs:               gen,
		Publisher:         publisher,
		Ruleset:           ruleset,
		BoardService:      boardService,
		ValidationService: validationService,
		ScoringService:    scoringService,
		AuthService:       authService,
		GameController:    gameController,
	}
}

// Close releases the storage backend and event connection
func (a *App) Close() error {
	var errs []error
	if closer, ok := a.Publisher.(io.Closer); ok {
		errs = append(errs, closer.Close())
	}
	errs = append(errs, a.Storage.Close())
	return errors.Join(errs...)
}
