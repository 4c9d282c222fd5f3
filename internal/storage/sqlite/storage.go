// Package sqlite persists games in a single-file SQLite database using the
// pure-Go modernc.org/sqlite driver
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/mcoot/wordtiles/internal/model"
	"github.com/mcoot/wordtiles/internal/storage"
)

// Storage is a SQLite-backed implementation of the storage interface.
// The full game is kept as JSON; listing columns are kept alongside it.
type Storage struct {
	db *sql.DB
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Open creates or opens the database at path and runs migrations
func Open(path string) (*Storage, error) {
	if path != "" && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("sqlite: cannot expand home directory: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("sqlite: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("sqlite: cannot open database: %w", err)
	}
	// One writer at a time
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite: cannot connect to database: %w", err)
	}

	s := &Storage{db: db}
	if err := s.migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite: migration failed: %w", err)
	}

	return s, nil
}

// migrate creates the schema if it doesn't exist
func (s *Storage) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS games (
			id TEXT PRIMARY KEY,
			state TEXT NOT NULL,
			score INTEGER NOT NULL DEFAULT 0,
			turns_played INTEGER NOT NULL DEFAULT 0,
			bag_remaining INTEGER NOT NULL DEFAULT 0,
			data TEXT NOT NULL,
			created_at INTEGER NOT NULL,
			updated_at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_games_updated ON games(updated_at DESC);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection
func (s *Storage) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *Storage) SaveGame(ctx context.Context, game *model.Game) error {
	data, err := json.Marshal(game)
	if err != nil {
		return err
	}

	summary := game.Summary()
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO games (id, state, score, turns_played, bag_remaining, data, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			state = excluded.state,
			score = excluded.score,
			turns_played = excluded.turns_played,
			bag_remaining = excluded.bag_remaining,
			data = excluded.data,
			updated_at = excluded.updated_at`,
		string(game.ID), string(summary.State), summary.Score, summary.TurnsPlayed, summary.BagRemaining,
		string(data), game.CreatedAt.UnixNano(), game.UpdatedAt.UnixNano(),
	)
	if err != nil {
		return fmt.Errorf("sqlite: cannot save game: %w", err)
	}
	return nil
}

func (s *Storage) GetGame(ctx context.Context, id model.GameID) (*model.Game, error) {
	var data string
	err := s.db.QueryRowContext(ctx, "SELECT data FROM games WHERE id = ?", string(id)).Scan(&data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrGameNotFound
		}
		return nil, fmt.Errorf("sqlite: cannot load game: %w", err)
	}

	var game model.Game
	if err := json.Unmarshal([]byte(data), &game); err != nil {
		return nil, err
	}
	return &game, nil
}

func (s *Storage) DeleteGame(ctx context.Context, id model.GameID) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM games WHERE id = ?", string(id)); err != nil {
		return fmt.Errorf("sqlite: cannot delete game: %w", err)
	}
	return nil
}

func (s *Storage) ListGames(ctx context.Context) ([]model.GameSummary, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, state, score, turns_played, bag_remaining, updated_at
		FROM games
		ORDER BY updated_at DESC, id ASC`)
	if err != nil {
		return nil, fmt.Errorf("sqlite: cannot list games: %w", err)
	}
	defer rows.Close()

	summaries := []model.GameSummary{}
	for rows.Next() {
		var (
			summary   model.GameSummary
			id, state string
			updatedAt int64
		)
		if err := rows.Scan(&id, &state, &summary.Score, &summary.TurnsPlayed, &summary.BagRemaining, &updatedAt); err != nil {
			return nil, fmt.Errorf("sqlite: cannot scan game: %w", err)
		}
		summary.ID = model.GameID(id)
		summary.State = model.GameState(state)
		summary.UpdatedAt = time.Unix(0, updatedAt).UTC()
		summaries = append(summaries, summary)
	}
	return summaries, rows.Err()
}
