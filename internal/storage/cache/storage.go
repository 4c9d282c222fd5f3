// Package cache wraps a storage backend with an in-process LRU of recently
// used games
package cache

import (
	"context"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/mcoot/wordtiles/internal/model"
	"github.com/mcoot/wordtiles/internal/storage"
)

// Storage caches GetGame on top of another backend. Writes go through to
// the backend before the cache is updated.
type Storage struct {
	backend storage.Storage
	games   *lru.Cache[model.GameID, *model.Game]
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// New wraps backend with a cache holding up to size games
func New(backend storage.Storage, size int) (*Storage, error) {
	games, err := lru.New[model.GameID, *model.Game](size)
	if err != nil {
		return nil, fmt.Errorf("cache: %w", err)
	}
	return &Storage{
		backend: backend,
		games:   games,
	}, nil
}

func (s *Storage) SaveGame(ctx context.Context, game *model.Game) error {
	if err := s.backend.SaveGame(ctx, game); err != nil {
		s.games.Remove(game.ID)
		return err
	}
	s.games.Add(game.ID, game.Clone())
	return nil
}

func (s *Storage) GetGame(ctx context.Context, id model.GameID) (*model.Game, error) {
	if game, ok := s.games.Get(id); ok {
		return game.Clone(), nil
	}

	game, err := s.backend.GetGame(ctx, id)
	if err != nil {
		return nil, err
	}
	s.games.Add(id, game.Clone())
	return game, nil
}

func (s *Storage) DeleteGame(ctx context.Context, id model.GameID) error {
	s.games.Remove(id)
	return s.backend.DeleteGame(ctx, id)
}

func (s *Storage) ListGames(ctx context.Context) ([]model.GameSummary, error) {
	return s.backend.ListGames(ctx)
}

// Close purges the cache and closes the backend
func (s *Storage) Close() error {
	s.games.Purge()
	return s.backend.Close()
}

// Len returns the number of cached games
func (s *Storage) Len() int {
	return s.games.Len()
}
