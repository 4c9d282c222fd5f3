package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// TokenStore remembers the owner token of each game this CLI created
type TokenStore struct {
	path   string
	Tokens map[string]string `yaml:"tokens"`
}

// LoadTokenStore reads the token file. A missing file gives an empty store.
func LoadTokenStore(path string) (*TokenStore, error) {
	store := &TokenStore{path: path, Tokens: map[string]string{}}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return store, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, store); err != nil {
		return nil, fmt.Errorf("failed to parse token file %s: %w", path, err)
	}
	if store.Tokens == nil {
		store.Tokens = map[string]string{}
	}
	return store, nil
}

// Get returns the token for a game
func (s *TokenStore) Get(gameID string) (string, bool) {
	token, ok := s.Tokens[gameID]
	return token, ok
}

// Set records the token for a game and writes the file
func (s *TokenStore) Set(gameID, token string) error {
	s.Tokens[gameID] = token
	return s.save()
}

// Delete forgets a game and writes the file
func (s *TokenStore) Delete(gameID string) error {
	if _, ok := s.Tokens[gameID]; !ok {
		return nil
	}
	delete(s.Tokens, gameID)
	return s.save()
}

func (s *TokenStore) save() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return err
	}

	data, err := yaml.Marshal(s)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0600)
}
