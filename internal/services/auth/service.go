package auth

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/mcoot/wordtiles/internal/dependencies/random"
	"github.com/mcoot/wordtiles/internal/model"
)

const (
	tokenPrefix   = "gt_"
	tokenLength   = 32
	tokenAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
)

// Service issues and checks the owner tokens that guard game mutations
type Service struct {
	random random.Random
	cost   int
}

// Config holds configuration for the auth service
type Config struct {
	// BcryptCost is the work factor for hashing tokens
	BcryptCost int
}

// DefaultConfig returns default auth configuration
func DefaultConfig() Config {
	return Config{
		BcryptCost: bcrypt.DefaultCost,
	}
}

// New creates a new AuthService
func New(random random.Random, cfg Config) *Service {
	if cfg.BcryptCost == 0 {
		cfg.BcryptCost = DefaultConfig().BcryptCost
	}
	return &Service{
		random: random,
		cost:   cfg.BcryptCost,
	}
}

// IssueToken creates a new owner token and the hash to store with the game.
// The plain token is only ever returned here.
func (s *Service) IssueToken() (string, string, error) {
	token := tokenPrefix + s.random.String(tokenLength, tokenAlphabet)
	hash, err := bcrypt.GenerateFromPassword([]byte(token), s.cost)
	if err != nil {
		return "", "", err
	}
	return token, string(hash), nil
}

// VerifyToken checks a presented token against the game's stored hash
func (s *Service) VerifyToken(game *model.Game, token string) error {
	if token == "" || game.OwnerTokenHash == "" {
		return model.ErrInvalidToken
	}
	if err := bcrypt.CompareHashAndPassword([]byte(game.OwnerTokenHash), []byte(token)); err != nil {
		return model.ErrInvalidToken
	}
	return nil
}

// Interface for dependency injection
type ServiceInterface interface {
	IssueToken() (string, string, error)
	VerifyToken(game *model.Game, token string) error
}

var _ ServiceInterface = (*Service)(nil)
