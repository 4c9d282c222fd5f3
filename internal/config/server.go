package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// EnvPrefix is prepended to every server environment variable
const EnvPrefix = "WORDTILES_"

// Server holds process-level settings for the wordtiles server
type Server struct {
	Host     string
	Port     int
	LogLevel slog.Level

	// StorageType selects the storage backend ("memory", "redis" or "sqlite")
	StorageType string
	RedisURL    string
	SQLitePath  string
	// CacheSize wraps the backend in an LRU of this many games when positive
	CacheSize int

	// NATSURL enables event publishing when set
	NATSURL string

	// RulesetPath overrides the ruleset search when set
	RulesetPath string
}

// DefaultServer returns settings for a local in-memory server
func DefaultServer() Server {
	return Server{
		Host:        "",
		Port:        8080,
		LogLevel:    slog.LevelInfo,
		StorageType: "memory",
		SQLitePath:  "wordtiles.db",
	}
}

// LoadServer reads settings from the environment. If envFile exists its
// values are loaded first; variables already set in the environment win.
func LoadServer(envFile string) (Server, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Server{}, fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}

	cfg := DefaultServer()
	cfg.Host = getEnv("HOST", cfg.Host)
	cfg.StorageType = strings.ToLower(getEnv("STORAGE_TYPE", cfg.StorageType))
	cfg.RedisURL = getEnv("REDIS_URL", cfg.RedisURL)
	cfg.SQLitePath = getEnv("SQLITE_PATH", cfg.SQLitePath)
	cfg.NATSURL = getEnv("NATS_URL", cfg.NATSURL)
	cfg.RulesetPath = getEnv("RULESET", cfg.RulesetPath)

	var err error
	if cfg.Port, err = getEnvInt("PORT", cfg.Port); err != nil {
		return Server{}, err
	}
	if cfg.CacheSize, err = getEnvInt("CACHE_SIZE", cfg.CacheSize); err != nil {
		return Server{}, err
	}
	if level := getEnv("LOG_LEVEL", ""); level != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(level)); err != nil {
			return Server{}, fmt.Errorf("%sLOG_LEVEL: %w", EnvPrefix, err)
		}
	}

	if cfg.StorageType == "redis" && cfg.RedisURL == "" {
		return Server{}, fmt.Errorf("%sREDIS_URL required when %sSTORAGE_TYPE=redis", EnvPrefix, EnvPrefix)
	}

	return cfg, nil
}

// Addr returns the listen address
func (s Server) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// getEnv returns the prefixed environment variable or a default
func getEnv(key, defaultVal string) string {
	if val := os.Getenv(EnvPrefix + key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) (int, error) {
	val := getEnv(key, "")
	if val == "" {
		return defaultVal, nil
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("%s%s: %w", EnvPrefix, key, err)
	}
	return n, nil
}
