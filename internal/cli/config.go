package cli

import (
	"os"
	"path/filepath"
)

// Config holds CLI configuration
type Config struct {
	ServerURL string
	TokenFile string
	Output    string
	Verbose   bool
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		ServerURL: getEnvOrDefault("WORDTILES_SERVER", "http://localhost:8080"),
		TokenFile: getEnvOrDefault("WORDTILES_TOKENS", defaultTokenFile()),
		Output:    "text",
		Verbose:   false,
	}
}

func defaultTokenFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".wordtiles/tokens.yaml"
	}
	return filepath.Join(home, ".wordtiles", "tokens.yaml")
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
