// Package config handles finsage configuration loading.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultSearchPaths returns the config file search order.
// An explicit path is checked first by FindConfig.
// Then: ./config.yaml, ~/.config/finsage/config.yaml, /etc/finsage/config.yaml.
func DefaultSearchPaths() []string {
	paths := []string{"config.yaml"}

	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "finsage", "config.yaml"))
	}

	paths = append(paths, "/etc/finsage/config.yaml")
	return paths
}

// FindConfig locates a config file. If explicit is non-empty, it must exist.
// Otherwise, searches DefaultSearchPaths and returns the first that exists.
func FindConfig(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", fmt.Errorf("config file not found: %s", explicit)
		}
		return explicit, nil
	}

	for _, p := range DefaultSearchPaths() {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}

	return "", fmt.Errorf("no config file found (searched: %v)", DefaultSearchPaths())
}

// Config holds all finsage configuration.
type Config struct {
	Delegate   DelegateConfig   `yaml:"delegate"`
	Retrieval  RetrievalConfig  `yaml:"retrieval"`
	Store      StoreConfig      `yaml:"store"`
	MarketData MarketDataConfig `yaml:"market_data"`
	LogLevel   string           `yaml:"log_level"`
}

// DelegateConfig defines the optional language-model front end.
// When disabled, every utterance is answered by the rule engine.
type DelegateConfig struct {
	Enabled    bool   `yaml:"enabled"`
	Model      string `yaml:"model"`
	APIKey     string `yaml:"api_key"`
	TimeoutSec int    `yaml:"timeout_sec"` // Default: 20
}

// Timeout returns the per-attempt deadline.
func (d DelegateConfig) Timeout() time.Duration {
	if d.TimeoutSec <= 0 {
		return 20 * time.Second
	}
	return time.Duration(d.TimeoutSec) * time.Second
}

// RetrievalConfig tunes the FAQ matcher.
type RetrievalConfig struct {
	// Threshold is the minimum cosine similarity for a FAQ answer.
	// Zero means use the built-in default.
	Threshold float64 `yaml:"threshold"`
}

// StoreConfig defines profile and chat-history persistence.
type StoreConfig struct {
	Driver string `yaml:"driver"` // memory, sqlite
	Path   string `yaml:"path"`   // sqlite database file
}

// MarketDataConfig defines quote lookups.
type MarketDataConfig struct {
	Enabled bool `yaml:"enabled"`
}

// Load reads configuration from a YAML file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	// Expand environment variables
	expanded := os.ExpandEnv(string(data))

	cfg := Default()
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Default returns a default configuration.
func Default() *Config {
	return &Config{
		Delegate: DelegateConfig{
			Model:      "gemini-2.0-flash",
			TimeoutSec: 20,
		},
		Store: StoreConfig{
			Driver: "memory",
		},
		LogLevel: "info",
	}
}

// LoadEnv loads variables from a .env file into the process environment
// if one exists. Existing variables are not overwritten.
func LoadEnv() {
	_ = godotenv.Load()
}
