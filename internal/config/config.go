// Package config provides configuration management for oneiro.
package config

import (
	"os"
	"path/filepath"

	"github.com/goccy/go-json"
)

// Defaults for report configuration.
const (
	// DefaultTopWords is the word-frequency ranking size.
	DefaultTopWords = 10
)

// DefaultRealityCheckPrompts seed the rc command until the user supplies
// their own list in settings.
var DefaultRealityCheckPrompts = []string{
	"Look at your hands. Count your fingers.",
	"Read a line of text, look away, read it again. Did it change?",
	"Try to push a finger through your palm.",
	"Check a clock twice. Is the time stable?",
	"Ask yourself: how did I get here?",
}

// Config holds the user-adjustable settings stored in settings.json.
type Config struct {
	TopWords            int      `json:"top_words"`
	RealityCheckPrompts []string `json:"reality_check_prompts,omitempty"`
	StopWordsFile       string   `json:"stop_words_file,omitempty"` // YAML override, optional
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		TopWords:            DefaultTopWords,
		RealityCheckPrompts: DefaultRealityCheckPrompts,
	}
}

// DataDir returns the oneiro data directory (~/.oneiro).
func DataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".oneiro")
}

// DBPath returns the journal database path.
func DBPath() string {
	return filepath.Join(DataDir(), "oneiro.db")
}

// SettingsPath returns the settings file path.
func SettingsPath() string {
	return filepath.Join(DataDir(), "settings.json")
}

// EnsureDataDir creates the data directory if missing.
func EnsureDataDir() error {
	return os.MkdirAll(DataDir(), 0o755)
}

// Load reads settings.json, falling back to defaults for anything unset.
// A missing file is not an error.
func Load() (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(SettingsPath())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if cfg.TopWords <= 0 {
		cfg.TopWords = DefaultTopWords
	}
	if len(cfg.RealityCheckPrompts) == 0 {
		cfg.RealityCheckPrompts = DefaultRealityCheckPrompts
	}
	return cfg, nil
}

// Save writes the configuration to settings.json.
func Save(cfg *Config) error {
	if err := EnsureDataDir(); err != nil {
		return err
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(SettingsPath(), data, 0o644)
}
