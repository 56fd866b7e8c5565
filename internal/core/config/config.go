// Package config handles configuration loading and validation for pal.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/colonyops/pal/internal/core/styles"
)

// Config holds the application configuration.
type Config struct {
	Log       LogConfig       `yaml:"log"`
	Theme     string          `yaml:"theme"`
	Chat      ChatConfig      `yaml:"chat"`
	Calendar  CalendarConfig  `yaml:"calendar"`
	Assistant AssistantConfig `yaml:"assistant"`
	DataDir   string          `yaml:"-"` // set by caller, not from config file
}

// LogConfig controls structured log output.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// ChatConfig controls the conversation transcript.
type ChatConfig struct {
	// MaxMessages caps the persisted transcript; the oldest messages are
	// dropped once the cap is exceeded.
	MaxMessages int `yaml:"max_messages"`
}

// CalendarConfig controls the local calendar integration.
type CalendarConfig struct {
	Enabled bool `yaml:"enabled"`
}

// AssistantConfig tunes the chat assistant's presentation.
type AssistantConfig struct {
	// ThinkingDelayMS is how long the chat view shows the thinking
	// indicator before rendering a reply. Zero disables the delay.
	ThinkingDelayMS int `yaml:"thinking_delay_ms"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Log: LogConfig{
			Level: "info",
		},
		Theme: styles.DefaultTheme,
		Chat: ChatConfig{
			MaxMessages: 500,
		},
		Calendar: CalendarConfig{
			Enabled: true,
		},
		Assistant: AssistantConfig{
			ThinkingDelayMS: 800,
		},
	}
}

// Load reads configuration from the given path and sets the data directory.
// If configPath is empty or doesn't exist, returns defaults with the provided dataDir.
func Load(configPath, dataDir string) (*Config, error) {
	cfg := DefaultConfig()
	cfg.DataDir = dataDir

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}

			// Re-set dataDir since Unmarshal may have cleared it
			cfg.DataDir = dataDir
		}
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.Log.Level == "" {
		c.Log.Level = defaults.Log.Level
	}
	if c.Theme == "" {
		c.Theme = defaults.Theme
	}
	if c.Chat.MaxMessages == 0 {
		c.Chat.MaxMessages = defaults.Chat.MaxMessages
	}
}

// LogFile returns the configured log file path, defaulting to a file inside
// the data directory so stdout stays clean for the TUI.
func (c *Config) LogFile() string {
	if c.Log.File != "" {
		return c.Log.File
	}
	return filepath.Join(c.DataDir, "logs", "pal.log")
}
