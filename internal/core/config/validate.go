package config

import (
	"fmt"
	"os"

	"github.com/hay-kot/criterio"
	"github.com/rs/zerolog"

	"github.com/colonyops/pal/internal/core/styles"
)

// Validate checks that the configuration is structurally valid.
func (c *Config) Validate() error {
	return criterio.ValidateStruct(
		criterio.Run("data_dir", c.DataDir, notEmpty),
		criterio.Run("data_dir", c.DataDir, isDirectoryOrNotExist),
		criterio.Run("log.level", c.Log.Level, validLogLevel),
		criterio.Run("theme", c.Theme, validTheme),
		criterio.Run("chat.max_messages", c.Chat.MaxMessages, atLeast(1)),
		criterio.Run("assistant.thinking_delay_ms", c.Assistant.ThinkingDelayMS, atLeast(0)),
	)
}

func notEmpty(s string) error {
	if s == "" {
		return fmt.Errorf("cannot be empty")
	}
	return nil
}

// isDirectoryOrNotExist validates that a path is a directory or doesn't exist.
func isDirectoryOrNotExist(path string) error {
	if path == "" {
		return nil
	}
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil // will be created
	}
	if err != nil {
		return fmt.Errorf("cannot access: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("exists but is not a directory")
	}
	return nil
}

func validLogLevel(level string) error {
	if _, err := zerolog.ParseLevel(level); err != nil {
		return fmt.Errorf("unknown log level %q", level)
	}
	return nil
}

func validTheme(name string) error {
	if _, ok := styles.GetPalette(name); !ok {
		return fmt.Errorf("unknown theme %q (available: %v)", name, styles.ThemeNames())
	}
	return nil
}

func atLeast(min int) func(int) error {
	return func(v int) error {
		if v < min {
			return fmt.Errorf("must be at least %d", min)
		}
		return nil
	}
}
