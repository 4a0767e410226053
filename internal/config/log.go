package config

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// LogConfig holds logging settings.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `toml:"level"`

	// JSON selects structured JSON output instead of console text.
	JSON bool `toml:"json"`
}

// NewLogConfig creates a LogConfig with default values.
func NewLogConfig() *LogConfig {
	return &LogConfig{Level: "info"}
}

// Validate checks the log level name.
func (l *LogConfig) Validate() error {
	switch l.Level {
	case "debug", "info", "warn", "error":
		return nil
	}
	return fmt.Errorf("unknown log level %q: %w", l.Level, errors.ErrInvalidConfig)
}
