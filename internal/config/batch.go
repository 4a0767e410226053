package config

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// BatchConfig holds settings for batch position checking.
type BatchConfig struct {
	// Workers is the number of checker goroutines. 0 means one per CPU.
	Workers int `toml:"workers"`

	// Buffer is the size of the job and result channels.
	Buffer int `toml:"buffer"`
}

// NewBatchConfig creates a BatchConfig with default values.
func NewBatchConfig() *BatchConfig {
	return &BatchConfig{Buffer: 64}
}

// Validate checks that the batch configuration is valid.
func (b *BatchConfig) Validate() error {
	if b.Workers < 0 {
		return fmt.Errorf("workers (%d) must not be negative: %w", b.Workers, errors.ErrInvalidConfig)
	}
	if b.Buffer < 0 {
		return fmt.Errorf("buffer (%d) must not be negative: %w", b.Buffer, errors.ErrInvalidConfig)
	}
	return nil
}
