// Package config provides configuration for the chessrules tools.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "CHESSRULES_"

// Config holds all program configuration, grouped by concern.
type Config struct {
	Server ServerConfig `toml:"server"`
	Store  StoreConfig  `toml:"store"`
	Log    LogConfig    `toml:"log"`
	Batch  BatchConfig  `toml:"batch"`
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Server: *NewServerConfig(),
		Store:  *NewStoreConfig(),
		Log:    *NewLogConfig(),
		Batch:  *NewBatchConfig(),
	}
}

// Load reads a TOML file over the defaults. Keys absent from the file keep
// their default values; unknown keys are an error.
func Load(path string) (*Config, error) {
	cfg := NewConfig()
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("config %s: unknown key %q: %w", path, undecoded[0].String(), errors.ErrInvalidConfig)
	}
	return cfg, nil
}

// Validate checks every section.
func (c *Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return err
	}
	if err := c.Log.Validate(); err != nil {
		return err
	}
	return c.Batch.Validate()
}

// ApplyEnv overrides settings from CHESSRULES_* variables:
// ADDR, STORE_DIR, STORE_IN_MEMORY, LOG_LEVEL, LOG_JSON, WORKERS.
func (c *Config) ApplyEnv() error {
	return c.applyEnv(os.LookupEnv)
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvPrefix + "ADDR"); ok && v != "" {
		c.Server.Addr = v
	}
	if v, ok := lookup(EnvPrefix + "STORE_DIR"); ok && v != "" {
		c.Store.Dir = v
	}
	if v, ok := lookup(EnvPrefix + "LOG_LEVEL"); ok && v != "" {
		c.Log.Level = v
	}
	if err := envBool(lookup, "STORE_IN_MEMORY", &c.Store.InMemory); err != nil {
		return err
	}
	if err := envBool(lookup, "LOG_JSON", &c.Log.JSON); err != nil {
		return err
	}
	if v, ok := lookup(EnvPrefix + "WORKERS"); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%sWORKERS=%q: %w", EnvPrefix, v, errors.ErrInvalidConfig)
		}
		c.Batch.Workers = n
	}
	return nil
}

func envBool(lookup func(string) (string, bool), name string, dst *bool) error {
	v, ok := lookup(EnvPrefix + name)
	if !ok || v == "" {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fmt.Errorf("%s%s=%q: %w", EnvPrefix, name, v, errors.ErrInvalidConfig)
	}
	*dst = b
	return nil
}
