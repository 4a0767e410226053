package config

// StoreConfig holds settings for game persistence.
type StoreConfig struct {
	// Dir is the database directory. Empty selects the per-user data dir.
	Dir string `toml:"dir"`

	// InMemory discards games on exit.
	InMemory bool `toml:"in_memory"`
}

// NewStoreConfig creates a StoreConfig with default values.
func NewStoreConfig() *StoreConfig {
	return &StoreConfig{}
}
