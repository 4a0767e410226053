// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chessrules-go/internal/config"
)

var (
	// Position options
	fenFlag   = flag.String("fen", "", "Starting position in FEN (default: initial position)")
	movesFlag = flag.String("moves", "", "Space separated moves to play, e.g. \"e2e4 e7e5\"")
	legalFrom = flag.String("legal", "", "List legal moves from this square only")

	// Batch checking
	batchFile = flag.String("batch", "", "Check a file of \"FEN [; moves]\" lines (- for stdin)")
	failFast  = flag.Bool("failfast", false, "Stop a batch at the first invalid line")
	workers   = flag.Int("workers", 0, "Number of worker goroutines (0 = one per CPU)")

	// Output options
	jsonOutput = flag.Bool("J", false, "Output in JSON format")
	lineLength = flag.Int("w", 80, "Maximum line length for move lists")
	outputFile = flag.String("o", "", "Output file (default: stdout)")

	// Configuration and logging
	configFile = flag.String("config", "", "TOML configuration file")
	logLevel   = flag.String("loglevel", "", "Log level: debug, info, warn, error")
	verbose    = flag.Bool("v", false, "Verbose logging (same as -loglevel debug)")

	// Other options
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// loadConfig reads the -config file, if any, then environment overrides.
func loadConfig() (*config.Config, error) {
	cfg := config.NewConfig()
	if *configFile != "" {
		var err error
		if cfg, err = config.Load(*configFile); err != nil {
			return nil, err
		}
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyFlags applies command-line flags over the loaded configuration.
func applyFlags(cfg *config.Config) {
	if *workers > 0 {
		cfg.Batch.Workers = *workers
	}
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}
	if *verbose {
		cfg.Log.Level = "debug"
	}
}
