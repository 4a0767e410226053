// chessrules-server serves the game API and websocket sessions over HTTP.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/httpx"
	"github.com/lgbarn/chessrules-go/internal/logging"
	"github.com/lgbarn/chessrules-go/internal/store"
)

const shutdownTimeout = 10 * time.Second

var (
	configFile = flag.String("config", "", "TOML configuration file")
	addr       = flag.String("addr", "", "listen address (default :8080)")
	dbDir      = flag.String("db", "", "game database directory")
	inMemory   = flag.Bool("memory", false, "keep games in memory only")
	logLevel   = flag.String("loglevel", "", "log level: debug, info, warn, error")
	logJSON    = flag.Bool("logjson", false, "write JSON logs")
)

func main() {
	flag.Parse()

	cfg, err := buildConfig(flag.Visit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(2)
	}

	logger, err := logging.FromConfig(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging: %v\n", err)
		os.Exit(2)
	}
	defer func() { _ = logger.Sync() }()

	if err := serve(cfg, logger); err != nil {
		logger.Error("server stopped", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
}

// buildConfig layers the config file, then CHESSRULES_* variables, then
// the flags reported by visit.
func buildConfig(visit func(func(*flag.Flag))) (*config.Config, error) {
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

	visit(func(f *flag.Flag) {
		switch f.Name {
		case "addr":
			cfg.Server.Addr = *addr
		case "db":
			cfg.Store.Dir = *dbDir
		case "memory":
			cfg.Store.InMemory = *inMemory
		case "loglevel":
			cfg.Log.Level = *logLevel
		case "logjson":
			cfg.Log.JSON = *logJSON
		}
	})
	return cfg, cfg.Validate()
}

func serve(cfg *config.Config, logger *zap.Logger) error {
	st, err := store.Open(store.Options{
		Dir:      cfg.Store.Dir,
		InMemory: cfg.Store.InMemory,
		Logger:   logger.Named("badger"),
	})
	if err != nil {
		return err
	}
	defer st.Close()

	srv := httpx.NewServer(st, cfg.Server, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 1)
	go func() { errc <- srv.Listen() }()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Close(shutdownCtx); err != nil {
		return err
	}
	return <-errc
}
