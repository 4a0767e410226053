// Package httpx serves the rules engine and stored games over HTTP.
package httpx

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/logging"
	"github.com/lgbarn/chessrules-go/internal/store"
)

const apiCSP = "default-src 'none'; frame-ancestors 'none'; base-uri 'none'"

// Server wires the HTTP layer to the game store.
type Server struct {
	// gameMu serializes load-move-save sequences on stored games.
	gameMu   sync.Mutex
	store    *store.Store
	cfg      config.ServerConfig
	logger   *zap.Logger
	upgrader websocket.Upgrader

	srvMu sync.Mutex
	srv   *http.Server
}

// NewServer builds a Server over st.
func NewServer(st *store.Store, cfg config.ServerConfig, logger *zap.Logger) *Server {
	s := &Server{
		store:  st,
		cfg:    cfg,
		logger: logging.OrNop(logger),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
	if len(cfg.AllowedOrigins) > 0 {
		s.upgrader.CheckOrigin = s.originAllowed
	}
	return s
}

// Handler returns the full handler chain: recovery, access log, CORS, routes.
func (s *Server) Handler() http.Handler {
	stdLog := zap.NewStdLog(s.logger.Named("http"))

	var h http.Handler = s.routes()
	if len(s.cfg.AllowedOrigins) > 0 {
		h = handlers.CORS(
			handlers.AllowedOrigins(s.cfg.AllowedOrigins),
			handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodDelete}),
			handlers.AllowedHeaders([]string{"Content-Type"}),
		)(h)
	}
	h = handlers.LoggingHandler(stdLog.Writer(), h)
	return handlers.RecoveryHandler(
		handlers.RecoveryLogger(stdLog),
		handlers.PrintRecoveryStack(true),
	)(h)
}

// Listen starts the HTTP server and blocks until it stops.
func (s *Server) Listen() error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       s.cfg.ReadTimeout,
		WriteTimeout:      s.cfg.WriteTimeout,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 16,
	}

	s.srvMu.Lock()
	s.srv = srv
	s.srvMu.Unlock()
	defer func() {
		s.srvMu.Lock()
		s.srv = nil
		s.srvMu.Unlock()
	}()

	s.logger.Info("HTTP listening", zap.String("addr", s.cfg.Addr))
	err := srv.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Close attempts a graceful shutdown of the HTTP server.
func (s *Server) Close(ctx context.Context) error {
	s.srvMu.Lock()
	srv := s.srv
	s.srvMu.Unlock()
	if srv == nil {
		return nil
	}
	return srv.Shutdown(ctx)
}

func (s *Server) routes() *mux.Router {
	r := mux.NewRouter()
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		applyAPIHeaders(w.Header())
		writeError(w, http.StatusNotFound, "not found")
	})

	r.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.HandleFunc("/ws", s.handleWebsocket)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/games", s.withJSON(s.handleCreateGame)).Methods(http.MethodPost)
	api.HandleFunc("/games", s.withJSON(s.handleListGames)).Methods(http.MethodGet)
	api.HandleFunc("/games/{id}", s.withJSON(s.handleGetGame)).Methods(http.MethodGet)
	api.HandleFunc("/games/{id}", s.withJSON(s.handleDeleteGame)).Methods(http.MethodDelete)
	api.HandleFunc("/games/{id}/moves", s.withJSON(s.handleLegalMoves)).Methods(http.MethodGet)
	api.HandleFunc("/games/{id}/moves", s.withJSON(s.handleMove)).Methods(http.MethodPost)
	api.HandleFunc("/games/{id}/undo", s.withJSON(s.handleUndo)).Methods(http.MethodPost)
	api.HandleFunc("/games/{id}/resign", s.withJSON(s.handleResign)).Methods(http.MethodPost)
	api.HandleFunc("/validate", s.withJSON(s.handleValidate)).Methods(http.MethodPost)
	return r
}

func (s *Server) originAllowed(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	for _, o := range s.cfg.AllowedOrigins {
		if o == "*" || o == origin {
			return true
		}
	}
	return false
}
