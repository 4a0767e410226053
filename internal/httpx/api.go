package httpx

import (
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/game"
	"github.com/lgbarn/chessrules-go/internal/processing"
	"github.com/lgbarn/chessrules-go/internal/store"
)

// ---- games ----

type createBody struct {
	FEN string `json:"fen"`
}

func (s *Server) handleCreateGame(w http.ResponseWriter, r *http.Request) {
	var body createBody
	if !decodeBody(w, r, &body) {
		return
	}

	g := game.New()
	if body.FEN != "" {
		var err error
		if g, err = game.NewFromFEN(body.FEN); err != nil {
			writeError(w, statusFor(err), err.Error())
			return
		}
	}

	rec, err := s.store.Create(g)
	if err != nil {
		s.internalError(w, "create game", err)
		return
	}
	s.logger.Info("game created", zap.String("id", rec.ID), zap.String("fen", rec.StartFEN))
	writeJSON(w, http.StatusCreated, newGameView(g, rec))
}

func (s *Server) handleListGames(w http.ResponseWriter, r *http.Request) {
	records, err := s.store.List()
	if err != nil {
		s.internalError(w, "list games", err)
		return
	}
	if records == nil {
		records = []store.Record{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"games": records})
}

func (s *Server) handleGetGame(w http.ResponseWriter, r *http.Request) {
	g, rec, err := s.store.Load(mux.Vars(r)["id"])
	if err != nil {
		s.storeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newGameView(g, rec))
}

func (s *Server) handleDeleteGame(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := s.store.Delete(id); err != nil {
		s.storeError(w, err)
		return
	}
	s.logger.Info("game deleted", zap.String("id", id))
	writeJSON(w, http.StatusOK, map[string]string{"deleted": id})
}

// ---- moves ----

func (s *Server) handleLegalMoves(w http.ResponseWriter, r *http.Request) {
	g, _, err := s.store.Load(mux.Vars(r)["id"])
	if err != nil {
		s.storeError(w, err)
		return
	}
	from := r.URL.Query().Get("from")
	moves, err := g.Moves(from)
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"from":  from,
		"moves": moveStrings(moves),
	})
}

func (s *Server) handleMove(w http.ResponseWriter, r *http.Request) {
	var body moveRequest
	if !decodeBody(w, r, &body) {
		return
	}
	m, err := body.parse()
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}

	id := mux.Vars(r)["id"]
	var info *game.MoveInfo
	view, err := s.update(id, func(g *game.Game) error {
		var err error
		info, err = g.Move(m)
		return err
	})
	if err != nil {
		s.storeError(w, err)
		return
	}
	s.logger.Debug("move played",
		zap.String("id", id),
		zap.String("move", info.UCI),
		zap.String("status", view.Status))
	writeJSON(w, http.StatusOK, map[string]any{"move": info, "game": view})
}

func (s *Server) handleUndo(w http.ResponseWriter, r *http.Request) {
	view, err := s.update(mux.Vars(r)["id"], func(g *game.Game) error {
		if !g.Undo() {
			return errors.Wrap(errors.ErrIllegalMove, "nothing to undo")
		}
		return nil
	})
	if err != nil {
		s.storeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"game": view})
}

type resignBody struct {
	Colour string `json:"colour"`
}

func (s *Server) handleResign(w http.ResponseWriter, r *http.Request) {
	var body resignBody
	if !decodeBody(w, r, &body) {
		return
	}

	view, err := s.update(mux.Vars(r)["id"], func(g *game.Game) error {
		colour := g.Turn()
		if body.Colour != "" {
			c, ok := chess.ParseColour(body.Colour)
			if !ok {
				return errors.Wrapf(errors.ErrInvalidMove, "unknown colour %q", body.Colour)
			}
			colour = c
		}
		return g.Resign(colour)
	})
	if err != nil {
		s.storeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"game": view})
}

// update loads a stored game, applies fn and saves the result. Nothing is
// saved when fn fails.
func (s *Server) update(id string, fn func(*game.Game) error) (gameView, error) {
	s.gameMu.Lock()
	defer s.gameMu.Unlock()

	g, _, err := s.store.Load(id)
	if err != nil {
		return gameView{}, err
	}
	if err := fn(g); err != nil {
		return gameView{}, err
	}
	rec, err := s.store.Save(id, g)
	if err != nil {
		return gameView{}, err
	}
	return newGameView(g, rec), nil
}

// ---- stateless validation ----

type validateBody struct {
	FEN   string   `json:"fen"`
	Moves []string `json:"moves"`
}

func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	var body validateBody
	if !decodeBody(w, r, &body) {
		return
	}
	if body.FEN == "" {
		body.FEN = engine.InitialFEN
	}
	writeJSON(w, http.StatusOK, processing.CheckPosition(body.FEN, body.Moves))
}

// ---- errors ----

func (s *Server) storeError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		s.internalError(w, "game store", err)
		return
	}
	writeError(w, status, err.Error())
}

func (s *Server) internalError(w http.ResponseWriter, op string, err error) {
	s.logger.Error(op, zap.Error(err))
	writeError(w, http.StatusInternalServerError, "internal error")
}
