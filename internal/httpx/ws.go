package httpx

import (
	"net/http"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/game"
)

// wsRequest is one client message on /ws.
//
//	{"type":"load","fen":"..."}   start over from fen (empty = initial position)
//	{"type":"move","move":"e2e4"} play a move
//	{"type":"moves","from":"e2"}  list legal moves (all when from is empty)
//	{"type":"undo"}               take back the last move
//	{"type":"state"}              report the current game
type wsRequest struct {
	Type string `json:"type"`
	FEN  string `json:"fen,omitempty"`
	Move string `json:"move,omitempty"`
	From string `json:"from,omitempty"`
}

type wsResponse struct {
	Type  string         `json:"type"`
	Game  *gameView      `json:"game,omitempty"`
	Move  *game.MoveInfo `json:"move,omitempty"`
	Moves []string       `json:"moves,omitempty"`
	Error string         `json:"error,omitempty"`
}

// handleWebsocket runs a validation session. Each connection owns its own
// game, which is never stored.
func (s *Server) handleWebsocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade", zap.Error(err))
		return
	}
	defer conn.Close()
	conn.SetReadLimit(s.cfg.MaxBody)

	log := s.logger.With(zap.String("remote", conn.RemoteAddr().String()))
	log.Debug("websocket session started")

	session := game.New()
	if err := conn.WriteJSON(stateResponse(session)); err != nil {
		return
	}

	for {
		var req wsRequest
		if err := conn.ReadJSON(&req); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Warn("websocket read", zap.Error(err))
			}
			return
		}
		if err := conn.WriteJSON(handleSessionRequest(session, req)); err != nil {
			log.Warn("websocket write", zap.Error(err))
			return
		}
	}
}

// handleSessionRequest applies one request to the session's game.
func handleSessionRequest(g *game.Game, req wsRequest) wsResponse {
	switch req.Type {
	case "load":
		fen := req.FEN
		if fen == "" {
			fen = engine.InitialFEN
		}
		if err := g.Load(fen); err != nil {
			return errorResponse(err)
		}
		return stateResponse(g)

	case "move":
		info, err := g.MoveText(req.Move)
		if err != nil {
			return errorResponse(err)
		}
		resp := stateResponse(g)
		resp.Move = info
		return resp

	case "moves":
		moves, err := g.Moves(req.From)
		if err != nil {
			return errorResponse(err)
		}
		return wsResponse{Type: "moves", Moves: moveStrings(moves)}

	case "undo":
		g.Undo()
		return stateResponse(g)

	case "state":
		return stateResponse(g)
	}
	return wsResponse{Type: "error", Error: "unknown request type " + req.Type}
}

func stateResponse(g *game.Game) wsResponse {
	view := newGameView(g, nil)
	return wsResponse{Type: "state", Game: &view}
}

func errorResponse(err error) wsResponse {
	return wsResponse{Type: "error", Error: err.Error()}
}
