package httpx

import (
	"strings"
	"time"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/game"
	"github.com/lgbarn/chessrules-go/internal/store"
)

// gameView is the JSON form of a game.
type gameView struct {
	ID        string          `json:"id,omitempty"`
	StartFEN  string          `json:"start_fen"`
	FEN       string          `json:"fen"`
	Turn      string          `json:"turn"`
	Status    string          `json:"status"`
	Winner    string          `json:"winner,omitempty"`
	InCheck   bool            `json:"in_check"`
	Moves     []string        `json:"moves"`
	History   []game.MoveInfo `json:"history"`
	CreatedAt *time.Time      `json:"created_at,omitempty"`
	UpdatedAt *time.Time      `json:"updated_at,omitempty"`
}

func newGameView(g *game.Game, rec *store.Record) gameView {
	v := gameView{
		StartFEN: g.StartFEN(),
		FEN:      g.FEN(),
		Turn:     strings.ToLower(g.Turn().String()),
		Status:   g.Status().String(),
		InCheck:  g.InCheck(g.Turn()),
		Moves:    g.MoveList(),
		History:  g.History(),
	}
	if winner, ok := g.Winner(); ok {
		v.Winner = strings.ToLower(winner.String())
	}
	if rec != nil {
		v.ID = rec.ID
		v.CreatedAt = &rec.CreatedAt
		v.UpdatedAt = &rec.UpdatedAt
	}
	return v
}

// moveRequest names a move either as text ("e7e8q") or by squares.
type moveRequest struct {
	Move      string `json:"move,omitempty"`
	From      string `json:"from,omitempty"`
	To        string `json:"to,omitempty"`
	Promotion string `json:"promotion,omitempty"`
}

func (req moveRequest) parse() (chess.Move, error) {
	if text := strings.TrimSpace(req.Move); text != "" {
		m, err := chess.ParseMove(strings.ToLower(text))
		if err != nil {
			return chess.Move{}, errors.Wrap(errors.ErrInvalidMove, err.Error())
		}
		return m, nil
	}

	from, err := chess.ParseSquare(strings.ToLower(strings.TrimSpace(req.From)))
	if err != nil {
		return chess.Move{}, errors.Wrapf(errors.ErrInvalidSquare, "from: %v", err)
	}
	to, err := chess.ParseSquare(strings.ToLower(strings.TrimSpace(req.To)))
	if err != nil {
		return chess.Move{}, errors.Wrapf(errors.ErrInvalidSquare, "to: %v", err)
	}
	m := chess.NewMove(from, to)
	if p := strings.TrimSpace(req.Promotion); p != "" {
		m.Promotion = parsePromotion(p)
		if !m.Promotion.IsPromotionPiece() {
			return chess.Move{}, errors.Wrapf(errors.ErrInvalidMove, "invalid promotion choice %q", p)
		}
	}
	return m, nil
}

// parsePromotion accepts a piece letter or name ("q", "queen", "N").
func parsePromotion(s string) chess.PieceType {
	switch strings.ToLower(s) {
	case "queen":
		return chess.Queen
	case "rook":
		return chess.Rook
	case "bishop":
		return chess.Bishop
	case "knight":
		return chess.Knight
	}
	if len(s) == 1 {
		return chess.ParsePieceType(s[0])
	}
	return chess.NoPieceType
}

func moveStrings(moves []chess.Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.String()
	}
	return out
}
