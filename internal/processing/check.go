// Package processing checks batches of positions and move sequences.
package processing

import (
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Report holds the outcome of checking one position and its moves.
type Report struct {
	Line     int    `json:"line,omitempty"`
	FEN      string `json:"fen"`
	FinalFEN string `json:"final_fen,omitempty"`
	Plies    int    `json:"plies"`
	Status   string `json:"status,omitempty"`
	Winner   string `json:"winner,omitempty"`
	ToMove   string `json:"to_move,omitempty"`
	InCheck  bool   `json:"in_check"`
	Valid    bool   `json:"valid"`

	// Set when a move was rejected.
	IllegalMove string `json:"illegal_move,omitempty"`
	IllegalPly  int    `json:"illegal_ply,omitempty"`

	Error string `json:"error,omitempty"`
}

// CheckPosition decodes fen and plays moves from it. Play stops at the
// first move that cannot be parsed or is illegal; the report then
// describes the last good position along with the offending move.
func CheckPosition(fen string, moves []string) *Report {
	report := &Report{FEN: fen}

	pos, err := engine.NewPositionFromFEN(fen)
	if err != nil {
		report.Error = err.Error()
		return report
	}

	for _, text := range moves {
		m, err := chess.ParseMove(text)
		if err != nil {
			report.reject(text, pos, errors.Wrap(errors.ErrInvalidMove, err.Error()))
			break
		}
		next, err := engine.ApplyMove(pos, m)
		if err != nil {
			report.reject(text, pos, err)
			break
		}
		pos = next
		report.Plies++
	}

	report.describe(pos)
	report.Valid = report.Error == ""
	return report
}

// reject records the first bad move.
func (r *Report) reject(text string, pos *chess.Position, err error) {
	r.IllegalMove = text
	r.IllegalPly = plyOf(pos)
	var me *errors.MoveError
	if errors.As(err, &me) {
		r.IllegalPly = me.PlyNum
	}
	r.Error = err.Error()
}

// plyOf numbers the next half-move of pos, counting from 1.
func plyOf(pos *chess.Position) int {
	ply := (int(pos.MoveNumber)-1)*2 + 1
	if pos.ToMove == chess.Black {
		ply++
	}
	return ply
}

// describe fills the fields derived from the final position.
func (r *Report) describe(pos *chess.Position) {
	status := engine.Status(pos)
	r.FinalFEN = engine.PositionToFEN(pos)
	r.Status = status.String()
	r.ToMove = strings.ToLower(pos.ToMove.String())
	r.InCheck = engine.IsKingInCheck(&pos.Board, pos.ToMove)
	if status == chess.Checkmate {
		r.Winner = strings.ToLower(pos.ToMove.Opposite().String())
	}
}
