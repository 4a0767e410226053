package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
)

// PositionView is the printable summary of a position.
type PositionView struct {
	FEN        string   `json:"fen"`
	ToMove     string   `json:"to_move"`
	Status     string   `json:"status"`
	InCheck    bool     `json:"in_check"`
	LegalMoves []string `json:"legal_moves"`
}

// NewPositionView describes pos with every legal move of the side to move.
func NewPositionView(pos *chess.Position) *PositionView {
	moves := engine.AllLegalMoves(pos)
	view := &PositionView{
		FEN:        engine.PositionToFEN(pos),
		ToMove:     strings.ToLower(pos.ToMove.String()),
		Status:     engine.Status(pos).String(),
		InCheck:    engine.IsKingInCheck(&pos.Board, pos.ToMove),
		LegalMoves: make([]string, 0, len(moves)),
	}
	for _, m := range moves {
		view.LegalMoves = append(view.LegalMoves, m.String())
	}
	return view
}

// WritePosition prints a board diagram followed by the position summary.
func WritePosition(w io.Writer, pos *chess.Position, maxLineLength int) {
	view := NewPositionView(pos)

	fmt.Fprint(w, pos.Board.String())
	fmt.Fprintf(w, "FEN:     %s\n", view.FEN)
	fmt.Fprintf(w, "To move: %s\n", view.ToMove)
	fmt.Fprintf(w, "Status:  %s\n", view.Status)
	if view.InCheck {
		fmt.Fprintln(w, "Check:   yes")
	}
	fmt.Fprintf(w, "Moves (%d):\n", len(view.LegalMoves))
	WriteMoves(w, view.LegalMoves, maxLineLength)
}

// WriteMoves prints moves wrapped to maxLineLength.
func WriteMoves(w io.Writer, moves []string, maxLineLength int) {
	if len(moves) == 0 {
		return
	}
	lw := NewLineWriter(w, maxLineLength)
	for _, m := range moves {
		lw.Write(m)
	}
	lw.NewLine()
}

// WritePositionJSON prints the position summary as indented JSON.
func WritePositionJSON(w io.Writer, pos *chess.Position) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(NewPositionView(pos))
}
