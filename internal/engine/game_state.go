package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// HasAnyLegalMove reports whether colour has a legal move, judged as if
// colour were to move. The en passant target belongs to the side to move,
// so it is ignored when asking about the other side.
func HasAnyLegalMove(pos *chess.Position, colour chess.Colour) bool {
	view := pos
	if colour != pos.ToMove {
		view = pos.Copy()
		view.ToMove = colour
		view.SetEnPassant(chess.NoSquare, false)
	}

	for _, from := range view.Board.Squares(colour) {
		if hasLegalMoveFrom(view, from) {
			return true
		}
	}
	return false
}

// IsCheckmate returns true if colour is in check with no legal move.
func IsCheckmate(pos *chess.Position, colour chess.Colour) bool {
	return IsKingInCheck(&pos.Board, colour) && !HasAnyLegalMove(pos, colour)
}

// IsStalemate returns true if colour is not in check but has no legal move.
func IsStalemate(pos *chess.Position, colour chess.Colour) bool {
	return !IsKingInCheck(&pos.Board, colour) && !HasAnyLegalMove(pos, colour)
}

// Status classifies the position for the side to move.
func Status(pos *chess.Position) chess.GameStatus {
	colour := pos.ToMove
	if HasAnyLegalMove(pos, colour) {
		return chess.InProgress
	}
	if IsKingInCheck(&pos.Board, colour) {
		return chess.Checkmate
	}
	return chess.Stalemate
}
