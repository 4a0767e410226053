package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// IsLegalMove reports whether the side to move may play from -> to.
// promotion is chess.NoPieceType unless the caller names a promotion piece.
func IsLegalMove(pos *chess.Position, from, to chess.Square, promotion chess.PieceType) bool {
	_, ok := checkMove(pos, chess.Move{From: from, To: to, Promotion: promotion})
	return ok
}

// checkMove runs the legality filter, returning the reason for a rejection.
func checkMove(pos *chess.Position, move chess.Move) (string, bool) {
	if !move.From.Valid() || !move.To.Valid() {
		return "square is off the board", false
	}
	if move.From == move.To {
		return "origin and target are the same square", false
	}

	piece := pos.Board.Get(move.From)
	if piece == chess.Empty {
		return "no piece on " + move.From.String(), false
	}
	colour := piece.Colour()
	if colour != pos.ToMove {
		return "it is " + pos.ToMove.String() + "'s move", false
	}

	target := pos.Board.Get(move.To)
	if target != chess.Empty && target.Colour() == colour {
		return "target is occupied by own piece", false
	}

	if move.Promotion != chess.NoPieceType {
		if !move.Promotion.IsPromotionPiece() {
			return "cannot promote to " + move.Promotion.String(), false
		}
		if piece.Type() != chess.Pawn || move.To.Rank != colour.PromotionRank() {
			return "promotion is only for a pawn reaching the last rank", false
		}
	}

	rule := RuleFor(piece.Type())
	ctx := newMoveContext(pos, move)
	if !rule.IsMoveType(ctx) {
		return piece.Type().String() + " cannot move that way", false
	}

	rule.Apply(ctx)
	if IsKingInCheck(ctx.Board, colour) {
		return "move leaves own king in check", false
	}
	return "", true
}

// LegalMoves returns every square the piece on from may move to, in
// rank-major order from a1. Pawn moves to the last rank are included
// without choosing a promotion piece.
func LegalMoves(pos *chess.Position, from chess.Square) []chess.Square {
	var targets []chess.Square
	for rank := 0; rank < chess.BoardSize; rank++ {
		for file := 0; file < chess.BoardSize; file++ {
			to := chess.NewSquare(file, rank)
			if IsLegalMove(pos, from, to, chess.NoPieceType) {
				targets = append(targets, to)
			}
		}
	}
	return targets
}

// AllLegalMoves returns every legal move of the side to move.
// Promotions are expanded into one move per promotion piece.
func AllLegalMoves(pos *chess.Position) []chess.Move {
	var moves []chess.Move
	for _, from := range pos.Board.Squares(pos.ToMove) {
		isPawn := pos.Board.Get(from).Type() == chess.Pawn
		for _, to := range LegalMoves(pos, from) {
			if isPawn && to.Rank == pos.ToMove.PromotionRank() {
				for _, promo := range chess.PromotionPieces {
					moves = append(moves, chess.Move{From: from, To: to, Promotion: promo})
				}
				continue
			}
			moves = append(moves, chess.NewMove(from, to))
		}
	}
	return moves
}

// hasLegalMoveFrom is LegalMoves that stops at the first hit.
func hasLegalMoveFrom(pos *chess.Position, from chess.Square) bool {
	for rank := 0; rank < chess.BoardSize; rank++ {
		for file := 0; file < chess.BoardSize; file++ {
			if IsLegalMove(pos, from, chess.NewSquare(file, rank), chess.NoPieceType) {
				return true
			}
		}
	}
	return false
}
