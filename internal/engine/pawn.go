package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

type pawnRule struct{}

func (pawnRule) IsMoveType(ctx *MoveContext) bool {
	colour := ctx.mover().Colour()
	dir := colour.Offset()
	df, dr := ctx.delta()
	target := ctx.Board.Get(ctx.To)

	switch {
	case df == 0 && dr == dir:
		return target == chess.Empty

	case df == 0 && dr == 2*dir:
		// Double step from the starting rank over an empty square.
		return ctx.From.Rank == colour.PawnRank() &&
			ctx.Board.IsEmpty(ctx.From.Offset(0, dir)) &&
			target == chess.Empty

	case abs(df) == 1 && dr == dir:
		if target != chess.Empty {
			return target.Colour() != colour
		}
		return isEnPassantCapture(ctx, colour)
	}
	return false
}

// isEnPassantCapture reports whether a diagonal step onto an empty square
// takes the pawn that just double-stepped past.
func isEnPassantCapture(ctx *MoveContext, colour chess.Colour) bool {
	if !ctx.EnPassant || ctx.To != ctx.EPSquare {
		return false
	}
	victim := enPassantVictim(ctx.To, colour)
	return ctx.Board.Get(victim) == chess.MakePiece(colour.Opposite(), chess.Pawn)
}

// enPassantVictim is the square of the pawn taken en passant: one rank behind the target.
func enPassantVictim(target chess.Square, colour chess.Colour) chess.Square {
	return target.Offset(0, -colour.Offset())
}

func (pawnRule) Apply(ctx *MoveContext) MoveResult {
	pawn := ctx.mover()
	colour := pawn.Colour()
	df, dr := ctx.delta()
	var result MoveResult

	// A diagonal step onto an empty square is en passant.
	if df != 0 && ctx.Board.IsEmpty(ctx.To) {
		ctx.Board.Set(enPassantVictim(ctx.To, colour), chess.Empty)
		result.Captured = true
	}

	if relocate(ctx.Board, ctx.From, ctx.To) {
		result.Captured = true
	}

	if ctx.Promotion != chess.NoPieceType && ctx.To.Rank == colour.PromotionRank() {
		ctx.Board.Set(ctx.To, chess.MakePiece(colour, ctx.Promotion))
	}

	if abs(dr) == 2 {
		result.EnPassant = true
		result.EPSquare = ctx.From.Offset(0, colour.Offset())
	} else {
		result.EPSquare = chess.NoSquare
	}
	return result
}
