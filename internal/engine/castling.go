package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// Castling geometry for the standard start position.
const (
	kingStartFile     = 4
	kingsideKingFile  = 6
	queensideKingFile = 2
	kingsideRookFile  = chess.BoardSize - 1
	queensideRookFile = 0
)

type kingRule struct{}

func (kingRule) IsMoveType(ctx *MoveContext) bool {
	df, dr := ctx.delta()
	if df == 0 && dr == 0 {
		return false
	}
	if abs(df) <= 1 && abs(dr) <= 1 {
		return true
	}
	return canCastle(ctx)
}

func (kingRule) Apply(ctx *MoveContext) MoveResult {
	df, _ := ctx.delta()
	if abs(df) == 2 {
		rookFrom, rookTo := castlingRookSquares(ctx.From.Rank, ctx.To.File)
		relocate(ctx.Board, rookFrom, rookTo)
	}
	return MoveResult{Captured: relocate(ctx.Board, ctx.From, ctx.To), EPSquare: chess.NoSquare}
}

// canCastle checks the castling gate. The landing square is left to the
// legality filter, which rejects any move ending in check.
func canCastle(ctx *MoveContext) bool {
	king := ctx.mover()
	colour := king.Colour()
	home := colour.HomeRank()

	if ctx.From != chess.NewSquare(kingStartFile, home) || ctx.To.Rank != home {
		return false
	}

	var right chess.CastlingRights
	switch ctx.To.File {
	case kingsideKingFile:
		right = chess.KingsideRight(colour)
	case queensideKingFile:
		right = chess.QueensideRight(colour)
	default:
		return false
	}
	if !ctx.Castling.Has(right) {
		return false
	}

	rookFrom, transit := castlingRookSquares(home, ctx.To.File)
	if !ctx.Board.Get(rookFrom).Is(colour, chess.Rook) {
		return false
	}
	if !isStraightClear(ctx.Board, ctx.From, rookFrom) {
		return false
	}
	if IsKingInCheck(ctx.Board, colour) {
		return false
	}
	// The rook lands on the square the king passes over.
	return !IsSquareAttackedBy(ctx.Board, transit, colour.Opposite())
}

// castlingRookSquares returns where the rook starts and lands for a castle
// whose king lands on kingFile.
func castlingRookSquares(rank, kingFile int) (chess.Square, chess.Square) {
	if kingFile == kingsideKingFile {
		return chess.NewSquare(kingsideRookFile, rank), chess.NewSquare(kingsideKingFile-1, rank)
	}
	return chess.NewSquare(queensideRookFile, rank), chess.NewSquare(queensideKingFile+1, rank)
}

// cornerRight returns the castling right tied to a rook's home corner.
func cornerRight(sq chess.Square) chess.CastlingRights {
	switch sq {
	case chess.NewSquare(kingsideRookFile, chess.White.HomeRank()):
		return chess.WhiteKingside
	case chess.NewSquare(queensideRookFile, chess.White.HomeRank()):
		return chess.WhiteQueenside
	case chess.NewSquare(kingsideRookFile, chess.Black.HomeRank()):
		return chess.BlackKingside
	case chess.NewSquare(queensideRookFile, chess.Black.HomeRank()):
		return chess.BlackQueenside
	}
	return chess.NoCastling
}

// updateCastlingRights removes rights after a move: both of a side's rights
// when its king moves, and a single right when anything leaves or lands on
// that right's rook corner.
func updateCastlingRights(rights chess.CastlingRights, mover chess.Piece, from, to chess.Square) chess.CastlingRights {
	if mover.Type() == chess.King {
		colour := mover.Colour()
		rights = rights.Remove(chess.KingsideRight(colour) | chess.QueensideRight(colour))
	}
	rights = rights.Remove(cornerRight(from))
	return rights.Remove(cornerRight(to))
}
