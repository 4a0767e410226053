package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// IsKingInCheck returns true if the given colour's king is attacked.
// A board without that king is never in check.
func IsKingInCheck(board *chess.Board, colour chess.Colour) bool {
	sq, ok := FindKing(board, colour)
	if !ok {
		return false
	}
	return IsSquareAttackedBy(board, sq, colour.Opposite())
}

// FindKing finds the king of the given colour, scanning from a1 rank by rank.
func FindKing(board *chess.Board, colour chess.Colour) (chess.Square, bool) {
	king := chess.MakePiece(colour, chess.King)
	for rank := 0; rank < chess.BoardSize; rank++ {
		for file := 0; file < chess.BoardSize; file++ {
			if board[rank][file] == king {
				return chess.NewSquare(file, rank), true
			}
		}
	}
	return chess.NoSquare, false
}

// IsSquareAttackedBy returns true if any piece of byColour attacks sq.
// Occupancy of sq itself does not matter.
func IsSquareAttackedBy(board *chess.Board, sq chess.Square, byColour chess.Colour) bool {
	// Pawns attack diagonally forward, so look one rank behind sq from the attacker's side.
	pawn := chess.MakePiece(byColour, chess.Pawn)
	pawnRank := -byColour.Offset()
	if board.Get(sq.Offset(-1, pawnRank)) == pawn || board.Get(sq.Offset(1, pawnRank)) == pawn {
		return true
	}

	if attackedByStep(board, sq, knightJumps, chess.MakePiece(byColour, chess.Knight)) {
		return true
	}
	if attackedByStep(board, sq, kingSteps, chess.MakePiece(byColour, chess.King)) {
		return true
	}

	queen := chess.MakePiece(byColour, chess.Queen)
	if attackedByRay(board, sq, diagonalDirs, chess.MakePiece(byColour, chess.Bishop), queen) {
		return true
	}
	return attackedByRay(board, sq, straightDirs, chess.MakePiece(byColour, chess.Rook), queen)
}

// attackedByStep checks the single-step offsets for the given piece.
func attackedByStep(board *chess.Board, sq chess.Square, offsets [][2]int, attacker chess.Piece) bool {
	for _, off := range offsets {
		if board.Get(sq.Offset(off[0], off[1])) == attacker {
			return true
		}
	}
	return false
}

// attackedByRay casts rays from sq, stopping at the first occupied square.
func attackedByRay(board *chess.Board, sq chess.Square, dirs [][2]int, slider, queen chess.Piece) bool {
	for _, dir := range dirs {
		cur := sq.Offset(dir[0], dir[1])
		for cur.Valid() {
			piece := board.Get(cur)
			if piece != chess.Empty {
				if piece == slider || piece == queen {
					return true
				}
				break // Blocked
			}
			cur = cur.Offset(dir[0], dir[1])
		}
	}
	return false
}
