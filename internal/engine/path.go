package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// Ray directions used by the sliders and the attack detector.
var (
	diagonalDirs = [][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	straightDirs = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	knightJumps  = [][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingSteps    = [][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
)

// isDiagonalClear checks if the squares strictly between from and to on a diagonal are empty.
func isDiagonalClear(board *chess.Board, from, to chess.Square) bool {
	if abs(to.File-from.File) != abs(to.Rank-from.Rank) {
		return false
	}
	return isPathClear(board, from, to)
}

// isStraightClear checks if the squares strictly between from and to on a file or rank are empty.
func isStraightClear(board *chess.Board, from, to chess.Square) bool {
	if from.File != to.File && from.Rank != to.Rank {
		return false
	}
	return isPathClear(board, from, to)
}

// isPathClear walks from towards to one step at a time.
// Callers guarantee the two squares share a line.
func isPathClear(board *chess.Board, from, to chess.Square) bool {
	fileDir := sign(to.File - from.File)
	rankDir := sign(to.Rank - from.Rank)

	sq := from.Offset(fileDir, rankDir)
	for sq != to {
		if !board.IsEmpty(sq) {
			return false
		}
		sq = sq.Offset(fileDir, rankDir)
	}
	return true
}
