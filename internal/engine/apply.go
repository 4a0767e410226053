package engine

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// ApplyMove plays a move and returns the resulting position.
// The input position is never modified. A rejected move yields a
// *errors.MoveError wrapping errors.ErrIllegalMove or errors.ErrPromotionRequired.
func ApplyMove(pos *chess.Position, move chess.Move) (*chess.Position, error) {
	next, _, err := applyMove(pos, move)
	return next, err
}

// ApplyMoveResult is ApplyMove that also reports the move's side effects.
func ApplyMoveResult(pos *chess.Position, move chess.Move) (*chess.Position, MoveResult, error) {
	return applyMove(pos, move)
}

func applyMove(pos *chess.Position, move chess.Move) (*chess.Position, MoveResult, error) {
	if reason, ok := checkMove(pos, move); !ok {
		return nil, MoveResult{}, &errors.MoveError{
			Err:    errors.ErrIllegalMove,
			Move:   move.String(),
			Reason: reason,
			PlyNum: plyNumber(pos),
		}
	}

	mover := pos.Board.Get(move.From)
	colour := mover.Colour()
	if mover.Type() == chess.Pawn && move.To.Rank == colour.PromotionRank() && !move.IsPromotion() {
		return nil, MoveResult{}, &errors.MoveError{
			Err:    errors.ErrPromotionRequired,
			Move:   move.String(),
			Reason: "pawn reaches the last rank",
			PlyNum: plyNumber(pos),
		}
	}

	next := pos.Copy()
	ctx := newMoveContext(pos, move)
	result := RuleFor(mover.Type()).Apply(ctx)
	next.Board = *ctx.Board

	next.Castling = updateCastlingRights(pos.Castling, mover, move.From, move.To)

	if mover.Type() == chess.Pawn || result.Captured {
		next.HalfmoveClock = 0
	} else {
		next.HalfmoveClock++
	}

	next.SetEnPassant(result.EPSquare, result.EnPassant)

	if colour == chess.Black {
		next.MoveNumber++
	}
	next.ToMove = colour.Opposite()

	return next, result, nil
}

// ApplyMoves plays a sequence of moves, stopping at the first rejected one.
// The error carries the ply at which play stopped.
func ApplyMoves(pos *chess.Position, moves []chess.Move) (*chess.Position, error) {
	cur := pos
	for _, m := range moves {
		next, err := ApplyMove(cur, m)
		if err != nil {
			return nil, err
		}
		cur = next
	}
	return cur, nil
}

// plyNumber is the 1-based ply the side to move is about to play.
func plyNumber(pos *chess.Position) int {
	ply := (int(pos.MoveNumber)-1)*2 + 1
	if pos.ToMove == chess.Black {
		ply++
	}
	return ply
}
