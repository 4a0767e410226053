package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// MoveContext carries everything a piece rule needs to judge and play a move.
// Board is always an owned copy; Apply mutates it in place.
type MoveContext struct {
	Board     *chess.Board
	From      chess.Square
	To        chess.Square
	ToMove    chess.Colour
	Castling  chess.CastlingRights
	EnPassant bool
	EPSquare  chess.Square
	Promotion chess.PieceType
}

// MoveResult reports the side effects of a played move.
type MoveResult struct {
	Captured bool

	// Set only after a pawn double step; EPSquare is the skipped square.
	EnPassant bool
	EPSquare  chess.Square
}

// PieceRule is the movement strategy of one piece type.
type PieceRule interface {
	// IsMoveType reports whether the move has the piece's shape.
	// It ignores whether the mover's own king ends up in check.
	IsMoveType(ctx *MoveContext) bool

	// Apply plays a move already accepted by IsMoveType on ctx.Board.
	Apply(ctx *MoveContext) MoveResult
}

var pieceRules = map[chess.PieceType]PieceRule{
	chess.Pawn:   pawnRule{},
	chess.Knight: knightRule{},
	chess.Bishop: bishopRule{},
	chess.Rook:   rookRule{},
	chess.Queen:  queenRule{},
	chess.King:   kingRule{},
}

// RuleFor returns the rule for a piece type, or nil for NoPieceType.
func RuleFor(t chess.PieceType) PieceRule {
	return pieceRules[t]
}

// newMoveContext builds a context over a copy of the position's board.
func newMoveContext(pos *chess.Position, move chess.Move) *MoveContext {
	board := pos.Board
	return &MoveContext{
		Board:     &board,
		From:      move.From,
		To:        move.To,
		ToMove:    pos.ToMove,
		Castling:  pos.Castling,
		EnPassant: pos.EnPassant,
		EPSquare:  pos.EPSquare,
		Promotion: move.Promotion,
	}
}

// mover returns the piece standing on the origin square.
func (ctx *MoveContext) mover() chess.Piece {
	return ctx.Board.Get(ctx.From)
}

// delta returns the file and rank distance of the move.
func (ctx *MoveContext) delta() (int, int) {
	return ctx.To.File - ctx.From.File, ctx.To.Rank - ctx.From.Rank
}

// relocate moves the piece on from to to, reporting whether something was taken.
func relocate(board *chess.Board, from, to chess.Square) bool {
	piece := board.Get(from)
	captured := !board.IsEmpty(to)
	board.Set(from, chess.Empty)
	board.Set(to, piece)
	return captured
}
