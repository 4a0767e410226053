// Package game provides a stateful chess game on top of the rules engine.
package game

import "github.com/lgbarn/chessrules-go/internal/chess"

// Engine is the contract consumers program against. *Game is the only
// implementation; callers own their value and nothing is kept globally.
type Engine interface {
	// Load replaces the current position and clears the history.
	Load(fen string) error
	// FEN serializes the current position.
	FEN() string
	// Board returns a copy of the current board.
	Board() chess.Board
	// Moves lists legal moves from an algebraic square, or every legal
	// move of the side to move when from is empty.
	Moves(from string) ([]chess.Move, error)
	// InCheck reports whether colour's king is attacked in the current position.
	InCheck(colour chess.Colour) bool
	// Move plays a move for the side to move. A rejected move leaves the game untouched.
	Move(m chess.Move) (*MoveInfo, error)
	// LegalMoves answers a board-only query, independent of the game's own position.
	LegalMoves(board chess.Board, from chess.Square, opts MoveOptions) []chess.Move
	// IsValidMove answers a board-only legality query.
	IsValidMove(board chess.Board, from, to chess.Square, opts MoveOptions) bool
}

// MoveOptions supplies the position metadata a bare board lacks.
type MoveOptions struct {
	ToMove    chess.Colour
	Castling  chess.CastlingRights
	EnPassant chess.Square // chess.NoSquare when there is no target
	Promotion chess.PieceType
}

// DefaultMoveOptions returns options for White to move with no castling
// and no en passant target.
func DefaultMoveOptions() MoveOptions {
	return MoveOptions{
		ToMove:    chess.White,
		Castling:  chess.NoCastling,
		EnPassant: chess.NoSquare,
	}
}

// position builds a full position from a board and options.
func (o MoveOptions) position(board chess.Board) *chess.Position {
	pos := chess.NewPosition()
	pos.Board = board
	pos.ToMove = o.ToMove
	pos.Castling = o.Castling
	pos.SetEnPassant(o.EnPassant, o.EnPassant.Valid())
	return pos
}

// MoveInfo describes an applied move.
type MoveInfo struct {
	Ply      int          `json:"ply"`
	Move     chess.Move   `json:"-"`
	UCI      string       `json:"move"`
	Piece    chess.Piece  `json:"-"`
	Colour   chess.Colour `json:"-"`
	Captured bool         `json:"captured"`
	Check    bool         `json:"check"`
	FEN      string       `json:"fen"`
}
