package game

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Game owns a position together with the moves that led to it.
// A Game is not safe for concurrent use.
type Game struct {
	startFEN string
	pos      *chess.Position
	history  []MoveInfo
	status   chess.GameStatus
	winner   chess.Colour
}

var _ Engine = (*Game)(nil)

// New starts a game from the standard initial position.
func New() *Game {
	g := &Game{}
	if err := g.Load(engine.InitialFEN); err != nil {
		panic(err)
	}
	return g
}

// NewFromFEN starts a game from the given position.
func NewFromFEN(fen string) (*Game, error) {
	g := &Game{}
	if err := g.Load(fen); err != nil {
		return nil, err
	}
	return g, nil
}

// Replay rebuilds a game by playing moves from a start position.
func Replay(startFEN string, moves []chess.Move) (*Game, error) {
	g, err := NewFromFEN(startFEN)
	if err != nil {
		return nil, err
	}
	for _, m := range moves {
		if _, err := g.Move(m); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// Load implements Engine.
func (g *Game) Load(fen string) error {
	pos, err := engine.NewPositionFromFEN(fen)
	if err != nil {
		return err
	}
	g.startFEN = engine.PositionToFEN(pos)
	g.pos = pos
	g.history = nil
	g.status = engine.Status(pos)
	g.updateWinner()
	return nil
}

// FEN implements Engine.
func (g *Game) FEN() string {
	return engine.PositionToFEN(g.pos)
}

// StartFEN returns the position the game was loaded from.
func (g *Game) StartFEN() string {
	return g.startFEN
}

// Position returns a copy of the current position.
func (g *Game) Position() *chess.Position {
	return g.pos.Copy()
}

// Board implements Engine.
func (g *Game) Board() chess.Board {
	return g.pos.Board
}

// Turn returns the side to move.
func (g *Game) Turn() chess.Colour {
	return g.pos.ToMove
}

// Status returns whether play can continue.
func (g *Game) Status() chess.GameStatus {
	return g.status
}

// Winner returns the winning side once the game ended by checkmate or resignation.
func (g *Game) Winner() (chess.Colour, bool) {
	if g.status != chess.Checkmate && g.status != chess.Resigned {
		return chess.White, false
	}
	return g.winner, true
}

// History returns the moves played so far.
func (g *Game) History() []MoveInfo {
	out := make([]MoveInfo, len(g.history))
	copy(out, g.history)
	return out
}

// MoveList returns the played moves in long algebraic form.
func (g *Game) MoveList() []string {
	out := make([]string, len(g.history))
	for i, h := range g.history {
		out[i] = h.UCI
	}
	return out
}

// Moves implements Engine.
func (g *Game) Moves(from string) ([]chess.Move, error) {
	if from == "" {
		return engine.AllLegalMoves(g.pos), nil
	}
	sq, err := chess.ParseSquare(from)
	if err != nil {
		return nil, errors.Wrap(errors.ErrInvalidSquare, err.Error())
	}
	return expandPromotions(g.pos, sq, engine.LegalMoves(g.pos, sq), chess.NoPieceType), nil
}

// InCheck implements Engine.
func (g *Game) InCheck(colour chess.Colour) bool {
	return engine.IsKingInCheck(&g.pos.Board, colour)
}

// Move implements Engine.
func (g *Game) Move(m chess.Move) (*MoveInfo, error) {
	if g.status.IsOver() {
		return nil, &errors.MoveError{
			Err:    errors.ErrGameOver,
			Move:   m.String(),
			Reason: g.status.String(),
		}
	}

	mover := g.pos.Board.Get(m.From)
	next, result, err := engine.ApplyMoveResult(g.pos, m)
	if err != nil {
		return nil, err
	}

	info := MoveInfo{
		Ply:      len(g.history) + 1,
		Move:     m,
		UCI:      m.String(),
		Piece:    mover,
		Colour:   mover.Colour(),
		Captured: result.Captured,
		Check:    engine.IsKingInCheck(&next.Board, next.ToMove),
		FEN:      engine.PositionToFEN(next),
	}

	g.pos = next
	g.history = append(g.history, info)
	g.status = engine.Status(next)
	g.updateWinner()
	return &info, nil
}

// MoveText parses long algebraic move text and plays it.
func (g *Game) MoveText(text string) (*MoveInfo, error) {
	m, err := chess.ParseMove(text)
	if err != nil {
		return nil, errors.Wrap(errors.ErrInvalidMove, err.Error())
	}
	return g.Move(m)
}

// Resign ends the game with colour conceding.
func (g *Game) Resign(colour chess.Colour) error {
	if g.status.IsOver() {
		return errors.Wrapf(errors.ErrGameOver, "cannot resign, game is %s", g.status)
	}
	g.status = chess.Resigned
	g.winner = colour.Opposite()
	return nil
}

// Undo takes back the last move by replaying the rest from the start
// position. It returns false when there is nothing to take back.
// A resignation is withdrawn along with the move.
func (g *Game) Undo() bool {
	if len(g.history) == 0 {
		return false
	}
	moves := make([]chess.Move, 0, len(g.history)-1)
	for _, h := range g.history[:len(g.history)-1] {
		moves = append(moves, h.Move)
	}
	replayed, err := Replay(g.startFEN, moves)
	if err != nil {
		// Every recorded move was legal when played.
		panic(err)
	}
	*g = *replayed
	return true
}

// LegalMoves implements Engine.
func (g *Game) LegalMoves(board chess.Board, from chess.Square, opts MoveOptions) []chess.Move {
	pos := opts.position(board)
	return expandPromotions(pos, from, engine.LegalMoves(pos, from), opts.Promotion)
}

// IsValidMove implements Engine.
func (g *Game) IsValidMove(board chess.Board, from, to chess.Square, opts MoveOptions) bool {
	return engine.IsLegalMove(opts.position(board), from, to, opts.Promotion)
}

// updateWinner records the side that delivered mate.
func (g *Game) updateWinner() {
	if g.status == chess.Checkmate {
		g.winner = g.pos.ToMove.Opposite()
	}
}

// expandPromotions turns target squares into moves. Pawn moves onto the
// last rank use promo when given, otherwise one move per promotion piece.
func expandPromotions(pos *chess.Position, from chess.Square, targets []chess.Square, promo chess.PieceType) []chess.Move {
	isPawn := pos.Board.Get(from).Type() == chess.Pawn
	colour := pos.Board.Get(from).Colour()

	moves := make([]chess.Move, 0, len(targets))
	for _, to := range targets {
		if !isPawn || to.Rank != colour.PromotionRank() {
			moves = append(moves, chess.NewMove(from, to))
			continue
		}
		if promo != chess.NoPieceType {
			moves = append(moves, chess.Move{From: from, To: to, Promotion: promo})
			continue
		}
		for _, p := range chess.PromotionPieces {
			moves = append(moves, chess.Move{From: from, To: to, Promotion: p})
		}
	}
	return moves
}
