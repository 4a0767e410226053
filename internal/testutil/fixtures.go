package testutil

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// Positions used across package tests.
const (
	StartFEN      = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
	AfterE4FEN    = "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1"
	CastlingFEN   = "r3k2r/pppq1ppp/2np1n2/4p3/4P3/2NP1N2/PPP2PPP/R3K2R w KQkq - 0 1"
	FoolsMateFEN  = "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3"
	StalemateFEN  = "k7/2Q5/1K6/8/8/8/8/8 b - - 0 1"
	EnPassantFEN  = "rnbqkbnr/ppp1p1pp/8/3pPp2/8/8/PPPP1PPP/RNBQKBNR w KQkq f6 0 3"
	PromotionFEN  = "8/4P1k1/8/8/8/8/8/4K3 w - - 0 1"
	KingsOnlyFEN  = "4k3/8/8/8/8/8/8/4K3 w - - 0 1"
	MidgameFEN    = "r1bqkb1r/pppp1ppp/2n2n2/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R w KQkq - 4 4"
	KiwipeteFEN   = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	FoolsMateLine = "f2f3 e7e5 g2g4 d8h4"
)

// Sq parses an algebraic square, failing the test on bad input.
func Sq(t testing.TB, s string) chess.Square {
	t.Helper()
	sq, err := chess.ParseSquare(s)
	if err != nil {
		t.Fatalf("bad square %q: %v", s, err)
	}
	return sq
}

// Squares parses a list of algebraic squares.
func Squares(t testing.TB, names ...string) []chess.Square {
	t.Helper()
	out := make([]chess.Square, 0, len(names))
	for _, n := range names {
		out = append(out, Sq(t, n))
	}
	return out
}

// Mv parses long algebraic move text, failing the test on bad input.
func Mv(t testing.TB, text string) chess.Move {
	t.Helper()
	m, err := chess.ParseMove(text)
	if err != nil {
		t.Fatalf("bad move %q: %v", text, err)
	}
	return m
}

// Mvs parses a whitespace separated move list.
func Mvs(t testing.TB, text string) []chess.Move {
	t.Helper()
	moves, err := chess.ParseMoves(text)
	if err != nil {
		t.Fatalf("bad move list %q: %v", text, err)
	}
	return moves
}
