package engine

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

func mustPosition(t testing.TB, fen string) *chess.Position {
	t.Helper()
	pos, err := NewPositionFromFEN(fen)
	if err != nil {
		t.Fatalf("NewPositionFromFEN(%q) error: %v", fen, err)
	}
	return pos
}

func TestFindKing(t *testing.T) {
	pos := NewInitialPosition()

	sq, ok := FindKing(&pos.Board, chess.White)
	testutil.AssertTrue(t, ok)
	testutil.AssertEqual(t, sq, testutil.Sq(t, "e1"))

	sq, ok = FindKing(&pos.Board, chess.Black)
	testutil.AssertTrue(t, ok)
	testutil.AssertEqual(t, sq, testutil.Sq(t, "e8"))

	empty := chess.Board{}
	sq, ok = FindKing(&empty, chess.White)
	testutil.AssertFalse(t, ok)
	testutil.AssertEqual(t, sq, chess.NoSquare)
}

func TestIsSquareAttackedBy(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		sq   string
		by   chess.Colour
		want bool
	}{
		{"white pawn attacks diagonally up", "4k3/8/8/8/8/3P4/8/4K3 w - - 0 1", "e4", chess.White, true},
		{"white pawn does not attack forward", "4k3/8/8/8/8/3P4/8/4K3 w - - 0 1", "d4", chess.White, false},
		{"white pawn does not attack backwards", "4k3/8/8/8/8/3P4/8/4K3 w - - 0 1", "e2", chess.White, false},
		{"black pawn attacks diagonally down", "4k3/8/3p4/8/8/8/8/4K3 w - - 0 1", "c5", chess.Black, true},
		{"black pawn does not attack up", "4k3/8/3p4/8/8/8/8/4K3 w - - 0 1", "c7", chess.Black, false},
		{"knight jump", "4k3/8/8/8/8/8/8/1N2K3 w - - 0 1", "c3", chess.White, true},
		{"knight not adjacent", "4k3/8/8/8/8/8/8/1N2K3 w - - 0 1", "b2", chess.White, false},
		{"king adjacent", "4k3/8/8/8/8/8/8/4K3 w - - 0 1", "d2", chess.White, true},
		{"king two away", "4k3/8/8/8/8/8/8/4K3 w - - 0 1", "e3", chess.White, false},
		{"bishop long diagonal", "4k3/8/8/8/8/8/8/B3K3 w - - 0 1", "h8", chess.White, true},
		{"bishop blocked", "4k3/8/8/8/8/2p5/8/B3K3 w - - 0 1", "h8", chess.White, false},
		{"bishop attacks blocker", "4k3/8/8/8/8/2p5/8/B3K3 w - - 0 1", "c3", chess.White, true},
		{"rook file", "r3k3/8/8/8/8/8/8/4K3 w - - 0 1", "a1", chess.Black, true},
		{"rook blocked by own piece", "r3k3/p7/8/8/8/8/8/4K3 w - - 0 1", "a1", chess.Black, false},
		{"queen diagonal", "4k3/8/8/8/8/8/8/4K2q w - - 0 1", "a8", chess.Black, true},
		{"queen straight", "4k3/8/8/8/8/8/8/q3K3 w - - 0 1", "a8", chess.Black, true},
		{"rook does not attack diagonally", "4k3/8/8/8/8/8/8/R3K3 w - - 0 1", "b2", chess.White, false},
		{"bishop does not attack straight", "4k3/8/8/8/8/8/8/B3K3 w - - 0 1", "a5", chess.White, false},
		{"colour matters", "4k3/8/8/8/8/8/8/B3K3 w - - 0 1", "h8", chess.Black, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := mustPosition(t, tt.fen)
			got := IsSquareAttackedBy(&pos.Board, testutil.Sq(t, tt.sq), tt.by)
			if got != tt.want {
				t.Errorf("IsSquareAttackedBy(%s, %v) = %v; want %v", tt.sq, tt.by, got, tt.want)
			}
		})
	}
}

func TestIsKingInCheck(t *testing.T) {
	tests := []struct {
		name   string
		fen    string
		colour chess.Colour
		want   bool
	}{
		{"initial position white", InitialFEN, chess.White, false},
		{"initial position black", InitialFEN, chess.Black, false},
		{"fool's mate", testutil.FoolsMateFEN, chess.White, true},
		{"rook check", "4k3/8/8/8/8/8/8/r3K3 w - - 0 1", chess.White, true},
		{"interposed rook check", "4k3/8/8/8/8/8/8/r1B1K3 w - - 0 1", chess.White, false},
		{"pawn check on black", "4k3/3P4/8/8/8/8/8/4K3 b - - 0 1", chess.Black, true},
		{"no king", "8/8/8/8/8/8/8/r7 w - - 0 1", chess.White, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := mustPosition(t, tt.fen)
			if got := IsKingInCheck(&pos.Board, tt.colour); got != tt.want {
				t.Errorf("IsKingInCheck(%v) = %v; want %v", tt.colour, got, tt.want)
			}
		})
	}
}
