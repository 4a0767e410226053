package engine

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

func TestRuleFor(t *testing.T) {
	for _, pt := range []chess.PieceType{chess.Pawn, chess.Knight, chess.Bishop, chess.Rook, chess.Queen, chess.King} {
		if RuleFor(pt) == nil {
			t.Errorf("RuleFor(%v) = nil", pt)
		}
	}
	if RuleFor(chess.NoPieceType) != nil {
		t.Error("RuleFor(NoPieceType) != nil")
	}
}

func TestIsMoveType(t *testing.T) {
	tests := []struct {
		name     string
		fen      string
		from, to string
		want     bool
	}{
		// Pawn
		{"pawn single step", InitialFEN, "e2", "e3", true},
		{"pawn double step", InitialFEN, "e2", "e4", true},
		{"pawn triple step", InitialFEN, "e2", "e5", false},
		{"pawn backwards", "4k3/8/8/8/4P3/8/8/4K3 w - - 0 1", "e4", "e3", false},
		{"pawn double step off start rank", "4k3/8/8/8/8/4P3/8/4K3 w - - 0 1", "e3", "e5", false},
		{"pawn double step jumping piece", "4k3/8/8/8/8/4n3/4P3/4K3 w - - 0 1", "e2", "e4", false},
		{"pawn single step blocked", "4k3/8/8/8/8/4n3/4P3/4K3 w - - 0 1", "e2", "e3", false},
		{"pawn diagonal capture", "4k3/8/8/8/8/3n4/4P3/4K3 w - - 0 1", "e2", "d3", true},
		{"pawn diagonal onto empty", InitialFEN, "e2", "d3", false},
		{"black pawn moves down", "4k3/4p3/8/8/8/8/8/4K3 b - - 0 1", "e7", "e5", true},
		{"black pawn cannot move up", "4k3/8/8/4p3/8/8/8/4K3 b - - 0 1", "e5", "e6", false},
		{"en passant onto target", testutil.EnPassantFEN, "e5", "f6", true},
		{"diagonal onto non-target empty", testutil.EnPassantFEN, "e5", "d6", false},
		{"en passant without target", "rnbqkbnr/ppp1p1pp/8/3pPp2/8/8/PPPP1PPP/RNBQKBNR w KQkq - 0 3", "e5", "f6", false},

		// Knight
		{"knight L", InitialFEN, "g1", "f3", true},
		{"knight long L", InitialFEN, "g1", "e2", true},
		{"knight straight", InitialFEN, "g1", "g3", false},
		{"knight jumps over pieces", InitialFEN, "b1", "c3", true},

		// Bishop
		{"bishop diagonal", "4k3/8/8/8/8/8/8/2B1K3 w - - 0 1", "c1", "h6", true},
		{"bishop straight", "4k3/8/8/8/8/8/8/2B1K3 w - - 0 1", "c1", "c5", false},
		{"bishop blocked", InitialFEN, "c1", "e3", false},
		{"bishop onto blocker", "4k3/8/8/8/8/8/3p4/2B1K3 w - - 0 1", "c1", "d2", true},
		{"bishop past blocker", "4k3/8/8/8/8/8/3p4/2B1K3 w - - 0 1", "c1", "e3", false},

		// Rook
		{"rook file", "4k3/8/8/8/8/8/8/R3K3 w - - 0 1", "a1", "a8", true},
		{"rook rank", "4k3/8/8/8/8/8/8/R3K3 w - - 0 1", "a1", "d1", true},
		{"rook through king", "4k3/8/8/8/8/8/8/R3K3 w - - 0 1", "a1", "f1", false},
		{"rook diagonal", "4k3/8/8/8/8/8/8/R3K3 w - - 0 1", "a1", "b2", false},

		// Queen
		{"queen diagonal", "4k3/8/8/8/8/8/8/3QK3 w - - 0 1", "d1", "h5", true},
		{"queen straight", "4k3/8/8/8/8/8/8/3QK3 w - - 0 1", "d1", "d8", true},
		{"queen knight shape", "4k3/8/8/8/8/8/8/3QK3 w - - 0 1", "d1", "e3", false},
		{"queen blocked", InitialFEN, "d1", "d4", false},

		// King
		{"king step", "4k3/8/8/8/8/8/8/4K3 w - - 0 1", "e1", "d2", true},
		{"king two squares without castling", "4k3/8/8/8/8/8/8/4K3 w - - 0 1", "e1", "e3", false},
		{"castle kingside", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", "e1", "g1", true},
		{"castle queenside", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", "e1", "c1", true},
		{"black castle kingside", "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1", "e8", "g8", true},
		{"castle without right", "r3k2r/8/8/8/8/8/8/R3K2R w Qkq - 0 1", "e1", "g1", false},
		{"castle with blocked path", "r3k2r/8/8/8/8/8/8/R3KB1R w KQkq - 0 1", "e1", "g1", false},
		{"castle queenside with b-file blocked", "r3k2r/8/8/8/8/8/8/RN2K2R w KQkq - 0 1", "e1", "c1", false},
		{"castle while in check", "4k3/8/8/8/8/8/8/R3K2r w Q - 0 1", "e1", "c1", false},
		{"castle through attacked square", "4kr2/8/8/8/8/8/8/4K2R w K - 0 1", "e1", "g1", false},
		{"castle with missing rook", "4k3/8/8/8/8/8/8/4K3 w K - 0 1", "e1", "g1", false},
		{"castle with enemy rook on corner", "4k3/8/8/8/8/8/8/4K2r w K - 0 1", "e1", "g1", false},
		{"castle from wrong square", "4k3/8/8/8/8/8/8/3K3R w K - 0 1", "d1", "f1", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := mustPosition(t, tt.fen)
			from := testutil.Sq(t, tt.from)
			ctx := newMoveContext(pos, chess.NewMove(from, testutil.Sq(t, tt.to)))
			rule := RuleFor(pos.Board.Get(from).Type())
			if rule == nil {
				t.Fatalf("no piece on %s", tt.from)
			}
			if got := rule.IsMoveType(ctx); got != tt.want {
				t.Errorf("IsMoveType(%s-%s) = %v; want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestApplyRule(t *testing.T) {
	tests := []struct {
		name      string
		fen       string
		move      string
		wantBoard string
		want      MoveResult
	}{
		{
			name:      "pawn double step sets target",
			fen:       InitialFEN,
			move:      "e2e4",
			wantBoard: "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR",
			want:      MoveResult{EnPassant: true, EPSquare: chess.MustParseSquare("e3")},
		},
		{
			name:      "black double step target is behind the pawn",
			fen:       testutil.AfterE4FEN,
			move:      "c7c5",
			wantBoard: "rnbqkbnr/pp1ppppp/8/2p5/4P3/8/PPPP1PPP/RNBQKBNR",
			want:      MoveResult{EnPassant: true, EPSquare: chess.MustParseSquare("c6")},
		},
		{
			name:      "en passant removes the passed pawn",
			fen:       testutil.EnPassantFEN,
			move:      "e5f6",
			wantBoard: "rnbqkbnr/ppp1p1pp/5P2/3p4/8/8/PPPP1PPP/RNBQKBNR",
			want:      MoveResult{Captured: true, EPSquare: chess.NoSquare},
		},
		{
			name:      "promotion substitutes piece",
			fen:       testutil.PromotionFEN,
			move:      "e7e8n",
			wantBoard: "4N3/6k1/8/8/8/8/8/4K3",
			want:      MoveResult{EPSquare: chess.NoSquare},
		},
		{
			name:      "knight move",
			fen:       "4k3/8/8/8/8/5p2/8/4KN2 w - - 0 1",
			move:      "f1e3",
			wantBoard: "4k3/8/8/8/8/4Np2/8/4K3",
			want:      MoveResult{},
		},
		{
			name:      "rook capture",
			fen:       "4k2r/8/8/8/8/8/8/4K2R w - - 0 1",
			move:      "h1h8",
			wantBoard: "4k2R/8/8/8/8/8/8/4K3",
			want:      MoveResult{Captured: true},
		},
		{
			name:      "kingside castle relocates rook",
			fen:       "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
			move:      "e1g1",
			wantBoard: "r3k2r/8/8/8/8/8/8/R4RK1",
			want:      MoveResult{EPSquare: chess.NoSquare},
		},
		{
			name:      "queenside castle relocates rook",
			fen:       "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1",
			move:      "e8c8",
			wantBoard: "2kr3r/8/8/8/8/8/8/R3K2R",
			want:      MoveResult{EPSquare: chess.NoSquare},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := mustPosition(t, tt.fen)
			before := PositionToFEN(pos)
			move := testutil.Mv(t, tt.move)
			ctx := newMoveContext(pos, move)
			got := RuleFor(pos.Board.Get(move.From).Type()).Apply(ctx)

			testutil.AssertEqual(t, BoardToFEN(ctx.Board), tt.wantBoard)
			if tt.want.Captured != got.Captured || tt.want.EnPassant != got.EnPassant {
				t.Errorf("Apply(%s) = %+v; want %+v", tt.move, got, tt.want)
			}
			if tt.want.EnPassant && got.EPSquare != tt.want.EPSquare {
				t.Errorf("Apply(%s).EPSquare = %v; want %v", tt.move, got.EPSquare, tt.want.EPSquare)
			}
			// Rules only ever touch the context's board.
			testutil.AssertEqual(t, PositionToFEN(pos), before)
		})
	}
}
