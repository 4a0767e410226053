package processing

import (
	"context"
	"strings"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/testutil"
	"github.com/lgbarn/chessrules-go/internal/worker"
)

func TestParseLine(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		want   worker.Job
		wantOK bool
	}{
		{"blank", "   ", worker.Job{}, false},
		{"comment", "# openings", worker.Job{}, false},
		{"fen only", testutil.StartFEN, worker.Job{Line: 3, FEN: testutil.StartFEN, Moves: []string{}}, true},
		{"fen and moves", testutil.StartFEN + " ; e2e4  e7e5 ", worker.Job{Line: 3, FEN: testutil.StartFEN, Moves: []string{"e2e4", "e7e5"}}, true},
		{"empty move list", testutil.StartFEN + ";", worker.Job{Line: 3, FEN: testutil.StartFEN, Moves: []string{}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseLine(tt.text, 3)
			testutil.AssertEqual(t, ok, tt.wantOK)
			if ok {
				testutil.AssertEqual(t, got.FEN, tt.want.FEN)
				testutil.AssertEqual(t, got.Line, tt.want.Line)
				testutil.AssertEqual(t, len(got.Moves), len(tt.want.Moves))
				for i := range got.Moves {
					testutil.AssertEqual(t, got.Moves[i], tt.want.Moves[i])
				}
			}
		})
	}
}

func TestCheckPosition(t *testing.T) {
	tests := []struct {
		name  string
		fen   string
		moves string
		want  Report
	}{
		{
			name:  "start position",
			fen:   testutil.StartFEN,
			moves: "",
			want: Report{
				FEN: testutil.StartFEN, FinalFEN: testutil.StartFEN,
				Status: "in_progress", ToMove: "white", Valid: true,
			},
		},
		{
			name:  "fool's mate",
			fen:   testutil.StartFEN,
			moves: testutil.FoolsMateLine,
			want: Report{
				FEN: testutil.StartFEN, FinalFEN: testutil.FoolsMateFEN, Plies: 4,
				Status: "checkmate", Winner: "black", ToMove: "white", InCheck: true, Valid: true,
			},
		},
		{
			name: "stalemate",
			fen:  testutil.StalemateFEN,
			want: Report{
				FEN: testutil.StalemateFEN, FinalFEN: testutil.StalemateFEN,
				Status: "stalemate", ToMove: "black", Valid: true,
			},
		},
		{
			name:  "illegal second move",
			fen:   testutil.StartFEN,
			moves: "e2e4 e2e4 d7d5",
			want: Report{
				FEN: testutil.StartFEN, FinalFEN: testutil.AfterE4FEN, Plies: 1,
				Status: "in_progress", ToMove: "black",
				IllegalMove: "e2e4", IllegalPly: 2,
			},
		},
		{
			name:  "unparseable move",
			fen:   testutil.StartFEN,
			moves: "e2e4 Nf6",
			want: Report{
				FEN: testutil.StartFEN, FinalFEN: testutil.AfterE4FEN, Plies: 1,
				Status: "in_progress", ToMove: "black",
				IllegalMove: "Nf6", IllegalPly: 2,
			},
		},
		{
			name:  "missing promotion",
			fen:   testutil.PromotionFEN,
			moves: "e7e8",
			want: Report{
				FEN: testutil.PromotionFEN, FinalFEN: testutil.PromotionFEN,
				Status: "in_progress", ToMove: "white",
				IllegalMove: "e7e8", IllegalPly: 1,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CheckPosition(tt.fen, strings.Fields(tt.moves))
			if tt.want.IllegalMove != "" {
				if got.Error == "" {
					t.Error("Error is empty for a rejected move")
				}
				got.Error = ""
			}
			testutil.AssertEqual(t, *got, tt.want)
		})
	}
}

func TestCheckPosition_BadFEN(t *testing.T) {
	got := CheckPosition("not a fen", nil)
	testutil.AssertFalse(t, got.Valid)
	testutil.AssertEqual(t, got.FinalFEN, "")
	testutil.AssertContains(t, got.Error, errors.ErrInvalidFEN.Error())
}

const batchInput = `# sample batch
rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1 ; f2f3 e7e5 g2g4 d8h4

k7/2Q5/1K6/8/8/8/8/8 b - - 0 1
bogus
rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1 ; e2e5
4k3/3P4/8/8/8/8/8/4K3 b - - 0 1
`

func TestCheckerRun(t *testing.T) {
	for _, workers := range []int{1, 4} {
		c := NewChecker(config.BatchConfig{Workers: workers, Buffer: 2})
		reports, summary, err := c.Run(context.Background(), strings.NewReader(batchInput))
		testutil.AssertNoError(t, err)

		lines := make([]int, len(reports))
		for i, r := range reports {
			lines[i] = r.Line
		}
		testutil.AssertEqual(t, lines, []int{2, 4, 5, 6, 7}, "workers=%d", workers)
		testutil.AssertEqual(t, reports[0].Status, "checkmate")
		testutil.AssertEqual(t, reports[1].Status, "stalemate")
		testutil.AssertFalse(t, reports[2].Valid)
		testutil.AssertEqual(t, reports[3].IllegalMove, "e2e5")
		testutil.AssertTrue(t, reports[4].InCheck)

		testutil.AssertEqual(t, *summary, Summary{
			Total: 5, Valid: 3, Invalid: 2, Checkmates: 1, Stalemates: 1, InCheck: 2,
		})
	}
}

func TestCheckerRun_FailFast(t *testing.T) {
	var b strings.Builder
	b.WriteString("bogus\n")
	for i := 0; i < 200; i++ {
		b.WriteString(testutil.StartFEN + "\n")
	}

	c := NewChecker(config.BatchConfig{Workers: 1, Buffer: 1}, WithFailFast(true))
	reports, summary, err := c.Run(context.Background(), strings.NewReader(b.String()))
	testutil.AssertNoError(t, err)
	testutil.AssertTrue(t, len(reports) < 201, "fail fast checked all %d lines", len(reports))
	testutil.AssertEqual(t, reports[0].Line, 1)
	testutil.AssertEqual(t, summary.Invalid, 1)
}

func TestCheckerRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := NewChecker(config.BatchConfig{Workers: 2})
	_, _, err := c.Run(ctx, strings.NewReader(testutil.StartFEN+"\n"))
	testutil.AssertErrorIs(t, err, context.Canceled)
}

func TestNewChecker_DefaultWorkers(t *testing.T) {
	c := NewChecker(config.BatchConfig{})
	testutil.AssertTrue(t, c.workers >= 1)
}
