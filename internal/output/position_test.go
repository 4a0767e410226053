package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

func TestLineWriter_Wraps(t *testing.T) {
	var buf bytes.Buffer
	lw := NewLineWriter(&buf, 10)
	for _, s := range []string{"e2e4", "d2d4", "g1f3", "b1c3"} {
		lw.Write(s)
	}
	lw.NewLine()
	testutil.AssertEqual(t, buf.String(), "e2e4 d2d4\ng1f3 b1c3\n")
}

func TestLineWriter_DefaultLength(t *testing.T) {
	lw := NewLineWriter(&bytes.Buffer{}, 0)
	testutil.AssertEqual(t, lw.maxLineLength, DefaultLineLength)
}

func TestNewPositionView(t *testing.T) {
	pos, err := engine.NewPositionFromFEN(testutil.FoolsMateFEN)
	testutil.AssertNoError(t, err)

	view := NewPositionView(pos)
	testutil.AssertEqual(t, view, &PositionView{
		FEN:        testutil.FoolsMateFEN,
		ToMove:     "white",
		Status:     "checkmate",
		InCheck:    true,
		LegalMoves: []string{},
	})
}

func TestWritePosition(t *testing.T) {
	var buf bytes.Buffer
	WritePosition(&buf, engine.NewInitialPosition(), 0)
	out := buf.String()

	testutil.AssertTrue(t, strings.HasPrefix(out, "rnbqkbnr\npppppppp\n"), "board diagram first")
	testutil.AssertContains(t, out, "FEN:     "+testutil.StartFEN)
	testutil.AssertContains(t, out, "To move: white")
	testutil.AssertContains(t, out, "Moves (20):")
	testutil.AssertContains(t, out, "e2e4")
	testutil.AssertFalse(t, strings.Contains(out, "Check:"))
}

func TestWritePositionJSON(t *testing.T) {
	pos, err := engine.NewPositionFromFEN(testutil.PromotionFEN)
	testutil.AssertNoError(t, err)

	var buf bytes.Buffer
	testutil.AssertNoError(t, WritePositionJSON(&buf, pos))

	var view PositionView
	testutil.AssertNoError(t, json.Unmarshal(buf.Bytes(), &view))
	testutil.AssertEqual(t, view.Status, "in_progress")
	// Four promotions plus five king moves.
	testutil.AssertEqual(t, len(view.LegalMoves), 9)
}
