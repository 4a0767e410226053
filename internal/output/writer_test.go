package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/processing"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

func sampleReports() ([]*processing.Report, *processing.Summary) {
	reports := []*processing.Report{
		processing.CheckPosition(testutil.StartFEN, strings.Fields(testutil.FoolsMateLine)),
		processing.CheckPosition(testutil.StartFEN, []string{"e2e5"}),
		processing.CheckPosition("garbage", nil),
	}
	summary := &processing.Summary{}
	for i, r := range reports {
		r.Line = i + 1
		summary.Add(r)
	}
	return reports, summary
}

func TestTextWriter(t *testing.T) {
	reports, summary := sampleReports()

	var buf bytes.Buffer
	testutil.AssertNoError(t, WriteAll(NewTextWriter(&buf), reports, summary))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want 4:\n%s", len(lines), buf.String())
	}
	testutil.AssertEqual(t, lines[0], "line 1: "+testutil.FoolsMateFEN+" checkmate check after 4 plies")
	testutil.AssertContains(t, lines[1], "line 2: illegal move e2e5 at ply 1")
	testutil.AssertContains(t, lines[2], "line 3: ")
	testutil.AssertEqual(t, lines[3], "3 positions: 1 valid, 2 invalid, 1 checkmate, 0 stalemate")
}

func TestJSONWriter_Batch(t *testing.T) {
	reports, summary := sampleReports()

	var buf bytes.Buffer
	w := NewJSONWriter(&buf)
	testutil.AssertNoError(t, WriteAll(w, reports, summary))

	var doc JSONOutput
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, buf.String())
	}
	testutil.AssertEqual(t, len(doc.Reports), 3)
	testutil.AssertEqual(t, doc.Reports[0].Status, "checkmate")
	testutil.AssertEqual(t, doc.Reports[1].IllegalMove, "e2e5")
	testutil.AssertEqual(t, *doc.Summary, *summary)

	// A second close has nothing left to write.
	buf.Reset()
	testutil.AssertNoError(t, w.Close())
	testutil.AssertEqual(t, buf.Len(), 0)
}

func TestJSONWriter_Single(t *testing.T) {
	reports, summary := sampleReports()

	var buf bytes.Buffer
	w := NewJSONWriterSingle(&buf)
	testutil.AssertNoError(t, WriteAll(w, reports, summary))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	testutil.AssertEqual(t, len(lines), 4)
	for _, line := range lines {
		if !json.Valid([]byte(line)) {
			t.Errorf("invalid JSON line: %s", line)
		}
	}
	testutil.AssertContains(t, lines[3], `"summary"`)
}

func TestReportWriter_Interface(t *testing.T) {
	var _ ReportWriter = NewTextWriter(nil)
	var _ ReportWriter = NewJSONWriter(nil)
}
