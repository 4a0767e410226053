// Package output formats positions and batch reports.
package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/lgbarn/chessrules-go/internal/processing"
)

// ReportWriter is the interface for writing batch reports.
type ReportWriter interface {
	// WriteReport writes a single report.
	WriteReport(r *processing.Report) error

	// WriteSummary writes the totals for the run.
	WriteSummary(s *processing.Summary) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close flushes pending output.
	Close() error
}

// TextWriter writes one line per report.
type TextWriter struct {
	w io.Writer
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer) *TextWriter {
	return &TextWriter{w: w}
}

// WriteReport writes a report line.
func (tw *TextWriter) WriteReport(r *processing.Report) error {
	var err error
	switch {
	case r.IllegalMove != "":
		_, err = fmt.Fprintf(tw.w, "line %d: illegal move %s at ply %d: %s\n", r.Line, r.IllegalMove, r.IllegalPly, r.Error)
	case !r.Valid:
		_, err = fmt.Fprintf(tw.w, "line %d: %s\n", r.Line, r.Error)
	default:
		check := ""
		if r.InCheck {
			check = " check"
		}
		_, err = fmt.Fprintf(tw.w, "line %d: %s %s%s after %d plies\n", r.Line, r.FinalFEN, r.Status, check, r.Plies)
	}
	return err
}

// WriteSummary writes the totals line.
func (tw *TextWriter) WriteSummary(s *processing.Summary) error {
	_, err := fmt.Fprintf(tw.w, "%d positions: %d valid, %d invalid, %d checkmate, %d stalemate\n",
		s.Total, s.Valid, s.Invalid, s.Checkmates, s.Stalemates)
	return err
}

// Flush is a no-op; text is written immediately.
func (tw *TextWriter) Flush() error {
	return nil
}

// Close closes the text writer.
func (tw *TextWriter) Close() error {
	return nil
}

// JSONOutput is the document written by a batching JSONWriter.
type JSONOutput struct {
	Reports []*processing.Report `json:"reports"`
	Summary *processing.Summary  `json:"summary,omitempty"`
}

// JSONWriter writes reports in JSON format.
// It buffers reports and writes them as one document on Close or Flush.
type JSONWriter struct {
	w       io.Writer
	reports []*processing.Report
	summary *processing.Summary
	single  bool // If true, write each report immediately as one JSON line
}

// NewJSONWriter creates a batching JSON writer.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{
		w:       w,
		reports: make([]*processing.Report, 0),
	}
}

// NewJSONWriterSingle creates a JSON writer that emits one object per line.
func NewJSONWriterSingle(w io.Writer) *JSONWriter {
	return &JSONWriter{
		w:      w,
		single: true,
	}
}

// WriteReport buffers a report (or writes immediately in single mode).
func (jw *JSONWriter) WriteReport(r *processing.Report) error {
	if jw.single {
		return json.NewEncoder(jw.w).Encode(r)
	}
	jw.reports = append(jw.reports, r)
	return nil
}

// WriteSummary records the totals. In single mode they are written at once.
func (jw *JSONWriter) WriteSummary(s *processing.Summary) error {
	if jw.single {
		return json.NewEncoder(jw.w).Encode(struct {
			Summary *processing.Summary `json:"summary"`
		}{s})
	}
	jw.summary = s
	return nil
}

// Flush writes all buffered reports as a JSON document.
func (jw *JSONWriter) Flush() error {
	if jw.single || (len(jw.reports) == 0 && jw.summary == nil) {
		return nil
	}

	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	err := enc.Encode(&JSONOutput{Reports: jw.reports, Summary: jw.summary})

	jw.reports = jw.reports[:0]
	jw.summary = nil

	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}

// WriteAll writes every report then the summary, and closes rw.
func WriteAll(rw ReportWriter, reports []*processing.Report, summary *processing.Summary) error {
	for _, r := range reports {
		if err := rw.WriteReport(r); err != nil {
			return err
		}
	}
	if summary != nil {
		if err := rw.WriteSummary(summary); err != nil {
			return err
		}
	}
	return rw.Close()
}
