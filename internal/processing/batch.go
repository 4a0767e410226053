package processing

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"runtime"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/worker"
)

// MoveSeparator splits a batch line into its FEN and move list.
const MoveSeparator = ";"

// ParseLine reads one batch line of the form "FEN [; move move ...]".
// Blank lines and lines starting with '#' yield ok == false.
func ParseLine(text string, line int) (job worker.Job, ok bool) {
	text = strings.TrimSpace(text)
	if text == "" || strings.HasPrefix(text, "#") {
		return worker.Job{}, false
	}
	fen, moves, _ := strings.Cut(text, MoveSeparator)
	return worker.Job{
		Line:  line,
		FEN:   strings.TrimSpace(fen),
		Moves: strings.Fields(moves),
	}, true
}

// Summary totals a batch run.
type Summary struct {
	Total      int `json:"total"`
	Valid      int `json:"valid"`
	Invalid    int `json:"invalid"`
	Checkmates int `json:"checkmates"`
	Stalemates int `json:"stalemates"`
	InCheck    int `json:"in_check"`
}

// Add counts one report.
func (s *Summary) Add(r *Report) {
	s.Total++
	if !r.Valid {
		s.Invalid++
		return
	}
	s.Valid++
	switch r.Status {
	case "checkmate":
		s.Checkmates++
	case "stalemate":
		s.Stalemates++
	}
	if r.InCheck {
		s.InCheck++
	}
}

// Checker runs CheckPosition over many jobs with a worker pool.
type Checker struct {
	workers  int
	buffer   int
	failFast bool
	logger   *zap.Logger
}

// CheckerOption configures a Checker.
type CheckerOption func(*Checker)

// WithFailFast stops the batch after the first invalid line.
func WithFailFast(enabled bool) CheckerOption {
	return func(c *Checker) { c.failFast = enabled }
}

// WithLogger sets the logger used for per-line diagnostics.
func WithLogger(l *zap.Logger) CheckerOption {
	return func(c *Checker) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewChecker builds a Checker from the [batch] section.
// Zero workers means one per CPU.
func NewChecker(cfg config.BatchConfig, opts ...CheckerOption) *Checker {
	c := &Checker{
		workers: cfg.Workers,
		buffer:  cfg.Buffer,
		logger:  zap.NewNop(),
	}
	if c.workers <= 0 {
		c.workers = runtime.NumCPU()
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Run checks every line of r and returns the reports in input order.
// Cancelling ctx stops the batch early; the reports gathered so far are
// returned together with ctx.Err().
func (c *Checker) Run(ctx context.Context, r io.Reader) ([]*Report, *Summary, error) {
	pool := worker.NewPool(c.process,
		worker.WithWorkers(c.workers),
		worker.WithBufferSize(c.buffer))
	pool.Start()

	scanErr := make(chan error, 1)
	go func() {
		defer pool.Close()
		scanErr <- c.feed(ctx, pool, r)
	}()

	var reports []*Report
	summary := &Summary{}
	for res := range pool.Results() {
		report := res.Report.(*Report)
		report.Line = res.Line
		reports = append(reports, report)
		summary.Add(report)

		if !report.Valid {
			c.logger.Debug("invalid batch line",
				zap.Int("line", res.Line),
				zap.String("fen", report.FEN),
				zap.String("error", report.Error))
			if c.failFast {
				pool.Stop()
			}
		}
	}

	sort.Slice(reports, func(i, j int) bool { return reports[i].Line < reports[j].Line })

	if err := <-scanErr; err != nil {
		return reports, summary, err
	}
	c.logger.Info("batch complete",
		zap.Int("total", summary.Total),
		zap.Int("valid", summary.Valid),
		zap.Int("invalid", summary.Invalid),
		zap.Int("workers", pool.NumWorkers()))
	return reports, summary, nil
}

// feed scans lines into the pool until input ends, ctx is cancelled or
// the pool is stopped.
func (c *Checker) feed(ctx context.Context, pool *worker.Pool, r io.Reader) error {
	scanner := bufio.NewScanner(r)
	lineNo := 0
	index := 0
	for scanner.Scan() {
		lineNo++
		if err := ctx.Err(); err != nil {
			pool.Stop()
			return err
		}
		if pool.IsStopped() {
			return nil
		}
		job, ok := ParseLine(scanner.Text(), lineNo)
		if !ok {
			continue
		}
		job.Index = index
		index++
		pool.Submit(job)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading batch input: %w", err)
	}
	return nil
}

func (c *Checker) process(job worker.Job) worker.Result {
	return worker.Result{
		Index:  job.Index,
		Line:   job.Line,
		Report: CheckPosition(job.FEN, job.Moves),
	}
}
