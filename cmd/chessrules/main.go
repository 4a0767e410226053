// chessrules inspects chess positions: it decodes FEN, plays moves,
// lists legal moves and checks batches of positions.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"go.uber.org/zap"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/logging"
	"github.com/lgbarn/chessrules-go/internal/output"
	"github.com/lgbarn/chessrules-go/internal/processing"
)

const programVersion = "0.1.0"

// Exit codes.
const (
	exitOK      = 0
	exitInvalid = 1 // a position or move was rejected
	exitUsage   = 2
)

func main() {
	flag.Usage = usage
	flag.Parse()
	os.Exit(run())
}

func run() int {
	if *help {
		usage()
		return exitOK
	}
	if *version {
		fmt.Printf("chessrules version %s\n", programVersion)
		return exitOK
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitUsage
	}
	applyFlags(cfg)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitUsage
	}

	logger, err := logging.FromConfig(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitUsage
	}
	defer func() { _ = logger.Sync() }()

	out := io.Writer(os.Stdout)
	if *outputFile != "" {
		file, err := os.Create(*outputFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
			return exitUsage
		}
		defer file.Close()
		out = file
	}

	if *batchFile != "" {
		return runBatch(cfg, logger, out)
	}
	return runPosition(out, os.Stderr)
}

// runPosition handles the single-position mode.
func runPosition(out, errOut io.Writer) int {
	pos, err := playMoves(*fenFlag, *movesFlag)
	if err != nil {
		fmt.Fprintf(errOut, "Error: %v\n", err)
		return exitInvalid
	}

	if *legalFrom != "" {
		return printLegalFrom(out, errOut, pos, *legalFrom)
	}

	if *jsonOutput {
		if err := output.WritePositionJSON(out, pos); err != nil {
			fmt.Fprintf(errOut, "Error: %v\n", err)
			return exitInvalid
		}
		return exitOK
	}
	output.WritePosition(out, pos, *lineLength)
	return exitOK
}

// playMoves decodes fen (the initial position when empty) and plays moves.
func playMoves(fen, moves string) (*chess.Position, error) {
	if fen == "" {
		fen = engine.InitialFEN
	}
	pos, err := engine.NewPositionFromFEN(fen)
	if err != nil {
		return nil, err
	}
	parsed, err := chess.ParseMoves(moves)
	if err != nil {
		return nil, err
	}
	return engine.ApplyMoves(pos, parsed)
}

// legalMovesView is the -J form of -legal.
type legalMovesView struct {
	From  string   `json:"from"`
	Moves []string `json:"moves"`
}

func printLegalFrom(out, errOut io.Writer, pos *chess.Position, square string) int {
	from, err := chess.ParseSquare(strings.ToLower(square))
	if err != nil {
		fmt.Fprintf(errOut, "Error: %v\n", err)
		return exitUsage
	}

	moves := []string{}
	for _, m := range engine.AllLegalMoves(pos) {
		if m.From == from {
			moves = append(moves, m.String())
		}
	}

	if *jsonOutput {
		enc := json.NewEncoder(out)
		if err := enc.Encode(legalMovesView{From: from.String(), Moves: moves}); err != nil {
			fmt.Fprintf(errOut, "Error: %v\n", err)
			return exitInvalid
		}
		return exitOK
	}
	output.WriteMoves(out, moves, *lineLength)
	return exitOK
}

// runBatch checks every line of -batch and writes the reports.
func runBatch(cfg *config.Config, logger *zap.Logger, out io.Writer) int {
	in, err := openInput(*batchFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitUsage
	}
	defer in.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	checker := processing.NewChecker(cfg.Batch,
		processing.WithFailFast(*failFast),
		processing.WithLogger(logger))
	reports, summary, err := checker.Run(ctx, in)
	if err != nil {
		logger.Warn("batch interrupted", zap.Error(err))
	}

	var w output.ReportWriter = output.NewTextWriter(out)
	if *jsonOutput {
		w = output.NewJSONWriter(out)
	}
	if werr := output.WriteAll(w, reports, summary); werr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", werr)
		return exitUsage
	}

	if err != nil || summary.Invalid > 0 {
		return exitInvalid
	}
	return exitOK
}

func openInput(name string) (io.ReadCloser, error) {
	if name == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(name)
}

func usage() {
	fmt.Fprintf(os.Stderr, `chessrules %s - chess position and move checker

Usage:
  chessrules [-fen FEN] [-moves "e2e4 e7e5"] [-legal e2] [-J]
  chessrules -batch positions.txt [-workers N] [-failfast] [-J]

Options:
`, programVersion)
	flag.PrintDefaults()
}
