// Package engine provides chess move validation and position manipulation.
package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// FEN field indices.
const (
	fieldBoard = iota
	fieldSide
	fieldCastling
	fieldEnPassant
	fieldHalfmove
	fieldFullmove
	numFENFields
)

// minFENFields is the number of fields that must be present; the clocks default.
const minFENFields = fieldHalfmove

// NewPositionFromFEN creates a position from a FEN string.
// Malformed input yields a *errors.ParseError wrapping errors.ErrInvalidFEN.
func NewPositionFromFEN(fen string) (*chess.Position, error) {
	parts := strings.Fields(fen)
	if len(parts) < minFENFields || len(parts) > numFENFields {
		return nil, &errors.ParseError{
			Err: errors.ErrInvalidFEN,
			FEN: fen,
			Got: fmt.Sprintf("%d fields, want %d to %d", len(parts), minFENFields, numFENFields),
		}
	}

	pos := chess.NewPosition()

	if err := parsePiecePositions(pos, parts[fieldBoard]); err != nil {
		return nil, withFEN(err, fen)
	}
	if err := parseSideToMove(pos, parts[fieldSide]); err != nil {
		return nil, withFEN(err, fen)
	}
	if err := parseCastlingRights(pos, parts[fieldCastling]); err != nil {
		return nil, withFEN(err, fen)
	}
	if err := parseEnPassant(pos, parts[fieldEnPassant]); err != nil {
		return nil, withFEN(err, fen)
	}
	if err := parseClocks(pos, parts); err != nil {
		return nil, withFEN(err, fen)
	}

	return pos, nil
}

// withFEN records the full input on a ParseError.
func withFEN(err error, fen string) error {
	var pe *errors.ParseError
	if errors.As(err, &pe) {
		pe.FEN = fen
	}
	return err
}

// fieldError builds the ParseError for a single FEN field.
func fieldError(field, value, got string) error {
	return &errors.ParseError{
		Err:   errors.ErrInvalidFEN,
		Field: field,
		Value: value,
		Got:   got,
	}
}

// parsePiecePositions parses the piece placement field of a FEN string.
// FEN ranks run from 8 down to 1; every rank must describe exactly 8 files.
func parsePiecePositions(pos *chess.Position, placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != chess.BoardSize {
		return fieldError("board", placement, fmt.Sprintf("%d ranks, want %d", len(ranks), chess.BoardSize))
	}

	for fenRank, rankText := range ranks {
		rank := chess.BoardSize - 1 - fenRank
		file := 0
		for i := 0; i < len(rankText); i++ {
			c := rankText[i]
			switch {
			case c >= '1' && c <= '8':
				file += int(c - '0')
			default:
				piece, ok := chess.PieceFromFENLetter(c)
				if !ok {
					return fieldError("board", placement, fmt.Sprintf("invalid piece character %q", c))
				}
				if file >= chess.BoardSize {
					return fieldError("board", placement, fmt.Sprintf("rank %d overflows", rank+1))
				}
				pos.Board[rank][file] = piece
				file++
			}
			if file > chess.BoardSize {
				return fieldError("board", placement, fmt.Sprintf("rank %d overflows", rank+1))
			}
		}
		if file != chess.BoardSize {
			return fieldError("board", placement, fmt.Sprintf("rank %d has %d files, want %d", rank+1, file, chess.BoardSize))
		}
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(pos *chess.Position, side string) error {
	switch side {
	case "w":
		pos.ToMove = chess.White
	case "b":
		pos.ToMove = chess.Black
	default:
		return fieldError("side", side, "want w or b")
	}
	return nil
}

// parseCastlingRights parses the castling availability field.
func parseCastlingRights(pos *chess.Position, castling string) error {
	pos.Castling = chess.NoCastling
	if castling == "-" {
		return nil
	}
	if castling == "" {
		return fieldError("castling", castling, "empty")
	}

	for i := 0; i < len(castling); i++ {
		right, ok := chess.CastlingRightFromLetter(castling[i])
		if !ok {
			return fieldError("castling", castling, fmt.Sprintf("invalid character %q", castling[i]))
		}
		if pos.Castling.Has(right) {
			return fieldError("castling", castling, fmt.Sprintf("repeated %q", castling[i]))
		}
		pos.Castling |= right
	}
	return nil
}

// parseEnPassant parses the en passant target square field.
func parseEnPassant(pos *chess.Position, ep string) error {
	pos.SetEnPassant(chess.NoSquare, false)
	if ep == "-" {
		return nil
	}
	sq, err := chess.ParseSquare(ep)
	if err != nil {
		return fieldError("en passant", ep, err.Error())
	}
	if sq.Rank != 2 && sq.Rank != 5 {
		return fieldError("en passant", ep, "target must be on rank 3 or 6")
	}
	pos.SetEnPassant(sq, true)
	return nil
}

// parseClocks parses the halfmove clock and fullmove number fields.
func parseClocks(pos *chess.Position, parts []string) error {
	pos.HalfmoveClock = 0
	pos.MoveNumber = 1

	if len(parts) > fieldHalfmove {
		n, err := strconv.ParseUint(parts[fieldHalfmove], 10, 32)
		if err != nil {
			return fieldError("halfmove", parts[fieldHalfmove], "want a non-negative integer")
		}
		pos.HalfmoveClock = uint(n)
	}
	if len(parts) > fieldFullmove {
		n, err := strconv.ParseUint(parts[fieldFullmove], 10, 32)
		if err != nil || n == 0 {
			return fieldError("fullmove", parts[fieldFullmove], "want a positive integer")
		}
		pos.MoveNumber = uint(n)
	}
	return nil
}

// PositionToFEN converts a position to a FEN string.
func PositionToFEN(pos *chess.Position) string {
	var sb strings.Builder

	writePiecePositions(&sb, &pos.Board)
	sb.WriteByte(' ')
	sb.WriteByte(pos.ToMove.Letter())
	sb.WriteByte(' ')
	sb.WriteString(pos.Castling.String())
	sb.WriteByte(' ')
	writeEnPassant(&sb, pos)
	sb.WriteByte(' ')
	sb.WriteString(strconv.FormatUint(uint64(pos.HalfmoveClock), 10))
	sb.WriteByte(' ')
	sb.WriteString(strconv.FormatUint(uint64(pos.MoveNumber), 10))

	return sb.String()
}

// BoardToFEN returns only the piece placement field for a board.
func BoardToFEN(board *chess.Board) string {
	var sb strings.Builder
	writePiecePositions(&sb, board)
	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		emptyCount := 0
		for file := 0; file < chess.BoardSize; file++ {
			piece := board[rank][file]
			if piece == chess.Empty {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.FENLetter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
}

// writeEnPassant writes the en passant target square to the builder.
func writeEnPassant(sb *strings.Builder, pos *chess.Position) {
	if sq, ok := pos.EnPassantTarget(); ok {
		sb.WriteString(sq.String())
	} else {
		sb.WriteByte('-')
	}
}

// NewInitialPosition creates a position with the standard starting setup.
func NewInitialPosition() *chess.Position {
	pos, err := NewPositionFromFEN(InitialFEN)
	if err != nil {
		panic(err)
	}
	return pos
}
