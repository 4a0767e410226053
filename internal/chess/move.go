package chess

import (
	"fmt"
	"strings"
)

// Move is a request to move the piece on From to To.
// Promotion names the piece a pawn becomes on the last rank (NoPieceType otherwise).
type Move struct {
	From      Square
	To        Square
	Promotion PieceType
}

// NewMove creates a move without promotion.
func NewMove(from, to Square) Move {
	return Move{From: from, To: to}
}

// IsPromotion returns true if this move names a promotion piece.
func (m Move) IsPromotion() bool {
	return m.Promotion != NoPieceType
}

// String renders the move in long algebraic form, e.g. "e2e4" or "e7e8q".
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	if m.IsPromotion() {
		s += strings.ToLower(string(m.Promotion.Letter()))
	}
	return s
}

// ParseMove parses long algebraic move text such as "e2e4" or "e7e8q".
// A separating '-' ("e2-e4") is accepted.
func ParseMove(text string) (Move, error) {
	s := strings.TrimSpace(strings.ReplaceAll(text, "-", ""))
	if len(s) != 4 && len(s) != 5 {
		return Move{}, fmt.Errorf("move %q: want 4 or 5 characters", text)
	}
	from, err := ParseSquare(s[0:2])
	if err != nil {
		return Move{}, fmt.Errorf("move %q: %w", text, err)
	}
	to, err := ParseSquare(s[2:4])
	if err != nil {
		return Move{}, fmt.Errorf("move %q: %w", text, err)
	}
	m := Move{From: from, To: to}
	if len(s) == 5 {
		m.Promotion = ParsePieceType(s[4])
		if !m.Promotion.IsPromotionPiece() {
			return Move{}, fmt.Errorf("move %q: invalid promotion piece %q", text, s[4])
		}
	}
	return m, nil
}

// ParseMoves parses a whitespace separated list of moves.
func ParseMoves(text string) ([]Move, error) {
	fields := strings.Fields(text)
	moves := make([]Move, 0, len(fields))
	for _, f := range fields {
		m, err := ParseMove(f)
		if err != nil {
			return nil, err
		}
		moves = append(moves, m)
	}
	return moves, nil
}
