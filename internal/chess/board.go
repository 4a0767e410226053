package chess

import (
	"fmt"
)

// Square identifies a board square by file (0 = a) and rank (0 = "1").
type Square struct {
	File int
	Rank int
}

// NoSquare is used where a square is absent.
var NoSquare = Square{File: -1, Rank: -1}

// NewSquare returns the square at file, rank.
func NewSquare(file, rank int) Square {
	return Square{File: file, Rank: rank}
}

// Valid reports whether the square lies on the board.
func (s Square) Valid() bool {
	return s.File >= 0 && s.File < BoardSize && s.Rank >= 0 && s.Rank < BoardSize
}

// Offset returns the square df files and dr ranks away. The result may be off the board.
func (s Square) Offset(df, dr int) Square {
	return Square{File: s.File + df, Rank: s.Rank + dr}
}

// String returns the algebraic form, e.g. "e4".
func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return string([]byte{byte(FileBase + s.File), byte(RankBase + s.Rank)})
}

// ParseSquare converts an algebraic square such as "e4".
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return NoSquare, fmt.Errorf("square %q: want two characters", s)
	}
	sq := Square{File: int(s[0]) - FileBase, Rank: int(s[1]) - RankBase}
	if !sq.Valid() {
		return NoSquare, fmt.Errorf("square %q: off the board", s)
	}
	return sq, nil
}

// MustParseSquare is ParseSquare for literals known to be valid.
func MustParseSquare(s string) Square {
	sq, err := ParseSquare(s)
	if err != nil {
		panic(err)
	}
	return sq
}

// Board is an 8x8 grid indexed [rank][file], rank 0 being White's back rank.
// Board is a value type: assigning it copies every square.
type Board [BoardSize][BoardSize]Piece

// Get returns the piece on sq, or Empty when sq is off the board.
func (b *Board) Get(sq Square) Piece {
	if !sq.Valid() {
		return Empty
	}
	return b[sq.Rank][sq.File]
}

// At returns the piece on the given file and rank indices.
func (b *Board) At(file, rank int) Piece {
	return b.Get(Square{File: file, Rank: rank})
}

// Set places a piece on sq. Squares off the board are ignored.
func (b *Board) Set(sq Square, p Piece) {
	if sq.Valid() {
		b[sq.Rank][sq.File] = p
	}
}

// IsEmpty reports whether sq holds no piece.
func (b *Board) IsEmpty(sq Square) bool {
	return b.Get(sq) == Empty
}

// Squares returns every square holding a piece of the given colour,
// in rank-major order starting from a1.
func (b *Board) Squares(colour Colour) []Square {
	var out []Square
	for rank := 0; rank < BoardSize; rank++ {
		for file := 0; file < BoardSize; file++ {
			p := b[rank][file]
			if p != Empty && p.Colour() == colour {
				out = append(out, Square{File: file, Rank: rank})
			}
		}
	}
	return out
}

// String draws the board from rank 8 down, one rank per line.
func (b *Board) String() string {
	out := make([]byte, 0, (BoardSize+1)*BoardSize)
	for rank := BoardSize - 1; rank >= 0; rank-- {
		for file := 0; file < BoardSize; file++ {
			out = append(out, b[rank][file].FENLetter())
		}
		out = append(out, '\n')
	}
	return string(out)
}

// Position is the complete game state carried by a FEN string.
type Position struct {
	Board Board

	// Who has the next move.
	ToMove Colour

	// Castling options still available.
	Castling CastlingRights

	// Is en passant capture possible? If so then EPSquare is the square
	// a pawn skipped over on the previous move.
	EnPassant bool
	EPSquare  Square

	// The half-move clock since the last pawn move or capture.
	HalfmoveClock uint

	// The current full move number, incremented after Black moves.
	MoveNumber uint
}

// NewPosition returns an empty board with White to move on move 1.
func NewPosition() *Position {
	return &Position{
		ToMove:     White,
		MoveNumber: 1,
		EPSquare:   NoSquare,
	}
}

// Copy creates a deep copy of the position.
func (p *Position) Copy() *Position {
	newPos := &Position{}
	*newPos = *p
	return newPos
}

// EnPassantTarget returns the en passant target, if any.
func (p *Position) EnPassantTarget() (Square, bool) {
	if !p.EnPassant {
		return NoSquare, false
	}
	return p.EPSquare, true
}

// SetEnPassant sets or clears the en passant target.
func (p *Position) SetEnPassant(sq Square, ok bool) {
	p.EnPassant = ok
	if ok {
		p.EPSquare = sq
	} else {
		p.EPSquare = NoSquare
	}
}
