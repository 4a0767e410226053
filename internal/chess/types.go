// Package chess provides core chess types and operations.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Letter returns the FEN side-to-move letter for the colour.
func (c Colour) Letter() byte {
	if c == White {
		return 'w'
	}
	return 'b'
}

// Offset returns +1 for White, -1 for Black (for pawn direction).
func (c Colour) Offset() int {
	if c == White {
		return 1
	}
	return -1
}

// HomeRank returns the back rank index of the colour.
func (c Colour) HomeRank() int {
	if c == White {
		return 0
	}
	return BoardSize - 1
}

// PawnRank returns the rank index pawns of the colour start on.
func (c Colour) PawnRank() int {
	if c == White {
		return 1
	}
	return BoardSize - 2
}

// PromotionRank returns the rank index on which pawns of the colour promote.
func (c Colour) PromotionRank() int {
	if c == White {
		return BoardSize - 1
	}
	return 0
}

// ParseColour converts "w"/"b" (or "white"/"black") to a colour.
func ParseColour(s string) (Colour, bool) {
	switch s {
	case "w", "white", "White":
		return White, true
	case "b", "black", "Black":
		return Black, true
	}
	return White, false
}

// PieceType represents a chess piece type without colour.
type PieceType uint8

const (
	NoPieceType PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// String returns the string representation of a piece type.
func (t PieceType) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if int(t) < len(names) {
		return names[t]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece type (uppercase).
func (t PieceType) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if int(t) < len(letters) {
		return letters[t]
	}
	return '?'
}

// ParsePieceType converts a piece letter (either case) to a piece type.
func ParsePieceType(c byte) PieceType {
	switch c {
	case 'K', 'k':
		return King
	case 'Q', 'q':
		return Queen
	case 'R', 'r':
		return Rook
	case 'N', 'n':
		return Knight
	case 'B', 'b':
		return Bishop
	case 'P', 'p':
		return Pawn
	default:
		return NoPieceType
	}
}

// IsPromotionPiece reports whether a pawn may promote to t.
func (t PieceType) IsPromotionPiece() bool {
	switch t {
	case Queen, Rook, Bishop, Knight:
		return true
	default:
		return false
	}
}

// PromotionPieces lists the promotion choices in the order they are offered.
var PromotionPieces = []PieceType{Queen, Rook, Bishop, Knight}

// Piece is a coloured piece packed into a single byte.
// The zero value is an empty square.
type Piece uint8

// Empty is the absence of a piece.
const Empty Piece = 0

// PieceShift is used for encoding coloured pieces.
const PieceShift = 1

// MakePiece creates a coloured piece value.
func MakePiece(colour Colour, t PieceType) Piece {
	if t == NoPieceType {
		return Empty
	}
	return Piece(uint8(t)<<PieceShift | uint8(colour))
}

// W creates a white piece.
func W(t PieceType) Piece {
	return MakePiece(White, t)
}

// B creates a black piece.
func B(t PieceType) Piece {
	return MakePiece(Black, t)
}

// Type extracts the piece type.
func (p Piece) Type() PieceType {
	return PieceType(p >> PieceShift)
}

// Colour extracts the colour. Meaningless for Empty.
func (p Piece) Colour() Colour {
	return Colour(p & 0x01)
}

// IsEmpty reports whether p is the empty square marker.
func (p Piece) IsEmpty() bool {
	return p == Empty
}

// Is reports whether p is a piece of the given colour and type.
func (p Piece) Is(colour Colour, t PieceType) bool {
	return p != Empty && p.Colour() == colour && p.Type() == t
}

// FENLetter returns the FEN letter: uppercase for White, lowercase for Black.
func (p Piece) FENLetter() byte {
	if p == Empty {
		return '.'
	}
	letter := p.Type().Letter()
	if p.Colour() == Black {
		letter += 'a' - 'A'
	}
	return letter
}

// String returns a readable name such as "White Knight".
func (p Piece) String() string {
	if p == Empty {
		return "Empty"
	}
	return p.Colour().String() + " " + p.Type().String()
}

// PieceFromFENLetter converts a FEN piece letter to a coloured piece.
func PieceFromFENLetter(c byte) (Piece, bool) {
	t := ParsePieceType(c)
	if t == NoPieceType {
		return Empty, false
	}
	colour := White
	if c >= 'a' && c <= 'z' {
		colour = Black
	}
	return MakePiece(colour, t), true
}

// Constants for board dimensions and coordinates.
const (
	BoardSize = 8

	RankBase = '1'
	FileBase = 'a'
)

// CastlingRights is the set of castling options still available.
type CastlingRights uint8

const (
	WhiteKingside CastlingRights = 1 << iota
	WhiteQueenside
	BlackKingside
	BlackQueenside

	NoCastling  CastlingRights = 0
	AllCastling                = WhiteKingside | WhiteQueenside | BlackKingside | BlackQueenside
)

// castlingLetters is in FEN output order.
var castlingLetters = []struct {
	right  CastlingRights
	letter byte
}{
	{WhiteKingside, 'K'},
	{WhiteQueenside, 'Q'},
	{BlackKingside, 'k'},
	{BlackQueenside, 'q'},
}

// Has reports whether every right in r is present.
func (c CastlingRights) Has(r CastlingRights) bool {
	return r != 0 && c&r == r
}

// Remove returns c without the rights in r.
func (c CastlingRights) Remove(r CastlingRights) CastlingRights {
	return c &^ r
}

// String renders the rights in FEN form ("KQkq", "-").
func (c CastlingRights) String() string {
	if c == NoCastling {
		return "-"
	}
	out := make([]byte, 0, 4)
	for _, cl := range castlingLetters {
		if c.Has(cl.right) {
			out = append(out, cl.letter)
		}
	}
	return string(out)
}

// CastlingRightFromLetter maps a FEN castling letter to its right.
func CastlingRightFromLetter(c byte) (CastlingRights, bool) {
	for _, cl := range castlingLetters {
		if cl.letter == c {
			return cl.right, true
		}
	}
	return NoCastling, false
}

// KingsideRight returns the kingside castling right of a colour.
func KingsideRight(colour Colour) CastlingRights {
	if colour == White {
		return WhiteKingside
	}
	return BlackKingside
}

// QueensideRight returns the queenside castling right of a colour.
func QueensideRight(colour Colour) CastlingRights {
	if colour == White {
		return WhiteQueenside
	}
	return BlackQueenside
}

// GameStatus classifies whether play can continue.
type GameStatus int

const (
	InProgress GameStatus = iota
	Checkmate
	Stalemate
	Resigned
)

// String returns the status name used in reports and the HTTP API.
func (s GameStatus) String() string {
	switch s {
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	case Resigned:
		return "resigned"
	default:
		return "in_progress"
	}
}

// IsOver reports whether the status ends the game.
func (s GameStatus) IsOver() bool {
	return s != InProgress
}

// ParseGameStatus is the inverse of GameStatus.String.
func ParseGameStatus(s string) GameStatus {
	switch s {
	case "checkmate":
		return Checkmate
	case "stalemate":
		return Stalemate
	case "resigned":
		return Resigned
	default:
		return InProgress
	}
}
