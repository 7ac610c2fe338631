package chess

import (
	"unicode"

	"github.com/tejdeepgurramkonda/IgKnight-Chess-sub000/internal/errors"
)

// PieceType represents a chess piece kind.
type PieceType int

const (
	NoPiece PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// PromotionTypes lists the piece kinds a pawn may promote to, in the order
// promotion moves are generated.
var PromotionTypes = [4]PieceType{Queen, Rook, Bishop, Knight}

// String returns the string representation of a piece type.
func (t PieceType) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if int(t) < len(names) {
		return names[t]
	}
	return "Unknown"
}

// Letter returns the single uppercase notation letter of a piece type.
func (t PieceType) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if int(t) < len(letters) {
		return letters[t]
	}
	return '?'
}

// Value returns the relative material value of a piece type.
func (t PieceType) Value() int {
	values := []int{0, 1, 3, 3, 5, 9, 0}
	if int(t) < len(values) {
		return values[t]
	}
	return 0
}

// PieceTypeFromLetter converts a notation letter (either case) to a piece type.
func PieceTypeFromLetter(c byte) (PieceType, error) {
	switch unicode.ToUpper(rune(c)) {
	case 'P':
		return Pawn, nil
	case 'N':
		return Knight, nil
	case 'B':
		return Bishop, nil
	case 'R':
		return Rook, nil
	case 'Q':
		return Queen, nil
	case 'K':
		return King, nil
	default:
		return NoPiece, errors.Wrapf(errors.ErrInvalidFEN, "piece letter %q", string(c))
	}
}

// Piece is a (kind, colour, has-moved) value occupying one board square.
// The Moved flag is set by the validator when the piece moves; it gates
// castling eligibility only.
type Piece struct {
	Type   PieceType
	Colour Colour
	Moved  bool
}

// Letter returns the FEN letter of the piece: uppercase for White,
// lowercase for Black.
func (p Piece) Letter() byte {
	c := p.Type.Letter()
	if p.Colour == Black {
		c = byte(unicode.ToLower(rune(c)))
	}
	return c
}

// String returns a readable description such as "White Knight".
func (p Piece) String() string {
	if p.Type == NoPiece {
		return "empty"
	}
	return p.Colour.String() + " " + p.Type.String()
}
