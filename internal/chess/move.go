package chess

import (
	"github.com/tejdeepgurramkonda/IgKnight-Chess-sub000/internal/errors"
)

// Move represents a single action: origin and destination squares, an
// optional promotion kind, and flags for the three special move shapes.
// Equality is structural over all six fields.
type Move struct {
	From      Position
	To        Position
	Promotion PieceType
	Capture   bool
	Castle    bool
	EnPassant bool
}

// ParseMove parses a four-or-five character move label: two square labels
// plus an optional lowercase promotion letter, e.g. "e2e4" or "e7e8q".
// Capture, castle and en-passant flags are not part of the label; resolve
// the parsed move against the legal-move set to recover them.
func ParseMove(s string) (Move, error) {
	if len(s) != 4 && len(s) != 5 {
		return Move{}, errors.Wrapf(errors.ErrInvalidMove, "label %q", s)
	}
	from, err := ParseSquare(s[:2])
	if err != nil {
		return Move{}, errors.Wrapf(errors.ErrInvalidMove, "label %q", s)
	}
	to, err := ParseSquare(s[2:4])
	if err != nil {
		return Move{}, errors.Wrapf(errors.ErrInvalidMove, "label %q", s)
	}
	m := Move{From: from, To: to}
	if len(s) == 5 {
		c := s[4]
		if c < 'a' || c > 'z' {
			return Move{}, errors.Wrapf(errors.ErrInvalidMove, "promotion letter %q", string(c))
		}
		promo, err := PieceTypeFromLetter(c)
		if err != nil || promo == Pawn || promo == King {
			return Move{}, errors.Wrapf(errors.ErrInvalidMove, "promotion letter %q", string(c))
		}
		m.Promotion = promo
	}
	return m, nil
}

// Label returns the move's four-or-five character label.
func (m Move) Label() string {
	s := m.From.String() + m.To.String()
	if m.Promotion != NoPiece {
		s += string(m.Promotion.Letter() + ('a' - 'A'))
	}
	return s
}

// String returns the move label.
func (m Move) String() string {
	return m.Label()
}

// Kingside reports whether a castling move is towards the h-file.
func (m Move) Kingside() bool {
	return m.To.File > m.From.File
}
