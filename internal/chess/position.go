package chess

import (
	"fmt"

	"github.com/tejdeepgurramkonda/IgKnight-Chess-sub000/internal/errors"
)

// BoardSize is the number of ranks and files on the board.
const BoardSize = 8

// Position is an immutable (rank, file) pair. Both coordinates are in [1,8];
// file 1 is the 'a' file.
type Position struct {
	Rank int
	File int
}

// NewPosition creates a position, failing with a bounds error if either
// coordinate is outside [1,8].
func NewPosition(rank, file int) (Position, error) {
	p := Position{Rank: rank, File: file}
	if !p.Valid() {
		return Position{}, errors.Wrapf(errors.ErrInvalidSquare, "rank %d, file %d out of bounds", rank, file)
	}
	return p, nil
}

// ParseSquare parses a two-character square label such as "e4".
func ParseSquare(s string) (Position, error) {
	if len(s) != 2 {
		return Position{}, errors.Wrapf(errors.ErrInvalidSquare, "square label %q", s)
	}
	file := int(s[0]-'a') + 1
	rank := int(s[1]-'1') + 1
	return NewPosition(rank, file)
}

// Valid reports whether both coordinates are on the board.
func (p Position) Valid() bool {
	return p.Rank >= 1 && p.Rank <= BoardSize && p.File >= 1 && p.File <= BoardSize
}

// Offset returns the position shifted by the given rank and file deltas.
// The second result is false if the shifted position is off the board.
func (p Position) Offset(dRank, dFile int) (Position, bool) {
	q := Position{Rank: p.Rank + dRank, File: p.File + dFile}
	return q, q.Valid()
}

// Index returns the flat array index of the position: (rank-1)*8 + (file-1).
func (p Position) Index() int {
	return (p.Rank-1)*BoardSize + (p.File - 1)
}

// String returns the two-character square label, e.g. "e4".
func (p Position) String() string {
	if !p.Valid() {
		return fmt.Sprintf("(%d,%d)", p.Rank, p.File)
	}
	return string([]byte{byte('a' + p.File - 1), byte('1' + p.Rank - 1)})
}

// LightSquare reports whether the position is a light square. Squares where
// rank+file is odd are light.
func (p Position) LightSquare() bool {
	return (p.Rank+p.File)%2 == 1
}
