// Package chess provides the core value types of the rules engine: colours,
// positions, pieces, moves, and the board with its auxiliary state.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	White Colour = iota
	Black
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

// Forward returns the pawn advance direction: +1 for White, -1 for Black.
func (c Colour) Forward() int {
	if c == White {
		return 1
	}
	return -1
}

// PawnHomeRank returns the rank pawns of this colour start on.
func (c Colour) PawnHomeRank() int {
	if c == White {
		return 2
	}
	return 7
}

// BackRank returns the rank the pieces of this colour start on.
func (c Colour) BackRank() int {
	if c == White {
		return 1
	}
	return 8
}

// PromotionRank returns the rank on which pawns of this colour promote.
func (c Colour) PromotionRank() int {
	return c.Opposite().BackRank()
}
