package chess

import (
	"github.com/tejdeepgurramkonda/IgKnight-Chess-sub000/internal/hashing"
)

// CastlingRights holds the four independent castling-rights flags.
type CastlingRights struct {
	WhiteKingside  bool
	WhiteQueenside bool
	BlackKingside  bool
	BlackQueenside bool
}

// Allowed reports whether the given colour may still castle on the given wing.
func (r CastlingRights) Allowed(c Colour, kingside bool) bool {
	switch {
	case c == White && kingside:
		return r.WhiteKingside
	case c == White:
		return r.WhiteQueenside
	case kingside:
		return r.BlackKingside
	default:
		return r.BlackQueenside
	}
}

// Disable removes one colour's castling right on one wing.
func (r *CastlingRights) Disable(c Colour, kingside bool) {
	switch {
	case c == White && kingside:
		r.WhiteKingside = false
	case c == White:
		r.WhiteQueenside = false
	case kingside:
		r.BlackKingside = false
	default:
		r.BlackQueenside = false
	}
}

// DisableAll removes both of one colour's castling rights.
func (r *CastlingRights) DisableAll(c Colour) {
	r.Disable(c, true)
	r.Disable(c, false)
}

// PositionRecord is one entry of the board's move-order history: the
// piece-placement field of the position after a move, with its weak hash.
type PositionRecord struct {
	Placement string
	Hash      hashing.Code
}

// Board is the mutable game position: a flat 64-slot grid indexed by
// rank*8+file, plus the auxiliary state of the standard position encoding
// and an append-only history of piece-placement snapshots.
//
// A Board is never shared across concurrent callers. Each call site owns an
// exclusive instance for the duration of one move application; legality
// checks operate on a transient Copy.
type Board struct {
	squares [BoardSize * BoardSize]Piece

	// Who has the next move.
	ToMove Colour

	// Is an en passant capture possible? If so, EPSquare is the target square.
	EnPassant bool
	EPSquare  Position

	Castling CastlingRights

	// Plies since the last capture or pawn move. Drives the fifty-move rule.
	HalfmoveClock int

	// The current move number. Increments after Black's move.
	FullmoveNumber int

	// Piece-placement snapshots appended after every executed move,
	// for repetition counting.
	History []PositionRecord
}

// NewBoard creates an empty board with White to move.
func NewBoard() *Board {
	return &Board{
		ToMove:         White,
		FullmoveNumber: 1,
	}
}

// Get returns the piece at the given position. The second result is false
// if the square is empty.
func (b *Board) Get(pos Position) (Piece, bool) {
	p := b.squares[pos.Index()]
	return p, p.Type != NoPiece
}

// Set places a piece at the given position, replacing any occupant.
func (b *Board) Set(pos Position, piece Piece) {
	b.squares[pos.Index()] = piece
}

// Clear empties the given square.
func (b *Board) Clear(pos Position) {
	b.squares[pos.Index()] = Piece{}
}

// SetEnPassant records the en passant target square. It is cleared again on
// the very next executed move.
func (b *Board) SetEnPassant(pos Position) {
	b.EnPassant = true
	b.EPSquare = pos
}

// ClearEnPassant clears the en passant target.
func (b *Board) ClearEnPassant() {
	b.EnPassant = false
	b.EPSquare = Position{}
}

// Copy creates a fully independent clone of the board, including its history.
func (b *Board) Copy() *Board {
	nb := &Board{}
	*nb = *b
	nb.History = make([]PositionRecord, len(b.History))
	copy(nb.History, b.History)
	return nb
}

// RecordPosition appends a piece-placement snapshot to the history.
func (b *Board) RecordPosition(placement string) {
	b.History = append(b.History, PositionRecord{
		Placement: placement,
		Hash:      hashing.Placement(placement),
	})
}

// RepetitionCount returns how many history entries match the given
// piece-placement field. The weak hash filters candidates before the exact
// string comparison.
func (b *Board) RepetitionCount(placement string) int {
	h := hashing.Placement(placement)
	count := 0
	for _, rec := range b.History {
		if rec.Hash == h && rec.Placement == placement {
			count++
		}
	}
	return count
}
