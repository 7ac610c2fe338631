package testutil

import (
	"strings"
	"testing"

	"github.com/tejdeepgurramkonda/IgKnight-Chess-sub000/internal/chess"
	"github.com/tejdeepgurramkonda/IgKnight-Chess-sub000/internal/engine"
)

// MustDecode decodes a FEN string into a board, aborting the test on failure.
func MustDecode(t *testing.T, fen string) *chess.Board {
	t.Helper()
	board, err := engine.Decode(fen)
	if err != nil {
		t.Fatalf("failed to decode FEN %q: %v", fen, err)
	}
	return board
}

// Sq parses a square label, aborting the test on failure.
func Sq(t *testing.T, label string) chess.Position {
	t.Helper()
	pos, err := chess.ParseSquare(label)
	if err != nil {
		t.Fatalf("failed to parse square %q: %v", label, err)
	}
	return pos
}

// ContainsMove reports whether the move set contains m by structural equality.
func ContainsMove(moves []chess.Move, m chess.Move) bool {
	for _, candidate := range moves {
		if candidate == m {
			return true
		}
	}
	return false
}

// MustPlay applies a space-separated sequence of move labels to the board,
// validating each move before executing it. It aborts the test if any move
// fails to parse, resolve, or validate.
func MustPlay(t *testing.T, board *chess.Board, moves string) {
	t.Helper()
	for _, label := range strings.Fields(moves) {
		parsed, err := chess.ParseMove(label)
		if err != nil {
			t.Fatalf("failed to parse move %q: %v", label, err)
		}
		m, err := engine.FindMove(board, parsed.From, parsed.To, parsed.Promotion)
		if err != nil {
			t.Fatalf("move %q is not legal in position %q: %v", label, engine.Encode(board), err)
		}
		if err := engine.Validate(board, m); err != nil {
			t.Fatalf("move %q failed validation: %v", label, err)
		}
		engine.Execute(board, m)
	}
}
