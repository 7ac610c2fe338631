package engine

import (
	"github.com/tejdeepgurramkonda/IgKnight-Chess-sub000/internal/chess"
)

// Perft counts the leaf nodes of the legal-move tree to the given depth.
// Known perft values are the standard external check of move-generation
// correctness: from the starting position, depth 1 is 20, depth 2 is 400,
// depth 3 is 8902.
func Perft(board *chess.Board, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := LegalMoves(board, board.ToMove)
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		scratch := board.Copy()
		Execute(scratch, m)
		nodes += Perft(scratch, depth-1)
	}
	return nodes
}
