package engine

import (
	"github.com/tejdeepgurramkonda/IgKnight-Chess-sub000/internal/chess"
)

// Offsets are {rank, file} deltas.
var (
	knightOffsets = [8][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets   = [8][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	diagonalDirs  = [4][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	straightDirs  = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
)

// PseudoLegalMoves generates every pseudo-legal move for the given colour:
// moves obeying piece geometry and blocking, ignoring whether the mover's
// own king ends up attacked.
func PseudoLegalMoves(board *chess.Board, colour chess.Colour) []chess.Move {
	return pseudoMoves(board, colour, false)
}

// PseudoLegalMovesFrom generates the pseudo-legal moves of the piece on the
// given square, or nil if the square is empty.
func PseudoLegalMovesFrom(board *chess.Board, pos chess.Position) []chess.Move {
	piece, ok := board.Get(pos)
	if !ok {
		return nil
	}
	return pieceMoves(board, pos, piece, false)
}

// IsAttacked reports whether the given square is attacked by the given
// colour. It reuses the move generator in attack-shape mode: pawn forward
// pushes do not attack, pawn diagonals attack whether or not occupied, and
// castling never attacks.
func IsAttacked(board *chess.Board, target chess.Position, by chess.Colour) bool {
	for _, m := range pseudoMoves(board, by, true) {
		if m.To == target {
			return true
		}
	}
	return false
}

// pseudoMoves generates pseudo-legal moves for every piece of one colour.
func pseudoMoves(board *chess.Board, colour chess.Colour, attackShape bool) []chess.Move {
	var moves []chess.Move
	for rank := 1; rank <= chess.BoardSize; rank++ {
		for file := 1; file <= chess.BoardSize; file++ {
			pos := chess.Position{Rank: rank, File: file}
			piece, ok := board.Get(pos)
			if !ok || piece.Colour != colour {
				continue
			}
			moves = append(moves, pieceMoves(board, pos, piece, attackShape)...)
		}
	}
	return moves
}

// pieceMoves dispatches move generation by piece kind.
func pieceMoves(board *chess.Board, pos chess.Position, piece chess.Piece, attackShape bool) []chess.Move {
	switch piece.Type {
	case chess.Pawn:
		return pawnMoves(board, pos, piece.Colour, attackShape)
	case chess.Knight:
		return stepMoves(board, pos, piece.Colour, knightOffsets[:])
	case chess.Bishop:
		return rayMoves(board, pos, piece.Colour, diagonalDirs[:])
	case chess.Rook:
		return rayMoves(board, pos, piece.Colour, straightDirs[:])
	case chess.Queen:
		moves := rayMoves(board, pos, piece.Colour, diagonalDirs[:])
		return append(moves, rayMoves(board, pos, piece.Colour, straightDirs[:])...)
	case chess.King:
		moves := stepMoves(board, pos, piece.Colour, kingOffsets[:])
		if !attackShape {
			moves = append(moves, castleMoves(board, pos, piece)...)
		}
		return moves
	default:
		return nil
	}
}

// pawnMoves generates pawn pushes, captures, en passant captures and
// promotion expansions. In attack-shape mode only the diagonal capture
// squares are produced, whether or not they are occupied.
func pawnMoves(board *chess.Board, pos chess.Position, colour chess.Colour, attackShape bool) []chess.Move {
	dir := colour.Forward()
	var moves []chess.Move

	if !attackShape {
		if to, ok := pos.Offset(dir, 0); ok {
			if _, occupied := board.Get(to); !occupied {
				moves = appendPawnMove(moves, pos, to, colour, false)
				if pos.Rank == colour.PawnHomeRank() {
					if to2, ok2 := pos.Offset(2*dir, 0); ok2 {
						if _, occupied2 := board.Get(to2); !occupied2 {
							moves = append(moves, chess.Move{From: pos, To: to2})
						}
					}
				}
			}
		}
	}

	for _, dFile := range [2]int{-1, 1} {
		to, ok := pos.Offset(dir, dFile)
		if !ok {
			continue
		}
		target, occupied := board.Get(to)
		switch {
		case occupied && target.Colour != colour:
			moves = appendPawnMove(moves, pos, to, colour, true)
		case !occupied && board.EnPassant && to == board.EPSquare:
			moves = append(moves, chess.Move{From: pos, To: to, Capture: true, EnPassant: true})
		case attackShape && !occupied:
			moves = append(moves, chess.Move{From: pos, To: to, Capture: true})
		}
	}
	return moves
}

// appendPawnMove appends one pawn move, expanding a landing on the far rank
// into the four promotion moves.
func appendPawnMove(moves []chess.Move, from, to chess.Position, colour chess.Colour, capture bool) []chess.Move {
	if to.Rank != colour.PromotionRank() {
		return append(moves, chess.Move{From: from, To: to, Capture: capture})
	}
	for _, promo := range chess.PromotionTypes {
		moves = append(moves, chess.Move{From: from, To: to, Promotion: promo, Capture: capture})
	}
	return moves
}

// stepMoves generates fixed-offset moves for knights and kings.
func stepMoves(board *chess.Board, pos chess.Position, colour chess.Colour, offsets [][2]int) []chess.Move {
	var moves []chess.Move
	for _, off := range offsets {
		to, ok := pos.Offset(off[0], off[1])
		if !ok {
			continue
		}
		target, occupied := board.Get(to)
		if !occupied {
			moves = append(moves, chess.Move{From: pos, To: to})
		} else if target.Colour != colour {
			moves = append(moves, chess.Move{From: pos, To: to, Capture: true})
		}
	}
	return moves
}

// rayMoves walks each direction until the board edge, an own piece (stop
// before) or an enemy piece (include as capture, then stop).
func rayMoves(board *chess.Board, pos chess.Position, colour chess.Colour, dirs [][2]int) []chess.Move {
	var moves []chess.Move
	for _, dir := range dirs {
		to, ok := pos.Offset(dir[0], dir[1])
		for ok {
			target, occupied := board.Get(to)
			if occupied {
				if target.Colour != colour {
					moves = append(moves, chess.Move{From: pos, To: to, Capture: true})
				}
				break
			}
			moves = append(moves, chess.Move{From: pos, To: to})
			to, ok = to.Offset(dir[0], dir[1])
		}
	}
	return moves
}

// castleMoves generates the castling candidates the generator is responsible
// for: king and rook unmoved with rights intact and the squares between them
// empty. Attack conditions on the king's path are enforced by the validator.
func castleMoves(board *chess.Board, pos chess.Position, king chess.Piece) []chess.Move {
	colour := king.Colour
	if king.Moved || pos.Rank != colour.BackRank() || pos.File != 5 {
		return nil
	}
	var moves []chess.Move
	for _, kingside := range [2]bool{true, false} {
		if !board.Castling.Allowed(colour, kingside) {
			continue
		}
		rookFile, kingToFile := 1, 3
		if kingside {
			rookFile, kingToFile = chess.BoardSize, 7
		}
		rookPos := chess.Position{Rank: pos.Rank, File: rookFile}
		rook, ok := board.Get(rookPos)
		if !ok || rook.Type != chess.Rook || rook.Colour != colour || rook.Moved {
			continue
		}
		if !betweenEmpty(board, pos, rookPos) {
			continue
		}
		moves = append(moves, chess.Move{
			From:   pos,
			To:     chess.Position{Rank: pos.Rank, File: kingToFile},
			Castle: true,
		})
	}
	return moves
}

// betweenEmpty reports whether every square strictly between two positions
// on the same rank is empty.
func betweenEmpty(board *chess.Board, a, b chess.Position) bool {
	lo, hi := a.File, b.File
	if lo > hi {
		lo, hi = hi, lo
	}
	for file := lo + 1; file < hi; file++ {
		if _, occupied := board.Get(chess.Position{Rank: a.Rank, File: file}); occupied {
			return false
		}
	}
	return true
}
