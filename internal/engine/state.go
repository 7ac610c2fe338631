package engine

import (
	"github.com/tejdeepgurramkonda/IgKnight-Chess-sub000/internal/chess"
	"github.com/tejdeepgurramkonda/IgKnight-Chess-sub000/internal/errors"
)

// Status classifies a position. StatusInProgress is the sole non-terminal
// state; resignation, timeout and abandonment are assigned by the game
// service, never by the engine.
type Status int

const (
	StatusInProgress Status = iota
	StatusCheckmate
	StatusStalemate
	StatusFiftyMoveDraw
	StatusThreefoldRepetition
	StatusInsufficientMaterial
)

// String returns the string representation of a status.
func (s Status) String() string {
	names := []string{
		"in progress",
		"checkmate",
		"stalemate",
		"draw by fifty-move rule",
		"draw by threefold repetition",
		"draw by insufficient material",
	}
	if int(s) < len(names) {
		return names[s]
	}
	return "unknown"
}

// Terminal reports whether the status ends the game.
func (s Status) Terminal() bool {
	return s != StatusInProgress
}

// Evaluate classifies the position for the side to move, checking checkmate,
// stalemate, the fifty-move rule, threefold repetition and insufficient
// material in that priority order. It fails with a corrupt-state error when
// the side to move has no king.
func Evaluate(board *chess.Board) (Status, error) {
	side := board.ToMove
	if _, ok := findKing(board, side); !ok {
		return StatusInProgress, errors.Wrapf(errors.ErrCorruptState, "no %s king on the board", side)
	}

	switch {
	case IsCheckmate(board, side):
		return StatusCheckmate, nil
	case IsStalemate(board, side):
		return StatusStalemate, nil
	case FiftyMoveDraw(board):
		return StatusFiftyMoveDraw, nil
	case ThreefoldRepetition(board):
		return StatusThreefoldRepetition, nil
	case InsufficientMaterial(board):
		return StatusInsufficientMaterial, nil
	default:
		return StatusInProgress, nil
	}
}

// InCheck reports whether the given colour's king is attacked.
func InCheck(board *chess.Board, colour chess.Colour) bool {
	king, ok := findKing(board, colour)
	if !ok {
		return false
	}
	return IsAttacked(board, king, colour.Opposite())
}

// HasLegalMoves reports whether the given colour has at least one legal move.
func HasLegalMoves(board *chess.Board, colour chess.Colour) bool {
	for rank := 1; rank <= chess.BoardSize; rank++ {
		for file := 1; file <= chess.BoardSize; file++ {
			pos := chess.Position{Rank: rank, File: file}
			piece, ok := board.Get(pos)
			if !ok || piece.Colour != colour {
				continue
			}
			for _, m := range PseudoLegalMovesFrom(board, pos) {
				if IsLegal(board, m, colour) {
					return true
				}
			}
		}
	}
	return false
}

// IsCheckmate reports whether the given colour is in check with no legal moves.
func IsCheckmate(board *chess.Board, colour chess.Colour) bool {
	return InCheck(board, colour) && !HasLegalMoves(board, colour)
}

// IsStalemate reports whether the given colour has no legal moves while not
// in check.
func IsStalemate(board *chess.Board, colour chess.Colour) bool {
	return !InCheck(board, colour) && !HasLegalMoves(board, colour)
}

// FiftyMoveDraw reports whether one hundred plies have passed since the last
// capture or pawn move.
func FiftyMoveDraw(board *chess.Board) bool {
	return board.HalfmoveClock >= 100
}

// ThreefoldRepetition reports whether the current piece placement has
// occurred three or more times in the board's history. Only the placement
// field is compared, not side to move, castling rights or the en passant
// target; this deliberately simplified rule is part of the wire contract.
func ThreefoldRepetition(board *chess.Board) bool {
	return board.RepetitionCount(PiecePlacement(board)) >= 3
}

// InsufficientMaterial reports whether neither side can mate: king versus
// king, king and one minor piece versus king, or king and bishop versus king
// and bishop with both bishops on same-coloured squares.
func InsufficientMaterial(board *chess.Board) bool {
	var white, black []chess.PieceType
	var whiteBishopLight, blackBishopLight bool

	for rank := 1; rank <= chess.BoardSize; rank++ {
		for file := 1; file <= chess.BoardSize; file++ {
			pos := chess.Position{Rank: rank, File: file}
			piece, ok := board.Get(pos)
			if !ok || piece.Type == chess.King {
				continue
			}
			// Any pawn, rook or queen is mating material.
			if piece.Type == chess.Pawn || piece.Type == chess.Rook || piece.Type == chess.Queen {
				return false
			}
			if piece.Colour == chess.White {
				white = append(white, piece.Type)
				if piece.Type == chess.Bishop {
					whiteBishopLight = pos.LightSquare()
				}
			} else {
				black = append(black, piece.Type)
				if piece.Type == chess.Bishop {
					blackBishopLight = pos.LightSquare()
				}
			}
		}
	}

	switch {
	case len(white) == 0 && len(black) == 0:
		return true
	case len(white) == 0 && len(black) == 1:
		return true
	case len(black) == 0 && len(white) == 1:
		return true
	case len(white) == 1 && len(black) == 1:
		return white[0] == chess.Bishop && black[0] == chess.Bishop &&
			whiteBishopLight == blackBishopLight
	default:
		return false
	}
}

// MaterialCount returns the summed relative piece values of one side.
func MaterialCount(board *chess.Board, colour chess.Colour) int {
	total := 0
	for rank := 1; rank <= chess.BoardSize; rank++ {
		for file := 1; file <= chess.BoardSize; file++ {
			piece, ok := board.Get(chess.Position{Rank: rank, File: file})
			if ok && piece.Colour == colour {
				total += piece.Type.Value()
			}
		}
	}
	return total
}
