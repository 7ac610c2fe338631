package engine

import (
	"strings"

	"github.com/tejdeepgurramkonda/IgKnight-Chess-sub000/internal/chess"
)

// SAN renders a legal move in short algebraic notation for move logs: piece
// letter (omitted for pawns), the capturing pawn's origin file, 'x' on
// captures, destination square, '=' plus the promotion letter, and a '+' or
// '#' suffix when the resulting position leaves the opponent in check or
// checkmate. Castling renders as "O-O" or "O-O-O" with no suffix.
func SAN(board *chess.Board, m chess.Move) string {
	if m.Castle {
		if m.Kingside() {
			return "O-O"
		}
		return "O-O-O"
	}

	piece, _ := board.Get(m.From)
	var sb strings.Builder

	if piece.Type != chess.Pawn {
		sb.WriteByte(piece.Type.Letter())
	} else if m.Capture {
		sb.WriteByte(byte('a' + m.From.File - 1))
	}
	if m.Capture {
		sb.WriteByte('x')
	}
	sb.WriteString(m.To.String())
	if m.Promotion != chess.NoPiece {
		sb.WriteByte('=')
		sb.WriteByte(m.Promotion.Letter())
	}

	scratch := board.Copy()
	Execute(scratch, m)
	opponent := piece.Colour.Opposite()
	if IsCheckmate(scratch, opponent) {
		sb.WriteByte('#')
	} else if InCheck(scratch, opponent) {
		sb.WriteByte('+')
	}

	return sb.String()
}
