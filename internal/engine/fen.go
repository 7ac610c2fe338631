// Package engine implements the rules of chess: move generation, legality
// checking, move execution, and terminal-position classification. All
// operations take an explicit *chess.Board; the package holds no state.
package engine

import (
	"strconv"
	"strings"

	"github.com/tejdeepgurramkonda/IgKnight-Chess-sub000/internal/chess"
	"github.com/tejdeepgurramkonda/IgKnight-Chess-sub000/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Decode creates a board from a FEN string. The first four fields (placement,
// side to move, castling rights, en passant target) are required; the two
// clock fields default to 0 and 1 when absent.
func Decode(fen string) (*chess.Board, error) {
	parts := strings.Fields(fen)
	if len(parts) < 4 {
		return nil, errors.Wrapf(errors.ErrInvalidFEN, "%d fields, want at least 4", len(parts))
	}

	board := chess.NewBoard()

	if err := parsePlacement(board, parts[0]); err != nil {
		return nil, err
	}
	if err := parseSideToMove(board, parts[1]); err != nil {
		return nil, err
	}
	if err := parseCastlingRights(board, parts[2]); err != nil {
		return nil, err
	}
	if err := parseEnPassant(board, parts[3]); err != nil {
		return nil, err
	}
	if err := parseClocks(board, parts); err != nil {
		return nil, err
	}

	return board, nil
}

// parsePlacement parses the piece placement field: ranks 8 down to 1
// separated by '/', digits run-length-encoding empty squares, uppercase
// letters for White and lowercase for Black.
func parsePlacement(board *chess.Board, placement string) error {
	rank := chess.BoardSize
	file := 1

	for i := 0; i < len(placement); i++ {
		c := placement[i]
		switch {
		case c == '/':
			rank--
			file = 1
		case c >= '1' && c <= '8':
			file += int(c - '0')
		default:
			pieceType, err := chess.PieceTypeFromLetter(c)
			if err != nil {
				return err
			}
			pos, err := chess.NewPosition(rank, file)
			if err != nil {
				return errors.Wrap(errors.ErrInvalidFEN, "placement out of bounds")
			}
			colour := chess.White
			if c >= 'a' && c <= 'z' {
				colour = chess.Black
			}
			board.Set(pos, chess.Piece{
				Type:   pieceType,
				Colour: colour,
				Moved:  startedElsewhere(pieceType, colour, pos),
			})
			file++
		}
	}
	return nil
}

// startedElsewhere reports whether a decoded piece cannot be on its starting
// square, so its has-moved flag must be set. Only kings and rooks gate
// behaviour on the flag (castling); pawn double-steps check the home rank.
func startedElsewhere(t chess.PieceType, c chess.Colour, pos chess.Position) bool {
	switch t {
	case chess.Pawn:
		return pos.Rank != c.PawnHomeRank()
	case chess.King:
		return pos.Rank != c.BackRank() || pos.File != 5
	case chess.Rook:
		return pos.Rank != c.BackRank() || (pos.File != 1 && pos.File != chess.BoardSize)
	default:
		return false
	}
}

// parseSideToMove parses the side to move field.
func parseSideToMove(board *chess.Board, field string) error {
	switch field {
	case "w":
		board.ToMove = chess.White
	case "b":
		board.ToMove = chess.Black
	default:
		return errors.Wrapf(errors.ErrInvalidFEN, "side to move %q", field)
	}
	return nil
}

// parseCastlingRights parses the castling availability field.
func parseCastlingRights(board *chess.Board, field string) error {
	board.Castling = chess.CastlingRights{}
	if field == "-" {
		return nil
	}
	for i := 0; i < len(field); i++ {
		switch field[i] {
		case 'K':
			board.Castling.WhiteKingside = true
		case 'Q':
			board.Castling.WhiteQueenside = true
		case 'k':
			board.Castling.BlackKingside = true
		case 'q':
			board.Castling.BlackQueenside = true
		default:
			return errors.Wrapf(errors.ErrInvalidFEN, "castling rights %q", field)
		}
	}
	return nil
}

// parseEnPassant parses the en passant target square field.
func parseEnPassant(board *chess.Board, field string) error {
	board.ClearEnPassant()
	if field == "-" {
		return nil
	}
	pos, err := chess.ParseSquare(field)
	if err != nil {
		return errors.Wrapf(errors.ErrInvalidFEN, "en passant target %q", field)
	}
	board.SetEnPassant(pos)
	return nil
}

// parseClocks parses the optional halfmove clock and fullmove number fields.
func parseClocks(board *chess.Board, parts []string) error {
	board.HalfmoveClock = 0
	board.FullmoveNumber = 1
	if len(parts) >= 5 {
		n, err := strconv.Atoi(parts[4])
		if err != nil || n < 0 {
			return errors.Wrapf(errors.ErrInvalidFEN, "halfmove clock %q", parts[4])
		}
		board.HalfmoveClock = n
	}
	if len(parts) >= 6 {
		n, err := strconv.Atoi(parts[5])
		if err != nil || n < 1 {
			return errors.Wrapf(errors.ErrInvalidFEN, "fullmove number %q", parts[5])
		}
		board.FullmoveNumber = n
	}
	return nil
}

// Encode converts a board to its six-field FEN string.
func Encode(board *chess.Board) string {
	var sb strings.Builder

	sb.WriteString(PiecePlacement(board))
	sb.WriteByte(' ')
	if board.ToMove == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')
	writeCastlingRights(&sb, board)
	sb.WriteByte(' ')
	if board.EnPassant {
		sb.WriteString(board.EPSquare.String())
	} else {
		sb.WriteByte('-')
	}
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(board.HalfmoveClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(board.FullmoveNumber))

	return sb.String()
}

// PiecePlacement returns only the piece placement field of the FEN encoding.
// This is the snapshot recorded in the board history for repetition counting.
func PiecePlacement(board *chess.Board) string {
	var sb strings.Builder
	for rank := chess.BoardSize; rank >= 1; rank-- {
		empty := 0
		for file := 1; file <= chess.BoardSize; file++ {
			piece, ok := board.Get(chess.Position{Rank: rank, File: file})
			if !ok {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(piece.Letter())
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if rank > 1 {
			sb.WriteByte('/')
		}
	}
	return sb.String()
}

// writeCastlingRights writes the castling availability to the builder.
func writeCastlingRights(sb *strings.Builder, board *chess.Board) {
	any := false
	if board.Castling.WhiteKingside {
		sb.WriteByte('K')
		any = true
	}
	if board.Castling.WhiteQueenside {
		sb.WriteByte('Q')
		any = true
	}
	if board.Castling.BlackKingside {
		sb.WriteByte('k')
		any = true
	}
	if board.Castling.BlackQueenside {
		sb.WriteByte('q')
		any = true
	}
	if !any {
		sb.WriteByte('-')
	}
}

// NewInitialBoard creates a board with the standard starting position.
func NewInitialBoard() *chess.Board {
	board, _ := Decode(InitialFEN)
	return board
}
