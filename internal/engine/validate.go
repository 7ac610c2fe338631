package engine

import (
	"github.com/tejdeepgurramkonda/IgKnight-Chess-sub000/internal/chess"
	"github.com/tejdeepgurramkonda/IgKnight-Chess-sub000/internal/errors"
)

// LegalMoves returns every legal move for the given colour: the pseudo-legal
// moves that do not leave the mover's own king attacked.
func LegalMoves(board *chess.Board, colour chess.Colour) []chess.Move {
	return filterLegal(board, PseudoLegalMoves(board, colour), colour)
}

// LegalMovesFrom returns the legal moves of the piece on the given square.
func LegalMovesFrom(board *chess.Board, pos chess.Position) []chess.Move {
	piece, ok := board.Get(pos)
	if !ok {
		return nil
	}
	return filterLegal(board, PseudoLegalMovesFrom(board, pos), piece.Colour)
}

// filterLegal keeps the moves that pass speculative legality checking.
func filterLegal(board *chess.Board, candidates []chess.Move, colour chess.Colour) []chess.Move {
	var legal []chess.Move
	for _, m := range candidates {
		if IsLegal(board, m, colour) {
			legal = append(legal, m)
		}
	}
	return legal
}

// IsLegal reports whether executing the move leaves the given colour's king
// unattacked. The move is executed on a scratch copy of the board. A missing
// king signals corrupted state and yields false.
func IsLegal(board *chess.Board, m chess.Move, colour chess.Colour) bool {
	if m.Castle && !CanCastleThrough(board, colour, m.Kingside()) {
		return false
	}
	scratch := board.Copy()
	Execute(scratch, m)
	king, ok := findKing(scratch, colour)
	if !ok {
		return false
	}
	return !IsAttacked(scratch, king, colour.Opposite())
}

// Validate checks a proposed move: a piece must sit on the origin square,
// belong to the side to move, and the move must be present, by structural
// equality including the promotion kind, in that square's legal-move set.
// A failure is reported as an illegal-move error.
func Validate(board *chess.Board, m chess.Move) error {
	piece, ok := board.Get(m.From)
	if !ok {
		return &errors.MoveError{
			Err:    errors.ErrIllegalMove,
			Move:   m.Label(),
			Square: m.From.String(),
			Reason: "no piece on origin square",
		}
	}
	if piece.Colour != board.ToMove {
		return &errors.MoveError{
			Err:    errors.ErrIllegalMove,
			Move:   m.Label(),
			Square: m.From.String(),
			Reason: "piece belongs to the opponent",
		}
	}
	for _, legal := range LegalMovesFrom(board, m.From) {
		if legal == m {
			return nil
		}
	}
	return &errors.MoveError{
		Err:    errors.ErrIllegalMove,
		Move:   m.Label(),
		Reason: "not a legal move for this piece",
	}
}

// FindMove resolves the contents of a move label (origin, destination,
// promotion kind) against the legal-move set, returning the fully-flagged
// move. This recovers the capture, castle and en-passant flags a bare label
// cannot carry.
func FindMove(board *chess.Board, from, to chess.Position, promotion chess.PieceType) (chess.Move, error) {
	for _, m := range LegalMovesFrom(board, from) {
		if m.To == to && m.Promotion == promotion {
			return m, nil
		}
	}
	return chess.Move{}, &errors.MoveError{
		Err:    errors.ErrIllegalMove,
		Move:   chess.Move{From: from, To: to, Promotion: promotion}.Label(),
		Reason: "not a legal move in this position",
	}
}

// CanCastleThrough reports whether the king may castle on the given wing as
// far as attack conditions go: the king stands on its castling start square,
// is not presently attacked, and none of the squares on its path (transit and
// landing, not the rook's path) are attacked by the opponent.
func CanCastleThrough(board *chess.Board, colour chess.Colour, kingside bool) bool {
	king, ok := findKing(board, colour)
	if !ok {
		return false
	}
	if king.Rank != colour.BackRank() || king.File != 5 {
		return false
	}
	opponent := colour.Opposite()
	if IsAttacked(board, king, opponent) {
		return false
	}
	step, landing := -1, 3
	if kingside {
		step, landing = 1, 7
	}
	for file := king.File + step; ; file += step {
		if IsAttacked(board, chess.Position{Rank: king.Rank, File: file}, opponent) {
			return false
		}
		if file == landing {
			return true
		}
	}
}

// Execute applies an already-validated move to the board in place, with all
// side effects: capture removal, castling rook relocation, en passant
// capture, promotion, castling-rights and clock updates, turn flip, and the
// position-history append.
func Execute(board *chess.Board, m chess.Move) {
	piece, _ := board.Get(m.From)
	mover := piece.Colour

	board.ClearEnPassant()

	switch {
	case m.Castle:
		executeCastle(board, m, piece)
	case m.EnPassant:
		executeEnPassant(board, m, piece)
	case m.Promotion != chess.NoPiece:
		executePromotion(board, m, piece)
	default:
		executeOrdinary(board, m, piece)
	}

	updateCastlingRights(board, m, piece)

	board.ToMove = mover.Opposite()
	if board.ToMove == chess.White {
		board.FullmoveNumber++
	}
	board.RecordPosition(PiecePlacement(board))
}

// executeCastle relocates the king and its rook and marks both as moved.
func executeCastle(board *chess.Board, m chess.Move, king chess.Piece) {
	rank := m.From.Rank
	rookFromFile, rookToFile := 1, 4
	if m.Kingside() {
		rookFromFile, rookToFile = chess.BoardSize, 6
	}
	rookFrom := chess.Position{Rank: rank, File: rookFromFile}
	rook, _ := board.Get(rookFrom)

	king.Moved = true
	rook.Moved = true
	board.Clear(m.From)
	board.Set(m.To, king)
	board.Clear(rookFrom)
	board.Set(chess.Position{Rank: rank, File: rookToFile}, rook)

	board.HalfmoveClock++
	board.Castling.DisableAll(king.Colour)
}

// executeEnPassant moves the pawn and removes the captured pawn one rank
// behind the destination.
func executeEnPassant(board *chess.Board, m chess.Move, pawn chess.Piece) {
	pawn.Moved = true
	board.Clear(m.From)
	board.Set(m.To, pawn)
	captured, _ := m.To.Offset(-pawn.Colour.Forward(), 0)
	board.Clear(captured)
	board.HalfmoveClock = 0
}

// executePromotion removes the pawn and places a new piece of the chosen
// kind at the destination.
func executePromotion(board *chess.Board, m chess.Move, pawn chess.Piece) {
	board.Clear(m.From)
	board.Set(m.To, chess.Piece{Type: m.Promotion, Colour: pawn.Colour, Moved: true})
	board.HalfmoveClock = 0
}

// executeOrdinary relocates the piece, sets the en passant target after a
// two-square pawn advance, and updates the half-move clock.
func executeOrdinary(board *chess.Board, m chess.Move, piece chess.Piece) {
	_, captured := board.Get(m.To)

	piece.Moved = true
	board.Clear(m.From)
	board.Set(m.To, piece)

	if piece.Type == chess.Pawn && abs(m.To.Rank-m.From.Rank) == 2 {
		mid, _ := m.From.Offset(piece.Colour.Forward(), 0)
		board.SetEnPassant(mid)
	}

	if captured || piece.Type == chess.Pawn {
		board.HalfmoveClock = 0
	} else {
		board.HalfmoveClock++
	}
}

// updateCastlingRights clears rights when a king or rook moves, or when a
// move lands on an opponent rook's home square, which can only mean the
// unmoved rook there was captured.
func updateCastlingRights(board *chess.Board, m chess.Move, piece chess.Piece) {
	if piece.Type == chess.King {
		board.Castling.DisableAll(piece.Colour)
	}
	if piece.Type == chess.Rook && m.From.Rank == piece.Colour.BackRank() {
		if m.From.File == chess.BoardSize {
			board.Castling.Disable(piece.Colour, true)
		}
		if m.From.File == 1 {
			board.Castling.Disable(piece.Colour, false)
		}
	}
	opponent := piece.Colour.Opposite()
	if m.To.Rank == opponent.BackRank() {
		if m.To.File == chess.BoardSize {
			board.Castling.Disable(opponent, true)
		}
		if m.To.File == 1 {
			board.Castling.Disable(opponent, false)
		}
	}
}

// findKing locates the king of the given colour.
func findKing(board *chess.Board, colour chess.Colour) (chess.Position, bool) {
	for rank := 1; rank <= chess.BoardSize; rank++ {
		for file := 1; file <= chess.BoardSize; file++ {
			pos := chess.Position{Rank: rank, File: file}
			piece, ok := board.Get(pos)
			if ok && piece.Type == chess.King && piece.Colour == colour {
				return pos, true
			}
		}
	}
	return chess.Position{}, false
}

// abs returns the absolute value of x.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
