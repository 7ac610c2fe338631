package engine_test

import (
	stderrors "errors"
	"testing"

	"github.com/tejdeepgurramkonda/IgKnight-Chess-sub000/internal/chess"
	"github.com/tejdeepgurramkonda/IgKnight-Chess-sub000/internal/engine"
	"github.com/tejdeepgurramkonda/IgKnight-Chess-sub000/internal/errors"
	"github.com/tejdeepgurramkonda/IgKnight-Chess-sub000/internal/testutil"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name  string
		fen   string
		moves string
		want  engine.Status
	}{
		{
			name: "initial position",
			fen:  engine.InitialFEN,
			want: engine.StatusInProgress,
		},
		{
			name:  "scholar's mate",
			fen:   engine.InitialFEN,
			moves: "e2e4 e7e5 f1c4 b8c6 d1h5 g8f6 h5f7",
			want:  engine.StatusCheckmate,
		},
		{
			name: "fool's mate",
			fen:  "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3",
			want: engine.StatusCheckmate,
		},
		{
			name: "queen stalemate",
			fen:  "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1",
			want: engine.StatusStalemate,
		},
		{
			name: "fifty-move rule at one hundred plies",
			fen:  "r3k3/8/8/8/8/8/8/4K3 b q - 100 80",
			want: engine.StatusFiftyMoveDraw,
		},
		{
			name: "fifty-move rule one ply short",
			fen:  "r3k3/8/8/8/8/8/8/4K3 b q - 99 80",
			want: engine.StatusInProgress,
		},
		{
			name: "bare kings",
			fen:  "4k3/8/8/8/8/8/8/4K3 w - - 0 1",
			want: engine.StatusInsufficientMaterial,
		},
		{
			name: "check alone is not terminal",
			fen:  "4k3/8/8/8/8/8/4r3/4K3 w - - 0 1",
			want: engine.StatusInProgress,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := testutil.MustDecode(t, tt.fen)
			if tt.moves != "" {
				testutil.MustPlay(t, board, tt.moves)
			}
			status, err := engine.Evaluate(board)
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, status, tt.want)
		})
	}
}

func TestCheckmateAndStalematePartition(t *testing.T) {
	// Both mean "no legal moves"; the in-check bit decides which, so the two
	// can never hold at once.
	mated := testutil.MustDecode(t, "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
	testutil.AssertTrue(t, engine.IsCheckmate(mated, chess.White))
	testutil.AssertFalse(t, engine.IsStalemate(mated, chess.White))

	stuck := testutil.MustDecode(t, "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	testutil.AssertTrue(t, engine.IsStalemate(stuck, chess.Black))
	testutil.AssertFalse(t, engine.IsCheckmate(stuck, chess.Black))
}

func TestEvaluatePriority(t *testing.T) {
	// Checkmate wins over an expired halfmove clock.
	board := testutil.MustDecode(t, "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 100 60")
	status, err := engine.Evaluate(board)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, status, engine.StatusCheckmate)

	// The fifty-move rule wins over insufficient material.
	board = testutil.MustDecode(t, "4k3/8/8/8/8/8/8/4K3 w - - 100 80")
	status, err = engine.Evaluate(board)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, status, engine.StatusFiftyMoveDraw)
}

func TestEvaluateIsReadOnly(t *testing.T) {
	board := engine.NewInitialBoard()
	before := engine.Encode(board)

	first, err := engine.Evaluate(board)
	testutil.AssertNoError(t, err)
	second, err := engine.Evaluate(board)
	testutil.AssertNoError(t, err)

	testutil.AssertEqual(t, second, first)
	testutil.AssertEqual(t, engine.Encode(board), before)
}

func TestEvaluateMissingKing(t *testing.T) {
	board := testutil.MustDecode(t, "8/8/8/8/8/8/8/4K3 b - - 0 1")
	_, err := engine.Evaluate(board)
	testutil.AssertError(t, err)
	testutil.AssertTrue(t, stderrors.Is(err, errors.ErrCorruptState))
	testutil.AssertFalse(t, errors.IsFormat(err))
}

func TestThreefoldRepetition(t *testing.T) {
	board := engine.NewInitialBoard()
	shuffle := "g1f3 g8f6 f3g1 f6g8"

	testutil.MustPlay(t, board, shuffle)
	testutil.MustPlay(t, board, shuffle)
	// Two occurrences of the starting placement so far.
	testutil.AssertFalse(t, engine.ThreefoldRepetition(board))

	testutil.MustPlay(t, board, shuffle)
	testutil.AssertTrue(t, engine.ThreefoldRepetition(board))

	status, err := engine.Evaluate(board)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, status, engine.StatusThreefoldRepetition)
}

func TestThreefoldRepetitionComparesPlacementOnly(t *testing.T) {
	// The first occurrence has an en passant target and the later ones do
	// not; repetition counting compares piece placement alone, so the three
	// still match.
	board := engine.NewInitialBoard()
	testutil.MustPlay(t, board, "e2e4 g8f6 g1f3 f6g8 f3g1 g8f6 g1f3 f6g8 f3g1")
	testutil.AssertTrue(t, engine.ThreefoldRepetition(board))
}

func TestInsufficientMaterial(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want bool
	}{
		{name: "bare kings", fen: "4k3/8/8/8/8/8/8/4K3 w - - 0 1", want: true},
		{name: "king and knight", fen: "4k3/8/8/8/8/8/8/4KN2 w - - 0 1", want: true},
		{name: "king and bishop", fen: "4k3/8/8/8/8/8/8/2B1K3 w - - 0 1", want: true},
		{name: "same-coloured bishops", fen: "4kb2/8/8/8/8/8/8/2B1K3 w - - 0 1", want: true},
		{name: "opposite-coloured bishops", fen: "4kb2/8/8/8/8/8/8/1B2K3 w - - 0 1", want: false},
		{name: "two knights", fen: "4k3/8/8/8/8/8/8/3NKN2 w - - 0 1", want: false},
		{name: "lone pawn", fen: "4k3/8/8/8/8/8/4P3/4K3 w - - 0 1", want: false},
		{name: "lone rook", fen: "4k3/8/8/8/8/8/8/R3K3 w - - 0 1", want: false},
		{name: "lone queen", fen: "4k3/8/8/8/8/8/8/3QK3 w - - 0 1", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := testutil.MustDecode(t, tt.fen)
			testutil.AssertEqual(t, engine.InsufficientMaterial(board), tt.want)
		})
	}
}

func TestInCheck(t *testing.T) {
	board := testutil.MustDecode(t, "4k3/8/8/8/8/8/4r3/4K3 w - - 0 1")
	testutil.AssertTrue(t, engine.InCheck(board, chess.White))
	testutil.AssertFalse(t, engine.InCheck(board, chess.Black))
}

func TestMaterialCount(t *testing.T) {
	board := engine.NewInitialBoard()
	testutil.AssertEqual(t, engine.MaterialCount(board, chess.White), 39)
	testutil.AssertEqual(t, engine.MaterialCount(board, chess.Black), 39)

	testutil.MustPlay(t, board, "e2e4 d7d5 e4d5")
	testutil.AssertEqual(t, engine.MaterialCount(board, chess.White), 39)
	testutil.AssertEqual(t, engine.MaterialCount(board, chess.Black), 38)
}

func TestStatusString(t *testing.T) {
	testutil.AssertEqual(t, engine.StatusInProgress.String(), "in progress")
	testutil.AssertEqual(t, engine.StatusCheckmate.String(), "checkmate")
	testutil.AssertEqual(t, engine.StatusThreefoldRepetition.String(), "draw by threefold repetition")

	testutil.AssertFalse(t, engine.StatusInProgress.Terminal())
	testutil.AssertTrue(t, engine.StatusStalemate.Terminal())
}
