package engine_test

import (
	"sort"
	"testing"

	"github.com/tejdeepgurramkonda/IgKnight-Chess-sub000/internal/chess"
	"github.com/tejdeepgurramkonda/IgKnight-Chess-sub000/internal/engine"
	"github.com/tejdeepgurramkonda/IgKnight-Chess-sub000/internal/testutil"
)

// labels returns the sorted move labels of a move set.
func labels(moves []chess.Move) []string {
	if len(moves) == 0 {
		return nil
	}
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.Label()
	}
	sort.Strings(out)
	return out
}

func TestPseudoLegalMovesInitial(t *testing.T) {
	board := engine.NewInitialBoard()
	testutil.AssertEqual(t, len(engine.PseudoLegalMoves(board, chess.White)), 20)
	testutil.AssertEqual(t, len(engine.PseudoLegalMoves(board, chess.Black)), 20)
}

func TestPseudoLegalMovesFrom(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		from string
		want []string
	}{
		{
			name: "knight jumps over pawns",
			fen:  engine.InitialFEN,
			from: "b1",
			want: []string{"b1a3", "b1c3"},
		},
		{
			name: "blocked rook has no moves",
			fen:  engine.InitialFEN,
			from: "a1",
			want: nil,
		},
		{
			name: "pawn single and double push",
			fen:  engine.InitialFEN,
			from: "e2",
			want: []string{"e2e3", "e2e4"},
		},
		{
			name: "pawn blocked ahead",
			fen:  "4k3/8/8/8/4p3/4P3/8/4K3 w - - 0 1",
			from: "e3",
			want: nil,
		},
		{
			name: "pawn double push blocked on the far square",
			fen:  "4k3/8/8/8/4p3/8/4P3/4K3 w - - 0 1",
			from: "e2",
			want: []string{"e2e3"},
		},
		{
			name: "empty square yields nil",
			fen:  engine.InitialFEN,
			from: "e4",
			want: nil,
		},
		{
			name: "promotion expands to four moves",
			fen:  "8/4P3/8/8/8/8/8/k3K3 w - - 0 1",
			from: "e7",
			want: []string{"e7e8b", "e7e8n", "e7e8q", "e7e8r"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := testutil.MustDecode(t, tt.fen)
			got := engine.PseudoLegalMovesFrom(board, testutil.Sq(t, tt.from))
			testutil.AssertEqual(t, labels(got), tt.want)
		})
	}
}

func TestPseudoLegalIgnoresKingSafety(t *testing.T) {
	// The e2 knight is pinned: pseudo-legal generation must still offer its
	// geometric moves.
	board := testutil.MustDecode(t, "4k3/4r3/8/8/8/8/4N3/4K3 w - - 0 1")
	got := engine.PseudoLegalMovesFrom(board, testutil.Sq(t, "e2"))
	testutil.AssertTrue(t, len(got) > 0)
}

func TestPawnCaptureGeneration(t *testing.T) {
	board := testutil.MustDecode(t, "4k3/8/8/3p4/4P3/8/8/4K3 w - - 0 1")
	got := engine.PseudoLegalMovesFrom(board, testutil.Sq(t, "e4"))
	testutil.AssertEqual(t, labels(got), []string{"e4d5", "e4e5"})

	capture := chess.Move{From: testutil.Sq(t, "e4"), To: testutil.Sq(t, "d5"), Capture: true}
	testutil.AssertTrue(t, testutil.ContainsMove(got, capture), "capture flag missing on e4d5")
}

func TestEnPassantGeneration(t *testing.T) {
	board := engine.NewInitialBoard()
	testutil.MustPlay(t, board, "e2e4 a7a6 e4e5 d7d5")

	got := engine.PseudoLegalMovesFrom(board, testutil.Sq(t, "e5"))
	ep := chess.Move{
		From:      testutil.Sq(t, "e5"),
		To:        testutil.Sq(t, "d6"),
		Capture:   true,
		EnPassant: true,
	}
	testutil.AssertTrue(t, testutil.ContainsMove(got, ep), "en passant capture not generated")

	// The window closes after one ply.
	testutil.MustPlay(t, board, "b1c3 a6a5")
	got = engine.PseudoLegalMovesFrom(board, testutil.Sq(t, "e5"))
	testutil.AssertEqual(t, labels(got), []string{"e5e6"})
}

func TestCastleGeneration(t *testing.T) {
	board := testutil.MustDecode(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	got := engine.PseudoLegalMovesFrom(board, testutil.Sq(t, "e1"))

	oo := chess.Move{From: testutil.Sq(t, "e1"), To: testutil.Sq(t, "g1"), Castle: true}
	ooo := chess.Move{From: testutil.Sq(t, "e1"), To: testutil.Sq(t, "c1"), Castle: true}
	testutil.AssertTrue(t, testutil.ContainsMove(got, oo), "kingside castle not generated")
	testutil.AssertTrue(t, testutil.ContainsMove(got, ooo), "queenside castle not generated")
}

func TestCastleGenerationRequiresEmptyPath(t *testing.T) {
	// Bishop on f1 blocks the kingside; queenside is clear.
	board := testutil.MustDecode(t, "r3k2r/8/8/8/8/8/8/R3KB1R w KQkq - 0 1")
	got := engine.PseudoLegalMovesFrom(board, testutil.Sq(t, "e1"))

	for _, m := range got {
		if m.Castle {
			testutil.AssertFalse(t, m.Kingside(), "kingside castle generated through the f1 bishop")
		}
	}
	ooo := chess.Move{From: testutil.Sq(t, "e1"), To: testutil.Sq(t, "c1"), Castle: true}
	testutil.AssertTrue(t, testutil.ContainsMove(got, ooo), "queenside castle not generated")
}

func TestCastleGenerationRequiresRights(t *testing.T) {
	board := testutil.MustDecode(t, "r3k2r/8/8/8/8/8/8/R3K2R w - - 0 1")
	for _, m := range engine.PseudoLegalMovesFrom(board, testutil.Sq(t, "e1")) {
		testutil.AssertFalse(t, m.Castle, "castle generated without rights")
	}
}

func TestIsAttacked(t *testing.T) {
	tests := []struct {
		name   string
		fen    string
		target string
		by     chess.Colour
		want   bool
	}{
		{
			name:   "pawn attacks its capture diagonal",
			fen:    "4k3/8/8/8/4P3/8/8/4K3 w - - 0 1",
			target: "d5",
			by:     chess.White,
			want:   true,
		},
		{
			name:   "pawn does not attack the square ahead",
			fen:    "4k3/8/8/8/4P3/8/8/4K3 w - - 0 1",
			target: "e5",
			by:     chess.White,
			want:   false,
		},
		{
			name:   "rook attacks along an open file",
			fen:    "4k3/8/8/8/r7/8/8/4K3 w - - 0 1",
			target: "a1",
			by:     chess.Black,
			want:   true,
		},
		{
			name:   "rook attack is blocked",
			fen:    "4k3/8/8/8/r2P4/8/8/4K3 w - - 0 1",
			target: "e4",
			by:     chess.Black,
			want:   false,
		},
		{
			name:   "rook attacks the blocker itself",
			fen:    "4k3/8/8/8/r2P4/8/8/4K3 w - - 0 1",
			target: "d4",
			by:     chess.Black,
			want:   true,
		},
		{
			name:   "knight attack",
			fen:    "4k3/8/8/8/8/5n2/8/4K3 w - - 0 1",
			target: "e1",
			by:     chess.Black,
			want:   true,
		},
		{
			name:   "king attacks adjacent squares",
			fen:    "4k3/8/8/8/8/8/8/4K3 w - - 0 1",
			target: "d2",
			by:     chess.White,
			want:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := testutil.MustDecode(t, tt.fen)
			got := engine.IsAttacked(board, testutil.Sq(t, tt.target), tt.by)
			testutil.AssertEqual(t, got, tt.want)
		})
	}
}
