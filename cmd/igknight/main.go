// igknight is a position-inspection tool for the rules engine: it decodes a
// FEN, applies a sequence of move labels, and reports legal moves, notation,
// game status, or perft counts.
package main

import (
	stderrors "errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/tejdeepgurramkonda/IgKnight-Chess-sub000/internal/chess"
	"github.com/tejdeepgurramkonda/IgKnight-Chess-sub000/internal/engine"
	"github.com/tejdeepgurramkonda/IgKnight-Chess-sub000/internal/errors"
)

const programVersion = "0.1.0"

var (
	fenFlag    = flag.String("fen", engine.InitialFEN, "Position to start from, as a FEN string")
	movesFlag  = flag.String("moves", "", "Space-separated move labels to apply (e.g. 'e2e4 e7e5')")
	listFlag   = flag.Bool("list", false, "List legal moves for the side to move")
	fromFlag   = flag.String("from", "", "List legal moves for the piece on this square")
	sanFlag    = flag.Bool("san", false, "Print the applied moves in short algebraic notation")
	statusFlag = flag.Bool("status", false, "Print the game status of the resulting position")
	perftFlag  = flag.Int("perft", 0, "Count legal-move-tree leaf nodes to this depth")
	version    = flag.Bool("version", false, "Print version and exit")
)

// Exit codes: 1 for an illegal move, 2 for a malformed FEN, square or move
// label, 3 for corrupt state.
const (
	exitOK      = 0
	exitIllegal = 1
	exitFormat  = 2
	exitCorrupt = 3
)

func main() {
	flag.Usage = usage
	flag.Parse()

	if *version {
		fmt.Printf("igknight version %s\n", programVersion)
		os.Exit(exitOK)
	}

	os.Exit(run())
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: igknight [options]\n\n")
	fmt.Fprintf(os.Stderr, "Inspect chess positions: decode a FEN, apply moves, list legal moves,\n")
	fmt.Fprintf(os.Stderr, "print notation, status, or perft counts.\n\nOptions:\n")
	flag.PrintDefaults()
}

func run() int {
	board, err := engine.Decode(*fenFlag)
	if err != nil {
		return report(err)
	}

	if code := applyMoves(board, *movesFlag); code != exitOK {
		return code
	}

	fmt.Println(engine.Encode(board))

	if *listFlag {
		printMoves(engine.LegalMoves(board, board.ToMove))
	}
	if *fromFlag != "" {
		pos, err := chess.ParseSquare(*fromFlag)
		if err != nil {
			return report(err)
		}
		printMoves(engine.LegalMovesFrom(board, pos))
	}
	if *statusFlag {
		status, err := engine.Evaluate(board)
		if err != nil {
			return report(err)
		}
		fmt.Println(status)
	}
	if *perftFlag > 0 {
		for depth := 1; depth <= *perftFlag; depth++ {
			fmt.Printf("perft(%d) = %d\n", depth, engine.Perft(board, depth))
		}
	}

	return exitOK
}

// applyMoves parses, resolves, validates and executes each move label,
// printing a SAN transcript when requested.
func applyMoves(board *chess.Board, moves string) int {
	var transcript []string
	for _, label := range strings.Fields(moves) {
		parsed, err := chess.ParseMove(label)
		if err != nil {
			return report(err)
		}
		m, err := engine.FindMove(board, parsed.From, parsed.To, parsed.Promotion)
		if err != nil {
			return report(err)
		}
		if err := engine.Validate(board, m); err != nil {
			return report(err)
		}
		if *sanFlag {
			transcript = append(transcript, engine.SAN(board, m))
		}
		engine.Execute(board, m)
	}
	if *sanFlag && len(transcript) > 0 {
		fmt.Println(strings.Join(transcript, " "))
	}
	return exitOK
}

// printMoves prints move labels one per line.
func printMoves(moves []chess.Move) {
	for _, m := range moves {
		fmt.Println(m.Label())
	}
}

// report prints an error to stderr and maps it to an exit code.
func report(err error) int {
	fmt.Fprintf(os.Stderr, "igknight: %v\n", err)
	switch {
	case errors.IsFormat(err):
		return exitFormat
	case stderrors.Is(err, errors.ErrCorruptState):
		return exitCorrupt
	default:
		return exitIllegal
	}
}
