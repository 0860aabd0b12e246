// chess-search runs the root dispatcher (spec.md 4.I) over a position
// given on the command line, or counts legal moves via its perft
// subcommand.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lgbarn/pgn-extract-go/internal/chess"
	"github.com/lgbarn/pgn-extract-go/internal/dispatch"
)

const programVersion = "0.1.0"

const startingFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

func main() {
	if len(os.Args) > 1 && os.Args[1] == "perft" {
		runPerft(os.Args[2:])
		return
	}

	flag.Usage = usage
	flag.Parse()
	runSearch()
}

func usage() {
	fmt.Fprintf(os.Stderr, "chess-search %s\n\n", programVersion)
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  chess-search [flags]        search a position and print the best move")
	fmt.Fprintln(os.Stderr, "  chess-search perft [flags]  count legal moves to a given depth")
	fmt.Fprintln(os.Stderr, "\nFlags:")
	flag.PrintDefaults()
}

func runSearch() {
	fen := *fenFlag
	if fen == "" {
		fen = startingFEN
	}

	pos, side, err := chess.ParseFEN(fen)
	if err != nil {
		fmt.Fprintf(os.Stderr, "chess-search: %v\n", err)
		os.Exit(1)
	}

	result, err := dispatch.Search(pos, side, buildSearchConfig(), nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "chess-search: %v\n", err)
		os.Exit(1)
	}

	if !result.Found {
		fmt.Println("no move (game over)")
		return
	}
	fmt.Printf("%s score=%d\n", result.Move, result.Score)
}
