// perft.go - the perft subcommand: count legal move sequences from a
// position to a given depth, for validating the move generator.
package main

import (
	"fmt"
	"os"

	"github.com/lgbarn/pgn-extract-go/internal/chess"
	"github.com/lgbarn/pgn-extract-go/internal/engine"
)

func runPerft(args []string) {
	if err := perftFEN.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "chess-search perft: %v\n", err)
		os.Exit(1)
	}

	fen := *perftPos
	if fen == "" {
		fen = startingFEN
	}

	pos, side, err := chess.ParseFEN(fen)
	if err != nil {
		fmt.Fprintf(os.Stderr, "chess-search perft: %v\n", err)
		os.Exit(1)
	}

	count := engine.Perft(pos, side, *perftDepth)
	fmt.Printf("perft(%d) = %d\n", *perftDepth, count)
}
