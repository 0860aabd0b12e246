package engine

import "github.com/lgbarn/pgn-extract-go/internal/chess"

// Perft counts the number of legal move sequences from pos to the given
// depth, for move-generator correctness testing (spec.md 8's "perft at
// starting position" scenario) and as a CLI diagnostic. Every real-world
// Go move generator in the retrieved pack carries its own perft harness;
// this one is no exception.
func Perft(pos chess.Position, side chess.Colour, depth int) int64 {
	if depth == 0 {
		return 1
	}
	var count int64
	for _, mv := range LegalMoves(pos, side) {
		next := Apply(pos, side, mv)
		count += Perft(next, side.Opposite(), depth-1)
	}
	return count
}
