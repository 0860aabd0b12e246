// Package testutil provides shared test utilities for the search engine.
// These utilities reduce code duplication across test files and provide
// consistent test setup helpers.
package testutil

import (
	"testing"

	"github.com/lgbarn/pgn-extract-go/internal/chess"
)

// MustParseFEN parses a FEN string and returns the position and side to
// move. It calls t.Fatal if parsing fails.
// Use this in test setup where a malformed FEN fixture should abort the
// test immediately rather than produce a confusing downstream failure.
func MustParseFEN(t *testing.T, fen string) (chess.Position, chess.Colour) {
	t.Helper()
	pos, side, err := chess.ParseFEN(fen)
	if err != nil {
		t.Fatalf("failed to parse test FEN %q: %v", fen, err)
	}
	return pos, side
}

// MustParseMove parses a move string and calls t.Fatal if it is malformed.
func MustParseMove(t *testing.T, s string) chess.Move {
	t.Helper()
	mv, ok := chess.ParseMove(s)
	if !ok {
		t.Fatalf("failed to parse test move %q", s)
	}
	return mv
}
