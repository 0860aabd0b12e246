package search

import (
	"testing"

	"github.com/lgbarn/pgn-extract-go/internal/chess"
	"github.com/lgbarn/pgn-extract-go/internal/engine"
	"github.com/lgbarn/pgn-extract-go/internal/testutil"
)

func neverStop() bool { return false }

func TestMinimax_FoolsMate(t *testing.T) {
	// White has pushed f3 and g4; black to move and deliver Qh4#.
	pos, side := testutil.MustParseFEN(t, "rnbqkbnr/pppp1ppp/8/4p3/6P1/5P2/PPPPP2P/RNBQKBNR b KQkq - 0 1")
	tt := NewTable(10)

	score := Minimax(pos, side, side, 2, -MateScore*2, MateScore*2, 0, neverStop, tt)
	if score <= MateScore/2 {
		t.Errorf("Minimax score = %d, want a score reflecting forced mate for black", score)
	}
}

func TestMinimax_StalemateIsZero(t *testing.T) {
	pos, side := testutil.MustParseFEN(t, "8/8/8/8/8/1Q6/2K5/k7 b - - 0 1")
	tt := NewTable(10)

	score := Minimax(pos, side, side, 1, -MateScore*2, MateScore*2, 0, neverStop, tt)
	if score != 0 {
		t.Errorf("Minimax score for stalemate = %d, want 0", score)
	}
}

func TestMinimax_StoppedReturnsZero(t *testing.T) {
	pos := chess.InitialPosition()
	tt := NewTable(10)

	score := Minimax(pos, chess.White, chess.White, 4, -MateScore*2, MateScore*2, 0, func() bool { return true }, tt)
	if score != 0 {
		t.Errorf("Minimax under an immediately-set stop flag = %d, want 0", score)
	}
}

func TestMinimax_PrefersWinningMaterial(t *testing.T) {
	// White to move, can capture a free black rook on d5 with a bishop on
	// b3. One ply of search must improve on the static evaluation of the
	// starting position, which still carries the rook as black material.
	pos, side := testutil.MustParseFEN(t, "4k3/8/8/3r4/8/1B6/8/4K3 w - - 0 1")
	staticScore := engine.Evaluate(pos, side)

	tt := NewTable(10)
	searchedScore := Minimax(pos, side, side, 1, -MateScore*2, MateScore*2, 0, neverStop, tt)

	if searchedScore <= staticScore {
		t.Errorf("searched score (%d) should exceed the static score with the rook still on board (%d)", searchedScore, staticScore)
	}
}

func TestOrderedMoves_CapturesFirst(t *testing.T) {
	pos, side := testutil.MustParseFEN(t, "4k3/8/8/3r4/8/1B6/8/4K3 w - - 0 1")
	moves := engine.LegalMoves(pos, side)
	ordered := orderedMoves(pos, side, moves)

	if len(ordered) == 0 {
		t.Fatal("expected at least one legal move")
	}
	first := ordered[0]
	if capturedPieceValue(pos, first) == 0 {
		t.Errorf("first ordered move %+v should be the capture of the rook on d5", first)
	}
}
