package engine

import (
	"testing"

	"github.com/lgbarn/pgn-extract-go/internal/chess"
	"github.com/lgbarn/pgn-extract-go/internal/testutil"
)

func TestApply_DoublePushSetsEnPassant(t *testing.T) {
	pos, side := testutil.MustParseFEN(t, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	mv := testutil.MustParseMove(t, "E2E4")
	next := Apply(pos, side, mv)
	if next.EnPassant.String() != "E3" {
		t.Errorf("EnPassant = %v, want E3", next.EnPassant)
	}
}

func TestApply_NonDoublePushClearsEnPassant(t *testing.T) {
	pos, side := testutil.MustParseFEN(t, "rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3")
	mv := testutil.MustParseMove(t, "E5E6")
	next := Apply(pos, side, mv)
	if next.EnPassant != chess.NoSquare {
		t.Errorf("EnPassant = %v, want NoSquare", next.EnPassant)
	}
}

func TestApply_KingMoveClearsBothCastlingRights(t *testing.T) {
	pos, side := testutil.MustParseFEN(t, "4k3/8/8/8/8/8/8/4K2R w KQ - 0 1")
	mv := testutil.MustParseMove(t, "E1D1")
	next := Apply(pos, side, mv)
	if next.Castling.WhiteKingSide || next.Castling.WhiteQueenSide {
		t.Errorf("castling rights should be cleared after king move, got %+v", next.Castling)
	}
}

func TestApply_RookCaptureClearsThatSideOnly(t *testing.T) {
	pos, side := testutil.MustParseFEN(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	mv := testutil.MustParseMove(t, "A1A8")
	next := Apply(pos, side, mv)
	if next.Castling.BlackQueenSide {
		t.Errorf("capturing the a8 rook should clear black's queen-side right")
	}
	if !next.Castling.BlackKingSide {
		t.Errorf("capturing the a8 rook should not affect black's king-side right")
	}
	if next.Castling.WhiteQueenSide || !next.Castling.WhiteKingSide {
		t.Errorf("white's rook leaving a1 should clear white's queen-side right only, got %+v", next.Castling)
	}
}

func TestApply_KingSideCastleRelocatesRook(t *testing.T) {
	pos, side := testutil.MustParseFEN(t, "4k3/8/8/8/8/8/8/4K2R w K - 0 1")
	mv := testutil.MustParseMove(t, "E1G1")
	next := Apply(pos, side, mv)

	if next.Board.Get(chess.MakeSquare(5, 0)).Kind() != chess.Rook { // f1
		t.Errorf("expected rook to land on F1")
	}
	if !next.Board.Get(chess.MakeSquare(7, 0)).IsEmpty() { // h1
		t.Errorf("expected H1 to be empty after castling")
	}
	if next.Board.Get(chess.MakeSquare(6, 0)).Kind() != chess.King { // g1
		t.Errorf("expected king to land on G1")
	}
}

func TestApply_PromotionReplacesPiece(t *testing.T) {
	pos, side := testutil.MustParseFEN(t, "8/4P3/8/8/8/8/4k3/4K3 w - - 0 1")
	mv := testutil.MustParseMove(t, "E7E8Q")
	next := Apply(pos, side, mv)
	got := next.Board.Get(chess.MakeSquare(4, 7))
	if got.Kind() != chess.Queen || got.Colour() != chess.White {
		t.Errorf("got %v, want a white queen on E8", got)
	}
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	pos, side := testutil.MustParseFEN(t, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	before := pos.Board.Get(chess.MakeSquare(4, 1))
	mv := testutil.MustParseMove(t, "E2E4")
	Apply(pos, side, mv)
	after := pos.Board.Get(chess.MakeSquare(4, 1))
	if before != after {
		t.Errorf("Apply mutated its input position")
	}
}
