package engine

import (
	"testing"

	"github.com/lgbarn/pgn-extract-go/internal/chess"
	"github.com/lgbarn/pgn-extract-go/internal/testutil"
)

// TestFoolsMate checks checkmate recognition on the classic fool's mate
// line (spec.md 8): after 1.f3 e5 2.g4, black to move has Qd8-h4# mating.
func TestFoolsMate(t *testing.T) {
	pos, side := testutil.MustParseFEN(t, "rnbqkbnr/pppp1ppp/8/4p3/6P1/5P2/PPPPP2P/RNBQKBNR b KQkq - 0 2")
	if side != chess.Black {
		t.Fatalf("side = %v, want Black", side)
	}

	moves := LegalMoves(pos, side)
	mate := chess.Move{}
	found := false
	for _, mv := range moves {
		if mv.From.String() == "D8" && mv.To.String() == "H4" {
			mate = mv
			found = true
		}
	}
	if !found {
		t.Fatalf("D8H4 not found among legal moves: %v", moves)
	}

	next := Apply(pos, side, mate)
	if !IsCheckmate(next, side.Opposite()) {
		t.Errorf("expected checkmate for White after Qd8h4")
	}
}

// TestStalemate checks the classic king-queen stalemate position
// (spec.md 8): black king a1, white king c2, white queen b3, black to
// move - no legal moves and not in check.
func TestStalemate(t *testing.T) {
	pos, side := testutil.MustParseFEN(t, "8/8/8/8/8/1Q6/2K5/k7 b - - 0 1")
	if HasLegalMoves(pos, side) {
		t.Errorf("expected no legal moves in stalemate position")
	}
	if InCheck(&pos, side) {
		t.Errorf("expected side not to be in check")
	}
	if !IsStalemate(pos, side) {
		t.Errorf("IsStalemate = false, want true")
	}
	if IsCheckmate(pos, side) {
		t.Errorf("IsCheckmate = true, want false")
	}
}

// TestEnPassantCapture checks that a pawn double push sets the en-passant
// target and that the capture removes the passed pawn (spec.md 8).
func TestEnPassantCapture(t *testing.T) {
	pos, side := testutil.MustParseFEN(t, "rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3")
	if side != chess.White {
		t.Fatalf("side = %v, want White", side)
	}
	if pos.EnPassant.String() != "D6" {
		t.Fatalf("EnPassant = %v, want D6", pos.EnPassant)
	}

	mv := testutil.MustParseMove(t, "E5D6")
	found := false
	for _, legal := range LegalMoves(pos, side) {
		if legal == mv {
			found = true
		}
	}
	if !found {
		t.Fatalf("E5D6 en-passant capture not found among legal moves")
	}

	next := Apply(pos, side, mv)
	if !next.Board.Get(chess.MakeSquare(3, 4)).IsEmpty() { // d5 (file 3, rank index 4) now empty
		t.Errorf("expected captured pawn removed from D5")
	}
	if next.Board.Get(chess.MakeSquare(3, 5)).Kind() != chess.Pawn { // d6 now holds the white pawn
		t.Errorf("expected white pawn to land on D6")
	}
}

// TestCastlingBlockedByAttack checks that castling is rejected when the
// transit square is attacked, and legal once the attacker is removed
// (spec.md 8).
func TestCastlingBlockedByAttack(t *testing.T) {
	pos, side := testutil.MustParseFEN(t, "4k3/8/b7/8/8/8/8/4K2R w K - 0 1")
	kingSide := testutil.MustParseMove(t, "E1G1")

	found := false
	for _, mv := range LegalMoves(pos, side) {
		if mv == kingSide {
			found = true
		}
	}
	if found {
		t.Errorf("E1G1 should not be legal while the bishop on A6 attacks F1")
	}

	pos.Board.Clear(chess.MakeSquare(0, 5)) // remove the bishop on a6
	found = false
	for _, mv := range LegalMoves(pos, side) {
		if mv == kingSide {
			found = true
		}
	}
	if !found {
		t.Errorf("E1G1 should be legal once the attacker is removed")
	}
}

// TestPromotionProducesFourVariants checks that every pawn move to the
// last rank produces exactly four legal variants differing only in
// promotion kind (spec.md 8).
func TestPromotionProducesFourVariants(t *testing.T) {
	pos, side := testutil.MustParseFEN(t, "8/4P3/8/8/8/4k3/8/4K3 w - - 0 1")
	count := 0
	for _, mv := range LegalMoves(pos, side) {
		if mv.From.String() == "E7" && mv.To.String() == "E8" {
			count++
		}
	}
	if count != 4 {
		t.Errorf("got %d promotion variants for E7E8, want 4", count)
	}
}
