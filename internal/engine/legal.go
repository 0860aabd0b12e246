package engine

import "github.com/lgbarn/pgn-extract-go/internal/chess"

// isCastlingMove reports whether mv is a king move of horizontal distance
// two - the encoding spec.md 3 specifies for castling.
func isCastlingMove(pos chess.Position, side chess.Colour, mv chess.Move) bool {
	piece := pos.Board.Get(mv.From)
	return piece.Kind() == chess.King && abs(mv.To.File()-mv.From.File()) == 2
}

// LegalMoves filters GeneratePseudoLegal's output to moves that leave
// side's own king safe, rejecting castling additionally if the king's
// origin, transit, or destination square is attacked in the pre-move
// board (spec.md 4.E).
func LegalMoves(pos chess.Position, side chess.Colour) []chess.Move {
	pseudo := GeneratePseudoLegal(pos, side)
	legal := make([]chess.Move, 0, len(pseudo))
	for _, mv := range pseudo {
		if !IsLegal(pos, side, mv) {
			continue
		}
		legal = append(legal, mv)
	}
	return legal
}

// IsLegal reports whether a single pseudo-legal move mv is legal for side
// in pos (spec.md 4.E). Callers must already have confirmed mv is
// pseudo-legal; IsLegal only applies the check-safety filter.
func IsLegal(pos chess.Position, side chess.Colour, mv chess.Move) bool {
	if isCastlingMove(pos, side, mv) {
		opponent := side.Opposite()
		transit := chess.MakeSquare((mv.From.File()+mv.To.File())/2, mv.From.Rank())
		if IsAttacked(&pos.Board, mv.From, opponent) ||
			IsAttacked(&pos.Board, transit, opponent) ||
			IsAttacked(&pos.Board, mv.To, opponent) {
			return false
		}
	}

	next := Apply(pos, side, mv)
	return !InCheck(&next, side)
}

// HasLegalMoves reports whether side has at least one legal move in pos,
// without constructing the full slice.
func HasLegalMoves(pos chess.Position, side chess.Colour) bool {
	for _, mv := range GeneratePseudoLegal(pos, side) {
		if IsLegal(pos, side, mv) {
			return true
		}
	}
	return false
}

// IsCheckmate reports whether side to move is checkmated in pos
// (spec.md 4.E: no legal moves, and in check).
func IsCheckmate(pos chess.Position, side chess.Colour) bool {
	return InCheck(&pos, side) && !HasLegalMoves(pos, side)
}

// IsStalemate reports whether side to move is stalemated in pos
// (spec.md 4.E: no legal moves, and not in check).
func IsStalemate(pos chess.Position, side chess.Colour) bool {
	return !InCheck(&pos, side) && !HasLegalMoves(pos, side)
}
