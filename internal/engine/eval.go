package engine

import "github.com/lgbarn/pgn-extract-go/internal/chess"

// mobilityWeight is the per-move bonus awarded for pseudo-legal mobility
// (spec.md 4.F).
const mobilityWeight = 2

// Evaluate scores pos from perspective's point of view: material
// difference plus a mobility term, both computed from perspective's side
// (spec.md 4.F). Checkmate and stalemate are not scored here; the search
// layer scores those as +/-(MateScore - ply) and 0 respectively.
func Evaluate(pos chess.Position, perspective chess.Colour) int {
	score := materialBalance(&pos.Board, perspective)

	ownMobility := len(GeneratePseudoLegal(pos, perspective))
	oppMobility := len(GeneratePseudoLegal(pos, perspective.Opposite()))
	score += mobilityWeight * (ownMobility - oppMobility)

	return score
}

// materialBalance sums perspective's own material minus the opponent's.
// The mobility term intentionally uses pseudo-legal counts rather than
// legal counts - legality-filtering here would be prohibitively expensive
// for a leaf evaluator, and the resulting bias is deemed acceptable
// (spec.md 4.F).
func materialBalance(b *chess.Board, perspective chess.Colour) int {
	score := 0
	for sq := chess.Square(0); sq < chess.NumSquares; sq++ {
		cp := b.Get(sq)
		if cp.IsEmpty() {
			continue
		}
		value := cp.Kind().MaterialValue()
		if cp.Colour() == perspective {
			score += value
		} else {
			score -= value
		}
	}
	return score
}
