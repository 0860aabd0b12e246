// Package search implements the bounded-depth alpha-beta minimax
// (spec.md 4.H) and its supporting transposition table (spec.md 4.G),
// grounded on original_source/engine.py's minimax/evaluate_board and the
// teacher's hash-keyed lookup style in internal/hashing.
package search

// MateScore is the magnitude used for a forced checkmate, one order of
// magnitude past any reachable material delta so it always dominates
// aggregation. Per spec.md 9, a mate is reported as MateScore-ply so
// shallower mates score higher than deeper ones.
const MateScore = 1_000_000

// NoScore marks the absence of a result: the dispatcher records it for a
// root move whose worker panicked. Chosen far below any legitimate score
// (including a mate against the side to move) so it never wins a max
// aggregation and is never mistaken for a real evaluation.
const NoScore = -2 * MateScore

// mateScore returns the signed score for a checkmate found ply plies below
// the root, from the maximizing side's perspective. A shallower mate (small
// ply) carries a larger magnitude than a deeper one, per spec.md 9, so the
// search prefers the fastest mate and most delays the slowest loss.
func mateScore(badForMaximizer bool, ply int) int {
	magnitude := MateScore - ply
	if badForMaximizer {
		return -magnitude
	}
	return magnitude
}
