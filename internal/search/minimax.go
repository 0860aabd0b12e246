package search

import (
	"sort"

	"github.com/lgbarn/pgn-extract-go/internal/chess"
	"github.com/lgbarn/pgn-extract-go/internal/engine"
	"github.com/lgbarn/pgn-extract-go/internal/zobrist"
)

// StopFunc reports whether the current search branch must abandon work
// immediately. Callers compose their two cancellation layers (worker-local
// OR global, spec.md 5) into a single StopFunc before calling Minimax;
// this package has no notion of which layer fired.
type StopFunc func() bool

// Minimax evaluates position pos, with side to move, from maximizing's
// perspective, to remaining depth, within window [alpha, beta]. ply is
// the number of plies already played since the root move was applied,
// used only to bias mate scores (spec.md 9). stop is polled at entry and
// before every recursive call, matching spec.md 4.H and 5's "workers
// check atomic stop-flags at minimax entry and inside the per-move loop".
func Minimax(pos chess.Position, maximizing, side chess.Colour, depth int, alpha, beta int, ply int, stop StopFunc, tt *Table) int {
	if stop() {
		return 0
	}

	if depth == 0 {
		return engine.Evaluate(pos, maximizing)
	}

	hash := zobrist.Hash(pos, side)
	if score, ok := tt.Probe(hash, depth); ok {
		return score
	}

	moves := engine.LegalMoves(pos, side)
	if len(moves) == 0 {
		var value int
		switch {
		case engine.InCheck(&pos, side) && side == maximizing:
			value = mateScore(true, ply)
		case engine.InCheck(&pos, side) && side != maximizing:
			value = mateScore(false, ply)
		default:
			value = 0
		}
		tt.Store(hash, depth, value)
		return value
	}
	moves = orderedMoves(pos, side, moves)

	opponent := side.Opposite()
	maximizingNode := side == maximizing
	var value int
	if maximizingNode {
		value = -MateScore * 2
	} else {
		value = MateScore * 2
	}

	for _, mv := range moves {
		if stop() {
			return 0
		}
		next := engine.Apply(pos, side, mv)
		score := Minimax(next, maximizing, opponent, depth-1, alpha, beta, ply+1, stop, tt)

		if maximizingNode {
			if score > value {
				value = score
			}
			if value > alpha {
				alpha = value
			}
		} else {
			if score < value {
				value = score
			}
			if value < beta {
				beta = value
			}
		}
		if alpha >= beta {
			break
		}
	}

	tt.Store(hash, depth, value)
	return value
}

// orderedMoves returns moves sorted by MVV-LVA priority (spec.md 4.H):
// captures first, scored 10*value(victim)-value(attacker) descending,
// then non-captures in their generated order.
func orderedMoves(pos chess.Position, side chess.Colour, moves []chess.Move) []chess.Move {
	type scored struct {
		mv      chess.Move
		capture bool
		score   int
	}
	pairs := make([]scored, len(moves))
	for i, mv := range moves {
		pairs[i] = scored{mv: mv, capture: capturedPieceValue(pos, mv) != 0, score: moveOrderScore(pos, side, mv)}
	}
	sort.SliceStable(pairs, func(i, j int) bool {
		if pairs[i].capture != pairs[j].capture {
			return pairs[i].capture
		}
		return pairs[i].score > pairs[j].score
	})
	ordered := make([]chess.Move, len(pairs))
	for i, p := range pairs {
		ordered[i] = p.mv
	}
	return ordered
}

// moveOrderScore returns the MVV-LVA priority of a single move: a large
// positive value for a good capture, 0 for a quiet move.
func moveOrderScore(pos chess.Position, side chess.Colour, mv chess.Move) int {
	victim := capturedPieceValue(pos, mv)
	if victim == 0 {
		return 0
	}
	attacker := pos.Board.Get(mv.From).Kind().MaterialValue()
	return 10*victim - attacker
}

// capturedPieceValue returns the material value of the piece mv removes,
// or 0 for a non-capture. It accounts for en-passant, where the captured
// pawn does not sit on the move's destination square.
func capturedPieceValue(pos chess.Position, mv chess.Move) int {
	target := pos.Board.Get(mv.To)
	if !target.IsEmpty() {
		return target.Kind().MaterialValue()
	}
	if pos.Board.Get(mv.From).Kind() == chess.Pawn && mv.To == pos.EnPassant && pos.EnPassant != chess.NoSquare {
		return chess.Pawn.MaterialValue()
	}
	return 0
}
