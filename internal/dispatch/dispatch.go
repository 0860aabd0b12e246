// Package dispatch implements the root-level concurrency layer (spec.md
// 4.I): one goroutine per legal root move, bounded by a worker pool,
// selective and global cancellation driven by an optional user-move
// channel, a soft wall-clock deadline, and safe result aggregation.
//
// Grounded on original_source/engine.py's engine_search/worker_task (one
// process per root move, ~30ms poll loop, global stop_event), redesigned
// per spec.md 4.I/5 into two cooperating layers - worker-local and global
// atomic stop flags - instead of the original's single global stop_event,
// so a matched user move lets its own subtree keep running while every
// sibling aborts.
package dispatch

import (
	"math"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lgbarn/pgn-extract-go/internal/chess"
	"github.com/lgbarn/pgn-extract-go/internal/config"
	apperrors "github.com/lgbarn/pgn-extract-go/internal/errors"
	"github.com/lgbarn/pgn-extract-go/internal/engine"
	"github.com/lgbarn/pgn-extract-go/internal/search"
	"github.com/lgbarn/pgn-extract-go/internal/worker"
)

// Result is the outcome of a root search (spec.md 6). Absence of a move
// is reported through Found rather than a sentinel move value, since Go
// idiom favors an ok-bool over inspecting a zero Move for meaning.
type Result struct {
	Move  chess.Move
	Found bool
	Score int
}

// ScoreOrNaN reports Score as a float64, or NaN when no move was found.
// This is the thinnest possible compatibility seam for a caller that
// wants spec.md 6's literal "(from, to, promotion?, score)" contract with
// a NaN sentinel; everywhere else in this package, Found is the idiom.
func (r Result) ScoreOrNaN() float64 {
	if !r.Found {
		return math.NaN()
	}
	return float64(r.Score)
}

// Search runs the root dispatcher: it enumerates legal moves for side in
// pos, searches each to cfg.Depth plies in its own worker, and returns
// the best-scoring root move. userMoves, if non-nil, is a single-producer
// channel of raw move strings (normalized internally) the caller may push
// onto while the search is in flight, implementing spec.md 4.I's
// selective-cancel protocol.
func Search(pos chess.Position, side chess.Colour, cfg config.SearchConfig, userMoves <-chan string) (Result, error) {
	if cfg.Depth <= 0 {
		return Result{}, &apperrors.SearchError{Err: apperrors.ErrInvalidConfig, FEN: chess.FEN(pos, side), Depth: cfg.Depth}
	}
	if pos.Board.KingSquare(side) == chess.NoSquare {
		return Result{}, &apperrors.SearchError{Err: apperrors.ErrNoKing, FEN: chess.FEN(pos, side)}
	}
	cfg = cfg.WithDefaults()

	roots := engine.LegalMoves(pos, side)
	if len(roots) == 0 {
		return Result{Found: false}, nil
	}

	maxWorkers := cfg.MaxWorkers
	if maxWorkers <= 0 {
		maxWorkers = runtime.GOMAXPROCS(0)
	}

	var global atomic.Bool
	localStops := make([]atomic.Bool, len(roots))
	var completed atomic.Int32

	var mu sync.Mutex
	scores := make(map[int]int, len(roots))

	pool := worker.NewPool(maxWorkers, len(roots), func(item worker.WorkItem) {
		defer completed.Add(1)

		idx := item.Index
		recoverWorkerPanic(idx, &mu, scores, func() {
			stop := func() bool { return localStops[idx].Load() || global.Load() }
			if stop() {
				return
			}

			next := engine.Apply(pos, side, item.Move)
			tt := search.NewTable(cfg.TTBits)
			score := search.Minimax(next, side, side.Opposite(), cfg.Depth-1, -search.MateScore*2, search.MateScore*2, 1, stop, tt)

			if stop() {
				// Observed a stop before publishing: must not record a
				// score (spec.md 5, "a worker that observes stop MUST NOT
				// publish").
				return
			}
			mu.Lock()
			scores[idx] = score
			mu.Unlock()
		})
	})

	pool.Start()
	for i, mv := range roots {
		pool.Submit(worker.WorkItem{Move: mv, Index: i})
	}

	monitor(cfg, roots, userMoves, &global, localStops, &completed)

	pool.Close()

	mu.Lock()
	defer mu.Unlock()
	bestIdx, bestScore := -1, 0
	for idx, score := range scores {
		if score == search.NoScore {
			continue
		}
		if bestIdx == -1 || score > bestScore {
			bestIdx, bestScore = idx, score
		}
	}
	if bestIdx == -1 {
		return Result{Found: false}, nil
	}
	return Result{Move: roots[bestIdx], Found: true, Score: bestScore}, nil
}

// monitor polls every cfg.PollInterval for deadline expiry, worker
// completion, and user-move announcements, matching spec.md 4.I.4.
func monitor(cfg config.SearchConfig, roots []chess.Move, userMoves <-chan string, global *atomic.Bool, localStops []atomic.Bool, completed *atomic.Int32) {
	deadline := time.Time{}
	if cfg.TimeLimit > 0 {
		deadline = time.Now().Add(cfg.TimeLimit)
	}

	for {
		if int(completed.Load()) >= len(roots) {
			return
		}
		if !deadline.IsZero() && time.Now().After(deadline) {
			global.Store(true)
			return
		}
		if userMoves != nil {
			select {
			case mv, ok := <-userMoves:
				if ok {
					handleAnnouncement(mv, roots, global, localStops)
				}
			default:
			}
		}
		time.Sleep(cfg.PollInterval)
	}
}

// recoverWorkerPanic runs fn and, if it panics, records search.NoScore for
// idx under mu instead of letting the panic escape the worker goroutine
// (spec.md 4.I.3, 7: "the dispatcher never throws to the caller"). The
// sentinel is chosen far below any legitimate score, so it never wins
// aggregation against a root move that completed normally.
func recoverWorkerPanic(idx int, mu *sync.Mutex, scores map[int]int, fn func()) {
	defer func() {
		if recover() != nil {
			mu.Lock()
			scores[idx] = search.NoScore
			mu.Unlock()
		}
	}()
	fn()
}

// handleAnnouncement implements the selective-cancel decision: a user
// move matching a root move stops every other worker and lets the
// matching one keep running; a non-matching move obsoletes the whole
// search and stops everyone (spec.md 4.I.4).
func handleAnnouncement(raw string, roots []chess.Move, global *atomic.Bool, localStops []atomic.Bool) {
	normalized := chess.Normalize(raw)
	matchedIdx := -1
	for i, mv := range roots {
		if mv.Matches(normalized) {
			matchedIdx = i
			break
		}
	}
	if matchedIdx == -1 {
		global.Store(true)
		return
	}
	for i := range localStops {
		if i != matchedIdx {
			localStops[i].Store(true)
		}
	}
}
