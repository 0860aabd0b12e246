// Package engineserver implements spec.md 6's "long-running engine mode":
// a task/result channel pair processed by Loop, plus an additive
// HTTP+WebSocket front end (Server) that was present in original_source
// but dropped by the distillation.
//
// Loop is grounded directly on original_source/EngineHandler.py's
// engine_process_main: block on the task queue, dispatch SEARCH to the
// search engine while forwarding the same user-move queue it already
// had, stop on QUIT, ignore anything else.
package engineserver

import (
	"time"

	"github.com/lgbarn/pgn-extract-go/internal/chess"
	"github.com/lgbarn/pgn-extract-go/internal/config"
	"github.com/lgbarn/pgn-extract-go/internal/dispatch"
)

// TaskKind is a task's command, mirroring EngineHandler.py's tuple tag
// ("SEARCH", ...) / ("QUIT",).
type TaskKind string

const (
	// TaskSearch requests one root search, per spec.md 6's
	// ("SEARCH", position, side, depth, time_limit[, castling, en-passant]).
	// Castling rights and the en-passant target travel inside Position
	// rather than as separate fields, since chess.Position already
	// bundles them (spec.md 3) - the original's board-dict-plus-loose-
	// fields shape is a source-language artifact, not a protocol detail.
	TaskSearch TaskKind = "SEARCH"
	// TaskQuit ends the loop, per spec.md 6's ("QUIT",).
	TaskQuit TaskKind = "QUIT"
)

// Task is one message on the task channel.
type Task struct {
	Kind      TaskKind
	Position  chess.Position
	Side      chess.Colour
	Depth     int
	TimeLimit time.Duration // <= 0 means unbounded, per config.SearchConfig.
	MaxWorkers int
}

// Result is one message on the result channel: spec.md 6's
// ("RESULT", from, to, score), with Found standing in for the "empty
// move" no-result case (spec.md 7).
type Result struct {
	Move  chess.Move
	Found bool
	Score int
}

// Loop processes tasks until a TaskQuit arrives or tasks is closed,
// emitting one Result per TaskSearch. userMoves is forwarded unchanged
// into dispatch.Search so an announcement made while a SEARCH is running
// reaches the same selective-cancel machinery spec.md 4.I describes.
// Malformed tasks (an unrecognized Kind) are ignored, per spec.md 6.
func Loop(tasks <-chan Task, userMoves <-chan string, results chan<- Result) {
	for t := range tasks {
		switch t.Kind {
		case TaskSearch:
			results <- runSearch(t, userMoves)
		case TaskQuit:
			return
		default:
			continue
		}
	}
}

func runSearch(t Task, userMoves <-chan string) Result {
	cfg := config.NewSearchConfigBuilder(t.Depth).WithMaxWorkers(t.MaxWorkers).WithTimeLimit(t.TimeLimit).Build()
	res, err := dispatch.Search(t.Position, t.Side, cfg, userMoves)
	if err != nil {
		return Result{Found: false}
	}
	return Result{Move: res.Move, Found: res.Found, Score: res.Score}
}
