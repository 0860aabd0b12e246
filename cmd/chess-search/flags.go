// flags.go - command-line flag definitions for chess-search.
package main

import (
	"flag"

	"github.com/lgbarn/pgn-extract-go/internal/config"
)

var (
	fenFlag       = flag.String("fen", "", "FEN of the position to search (default: standard starting position)")
	depthFlag     = flag.Int("depth", 4, "search depth in plies")
	timeLimitFlag = flag.Duration("time", 0, "soft wall-clock deadline (0 = unbounded)")
	workersFlag   = flag.Int("workers", 0, "max concurrent root-move workers (0 = auto)")
	ttBitsFlag    = flag.Int("tt-bits", 0, "per-worker transposition table size as 2^N entries (0 = default)")

	// perft subcommand flags, parsed by their own FlagSet in runPerft.
	perftFEN   = flag.NewFlagSet("perft", flag.ExitOnError)
	perftDepth = perftFEN.Int("depth", 4, "perft depth in plies")
	perftPos   = perftFEN.String("fen", "", "FEN of the position to count from (default: standard starting position)")
)

// buildSearchConfig applies the top-level flags to a SearchConfig.
func buildSearchConfig() config.SearchConfig {
	b := config.NewSearchConfigBuilder(*depthFlag).WithMaxWorkers(*workersFlag)
	if *timeLimitFlag > 0 {
		b = b.WithTimeLimit(*timeLimitFlag)
	}
	if *ttBitsFlag > 0 {
		b = b.WithTTBits(*ttBitsFlag)
	}
	return b.Build()
}
