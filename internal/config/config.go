// Package config holds search configuration and its defaults, mirroring
// the teacher's role of a single place that carries tunables and program
// defaults rather than scattering them through call sites.
package config

import "time"

// Defaults for tunables not supplied by the caller (spec.md 6: depth is
// required, everything else has a sensible default).
const (
	// DefaultMaxWorkers of 0 means "auto": runtime.GOMAXPROCS(0).
	DefaultMaxWorkers = 0
	// DefaultPollInterval is how often the root dispatcher's monitor
	// goroutine polls for deadline expiry and user-move announcements
	// (spec.md 4.I.4, "every ~30 ms").
	DefaultPollInterval = 30 * time.Millisecond
	// DefaultTTBits sizes the transposition table at 2^20 entries per
	// worker (spec.md 4.G).
	DefaultTTBits = 20
)

// SearchConfig holds the parameters of a single search call (spec.md 6).
// It is created per call, never global - the transposition table and
// result map it implies are likewise created fresh per search and
// discarded afterward (spec.md 4.G, 9).
type SearchConfig struct {
	// Depth is the search depth in plies; must be positive.
	Depth int
	// TimeLimit is a soft wall-clock ceiling; zero or negative means
	// unbounded (spec.md 6).
	TimeLimit time.Duration
	// MaxWorkers bounds concurrent root-move workers; 0 means auto
	// (runtime.GOMAXPROCS(0)).
	MaxWorkers int
	// PollInterval overrides the monitor's poll interval; zero means
	// DefaultPollInterval.
	PollInterval time.Duration
	// TTBits sizes each worker's transposition table at 2^TTBits
	// entries; zero means DefaultTTBits.
	TTBits int
}

// WithDefaults returns a copy of c with zero-valued fields replaced by
// their defaults.
func (c SearchConfig) WithDefaults() SearchConfig {
	if c.PollInterval <= 0 {
		c.PollInterval = DefaultPollInterval
	}
	if c.TTBits <= 0 {
		c.TTBits = DefaultTTBits
	}
	return c
}

// NewSearchConfig builds a SearchConfig for the common case: a fixed
// depth, unbounded time, auto worker count.
func NewSearchConfig(depth int) SearchConfig {
	return SearchConfig{
		Depth:      depth,
		MaxWorkers: DefaultMaxWorkers,
	}.WithDefaults()
}
