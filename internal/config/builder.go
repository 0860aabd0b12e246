package config

import "time"

// SearchConfigBuilder provides a fluent API for building SearchConfig
// values, mirroring the teacher's builder-option style for its own
// (much larger) Config type.
type SearchConfigBuilder struct {
	cfg SearchConfig
}

// NewSearchConfigBuilder creates a builder for the given depth.
func NewSearchConfigBuilder(depth int) *SearchConfigBuilder {
	return &SearchConfigBuilder{cfg: NewSearchConfig(depth)}
}

// Build returns the built SearchConfig with defaults applied.
func (b *SearchConfigBuilder) Build() SearchConfig {
	return b.cfg.WithDefaults()
}

// WithTimeLimit sets the wall-clock deadline.
func (b *SearchConfigBuilder) WithTimeLimit(d time.Duration) *SearchConfigBuilder {
	b.cfg.TimeLimit = d
	return b
}

// WithMaxWorkers bounds the number of concurrent root-move workers.
func (b *SearchConfigBuilder) WithMaxWorkers(n int) *SearchConfigBuilder {
	b.cfg.MaxWorkers = n
	return b
}

// WithPollInterval overrides the monitor goroutine's poll interval.
func (b *SearchConfigBuilder) WithPollInterval(d time.Duration) *SearchConfigBuilder {
	b.cfg.PollInterval = d
	return b
}

// WithTTBits sizes each worker's transposition table at 2^bits entries.
func (b *SearchConfigBuilder) WithTTBits(bits int) *SearchConfigBuilder {
	b.cfg.TTBits = bits
	return b
}
