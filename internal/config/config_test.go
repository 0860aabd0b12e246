package config

import (
	"testing"
	"time"
)

func TestNewSearchConfig_Defaults(t *testing.T) {
	c := NewSearchConfig(4)
	if c.Depth != 4 {
		t.Errorf("Depth = %d, want 4", c.Depth)
	}
	if c.MaxWorkers != DefaultMaxWorkers {
		t.Errorf("MaxWorkers = %d, want %d", c.MaxWorkers, DefaultMaxWorkers)
	}
	if c.PollInterval != DefaultPollInterval {
		t.Errorf("PollInterval = %v, want %v", c.PollInterval, DefaultPollInterval)
	}
	if c.TTBits != DefaultTTBits {
		t.Errorf("TTBits = %d, want %d", c.TTBits, DefaultTTBits)
	}
}

func TestSearchConfigBuilder(t *testing.T) {
	c := NewSearchConfigBuilder(6).
		WithTimeLimit(2 * time.Second).
		WithMaxWorkers(4).
		WithPollInterval(10 * time.Millisecond).
		WithTTBits(16).
		Build()

	want := SearchConfig{
		Depth:        6,
		TimeLimit:    2 * time.Second,
		MaxWorkers:   4,
		PollInterval: 10 * time.Millisecond,
		TTBits:       16,
	}
	if c != want {
		t.Errorf("Build() = %+v, want %+v", c, want)
	}
}

func TestWithDefaults_LeavesSetFieldsAlone(t *testing.T) {
	c := SearchConfig{Depth: 3, PollInterval: 5 * time.Millisecond, TTBits: 10}.WithDefaults()
	if c.PollInterval != 5*time.Millisecond {
		t.Errorf("PollInterval = %v, want unchanged 5ms", c.PollInterval)
	}
	if c.TTBits != 10 {
		t.Errorf("TTBits = %d, want unchanged 10", c.TTBits)
	}
}
