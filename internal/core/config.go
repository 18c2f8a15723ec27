package core

import "time"

// DefaultTickInterval is the fixed simulation period (about 60 Hz).
const DefaultTickInterval = 16 * time.Millisecond

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses it to size the field and seed its obstacle generator.
type RuntimeConfig struct {
	ScreenW      int           // Screen width in characters
	ScreenH      int           // Screen height in characters
	TickInterval time.Duration // Period between simulation ticks
	Seed         int64         // RNG seed; 0 means pick one from the clock
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:      80,
		ScreenH:      24,
		TickInterval: DefaultTickInterval,
	}
}

// Interval returns the tick period, falling back to the default when unset.
func (c RuntimeConfig) Interval() time.Duration {
	if c.TickInterval <= 0 {
		return DefaultTickInterval
	}
	return c.TickInterval
}

// IntervalForRate converts a ticks-per-second rate into a tick period.
func IntervalForRate(rate int) time.Duration {
	if rate <= 0 {
		return DefaultTickInterval
	}
	return time.Second / time.Duration(rate)
}

// ResolveSeed returns a copy with a clock-derived seed when none is set.
func (c RuntimeConfig) ResolveSeed() RuntimeConfig {
	if c.Seed == 0 {
		c.Seed = time.Now().UnixNano()
	}
	return c
}
