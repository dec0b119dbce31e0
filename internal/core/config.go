package core

import "time"

// RuntimeConfig contains host-level settings passed to a session at creation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frames per second; one fixed simulation step per frame
	Seed     int64 // RNG seed for deterministic spawning (0 = time based)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0,
	}
}

// FixedStep returns the simulation timestep in seconds.
// The step never depends on how long a frame actually took to render.
func (c RuntimeConfig) FixedStep() float64 {
	rate := c.TickRate
	if rate <= 0 {
		rate = 60
	}
	return 1.0 / float64(rate)
}

// TickInterval returns the wall-clock interval between frames.
func (c RuntimeConfig) TickInterval() time.Duration {
	rate := c.TickRate
	if rate <= 0 {
		rate = 60
	}
	return time.Second / time.Duration(rate)
}
