// Package engine is the minimal host the game rules run on: a session clock
// with one-shot and repeating timers, fixed-capacity entity pools, kinematic
// bodies with world-bounds clamping, AABB overlap and a seeded RNG.
//
// Everything here is single-threaded. The platform calls into it from one
// tick loop, so nothing is guarded by locks.
package engine

import "time"

// Clock is a manually advanced session clock.
type Clock struct {
	now time.Duration
}

// Now returns the time elapsed since the clock was created.
func (c *Clock) Now() time.Duration {
	return c.now
}

// Advance moves the clock forward by d. Negative values are ignored.
func (c *Clock) Advance(d time.Duration) {
	if d > 0 {
		c.now += d
	}
}

// TickInterval returns the fixed simulation step for a tick rate.
func TickInterval(tickRate int) time.Duration {
	if tickRate <= 0 {
		tickRate = 60
	}
	return time.Second / time.Duration(tickRate)
}
