// internal/sim/clock.go

package sim

// Clock is the single simulated-time value of one run. It only moves forward:
// Advance adds a completed task's duration, JumpTo skips an idle gap.
type Clock struct {
	now int64
}

// Now returns the current simulated time.
func (c *Clock) Now() int64 { return c.now }

// Advance moves the clock forward by d time units.
func (c *Clock) Advance(d int64) {
	if d < 0 {
		panic("sim: clock advanced by negative duration")
	}
	c.now += d
}

// JumpTo sets the clock to t, which must not be in the past.
func (c *Clock) JumpTo(t int64) {
	if t < c.now {
		panic("sim: time reversal")
	}
	c.now = t
}
