package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClockMovesForward(t *testing.T) {
	var c Clock
	c.Advance(2)
	c.JumpTo(7)
	c.Advance(0)
	assert.Equal(t, int64(7), c.Now())
}

func TestClockJumpBackwardsPanics(t *testing.T) {
	var c Clock
	c.Advance(5)
	assert.PanicsWithValue(t, "sim: time reversal", func() { c.JumpTo(3) })
}
