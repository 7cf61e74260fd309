package platform

import (
	"math"
	"time"

	"github.com/gogpu/gpucontext"
)

// Defaults for ClickCounter.
const (
	DefaultClickInterval = 500 * time.Millisecond
	DefaultClickSlop     = 4.0
)

// ClickCounter derives consecutive click counts from button presses, for
// drivers whose toolkit does not report them.
type ClickCounter struct {
	Interval time.Duration // zero means DefaultClickInterval
	Slop     float64       // zero means DefaultClickSlop

	last   time.Duration
	button gpucontext.Button
	x, y   float64
	count  int
}

// Press records a press at time t and returns its click count.
// A press continues the series when it uses the same button, lands within
// Slop pixels and follows the previous press within Interval.
func (c *ClickCounter) Press(b gpucontext.Button, x, y float64, t time.Duration) int {
	interval := c.Interval
	if interval == 0 {
		interval = DefaultClickInterval
	}
	slop := c.Slop
	if slop == 0 {
		slop = DefaultClickSlop
	}

	if c.count > 0 && b == c.button && t-c.last <= interval &&
		math.Abs(x-c.x) <= slop && math.Abs(y-c.y) <= slop {
		c.count++
	} else {
		c.count = 1
	}
	c.last, c.button, c.x, c.y = t, b, x, y
	return c.count
}

// Reset forgets the current series.
func (c *ClickCounter) Reset() {
	c.count = 0
}
