package vcui

import (
	"fmt"
	"time"
)

// Clock paces the frame loop at a fixed number of loops per second and measures frame deltas.
// Now and Sleep default to the time package, tests replace them.
type Clock struct {
	Now   func() time.Time
	Sleep func(d time.Duration)

	frame  time.Duration
	last   time.Time
	second time.Time
	frames int
	lps    int
}

// NewClock returns a clock running at lps loops per second.
func NewClock(lps int) (*Clock, error) {
	if lps <= 0 {
		return nil, fmt.Errorf("loops per second %d: %w", lps, ErrInvalidMode)
	}
	c := &Clock{
		Now:   time.Now,
		Sleep: time.Sleep,
		frame: time.Second / time.Duration(lps),
	}
	c.Restart()
	return c, nil
}

// Tick waits for the rest of the frame and returns the time since the previous tick, in milliseconds.
func (c *Clock) Tick() float64 {
	now := c.Now()
	if elapsed := now.Sub(c.last); elapsed < c.frame {
		c.Sleep(c.frame - elapsed)
		now = c.Now()
	}
	delta := float64(now.Sub(c.last)) / float64(time.Millisecond)
	c.last = now

	c.frames++
	if now.Sub(c.second) >= time.Second {
		c.lps = c.frames
		c.frames = 0
		c.second = now
	}
	return delta
}

// LPS returns the number of loops in the last full second.
func (c *Clock) LPS() int {
	return c.lps
}

// Restart makes the next delta count from now, e.g. after the loop was paused.
func (c *Clock) Restart() {
	c.last = c.Now()
	c.second = c.last
	c.frames = 0
}
