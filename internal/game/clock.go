package game

import (
	"fmt"
	"time"

	"github.com/smithy-chess/smithy/internal/board"
)

// Clock is a two-sided chess clock with per-side increments. The first
// Click starts white's timer; every later Click settles the mover's
// elapsed time, grants the increment, and starts the other side.
//
// The clock is passive: it never fires callbacks. Callers poll Remaining
// or Expired between moves.
type Clock struct {
	remaining  [2]time.Duration
	increment  [2]time.Duration
	turn       board.Color
	running    bool
	lastResume time.Time

	now func() time.Time
}

// NewClock creates a stopped clock with the same time and increment for
// both sides.
func NewClock(initial, increment time.Duration) *Clock {
	c := &Clock{now: time.Now}
	c.Synchronize(initial, initial, increment, increment)
	return c
}

// Synchronize sets both time controls, e.g. to match a GUI. It does not
// start or stop the clock.
func (c *Clock) Synchronize(whiteTime, blackTime, whiteInc, blackInc time.Duration) {
	c.settle()
	c.remaining[board.White] = whiteTime
	c.remaining[board.Black] = blackTime
	c.increment[board.White] = whiteInc
	c.increment[board.Black] = blackInc
}

// Click hands the move over: the mover's timer pauses and gains its
// increment, the other side's timer starts. The first click after
// construction starts white without charging anyone.
func (c *Clock) Click() {
	if !c.running {
		c.running = true
		c.lastResume = c.now()
		return
	}
	c.settle()
	c.remaining[c.turn] += c.increment[c.turn]
	c.turn = c.turn.Other()
	c.lastResume = c.now()
}

// Stop pauses the clock, keeping the charged time.
func (c *Clock) Stop() {
	c.settle()
	c.running = false
}

// Resume restarts the current side's timer after a Stop.
func (c *Clock) Resume() {
	if !c.running {
		c.running = true
		c.lastResume = c.now()
	}
}

// settle charges the elapsed time to the side on the move.
func (c *Clock) settle() {
	if c.running {
		c.remaining[c.turn] -= c.now().Sub(c.lastResume)
		c.lastResume = c.now()
	}
}

// Remaining returns the time left on a side's timer.
func (c *Clock) Remaining(col board.Color) time.Duration {
	r := c.remaining[col]
	if c.running && c.turn == col {
		r -= c.now().Sub(c.lastResume)
	}
	return r
}

// Expired reports whether a side has run out of time.
func (c *Clock) Expired(col board.Color) bool {
	return c.Remaining(col) <= 0
}

// IsWhitesTurn reports whether white's timer is the one ticking.
func (c *Clock) IsWhitesTurn() bool { return c.turn == board.White }

// String renders both timers as m:ss pairs.
func (c *Clock) String() string {
	return fmt.Sprintf("%s - %s",
		formatClock(c.Remaining(board.White)),
		formatClock(c.Remaining(board.Black)))
}

func formatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	return fmt.Sprintf("%d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}
