package engine

import (
	"time"
)

// Timer reports the time budget of the side to move in milliseconds.
type Timer interface {
	ElapsedMs() int64
	RemainingMs() int64
}

// Clock is a game clock for one turn: the remaining time counts down from
// the moment the clock was created.
type Clock struct {
	start     time.Time
	remaining time.Duration
}

func NewClock(remaining time.Duration) *Clock {
	return &Clock{
		start:     time.Now(),
		remaining: remaining,
	}
}

func (c *Clock) ElapsedMs() int64 {
	return time.Since(c.start).Milliseconds()
}

func (c *Clock) RemainingMs() int64 {
	return (c.remaining - time.Since(c.start)).Milliseconds()
}

// NewMoveTimer returns a timer whose full budget may be spent on one move.
// The safety factor scales elapsed time, so the budget is multiplied by it up front.
func NewMoveTimer(moveTime time.Duration, safetyFactor int) *Clock {
	return NewClock(moveTime * time.Duration(safetyFactor))
}
