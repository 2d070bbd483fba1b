package searchers

import (
	"context"
	"math"
	"time"
)

// Expired is reported by a clock whose context is done: it is below any threshold a searcher
// may be configured with.
const Expired = time.Duration(math.MinInt64)

// Clock returns the time remaining to choose a move. It may be negative once the deadline passed.
//
// Clocks must not have side effects, searchers call them at every node.
type Clock func() time.Duration

// NewDeadlineClock returns a Clock counting down to deadline.
func NewDeadlineClock(deadline time.Time) Clock {
	return func() time.Duration {
		return time.Until(deadline)
	}
}

// NewTimeLimitClock returns a Clock with limit time from now.
func NewTimeLimitClock(limit time.Duration) Clock {
	return NewDeadlineClock(time.Now().Add(limit))
}

// ContextClock returns a Clock counting down to the ctx deadline, or to limit from now if ctx
// has no deadline. Once ctx is done the clock reports Expired.
func ContextClock(ctx context.Context, limit time.Duration) Clock {
	deadline, ok := ctx.Deadline()
	if !ok {
		deadline = time.Now().Add(limit)
	}
	return func() time.Duration {
		if ctx.Err() != nil {
			return Expired
		}
		return time.Until(deadline)
	}
}

// FixedClock always reports the same remaining time: a Clock that never runs out (or is always out).
func FixedClock(remaining time.Duration) Clock {
	return func() time.Duration {
		return remaining
	}
}
