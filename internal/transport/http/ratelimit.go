package http

import "time"

// rateLimiter is a fixed-window counter for inbound frames on a single
// connection. A zero limit allows everything. The window rolls over lazily
// inside allow, so the limiter is touched from the read loop only and
// needs no locking.
type rateLimiter struct {
	limit   int
	counter int
	window  time.Duration
	start   time.Time
}

func newRateLimiter(limit int) *rateLimiter {
	return &rateLimiter{limit: limit, window: time.Minute}
}

func (r *rateLimiter) allow() bool {
	if r == nil || r.limit <= 0 {
		return true
	}
	now := time.Now()
	if r.start.IsZero() || now.Sub(r.start) >= r.window {
		r.start = now
		r.counter = 0
	}
	r.counter++
	return r.counter <= r.limit
}
