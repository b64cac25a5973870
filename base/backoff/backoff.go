// Package backoff paces retries of startup connections
package backoff

import (
	"context"
	"math/rand"
	"time"
)

// Backoff hands out growing wait periods, each capped at limit
type Backoff struct {
	start  time.Duration
	limit  time.Duration
	jitter time.Duration
	count  int
	rand   *rand.Rand
}

// NewExponential doubles the wait after every attempt, start, 2*start, 4*start...
// Up to jitter is added to each wait so that restarted replicas spread out.
func NewExponential(start, limit, jitter time.Duration) *Backoff {
	return &Backoff{
		start:  start,
		limit:  limit,
		jitter: jitter,
		rand:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Next returns the wait before the next attempt and advances the backoff
func (b *Backoff) Next() time.Duration {
	d := b.start << uint(b.count)
	if d <= 0 || (b.limit > 0 && d > b.limit) {
		d = b.limit
	}
	b.count++
	if b.jitter > 0 {
		d += time.Duration(b.rand.Int63n(int64(b.jitter)))
	}
	return d
}

// Attempts is the number of waits handed out so far
func (b *Backoff) Attempts() int {
	return b.count
}

func (b *Backoff) Reset() {
	b.count = 0
}

// Wait sleeps for the next period, it returns early with ctx's error
func (b *Backoff) Wait(ctx context.Context) error {
	t := time.NewTimer(b.Next())
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
