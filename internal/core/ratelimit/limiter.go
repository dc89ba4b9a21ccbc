package ratelimit

import (
	"context"
	"sync"
	"time"
)

// Limiter paces outbound provider requests as a token bucket with an
// explicit post-burst cooldown. The bucket starts full with `burst` tokens;
// an idle period of `pause` since the last grant refills one token. Once the
// bucket drains, the next grant is delayed by the full `cooldown`, after
// which the bucket is full again.
//
// One Limiter is shared by every retrieval running against the same region
// credentials, so the provider-side quota for that region is never exceeded
// no matter how many retrievals run concurrently. All state is guarded by a
// mutex; the lock is never held while waiting.
type Limiter struct {
	mu sync.Mutex

	pause    time.Duration
	burst    int
	cooldown time.Duration

	// tokens is the bucket level as of lastGrant.
	tokens int
	// lastGrant is the scheduled time of the most recent grant. It can be
	// in the future while a cooldown grant is pending.
	lastGrant time.Time
}

// New creates a Limiter with the given steady interval, burst capacity and
// post-burst cooldown. A burst below 1 is treated as 1.
func New(pause time.Duration, burst int, cooldown time.Duration) *Limiter {
	if burst < 1 {
		burst = 1
	}
	return &Limiter{
		pause:    pause,
		burst:    burst,
		cooldown: cooldown,
		tokens:   burst,
	}
}

// Acquire blocks until the caller may issue the next request, or until ctx
// is done. A token is consumed immediately when one is available; a drained
// bucket imposes the full cooldown before the bucket refills.
func (l *Limiter) Acquire(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	l.mu.Lock()
	now := time.Now()

	at := now
	if at.Before(l.lastGrant) {
		// A cooldown grant is pending; line up behind it.
		at = l.lastGrant
	}

	if l.pause > 0 && !l.lastGrant.IsZero() {
		if idle := at.Sub(l.lastGrant); idle > 0 {
			if refill := int(idle / l.pause); refill > 0 {
				l.tokens += refill
				if l.tokens > l.burst {
					l.tokens = l.burst
				}
			}
		}
	}

	if l.tokens == 0 {
		// The bucket was drained by a burst of consecutive grants; the
		// cooldown replenishes it in full.
		at = l.lastGrant.Add(l.cooldown)
		l.tokens = l.burst
	}

	l.tokens--
	l.lastGrant = at
	wait := at.Sub(now)
	l.mu.Unlock()

	if wait <= 0 {
		return nil
	}

	timer := time.NewTimer(wait)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
