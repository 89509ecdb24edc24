package service

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// attemptLimiter keeps one token bucket per account. Buckets not used for
// ttl are dropped.
type attemptLimiter struct {
	mu      sync.Mutex
	limit   rate.Limit
	burst   int
	ttl     time.Duration
	buckets map[string]*attemptBucket
	now     func() time.Time
}

type attemptBucket struct {
	lim      *rate.Limiter
	lastSeen time.Time
}

// newAttemptLimiter allows burst attempts, then one per interval. A
// non-positive interval disables limiting.
func newAttemptLimiter(interval time.Duration, burst int) *attemptLimiter {
	limit := rate.Inf
	if interval > 0 {
		limit = rate.Every(interval)
	}
	if burst <= 0 {
		burst = 1
	}
	ttl := interval * time.Duration(burst)
	if ttl < time.Minute {
		ttl = time.Minute
	}

	return &attemptLimiter{
		limit:   limit,
		burst:   burst,
		ttl:     ttl,
		buckets: make(map[string]*attemptBucket),
		now:     time.Now,
	}
}

func (l *attemptLimiter) allow(accountID string) bool {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	b := l.buckets[accountID]
	if b == nil {
		b = &attemptBucket{lim: rate.NewLimiter(l.limit, l.burst)}
		l.buckets[accountID] = b
	}
	b.lastSeen = now

	for k, v := range l.buckets {
		if now.Sub(v.lastSeen) > l.ttl {
			delete(l.buckets, k)
		}
	}

	return b.lim.AllowN(now, 1)
}

// reset forgets the bucket, called after a successful unlock.
func (l *attemptLimiter) reset(accountID string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.buckets, accountID)
}
