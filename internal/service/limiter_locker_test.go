package service

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttemptLimiter(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	l := newAttemptLimiter(time.Minute, 2)
	l.now = func() time.Time { return now }

	assert.True(t, l.allow("a"))
	assert.True(t, l.allow("a"))
	assert.False(t, l.allow("a"))

	// other accounts have their own bucket
	assert.True(t, l.allow("b"))

	now = now.Add(time.Minute)
	assert.True(t, l.allow("a"))
	assert.False(t, l.allow("a"))

	l.reset("a")
	assert.True(t, l.allow("a"))
}

func TestAttemptLimiter_DropsStaleBuckets(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	l := newAttemptLimiter(time.Second, 1)
	l.now = func() time.Time { return now }

	l.allow("a")
	now = now.Add(2 * time.Minute)
	l.allow("b")

	assert.NotContains(t, l.buckets, "a")
	assert.Contains(t, l.buckets, "b")
}

func TestAttemptLimiter_Disabled(t *testing.T) {
	l := newAttemptLimiter(0, 0)
	for range 100 {
		require.True(t, l.allow("a"))
	}
}

func TestAccountLocker_Serializes(t *testing.T) {
	l := NewAccountLocker()
	ctx := context.Background()

	var (
		inside  atomic.Int32
		maxSeen atomic.Int32
		wg      sync.WaitGroup
	)
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock, err := l.Lock(ctx, "acc")
			if !assert.NoError(t, err) {
				return
			}
			defer unlock()

			n := inside.Add(1)
			if n > maxSeen.Load() {
				maxSeen.Store(n)
			}
			time.Sleep(time.Millisecond)
			inside.Add(-1)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), maxSeen.Load())
}

func TestAccountLocker_HonoursContext(t *testing.T) {
	l := NewAccountLocker()

	unlock, err := l.Lock(context.Background(), "acc")
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err = l.Lock(ctx, "acc")
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	// a different account is not blocked
	other, err := l.Lock(context.Background(), "other")
	require.NoError(t, err)
	other()

	unlock()
	again, err := l.Lock(context.Background(), "acc")
	require.NoError(t, err)
	again()
}
