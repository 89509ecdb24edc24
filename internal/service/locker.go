package service

import (
	"context"
	"sync"
)

// AccountLocker serializes per account id every operation that reads the
// Master Password to write or copy entries: rotate, import, export and entry
// saves and deletes. Waiting for the lock honours ctx. It is not reentrant.
type AccountLocker struct {
	mu    sync.Mutex
	locks map[string]chan struct{}
}

func NewAccountLocker() *AccountLocker {
	return &AccountLocker{locks: make(map[string]chan struct{})}
}

// Lock blocks until the account is free or ctx is done. The returned func
// releases the lock and must be called exactly once.
func (l *AccountLocker) Lock(ctx context.Context, accountID string) (func(), error) {
	ch := l.slot(accountID)

	select {
	case ch <- struct{}{}:
		return func() { <-ch }, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (l *AccountLocker) slot(accountID string) chan struct{} {
	l.mu.Lock()
	defer l.mu.Unlock()

	ch, ok := l.locks[accountID]
	if !ok {
		ch = make(chan struct{}, 1)
		l.locks[accountID] = ch
	}
	return ch
}
