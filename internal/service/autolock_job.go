package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-pass-envelope/internal/logger"
	"github.com/MKhiriev/go-pass-envelope/internal/session"
)

type autoLockJob struct {
	sessions *session.Manager
	logger   *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewAutoLockJob returns a job that locks idle sessions of sessions. It is
// idle until Start is called.
func NewAutoLockJob(sessions *session.Manager, log *logger.Logger) AutoLockJob {
	return &autoLockJob{sessions: sessions, logger: log}
}

// Start stops a previous run, then checks every interval for sessions idle
// for idleTimeout or longer. A non-positive interval defaults to 30s.
func (j *autoLockJob) Start(ctx context.Context, interval, idleTimeout time.Duration) {
	if interval <= 0 {
		interval = 30 * time.Second
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				for _, id := range j.sessions.LockIdle(idleTimeout) {
					j.logger.Info().Str("func", "autoLockJob").Str("account_id", id).Msg("idle session locked")
				}
			}
		}
	}()
}

// Stop cancels the job and waits for it to exit. Safe to call when the job
// is not running.
func (j *autoLockJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
