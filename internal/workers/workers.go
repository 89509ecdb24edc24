package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-pass-envelope/internal/config"
	"github.com/MKhiriev/go-pass-envelope/internal/service"
)

type Workers struct {
	workers []Worker
}

// NewWorkers builds the client's workers. Today that is only the auto-lock
// job, which locks sessions idle for longer than session.idle_timeout.
func NewWorkers(cfg config.ClientConfig, services *service.ClientServices) *Workers {
	return &Workers{workers: []Worker{
		&autoLockWorker{
			job:         services.AutoLockJob,
			interval:    cfg.Workers.AutoLockInterval,
			idleTimeout: cfg.Session.IdleTimeout,
		},
	}}
}

func (w *Workers) Start(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Start(ctx)
	}
}

// Stop stops the workers in reverse start order.
func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Stop()
	}
}

type autoLockWorker struct {
	job         service.AutoLockJob
	interval    time.Duration
	idleTimeout time.Duration
}

func (a *autoLockWorker) Start(ctx context.Context) {
	a.job.Start(ctx, a.interval, a.idleTimeout)
}

func (a *autoLockWorker) Stop() {
	a.job.Stop()
}
