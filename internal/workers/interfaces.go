// Package workers runs the client's background jobs for the lifetime of a
// command.
package workers

import "context"

// Worker is a background job. Start must not block; Stop waits until the
// job has finished.
type Worker interface {
	Start(ctx context.Context)
	Stop()
}
