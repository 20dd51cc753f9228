// Package workers runs batches of independent jobs on a bounded pool.
//
// A failing job never cancels its siblings: [Pool.Run] reports one error
// slot per job so that callers can build per-item outcomes.
package workers

import "context"

// Worker is a single unit of work.
//
// Example implementation:
//
//	type sendWorker struct{ recordID string }
//
//	func (w *sendWorker) Run(ctx context.Context) error {
//	    // forward one record
//	}
type Worker interface {
	Run(ctx context.Context) error
}

// WorkerFunc adapts an ordinary function to [Worker].
type WorkerFunc func(ctx context.Context) error

// Run calls f(ctx).
func (f WorkerFunc) Run(ctx context.Context) error {
	return f(ctx)
}
