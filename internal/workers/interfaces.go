// Package workers runs the background workers of the server next to its
// transports.
package workers

import "context"

// Worker is a background task bound to the server lifetime. Run blocks
// until ctx is done.
type Worker interface {
	Run(ctx context.Context)
}

// WorkerFunc adapts a function to the [Worker] interface.
type WorkerFunc func(ctx context.Context)

func (f WorkerFunc) Run(ctx context.Context) {
	f(ctx)
}
