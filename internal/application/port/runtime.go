package port

import "context"

// MainLoop marshals closures onto the single goroutine that owns UI state.
type MainLoop interface {
	// Post queues fn to run on the UI goroutine. It never runs fn inline.
	Post(fn func())
}

// JobScheduler runs background jobs on a bounded worker pool.
type JobScheduler interface {
	// Push queues job. The job receives ctx and must poll it between work items.
	Push(ctx context.Context, job func(ctx context.Context))
}
