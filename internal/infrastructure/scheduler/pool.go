// Package scheduler runs background jobs on a bounded pool of goroutines.
package scheduler

import (
	"context"
	"sync"

	"golang.org/x/sync/semaphore"

	"github.com/bnema/fontview/internal/application/port"
	"github.com/bnema/fontview/internal/logging"
)

// DefaultWorkers is the pool size used when none is configured.
const DefaultWorkers = 2

// Pool implements port.JobScheduler. At most Workers jobs run at once; the rest
// wait for a slot or for their context to be canceled.
type Pool struct {
	sem     *semaphore.Weighted
	workers int
	wg      sync.WaitGroup

	mu     sync.Mutex
	closed bool
}

// NewPool creates a pool running at most workers jobs concurrently.
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = DefaultWorkers
	}
	return &Pool{
		sem:     semaphore.NewWeighted(int64(workers)),
		workers: workers,
	}
}

// Workers returns the concurrency limit.
func (p *Pool) Workers() int {
	return p.workers
}

// Push implements port.JobScheduler. Jobs pushed after Close are dropped.
// A job whose context is canceled before it gets a slot never runs.
func (p *Pool) Push(ctx context.Context, job func(ctx context.Context)) {
	if job == nil {
		return
	}

	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.wg.Add(1)
	p.mu.Unlock()

	go func() {
		defer p.wg.Done()

		if err := p.sem.Acquire(ctx, 1); err != nil {
			logging.FromContext(ctx).Debug().Err(err).Msg("job canceled before start")
			return
		}
		defer p.sem.Release(1)

		job(ctx)
	}()
}

// Close stops accepting jobs and waits for running and queued jobs to return.
// Callers should cancel job contexts first so queued jobs exit promptly.
func (p *Pool) Close() {
	p.mu.Lock()
	p.closed = true
	p.mu.Unlock()

	p.wg.Wait()
}

var _ port.JobScheduler = (*Pool)(nil)
