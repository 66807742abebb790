// Package mainloop provides the single-consumer UI event loop and helpers to
// marshal work onto it.
package mainloop

import (
	"context"
	"sync"

	"github.com/bnema/fontview/internal/application/port"
)

// DefaultCapacity is the default number of queued tasks before Post blocks.
const DefaultCapacity = 256

// Loop runs posted closures one at a time on the goroutine that calls Run.
type Loop struct {
	tasks    chan func()
	quit     chan struct{}
	quitOnce sync.Once
}

// NewLoop creates a loop whose queue holds capacity tasks.
func NewLoop(capacity int) *Loop {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Loop{
		tasks: make(chan func(), capacity),
		quit:  make(chan struct{}),
	}
}

// Post implements port.MainLoop. It blocks while the queue is full and drops fn
// once the loop has quit. Must not be called from the loop goroutine while the
// queue is full.
func (l *Loop) Post(fn func()) {
	if fn == nil {
		return
	}
	select {
	case <-l.quit:
		return
	default:
	}
	select {
	case l.tasks <- fn:
	case <-l.quit:
	}
}

// Run executes tasks until ctx is done or Quit is called.
func (l *Loop) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-l.quit:
			return nil
		case fn := <-l.tasks:
			fn()
		}
	}
}

// RunPending executes queued tasks without blocking and returns how many ran.
func (l *Loop) RunPending() int {
	n := 0
	for {
		select {
		case fn := <-l.tasks:
			fn()
			n++
		default:
			return n
		}
	}
}

// Next blocks until a task is queued and returns it. ok is false once the loop
// has quit. It lets another event loop drain tasks on its own goroutine.
func (l *Loop) Next() (fn func(), ok bool) {
	select {
	case fn = <-l.tasks:
		return fn, true
	case <-l.quit:
		return nil, false
	}
}

// Quit stops Run. Safe to call more than once and from any goroutine.
func (l *Loop) Quit() {
	l.quitOnce.Do(func() { close(l.quit) })
}

var _ port.MainLoop = (*Loop)(nil)
