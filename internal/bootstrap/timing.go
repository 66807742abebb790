package bootstrap

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/bnema/fontview/internal/logging"
)

// PhaseTimer records how long each stage of a list load took, from setup to
// the last thumbnail. Marks may come from any goroutine.
type PhaseTimer struct {
	mu     sync.Mutex
	start  time.Time
	last   time.Time
	phases []phase
}

type phase struct {
	name string
	dur  time.Duration
}

// NewPhaseTimer starts a timer.
func NewPhaseTimer() *PhaseTimer {
	now := time.Now()
	return &PhaseTimer{start: now, last: now}
}

// Mark closes the current phase under name and reports whether it was new.
// Marking a name twice keeps the first.
func (t *PhaseTimer) Mark(name string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := time.Now()
	for _, p := range t.phases {
		if p.name == name {
			return false
		}
	}
	t.phases = append(t.phases, phase{name: name, dur: now.Sub(t.last)})
	t.last = now
	return true
}

// Phases returns the recorded phase names in order.
func (t *PhaseTimer) Phases() []string {
	t.mu.Lock()
	defer t.mu.Unlock()

	names := make([]string, len(t.phases))
	for i, p := range t.phases {
		names[i] = p.name
	}
	return names
}

// Elapsed returns the time since the timer started.
func (t *PhaseTimer) Elapsed() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	return time.Since(t.start)
}

// Log writes every phase as a duration field at level.
func (t *PhaseTimer) Log(ctx context.Context, level zerolog.Level, msg string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	event := logging.FromContext(ctx).WithLevel(level).Dur("total", time.Since(t.start))
	for _, p := range t.phases {
		event = event.Dur(p.name, p.dur)
	}
	event.Msg(msg)
}
