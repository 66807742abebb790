// Package watcher monitors font directories for added, removed and
// rewritten files.
package watcher

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/bnema/fontview/internal/logging"
)

// ErrAlreadyStarted is returned when Start is called twice.
var ErrAlreadyStarted = errors.New("watcher already started")

// Event classifies a directory change.
type Event int

const (
	EventIgnored Event = iota
	EventCreated
	EventDeleted
	EventChangesDone
)

func (e Event) String() string {
	switch e {
	case EventCreated:
		return "created"
	case EventDeleted:
		return "deleted"
	case EventChangesDone:
		return "changes-done"
	default:
		return "ignored"
	}
}

// Classify maps an fsnotify operation to the change it represents.
// A rename is reported on the old name, so it counts as a deletion; the new
// name arrives as a separate create.
func Classify(op fsnotify.Op) Event {
	switch {
	case op.Has(fsnotify.Create):
		return EventCreated
	case op.Has(fsnotify.Remove), op.Has(fsnotify.Rename):
		return EventDeleted
	case op.Has(fsnotify.Write):
		return EventChangesDone
	default:
		return EventIgnored
	}
}

// Option configures a Directory watcher.
type Option func(*Directory)

// WithOnChange sets the callback run for every relevant change. It runs on
// the watcher goroutine.
func WithOnChange(fn func(Event, string)) Option {
	return func(d *Directory) { d.onChange = fn }
}

// WithOnError sets the callback run for watcher errors.
func WithOnError(fn func(error)) Option {
	return func(d *Directory) { d.onError = fn }
}

// Directory watches a fixed set of directories, non-recursively.
type Directory struct {
	onChange func(Event, string)
	onError  func(error)

	mu      sync.Mutex
	fsw     *fsnotify.Watcher
	started bool
	dirs    []string
	done    chan struct{}
}

// New creates a watcher. Nothing is watched until Start.
func New(opts ...Option) *Directory {
	d := &Directory{
		onChange: func(Event, string) {},
		onError:  func(error) {},
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Start begins watching dirs. Directories that cannot be watched are logged
// and skipped. The set is fixed for the watcher's lifetime.
func (d *Directory) Start(ctx context.Context, dirs []string) error {
	log := logging.FromContext(ctx)

	d.mu.Lock()
	defer d.mu.Unlock()

	if d.started {
		return ErrAlreadyStarted
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}

	watched := make([]string, 0, len(dirs))
	for _, dir := range dirs {
		if addErr := fsw.Add(dir); addErr != nil {
			log.Debug().Err(addErr).Str("dir", dir).Msg("cannot watch font directory")
			continue
		}
		watched = append(watched, dir)
	}

	d.fsw = fsw
	d.dirs = watched
	d.started = true
	d.done = make(chan struct{})

	go d.loop(ctx, fsw.Events, fsw.Errors, d.done)

	log.Debug().Int("dirs", len(watched)).Msg("watching font directories")
	return nil
}

// Dirs returns the directories being watched.
func (d *Directory) Dirs() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]string(nil), d.dirs...)
}

// Stop ends watching and waits for the event goroutine to exit.
func (d *Directory) Stop() error {
	d.mu.Lock()
	if !d.started {
		d.mu.Unlock()
		return nil
	}
	fsw, done := d.fsw, d.done
	d.fsw = nil
	d.started = false
	d.mu.Unlock()

	err := fsw.Close()
	<-done
	return err
}

func (d *Directory) loop(ctx context.Context, events <-chan fsnotify.Event, errs <-chan error, done chan struct{}) {
	defer close(done)
	log := logging.FromContext(ctx)

	for {
		select {
		case <-ctx.Done():
			return

		case ev, ok := <-events:
			if !ok {
				return
			}
			kind := Classify(ev.Op)
			if kind == EventIgnored {
				continue
			}
			log.Trace().Str("path", ev.Name).Stringer("event", kind).Msg("font directory changed")
			d.onChange(kind, ev.Name)

		case err, ok := <-errs:
			if !ok {
				return
			}
			d.onError(err)
		}
	}
}
