package dom

import (
	"context"
	"errors"
	"log/slog"
	"time"
)

var ErrLoopStopped = errors.New("event loop stopped")

// Loop runs tasks one at a time on a single goroutine, the way a browser
// runs event handlers and timer callbacks. A task always runs to completion
// before the next one starts.
type Loop struct {
	log     *slog.Logger
	tasks   chan func()
	stopped chan struct{}
}

func NewLoop(log *slog.Logger, buffer int) *Loop {
	if log == nil {
		log = slog.Default()
	}
	if buffer <= 0 {
		buffer = 64
	}
	return &Loop{
		log:     log,
		tasks:   make(chan func(), buffer),
		stopped: make(chan struct{}),
	}
}

// Run executes queued tasks until ctx is cancelled.
func (l *Loop) Run(ctx context.Context) error {
	defer close(l.stopped)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case fn := <-l.tasks:
			l.runTask(fn)
		}
	}
}

func (l *Loop) runTask(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			l.log.Error("event loop task panicked", slog.Any("panic", r))
		}
	}()
	fn()
}

// Post queues fn. It reports false once the loop has stopped.
func (l *Loop) Post(fn func()) bool {
	select {
	case <-l.stopped:
		return false
	default:
	}
	select {
	case l.tasks <- fn:
		return true
	case <-l.stopped:
		return false
	}
}

// Do queues fn and waits until it has run.
func (l *Loop) Do(ctx context.Context, fn func()) error {
	done := make(chan struct{})
	if !l.Post(func() {
		defer close(done)
		fn()
	}) {
		return ErrLoopStopped
	}
	select {
	case <-done:
		return nil
	case <-l.stopped:
		return ErrLoopStopped
	case <-ctx.Done():
		return ctx.Err()
	}
}

// AfterFunc posts fn to the loop once d has elapsed. There is no
// cancellation; a callback firing after the loop stopped is dropped.
func (l *Loop) AfterFunc(d time.Duration, fn func()) {
	time.AfterFunc(d, func() {
		if !l.Post(fn) {
			l.log.Debug("timer fired after loop stopped")
		}
	})
}
