package autocomplete

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// DefaultQuietWindow is how long the input must stay quiet before a request is issued
const DefaultQuietWindow = 300 * time.Millisecond

// Option configures a Debouncer
type Option func(*options)

type options struct {
	wait            time.Duration
	ctx             context.Context
	logger          *slog.Logger
	rejectAbandoned bool
}

// WithQuietWindow overrides DefaultQuietWindow. Non-positive values are ignored.
func WithQuietWindow(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.wait = d
		}
	}
}

// WithContext sets the context handed to the strategy. No deadline is added.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithLogger sets the logger used for debug output
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithAbandonedRejection resolves futures whose timer was cancelled with
// ErrSuperseded. Without it they are left unresolved.
func WithAbandonedRejection() Option {
	return func(o *options) {
		o.rejectAbandoned = true
	}
}

// pendingCall is a scheduled call whose timer has not fired yet
type pendingCall[T any] struct {
	timer  *time.Timer
	future *Future[T]
}

// Debouncer delays requests until the caller stops searching for a quiet window
type Debouncer[T any] struct {
	strategy Strategy[T]
	opts     options

	mu      sync.Mutex
	pending *pendingCall[T]
}

// NewDebouncer creates a debouncer that delegates lookups to strategy
func NewDebouncer[T any](strategy Strategy[T], opts ...Option) *Debouncer[T] {
	o := options{
		wait:   DefaultQuietWindow,
		ctx:    context.Background(),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return &Debouncer[T]{
		strategy: strategy,
		opts:     o,
	}
}

// QuietWindow returns the configured delay
func (d *Debouncer[T]) QuietWindow() time.Duration {
	return d.opts.wait
}

// Search cancels any call that has not fired yet and schedules a request for
// term after the quiet window. The returned future resolves with the
// strategy's results or error, unchanged.
func (d *Debouncer[T]) Search(term string) *Future[T] {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.cancelLocked()

	call := &pendingCall[T]{future: newFuture[T](term)}
	call.timer = time.AfterFunc(d.opts.wait, func() { d.fire(call) })
	d.pending = call

	d.opts.logger.Debug("search scheduled", "term", term, "wait", d.opts.wait)
	return call.future
}

// Cancel stops the pending call, if any, without scheduling a new one
func (d *Debouncer[T]) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.cancelLocked()
}

// Pending reports whether a call is scheduled but has not fired yet
func (d *Debouncer[T]) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.pending != nil
}

func (d *Debouncer[T]) cancelLocked() {
	call := d.pending
	if call == nil {
		return
	}
	d.pending = nil

	// Stop can lose the race with a callback that is already waiting for
	// the lock; fire checks the slot so that callback is a no-op.
	call.timer.Stop()

	d.opts.logger.Debug("search cancelled", "term", call.future.term)
	if d.opts.rejectAbandoned {
		call.future.resolve(nil, ErrSuperseded)
	}
}

func (d *Debouncer[T]) fire(call *pendingCall[T]) {
	d.mu.Lock()
	if d.pending != call {
		d.mu.Unlock()
		return
	}
	d.pending = nil
	d.mu.Unlock()

	term := call.future.term
	d.opts.logger.Debug("search issued", "term", term)

	results, err := d.strategy.Request(d.opts.ctx, term)
	if err != nil {
		d.opts.logger.Debug("search failed", "term", term, "error", err)
	}
	call.future.resolve(results, err)
}
