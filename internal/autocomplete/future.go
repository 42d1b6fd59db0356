package autocomplete

import (
	"context"
	"errors"
	"sync"
)

var (
	// ErrPending is returned by Future.Result before the future is resolved
	ErrPending = errors.New("search has not completed")

	// ErrSuperseded resolves abandoned futures when WithAbandonedRejection is set
	ErrSuperseded = errors.New("search superseded by a newer term")
)

// Future is the eventual outcome of a single Search call
type Future[T any] struct {
	term string
	done chan struct{}
	once sync.Once

	results []T
	err     error
}

func newFuture[T any](term string) *Future[T] {
	return &Future[T]{
		term: term,
		done: make(chan struct{}),
	}
}

// Term returns the search term this future was created for
func (f *Future[T]) Term() string {
	return f.term
}

// Done returns a channel that is closed once the future is resolved.
// The channel of an abandoned future is never closed unless the debouncer
// rejects abandoned futures.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Result returns the resolved results, or ErrPending if not resolved yet
func (f *Future[T]) Result() ([]T, error) {
	select {
	case <-f.done:
		return f.results, f.err
	default:
		return nil, ErrPending
	}
}

// Wait blocks until the future is resolved or ctx is done
func (f *Future[T]) Wait(ctx context.Context) ([]T, error) {
	select {
	case <-f.done:
		return f.results, f.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// resolve settles the future; only the first call has an effect
func (f *Future[T]) resolve(results []T, err error) {
	f.once.Do(func() {
		f.results = results
		f.err = err
		close(f.done)
	})
}
