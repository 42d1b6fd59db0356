package autocomplete

import "context"

// Strategy performs the actual lookup for a search term.
// Implementations must be safe for concurrent use: a request issued for an
// earlier term may still be running when the next one starts.
type Strategy[T any] interface {
	Request(ctx context.Context, term string) ([]T, error)
}

// StrategyFunc adapts an ordinary function to the Strategy interface
type StrategyFunc[T any] func(ctx context.Context, term string) ([]T, error)

// Request calls f(ctx, term)
func (f StrategyFunc[T]) Request(ctx context.Context, term string) ([]T, error) {
	return f(ctx, term)
}
