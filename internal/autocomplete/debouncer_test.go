package autocomplete

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingStrategy records every term it receives
type recordingStrategy struct {
	mu    sync.Mutex
	terms []string
	err   error
}

func (s *recordingStrategy) Request(_ context.Context, term string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.terms = append(s.terms, term)
	if s.err != nil {
		return nil, s.err
	}
	return []string{"result for " + term}, nil
}

func (s *recordingStrategy) Terms() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]string(nil), s.terms...)
}

func waitFor[T any](t *testing.T, f *Future[T]) ([]T, error) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	results, err := f.Wait(ctx)
	require.NotErrorIs(t, err, context.DeadlineExceeded, "future for %q never resolved", f.Term())
	return results, err
}

func assertUnresolved[T any](t *testing.T, f *Future[T]) {
	t.Helper()
	select {
	case <-f.Done():
		t.Fatalf("future for %q resolved, want abandoned", f.Term())
	default:
	}
	_, err := f.Result()
	assert.ErrorIs(t, err, ErrPending)
}

func TestSearchBurstIssuesOneRequestForLastTerm(t *testing.T) {
	s := &recordingStrategy{}
	d := NewDebouncer[string](s, WithQuietWindow(100*time.Millisecond))

	var futures []*Future[string]
	for _, term := range []string{"r", "ro", "roc", "rock"} {
		futures = append(futures, d.Search(term))
		time.Sleep(10 * time.Millisecond)
	}

	results, err := waitFor(t, futures[len(futures)-1])
	require.NoError(t, err)
	assert.Equal(t, []string{"result for rock"}, results)

	// Give any stray timer a chance to fire
	time.Sleep(150 * time.Millisecond)
	assert.Equal(t, []string{"rock"}, s.Terms())

	for _, f := range futures[:len(futures)-1] {
		assertUnresolved(t, f)
	}
}

func TestSearchWithinQuietWindow(t *testing.T) {
	s := &recordingStrategy{}
	d := NewDebouncer[string](s)
	assert.Equal(t, DefaultQuietWindow, d.QuietWindow())

	first := d.Search("a")
	time.Sleep(50 * time.Millisecond)
	second := d.Search("ab")

	_, err := waitFor(t, second)
	require.NoError(t, err)

	time.Sleep(DefaultQuietWindow + 50*time.Millisecond)
	assert.Equal(t, []string{"ab"}, s.Terms())
	assertUnresolved(t, first)
}

func TestSearchSpacedApart(t *testing.T) {
	s := &recordingStrategy{}
	d := NewDebouncer[string](s)

	first := d.Search("x")
	time.Sleep(400 * time.Millisecond)
	second := d.Search("y")

	results, err := waitFor(t, first)
	require.NoError(t, err)
	assert.Equal(t, []string{"result for x"}, results)

	results, err = waitFor(t, second)
	require.NoError(t, err)
	assert.Equal(t, []string{"result for y"}, results)

	assert.Equal(t, []string{"x", "y"}, s.Terms())
}

func TestSearchPropagatesStrategyError(t *testing.T) {
	boom := errors.New("boom")
	s := &recordingStrategy{err: boom}
	d := NewDebouncer[string](s, WithQuietWindow(20*time.Millisecond))

	results, err := waitFor(t, d.Search("fail"))
	assert.Nil(t, results)
	assert.Equal(t, boom, err)
	assert.ErrorIs(t, err, boom)
}

func TestSearchEmptyTerm(t *testing.T) {
	s := &recordingStrategy{}
	d := NewDebouncer[string](s, WithQuietWindow(20*time.Millisecond))

	_, err := waitFor(t, d.Search(""))
	require.NoError(t, err)
	assert.Equal(t, []string{""}, s.Terms())
}

func TestCancelledSearchNeverReachesStrategy(t *testing.T) {
	s := &recordingStrategy{}
	d := NewDebouncer[string](s, WithQuietWindow(50*time.Millisecond))

	f := d.Search("never")
	assert.True(t, d.Pending())

	d.Cancel()
	assert.False(t, d.Pending())

	time.Sleep(100 * time.Millisecond)
	assert.Empty(t, s.Terms())
	assertUnresolved(t, f)

	// Cancel on an idle debouncer is a no-op
	d.Cancel()
	assert.False(t, d.Pending())
}

func TestPendingClearedAfterFire(t *testing.T) {
	s := &recordingStrategy{}
	d := NewDebouncer[string](s, WithQuietWindow(20*time.Millisecond))

	assert.False(t, d.Pending())
	f := d.Search("q")
	assert.True(t, d.Pending())

	_, err := waitFor(t, f)
	require.NoError(t, err)
	assert.False(t, d.Pending())

	// The instance is reusable after firing
	_, err = waitFor(t, d.Search("q2"))
	require.NoError(t, err)
	assert.Equal(t, []string{"q", "q2"}, s.Terms())
}

func TestAbandonedRejection(t *testing.T) {
	s := &recordingStrategy{}
	d := NewDebouncer[string](s,
		WithQuietWindow(50*time.Millisecond),
		WithAbandonedRejection(),
	)

	first := d.Search("first")
	second := d.Search("second")

	_, err := waitFor(t, first)
	assert.ErrorIs(t, err, ErrSuperseded)

	results, err := waitFor(t, second)
	require.NoError(t, err)
	assert.Equal(t, []string{"result for second"}, results)
	assert.Equal(t, []string{"second"}, s.Terms())

	third := d.Search("third")
	d.Cancel()
	_, err = waitFor(t, third)
	assert.ErrorIs(t, err, ErrSuperseded)
}

type ctxKey struct{}

func TestStrategyReceivesBaseContext(t *testing.T) {
	got := make(chan any, 1)
	strategy := StrategyFunc[int](func(ctx context.Context, term string) ([]int, error) {
		got <- ctx.Value(ctxKey{})
		return []int{len(term)}, nil
	})

	ctx := context.WithValue(context.Background(), ctxKey{}, "base")
	d := NewDebouncer[int](strategy, WithContext(ctx), WithQuietWindow(10*time.Millisecond))

	results, err := waitFor(t, d.Search("four"))
	require.NoError(t, err)
	assert.Equal(t, []int{4}, results)
	assert.Equal(t, "base", <-got)
}

func TestIssuedRequestIsNotCancelled(t *testing.T) {
	release := make(chan struct{})
	started := make(chan string, 2)
	strategy := StrategyFunc[string](func(_ context.Context, term string) ([]string, error) {
		started <- term
		if term == "slow" {
			<-release
		}
		return []string{term}, nil
	})
	d := NewDebouncer[string](strategy, WithQuietWindow(20*time.Millisecond), WithAbandonedRejection())

	slow := d.Search("slow")
	assert.Equal(t, "slow", <-started)

	// A new search after the timer fired does not touch the in-flight request
	fast := d.Search("fast")
	results, err := waitFor(t, fast)
	require.NoError(t, err)
	assert.Equal(t, []string{"fast"}, results)

	close(release)
	results, err = waitFor(t, slow)
	require.NoError(t, err)
	assert.Equal(t, []string{"slow"}, results)
}

func TestFutureWaitHonoursContext(t *testing.T) {
	f := newFuture[string]("t")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := f.Wait(ctx)
	assert.ErrorIs(t, err, context.Canceled)

	f.resolve([]string{"a"}, nil)
	f.resolve(nil, errors.New("ignored"))
	results, err := f.Result()
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, results)
}
