package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/mmcdole/tunes/internal/autocomplete"
	"github.com/mmcdole/tunes/internal/domain"
	"github.com/mmcdole/tunes/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// syncBuffer is a bytes.Buffer safe for the concurrent writers in runLines
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) Lines(t *testing.T) []lineResult {
	t.Helper()
	b.mu.Lock()
	defer b.mu.Unlock()

	var out []lineResult
	for _, raw := range strings.Split(strings.TrimSpace(b.buf.String()), "\n") {
		if raw == "" {
			continue
		}
		var line lineResult
		require.NoError(t, json.Unmarshal([]byte(raw), &line))
		out = append(out, line)
	}
	return out
}

func newLinesService(strategy autocomplete.StrategyFunc[domain.Result]) *service.SearchService {
	return service.NewSearchService(strategy, nil,
		autocomplete.WithQuietWindow(50*time.Millisecond),
		autocomplete.WithAbandonedRejection(),
	)
}

func echo(_ context.Context, term string) ([]domain.Result, error) {
	return []domain.Result{{Title: term}}, nil
}

func TestRunLinesCoalescesBurst(t *testing.T) {
	out := &syncBuffer{}
	in := strings.NewReader("r\nro\nrock\n")

	err := runLines(context.Background(), newLinesService(echo), in, out)
	require.NoError(t, err)

	lines := out.Lines(t)
	require.Len(t, lines, 1)
	assert.Equal(t, "rock", lines[0].Term)
	assert.Equal(t, []domain.Result{{Title: "rock"}}, lines[0].Results)
}

func TestRunLinesSpacedInput(t *testing.T) {
	out := &syncBuffer{}
	pr, pw := io.Pipe()

	go func() {
		_, _ = io.WriteString(pw, "first\n")
		time.Sleep(150 * time.Millisecond)
		_, _ = io.WriteString(pw, "second\n")
		_ = pw.Close()
	}()

	err := runLines(context.Background(), newLinesService(echo), pr, out)
	require.NoError(t, err)

	lines := out.Lines(t)
	require.Len(t, lines, 2)
	assert.Equal(t, "first", lines[0].Term)
	assert.Equal(t, "second", lines[1].Term)
}

func TestRunLinesReportsErrors(t *testing.T) {
	out := &syncBuffer{}
	failing := func(_ context.Context, term string) ([]domain.Result, error) {
		return nil, errors.New("endpoint down")
	}

	err := runLines(context.Background(), newLinesService(failing), strings.NewReader("x\n"), out)
	require.NoError(t, err)

	lines := out.Lines(t)
	require.Len(t, lines, 1)
	assert.Equal(t, "endpoint down", lines[0].Error)
	assert.Empty(t, lines[0].Results)
}
