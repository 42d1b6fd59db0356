package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/mmcdole/tunes/internal/autocomplete"
	"github.com/mmcdole/tunes/internal/domain"
	"github.com/mmcdole/tunes/internal/service"
)

// lineResult is one JSON line of output
type lineResult struct {
	Term    string          `json:"term"`
	Results []domain.Result `json:"results,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// runLines feeds every input line to the debouncer as if it were typed and
// writes each resolved search as a JSON line. Superseded searches produce no
// output. At EOF it waits for the searches still outstanding.
func runLines(ctx context.Context, svc *service.SearchService, in io.Reader, out io.Writer) error {
	var (
		mu  sync.Mutex
		wg  sync.WaitGroup
		enc = json.NewEncoder(out)
	)

	emit := func(f *autocomplete.Future[domain.Result]) {
		defer wg.Done()

		results, err := f.Wait(ctx)
		if errors.Is(err, autocomplete.ErrSuperseded) || ctx.Err() != nil {
			return
		}

		line := lineResult{Term: f.Term(), Results: results}
		if err != nil {
			line.Error = err.Error()
		}

		mu.Lock()
		defer mu.Unlock()
		if encErr := enc.Encode(line); encErr != nil {
			slog.Error("failed to write result", "term", f.Term(), "error", encErr)
		}
	}

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if ctx.Err() != nil {
			break
		}
		wg.Add(1)
		go emit(svc.Search(scanner.Text()))
	}

	wg.Wait()

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	return ctx.Err()
}
