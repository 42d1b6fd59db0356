package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/mmcdole/tunes/internal/domain"
	"github.com/spf13/cobra"
)

var queryJSON bool

func init() {
	queryCmd.Flags().BoolVar(&queryJSON, "json", false, "print results as JSON")
	rootCmd.AddCommand(queryCmd)
}

var queryCmd = &cobra.Command{
	Use:   "query <term...>",
	Short: "Runs a single search, without debouncing, and prints the results.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newSearchService(cmd.Context())
		if err != nil {
			return err
		}

		term := strings.Join(args, " ")
		results, err := svc.Lookup(cmd.Context(), term)
		if err != nil {
			return fmt.Errorf("search for %q failed: %w", term, err)
		}

		if queryJSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(results)
		}

		renderResults(cmd.OutOrStdout(), results)
		return nil
	},
}

// renderResults prints results as a table
func renderResults(w io.Writer, results []domain.Result) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"#", "Kind", "Title", "Artist", "Collection", "Year", "Length"})

	for i, r := range results {
		year := ""
		if r.ReleaseYear > 0 {
			year = fmt.Sprint(r.ReleaseYear)
		}
		length := ""
		if r.Duration > 0 {
			length = r.Duration.Round(time.Second).String()
		}
		t.AppendRow(table.Row{i + 1, r.Kind, r.Title, r.Artist, r.Collection, year, length})
	}

	t.AppendFooter(table.Row{"", "", fmt.Sprintf("%d results", len(results))})
	t.SetStyle(table.StyleRounded)
	t.Render()
}
