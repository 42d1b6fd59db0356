// Package autocomplete coalesces bursts of search requests, such as one per
// keystroke in a search box, into a single request issued once the input has
// been quiet for a fixed window.
//
// A Debouncer owns at most one armed timer. Every call to Search stops the
// previous timer, if it has not fired yet, and arms a new one. When a timer
// fires the term is handed to a Strategy, which performs the actual lookup.
// Requests that were already issued are never cancelled.
package autocomplete
