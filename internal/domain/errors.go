package domain

import "errors"

// Sentinel errors for search sources
var (
	// ErrNetwork indicates the search endpoint could not be reached
	ErrNetwork = errors.New("search endpoint is unreachable")

	// ErrUnexpectedStatus indicates the endpoint answered with a non-2xx status
	ErrUnexpectedStatus = errors.New("unexpected response status")

	// ErrDecode indicates the response envelope could not be decoded
	ErrDecode = errors.New("failed to decode search response")

	// ErrCatalogEmpty indicates an offline catalog has no entries
	ErrCatalogEmpty = errors.New("catalog has no entries")
)
