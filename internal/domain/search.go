package domain

import (
	"fmt"
	"time"
)

// ResultKind identifies what a search result refers to
type ResultKind string

const (
	ResultKindSong      ResultKind = "song"
	ResultKindAlbum     ResultKind = "album"
	ResultKindVideo     ResultKind = "music-video"
	ResultKindPodcast   ResultKind = "podcast"
	ResultKindMovie     ResultKind = "feature-movie"
	ResultKindSoftware  ResultKind = "software"
	ResultKindCatalog   ResultKind = "catalog"
	ResultKindUndefined ResultKind = ""
)

// Result is a single search hit, independent of the source that produced it
type Result struct {
	ID          string        `json:"id,omitempty"`          // Source-specific identifier
	Kind        ResultKind    `json:"kind,omitempty"`        // Song, album, catalog entry...
	Title       string        `json:"title"`                 // Track or collection name
	Artist      string        `json:"artist,omitempty"`      // Performing artist (empty when unknown)
	Collection  string        `json:"collection,omitempty"`  // Album / collection name
	Genre       string        `json:"genre,omitempty"`       // Primary genre
	ReleaseYear int           `json:"releaseYear,omitempty"` // 0 when unknown
	Duration    time.Duration `json:"duration,omitempty"`    // 0 when unknown
	URL         string        `json:"url,omitempty"`         // Link to the item in the store
	ArtworkURL  string        `json:"artworkUrl,omitempty"`  // Cover art
}

// DisplayTitle returns "Artist - Title" when the artist is known
func (r Result) DisplayTitle() string {
	if r.Artist == "" {
		return r.Title
	}
	return fmt.Sprintf("%s - %s", r.Artist, r.Title)
}

// Description returns secondary info for display (collection and year)
func (r Result) Description() string {
	switch {
	case r.Collection != "" && r.ReleaseYear > 0:
		return fmt.Sprintf("%s (%d)", r.Collection, r.ReleaseYear)
	case r.Collection != "":
		return r.Collection
	case r.ReleaseYear > 0:
		return fmt.Sprintf("%d", r.ReleaseYear)
	default:
		return ""
	}
}
