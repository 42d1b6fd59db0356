package itunes

// SearchResponse is the envelope returned by the search endpoint
type SearchResponse struct {
	ResultCount int         `json:"resultCount"`
	Results     []ResultDTO `json:"results"`
}

// ResultDTO is a single record of the results array.
// The endpoint mixes tracks, collections and artists; unused fields are empty.
type ResultDTO struct {
	WrapperType string `json:"wrapperType"` // "track", "collection", "artist"
	Kind        string `json:"kind"`        // "song", "podcast", "feature-movie"...

	ArtistID     int64 `json:"artistId"`
	CollectionID int64 `json:"collectionId"`
	TrackID      int64 `json:"trackId"`

	ArtistName     string `json:"artistName"`
	CollectionName string `json:"collectionName"`
	TrackName      string `json:"trackName"`

	ArtistViewURL     string `json:"artistViewUrl"`
	CollectionViewURL string `json:"collectionViewUrl"`
	TrackViewURL      string `json:"trackViewUrl"`
	ArtworkURL100     string `json:"artworkUrl100"`

	ReleaseDate      string `json:"releaseDate"` // RFC 3339
	TrackTimeMillis  int64  `json:"trackTimeMillis"`
	PrimaryGenreName string `json:"primaryGenreName"`
}
