package itunes

import (
	"strconv"
	"time"

	"github.com/mmcdole/tunes/internal/domain"
)

// MapResults converts endpoint records to domain results
func MapResults(dtos []ResultDTO) []domain.Result {
	results := make([]domain.Result, 0, len(dtos))
	for _, dto := range dtos {
		results = append(results, MapResult(dto))
	}
	return results
}

// MapResult converts a single endpoint record to a domain result
func MapResult(dto ResultDTO) domain.Result {
	r := domain.Result{
		ID:         mapID(dto),
		Kind:       mapKind(dto),
		Artist:     dto.ArtistName,
		Collection: dto.CollectionName,
		Genre:      dto.PrimaryGenreName,
		Duration:   time.Duration(dto.TrackTimeMillis) * time.Millisecond,
		ArtworkURL: dto.ArtworkURL100,
	}

	switch dto.WrapperType {
	case "collection":
		r.Title = dto.CollectionName
		r.Collection = ""
		r.URL = dto.CollectionViewURL
	case "artist":
		r.Title = dto.ArtistName
		r.Artist = ""
		r.URL = dto.ArtistViewURL
	default:
		r.Title = dto.TrackName
		r.URL = firstNonEmpty(dto.TrackViewURL, dto.CollectionViewURL)
	}

	if t, err := time.Parse(time.RFC3339, dto.ReleaseDate); err == nil {
		r.ReleaseYear = t.Year()
	}

	return r
}

func mapID(dto ResultDTO) string {
	switch {
	case dto.TrackID > 0:
		return strconv.FormatInt(dto.TrackID, 10)
	case dto.CollectionID > 0:
		return strconv.FormatInt(dto.CollectionID, 10)
	case dto.ArtistID > 0:
		return strconv.FormatInt(dto.ArtistID, 10)
	default:
		return ""
	}
}

func mapKind(dto ResultDTO) domain.ResultKind {
	if dto.Kind != "" {
		return domain.ResultKind(dto.Kind)
	}
	if dto.WrapperType == "collection" {
		return domain.ResultKindAlbum
	}
	return domain.ResultKindUndefined
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
