// Package domain contains the core business entities for the ReelHub streaming catalog.
package domain

import "fmt"

// MediaKind classifies a catalog title as a movie or a series.
type MediaKind string

const (
	// KindMovie is a feature film.
	KindMovie MediaKind = "movie"
	// KindSeries is an episodic TV show.
	KindSeries MediaKind = "series"
)

// ParseMediaKind validates a raw kind string.
func ParseMediaKind(s string) (MediaKind, error) {
	switch MediaKind(s) {
	case KindMovie, KindSeries:
		return MediaKind(s), nil
	default:
		return "", fmt.Errorf("unknown media kind: %q", s)
	}
}

// ContentRecord is the durable local counterpart of a provider catalog item.
// It is created exactly once, lazily, the first time any subsystem references
// the item locally (watchlist add, review write). The denormalized fields are
// a snapshot taken at creation time; they are never refreshed, so they may go
// stale relative to the provider. That staleness is a documented limitation,
// not a bug.
type ContentRecord struct {
	Syncable
	// ProviderID is the external provider's numeric identifier for this title.
	// At most one ContentRecord exists per (ProviderID, Kind) pair.
	ProviderID   int64     `json:"provider_id"`
	Kind         MediaKind `json:"kind"`
	Title        string    `json:"title"`
	Overview     string    `json:"overview,omitempty"`
	PosterPath   string    `json:"poster_path,omitempty"`
	BackdropPath string    `json:"backdrop_path,omitempty"`
	Popularity   float64   `json:"popularity"`
	VoteAverage  float64   `json:"vote_average"`
	GenreIDs     []int     `json:"genre_ids,omitempty"`
	ReleaseDate  string    `json:"release_date,omitempty"`
	// CreatedBy references the profile whose action materialized this record.
	// Empty when the record was created by a system flow (e.g. seeding).
	CreatedBy string `json:"created_by,omitempty"`
}
