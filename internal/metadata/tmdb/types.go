// Package tmdb provides a client for The Movie Database catalog API.
package tmdb

import "github.com/reelhubapp/reelhub-server/internal/domain"

// Item is a catalog entry returned by the provider, either a Movie or a
// Series. Items are ephemeral: re-fetched on demand and never mutated.
type Item interface {
	// ProviderID returns the provider's numeric identifier.
	ProviderID() int64
	// Kind reports whether this item is a movie or a series.
	Kind() domain.MediaKind
	// Summary returns the kind-independent projection of this item.
	Summary() Summary
}

// Summary is the shared projection of movies and series: the fields list
// rendering, sorting, and reconciliation need regardless of kind.
type Summary struct {
	ProviderID   int64            `json:"provider_id"`
	Kind         domain.MediaKind `json:"kind"`
	Title        string           `json:"title"`
	Overview     string           `json:"overview,omitempty"`
	PosterPath   string           `json:"poster_path,omitempty"`
	BackdropPath string           `json:"backdrop_path,omitempty"`
	Popularity   float64          `json:"popularity"`
	VoteAverage  float64          `json:"vote_average"`
	GenreIDs     []int            `json:"genre_ids,omitempty"`
	// ReleaseDate is the movie release date or series first air date in
	// YYYY-MM-DD form. Empty when the provider omits it.
	ReleaseDate string `json:"release_date,omitempty"`
}

// Movie is a feature film list entry.
type Movie struct {
	ID           int64   `json:"id"`
	Title        string  `json:"title"`
	Overview     string  `json:"overview,omitempty"`
	PosterPath   string  `json:"poster_path,omitempty"`
	BackdropPath string  `json:"backdrop_path,omitempty"`
	Popularity   float64 `json:"popularity"`
	VoteAverage  float64 `json:"vote_average"`
	GenreIDs     []int   `json:"genre_ids,omitempty"`
	ReleaseDate  string  `json:"release_date,omitempty"`
}

// ProviderID implements Item.
func (m Movie) ProviderID() int64 { return m.ID }

// Kind implements Item.
func (m Movie) Kind() domain.MediaKind { return domain.KindMovie }

// Summary implements Item.
func (m Movie) Summary() Summary {
	return Summary{
		ProviderID:   m.ID,
		Kind:         domain.KindMovie,
		Title:        m.Title,
		Overview:     m.Overview,
		PosterPath:   m.PosterPath,
		BackdropPath: m.BackdropPath,
		Popularity:   m.Popularity,
		VoteAverage:  m.VoteAverage,
		GenreIDs:     m.GenreIDs,
		ReleaseDate:  m.ReleaseDate,
	}
}

// Series is an episodic TV show list entry.
type Series struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Overview     string  `json:"overview,omitempty"`
	PosterPath   string  `json:"poster_path,omitempty"`
	BackdropPath string  `json:"backdrop_path,omitempty"`
	Popularity   float64 `json:"popularity"`
	VoteAverage  float64 `json:"vote_average"`
	GenreIDs     []int   `json:"genre_ids,omitempty"`
	FirstAirDate string  `json:"first_air_date,omitempty"`
}

// ProviderID implements Item.
func (s Series) ProviderID() int64 { return s.ID }

// Kind implements Item.
func (s Series) Kind() domain.MediaKind { return domain.KindSeries }

// Summary implements Item.
func (s Series) Summary() Summary {
	return Summary{
		ProviderID:   s.ID,
		Kind:         domain.KindSeries,
		Title:        s.Name,
		Overview:     s.Overview,
		PosterPath:   s.PosterPath,
		BackdropPath: s.BackdropPath,
		Popularity:   s.Popularity,
		VoteAverage:  s.VoteAverage,
		GenreIDs:     s.GenreIDs,
		ReleaseDate:  s.FirstAirDate,
	}
}

// Genre is a provider genre as it appears in detail responses.
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// MovieDetails is the full detail record for a movie.
type MovieDetails struct {
	ID           int64   `json:"id"`
	Title        string  `json:"title"`
	Overview     string  `json:"overview,omitempty"`
	PosterPath   string  `json:"poster_path,omitempty"`
	BackdropPath string  `json:"backdrop_path,omitempty"`
	Popularity   float64 `json:"popularity"`
	VoteAverage  float64 `json:"vote_average"`
	Genres       []Genre `json:"genres,omitempty"`
	ReleaseDate  string  `json:"release_date,omitempty"`
	Runtime      int     `json:"runtime,omitempty"`
	Tagline      string  `json:"tagline,omitempty"`
	Status       string  `json:"status,omitempty"`
}

// ProviderID implements Detail.
func (d *MovieDetails) ProviderID() int64 { return d.ID }

// Kind implements Detail.
func (d *MovieDetails) Kind() domain.MediaKind { return domain.KindMovie }

// GenreIDs implements Detail.
func (d *MovieDetails) GenreIDs() []int { return genreIDs(d.Genres) }

// Summary implements Detail.
func (d *MovieDetails) Summary() Summary {
	return Summary{
		ProviderID:   d.ID,
		Kind:         domain.KindMovie,
		Title:        d.Title,
		Overview:     d.Overview,
		PosterPath:   d.PosterPath,
		BackdropPath: d.BackdropPath,
		Popularity:   d.Popularity,
		VoteAverage:  d.VoteAverage,
		GenreIDs:     genreIDs(d.Genres),
		ReleaseDate:  d.ReleaseDate,
	}
}

// Season is a series season entry in a series detail response.
type Season struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	SeasonNumber int    `json:"season_number"`
	EpisodeCount int    `json:"episode_count"`
	AirDate      string `json:"air_date,omitempty"`
	PosterPath   string `json:"poster_path,omitempty"`
}

// SeriesDetails is the full detail record for a series.
type SeriesDetails struct {
	ID              int64    `json:"id"`
	Name            string   `json:"name"`
	Overview        string   `json:"overview,omitempty"`
	PosterPath      string   `json:"poster_path,omitempty"`
	BackdropPath    string   `json:"backdrop_path,omitempty"`
	Popularity      float64  `json:"popularity"`
	VoteAverage     float64  `json:"vote_average"`
	Genres          []Genre  `json:"genres,omitempty"`
	FirstAirDate    string   `json:"first_air_date,omitempty"`
	NumberOfSeasons int      `json:"number_of_seasons,omitempty"`
	Seasons         []Season `json:"seasons,omitempty"`
	Status          string   `json:"status,omitempty"`
}

// ProviderID implements Detail.
func (d *SeriesDetails) ProviderID() int64 { return d.ID }

// Kind implements Detail.
func (d *SeriesDetails) Kind() domain.MediaKind { return domain.KindSeries }

// GenreIDs implements Detail.
func (d *SeriesDetails) GenreIDs() []int { return genreIDs(d.Genres) }

// Summary implements Detail.
func (d *SeriesDetails) Summary() Summary {
	return Summary{
		ProviderID:   d.ID,
		Kind:         domain.KindSeries,
		Title:        d.Name,
		Overview:     d.Overview,
		PosterPath:   d.PosterPath,
		BackdropPath: d.BackdropPath,
		Popularity:   d.Popularity,
		VoteAverage:  d.VoteAverage,
		GenreIDs:     genreIDs(d.Genres),
		ReleaseDate:  d.FirstAirDate,
	}
}

// Detail is a kind-dispatched full detail record, either *MovieDetails or
// *SeriesDetails.
type Detail interface {
	ProviderID() int64
	Kind() domain.MediaKind
	GenreIDs() []int
	Summary() Summary
}

// SearchOptions are the optional filters for multi search.
type SearchOptions struct {
	Page int
	// Language filters by original language (ISO 639-1 code).
	Language string
	// Genre restricts results to one provider genre ID.
	Genre int
	// Year restricts movies to a primary release year.
	Year int
}

func genreIDs(genres []Genre) []int {
	if len(genres) == 0 {
		return nil
	}
	ids := make([]int, 0, len(genres))
	for _, g := range genres {
		ids = append(ids, g.ID)
	}
	return ids
}
