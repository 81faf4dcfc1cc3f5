package tmdb

import (
	"context"
	"fmt"
	"github.com/go-json-experiment/json"
	"net/url"
	"strconv"
	"strings"
)

// rawSearchResult covers both movie and tv shapes in a multi search page.
// media_type dispatches which fields are meaningful.
type rawSearchResult struct {
	MediaType    string  `json:"media_type"`
	ID           int64   `json:"id"`
	Title        string  `json:"title"`
	Name         string  `json:"name"`
	Overview     string  `json:"overview"`
	PosterPath   string  `json:"poster_path"`
	BackdropPath string  `json:"backdrop_path"`
	Popularity   float64 `json:"popularity"`
	VoteAverage  float64 `json:"vote_average"`
	GenreIDs     []int   `json:"genre_ids"`
	ReleaseDate  string  `json:"release_date"`
	FirstAirDate string  `json:"first_air_date"`
}

// Search performs a multi search across movies and series. People and other
// media types in the response are dropped. Result order is the provider's
// relevance order.
func (c *Client) Search(ctx context.Context, searchQuery string, opts SearchOptions) ([]Item, error) {
	if strings.TrimSpace(searchQuery) == "" {
		return nil, wrapError("search", 0, ErrEmptyQuery)
	}
	page := opts.Page
	if page == 0 {
		page = 1
	}
	if page < 1 {
		return nil, wrapError("search", 0, ErrInvalidPage)
	}

	query := url.Values{}
	query.Set("query", searchQuery)
	query.Set("page", strconv.Itoa(page))
	if opts.Language != "" {
		query.Set("with_original_language", opts.Language)
	}
	if opts.Genre != 0 {
		query.Set("with_genres", strconv.Itoa(opts.Genre))
	}
	if opts.Year != 0 {
		query.Set("primary_release_year", strconv.Itoa(opts.Year))
	}

	body, err := c.doRequest(ctx, familySearch, "/search/multi", query)
	if err != nil {
		return nil, wrapError("search", 0, err)
	}

	var resp struct {
		Results []rawSearchResult `json:"results"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, wrapError("search", 0, fmt.Errorf("parse response: %w", err))
	}

	items := make([]Item, 0, len(resp.Results))
	for _, r := range resp.Results {
		switch r.MediaType {
		case "movie":
			items = append(items, Movie{
				ID:           r.ID,
				Title:        r.Title,
				Overview:     r.Overview,
				PosterPath:   r.PosterPath,
				BackdropPath: r.BackdropPath,
				Popularity:   r.Popularity,
				VoteAverage:  r.VoteAverage,
				GenreIDs:     r.GenreIDs,
				ReleaseDate:  r.ReleaseDate,
			})
		case "tv":
			items = append(items, Series{
				ID:           r.ID,
				Name:         r.Name,
				Overview:     r.Overview,
				PosterPath:   r.PosterPath,
				BackdropPath: r.BackdropPath,
				Popularity:   r.Popularity,
				VoteAverage:  r.VoteAverage,
				GenreIDs:     r.GenreIDs,
				FirstAirDate: r.FirstAirDate,
			})
		default:
			// People and unknown media types are not catalog items.
		}
	}

	return items, nil
}
