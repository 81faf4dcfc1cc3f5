package tmdb

import (
	"context"
	"fmt"
	"github.com/go-json-experiment/json"
	"net/url"
	"strconv"
)

// MoviesByGenre fetches one page of movies carrying the given genre.
func (c *Client) MoviesByGenre(ctx context.Context, genreID, page int) ([]Movie, error) {
	if page < 1 {
		return nil, wrapError("moviesByGenre", 0, ErrInvalidPage)
	}

	query := url.Values{}
	query.Set("with_genres", strconv.Itoa(genreID))
	query.Set("page", strconv.Itoa(page))

	body, err := c.doRequest(ctx, familyDiscover, "/discover/movie", query)
	if err != nil {
		return nil, wrapError("moviesByGenre", 0, err)
	}

	var resp struct {
		Results []Movie `json:"results"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, wrapError("moviesByGenre", 0, fmt.Errorf("parse response: %w", err))
	}

	return resp.Results, nil
}

// SeriesByGenre fetches one page of TV series carrying the given genre.
func (c *Client) SeriesByGenre(ctx context.Context, genreID, page int) ([]Series, error) {
	if page < 1 {
		return nil, wrapError("seriesByGenre", 0, ErrInvalidPage)
	}

	query := url.Values{}
	query.Set("with_genres", strconv.Itoa(genreID))
	query.Set("page", strconv.Itoa(page))

	body, err := c.doRequest(ctx, familyDiscover, "/discover/tv", query)
	if err != nil {
		return nil, wrapError("seriesByGenre", 0, err)
	}

	var resp struct {
		Results []Series `json:"results"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, wrapError("seriesByGenre", 0, fmt.Errorf("parse response: %w", err))
	}

	return resp.Results, nil
}
