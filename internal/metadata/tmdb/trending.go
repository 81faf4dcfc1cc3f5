package tmdb

import (
	"context"
	"fmt"
	"github.com/go-json-experiment/json"
	"net/url"
	"strconv"
)

// TrendingMovies fetches one page of this week's trending movies.
// Re-invoking with the same page restarts the same sequence.
func (c *Client) TrendingMovies(ctx context.Context, page int) ([]Movie, error) {
	if page < 1 {
		return nil, wrapError("trendingMovies", 0, ErrInvalidPage)
	}

	query := url.Values{}
	query.Set("page", strconv.Itoa(page))

	body, err := c.doRequest(ctx, familyTrending, "/trending/movie/week", query)
	if err != nil {
		return nil, wrapError("trendingMovies", 0, err)
	}

	var resp struct {
		Results []Movie `json:"results"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, wrapError("trendingMovies", 0, fmt.Errorf("parse response: %w", err))
	}

	return resp.Results, nil
}

// TrendingSeries fetches one page of this week's trending TV series.
func (c *Client) TrendingSeries(ctx context.Context, page int) ([]Series, error) {
	if page < 1 {
		return nil, wrapError("trendingSeries", 0, ErrInvalidPage)
	}

	query := url.Values{}
	query.Set("page", strconv.Itoa(page))

	body, err := c.doRequest(ctx, familyTrending, "/trending/tv/week", query)
	if err != nil {
		return nil, wrapError("trendingSeries", 0, err)
	}

	var resp struct {
		Results []Series `json:"results"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, wrapError("trendingSeries", 0, fmt.Errorf("parse response: %w", err))
	}

	return resp.Results, nil
}
