package tmdb

import (
	"context"
	"fmt"
	"github.com/go-json-experiment/json"

	"github.com/reelhubapp/reelhub-server/internal/domain"
)

// MovieDetails retrieves the full detail record for a movie.
func (c *Client) MovieDetails(ctx context.Context, providerID int64) (*MovieDetails, error) {
	body, err := c.doRequest(ctx, familyDetail, fmt.Sprintf("/movie/%d", providerID), nil)
	if err != nil {
		return nil, wrapError("movieDetails", providerID, err)
	}

	var details MovieDetails
	if err := json.Unmarshal(body, &details); err != nil {
		return nil, wrapError("movieDetails", providerID, fmt.Errorf("parse response: %w", err))
	}

	return &details, nil
}

// SeriesDetails retrieves the full detail record for a series, including its
// seasons.
func (c *Client) SeriesDetails(ctx context.Context, providerID int64) (*SeriesDetails, error) {
	body, err := c.doRequest(ctx, familyDetail, fmt.Sprintf("/tv/%d", providerID), nil)
	if err != nil {
		return nil, wrapError("seriesDetails", providerID, err)
	}

	var details SeriesDetails
	if err := json.Unmarshal(body, &details); err != nil {
		return nil, wrapError("seriesDetails", providerID, fmt.Errorf("parse response: %w", err))
	}

	return &details, nil
}

// Details dispatches on media kind to the matching detail lookup.
func (c *Client) Details(ctx context.Context, kind domain.MediaKind, providerID int64) (Detail, error) {
	switch kind {
	case domain.KindMovie:
		return c.MovieDetails(ctx, providerID)
	case domain.KindSeries:
		return c.SeriesDetails(ctx, providerID)
	default:
		return nil, wrapError("details", providerID, fmt.Errorf("%w: %q", ErrInvalidKind, kind))
	}
}
