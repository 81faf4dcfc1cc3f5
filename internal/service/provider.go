// Package service contains the aggregation, reconciliation, and
// recommendation core plus the thin CRUD collaborators around it.
package service

import (
	"context"
	"errors"

	"github.com/reelhubapp/reelhub-server/internal/domain"
	domainerrors "github.com/reelhubapp/reelhub-server/internal/errors"
	"github.com/reelhubapp/reelhub-server/internal/metadata/tmdb"
)

// CatalogProvider is the slice of the TMDB client the services consume.
// Tests substitute a stub.
type CatalogProvider interface {
	TrendingMovies(ctx context.Context, page int) ([]tmdb.Movie, error)
	TrendingSeries(ctx context.Context, page int) ([]tmdb.Series, error)
	MoviesByGenre(ctx context.Context, genreID, page int) ([]tmdb.Movie, error)
	SeriesByGenre(ctx context.Context, genreID, page int) ([]tmdb.Series, error)
	Search(ctx context.Context, query string, opts tmdb.SearchOptions) ([]tmdb.Item, error)
	Details(ctx context.Context, kind domain.MediaKind, providerID int64) (tmdb.Detail, error)
}

// providerError converts tmdb transport and status errors to domain errors
// at the service boundary. The upstream status code is preserved.
func providerError(err error) error {
	if err == nil {
		return nil
	}

	var statusErr *tmdb.StatusError
	if errors.As(err, &statusErr) {
		return domainerrors.ProviderFailure(statusErr.StatusCode, statusErr.Message)
	}
	if errors.Is(err, tmdb.ErrUnavailable) {
		return domainerrors.ProviderUnavailable("catalog provider unavailable").WithCause(err)
	}
	if errors.Is(err, tmdb.ErrInvalidPage) || errors.Is(err, tmdb.ErrInvalidKind) || errors.Is(err, tmdb.ErrEmptyQuery) {
		return domainerrors.Validation(err.Error())
	}
	return domainerrors.Internal("catalog request failed").WithCause(err)
}
