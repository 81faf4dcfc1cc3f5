package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/reelhubapp/reelhub-server/internal/domain"
	"github.com/reelhubapp/reelhub-server/internal/metadata/tmdb"
	"github.com/reelhubapp/reelhub-server/internal/store"
	"github.com/reelhubapp/reelhub-server/internal/validation"
	"github.com/stretchr/testify/require"
)

// stubProvider implements CatalogProvider with per-call hooks. Hooks left
// nil return empty results.
type stubProvider struct {
	trendingMovies func(page int) ([]tmdb.Movie, error)
	trendingSeries func(page int) ([]tmdb.Series, error)
	moviesByGenre  func(genreID, page int) ([]tmdb.Movie, error)
	seriesByGenre  func(genreID, page int) ([]tmdb.Series, error)
	search         func(query string, opts tmdb.SearchOptions) ([]tmdb.Item, error)
	details        func(kind domain.MediaKind, providerID int64) (tmdb.Detail, error)
}

func (p *stubProvider) TrendingMovies(_ context.Context, page int) ([]tmdb.Movie, error) {
	if p.trendingMovies == nil {
		return nil, nil
	}
	return p.trendingMovies(page)
}

func (p *stubProvider) TrendingSeries(_ context.Context, page int) ([]tmdb.Series, error) {
	if p.trendingSeries == nil {
		return nil, nil
	}
	return p.trendingSeries(page)
}

func (p *stubProvider) MoviesByGenre(_ context.Context, genreID, page int) ([]tmdb.Movie, error) {
	if p.moviesByGenre == nil {
		return nil, nil
	}
	return p.moviesByGenre(genreID, page)
}

func (p *stubProvider) SeriesByGenre(_ context.Context, genreID, page int) ([]tmdb.Series, error) {
	if p.seriesByGenre == nil {
		return nil, nil
	}
	return p.seriesByGenre(genreID, page)
}

func (p *stubProvider) Search(_ context.Context, query string, opts tmdb.SearchOptions) ([]tmdb.Item, error) {
	if p.search == nil {
		return nil, nil
	}
	return p.search(query, opts)
}

func (p *stubProvider) Details(_ context.Context, kind domain.MediaKind, providerID int64) (tmdb.Detail, error) {
	if p.details == nil {
		return nil, fmt.Errorf("no details stub for %s/%d", kind, providerID)
	}
	return p.details(kind, providerID)
}

// detailFromRecord builds a detail response matching a content record, so a
// stub can answer detail fetches for reconciled titles.
func detailFromRecord(record *domain.ContentRecord, genreIDs ...int) tmdb.Detail {
	genres := make([]tmdb.Genre, 0, len(genreIDs))
	for _, id := range genreIDs {
		genres = append(genres, tmdb.Genre{ID: id})
	}
	if record.Kind == domain.KindSeries {
		return &tmdb.SeriesDetails{
			ID:     record.ProviderID,
			Name:   record.Title,
			Genres: genres,
		}
	}
	return &tmdb.MovieDetails{
		ID:     record.ProviderID,
		Title:  record.Title,
		Genres: genres,
	}
}

func setupTestStoreForService(t *testing.T) (*store.Store, func()) {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "reelhub-service-test-*")
	require.NoError(t, err)

	testStore, err := store.New(filepath.Join(tmpDir, "test.db"), nil)
	require.NoError(t, err)

	cleanup := func() {
		testStore.Close()
		os.RemoveAll(tmpDir)
	}
	return testStore, cleanup
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// createTestProfile creates a user and one profile, returning the profile ID.
func createTestProfile(t *testing.T, s *store.Store) string {
	t.Helper()
	ctx := context.Background()

	user := &domain.User{Email: fmt.Sprintf("user-%s@test.com", t.Name())}
	require.NoError(t, s.CreateUser(ctx, user))

	profile := &domain.Profile{UserID: user.ID, Name: "Tester"}
	require.NoError(t, s.CreateProfile(ctx, profile))
	return profile.ID
}

// createRatedContent reconciles a synthetic title and reviews it with the
// given rating, returning the content record.
func createRatedContent(t *testing.T, s *store.Store, profileID string, providerID int64, kind domain.MediaKind, rating int) *domain.ContentRecord {
	t.Helper()
	ctx := context.Background()

	record := &domain.ContentRecord{
		ProviderID: providerID,
		Kind:       kind,
		Title:      fmt.Sprintf("Title %d", providerID),
	}
	require.NoError(t, s.CreateContent(ctx, record))

	review := &domain.Review{
		ProfileID: profileID,
		ContentID: record.ID,
		Rating:    rating,
	}
	require.NoError(t, s.CreateReview(ctx, review))
	return record
}

func testValidator() *validation.Validator {
	return validation.New()
}
