package api

import (
	"context"
	"net/http"
	"testing"

	"github.com/go-json-experiment/json"

	"github.com/reelhubapp/reelhub-server/internal/domain"
	"github.com/reelhubapp/reelhub-server/internal/metadata/tmdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogNewest(t *testing.T) {
	provider := &stubProvider{
		trendingMovies: func(page int) ([]tmdb.Movie, error) {
			return []tmdb.Movie{
				{ID: 1, Title: "Older", ReleaseDate: "2020-01-01", GenreIDs: []int{28}},
				{ID: 2, Title: "Newer", ReleaseDate: "2024-01-01"},
			}, nil
		},
	}
	ts := setupTestServer(t, provider)
	defer ts.cleanup()

	resp := ts.api.Get("/api/v1/catalog/newest?limit=10")
	require.Equal(t, http.StatusOK, resp.Code)

	var body CatalogRowResponse
	err := json.Unmarshal(resp.Body.Bytes(), &body)
	require.NoError(t, err)
	require.Len(t, body.Results, 2)
	assert.Equal(t, "Newer", body.Results[0].Title)
	assert.Equal(t, "Older", body.Results[1].Title)
	assert.Equal(t, []string{"Action"}, body.Results[1].Genres)
}

func TestCatalogPopular_ProviderDown(t *testing.T) {
	provider := &stubProvider{
		trendingSeries: func(page int) ([]tmdb.Series, error) {
			return nil, tmdb.ErrUnavailable
		},
	}
	ts := setupTestServer(t, provider)
	defer ts.cleanup()

	resp := ts.api.Get("/api/v1/catalog/popular")
	assert.Equal(t, http.StatusServiceUnavailable, resp.Code)

	var apiErr APIError
	err := json.Unmarshal(resp.Body.Bytes(), &apiErr)
	require.NoError(t, err)
	assert.Equal(t, "PROVIDER_UNAVAILABLE", apiErr.Code)
}

func TestCatalogSearch_RequiresQuery(t *testing.T) {
	ts := setupTestServer(t, &stubProvider{})
	defer ts.cleanup()

	resp := ts.api.Get("/api/v1/catalog/search")
	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
}

func TestCatalogSearch(t *testing.T) {
	provider := &stubProvider{
		search: func(query string, opts tmdb.SearchOptions) ([]tmdb.Item, error) {
			assert.Equal(t, "wick", query)
			assert.Equal(t, 2023, opts.Year)
			return []tmdb.Item{tmdb.Movie{ID: 603692, Title: "John Wick: Chapter 4"}}, nil
		},
	}
	ts := setupTestServer(t, provider)
	defer ts.cleanup()

	resp := ts.api.Get("/api/v1/catalog/search?q=wick&year=2023")
	require.Equal(t, http.StatusOK, resp.Code)

	var body CatalogRowResponse
	err := json.Unmarshal(resp.Body.Bytes(), &body)
	require.NoError(t, err)
	require.Len(t, body.Results, 1)
	assert.Equal(t, int64(603692), body.Results[0].ProviderID)
	assert.Equal(t, "movie", body.Results[0].Kind)
}

func TestCatalogTitle_MovieDetails(t *testing.T) {
	provider := &stubProvider{
		details: func(kind domain.MediaKind, providerID int64) (tmdb.Detail, error) {
			return &tmdb.MovieDetails{
				ID:      providerID,
				Title:   "John Wick: Chapter 4",
				Runtime: 170,
				Genres:  []tmdb.Genre{{ID: 28, Name: "Action"}},
			}, nil
		},
	}
	ts := setupTestServer(t, provider)
	defer ts.cleanup()

	resp := ts.api.Get("/api/v1/catalog/movie/603692")
	require.Equal(t, http.StatusOK, resp.Code)

	var body TitleDetailResponse
	err := json.Unmarshal(resp.Body.Bytes(), &body)
	require.NoError(t, err)
	assert.Equal(t, int64(603692), body.ProviderID)
	assert.Equal(t, 170, body.RuntimeMinutes)
	assert.Equal(t, []string{"Action"}, body.Genres)
	// A local content record was materialized on first reference.
	assert.NotEmpty(t, body.ContentID)

	record, err := ts.store.GetContentByProvider(context.Background(), domain.KindMovie, 603692)
	require.NoError(t, err)
	assert.Equal(t, record.ID, body.ContentID)
}

func TestCatalogTitle_SeriesDetails(t *testing.T) {
	provider := &stubProvider{
		details: func(kind domain.MediaKind, providerID int64) (tmdb.Detail, error) {
			return &tmdb.SeriesDetails{
				ID:              providerID,
				Name:            "The Last of Us",
				NumberOfSeasons: 2,
				Seasons: []tmdb.Season{
					{Name: "Season 1", SeasonNumber: 1, EpisodeCount: 9},
					{Name: "Season 2", SeasonNumber: 2, EpisodeCount: 7},
				},
			}, nil
		},
	}
	ts := setupTestServer(t, provider)
	defer ts.cleanup()

	resp := ts.api.Get("/api/v1/catalog/series/100088")
	require.Equal(t, http.StatusOK, resp.Code)

	var body TitleDetailResponse
	err := json.Unmarshal(resp.Body.Bytes(), &body)
	require.NoError(t, err)
	assert.Equal(t, "series", body.Kind)
	assert.Equal(t, 2, body.NumberOfSeasons)
	require.Len(t, body.Seasons, 2)
	assert.Equal(t, 9, body.Seasons[0].EpisodeCount)
}

func TestCatalogTitle_NotFoundUpstream(t *testing.T) {
	provider := &stubProvider{
		details: func(kind domain.MediaKind, providerID int64) (tmdb.Detail, error) {
			return nil, &tmdb.StatusError{StatusCode: 404, Message: "not found"}
		},
	}
	ts := setupTestServer(t, provider)
	defer ts.cleanup()

	resp := ts.api.Get("/api/v1/catalog/movie/999999")
	assert.Equal(t, http.StatusBadGateway, resp.Code)

	var apiErr APIError
	err := json.Unmarshal(resp.Body.Bytes(), &apiErr)
	require.NoError(t, err)
	assert.Equal(t, "PROVIDER_ERROR", apiErr.Code)
}

func TestCatalogMostReviewed(t *testing.T) {
	provider := &stubProvider{
		details: func(kind domain.MediaKind, providerID int64) (tmdb.Detail, error) {
			return &tmdb.MovieDetails{ID: providerID, Title: "Reviewed Movie"}, nil
		},
	}
	ts := setupTestServer(t, provider)
	defer ts.cleanup()

	ctx := context.Background()
	_, profileID := ts.createUserAndProfile(t)
	record := &domain.ContentRecord{ProviderID: 100, Kind: domain.KindMovie, Title: "Reviewed Movie"}
	require.NoError(t, ts.store.CreateContent(ctx, record))
	require.NoError(t, ts.store.CreateReview(ctx, &domain.Review{
		ProfileID: profileID, ContentID: record.ID, Rating: 5,
	}))

	resp := ts.api.Get("/api/v1/catalog/most-reviewed")
	require.Equal(t, http.StatusOK, resp.Code)

	var body CatalogDetailRowResponse
	err := json.Unmarshal(resp.Body.Bytes(), &body)
	require.NoError(t, err)
	require.Len(t, body.Results, 1)
	assert.Equal(t, int64(100), body.Results[0].ProviderID)
}

func TestRecommendations_EmptyHistory(t *testing.T) {
	ts := setupTestServer(t, &stubProvider{})
	defer ts.cleanup()

	_, profileID := ts.createUserAndProfile(t)

	resp := ts.api.Get("/api/v1/profiles/" + profileID + "/recommendations")
	require.Equal(t, http.StatusOK, resp.Code)

	var body CatalogRowResponse
	err := json.Unmarshal(resp.Body.Bytes(), &body)
	require.NoError(t, err)
	assert.Empty(t, body.Results)
}

func TestRecommendations_UnknownProfile(t *testing.T) {
	ts := setupTestServer(t, &stubProvider{})
	defer ts.cleanup()

	resp := ts.api.Get("/api/v1/profiles/prof-missing/recommendations")
	assert.Equal(t, http.StatusNotFound, resp.Code)

	var apiErr APIError
	err := json.Unmarshal(resp.Body.Bytes(), &apiErr)
	require.NoError(t, err)
	assert.Equal(t, "NOT_FOUND", apiErr.Code)
}

func TestRecommendations_FromHistory(t *testing.T) {
	provider := &stubProvider{
		details: func(kind domain.MediaKind, providerID int64) (tmdb.Detail, error) {
			return &tmdb.MovieDetails{ID: providerID, Genres: []tmdb.Genre{{ID: 28, Name: "Action"}}}, nil
		},
		moviesByGenre: func(genreID, page int) ([]tmdb.Movie, error) {
			return []tmdb.Movie{{ID: 500, Title: "Candidate Movie"}}, nil
		},
		seriesByGenre: func(genreID, page int) ([]tmdb.Series, error) {
			return []tmdb.Series{{ID: 600, Name: "Candidate Series"}}, nil
		},
	}
	ts := setupTestServer(t, provider)
	defer ts.cleanup()

	ctx := context.Background()
	_, profileID := ts.createUserAndProfile(t)
	record := &domain.ContentRecord{ProviderID: 100, Kind: domain.KindMovie, Title: "Rated"}
	require.NoError(t, ts.store.CreateContent(ctx, record))
	require.NoError(t, ts.store.CreateReview(ctx, &domain.Review{
		ProfileID: profileID, ContentID: record.ID, Rating: 5,
	}))

	resp := ts.api.Get("/api/v1/profiles/" + profileID + "/recommendations")
	require.Equal(t, http.StatusOK, resp.Code)

	var body CatalogRowResponse
	err := json.Unmarshal(resp.Body.Bytes(), &body)
	require.NoError(t, err)
	require.Len(t, body.Results, 2)
	assert.Equal(t, int64(500), body.Results[0].ProviderID)
	assert.Equal(t, int64(600), body.Results[1].ProviderID)
}
