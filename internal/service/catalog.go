package service

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/reelhubapp/reelhub-server/internal/domain"
	domainerrors "github.com/reelhubapp/reelhub-server/internal/errors"
	"github.com/reelhubapp/reelhub-server/internal/metadata/tmdb"
	"github.com/reelhubapp/reelhub-server/internal/store"
)

// CatalogService aggregates provider result sets into the catalog rows the
// UI renders: newest, most popular, most reviewed, single-kind trending,
// search, and detail.
type CatalogService struct {
	provider  CatalogProvider
	store     *store.Store
	reconcile *ReconcileService
	logger    *slog.Logger
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(
	provider CatalogProvider,
	store *store.Store,
	reconcile *ReconcileService,
	logger *slog.Logger,
) *CatalogService {
	return &CatalogService{
		provider:  provider,
		store:     store,
		reconcile: reconcile,
		logger:    logger,
	}
}

// fetchTrending runs the two trending fetches concurrently and concatenates
// movies before series. Fail-fast: if either fetch fails the whole operation
// fails with that error, no partial results.
func (s *CatalogService) fetchTrending(ctx context.Context) ([]tmdb.Summary, error) {
	var (
		movies    []tmdb.Movie
		series    []tmdb.Series
		movieErr  error
		seriesErr error
		wg        sync.WaitGroup
	)

	wg.Add(1)
	go func() {
		defer wg.Done()
		movies, movieErr = s.provider.TrendingMovies(ctx, 1)
	}()
	wg.Add(1)
	go func() {
		defer wg.Done()
		series, seriesErr = s.provider.TrendingSeries(ctx, 1)
	}()
	wg.Wait()

	if movieErr != nil {
		return nil, providerError(movieErr)
	}
	if seriesErr != nil {
		return nil, providerError(seriesErr)
	}

	merged := make([]tmdb.Summary, 0, len(movies)+len(series))
	for _, m := range movies {
		merged = append(merged, m.Summary())
	}
	for _, sr := range series {
		merged = append(merged, sr.Summary())
	}
	return merged, nil
}

// Newest returns trending movies and series sorted by release date,
// newest first. Items without a parseable date sort last, keeping their
// original relative order.
func (s *CatalogService) Newest(ctx context.Context, limit int) ([]tmdb.Summary, error) {
	merged, err := s.fetchTrending(ctx)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(merged, func(i, j int) bool {
		ti, iOK := parseReleaseDate(merged[i].ReleaseDate)
		tj, jOK := parseReleaseDate(merged[j].ReleaseDate)
		if iOK != jOK {
			return iOK // dated items before dateless ones
		}
		if !iOK {
			return false // both dateless: keep input order
		}
		return ti.After(tj)
	})

	return truncate(merged, limit), nil
}

// MostPopular returns trending movies and series sorted by popularity
// score, highest first. Ties keep input order, movies before series.
func (s *CatalogService) MostPopular(ctx context.Context, limit int) ([]tmdb.Summary, error) {
	merged, err := s.fetchTrending(ctx)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Popularity > merged[j].Popularity
	})

	return truncate(merged, limit), nil
}

// MostReviewed ranks locally reconciled content records by review count and
// returns fresh provider details for one page of them. Any failing detail
// fetch fails the whole operation.
func (s *CatalogService) MostReviewed(ctx context.Context, page, limit int) ([]tmdb.Detail, error) {
	if page < 1 {
		return nil, domainerrors.Validation("page must be >= 1")
	}
	if limit < 1 {
		return nil, domainerrors.Validation("limit must be >= 1")
	}

	records, err := s.store.ListContent(ctx)
	if err != nil {
		return nil, domainerrors.Internal("content listing failed").WithCause(err)
	}

	type rankedRecord struct {
		record *domain.ContentRecord
		count  int
	}
	ranked := make([]rankedRecord, 0, len(records))
	for _, record := range records {
		count, err := s.store.CountReviewsByContent(ctx, record.ID)
		if err != nil {
			return nil, domainerrors.Internal("review count failed").WithCause(err)
		}
		ranked = append(ranked, rankedRecord{record: record, count: count})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].count > ranked[j].count
	})

	// Offset pagination over the ranked records.
	offset := (page - 1) * limit
	if offset >= len(ranked) {
		return []tmdb.Detail{}, nil
	}
	end := offset + limit
	if end > len(ranked) {
		end = len(ranked)
	}
	pageRecords := ranked[offset:end]

	details := make([]tmdb.Detail, 0, len(pageRecords))
	for _, rr := range pageRecords {
		detail, err := s.provider.Details(ctx, rr.record.Kind, rr.record.ProviderID)
		if err != nil {
			return nil, providerError(err)
		}
		details = append(details, detail)
	}

	return details, nil
}

// Movies returns one page of trending movies, sliced to limit.
func (s *CatalogService) Movies(ctx context.Context, page, limit int) ([]tmdb.Summary, error) {
	movies, err := s.provider.TrendingMovies(ctx, page)
	if err != nil {
		return nil, providerError(err)
	}

	summaries := make([]tmdb.Summary, 0, len(movies))
	for _, m := range movies {
		summaries = append(summaries, m.Summary())
	}
	return truncate(summaries, limit), nil
}

// Series returns one page of trending series, sliced to limit.
func (s *CatalogService) Series(ctx context.Context, page, limit int) ([]tmdb.Summary, error) {
	series, err := s.provider.TrendingSeries(ctx, page)
	if err != nil {
		return nil, providerError(err)
	}

	summaries := make([]tmdb.Summary, 0, len(series))
	for _, sr := range series {
		summaries = append(summaries, sr.Summary())
	}
	return truncate(summaries, limit), nil
}

// Search passes a multi search through to the provider, in the provider's
// relevance order.
func (s *CatalogService) Search(ctx context.Context, query string, opts tmdb.SearchOptions) ([]tmdb.Summary, error) {
	items, err := s.provider.Search(ctx, query, opts)
	if err != nil {
		return nil, providerError(err)
	}

	summaries := make([]tmdb.Summary, 0, len(items))
	for _, item := range items {
		summaries = append(summaries, item.Summary())
	}
	return summaries, nil
}

// Details fetches the full provider detail for a title and reconciles it, so
// the response can carry the local content ID alongside provider data.
func (s *CatalogService) Details(ctx context.Context, kind domain.MediaKind, providerID int64) (tmdb.Detail, *domain.ContentRecord, error) {
	detail, err := s.provider.Details(ctx, kind, providerID)
	if err != nil {
		return nil, nil, providerError(err)
	}

	record, err := s.reconcile.Reconcile(ctx, detail.Summary(), "")
	if err != nil {
		return nil, nil, err
	}

	return detail, record, nil
}

// parseReleaseDate parses the provider's YYYY-MM-DD date format.
func parseReleaseDate(date string) (time.Time, bool) {
	if date == "" {
		return time.Time{}, false
	}
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// truncate slices a result set to limit. A non-positive limit means no cap.
func truncate(items []tmdb.Summary, limit int) []tmdb.Summary {
	if limit > 0 && len(items) > limit {
		return items[:limit]
	}
	return items
}
