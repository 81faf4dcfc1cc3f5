package service

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"sync"

	domainerrors "github.com/reelhubapp/reelhub-server/internal/errors"
	"github.com/reelhubapp/reelhub-server/internal/metadata/tmdb"
	"github.com/reelhubapp/reelhub-server/internal/store"
)

const (
	// topGenres is how many of a profile's highest-affinity genres feed the
	// candidate fan-out.
	topGenres = 3
	// pairsPerGenre caps how many movie/series pairs each genre contributes.
	pairsPerGenre = 5
)

// RecommendService derives a personalized catalog row from a profile's
// rating history: weighted genre affinity, per-genre candidate fan-out,
// interleave, exclusion of already-rated titles, dedupe.
//
// The whole computation is a pure function of (rating history, current
// catalog state). Nothing is cached; every call recomputes from scratch.
type RecommendService struct {
	provider CatalogProvider
	store    *store.Store
	logger   *slog.Logger
}

// NewRecommendService creates a new recommendation service.
func NewRecommendService(provider CatalogProvider, store *store.Store, logger *slog.Logger) *RecommendService {
	return &RecommendService{
		provider: provider,
		store:    store,
		logger:   logger,
	}
}

// genreCandidates is one genre's fetched candidate pools.
type genreCandidates struct {
	movies []tmdb.Movie
	series []tmdb.Series
}

// Recommend computes recommendations for a profile.
//
// A profile with no rating history gets an empty row, not generic trending.
// That cold-start behavior is a product decision, not an oversight.
func (s *RecommendService) Recommend(ctx context.Context, profileID string, limit int) ([]tmdb.Summary, error) {
	if _, err := s.store.GetProfile(ctx, profileID); err != nil {
		if errors.Is(err, store.ErrProfileNotFound) {
			return nil, domainerrors.NotFound("profile not found")
		}
		return nil, domainerrors.Internal("profile lookup failed").WithCause(err)
	}

	reviews, err := s.store.ListReviewsByProfile(ctx, profileID)
	if err != nil {
		return nil, domainerrors.Internal("review listing failed").WithCause(err)
	}
	if len(reviews) == 0 {
		return []tmdb.Summary{}, nil
	}

	// Resolve each rated title's genre list via a fresh detail fetch.
	// Best-effort: a failing item is skipped, not fatal. This deliberately
	// differs from the aggregation rows' fail-fast policy.
	rated := make(map[int64]bool, len(reviews))
	type signal struct {
		genreIDs []int
		rating   int
	}
	var signals []signal
	for _, review := range reviews {
		record, err := s.store.GetContent(ctx, review.ContentID)
		if err != nil {
			s.logger.Warn("skipping rated item, content record missing",
				"review_id", review.ID,
				"content_id", review.ContentID,
				"error", err,
			)
			continue
		}
		rated[record.ProviderID] = true

		detail, err := s.provider.Details(ctx, record.Kind, record.ProviderID)
		if err != nil {
			s.logger.Warn("skipping rated item, detail fetch failed",
				"provider_id", record.ProviderID,
				"kind", record.Kind,
				"error", err,
			)
			continue
		}

		signals = append(signals, signal{
			genreIDs: detail.GenreIDs(),
			rating:   review.RatingOrNeutral(),
		})
	}

	// Genre affinity: average rating across the items carrying each genre.
	// genreOrder keeps first-appearance order for the deterministic
	// tie-break when weights are equal.
	sums := make(map[int]int)
	counts := make(map[int]int)
	var genreOrder []int
	for _, sig := range signals {
		for _, genreID := range sig.genreIDs {
			if counts[genreID] == 0 {
				genreOrder = append(genreOrder, genreID)
			}
			sums[genreID] += sig.rating
			counts[genreID]++
		}
	}
	if len(genreOrder) == 0 {
		return []tmdb.Summary{}, nil
	}

	sort.SliceStable(genreOrder, func(i, j int) bool {
		wi := float64(sums[genreOrder[i]]) / float64(counts[genreOrder[i]])
		wj := float64(sums[genreOrder[j]]) / float64(counts[genreOrder[j]])
		return wi > wj
	})
	if len(genreOrder) > topGenres {
		genreOrder = genreOrder[:topGenres]
	}

	s.logger.Debug("recommendation fan-out",
		"profile_id", profileID,
		"genres", genreOrder,
		"signals", len(signals),
	)

	// Fetch candidate pools for every top genre concurrently: one movie page
	// and one series page each. Best-effort again: a failing fetch leaves
	// that pool empty.
	candidates := make([]genreCandidates, len(genreOrder))
	var wg sync.WaitGroup
	for i, genreID := range genreOrder {
		i, genreID := i, genreID
		wg.Add(1)
		go func() {
			defer wg.Done()
			movies, err := s.provider.MoviesByGenre(ctx, genreID, 1)
			if err != nil {
				s.logger.Warn("skipping movie candidates for genre",
					"genre_id", genreID,
					"error", err,
				)
				return
			}
			candidates[i].movies = movies
		}()
		wg.Add(1)
		go func() {
			defer wg.Done()
			series, err := s.provider.SeriesByGenre(ctx, genreID, 1)
			if err != nil {
				s.logger.Warn("skipping series candidates for genre",
					"genre_id", genreID,
					"error", err,
				)
				return
			}
			candidates[i].series = series
		}()
	}
	wg.Wait()

	// Interleave movie[i], series[i] per genre, highest-affinity genre
	// first. Earlier genres rank higher; that placement is the tie-break.
	var interleaved []tmdb.Summary
	for _, pool := range candidates {
		pairs := min(len(pool.movies), len(pool.series), pairsPerGenre)
		for i := 0; i < pairs; i++ {
			interleaved = append(interleaved, pool.movies[i].Summary(), pool.series[i].Summary())
		}
	}

	// Drop already-rated titles, then dedupe keeping first occurrence.
	seen := make(map[int64]bool, len(interleaved))
	results := make([]tmdb.Summary, 0, len(interleaved))
	for _, item := range interleaved {
		if rated[item.ProviderID] || seen[item.ProviderID] {
			continue
		}
		seen[item.ProviderID] = true
		results = append(results, item)
	}

	return truncate(results, limit), nil
}
