package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/reelhubapp/reelhub-server/internal/domain"
	domainerrors "github.com/reelhubapp/reelhub-server/internal/errors"
	"github.com/reelhubapp/reelhub-server/internal/store"
)

// WatchlistEntry pairs a watchlist item with its content record for
// rendering.
type WatchlistEntry struct {
	Item    *domain.WatchlistItem `json:"item"`
	Content *domain.ContentRecord `json:"content"`
}

// WatchlistService is thin CRUD over per-profile watchlists. Adding a title
// is a first-reference trigger, like reviewing it.
type WatchlistService struct {
	store     *store.Store
	provider  CatalogProvider
	reconcile *ReconcileService
	logger    *slog.Logger
}

// NewWatchlistService creates a new watchlist service.
func NewWatchlistService(
	store *store.Store,
	provider CatalogProvider,
	reconcile *ReconcileService,
	logger *slog.Logger,
) *WatchlistService {
	return &WatchlistService{
		store:     store,
		provider:  provider,
		reconcile: reconcile,
		logger:    logger,
	}
}

// Add saves a title to a profile's watchlist, reconciling it first.
func (s *WatchlistService) Add(ctx context.Context, profileID string, kind domain.MediaKind, providerID int64) (*domain.WatchlistItem, error) {
	if _, err := s.store.GetProfile(ctx, profileID); err != nil {
		if errors.Is(err, store.ErrProfileNotFound) {
			return nil, domainerrors.NotFound("profile not found")
		}
		return nil, domainerrors.Internal("profile lookup failed").WithCause(err)
	}

	detail, err := s.provider.Details(ctx, kind, providerID)
	if err != nil {
		return nil, providerError(err)
	}
	record, err := s.reconcile.Reconcile(ctx, detail.Summary(), profileID)
	if err != nil {
		return nil, err
	}

	item := &domain.WatchlistItem{
		ProfileID: profileID,
		ContentID: record.ID,
	}
	if err := s.store.AddWatchlistItem(ctx, item); err != nil {
		if errors.Is(err, store.ErrWatchlistItemExists) {
			return nil, domainerrors.AlreadyExists("title already on watchlist")
		}
		return nil, domainerrors.Internal("watchlist add failed").WithCause(err)
	}

	return item, nil
}

// Remove takes a content record off a profile's watchlist.
func (s *WatchlistService) Remove(ctx context.Context, profileID, contentID string) error {
	err := s.store.RemoveWatchlistItem(ctx, profileID, contentID)
	if errors.Is(err, store.ErrWatchlistItemNotFound) {
		return domainerrors.NotFound("watchlist item not found")
	}
	if err != nil {
		return domainerrors.Internal("watchlist remove failed").WithCause(err)
	}
	return nil
}

// Contains reports whether a profile saved a content record.
func (s *WatchlistService) Contains(ctx context.Context, profileID, contentID string) (bool, error) {
	contains, err := s.store.WatchlistContains(ctx, profileID, contentID)
	if err != nil {
		return false, domainerrors.Internal("watchlist lookup failed").WithCause(err)
	}
	return contains, nil
}

// List returns a profile's watchlist with content records resolved.
func (s *WatchlistService) List(ctx context.Context, profileID string) ([]WatchlistEntry, error) {
	items, err := s.store.ListWatchlist(ctx, profileID)
	if err != nil {
		return nil, domainerrors.Internal("watchlist listing failed").WithCause(err)
	}

	entries := make([]WatchlistEntry, 0, len(items))
	for _, item := range items {
		record, err := s.store.GetContent(ctx, item.ContentID)
		if err != nil {
			// A dangling entry is a data bug, not a user-visible failure.
			s.logger.Warn("watchlist entry without content record",
				"item_id", item.ID,
				"content_id", item.ContentID,
				"error", err,
			)
			continue
		}
		entries = append(entries, WatchlistEntry{Item: item, Content: record})
	}
	return entries, nil
}
