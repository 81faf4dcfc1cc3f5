package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/reelhubapp/reelhub-server/internal/domain"
	domainerrors "github.com/reelhubapp/reelhub-server/internal/errors"
	"github.com/reelhubapp/reelhub-server/internal/metadata/tmdb"
	"github.com/reelhubapp/reelhub-server/internal/store"
)

// ReconcileService materializes provider items into durable local content
// records on first reference. A record is created at most once per
// (provider ID, kind) pair and never refreshed afterward.
type ReconcileService struct {
	store  *store.Store
	logger *slog.Logger
}

// NewReconcileService creates a new reconcile service.
func NewReconcileService(store *store.Store, logger *slog.Logger) *ReconcileService {
	return &ReconcileService{
		store:  store,
		logger: logger,
	}
}

// Reconcile returns the local record for a provider item, creating one from
// the item's current field snapshot if this is the first reference.
// Idempotent for a given provider identity: concurrent creators race at the
// storage layer's unique index, and the loser retries the lookup.
func (s *ReconcileService) Reconcile(ctx context.Context, item tmdb.Summary, createdBy string) (*domain.ContentRecord, error) {
	existing, err := s.store.GetContentByProvider(ctx, item.Kind, item.ProviderID)
	if err == nil {
		// Found: returned unchanged, stale snapshot and all.
		return existing, nil
	}
	if !errors.Is(err, store.ErrContentNotFound) {
		return nil, domainerrors.Internal("content lookup failed").WithCause(err)
	}

	record := &domain.ContentRecord{
		ProviderID:   item.ProviderID,
		Kind:         item.Kind,
		Title:        item.Title,
		Overview:     item.Overview,
		PosterPath:   item.PosterPath,
		BackdropPath: item.BackdropPath,
		Popularity:   item.Popularity,
		VoteAverage:  item.VoteAverage,
		GenreIDs:     item.GenreIDs,
		ReleaseDate:  item.ReleaseDate,
		CreatedBy:    createdBy,
	}

	err = s.store.CreateContent(ctx, record)
	if errors.Is(err, store.ErrContentExists) {
		// A concurrent request created it first. Use theirs.
		s.logger.Debug("lost reconcile race, retrying lookup",
			"provider_id", item.ProviderID,
			"kind", item.Kind,
		)
		winner, lookupErr := s.store.GetContentByProvider(ctx, item.Kind, item.ProviderID)
		if lookupErr != nil {
			return nil, domainerrors.Internal("content lookup after conflict failed").WithCause(lookupErr)
		}
		return winner, nil
	}
	if err != nil {
		return nil, domainerrors.Internal("content creation failed").WithCause(err)
	}

	return record, nil
}

// ByLocalID looks up a content record by its local surrogate ID.
func (s *ReconcileService) ByLocalID(ctx context.Context, contentID string) (*domain.ContentRecord, error) {
	record, err := s.store.GetContent(ctx, contentID)
	if errors.Is(err, store.ErrContentNotFound) {
		return nil, domainerrors.NotFound("content not found")
	}
	if err != nil {
		return nil, domainerrors.Internal("content lookup failed").WithCause(err)
	}
	return record, nil
}

// ByProviderID looks up a content record by its provider identity.
func (s *ReconcileService) ByProviderID(ctx context.Context, kind domain.MediaKind, providerID int64) (*domain.ContentRecord, error) {
	record, err := s.store.GetContentByProvider(ctx, kind, providerID)
	if errors.Is(err, store.ErrContentNotFound) {
		return nil, domainerrors.NotFound("content not found")
	}
	if err != nil {
		return nil, domainerrors.Internal("content lookup failed").WithCause(err)
	}
	return record, nil
}
