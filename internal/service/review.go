package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/reelhubapp/reelhub-server/internal/domain"
	domainerrors "github.com/reelhubapp/reelhub-server/internal/errors"
	"github.com/reelhubapp/reelhub-server/internal/store"
	"github.com/reelhubapp/reelhub-server/internal/validation"
)

// CreateReviewInput is the payload for writing a review. The title is
// referenced by provider identity; reconciliation happens on the way in.
type CreateReviewInput struct {
	ProfileID  string `json:"profile_id" validate:"required"`
	Kind       string `json:"kind" validate:"required,oneof=movie series"`
	ProviderID int64  `json:"provider_id" validate:"required,gt=0"`
	Rating     int    `json:"rating" validate:"required,gte=1,lte=5"`
	Text       string `json:"text" validate:"max=2000"`
	Public     bool   `json:"public"`
}

// UpdateReviewInput is the payload for editing a review.
type UpdateReviewInput struct {
	Rating int    `json:"rating" validate:"required,gte=1,lte=5"`
	Text   string `json:"text" validate:"max=2000"`
	Public bool   `json:"public"`
}

// ReviewService is thin CRUD over reviews. Writing a review is a
// first-reference trigger: the reviewed title is reconciled into a local
// content record before the review is stored.
type ReviewService struct {
	store     *store.Store
	provider  CatalogProvider
	reconcile *ReconcileService
	validator *validation.Validator
	logger    *slog.Logger
}

// NewReviewService creates a new review service.
func NewReviewService(
	store *store.Store,
	provider CatalogProvider,
	reconcile *ReconcileService,
	validator *validation.Validator,
	logger *slog.Logger,
) *ReviewService {
	return &ReviewService{
		store:     store,
		provider:  provider,
		reconcile: reconcile,
		validator: validator,
		logger:    logger,
	}
}

// Create validates the payload, reconciles the reviewed title, and stores
// the review.
func (s *ReviewService) Create(ctx context.Context, input CreateReviewInput) (*domain.Review, error) {
	if err := s.validator.Validate(input); err != nil {
		return nil, err
	}

	if _, err := s.store.GetProfile(ctx, input.ProfileID); err != nil {
		if errors.Is(err, store.ErrProfileNotFound) {
			return nil, domainerrors.NotFound("profile not found")
		}
		return nil, domainerrors.Internal("profile lookup failed").WithCause(err)
	}

	kind, err := domain.ParseMediaKind(input.Kind)
	if err != nil {
		return nil, domainerrors.Validation(err.Error())
	}

	// Save-on-first-reference: the review needs a local content ID.
	detail, err := s.provider.Details(ctx, kind, input.ProviderID)
	if err != nil {
		return nil, providerError(err)
	}
	record, err := s.reconcile.Reconcile(ctx, detail.Summary(), input.ProfileID)
	if err != nil {
		return nil, err
	}

	review := &domain.Review{
		ProfileID: input.ProfileID,
		ContentID: record.ID,
		Rating:    input.Rating,
		Text:      input.Text,
		Public:    input.Public,
	}
	if err := s.store.CreateReview(ctx, review); err != nil {
		if errors.Is(err, store.ErrReviewExists) {
			return nil, domainerrors.AlreadyExists("profile already reviewed this title")
		}
		return nil, domainerrors.Internal("review creation failed").WithCause(err)
	}

	return review, nil
}

// Update edits an existing review's rating, text, and public flag.
func (s *ReviewService) Update(ctx context.Context, reviewID string, input UpdateReviewInput) (*domain.Review, error) {
	if err := s.validator.Validate(input); err != nil {
		return nil, err
	}

	review, err := s.store.GetReview(ctx, reviewID)
	if err != nil {
		if errors.Is(err, store.ErrReviewNotFound) {
			return nil, domainerrors.NotFound("review not found")
		}
		return nil, domainerrors.Internal("review lookup failed").WithCause(err)
	}

	review.Rating = input.Rating
	review.Text = input.Text
	review.Public = input.Public
	if err := s.store.UpdateReview(ctx, review); err != nil {
		return nil, domainerrors.Internal("review update failed").WithCause(err)
	}

	return review, nil
}

// Delete removes a review.
func (s *ReviewService) Delete(ctx context.Context, reviewID string) error {
	err := s.store.DeleteReview(ctx, reviewID)
	if errors.Is(err, store.ErrReviewNotFound) {
		return domainerrors.NotFound("review not found")
	}
	if err != nil {
		return domainerrors.Internal("review deletion failed").WithCause(err)
	}
	return nil
}

// ListByProfile returns all of a profile's reviews, public or not.
func (s *ReviewService) ListByProfile(ctx context.Context, profileID string) ([]*domain.Review, error) {
	reviews, err := s.store.ListReviewsByProfile(ctx, profileID)
	if err != nil {
		return nil, domainerrors.Internal("review listing failed").WithCause(err)
	}
	return reviews, nil
}

// ListPublicByContent returns the public reviews of a content record.
func (s *ReviewService) ListPublicByContent(ctx context.Context, contentID string) ([]*domain.Review, error) {
	reviews, err := s.store.ListReviewsByContent(ctx, contentID)
	if err != nil {
		return nil, domainerrors.Internal("review listing failed").WithCause(err)
	}

	public := make([]*domain.Review, 0, len(reviews))
	for _, review := range reviews {
		if review.Public {
			public = append(public, review)
		}
	}
	return public, nil
}

// CountByContent counts a content record's reviews.
func (s *ReviewService) CountByContent(ctx context.Context, contentID string) (int, error) {
	count, err := s.store.CountReviewsByContent(ctx, contentID)
	if err != nil {
		return 0, domainerrors.Internal("review count failed").WithCause(err)
	}
	return count, nil
}
