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

// CreateProfileInput is the payload for creating a viewing profile.
type CreateProfileInput struct {
	UserID      string `json:"user_id" validate:"required"`
	Name        string `json:"name" validate:"required,min=1,max=30"`
	AvatarColor string `json:"avatar_color" validate:"max=16"`
}

// UpdateProfileInput is the payload for renaming a profile.
type UpdateProfileInput struct {
	Name        string `json:"name" validate:"required,min=1,max=30"`
	AvatarColor string `json:"avatar_color" validate:"max=16"`
}

// ProfileService is thin CRUD over viewing profiles.
type ProfileService struct {
	store     *store.Store
	validator *validation.Validator
	logger    *slog.Logger
}

// NewProfileService creates a new profile service.
func NewProfileService(store *store.Store, validator *validation.Validator, logger *slog.Logger) *ProfileService {
	return &ProfileService{
		store:     store,
		validator: validator,
		logger:    logger,
	}
}

// Create adds a profile under a user, enforcing the per-user cap.
func (s *ProfileService) Create(ctx context.Context, input CreateProfileInput) (*domain.Profile, error) {
	if err := s.validator.Validate(input); err != nil {
		return nil, err
	}

	if _, err := s.store.GetUser(ctx, input.UserID); err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return nil, domainerrors.NotFound("user not found")
		}
		return nil, domainerrors.Internal("user lookup failed").WithCause(err)
	}

	profile := &domain.Profile{
		UserID:      input.UserID,
		Name:        input.Name,
		AvatarColor: input.AvatarColor,
	}
	if err := s.store.CreateProfile(ctx, profile); err != nil {
		if errors.Is(err, store.ErrTooManyProfiles) {
			return nil, domainerrors.Conflict(err.Error())
		}
		return nil, domainerrors.Internal("profile creation failed").WithCause(err)
	}

	return profile, nil
}

// Get retrieves a profile by ID.
func (s *ProfileService) Get(ctx context.Context, profileID string) (*domain.Profile, error) {
	profile, err := s.store.GetProfile(ctx, profileID)
	if errors.Is(err, store.ErrProfileNotFound) {
		return nil, domainerrors.NotFound("profile not found")
	}
	if err != nil {
		return nil, domainerrors.Internal("profile lookup failed").WithCause(err)
	}
	return profile, nil
}

// Update renames a profile.
func (s *ProfileService) Update(ctx context.Context, profileID string, input UpdateProfileInput) (*domain.Profile, error) {
	if err := s.validator.Validate(input); err != nil {
		return nil, err
	}

	profile, err := s.Get(ctx, profileID)
	if err != nil {
		return nil, err
	}

	profile.Name = input.Name
	profile.AvatarColor = input.AvatarColor
	if err := s.store.UpdateProfile(ctx, profile); err != nil {
		return nil, domainerrors.Internal("profile update failed").WithCause(err)
	}
	return profile, nil
}

// Delete removes a profile.
func (s *ProfileService) Delete(ctx context.Context, profileID string) error {
	err := s.store.DeleteProfile(ctx, profileID)
	if errors.Is(err, store.ErrProfileNotFound) {
		return domainerrors.NotFound("profile not found")
	}
	if err != nil {
		return domainerrors.Internal("profile deletion failed").WithCause(err)
	}
	return nil
}

// ListByUser returns a user's profiles.
func (s *ProfileService) ListByUser(ctx context.Context, userID string) ([]*domain.Profile, error) {
	profiles, err := s.store.ListProfilesByUser(ctx, userID)
	if err != nil {
		return nil, domainerrors.Internal("profile listing failed").WithCause(err)
	}
	return profiles, nil
}
