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

// CreateUserInput is the payload for creating a user account.
type CreateUserInput struct {
	Email       string `json:"email" validate:"required,email"`
	DisplayName string `json:"display_name" validate:"max=60"`
}

// UserService is minimal account CRUD. Authentication lives outside this
// server; users exist so profiles have an owner.
type UserService struct {
	store     *store.Store
	validator *validation.Validator
	logger    *slog.Logger
}

// NewUserService creates a new user service.
func NewUserService(store *store.Store, validator *validation.Validator, logger *slog.Logger) *UserService {
	return &UserService{
		store:     store,
		validator: validator,
		logger:    logger,
	}
}

// Create adds a user account.
func (s *UserService) Create(ctx context.Context, input CreateUserInput) (*domain.User, error) {
	if err := s.validator.Validate(input); err != nil {
		return nil, err
	}

	user := &domain.User{
		Email:       input.Email,
		DisplayName: input.DisplayName,
	}
	if err := s.store.CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrUserExists) {
			return nil, domainerrors.AlreadyExists("user already exists for email")
		}
		return nil, domainerrors.Internal("user creation failed").WithCause(err)
	}
	return user, nil
}

// Get retrieves a user by ID.
func (s *UserService) Get(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.store.GetUser(ctx, userID)
	if errors.Is(err, store.ErrUserNotFound) {
		return nil, domainerrors.NotFound("user not found")
	}
	if err != nil {
		return nil, domainerrors.Internal("user lookup failed").WithCause(err)
	}
	return user, nil
}

// GetByEmail retrieves a user by email.
func (s *UserService) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, err := s.store.GetUserByEmail(ctx, email)
	if errors.Is(err, store.ErrUserNotFound) {
		return nil, domainerrors.NotFound("user not found")
	}
	if err != nil {
		return nil, domainerrors.Internal("user lookup failed").WithCause(err)
	}
	return user, nil
}
