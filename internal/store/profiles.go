package store

import (
	"context"
	"errors"
	"fmt"
	"github.com/go-json-experiment/json"
	"log/slog"

	"github.com/dgraph-io/badger/v4"
	"github.com/reelhubapp/reelhub-server/internal/domain"
	"github.com/reelhubapp/reelhub-server/internal/id"
)

const (
	profilePrefix       = "profile:"
	profileByUserPrefix = "idx:profile:user:"
)

var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrTooManyProfiles = fmt.Errorf("a user can have at most %d profiles", domain.MaxProfilesPerUser)
)

func profileUserIndexKey(userID, profileID string) []byte {
	return []byte(profileByUserPrefix + userID + ":" + profileID)
}

// CreateProfile persists a new profile, assigning its local ID.
// The per-user cap is enforced inside the transaction.
func (s *Store) CreateProfile(ctx context.Context, profile *domain.Profile) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if profile.ID == "" {
		profile.ID = id.MustGenerate("prof")
	}
	profile.InitTimestamps()

	key := []byte(profilePrefix + profile.ID)
	userPrefix := []byte(profileByUserPrefix + profile.UserID + ":")

	err := s.db.Update(func(txn *badger.Txn) error {
		if countPrefix(txn, userPrefix) >= domain.MaxProfilesPerUser {
			return ErrTooManyProfiles
		}

		data, err := json.Marshal(profile)
		if err != nil {
			return fmt.Errorf("marshal profile: %w", err)
		}

		if err := txn.Set(key, data); err != nil {
			return err
		}
		return txn.Set(profileUserIndexKey(profile.UserID, profile.ID), []byte(profile.ID))
	})
	if err != nil {
		if errors.Is(err, ErrTooManyProfiles) {
			return ErrTooManyProfiles
		}
		return fmt.Errorf("create profile: %w", err)
	}

	if s.logger != nil {
		s.logger.LogAttrs(ctx, slog.LevelInfo, "profile created",
			slog.String("id", profile.ID),
			slog.String("user_id", profile.UserID),
			slog.String("name", profile.Name),
		)
	}
	return nil
}

// GetProfile retrieves a profile by ID.
func (s *Store) GetProfile(ctx context.Context, profileID string) (*domain.Profile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var profile domain.Profile
	err := s.get([]byte(profilePrefix+profileID), &profile)
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return &profile, nil
}

// UpdateProfile updates a profile's name and avatar color.
func (s *Store) UpdateProfile(ctx context.Context, profile *domain.Profile) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	existing, err := s.GetProfile(ctx, profile.ID)
	if err != nil {
		return err
	}

	// Ownership is immutable.
	profile.UserID = existing.UserID
	profile.CreatedAt = existing.CreatedAt
	profile.Touch()

	if err := s.set([]byte(profilePrefix+profile.ID), profile); err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	return nil
}

// DeleteProfile removes a profile and its user index entry.
func (s *Store) DeleteProfile(ctx context.Context, profileID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	profile, err := s.GetProfile(ctx, profileID)
	if err != nil {
		return err
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		if err := txn.Delete([]byte(profilePrefix + profileID)); err != nil {
			return err
		}
		return txn.Delete(profileUserIndexKey(profile.UserID, profileID))
	})
	if err != nil {
		return fmt.Errorf("delete profile: %w", err)
	}
	return nil
}

// ListProfilesByUser returns all profiles owned by a user.
func (s *Store) ListProfilesByUser(ctx context.Context, userID string) ([]*domain.Profile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var profileIDs []string
	prefix := []byte(profileByUserPrefix + userID + ":")

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix

		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(val []byte) error {
				profileIDs = append(profileIDs, string(val))
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}

	profiles := make([]*domain.Profile, 0, len(profileIDs))
	for _, profileID := range profileIDs {
		profile, err := s.GetProfile(ctx, profileID)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, profile)
	}
	return profiles, nil
}
