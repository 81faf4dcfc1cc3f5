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
	reviewPrefix          = "review:"
	reviewByProfilePrefix = "idx:review:profile:"
	reviewByContentPrefix = "idx:review:content:"
)

var (
	ErrReviewNotFound = errors.New("review not found")
	ErrReviewExists   = errors.New("profile already reviewed this content")
)

func reviewProfileIndexKey(profileID, reviewID string) []byte {
	return []byte(reviewByProfilePrefix + profileID + ":" + reviewID)
}

func reviewContentIndexKey(contentID, reviewID string) []byte {
	return []byte(reviewByContentPrefix + contentID + ":" + reviewID)
}

// reviewPairIndexKey enforces one review per (profile, content) pair.
func reviewPairIndexKey(profileID, contentID string) []byte {
	return []byte("idx:review:pair:" + profileID + ":" + contentID)
}

// CreateReview persists a new review, assigning its local ID.
// A profile can hold at most one review per content record.
func (s *Store) CreateReview(ctx context.Context, review *domain.Review) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if review.ID == "" {
		review.ID = id.MustGenerate("rev")
	}
	review.InitTimestamps()

	key := []byte(reviewPrefix + review.ID)
	pairKey := reviewPairIndexKey(review.ProfileID, review.ContentID)

	err := s.db.Update(func(txn *badger.Txn) error {
		_, err := txn.Get(pairKey)
		if err == nil {
			return ErrReviewExists
		}
		if !errors.Is(err, badger.ErrKeyNotFound) {
			return err
		}

		data, err := json.Marshal(review)
		if err != nil {
			return fmt.Errorf("marshal review: %w", err)
		}

		if err := txn.Set(key, data); err != nil {
			return err
		}
		if err := txn.Set(reviewProfileIndexKey(review.ProfileID, review.ID), []byte(review.ID)); err != nil {
			return err
		}
		if err := txn.Set(reviewContentIndexKey(review.ContentID, review.ID), []byte(review.ID)); err != nil {
			return err
		}
		return txn.Set(pairKey, []byte(review.ID))
	})
	if err != nil {
		if errors.Is(err, ErrReviewExists) {
			return ErrReviewExists
		}
		return fmt.Errorf("create review: %w", err)
	}

	if s.logger != nil {
		s.logger.LogAttrs(ctx, slog.LevelInfo, "review created",
			slog.String("id", review.ID),
			slog.String("profile_id", review.ProfileID),
			slog.String("content_id", review.ContentID),
			slog.Int("rating", review.Rating),
		)
	}
	return nil
}

// GetReview retrieves a review by ID.
func (s *Store) GetReview(ctx context.Context, reviewID string) (*domain.Review, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var review domain.Review
	err := s.get([]byte(reviewPrefix+reviewID), &review)
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, fmt.Errorf("get review: %w", err)
	}
	return &review, nil
}

// UpdateReview updates an existing review's rating, text, and public flag.
func (s *Store) UpdateReview(ctx context.Context, review *domain.Review) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	existing, err := s.GetReview(ctx, review.ID)
	if err != nil {
		return err
	}

	// Profile and content associations are immutable.
	review.ProfileID = existing.ProfileID
	review.ContentID = existing.ContentID
	review.CreatedAt = existing.CreatedAt
	review.Touch()

	if err := s.set([]byte(reviewPrefix+review.ID), review); err != nil {
		return fmt.Errorf("update review: %w", err)
	}
	return nil
}

// DeleteReview removes a review and its indexes.
func (s *Store) DeleteReview(ctx context.Context, reviewID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	review, err := s.GetReview(ctx, reviewID)
	if err != nil {
		return err
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		if err := txn.Delete([]byte(reviewPrefix + reviewID)); err != nil {
			return err
		}
		if err := txn.Delete(reviewProfileIndexKey(review.ProfileID, reviewID)); err != nil {
			return err
		}
		if err := txn.Delete(reviewContentIndexKey(review.ContentID, reviewID)); err != nil {
			return err
		}
		return txn.Delete(reviewPairIndexKey(review.ProfileID, review.ContentID))
	})
	if err != nil {
		return fmt.Errorf("delete review: %w", err)
	}
	return nil
}

// ListReviewsByProfile returns all reviews written by a profile.
func (s *Store) ListReviewsByProfile(ctx context.Context, profileID string) ([]*domain.Review, error) {
	return s.listReviewsByIndex(ctx, []byte(reviewByProfilePrefix+profileID+":"))
}

// ListReviewsByContent returns all reviews of a content record.
func (s *Store) ListReviewsByContent(ctx context.Context, contentID string) ([]*domain.Review, error) {
	return s.listReviewsByIndex(ctx, []byte(reviewByContentPrefix+contentID+":"))
}

// CountReviewsByContent counts reviews of a content record without loading
// them.
func (s *Store) CountReviewsByContent(ctx context.Context, contentID string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	prefix := []byte(reviewByContentPrefix + contentID + ":")
	var count int
	err := s.db.View(func(txn *badger.Txn) error {
		count = countPrefix(txn, prefix)
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("count reviews: %w", err)
	}
	return count, nil
}

// listReviewsByIndex loads reviews by walking an index prefix.
func (s *Store) listReviewsByIndex(ctx context.Context, prefix []byte) ([]*domain.Review, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var reviewIDs []string
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix

		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(val []byte) error {
				reviewIDs = append(reviewIDs, string(val))
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}

	reviews := make([]*domain.Review, 0, len(reviewIDs))
	for _, reviewID := range reviewIDs {
		review, err := s.GetReview(ctx, reviewID)
		if err != nil {
			return nil, err
		}
		reviews = append(reviews, review)
	}
	return reviews, nil
}
