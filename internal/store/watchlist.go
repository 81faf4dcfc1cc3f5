package store

import (
	"context"
	"errors"
	"fmt"
	"github.com/go-json-experiment/json"

	"github.com/dgraph-io/badger/v4"
	"github.com/reelhubapp/reelhub-server/internal/domain"
	"github.com/reelhubapp/reelhub-server/internal/id"
)

const watchlistPrefix = "watchlist:"

var (
	ErrWatchlistItemNotFound = errors.New("watchlist item not found")
	ErrWatchlistItemExists   = errors.New("content already on watchlist")
)

// watchlistKey is composite: one entry per (profile, content) pair, and a
// profile's list is a single prefix scan.
func watchlistKey(profileID, contentID string) []byte {
	return []byte(watchlistPrefix + profileID + ":" + contentID)
}

// AddWatchlistItem saves a content record to a profile's watchlist.
func (s *Store) AddWatchlistItem(ctx context.Context, item *domain.WatchlistItem) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if item.ID == "" {
		item.ID = id.MustGenerate("wl")
	}
	item.InitTimestamps()

	key := watchlistKey(item.ProfileID, item.ContentID)

	err := s.db.Update(func(txn *badger.Txn) error {
		_, err := txn.Get(key)
		if err == nil {
			return ErrWatchlistItemExists
		}
		if !errors.Is(err, badger.ErrKeyNotFound) {
			return err
		}

		data, err := json.Marshal(item)
		if err != nil {
			return fmt.Errorf("marshal watchlist item: %w", err)
		}
		return txn.Set(key, data)
	})
	if err != nil {
		if errors.Is(err, ErrWatchlistItemExists) {
			return ErrWatchlistItemExists
		}
		return fmt.Errorf("add watchlist item: %w", err)
	}
	return nil
}

// RemoveWatchlistItem removes a content record from a profile's watchlist.
func (s *Store) RemoveWatchlistItem(ctx context.Context, profileID, contentID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	key := watchlistKey(profileID, contentID)

	exists, err := s.exists(key)
	if err != nil {
		return fmt.Errorf("check watchlist item: %w", err)
	}
	if !exists {
		return ErrWatchlistItemNotFound
	}

	if err := s.delete(key); err != nil {
		return fmt.Errorf("remove watchlist item: %w", err)
	}
	return nil
}

// WatchlistContains reports whether a profile has saved a content record.
func (s *Store) WatchlistContains(ctx context.Context, profileID, contentID string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	return s.exists(watchlistKey(profileID, contentID))
}

// ListWatchlist returns a profile's watchlist entries in insertion-key order.
func (s *Store) ListWatchlist(ctx context.Context, profileID string) ([]*domain.WatchlistItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var items []*domain.WatchlistItem
	prefix := []byte(watchlistPrefix + profileID + ":")

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix

		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(val []byte) error {
				var item domain.WatchlistItem
				if err := json.Unmarshal(val, &item); err != nil {
					return err
				}
				items = append(items, &item)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list watchlist: %w", err)
	}

	return items, nil
}
