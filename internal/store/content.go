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
	contentPrefix           = "content:"
	contentByProviderPrefix = "idx:content:provider:"
)

var (
	ErrContentNotFound = errors.New("content not found")
	ErrContentExists   = errors.New("content already exists for provider id")
)

// providerIndexKey builds the unique index key for a (kind, providerID) pair.
func providerIndexKey(kind domain.MediaKind, providerID int64) []byte {
	return []byte(fmt.Sprintf("%s%s:%d", contentByProviderPrefix, kind, providerID))
}

// CreateContent persists a new content record, assigning its local ID.
// The provider index is checked and written in the same transaction, so at
// most one record exists per (provider ID, kind) pair; a concurrent creator
// loses with ErrContentExists (or a Badger conflict) and should retry the
// lookup.
func (s *Store) CreateContent(ctx context.Context, record *domain.ContentRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if record.ID == "" {
		record.ID = id.MustGenerate("cnt")
	}
	record.InitTimestamps()

	key := []byte(contentPrefix + record.ID)
	idxKey := providerIndexKey(record.Kind, record.ProviderID)

	err := s.db.Update(func(txn *badger.Txn) error {
		// Uniqueness check inside the transaction.
		_, err := txn.Get(idxKey)
		if err == nil {
			return ErrContentExists
		}
		if !errors.Is(err, badger.ErrKeyNotFound) {
			return err
		}

		data, err := json.Marshal(record)
		if err != nil {
			return fmt.Errorf("marshal content: %w", err)
		}

		if err := txn.Set(key, data); err != nil {
			return err
		}
		return txn.Set(idxKey, []byte(record.ID))
	})
	if err != nil {
		if errors.Is(err, ErrContentExists) || errors.Is(err, badger.ErrConflict) {
			return ErrContentExists
		}
		return fmt.Errorf("create content: %w", err)
	}

	if s.logger != nil {
		s.logger.LogAttrs(ctx, slog.LevelInfo, "content record created",
			slog.String("id", record.ID),
			slog.Int64("provider_id", record.ProviderID),
			slog.String("kind", string(record.Kind)),
			slog.String("title", record.Title),
		)
	}
	return nil
}

// GetContent retrieves a content record by local ID.
func (s *Store) GetContent(ctx context.Context, contentID string) (*domain.ContentRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var record domain.ContentRecord
	err := s.get([]byte(contentPrefix+contentID), &record)
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, ErrContentNotFound
		}
		return nil, fmt.Errorf("get content: %w", err)
	}
	return &record, nil
}

// GetContentByProvider retrieves a content record by its provider identity.
func (s *Store) GetContentByProvider(ctx context.Context, kind domain.MediaKind, providerID int64) (*domain.ContentRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var contentID string
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(providerIndexKey(kind, providerID))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			contentID = string(val)
			return nil
		})
	})
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, ErrContentNotFound
		}
		return nil, fmt.Errorf("get content by provider: %w", err)
	}

	return s.GetContent(ctx, contentID)
}

// ListContent returns every content record. The catalog is small (records
// exist only for titles somebody referenced), so a full scan is fine.
func (s *Store) ListContent(ctx context.Context) ([]*domain.ContentRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var records []*domain.ContentRecord
	prefix := []byte(contentPrefix)

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix

		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()

			err := item.Value(func(val []byte) error {
				var record domain.ContentRecord
				if err := json.Unmarshal(val, &record); err != nil {
					return err
				}
				records = append(records, &record)
				return nil
			})
			if err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list content: %w", err)
	}

	return records, nil
}
