package store

import (
	"context"
	"testing"

	"github.com/reelhubapp/reelhub-server/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateContent(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	ctx := context.Background()

	record := testContentRecord(603692, domain.KindMovie)
	err := store.CreateContent(ctx, record)
	require.NoError(t, err)

	// The store assigns the local ID.
	assert.NotEmpty(t, record.ID)
	assert.Contains(t, record.ID, "cnt-")
	requireTimestamps(t, record.Syncable)

	got, err := store.GetContent(ctx, record.ID)
	require.NoError(t, err)
	assert.Equal(t, record.ID, got.ID)
	assert.Equal(t, int64(603692), got.ProviderID)
	assert.Equal(t, domain.KindMovie, got.Kind)
	assert.Equal(t, "Test Title", got.Title)
	assert.Equal(t, []int{28, 53}, got.GenreIDs)
}

func TestCreateContent_ProviderUniqueness(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	ctx := context.Background()

	first := testContentRecord(603692, domain.KindMovie)
	require.NoError(t, store.CreateContent(ctx, first))

	// Same provider ID and kind: rejected.
	dup := testContentRecord(603692, domain.KindMovie)
	err := store.CreateContent(ctx, dup)
	assert.ErrorIs(t, err, ErrContentExists)

	// Same provider ID but different kind: allowed. Provider ID spaces for
	// movies and series are independent.
	series := testContentRecord(603692, domain.KindSeries)
	require.NoError(t, store.CreateContent(ctx, series))
	assert.NotEqual(t, first.ID, series.ID)
}

func TestGetContentByProvider(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	ctx := context.Background()

	record := testContentRecord(100088, domain.KindSeries)
	require.NoError(t, store.CreateContent(ctx, record))

	got, err := store.GetContentByProvider(ctx, domain.KindSeries, 100088)
	require.NoError(t, err)
	assert.Equal(t, record.ID, got.ID)

	_, err = store.GetContentByProvider(ctx, domain.KindMovie, 100088)
	assert.ErrorIs(t, err, ErrContentNotFound)
}

func TestGetContent_NotFound(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	_, err := store.GetContent(context.Background(), "cnt-missing")
	assert.ErrorIs(t, err, ErrContentNotFound)
}

func TestListContent(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	ctx := context.Background()

	require.NoError(t, store.CreateContent(ctx, testContentRecord(1, domain.KindMovie)))
	require.NoError(t, store.CreateContent(ctx, testContentRecord(2, domain.KindMovie)))
	require.NoError(t, store.CreateContent(ctx, testContentRecord(3, domain.KindSeries)))

	records, err := store.ListContent(ctx)
	require.NoError(t, err)
	assert.Len(t, records, 3)
}
