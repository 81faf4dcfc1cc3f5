package service

import (
	"context"
	"testing"

	"github.com/reelhubapp/reelhub-server/internal/domain"
	domainerrors "github.com/reelhubapp/reelhub-server/internal/errors"
	"github.com/reelhubapp/reelhub-server/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestWatchlist(t *testing.T, provider *stubProvider) (*WatchlistService, *store.Store, func()) {
	t.Helper()

	testStore, cleanup := setupTestStoreForService(t)
	logger := testLogger()
	reconcile := NewReconcileService(testStore, logger)
	svc := NewWatchlistService(testStore, provider, reconcile, logger)
	return svc, testStore, cleanup
}

func TestWatchlistService_AddReconcilesContent(t *testing.T) {
	svc, testStore, cleanup := setupTestWatchlist(t, echoDetailProvider())
	defer cleanup()

	ctx := context.Background()
	profileID := createTestProfile(t, testStore)

	item, err := svc.Add(ctx, profileID, domain.KindSeries, 100088)
	require.NoError(t, err)
	assert.NotEmpty(t, item.ID)
	assert.Equal(t, profileID, item.ProfileID)

	record, err := testStore.GetContentByProvider(ctx, domain.KindSeries, 100088)
	require.NoError(t, err)
	assert.Equal(t, record.ID, item.ContentID)

	contains, err := svc.Contains(ctx, profileID, record.ID)
	require.NoError(t, err)
	assert.True(t, contains)
}

func TestWatchlistService_AddDuplicate(t *testing.T) {
	svc, testStore, cleanup := setupTestWatchlist(t, echoDetailProvider())
	defer cleanup()

	ctx := context.Background()
	profileID := createTestProfile(t, testStore)

	_, err := svc.Add(ctx, profileID, domain.KindMovie, 603692)
	require.NoError(t, err)

	_, err = svc.Add(ctx, profileID, domain.KindMovie, 603692)
	assert.ErrorIs(t, err, domainerrors.ErrAlreadyExists)
}

func TestWatchlistService_AddUnknownProfile(t *testing.T) {
	svc, _, cleanup := setupTestWatchlist(t, echoDetailProvider())
	defer cleanup()

	_, err := svc.Add(context.Background(), "prof-missing", domain.KindMovie, 1)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestWatchlistService_RemoveAndList(t *testing.T) {
	svc, testStore, cleanup := setupTestWatchlist(t, echoDetailProvider())
	defer cleanup()

	ctx := context.Background()
	profileID := createTestProfile(t, testStore)

	first, err := svc.Add(ctx, profileID, domain.KindMovie, 1)
	require.NoError(t, err)
	second, err := svc.Add(ctx, profileID, domain.KindSeries, 2)
	require.NoError(t, err)

	entries, err := svc.List(ctx, profileID)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	for _, entry := range entries {
		assert.NotNil(t, entry.Content)
		assert.Equal(t, entry.Item.ContentID, entry.Content.ID)
	}

	require.NoError(t, svc.Remove(ctx, profileID, first.ContentID))
	entries, err = svc.List(ctx, profileID)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, second.ContentID, entries[0].Item.ContentID)

	err = svc.Remove(ctx, profileID, first.ContentID)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}
