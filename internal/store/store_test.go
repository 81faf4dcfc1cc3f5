package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/reelhubapp/reelhub-server/internal/domain"
	"github.com/stretchr/testify/require"
)

// setupTestStore creates a temporary store for testing
func setupTestStore(t *testing.T) (*Store, func()) {
	t.Helper()

	// Create temp directory for test database
	tmpDir, err := os.MkdirTemp("", "reelhub-test-*")
	require.NoError(t, err)

	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := New(dbPath, nil)
	require.NoError(t, err)
	require.NotNil(t, store)

	// Return cleanup function
	cleanup := func() {
		store.Close()
		os.RemoveAll(tmpDir)
	}

	return store, cleanup
}

// Helper to build a test content record
func testContentRecord(providerID int64, kind domain.MediaKind) *domain.ContentRecord {
	return &domain.ContentRecord{
		ProviderID:  providerID,
		Kind:        kind,
		Title:       "Test Title",
		Overview:    "A test overview",
		Popularity:  42.5,
		VoteAverage: 7.1,
		GenreIDs:    []int{28, 53},
		ReleaseDate: "2023-03-22",
	}
}

// Helper to build a test review against a content record
func testReview(profileID, contentID string, rating int) *domain.Review {
	return &domain.Review{
		ProfileID: profileID,
		ContentID: contentID,
		Rating:    rating,
		Text:      "solid",
		Public:    true,
	}
}

// Guard against timestamp helpers not being applied by the store.
func requireTimestamps(t *testing.T, s domain.Syncable) {
	t.Helper()
	require.False(t, s.CreatedAt.IsZero())
	require.False(t, s.UpdatedAt.IsZero())
	require.WithinDuration(t, time.Now(), s.CreatedAt, time.Minute)
}
