package service

import (
	"context"
	"testing"

	"github.com/reelhubapp/reelhub-server/internal/domain"
	domainerrors "github.com/reelhubapp/reelhub-server/internal/errors"
	"github.com/reelhubapp/reelhub-server/internal/metadata/tmdb"
	"github.com/reelhubapp/reelhub-server/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestReview(t *testing.T, provider *stubProvider) (*ReviewService, *store.Store, func()) {
	t.Helper()

	testStore, cleanup := setupTestStoreForService(t)
	logger := testLogger()
	reconcile := NewReconcileService(testStore, logger)
	svc := NewReviewService(testStore, provider, reconcile, testValidator(), logger)
	return svc, testStore, cleanup
}

func echoDetailProvider() *stubProvider {
	return &stubProvider{
		details: func(kind domain.MediaKind, providerID int64) (tmdb.Detail, error) {
			return detailFromRecord(&domain.ContentRecord{
				ProviderID: providerID,
				Kind:       kind,
				Title:      "Stub Title",
			}, 28), nil
		},
	}
}

func TestReviewService_CreateReconcilesContent(t *testing.T) {
	svc, testStore, cleanup := setupTestReview(t, echoDetailProvider())
	defer cleanup()

	ctx := context.Background()
	profileID := createTestProfile(t, testStore)

	review, err := svc.Create(ctx, CreateReviewInput{
		ProfileID:  profileID,
		Kind:       "movie",
		ProviderID: 603692,
		Rating:     5,
		Text:       "Great action",
		Public:     true,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, review.ID)
	assert.Equal(t, 5, review.Rating)

	// The reviewed title was materialized as a local record.
	record, err := testStore.GetContentByProvider(ctx, domain.KindMovie, 603692)
	require.NoError(t, err)
	assert.Equal(t, record.ID, review.ContentID)
	assert.Equal(t, "Stub Title", record.Title)
	assert.Equal(t, profileID, record.CreatedBy)
}

func TestReviewService_CreateDuplicate(t *testing.T) {
	svc, testStore, cleanup := setupTestReview(t, echoDetailProvider())
	defer cleanup()

	ctx := context.Background()
	profileID := createTestProfile(t, testStore)

	input := CreateReviewInput{ProfileID: profileID, Kind: "series", ProviderID: 100088, Rating: 4}
	_, err := svc.Create(ctx, input)
	require.NoError(t, err)

	_, err = svc.Create(ctx, input)
	assert.ErrorIs(t, err, domainerrors.ErrAlreadyExists)
}

func TestReviewService_CreateValidation(t *testing.T) {
	svc, testStore, cleanup := setupTestReview(t, echoDetailProvider())
	defer cleanup()

	profileID := createTestProfile(t, testStore)

	tests := []struct {
		name  string
		input CreateReviewInput
	}{
		{"missing profile", CreateReviewInput{Kind: "movie", ProviderID: 1, Rating: 3}},
		{"bad kind", CreateReviewInput{ProfileID: profileID, Kind: "documentary", ProviderID: 1, Rating: 3}},
		{"zero provider id", CreateReviewInput{ProfileID: profileID, Kind: "movie", Rating: 3}},
		{"rating too low", CreateReviewInput{ProfileID: profileID, Kind: "movie", ProviderID: 1}},
		{"rating too high", CreateReviewInput{ProfileID: profileID, Kind: "movie", ProviderID: 1, Rating: 6}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tt.input)
			assert.ErrorIs(t, err, domainerrors.ErrValidation)
		})
	}
}

func TestReviewService_CreateUnknownProfile(t *testing.T) {
	svc, _, cleanup := setupTestReview(t, echoDetailProvider())
	defer cleanup()

	_, err := svc.Create(context.Background(), CreateReviewInput{
		ProfileID:  "prof-missing",
		Kind:       "movie",
		ProviderID: 1,
		Rating:     3,
	})
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestReviewService_CreateProviderFailure(t *testing.T) {
	provider := &stubProvider{
		details: func(kind domain.MediaKind, providerID int64) (tmdb.Detail, error) {
			return nil, &tmdb.StatusError{StatusCode: 404, Message: "not found"}
		},
	}
	svc, testStore, cleanup := setupTestReview(t, provider)
	defer cleanup()

	profileID := createTestProfile(t, testStore)
	_, err := svc.Create(context.Background(), CreateReviewInput{
		ProfileID:  profileID,
		Kind:       "movie",
		ProviderID: 999,
		Rating:     3,
	})
	assert.ErrorIs(t, err, domainerrors.ErrProviderError)
}

func TestReviewService_UpdateAndDelete(t *testing.T) {
	svc, testStore, cleanup := setupTestReview(t, echoDetailProvider())
	defer cleanup()

	ctx := context.Background()
	profileID := createTestProfile(t, testStore)
	review, err := svc.Create(ctx, CreateReviewInput{
		ProfileID: profileID, Kind: "movie", ProviderID: 1, Rating: 2,
	})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, review.ID, UpdateReviewInput{Rating: 4, Text: "Grew on me", Public: true})
	require.NoError(t, err)
	assert.Equal(t, 4, updated.Rating)
	assert.Equal(t, "Grew on me", updated.Text)
	assert.True(t, updated.Public)
	assert.Equal(t, review.ContentID, updated.ContentID)

	require.NoError(t, svc.Delete(ctx, review.ID))
	err = svc.Delete(ctx, review.ID)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestReviewService_ListPublicByContent(t *testing.T) {
	svc, testStore, cleanup := setupTestReview(t, echoDetailProvider())
	defer cleanup()

	ctx := context.Background()
	profileID := createTestProfile(t, testStore)

	user := &domain.User{Email: "other@test.com"}
	require.NoError(t, testStore.CreateUser(ctx, user))
	other := &domain.Profile{UserID: user.ID, Name: "Other"}
	require.NoError(t, testStore.CreateProfile(ctx, other))

	public, err := svc.Create(ctx, CreateReviewInput{
		ProfileID: profileID, Kind: "movie", ProviderID: 1, Rating: 5, Public: true,
	})
	require.NoError(t, err)
	_, err = svc.Create(ctx, CreateReviewInput{
		ProfileID: other.ID, Kind: "movie", ProviderID: 1, Rating: 2,
	})
	require.NoError(t, err)

	listed, err := svc.ListPublicByContent(ctx, public.ContentID)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, public.ID, listed[0].ID)

	count, err := svc.CountByContent(ctx, public.ContentID)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}
