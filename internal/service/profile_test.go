package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/reelhubapp/reelhub-server/internal/domain"
	domainerrors "github.com/reelhubapp/reelhub-server/internal/errors"
	"github.com/reelhubapp/reelhub-server/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestProfile(t *testing.T) (*ProfileService, *store.Store, func()) {
	t.Helper()

	testStore, cleanup := setupTestStoreForService(t)
	svc := NewProfileService(testStore, testValidator(), testLogger())
	return svc, testStore, cleanup
}

func TestProfileService_CreateAndGet(t *testing.T) {
	svc, testStore, cleanup := setupTestProfile(t)
	defer cleanup()

	ctx := context.Background()
	user := &domain.User{Email: "owner@test.com"}
	require.NoError(t, testStore.CreateUser(ctx, user))

	profile, err := svc.Create(ctx, CreateProfileInput{
		UserID:      user.ID,
		Name:        "Kids",
		AvatarColor: "#ff8800",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, profile.ID)

	found, err := svc.Get(ctx, profile.ID)
	require.NoError(t, err)
	assert.Equal(t, "Kids", found.Name)
	assert.Equal(t, "#ff8800", found.AvatarColor)
}

func TestProfileService_CreateUnknownUser(t *testing.T) {
	svc, _, cleanup := setupTestProfile(t)
	defer cleanup()

	_, err := svc.Create(context.Background(), CreateProfileInput{
		UserID: "usr-missing",
		Name:   "Ghost",
	})
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestProfileService_CreateValidation(t *testing.T) {
	svc, _, cleanup := setupTestProfile(t)
	defer cleanup()

	_, err := svc.Create(context.Background(), CreateProfileInput{UserID: "usr-1"})
	assert.ErrorIs(t, err, domainerrors.ErrValidation)

	_, err = svc.Create(context.Background(), CreateProfileInput{
		UserID: "usr-1",
		Name:   "a name well beyond the thirty character cap",
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidation)
}

func TestProfileService_CreateCapConflict(t *testing.T) {
	svc, testStore, cleanup := setupTestProfile(t)
	defer cleanup()

	ctx := context.Background()
	user := &domain.User{Email: "crowded@test.com"}
	require.NoError(t, testStore.CreateUser(ctx, user))

	for i := 0; i < domain.MaxProfilesPerUser; i++ {
		_, err := svc.Create(ctx, CreateProfileInput{
			UserID: user.ID,
			Name:   fmt.Sprintf("Profile %d", i),
		})
		require.NoError(t, err)
	}

	_, err := svc.Create(ctx, CreateProfileInput{UserID: user.ID, Name: "One Too Many"})
	assert.ErrorIs(t, err, domainerrors.ErrConflict)
}

func TestProfileService_UpdateDeleteList(t *testing.T) {
	svc, testStore, cleanup := setupTestProfile(t)
	defer cleanup()

	ctx := context.Background()
	user := &domain.User{Email: "owner@test.com"}
	require.NoError(t, testStore.CreateUser(ctx, user))

	first, err := svc.Create(ctx, CreateProfileInput{UserID: user.ID, Name: "First"})
	require.NoError(t, err)
	second, err := svc.Create(ctx, CreateProfileInput{UserID: user.ID, Name: "Second"})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, first.ID, UpdateProfileInput{Name: "Renamed"})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Name)
	assert.Equal(t, user.ID, updated.UserID)

	require.NoError(t, svc.Delete(ctx, second.ID))
	profiles, err := svc.ListByUser(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, profiles, 1)
	assert.Equal(t, first.ID, profiles[0].ID)

	err = svc.Delete(ctx, second.ID)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}
