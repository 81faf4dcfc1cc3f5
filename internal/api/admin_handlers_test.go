package api

import (
	"context"
	"github.com/go-json-experiment/json"
	"net/http"
	"testing"

	"github.com/reelhubapp/reelhub-server/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBackupEndpoints(t *testing.T) {
	ts := setupTestServer(t, &stubProvider{})
	defer ts.cleanup()

	record := &domain.ContentRecord{ProviderID: 27205, Kind: domain.KindMovie, Title: "Inception"}
	require.NoError(t, ts.store.CreateContent(context.Background(), record))

	resp := ts.api.Post("/api/v1/admin/backups")
	require.Equal(t, http.StatusCreated, resp.Code)

	var created BackupResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &created))
	assert.NotEmpty(t, created.ID)
	assert.Greater(t, created.Size, int64(0))

	resp = ts.api.Get("/api/v1/admin/backups")
	require.Equal(t, http.StatusOK, resp.Code)

	var list BackupListResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &list))
	require.Len(t, list.Backups, 1)
	assert.Equal(t, created.ID, list.Backups[0].ID)

	resp = ts.api.Post("/api/v1/admin/backups/" + created.ID + "/restore")
	assert.Equal(t, http.StatusOK, resp.Code)

	resp = ts.api.Delete("/api/v1/admin/backups/" + created.ID)
	assert.Equal(t, http.StatusNoContent, resp.Code)

	resp = ts.api.Delete("/api/v1/admin/backups/" + created.ID)
	assert.Equal(t, http.StatusNotFound, resp.Code)

	var apiErr APIError
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &apiErr))
	assert.Equal(t, "NOT_FOUND", apiErr.Code)
}

func TestRestoreBackup_NotFound(t *testing.T) {
	ts := setupTestServer(t, &stubProvider{})
	defer ts.cleanup()

	resp := ts.api.Post("/api/v1/admin/backups/backup-1999-01-01-000000/restore")
	assert.Equal(t, http.StatusNotFound, resp.Code)
}
