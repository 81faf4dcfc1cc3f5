package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/reelhubapp/reelhub-server/internal/backup"
)

func (s *Server) registerAdminRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID:   "createBackup",
		Method:        http.MethodPost,
		Path:          "/api/v1/admin/backups",
		Summary:       "Create backup",
		Description:   "Writes a full database snapshot to the backup directory",
		Tags:          []string{"Admin"},
		DefaultStatus: http.StatusCreated,
	}, s.handleCreateBackup)

	huma.Register(s.api, huma.Operation{
		OperationID: "listBackups",
		Method:      http.MethodGet,
		Path:        "/api/v1/admin/backups",
		Summary:     "List backups",
		Tags:        []string{"Admin"},
	}, s.handleListBackups)

	huma.Register(s.api, huma.Operation{
		OperationID:   "deleteBackup",
		Method:        http.MethodDelete,
		Path:          "/api/v1/admin/backups/{id}",
		Summary:       "Delete backup",
		Tags:          []string{"Admin"},
		DefaultStatus: http.StatusNoContent,
	}, s.handleDeleteBackup)

	huma.Register(s.api, huma.Operation{
		OperationID: "restoreBackup",
		Method:      http.MethodPost,
		Path:        "/api/v1/admin/backups/{id}/restore",
		Summary:     "Restore backup",
		Description: "Loads a snapshot back into the database, overwriting current values",
		Tags:        []string{"Admin"},
	}, s.handleRestoreBackup)
}

// === DTOs ===

type BackupResponse struct {
	ID        string    `json:"id" doc:"Backup ID"`
	Size      int64     `json:"size" doc:"File size in bytes"`
	CreatedAt time.Time `json:"created_at"`
}

type BackupOutput struct {
	Body BackupResponse
}

type BackupListResponse struct {
	Backups []BackupResponse `json:"backups"`
}

type BackupListOutput struct {
	Body BackupListResponse
}

type BackupIDInput struct {
	ID string `path:"id" doc:"Backup ID"`
}

type RestoreBackupOutput struct {
	Body struct {
		Restored string `json:"restored" doc:"ID of the restored backup"`
	}
}

// === Handlers ===

func (s *Server) handleCreateBackup(ctx context.Context, _ *struct{}) (*BackupOutput, error) {
	info, err := s.services.Backup.Create(ctx)
	if err != nil {
		return nil, huma.Error500InternalServerError("backup failed", err)
	}
	return &BackupOutput{Body: mapBackup(info)}, nil
}

func (s *Server) handleListBackups(ctx context.Context, _ *struct{}) (*BackupListOutput, error) {
	backups, err := s.services.Backup.List(ctx)
	if err != nil {
		return nil, huma.Error500InternalServerError("list backups failed", err)
	}

	resp := BackupListResponse{Backups: make([]BackupResponse, 0, len(backups))}
	for i := range backups {
		resp.Backups = append(resp.Backups, mapBackup(&backups[i]))
	}
	return &BackupListOutput{Body: resp}, nil
}

func (s *Server) handleDeleteBackup(ctx context.Context, input *BackupIDInput) (*struct{}, error) {
	if err := s.services.Backup.Delete(ctx, input.ID); err != nil {
		if errors.Is(err, backup.ErrBackupNotFound) {
			return nil, huma.Error404NotFound("backup not found")
		}
		return nil, huma.Error500InternalServerError("delete backup failed", err)
	}
	return nil, nil
}

func (s *Server) handleRestoreBackup(ctx context.Context, input *BackupIDInput) (*RestoreBackupOutput, error) {
	if err := s.services.Backup.Restore(ctx, input.ID); err != nil {
		if errors.Is(err, backup.ErrBackupNotFound) {
			return nil, huma.Error404NotFound("backup not found")
		}
		return nil, huma.Error500InternalServerError("restore failed", err)
	}

	out := &RestoreBackupOutput{}
	out.Body.Restored = input.ID
	return out, nil
}

// === Mappers ===

func mapBackup(info *backup.Info) BackupResponse {
	return BackupResponse{
		ID:        info.ID,
		Size:      info.Size,
		CreatedAt: info.CreatedAt,
	}
}
