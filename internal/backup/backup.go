package backup

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/reelhubapp/reelhub-server/internal/store"
)

// fileSuffix marks backup files created by this service. Anything else
// in the backup directory is ignored.
const fileSuffix = ".reelhub.bak"

// Info describes a single backup file on disk.
type Info struct {
	ID        string    `json:"id"`
	Path      string    `json:"path"`
	Size      int64     `json:"size"`
	CreatedAt time.Time `json:"created_at"`
}

// Service manages backup creation, listing, and restore.
type Service struct {
	store     *store.Store
	backupDir string
	logger    *slog.Logger
}

// New creates a backup Service writing into backupDir.
func New(s *store.Store, backupDir string, logger *slog.Logger) *Service {
	return &Service{
		store:     s,
		backupDir: backupDir,
		logger:    logger,
	}
}

// Create streams a full database snapshot into a new timestamped file
// and returns its metadata.
func (s *Service) Create(ctx context.Context) (*Info, error) {
	if err := os.MkdirAll(s.backupDir, 0o755); err != nil {
		return nil, fmt.Errorf("create backup dir: %w", err)
	}

	timestamp := time.Now().Format("2006-01-02-150405")
	id := fmt.Sprintf("backup-%s", timestamp)
	path := filepath.Join(s.backupDir, id+fileSuffix)

	start := time.Now()
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create backup file: %w", err)
	}

	version, err := s.store.Backup(f)
	if err != nil {
		f.Close()
		os.Remove(path)
		return nil, fmt.Errorf("write backup: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return nil, fmt.Errorf("close backup file: %w", err)
	}

	stat, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	if s.logger != nil {
		s.logger.Info("backup complete",
			"path", path,
			"size", stat.Size(),
			"version", version,
			"duration", time.Since(start))
	}

	return &Info{
		ID:        id,
		Path:      path,
		Size:      stat.Size(),
		CreatedAt: stat.ModTime(),
	}, nil
}

// List returns all available backups, newest first.
func (s *Service) List(ctx context.Context) ([]Info, error) {
	entries, err := os.ReadDir(s.backupDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var backups []Info
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), fileSuffix) {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			continue
		}

		backups = append(backups, Info{
			ID:        strings.TrimSuffix(entry.Name(), fileSuffix),
			Path:      filepath.Join(s.backupDir, entry.Name()),
			Size:      info.Size(),
			CreatedAt: info.ModTime(),
		})
	}

	sort.Slice(backups, func(i, j int) bool {
		return backups[i].CreatedAt.After(backups[j].CreatedAt)
	})

	return backups, nil
}

// Get returns a backup by ID.
func (s *Service) Get(ctx context.Context, id string) (*Info, error) {
	path := filepath.Join(s.backupDir, id+fileSuffix)

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrBackupNotFound
		}
		return nil, err
	}

	return &Info{
		ID:        id,
		Path:      path,
		Size:      info.Size(),
		CreatedAt: info.ModTime(),
	}, nil
}

// Delete removes a backup file.
func (s *Service) Delete(ctx context.Context, id string) error {
	path := filepath.Join(s.backupDir, id+fileSuffix)

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return ErrBackupNotFound
		}
		return err
	}

	return os.Remove(path)
}

// Restore loads a snapshot back into the database. Keys present in the
// snapshot overwrite current values; keys written after the snapshot
// was taken are left untouched.
func (s *Service) Restore(ctx context.Context, id string) error {
	path := filepath.Join(s.backupDir, id+fileSuffix)

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return ErrBackupNotFound
		}
		return err
	}
	defer f.Close()

	if s.logger != nil {
		s.logger.Info("restoring backup", "id", id)
	}
	if err := s.store.Load(f); err != nil {
		return fmt.Errorf("restore backup: %w", err)
	}
	return nil
}
