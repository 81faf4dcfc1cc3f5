package providers

import (
	"path/filepath"

	"github.com/samber/do/v2"

	"github.com/reelhubapp/reelhub-server/internal/backup"
	"github.com/reelhubapp/reelhub-server/internal/config"
	"github.com/reelhubapp/reelhub-server/internal/logger"
	"github.com/reelhubapp/reelhub-server/internal/service"
	"github.com/reelhubapp/reelhub-server/internal/validation"
)

// ProvideValidator provides the request payload validator.
func ProvideValidator(i do.Injector) (*validation.Validator, error) {
	return validation.New(), nil
}

// ProvideReconcileService provides the content reconciliation service.
func ProvideReconcileService(i do.Injector) (*service.ReconcileService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewReconcileService(storeHandle.Store, log.Logger), nil
}

// ProvideCatalogService provides the catalog aggregation service.
func ProvideCatalogService(i do.Injector) (*service.CatalogService, error) {
	clientHandle := do.MustInvoke[*TMDBClientHandle](i)
	storeHandle := do.MustInvoke[*StoreHandle](i)
	reconcile := do.MustInvoke[*service.ReconcileService](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewCatalogService(clientHandle.Client, storeHandle.Store, reconcile, log.Logger), nil
}

// ProvideRecommendService provides the recommendation service.
func ProvideRecommendService(i do.Injector) (*service.RecommendService, error) {
	clientHandle := do.MustInvoke[*TMDBClientHandle](i)
	storeHandle := do.MustInvoke[*StoreHandle](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewRecommendService(clientHandle.Client, storeHandle.Store, log.Logger), nil
}

// ProvideReviewService provides the review service.
func ProvideReviewService(i do.Injector) (*service.ReviewService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	clientHandle := do.MustInvoke[*TMDBClientHandle](i)
	reconcile := do.MustInvoke[*service.ReconcileService](i)
	validator := do.MustInvoke[*validation.Validator](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewReviewService(storeHandle.Store, clientHandle.Client, reconcile, validator, log.Logger), nil
}

// ProvideWatchlistService provides the watchlist service.
func ProvideWatchlistService(i do.Injector) (*service.WatchlistService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	clientHandle := do.MustInvoke[*TMDBClientHandle](i)
	reconcile := do.MustInvoke[*service.ReconcileService](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewWatchlistService(storeHandle.Store, clientHandle.Client, reconcile, log.Logger), nil
}

// ProvideProfileService provides the viewing profile service.
func ProvideProfileService(i do.Injector) (*service.ProfileService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	validator := do.MustInvoke[*validation.Validator](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewProfileService(storeHandle.Store, validator, log.Logger), nil
}

// ProvideBackupService provides the database backup service.
func ProvideBackupService(i do.Injector) (*backup.Service, error) {
	cfg := do.MustInvoke[*config.Config](i)
	storeHandle := do.MustInvoke[*StoreHandle](i)
	log := do.MustInvoke[*logger.Logger](i)

	backupDir := filepath.Join(cfg.Storage.DataPath, "backups")
	return backup.New(storeHandle.Store, backupDir, log.Logger), nil
}

// ProvideUserService provides the user account service.
func ProvideUserService(i do.Injector) (*service.UserService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	validator := do.MustInvoke[*validation.Validator](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewUserService(storeHandle.Store, validator, log.Logger), nil
}
