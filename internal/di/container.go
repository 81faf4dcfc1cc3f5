// Package di provides dependency injection configuration for the ReelHub server.
package di

import (
	"github.com/samber/do/v2"

	"github.com/reelhubapp/reelhub-server/internal/backup"
	"github.com/reelhubapp/reelhub-server/internal/config"
	"github.com/reelhubapp/reelhub-server/internal/di/providers"
	"github.com/reelhubapp/reelhub-server/internal/logger"
	"github.com/reelhubapp/reelhub-server/internal/service"
	"github.com/reelhubapp/reelhub-server/internal/validation"
)

// NewContainer creates and configures the DI container with all providers.
func NewContainer() *do.RootScope {
	injector := do.New()

	// Core infrastructure
	do.Provide(injector, providers.ProvideConfig)
	do.Provide(injector, providers.ProvideLogger)
	do.Provide(injector, providers.ProvideValidator)

	// Database layer
	do.Provide(injector, providers.ProvideStore)

	// Catalog provider layer
	do.Provide(injector, providers.ProvideTMDBClient)

	// Business services
	do.Provide(injector, providers.ProvideReconcileService)
	do.Provide(injector, providers.ProvideCatalogService)
	do.Provide(injector, providers.ProvideRecommendService)
	do.Provide(injector, providers.ProvideReviewService)
	do.Provide(injector, providers.ProvideWatchlistService)
	do.Provide(injector, providers.ProvideProfileService)
	do.Provide(injector, providers.ProvideUserService)
	do.Provide(injector, providers.ProvideBackupService)

	// Server
	do.Provide(injector, providers.ProvideHTTPServer)

	return injector
}

// Bootstrap initializes all services and returns handles for lifecycle management.
// This triggers lazy initialization of all core services.
func Bootstrap(injector *do.RootScope) error {
	// Invoke core services to trigger initialization
	_ = do.MustInvoke[*config.Config](injector)
	_ = do.MustInvoke[*logger.Logger](injector)
	_ = do.MustInvoke[*validation.Validator](injector)
	_ = do.MustInvoke[*providers.StoreHandle](injector)
	_ = do.MustInvoke[*providers.TMDBClientHandle](injector)

	// Business services
	_ = do.MustInvoke[*service.ReconcileService](injector)
	_ = do.MustInvoke[*service.CatalogService](injector)
	_ = do.MustInvoke[*service.RecommendService](injector)
	_ = do.MustInvoke[*service.ReviewService](injector)
	_ = do.MustInvoke[*service.WatchlistService](injector)
	_ = do.MustInvoke[*service.ProfileService](injector)
	_ = do.MustInvoke[*service.UserService](injector)
	_ = do.MustInvoke[*backup.Service](injector)

	// Server
	_ = do.MustInvoke[*providers.HTTPServerHandle](injector)

	return nil
}
