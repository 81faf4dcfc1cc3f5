package api

import (
	"github.com/reelhubapp/reelhub-server/internal/backup"
	"github.com/reelhubapp/reelhub-server/internal/service"
)

// Services groups all business logic services used by the API server.
// This reduces the parameter count for NewServer and improves testability.
type Services struct {
	Catalog   *service.CatalogService
	Recommend *service.RecommendService
	Reconcile *service.ReconcileService
	Review    *service.ReviewService
	Watchlist *service.WatchlistService
	Profile   *service.ProfileService
	User      *service.UserService
	Backup    *backup.Service
}
