package providers

import (
	"context"
	"net/http"

	"github.com/samber/do/v2"

	"github.com/reelhubapp/reelhub-server/internal/api"
	"github.com/reelhubapp/reelhub-server/internal/backup"
	"github.com/reelhubapp/reelhub-server/internal/config"
	"github.com/reelhubapp/reelhub-server/internal/logger"
	"github.com/reelhubapp/reelhub-server/internal/service"
)

// HTTPServerHandle wraps http.Server with Shutdownable.
type HTTPServerHandle struct {
	*http.Server
}

// Shutdown implements do.Shutdownable.
func (h *HTTPServerHandle) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return h.Server.Shutdown(ctx)
}

// ProvideHTTPServer provides the HTTP server.
func ProvideHTTPServer(i do.Injector) (*HTTPServerHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	storeHandle := do.MustInvoke[*StoreHandle](i)
	log := do.MustInvoke[*logger.Logger](i)

	services := &api.Services{
		Catalog:   do.MustInvoke[*service.CatalogService](i),
		Recommend: do.MustInvoke[*service.RecommendService](i),
		Reconcile: do.MustInvoke[*service.ReconcileService](i),
		Review:    do.MustInvoke[*service.ReviewService](i),
		Watchlist: do.MustInvoke[*service.WatchlistService](i),
		Profile:   do.MustInvoke[*service.ProfileService](i),
		User:      do.MustInvoke[*service.UserService](i),
		Backup:    do.MustInvoke[*backup.Service](i),
	}

	handler := api.NewServer(storeHandle.Store, services, log.Logger)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Start in background
	go func() {
		log.Info("HTTP server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server error", "error", err)
		}
	}()

	log.Info("Server running", "addr", srv.Addr)

	return &HTTPServerHandle{Server: srv}, nil
}
