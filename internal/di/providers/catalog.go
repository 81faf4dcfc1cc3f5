package providers

import (
	"github.com/samber/do/v2"

	"github.com/reelhubapp/reelhub-server/internal/config"
	"github.com/reelhubapp/reelhub-server/internal/logger"
	"github.com/reelhubapp/reelhub-server/internal/metadata/tmdb"
)

// TMDBClientHandle wraps the TMDB client with shutdown capability.
type TMDBClientHandle struct {
	*tmdb.Client
}

// Shutdown implements do.Shutdownable.
func (h *TMDBClientHandle) Shutdown() error {
	h.Client.Close()
	return nil
}

// ProvideTMDBClient provides the TMDB catalog client.
func ProvideTMDBClient(i do.Injector) (*TMDBClientHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	client := tmdb.New(tmdb.Config{
		APIKey:         cfg.Catalog.APIKey,
		BaseURL:        cfg.Catalog.BaseURL,
		RequestTimeout: cfg.Catalog.RequestTimeout,
		RateLimitRPS:   float64(cfg.Catalog.RateLimitRPS),
		RateLimitBurst: cfg.Catalog.RateLimitBurst,
	}, log.Logger)
	log.Info("TMDB client initialized", "base_url", cfg.Catalog.BaseURL)

	return &TMDBClientHandle{Client: client}, nil
}
