package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/reelhubapp/reelhub-server/internal/domain"
	"github.com/reelhubapp/reelhub-server/internal/http/response"
)

// addToWatchlistRequest references a title by provider identity.
type addToWatchlistRequest struct {
	Kind       string `json:"kind"`
	ProviderID int64  `json:"provider_id"`
}

// handleListWatchlist returns a profile's watchlist with content records
// resolved.
func (s *Server) handleListWatchlist(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	profileID := chi.URLParam(r, "id")

	if profileID == "" {
		response.BadRequest(w, "Profile ID is required", s.logger)
		return
	}

	entries, err := s.services.Watchlist.List(ctx, profileID)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, entries, s.logger)
}

// handleAddToWatchlist saves a title to a profile's watchlist.
func (s *Server) handleAddToWatchlist(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	profileID := chi.URLParam(r, "id")

	var req addToWatchlistRequest
	if err := decodeBody(r, &req); err != nil {
		response.BadRequest(w, "Invalid request body", s.logger)
		return
	}

	kind, err := domain.ParseMediaKind(req.Kind)
	if err != nil {
		response.BadRequest(w, err.Error(), s.logger)
		return
	}
	if req.ProviderID <= 0 {
		response.BadRequest(w, "provider_id must be positive", s.logger)
		return
	}

	item, err := s.services.Watchlist.Add(ctx, profileID, kind, req.ProviderID)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Created(w, item, s.logger)
}

// handleRemoveFromWatchlist takes a title off a profile's watchlist.
func (s *Server) handleRemoveFromWatchlist(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	profileID := chi.URLParam(r, "id")
	contentID := chi.URLParam(r, "contentID")

	if err := s.services.Watchlist.Remove(ctx, profileID, contentID); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.NoContent(w)
}
