package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/reelhubapp/reelhub-server/internal/http/response"
	"github.com/reelhubapp/reelhub-server/internal/service"
)

// handleCreateProfile creates a viewing profile under a user.
func (s *Server) handleCreateProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var input service.CreateProfileInput
	if err := decodeBody(r, &input); err != nil {
		response.BadRequest(w, "Invalid request body", s.logger)
		return
	}

	profile, err := s.services.Profile.Create(ctx, input)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Created(w, profile, s.logger)
}

// handleGetProfile returns a profile by ID.
func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	if id == "" {
		response.BadRequest(w, "Profile ID is required", s.logger)
		return
	}

	profile, err := s.services.Profile.Get(ctx, id)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, profile, s.logger)
}

// handleUpdateProfile renames a profile.
func (s *Server) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	var input service.UpdateProfileInput
	if err := decodeBody(r, &input); err != nil {
		response.BadRequest(w, "Invalid request body", s.logger)
		return
	}

	profile, err := s.services.Profile.Update(ctx, id, input)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, profile, s.logger)
}

// handleDeleteProfile removes a profile.
func (s *Server) handleDeleteProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	if err := s.services.Profile.Delete(ctx, id); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.NoContent(w)
}

// handleListProfileReviews returns all of a profile's reviews.
func (s *Server) handleListProfileReviews(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	if id == "" {
		response.BadRequest(w, "Profile ID is required", s.logger)
		return
	}

	reviews, err := s.services.Review.ListByProfile(ctx, id)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, reviews, s.logger)
}
