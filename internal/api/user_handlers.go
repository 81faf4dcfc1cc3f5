package api

import (
	"github.com/go-json-experiment/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/reelhubapp/reelhub-server/internal/http/response"
	"github.com/reelhubapp/reelhub-server/internal/service"
)

// decodeBody parses a JSON request body into dst.
func decodeBody(r *http.Request, dst any) error {
	return json.UnmarshalRead(r.Body, dst)
}

// handleCreateUser creates a user account.
func (s *Server) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var input service.CreateUserInput
	if err := decodeBody(r, &input); err != nil {
		response.BadRequest(w, "Invalid request body", s.logger)
		return
	}

	user, err := s.services.User.Create(ctx, input)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Created(w, user, s.logger)
}

// handleGetUser returns a user by ID.
func (s *Server) handleGetUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	if id == "" {
		response.BadRequest(w, "User ID is required", s.logger)
		return
	}

	user, err := s.services.User.Get(ctx, id)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, user, s.logger)
}

// handleListUserProfiles returns a user's viewing profiles.
func (s *Server) handleListUserProfiles(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	if id == "" {
		response.BadRequest(w, "User ID is required", s.logger)
		return
	}

	profiles, err := s.services.Profile.ListByUser(ctx, id)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, profiles, s.logger)
}
