package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/reelhubapp/reelhub-server/internal/http/response"
	"github.com/reelhubapp/reelhub-server/internal/service"
)

// handleCreateReview creates a review, reconciling the reviewed title into a
// local content record first.
func (s *Server) handleCreateReview(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var input service.CreateReviewInput
	if err := decodeBody(r, &input); err != nil {
		response.BadRequest(w, "Invalid request body", s.logger)
		return
	}

	review, err := s.services.Review.Create(ctx, input)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Created(w, review, s.logger)
}

// handleUpdateReview edits a review.
func (s *Server) handleUpdateReview(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	var input service.UpdateReviewInput
	if err := decodeBody(r, &input); err != nil {
		response.BadRequest(w, "Invalid request body", s.logger)
		return
	}

	review, err := s.services.Review.Update(ctx, id, input)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, review, s.logger)
}

// handleDeleteReview removes a review.
func (s *Server) handleDeleteReview(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	if err := s.services.Review.Delete(ctx, id); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.NoContent(w)
}

// handleListContentReviews returns the public reviews of a content record.
func (s *Server) handleListContentReviews(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	if id == "" {
		response.BadRequest(w, "Content ID is required", s.logger)
		return
	}

	reviews, err := s.services.Review.ListPublicByContent(ctx, id)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, reviews, s.logger)
}
