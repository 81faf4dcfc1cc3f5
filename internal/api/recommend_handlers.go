package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (s *Server) registerRecommendationRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "getProfileRecommendations",
		Method:      http.MethodGet,
		Path:        "/api/v1/profiles/{id}/recommendations",
		Summary:     "Get recommendations",
		Description: "Derives a personalized title row from the profile's rating history",
		Tags:        []string{"Recommendations"},
	}, s.handleGetRecommendations)
}

type GetRecommendationsInput struct {
	ProfileID string `path:"id" doc:"Profile ID"`
	Limit     int    `query:"limit" default:"20" minimum:"1" maximum:"100" doc:"Maximum row length"`
}

func (s *Server) handleGetRecommendations(ctx context.Context, input *GetRecommendationsInput) (*CatalogRowOutput, error) {
	summaries, err := s.services.Recommend.Recommend(ctx, input.ProfileID, input.Limit)
	if err != nil {
		return nil, err
	}
	return &CatalogRowOutput{Body: CatalogRowResponse{Results: mapSummaries(summaries)}}, nil
}
