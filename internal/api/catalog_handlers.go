package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/reelhubapp/reelhub-server/internal/domain"
	"github.com/reelhubapp/reelhub-server/internal/metadata/tmdb"
)

func (s *Server) registerCatalogRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "getCatalogNewest",
		Method:      http.MethodGet,
		Path:        "/api/v1/catalog/newest",
		Summary:     "Newest titles",
		Description: "Trending movies and series sorted by release date, newest first",
		Tags:        []string{"Catalog"},
	}, s.handleCatalogNewest)

	huma.Register(s.api, huma.Operation{
		OperationID: "getCatalogPopular",
		Method:      http.MethodGet,
		Path:        "/api/v1/catalog/popular",
		Summary:     "Most popular titles",
		Description: "Trending movies and series sorted by popularity score",
		Tags:        []string{"Catalog"},
	}, s.handleCatalogPopular)

	huma.Register(s.api, huma.Operation{
		OperationID: "getCatalogMostReviewed",
		Method:      http.MethodGet,
		Path:        "/api/v1/catalog/most-reviewed",
		Summary:     "Most reviewed titles",
		Description: "Locally reviewed titles ranked by review count, with fresh provider details",
		Tags:        []string{"Catalog"},
	}, s.handleCatalogMostReviewed)

	huma.Register(s.api, huma.Operation{
		OperationID: "getCatalogMovies",
		Method:      http.MethodGet,
		Path:        "/api/v1/catalog/movies",
		Summary:     "Trending movies",
		Tags:        []string{"Catalog"},
	}, s.handleCatalogMovies)

	huma.Register(s.api, huma.Operation{
		OperationID: "getCatalogSeries",
		Method:      http.MethodGet,
		Path:        "/api/v1/catalog/series",
		Summary:     "Trending series",
		Tags:        []string{"Catalog"},
	}, s.handleCatalogSeries)

	huma.Register(s.api, huma.Operation{
		OperationID: "searchCatalog",
		Method:      http.MethodGet,
		Path:        "/api/v1/catalog/search",
		Summary:     "Search catalog",
		Description: "Search the provider catalog across movies and series",
		Tags:        []string{"Catalog"},
	}, s.handleCatalogSearch)

	huma.Register(s.api, huma.Operation{
		OperationID: "getCatalogTitle",
		Method:      http.MethodGet,
		Path:        "/api/v1/catalog/{kind}/{providerID}",
		Summary:     "Get title details",
		Description: "Fetches full provider details for a title and resolves its local content record",
		Tags:        []string{"Catalog"},
	}, s.handleCatalogTitle)
}

// === DTOs ===

type CatalogRowInput struct {
	Limit int `query:"limit" default:"20" minimum:"1" maximum:"100" doc:"Maximum row length"`
}

type CatalogPageInput struct {
	Page  int `query:"page" default:"1" minimum:"1" doc:"Provider result page"`
	Limit int `query:"limit" default:"20" minimum:"1" maximum:"100" doc:"Maximum row length"`
}

type TitleSummaryResponse struct {
	ProviderID   int64    `json:"provider_id" doc:"Provider's numeric title ID"`
	Kind         string   `json:"kind" doc:"Title kind (movie or series)"`
	Title        string   `json:"title" doc:"Display title"`
	Overview     string   `json:"overview,omitempty" doc:"Plot synopsis"`
	PosterPath   string   `json:"poster_path,omitempty" doc:"Poster image path"`
	BackdropPath string   `json:"backdrop_path,omitempty" doc:"Backdrop image path"`
	Popularity   float64  `json:"popularity" doc:"Provider popularity score"`
	VoteAverage  float64  `json:"vote_average" doc:"Average vote (0-10)"`
	Genres       []string `json:"genres,omitempty" doc:"Genre names"`
	ReleaseDate  string   `json:"release_date,omitempty" doc:"Release or first air date (YYYY-MM-DD)"`
}

type CatalogRowResponse struct {
	Results []TitleSummaryResponse `json:"results" doc:"Row entries in rank order"`
}

type CatalogRowOutput struct {
	Body CatalogRowResponse
}

type SearchCatalogInput struct {
	Query    string `query:"q" required:"true" minLength:"1" doc:"Search query"`
	Page     int    `query:"page" default:"1" minimum:"1" doc:"Result page"`
	Language string `query:"language" doc:"Original language filter (ISO 639-1)"`
	Genre    int    `query:"genre" doc:"Provider genre ID filter"`
	Year     int    `query:"year" doc:"Primary release year filter (movies only)"`
}

type GetCatalogTitleInput struct {
	Kind       string `path:"kind" enum:"movie,series" doc:"Title kind"`
	ProviderID int64  `path:"providerID" doc:"Provider's numeric title ID"`
}

type SeasonResponse struct {
	Name         string `json:"name" doc:"Season name"`
	SeasonNumber int    `json:"season_number" doc:"Season number"`
	EpisodeCount int    `json:"episode_count" doc:"Number of episodes"`
	AirDate      string `json:"air_date,omitempty" doc:"Season air date"`
}

type TitleDetailResponse struct {
	ContentID       string           `json:"content_id,omitempty" doc:"Local content record ID"`
	ProviderID      int64            `json:"provider_id" doc:"Provider's numeric title ID"`
	Kind            string           `json:"kind" doc:"Title kind (movie or series)"`
	Title           string           `json:"title" doc:"Display title"`
	Overview        string           `json:"overview,omitempty" doc:"Plot synopsis"`
	PosterPath      string           `json:"poster_path,omitempty" doc:"Poster image path"`
	BackdropPath    string           `json:"backdrop_path,omitempty" doc:"Backdrop image path"`
	Popularity      float64          `json:"popularity" doc:"Provider popularity score"`
	VoteAverage     float64          `json:"vote_average" doc:"Average vote (0-10)"`
	Genres          []string         `json:"genres,omitempty" doc:"Genre names"`
	ReleaseDate     string           `json:"release_date,omitempty" doc:"Release or first air date"`
	RuntimeMinutes  int              `json:"runtime_minutes,omitempty" doc:"Runtime in minutes (movies)"`
	Tagline         string           `json:"tagline,omitempty" doc:"Marketing tagline (movies)"`
	NumberOfSeasons int              `json:"number_of_seasons,omitempty" doc:"Season count (series)"`
	Seasons         []SeasonResponse `json:"seasons,omitempty" doc:"Season list (series)"`
	Status          string           `json:"status,omitempty" doc:"Production status"`
}

type TitleDetailOutput struct {
	Body TitleDetailResponse
}

type CatalogDetailRowResponse struct {
	Results []TitleDetailResponse `json:"results" doc:"Row entries in rank order"`
}

type CatalogDetailRowOutput struct {
	Body CatalogDetailRowResponse
}

// === Handlers ===

func (s *Server) handleCatalogNewest(ctx context.Context, input *CatalogRowInput) (*CatalogRowOutput, error) {
	summaries, err := s.services.Catalog.Newest(ctx, input.Limit)
	if err != nil {
		return nil, err
	}
	return &CatalogRowOutput{Body: CatalogRowResponse{Results: mapSummaries(summaries)}}, nil
}

func (s *Server) handleCatalogPopular(ctx context.Context, input *CatalogRowInput) (*CatalogRowOutput, error) {
	summaries, err := s.services.Catalog.MostPopular(ctx, input.Limit)
	if err != nil {
		return nil, err
	}
	return &CatalogRowOutput{Body: CatalogRowResponse{Results: mapSummaries(summaries)}}, nil
}

func (s *Server) handleCatalogMostReviewed(ctx context.Context, input *CatalogPageInput) (*CatalogDetailRowOutput, error) {
	details, err := s.services.Catalog.MostReviewed(ctx, input.Page, input.Limit)
	if err != nil {
		return nil, err
	}

	results := make([]TitleDetailResponse, len(details))
	for i, detail := range details {
		results[i] = mapDetail(detail, "")
	}
	return &CatalogDetailRowOutput{Body: CatalogDetailRowResponse{Results: results}}, nil
}

func (s *Server) handleCatalogMovies(ctx context.Context, input *CatalogPageInput) (*CatalogRowOutput, error) {
	summaries, err := s.services.Catalog.Movies(ctx, input.Page, input.Limit)
	if err != nil {
		return nil, err
	}
	return &CatalogRowOutput{Body: CatalogRowResponse{Results: mapSummaries(summaries)}}, nil
}

func (s *Server) handleCatalogSeries(ctx context.Context, input *CatalogPageInput) (*CatalogRowOutput, error) {
	summaries, err := s.services.Catalog.Series(ctx, input.Page, input.Limit)
	if err != nil {
		return nil, err
	}
	return &CatalogRowOutput{Body: CatalogRowResponse{Results: mapSummaries(summaries)}}, nil
}

func (s *Server) handleCatalogSearch(ctx context.Context, input *SearchCatalogInput) (*CatalogRowOutput, error) {
	summaries, err := s.services.Catalog.Search(ctx, input.Query, tmdb.SearchOptions{
		Page:     input.Page,
		Language: input.Language,
		Genre:    input.Genre,
		Year:     input.Year,
	})
	if err != nil {
		return nil, err
	}
	return &CatalogRowOutput{Body: CatalogRowResponse{Results: mapSummaries(summaries)}}, nil
}

func (s *Server) handleCatalogTitle(ctx context.Context, input *GetCatalogTitleInput) (*TitleDetailOutput, error) {
	kind, err := domain.ParseMediaKind(input.Kind)
	if err != nil {
		return nil, huma.Error400BadRequest(err.Error())
	}

	detail, record, err := s.services.Catalog.Details(ctx, kind, input.ProviderID)
	if err != nil {
		return nil, err
	}

	return &TitleDetailOutput{Body: mapDetail(detail, record.ID)}, nil
}

// === Mappers ===

func genreNames(ids []int) []string {
	if len(ids) == 0 {
		return nil
	}
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		names = append(names, tmdb.GenreName(id))
	}
	return names
}

func mapSummary(summary tmdb.Summary) TitleSummaryResponse {
	return TitleSummaryResponse{
		ProviderID:   summary.ProviderID,
		Kind:         string(summary.Kind),
		Title:        summary.Title,
		Overview:     summary.Overview,
		PosterPath:   summary.PosterPath,
		BackdropPath: summary.BackdropPath,
		Popularity:   summary.Popularity,
		VoteAverage:  summary.VoteAverage,
		Genres:       genreNames(summary.GenreIDs),
		ReleaseDate:  summary.ReleaseDate,
	}
}

func mapSummaries(summaries []tmdb.Summary) []TitleSummaryResponse {
	results := make([]TitleSummaryResponse, len(summaries))
	for i, summary := range summaries {
		results[i] = mapSummary(summary)
	}
	return results
}

func mapDetail(detail tmdb.Detail, contentID string) TitleDetailResponse {
	summary := detail.Summary()
	resp := TitleDetailResponse{
		ContentID:    contentID,
		ProviderID:   summary.ProviderID,
		Kind:         string(summary.Kind),
		Title:        summary.Title,
		Overview:     summary.Overview,
		PosterPath:   summary.PosterPath,
		BackdropPath: summary.BackdropPath,
		Popularity:   summary.Popularity,
		VoteAverage:  summary.VoteAverage,
		Genres:       genreNames(summary.GenreIDs),
		ReleaseDate:  summary.ReleaseDate,
	}

	switch d := detail.(type) {
	case *tmdb.MovieDetails:
		resp.RuntimeMinutes = d.Runtime
		resp.Tagline = d.Tagline
		resp.Status = d.Status
	case *tmdb.SeriesDetails:
		resp.NumberOfSeasons = d.NumberOfSeasons
		resp.Status = d.Status
		for _, season := range d.Seasons {
			resp.Seasons = append(resp.Seasons, SeasonResponse{
				Name:         season.Name,
				SeasonNumber: season.SeasonNumber,
				EpisodeCount: season.EpisodeCount,
				AirDate:      season.AirDate,
			})
		}
	}
	return resp
}
