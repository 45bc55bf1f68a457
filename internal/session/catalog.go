package session

import (
	"context"

	"brickset/client/internal/request"
	"brickset/client/internal/response"
)

// GetSets runs a set search. The user hash is sent when logged in so that
// collection data is included.
func (s *Session) GetSets(ctx context.Context, params request.SetsParams) (response.SetsResponse, error) {
	return execute[response.SetsResponse](ctx, s, request.NewGetSets(s.apiKey, s.optionalHash(), params))
}

func (s *Session) GetWantedSets(ctx context.Context, params request.SetsParams) (response.SetsResponse, error) {
	return s.userSets(ctx, params.WantedByUser(true))
}

func (s *Session) GetOwnedSets(ctx context.Context, params request.SetsParams) (response.SetsResponse, error) {
	return s.userSets(ctx, params.OwnedByUser(true))
}

func (s *Session) userSets(ctx context.Context, params request.SetsParams) (response.SetsResponse, error) {
	hash, err := s.hash()
	if err != nil {
		return response.SetsResponse{}, err
	}
	return execute[response.SetsResponse](ctx, s, request.NewGetSets(s.apiKey, hash, params))
}

func (s *Session) GetAdditionalImages(ctx context.Context, setID uint64) (response.AdditionalImagesResponse, error) {
	return execute[response.AdditionalImagesResponse](ctx, s, request.NewGetAdditionalImages(s.apiKey, setID))
}

func (s *Session) GetInstructions(ctx context.Context, setID uint64) (response.InstructionsResponse, error) {
	return execute[response.InstructionsResponse](ctx, s, request.NewGetInstructions(s.apiKey, setID))
}

// GetInstructions2 looks instructions up by set number, e.g. "6876-1".
func (s *Session) GetInstructions2(ctx context.Context, setNumber string) (response.InstructionsResponse, error) {
	return execute[response.InstructionsResponse](ctx, s, request.NewGetInstructions2(s.apiKey, setNumber))
}

func (s *Session) GetReviews(ctx context.Context, setID uint64) (response.ReviewsResponse, error) {
	return execute[response.ReviewsResponse](ctx, s, request.NewGetReviews(s.apiKey, setID))
}

func (s *Session) GetThemes(ctx context.Context) (response.ThemesResponse, error) {
	return execute[response.ThemesResponse](ctx, s, request.NewGetThemes(s.apiKey))
}

func (s *Session) GetSubthemes(ctx context.Context, theme string) (response.SubthemesResponse, error) {
	return execute[response.SubthemesResponse](ctx, s, request.NewGetSubthemes(s.apiKey, theme))
}

func (s *Session) GetYears(ctx context.Context, theme string) (response.YearsResponse, error) {
	return execute[response.YearsResponse](ctx, s, request.NewGetYears(s.apiKey, theme))
}
