package grpc

import (
	"context"

	"github.com/dmitrijs2005/cardboard/internal/api"
	"github.com/dmitrijs2005/cardboard/internal/server/models"
)

func (s *GRPCServer) profileResponse(ctx context.Context, p *models.Profile, err error) (*api.ProfileResponse, error) {
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &api.ProfileResponse{Profile: s.profileToAPI(p)}, nil
}

func (s *GRPCServer) GetProfile(ctx context.Context, req *api.Empty) (*api.ProfileResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	p, err := s.profiles.Get(ctx, userID)
	return s.profileResponse(ctx, p, err)
}

func (s *GRPCServer) UpdateProfile(ctx context.Context, req *api.UpdateProfileRequest) (*api.ProfileResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	p, err := s.profiles.Update(ctx, userID, req.FirstName, req.LastName, req.Phone)
	return s.profileResponse(ctx, p, err)
}

func (s *GRPCServer) UploadAvatar(ctx context.Context, req *api.UploadAvatarRequest) (*api.ProfileResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	p, err := s.profiles.UploadAvatar(ctx, userID, imageFromAPI(req.Image))
	return s.profileResponse(ctx, p, err)
}
