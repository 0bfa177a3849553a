package grpc

import (
	"context"

	"github.com/dmitrijs2005/cardboard/internal/api"
	"github.com/dmitrijs2005/cardboard/internal/common"
	"github.com/dmitrijs2005/cardboard/internal/server/auth"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// toStatus maps err to its gRPC status. Unrecognised errors are logged
// with their cause and sent as a bare Internal.
func (s *GRPCServer) toStatus(ctx context.Context, err error) error {
	st, ok := api.StatusError(err)
	if !ok {
		s.logger.Error(ctx, "internal error", "error", err)
	}
	return st.Err()
}

func userIDFromContext(ctx context.Context) (string, error) {
	id, ok := auth.UserIDFromContext(ctx)
	if !ok {
		return "", status.Error(codes.Unauthenticated, common.ErrorUnauthorized.Error())
	}
	return id, nil
}

func (s *GRPCServer) Register(ctx context.Context, req *api.Credentials) (*api.RegisterResponse, error) {
	user, err := s.users.Register(ctx, req.Email, req.Password)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	s.logger.Info(ctx, "Registered", "user_id", user.ID)
	return &api.RegisterResponse{UserID: user.ID}, nil
}

func (s *GRPCServer) Login(ctx context.Context, req *api.Credentials) (*api.TokenResponse, error) {
	tokens, err := s.users.Login(ctx, req.Email, req.Password)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &api.TokenResponse{AccessToken: tokens.AccessToken, RefreshToken: tokens.RefreshToken}, nil
}

func (s *GRPCServer) RefreshToken(ctx context.Context, req *api.RefreshTokenRequest) (*api.TokenResponse, error) {
	tokens, err := s.users.RefreshToken(ctx, req.RefreshToken)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &api.TokenResponse{AccessToken: tokens.AccessToken, RefreshToken: tokens.RefreshToken}, nil
}

func (s *GRPCServer) Ping(ctx context.Context, req *api.Empty) (*api.PingResponse, error) {
	return &api.PingResponse{Status: "OK"}, nil
}

func (s *GRPCServer) LookupUserID(ctx context.Context, req *api.LookupUserIDRequest) (*api.LookupUserIDResponse, error) {
	if _, err := userIDFromContext(ctx); err != nil {
		return nil, err
	}
	id, err := s.users.LookupUserID(ctx, req.Email)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &api.LookupUserIDResponse{UserID: id}, nil
}

func (s *GRPCServer) LookupUserEmail(ctx context.Context, req *api.LookupUserEmailRequest) (*api.LookupUserEmailResponse, error) {
	if _, err := userIDFromContext(ctx); err != nil {
		return nil, err
	}
	email, err := s.users.LookupUserEmail(ctx, req.UserID)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &api.LookupUserEmailResponse{Email: email}, nil
}
