package grpc

import (
	"context"

	"github.com/dmitrijs2005/cardboard/internal/api"
)

func (s *GRPCServer) ShareCard(ctx context.Context, req *api.ShareCardRequest) (*api.ShareCardResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	res, err := s.shares.ShareCard(ctx, req.CardID, req.RecipientEmail, userID)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	s.logger.Info(ctx, "Card shared", "card_id", req.CardID, "recipient_id", res.Share.SharedWithID)
	return &api.ShareCardResponse{Share: shareToAPI(res.Share), Warning: res.Warning}, nil
}

func (s *GRPCServer) RemoveAccess(ctx context.Context, req *api.CardRequest) (*api.RemoveAccessResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	res, err := s.shares.RemoveAccess(ctx, req.CardID, userID)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &api.RemoveAccessResponse{CardDeleted: res.CardDeleted}, nil
}

func (s *GRPCServer) RevokeShare(ctx context.Context, req *api.RevokeShareRequest) (*api.Empty, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.shares.RevokeShare(ctx, req.CardID, req.RecipientID, userID); err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &api.Empty{}, nil
}

func (s *GRPCServer) ListShares(ctx context.Context, req *api.CardRequest) (*api.ListSharesResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	list, err := s.shares.ListShares(ctx, req.CardID, userID)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	out := make([]api.Share, 0, len(list))
	for _, sh := range list {
		out = append(out, shareToAPI(sh))
	}
	return &api.ListSharesResponse{Shares: out}, nil
}
