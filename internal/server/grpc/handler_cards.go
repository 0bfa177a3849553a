package grpc

import (
	"context"

	"github.com/dmitrijs2005/cardboard/internal/api"
	"github.com/dmitrijs2005/cardboard/internal/server/models"
	"github.com/dmitrijs2005/cardboard/internal/server/services"
)

func (s *GRPCServer) cardResponse(ctx context.Context, c *models.Card, err error) (*api.CardResponse, error) {
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &api.CardResponse{Card: s.cardToAPI(c)}, nil
}

func (s *GRPCServer) CreateCard(ctx context.Context, req *api.CreateCardRequest) (*api.CardResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	card, err := s.cards.CreateCard(ctx, userID, services.CardInput{
		DisplayName: req.DisplayName,
		IconName:    req.IconName,
		Color:       req.Color,
		Link:        req.Link,
		Image:       imageFromAPI(req.Image),
	})
	return s.cardResponse(ctx, card, err)
}

func (s *GRPCServer) UpdateCard(ctx context.Context, req *api.UpdateCardRequest) (*api.CardResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	card, err := s.cards.UpdateCard(ctx, req.CardID, userID, services.CardInput{
		DisplayName: req.DisplayName,
		IconName:    req.IconName,
		Color:       req.Color,
		Link:        req.Link,
	})
	return s.cardResponse(ctx, card, err)
}

func (s *GRPCServer) GetCard(ctx context.Context, req *api.CardRequest) (*api.CardResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	card, err := s.cards.GetCard(ctx, req.CardID, userID)
	return s.cardResponse(ctx, card, err)
}

func (s *GRPCServer) ListCards(ctx context.Context, req *api.Empty) (*api.ListCardsResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	list, err := s.cards.ListCards(ctx, userID)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	out := make([]api.Card, 0, len(list))
	for _, c := range list {
		out = append(out, s.cardToAPI(c))
	}
	return &api.ListCardsResponse{Cards: out}, nil
}

func (s *GRPCServer) SetCardImage(ctx context.Context, req *api.SetCardImageRequest) (*api.CardResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	card, err := s.cards.SetCardImage(ctx, req.CardID, userID, imageFromAPI(req.Image))
	return s.cardResponse(ctx, card, err)
}

func (s *GRPCServer) RemoveCardImage(ctx context.Context, req *api.RemoveCardImageRequest) (*api.CardResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	card, err := s.cards.RemoveCardImage(ctx, req.CardID, userID, req.IconName)
	return s.cardResponse(ctx, card, err)
}
