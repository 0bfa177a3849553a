package client

import (
	"context"

	"github.com/dmitrijs2005/cardboard/internal/api"
)

func (c *GRPCClient) CreateCard(ctx context.Context, in *api.CreateCardRequest) (*api.Card, error) {
	ctx, cancel := c.callCtx(ctx)
	defer cancel()

	resp, err := c.api.CreateCard(ctx, in)
	if err != nil {
		return nil, mapError(err)
	}
	return &resp.Card, nil
}

func (c *GRPCClient) UpdateCard(ctx context.Context, in *api.UpdateCardRequest) (*api.Card, error) {
	ctx, cancel := c.callCtx(ctx)
	defer cancel()

	resp, err := c.api.UpdateCard(ctx, in)
	if err != nil {
		return nil, mapError(err)
	}
	return &resp.Card, nil
}

func (c *GRPCClient) GetCard(ctx context.Context, cardID string) (*api.Card, error) {
	ctx, cancel := c.callCtx(ctx)
	defer cancel()

	resp, err := c.api.GetCard(ctx, &api.CardRequest{CardID: cardID})
	if err != nil {
		return nil, mapError(err)
	}
	return &resp.Card, nil
}

// ListCards returns every card visible to the signed-in user, newest first.
func (c *GRPCClient) ListCards(ctx context.Context) ([]api.Card, error) {
	ctx, cancel := c.callCtx(ctx)
	defer cancel()

	resp, err := c.api.ListCards(ctx)
	if err != nil {
		return nil, mapError(err)
	}
	return resp.Cards, nil
}

func (c *GRPCClient) SetCardImage(ctx context.Context, cardID string, img *api.Image) (*api.Card, error) {
	ctx, cancel := c.callCtx(ctx)
	defer cancel()

	resp, err := c.api.SetCardImage(ctx, &api.SetCardImageRequest{CardID: cardID, Image: img})
	if err != nil {
		return nil, mapError(err)
	}
	return &resp.Card, nil
}

func (c *GRPCClient) RemoveCardImage(ctx context.Context, cardID, iconName string) (*api.Card, error) {
	ctx, cancel := c.callCtx(ctx)
	defer cancel()

	resp, err := c.api.RemoveCardImage(ctx, &api.RemoveCardImageRequest{CardID: cardID, IconName: iconName})
	if err != nil {
		return nil, mapError(err)
	}
	return &resp.Card, nil
}
