package client

import (
	"context"

	"github.com/dmitrijs2005/cardboard/internal/api"
)

// ShareCard grants recipientEmail access to cardID. A non-empty warning
// means the grant exists but the recipient was not notified.
func (c *GRPCClient) ShareCard(ctx context.Context, cardID, recipientEmail string) (*api.Share, string, error) {
	ctx, cancel := c.callCtx(ctx)
	defer cancel()

	resp, err := c.api.ShareCard(ctx, &api.ShareCardRequest{CardID: cardID, RecipientEmail: recipientEmail})
	if err != nil {
		return nil, "", mapError(err)
	}
	return &resp.Share, resp.Warning, nil
}

// RemoveAccess deletes the card for its owner or drops the caller's own
// grant for a recipient. cardDeleted tells the two apart.
func (c *GRPCClient) RemoveAccess(ctx context.Context, cardID string) (cardDeleted bool, err error) {
	ctx, cancel := c.callCtx(ctx)
	defer cancel()

	resp, err := c.api.RemoveAccess(ctx, &api.CardRequest{CardID: cardID})
	if err != nil {
		return false, mapError(err)
	}
	return resp.CardDeleted, nil
}

func (c *GRPCClient) RevokeShare(ctx context.Context, cardID, recipientID string) error {
	ctx, cancel := c.callCtx(ctx)
	defer cancel()

	_, err := c.api.RevokeShare(ctx, &api.RevokeShareRequest{CardID: cardID, RecipientID: recipientID})
	return mapError(err)
}

func (c *GRPCClient) ListShares(ctx context.Context, cardID string) ([]api.Share, error) {
	ctx, cancel := c.callCtx(ctx)
	defer cancel()

	resp, err := c.api.ListShares(ctx, &api.CardRequest{CardID: cardID})
	if err != nil {
		return nil, mapError(err)
	}
	return resp.Shares, nil
}
