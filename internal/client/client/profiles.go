package client

import (
	"context"

	"github.com/dmitrijs2005/cardboard/internal/api"
)

func (c *GRPCClient) GetProfile(ctx context.Context) (*api.Profile, error) {
	ctx, cancel := c.callCtx(ctx)
	defer cancel()

	resp, err := c.api.GetProfile(ctx)
	if err != nil {
		return nil, mapError(err)
	}
	return &resp.Profile, nil
}

func (c *GRPCClient) UpdateProfile(ctx context.Context, in *api.UpdateProfileRequest) (*api.Profile, error) {
	ctx, cancel := c.callCtx(ctx)
	defer cancel()

	resp, err := c.api.UpdateProfile(ctx, in)
	if err != nil {
		return nil, mapError(err)
	}
	return &resp.Profile, nil
}

func (c *GRPCClient) UploadAvatar(ctx context.Context, img *api.Image) (*api.Profile, error) {
	ctx, cancel := c.callCtx(ctx)
	defer cancel()

	resp, err := c.api.UploadAvatar(ctx, &api.UploadAvatarRequest{Image: img})
	if err != nil {
		return nil, mapError(err)
	}
	return &resp.Profile, nil
}
