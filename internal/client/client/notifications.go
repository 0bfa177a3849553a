package client

import (
	"context"

	"github.com/dmitrijs2005/cardboard/internal/api"
)

func (c *GRPCClient) ListNotifications(ctx context.Context) ([]api.Notification, error) {
	ctx, cancel := c.callCtx(ctx)
	defer cancel()

	resp, err := c.api.ListNotifications(ctx)
	if err != nil {
		return nil, mapError(err)
	}
	return resp.Notifications, nil
}

func (c *GRPCClient) MarkNotificationRead(ctx context.Context, id string) error {
	ctx, cancel := c.callCtx(ctx)
	defer cancel()

	_, err := c.api.MarkNotificationRead(ctx, &api.NotificationRequest{NotificationID: id})
	return mapError(err)
}

func (c *GRPCClient) MarkAllNotificationsRead(ctx context.Context) (int64, error) {
	ctx, cancel := c.callCtx(ctx)
	defer cancel()

	resp, err := c.api.MarkAllNotificationsRead(ctx)
	if err != nil {
		return 0, mapError(err)
	}
	return resp.Updated, nil
}

func (c *GRPCClient) DeleteNotification(ctx context.Context, id string) error {
	ctx, cancel := c.callCtx(ctx)
	defer cancel()

	_, err := c.api.DeleteNotification(ctx, &api.NotificationRequest{NotificationID: id})
	return mapError(err)
}

func (c *GRPCClient) UnreadCount(ctx context.Context) (int64, error) {
	ctx, cancel := c.callCtx(ctx)
	defer cancel()

	resp, err := c.api.UnreadCount(ctx)
	if err != nil {
		return 0, mapError(err)
	}
	return resp.Count, nil
}
