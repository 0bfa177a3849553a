package grpc

import (
	"context"

	"github.com/dmitrijs2005/cardboard/internal/api"
)

func (s *GRPCServer) ListNotifications(ctx context.Context, req *api.Empty) (*api.ListNotificationsResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	list, err := s.notifications.List(ctx, userID)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	out := make([]api.Notification, 0, len(list))
	for _, n := range list {
		out = append(out, notificationToAPI(n))
	}
	return &api.ListNotificationsResponse{Notifications: out}, nil
}

func (s *GRPCServer) MarkNotificationRead(ctx context.Context, req *api.NotificationRequest) (*api.Empty, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.notifications.MarkRead(ctx, req.NotificationID, userID); err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &api.Empty{}, nil
}

func (s *GRPCServer) MarkAllNotificationsRead(ctx context.Context, req *api.Empty) (*api.MarkAllNotificationsReadResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	n, err := s.notifications.MarkAllRead(ctx, userID)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &api.MarkAllNotificationsReadResponse{Updated: n}, nil
}

func (s *GRPCServer) DeleteNotification(ctx context.Context, req *api.NotificationRequest) (*api.Empty, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.notifications.Delete(ctx, req.NotificationID, userID); err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &api.Empty{}, nil
}

func (s *GRPCServer) UnreadCount(ctx context.Context, req *api.Empty) (*api.UnreadCountResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	n, err := s.notifications.UnreadCount(ctx, userID)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &api.UnreadCountResponse{Count: n}, nil
}
