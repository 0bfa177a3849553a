// Package notifications stores per-recipient feed entries.
package notifications

import (
	"context"

	"github.com/dmitrijs2005/cardboard/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, n *models.Notification) (*models.Notification, error)
	Get(ctx context.Context, id string) (*models.Notification, error)
	// ListForRecipient returns the feed of userID newest first, with the
	// sharer's profile name where available.
	ListForRecipient(ctx context.Context, userID string) ([]*models.Notification, error)
	// MarkRead and Delete act only on rows owned by recipientID and report
	// common.ErrorNotFound otherwise.
	MarkRead(ctx context.Context, id, recipientID string) error
	MarkAllRead(ctx context.Context, recipientID string) (int64, error)
	Delete(ctx context.Context, id, recipientID string) error
	UnreadCount(ctx context.Context, recipientID string) (int64, error)
}
