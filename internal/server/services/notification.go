package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/cardboard/internal/common"
	"github.com/dmitrijs2005/cardboard/internal/server/models"
	"github.com/dmitrijs2005/cardboard/internal/server/repositories/repomanager"
)

// NotificationService is the recipient-facing feed. Every action on an
// entry requires the actor to be its recipient.
type NotificationService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewNotificationService(db *sql.DB, m repomanager.RepositoryManager) *NotificationService {
	return &NotificationService{db: db, repomanager: m}
}

// NotifyCardShared records that sharerID shared cardID with recipientID.
func (s *NotificationService) NotifyCardShared(ctx context.Context, recipientID, cardID, cardName, sharerID string) error {
	_, err := s.repomanager.Notifications(s.db).Create(ctx, &models.Notification{
		RecipientID: recipientID,
		Kind:        common.NotificationKindCardShared,
		Payload:     models.NotificationPayload{CardID: cardID, CardName: cardName, SharerID: sharerID},
	})
	if err != nil {
		return fmt.Errorf("error creating notification: %w", err)
	}
	return nil
}

func (s *NotificationService) List(ctx context.Context, userID string) ([]*models.Notification, error) {
	return s.repomanager.Notifications(s.db).ListForRecipient(ctx, userID)
}

func (s *NotificationService) MarkRead(ctx context.Context, id, actorID string) error {
	if err := s.checkRecipient(ctx, id, actorID); err != nil {
		return err
	}
	return s.repomanager.Notifications(s.db).MarkRead(ctx, id, actorID)
}

// MarkAllRead returns how many entries changed.
func (s *NotificationService) MarkAllRead(ctx context.Context, actorID string) (int64, error) {
	return s.repomanager.Notifications(s.db).MarkAllRead(ctx, actorID)
}

func (s *NotificationService) Delete(ctx context.Context, id, actorID string) error {
	if err := s.checkRecipient(ctx, id, actorID); err != nil {
		return err
	}
	return s.repomanager.Notifications(s.db).Delete(ctx, id, actorID)
}

func (s *NotificationService) UnreadCount(ctx context.Context, actorID string) (int64, error) {
	return s.repomanager.Notifications(s.db).UnreadCount(ctx, actorID)
}

func (s *NotificationService) checkRecipient(ctx context.Context, id, actorID string) error {
	n, err := s.repomanager.Notifications(s.db).Get(ctx, id)
	if err != nil {
		return err
	}
	if n.RecipientID != actorID {
		return common.ErrPermissionDenied
	}
	return nil
}
