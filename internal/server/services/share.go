package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/cardboard/internal/common"
	"github.com/dmitrijs2005/cardboard/internal/logging"
	"github.com/dmitrijs2005/cardboard/internal/server/models"
	"github.com/dmitrijs2005/cardboard/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/cardboard/internal/server/storage"
)

// NotificationWarning is reported when a share committed but the
// recipient could not be told about it.
const NotificationWarning = "card shared, but the recipient could not be notified"

const defaultNotifyTimeout = 5 * time.Second

// Notifier is the post-commit notification step of a share.
type Notifier interface {
	NotifyCardShared(ctx context.Context, recipientID, cardID, cardName, sharerID string) error
}

type ShareResult struct {
	Share *models.Share
	// Warning is non-empty when the notification step failed.
	Warning string
}

type RemoveAccessResult struct {
	// CardDeleted is true when the owner removed the card itself, false
	// when a recipient dropped their own grant.
	CardDeleted bool
}

// ShareService issues and revokes card grants.
type ShareService struct {
	db            *sql.DB
	repomanager   repomanager.RepositoryManager
	images        storage.ObjectStore
	notifier      Notifier
	notifyTimeout time.Duration
	logger        logging.Logger
}

func NewShareService(db *sql.DB, m repomanager.RepositoryManager, images storage.ObjectStore,
	notifier Notifier, notifyTimeout time.Duration, logger logging.Logger) *ShareService {
	if notifyTimeout <= 0 {
		notifyTimeout = defaultNotifyTimeout
	}
	return &ShareService{
		db:            db,
		repomanager:   m,
		images:        images,
		notifier:      notifier,
		notifyTimeout: notifyTimeout,
		logger:        logger.With("service", "shares"),
	}
}

// ShareCard grants the user behind recipientEmail read access to cardID.
// Only the owner may share. The notification runs after the grant is
// stored and cannot undo it.
func (s *ShareService) ShareCard(ctx context.Context, cardID, recipientEmail, actorID string) (*ShareResult, error) {
	card, err := loadOwnedCard(ctx, s.repomanager.Cards(s.db), cardID, actorID)
	if err != nil {
		return nil, err
	}

	email := models.NormalizeEmail(recipientEmail)
	if email == "" {
		return nil, fmt.Errorf("%w: recipient email is required", common.ErrorValidation)
	}

	recipient, err := s.repomanager.Users(s.db).GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrRecipientNotFound
		}
		return nil, fmt.Errorf("error resolving recipient: %w", err)
	}
	if recipient.ID == actorID {
		return nil, common.ErrSelfShareRejected
	}

	share, err := s.repomanager.Shares(s.db).CreateOwned(ctx, card.ID, recipient.ID, actorID)
	if err != nil {
		return nil, err
	}
	share.SharedWithEmail = recipient.Email

	result := &ShareResult{Share: share}
	if err := s.notify(ctx, recipient.ID, card, actorID); err != nil {
		s.logger.Warn(ctx, "share notification failed",
			"card_id", card.ID, "recipient_id", recipient.ID, "error", err)
		result.Warning = NotificationWarning
	}
	return result, nil
}

func (s *ShareService) notify(ctx context.Context, recipientID string, card *models.Card, sharerID string) error {
	nctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.notifyTimeout)
	defer cancel()
	return s.notifier.NotifyCardShared(nctx, recipientID, card.ID, card.DisplayName, sharerID)
}

// RemoveAccess is the one "remove" action of the board: the owner deletes
// the card for everyone, a recipient drops only their own grant.
func (s *ShareService) RemoveAccess(ctx context.Context, cardID, actorID string) (*RemoveAccessResult, error) {
	cardsRepo := s.repomanager.Cards(s.db)

	card, err := cardsRepo.GetByID(ctx, cardID)
	if err != nil {
		return nil, err
	}

	if card.OwnerID == actorID {
		deleted, err := cardsRepo.DeleteOwned(ctx, cardID, actorID)
		if err != nil {
			return nil, err
		}
		if deleted.ImagePath != "" {
			deleteObjectBestEffort(ctx, s.images, s.logger, deleted.ImagePath)
		}
		return &RemoveAccessResult{CardDeleted: true}, nil
	}

	if err := s.repomanager.Shares(s.db).DeleteForRecipient(ctx, cardID, actorID); err != nil {
		return nil, err
	}
	return &RemoveAccessResult{CardDeleted: false}, nil
}

// ListShares returns the grants of a card to its owner.
func (s *ShareService) ListShares(ctx context.Context, cardID, actorID string) ([]*models.Share, error) {
	if _, err := loadOwnedCard(ctx, s.repomanager.Cards(s.db), cardID, actorID); err != nil {
		return nil, err
	}
	return s.repomanager.Shares(s.db).ListForCard(ctx, cardID)
}

// RevokeShare lets the owner withdraw one recipient's grant.
func (s *ShareService) RevokeShare(ctx context.Context, cardID, recipientID, actorID string) error {
	if _, err := loadOwnedCard(ctx, s.repomanager.Cards(s.db), cardID, actorID); err != nil {
		return err
	}
	return s.repomanager.Shares(s.db).DeleteForRecipient(ctx, cardID, recipientID)
}
