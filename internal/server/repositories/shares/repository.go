// Package shares is the registry of read-only card grants.
package shares

import (
	"context"

	"github.com/dmitrijs2005/cardboard/internal/server/models"
)

type Repository interface {
	// CreateOwned grants recipientID access to cardID, provided ownerID
	// still owns the card at insert time. Outcomes:
	//   - common.ErrorNotFound when the card is gone or not owned by ownerID;
	//   - common.ErrAlreadyShared when the grant already exists;
	//   - common.ErrSelfShareRejected when recipientID is the owner.
	CreateOwned(ctx context.Context, cardID, recipientID, ownerID string) (*models.Share, error)
	// DeleteForRecipient removes the grant (cardID, recipientID).
	// common.ErrorNotFound when there is none.
	DeleteForRecipient(ctx context.Context, cardID, recipientID string) error
	// ListForCard returns all grants of cardID with recipient emails,
	// newest first.
	ListForCard(ctx context.Context, cardID string) ([]*models.Share, error)
}
