// Package cards persists cards and answers visibility queries: a user sees
// the cards they own plus the cards shared with them.
package cards

import (
	"context"

	"github.com/dmitrijs2005/cardboard/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, card *models.Card) (*models.Card, error)
	// GetByID loads a card regardless of who asks. IsOwner is left false.
	GetByID(ctx context.Context, id string) (*models.Card, error)
	// GetVisible loads a card only if userID owns it or holds a grant.
	GetVisible(ctx context.Context, id string, userID string) (*models.Card, error)
	// ListVisible returns every card userID owns or holds a grant for,
	// newest first.
	ListVisible(ctx context.Context, userID string) ([]*models.Card, error)
	// Update writes the editable fields of a card owned by card.OwnerID.
	Update(ctx context.Context, card *models.Card) (*models.Card, error)
	// DeleteOwned removes the card if ownerID owns it and returns the
	// deleted row. Grants go with it through the cascading foreign key.
	DeleteOwned(ctx context.Context, id string, ownerID string) (*models.Card, error)
}
