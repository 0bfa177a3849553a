package services

import (
	"context"

	"github.com/dmitrijs2005/cardboard/internal/common"
	"github.com/dmitrijs2005/cardboard/internal/logging"
	"github.com/dmitrijs2005/cardboard/internal/server/models"
	"github.com/dmitrijs2005/cardboard/internal/server/repositories/cards"
	"github.com/dmitrijs2005/cardboard/internal/server/storage"
)

// loadOwnedCard returns common.ErrorNotFound for a missing card and
// common.ErrPermissionDenied when actorID is not its owner.
func loadOwnedCard(ctx context.Context, repo cards.Repository, cardID, actorID string) (*models.Card, error) {
	card, err := repo.GetByID(ctx, cardID)
	if err != nil {
		return nil, err
	}
	if card.OwnerID != actorID {
		return nil, common.ErrPermissionDenied
	}
	card.IsOwner = true
	return card, nil
}

// deleteObjectBestEffort removes key, logging failures instead of
// returning them.
func deleteObjectBestEffort(ctx context.Context, store storage.ObjectStore, logger logging.Logger, key string) {
	if err := store.Delete(context.WithoutCancel(ctx), key); err != nil {
		logger.Warn(ctx, "object delete failed", "key", key, "error", err)
	}
}
