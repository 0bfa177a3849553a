// Package profiles stores the optional personal details of a user.
package profiles

import (
	"context"

	"github.com/dmitrijs2005/cardboard/internal/server/models"
)

type Repository interface {
	// Create inserts an empty profile for userID.
	Create(ctx context.Context, userID string) error
	Get(ctx context.Context, userID string) (*models.Profile, error)
	// Update writes the name and phone fields and returns the stored row.
	Update(ctx context.Context, p *models.Profile) (*models.Profile, error)
	SetAvatar(ctx context.Context, userID string, avatarPath string) error
}
