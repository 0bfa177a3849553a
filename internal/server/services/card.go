package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/cardboard/internal/common"
	"github.com/dmitrijs2005/cardboard/internal/logging"
	"github.com/dmitrijs2005/cardboard/internal/server/models"
	"github.com/dmitrijs2005/cardboard/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/cardboard/internal/server/storage"
	"github.com/google/uuid"
)

// CardInput carries the user-editable fields of a card. Image, when set,
// replaces IconName.
type CardInput struct {
	DisplayName string
	IconName    string
	Color       string
	Link        string
	Image       *models.Image
}

// CardService creates, reads and edits cards. Reads go through the
// visibility rule; edits are owner-only.
type CardService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	images      storage.ObjectStore
	logger      logging.Logger
}

func NewCardService(db *sql.DB, m repomanager.RepositoryManager, images storage.ObjectStore, logger logging.Logger) *CardService {
	return &CardService{db: db, repomanager: m, images: images, logger: logger.With("service", "cards")}
}

// ImageURL returns the public URL of a card image, or "" for icon cards.
func (s *CardService) ImageURL(c *models.Card) string {
	return s.images.PublicURL(c.ImagePath)
}

func (s *CardService) CreateCard(ctx context.Context, ownerID string, in CardInput) (*models.Card, error) {
	card := &models.Card{
		ID:          uuid.NewString(),
		OwnerID:     ownerID,
		DisplayName: in.DisplayName,
		IconName:    in.IconName,
		Color:       in.Color,
		Link:        in.Link,
	}
	card.Normalize()

	if in.Image != nil {
		if err := in.Image.Validate(); err != nil {
			return nil, err
		}
		card.ImagePath = storage.CardImageKey(ownerID, card.ID, in.Image.Ext)
	}
	if err := card.Validate(); err != nil {
		return nil, err
	}

	if in.Image != nil {
		if err := s.images.Put(ctx, card.ImagePath, in.Image.ContentType, in.Image.Data); err != nil {
			return nil, fmt.Errorf("%w: %v", common.ErrTransport, err)
		}
	}

	created, err := s.repomanager.Cards(s.db).Create(ctx, card)
	if err != nil {
		if card.ImagePath != "" {
			s.deleteObject(ctx, card.ImagePath)
		}
		return nil, fmt.Errorf("error creating card: %w", err)
	}
	return created, nil
}

func (s *CardService) GetCard(ctx context.Context, cardID, userID string) (*models.Card, error) {
	return s.repomanager.Cards(s.db).GetVisible(ctx, cardID, userID)
}

// ListCards returns every card userID owns or has been granted, newest first.
func (s *CardService) ListCards(ctx context.Context, userID string) ([]*models.Card, error) {
	return s.repomanager.Cards(s.db).ListVisible(ctx, userID)
}

// UpdateCard edits the text fields. A non-empty IconName switches an image
// card back to an icon and drops the stored image.
func (s *CardService) UpdateCard(ctx context.Context, cardID, actorID string, in CardInput) (*models.Card, error) {
	card, err := s.ownedCard(ctx, cardID, actorID)
	if err != nil {
		return nil, err
	}

	oldImage := card.ImagePath
	card.DisplayName, card.Color, card.Link = in.DisplayName, in.Color, in.Link
	if in.IconName != "" {
		card.IconName = in.IconName
		card.ImagePath = ""
	}
	card.Normalize()
	if err := card.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.repomanager.Cards(s.db).Update(ctx, card)
	if err != nil {
		return nil, fmt.Errorf("error updating card: %w", err)
	}
	if oldImage != "" && updated.ImagePath == "" {
		s.deleteObject(ctx, oldImage)
	}
	return updated, nil
}

// SetCardImage uploads img and makes it the card's picture.
func (s *CardService) SetCardImage(ctx context.Context, cardID, actorID string, img *models.Image) (*models.Card, error) {
	if img == nil {
		return nil, fmt.Errorf("%w: image is required", common.ErrorValidation)
	}
	card, err := s.ownedCard(ctx, cardID, actorID)
	if err != nil {
		return nil, err
	}
	if err := img.Validate(); err != nil {
		return nil, err
	}

	oldImage := card.ImagePath
	card.ImagePath = storage.CardImageKey(card.OwnerID, card.ID, img.Ext)
	card.IconName = ""

	if err := s.images.Put(ctx, card.ImagePath, img.ContentType, img.Data); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrTransport, err)
	}

	updated, err := s.repomanager.Cards(s.db).Update(ctx, card)
	if err != nil {
		if card.ImagePath != oldImage {
			s.deleteObject(ctx, card.ImagePath)
		}
		return nil, fmt.Errorf("error updating card: %w", err)
	}
	if oldImage != "" && oldImage != updated.ImagePath {
		s.deleteObject(ctx, oldImage)
	}
	return updated, nil
}

// RemoveCardImage drops the picture and falls back to iconName.
func (s *CardService) RemoveCardImage(ctx context.Context, cardID, actorID, iconName string) (*models.Card, error) {
	card, err := s.ownedCard(ctx, cardID, actorID)
	if err != nil {
		return nil, err
	}
	if iconName == "" {
		return nil, fmt.Errorf("%w: icon_name is required when removing the image", common.ErrorValidation)
	}

	oldImage := card.ImagePath
	card.ImagePath = ""
	card.IconName = iconName
	card.Normalize()
	if err := card.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.repomanager.Cards(s.db).Update(ctx, card)
	if err != nil {
		return nil, fmt.Errorf("error updating card: %w", err)
	}
	if oldImage != "" {
		s.deleteObject(ctx, oldImage)
	}
	return updated, nil
}

// ownedCard loads cardID and checks that actorID owns it.
func (s *CardService) ownedCard(ctx context.Context, cardID, actorID string) (*models.Card, error) {
	return loadOwnedCard(ctx, s.repomanager.Cards(s.db), cardID, actorID)
}

func (s *CardService) deleteObject(ctx context.Context, key string) {
	deleteObjectBestEffort(ctx, s.images, s.logger, key)
}
