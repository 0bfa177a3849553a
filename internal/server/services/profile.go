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
)

type ProfileService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	avatars     storage.ObjectStore
	logger      logging.Logger
}

func NewProfileService(db *sql.DB, m repomanager.RepositoryManager, avatars storage.ObjectStore, logger logging.Logger) *ProfileService {
	return &ProfileService{db: db, repomanager: m, avatars: avatars, logger: logger.With("service", "profiles")}
}

func (s *ProfileService) AvatarURL(p *models.Profile) string {
	return s.avatars.PublicURL(p.AvatarPath)
}

func (s *ProfileService) Get(ctx context.Context, userID string) (*models.Profile, error) {
	return s.repomanager.Profiles(s.db).Get(ctx, userID)
}

func (s *ProfileService) Update(ctx context.Context, userID, firstName, lastName, phone string) (*models.Profile, error) {
	p := &models.Profile{UserID: userID, FirstName: firstName, LastName: lastName, Phone: phone}
	p.Normalize()
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return s.repomanager.Profiles(s.db).Update(ctx, p)
}

// UploadAvatar stores img at <user>/avatar.<ext>. An avatar with another
// extension is removed afterwards.
func (s *ProfileService) UploadAvatar(ctx context.Context, userID string, img *models.Image) (*models.Profile, error) {
	if img == nil {
		return nil, fmt.Errorf("%w: image is required", common.ErrorValidation)
	}
	if err := img.Validate(); err != nil {
		return nil, err
	}

	repo := s.repomanager.Profiles(s.db)
	current, err := repo.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	key := storage.AvatarKey(userID, img.Ext)
	if err := s.avatars.Put(ctx, key, img.ContentType, img.Data); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrTransport, err)
	}
	if err := repo.SetAvatar(ctx, userID, key); err != nil {
		return nil, fmt.Errorf("error saving avatar: %w", err)
	}
	if current.AvatarPath != "" && current.AvatarPath != key {
		deleteObjectBestEffort(ctx, s.avatars, s.logger, current.AvatarPath)
	}

	return repo.Get(ctx, userID)
}
