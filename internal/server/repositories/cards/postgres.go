package cards

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/cardboard/internal/common"
	"github.com/dmitrijs2005/cardboard/internal/dbx"
	"github.com/dmitrijs2005/cardboard/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const cardColumns = `c.id, c.owner_id, c.display_name, c.icon_name, c.image_path, c.color, c.link, c.created_at, c.updated_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanCard(s scanner, withOwnerFlag bool) (*models.Card, error) {
	var (
		c                             models.Card
		icon, image, color, linkValue sql.NullString
	)
	dest := []any{&c.ID, &c.OwnerID, &c.DisplayName, &icon, &image, &color, &linkValue, &c.CreatedAt, &c.UpdatedAt}
	if withOwnerFlag {
		dest = append(dest, &c.IsOwner)
	}
	if err := s.Scan(dest...); err != nil {
		return nil, err
	}
	c.IconName, c.ImagePath, c.Color, c.Link = icon.String, image.String, color.String, linkValue.String
	return &c, nil
}

func mapWriteError(err error) error {
	switch {
	case dbx.IsNoMatch(err):
		return common.ErrorNotFound
	case dbx.IsCheckViolation(err):
		return fmt.Errorf("%w: %v", common.ErrorValidation, err)
	case dbx.IsForeignKeyViolation(err):
		return common.ErrorNotFound
	}
	return fmt.Errorf("db error: %w", err)
}

func (r *PostgresRepository) Create(ctx context.Context, card *models.Card) (*models.Card, error) {
	query := `
		INSERT INTO cards AS c (id, owner_id, display_name, icon_name, image_path, color, link)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + cardColumns

	row := r.db.QueryRowContext(ctx, query, card.ID, card.OwnerID, card.DisplayName,
		dbx.NullString(card.IconName), dbx.NullString(card.ImagePath), dbx.NullString(card.Color), dbx.NullString(card.Link))

	created, err := scanCard(row, false)
	if err != nil {
		return nil, mapWriteError(err)
	}
	created.IsOwner = true
	return created, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Card, error) {
	query := `SELECT ` + cardColumns + ` FROM cards c WHERE c.id = $1`

	card, err := scanCard(r.db.QueryRowContext(ctx, query, id), false)
	if err != nil {
		if dbx.IsNoMatch(err) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return card, nil
}

const visibleWhere = `(c.owner_id = $1 OR EXISTS (
			SELECT 1 FROM card_shares s WHERE s.card_id = c.id AND s.shared_with_id = $1))`

func (r *PostgresRepository) GetVisible(ctx context.Context, id string, userID string) (*models.Card, error) {
	query := `
		SELECT ` + cardColumns + `, (c.owner_id = $1) AS is_owner
		FROM cards c
		WHERE c.id = $2 AND ` + visibleWhere

	card, err := scanCard(r.db.QueryRowContext(ctx, query, userID, id), true)
	if err != nil {
		if dbx.IsNoMatch(err) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return card, nil
}

func (r *PostgresRepository) ListVisible(ctx context.Context, userID string) ([]*models.Card, error) {
	query := `
		SELECT ` + cardColumns + `, (c.owner_id = $1) AS is_owner
		FROM cards c
		WHERE ` + visibleWhere + `
		ORDER BY c.created_at DESC, c.id`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]*models.Card, 0)
	for rows.Next() {
		card, err := scanCard(rows, true)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, card)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

func (r *PostgresRepository) Update(ctx context.Context, card *models.Card) (*models.Card, error) {
	query := `
		UPDATE cards AS c
		SET display_name = $3, icon_name = $4, image_path = $5, color = $6, link = $7
		WHERE c.id = $1 AND c.owner_id = $2
		RETURNING ` + cardColumns

	row := r.db.QueryRowContext(ctx, query, card.ID, card.OwnerID, card.DisplayName,
		dbx.NullString(card.IconName), dbx.NullString(card.ImagePath), dbx.NullString(card.Color), dbx.NullString(card.Link))

	updated, err := scanCard(row, false)
	if err != nil {
		return nil, mapWriteError(err)
	}
	updated.IsOwner = true
	return updated, nil
}

func (r *PostgresRepository) DeleteOwned(ctx context.Context, id string, ownerID string) (*models.Card, error) {
	query := `
		DELETE FROM cards AS c
		WHERE c.id = $1 AND c.owner_id = $2
		RETURNING ` + cardColumns

	deleted, err := scanCard(r.db.QueryRowContext(ctx, query, id, ownerID), false)
	if err != nil {
		if dbx.IsNoMatch(err) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return deleted, nil
}
