package shares

import (
	"context"
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

func (r *PostgresRepository) CreateOwned(ctx context.Context, cardID, recipientID, ownerID string) (*models.Share, error) {
	// The SELECT re-checks ownership in the same statement, so a card
	// deleted or never owned yields no row instead of a stray grant.
	query := `
		INSERT INTO card_shares (card_id, shared_with_id, shared_by_id)
		SELECT c.id, $2, c.owner_id
		FROM cards c
		WHERE c.id = $1 AND c.owner_id = $3
		RETURNING id, card_id, shared_with_id, shared_by_id, created_at
	`
	s := &models.Share{}
	err := r.db.QueryRowContext(ctx, query, cardID, recipientID, ownerID).
		Scan(&s.ID, &s.CardID, &s.SharedWithID, &s.SharedByID, &s.CreatedAt)

	switch {
	case err == nil:
		return s, nil
	case dbx.IsNoMatch(err):
		return nil, common.ErrorNotFound
	case dbx.IsUniqueViolation(err):
		return nil, common.ErrAlreadyShared
	case dbx.IsForeignKeyViolation(err):
		return nil, common.ErrorNotFound
	case dbx.IsCheckViolation(err):
		return nil, common.ErrSelfShareRejected
	}
	return nil, fmt.Errorf("db error: %w", err)
}

func (r *PostgresRepository) DeleteForRecipient(ctx context.Context, cardID, recipientID string) error {
	query := `DELETE FROM card_shares WHERE card_id = $1 AND shared_with_id = $2`

	res, err := r.db.ExecContext(ctx, query, cardID, recipientID)
	if err != nil {
		if dbx.IsInvalidTextRepresentation(err) {
			return common.ErrorNotFound
		}
		return fmt.Errorf("db error: %w", err)
	}

	n, err := res.RowsAffected()
	switch {
	case err != nil:
		return fmt.Errorf("db error: %w", err)
	case n == 0:
		return common.ErrorNotFound
	}
	return nil
}

func (r *PostgresRepository) ListForCard(ctx context.Context, cardID string) ([]*models.Share, error) {
	query := `
		SELECT s.id, s.card_id, s.shared_with_id, s.shared_by_id, s.created_at, u.email
		FROM card_shares s
		JOIN users u ON u.id = s.shared_with_id
		WHERE s.card_id = $1
		ORDER BY s.created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query, cardID)
	if err != nil {
		if dbx.IsInvalidTextRepresentation(err) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]*models.Share, 0)
	for rows.Next() {
		s := &models.Share{}
		if err := rows.Scan(&s.ID, &s.CardID, &s.SharedWithID, &s.SharedByID, &s.CreatedAt, &s.SharedWithEmail); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}
