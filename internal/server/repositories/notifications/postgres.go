package notifications

import (
	"context"
	"database/sql"
	"encoding/json"
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

func (r *PostgresRepository) Create(ctx context.Context, n *models.Notification) (*models.Notification, error) {
	payload, err := json.Marshal(n.Payload)
	if err != nil {
		return nil, fmt.Errorf("encode payload: %w", err)
	}

	query := `
		INSERT INTO notifications (recipient_id, kind, payload)
		VALUES ($1, $2, $3::jsonb)
		RETURNING id, read, created_at
	`
	if err := r.db.QueryRowContext(ctx, query, n.RecipientID, n.Kind, string(payload)).
		Scan(&n.ID, &n.Read, &n.CreatedAt); err != nil {
		if dbx.IsForeignKeyViolation(err) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}

func (r *PostgresRepository) Get(ctx context.Context, id string) (*models.Notification, error) {
	query := `SELECT id, recipient_id, kind, payload, read, created_at FROM notifications WHERE id = $1`

	var (
		n       models.Notification
		payload []byte
	)
	err := r.db.QueryRowContext(ctx, query, id).Scan(&n.ID, &n.RecipientID, &n.Kind, &payload, &n.Read, &n.CreatedAt)
	if err != nil {
		if dbx.IsNoMatch(err) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	if err := json.Unmarshal(payload, &n.Payload); err != nil {
		return nil, fmt.Errorf("decode payload: %w", err)
	}
	return &n, nil
}

func (r *PostgresRepository) ListForRecipient(ctx context.Context, userID string) ([]*models.Notification, error) {
	query := `
		SELECT n.id, n.recipient_id, n.kind, n.payload, n.read, n.created_at,
		       p.first_name, p.last_name
		FROM notifications n
		LEFT JOIN profiles p ON p.user_id::text = n.payload->>'sharer_id'
		WHERE n.recipient_id = $1
		ORDER BY n.created_at DESC, n.id
	`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]*models.Notification, 0)
	for rows.Next() {
		var (
			n           models.Notification
			payload     []byte
			first, last sql.NullString
		)
		if err := rows.Scan(&n.ID, &n.RecipientID, &n.Kind, &payload, &n.Read, &n.CreatedAt, &first, &last); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		if err := json.Unmarshal(payload, &n.Payload); err != nil {
			return nil, fmt.Errorf("decode payload: %w", err)
		}
		n.SharerFirstName, n.SharerLastName = first.String, last.String
		result = append(result, &n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

func (r *PostgresRepository) MarkRead(ctx context.Context, id, recipientID string) error {
	query := `UPDATE notifications SET read = true WHERE id = $1 AND recipient_id = $2`
	return r.execOne(ctx, query, id, recipientID)
}

func (r *PostgresRepository) MarkAllRead(ctx context.Context, recipientID string) (int64, error) {
	query := `UPDATE notifications SET read = true WHERE recipient_id = $1 AND NOT read`

	res, err := r.db.ExecContext(ctx, query, recipientID)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id, recipientID string) error {
	query := `DELETE FROM notifications WHERE id = $1 AND recipient_id = $2`
	return r.execOne(ctx, query, id, recipientID)
}

func (r *PostgresRepository) UnreadCount(ctx context.Context, recipientID string) (int64, error) {
	query := `SELECT count(*) FROM notifications WHERE recipient_id = $1 AND NOT read`

	var n int64
	if err := r.db.QueryRowContext(ctx, query, recipientID).Scan(&n); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}

func (r *PostgresRepository) execOne(ctx context.Context, query string, args ...any) error {
	res, err := r.db.ExecContext(ctx, query, args...)
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
