package profiles

import (
	"context"
	"database/sql"
	"errors"
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

func (r *PostgresRepository) Create(ctx context.Context, userID string) error {
	query := `INSERT INTO profiles (user_id) VALUES ($1)`

	if _, err := r.db.ExecContext(ctx, query, userID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

const profileColumns = `user_id, first_name, last_name, phone, avatar_path, updated_at`

func (r *PostgresRepository) Get(ctx context.Context, userID string) (*models.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE user_id = $1`

	return scanProfile(r.db.QueryRowContext(ctx, query, userID))
}

func (r *PostgresRepository) Update(ctx context.Context, p *models.Profile) (*models.Profile, error) {
	query := `
		UPDATE profiles
		SET first_name = $2, last_name = $3, phone = $4, updated_at = now()
		WHERE user_id = $1
		RETURNING ` + profileColumns

	return scanProfile(r.db.QueryRowContext(ctx, query, p.UserID,
		dbx.NullString(p.FirstName), dbx.NullString(p.LastName), dbx.NullString(p.Phone)))
}

func (r *PostgresRepository) SetAvatar(ctx context.Context, userID string, avatarPath string) error {
	query := `UPDATE profiles SET avatar_path = $2, updated_at = now() WHERE user_id = $1`

	res, err := r.db.ExecContext(ctx, query, userID, dbx.NullString(avatarPath))
	if err != nil {
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

func scanProfile(row *sql.Row) (*models.Profile, error) {
	var (
		p                            models.Profile
		first, last, phone, avatarPt sql.NullString
	)
	if err := row.Scan(&p.UserID, &first, &last, &phone, &avatarPt, &p.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	p.FirstName, p.LastName, p.Phone, p.AvatarPath = first.String, last.String, phone.String, avatarPt.String
	return &p, nil
}
