// Package cards keeps the last card list fetched from the server, so the
// CLI can still show the board while offline.
package cards

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/cardboard/internal/api"
	"github.com/dmitrijs2005/cardboard/internal/dbx"
)

type Repository interface {
	// Replace drops the cached list and stores cards in the given order.
	Replace(ctx context.Context, cards []api.Card) error
	List(ctx context.Context) ([]api.Card, error)
	Clear(ctx context.Context) error
}

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// Replace is meant to run inside dbx.WithTx; on a bare *sql.DB a failure
// halfway leaves a partial list.
func (r *SQLiteRepository) Replace(ctx context.Context, cards []api.Card) error {
	if err := r.Clear(ctx); err != nil {
		return err
	}
	for i, c := range cards {
		_, err := r.db.ExecContext(ctx, `
			INSERT INTO cards (position, id, owner_id, display_name, icon_name, image_url, color, link, is_owner, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			i, c.ID, c.OwnerID, c.DisplayName, c.IconName, c.ImageURL, c.Color, c.Link, c.IsOwner,
			c.CreatedAt.UnixNano(), c.UpdatedAt.UnixNano())
		if err != nil {
			return fmt.Errorf("cache card %s: %w", c.ID, err)
		}
	}
	return nil
}

func (r *SQLiteRepository) List(ctx context.Context) ([]api.Card, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, owner_id, display_name, icon_name, image_url, color, link, is_owner, created_at, updated_at
		FROM cards ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("list cached cards: %w", err)
	}
	defer rows.Close()

	result := make([]api.Card, 0)
	for rows.Next() {
		var c api.Card
		var created, updated int64
		if err := rows.Scan(&c.ID, &c.OwnerID, &c.DisplayName, &c.IconName, &c.ImageURL,
			&c.Color, &c.Link, &c.IsOwner, &created, &updated); err != nil {
			return nil, fmt.Errorf("scan cached card: %w", err)
		}
		c.CreatedAt = time.Unix(0, created).UTC()
		c.UpdatedAt = time.Unix(0, updated).UTC()
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate cached cards: %w", err)
	}
	return result, nil
}

func (r *SQLiteRepository) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM cards`); err != nil {
		return fmt.Errorf("clear cached cards: %w", err)
	}
	return nil
}
