// Package cache is the CLI's local SQLite store: the persisted session and
// the last card list seen online.
package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/cardboard/internal/api"
	"github.com/dmitrijs2005/cardboard/internal/client/migrations"
	"github.com/dmitrijs2005/cardboard/internal/client/models"
	"github.com/dmitrijs2005/cardboard/internal/client/repositories/cards"
	"github.com/dmitrijs2005/cardboard/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/cardboard/internal/common"
	"github.com/dmitrijs2005/cardboard/internal/dbx"
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite"
)

const (
	keyEmail        = "email"
	keyAccessToken  = "access_token"
	keyRefreshToken = "refresh_token"
)

type Store struct {
	db *sql.DB
}

// Open opens (or creates) the cache at path and applies migrations.
// ":memory:" is accepted for tests.
func Open(ctx context.Context, path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open cache: %w", err)
	}
	// a single connection keeps ":memory:" databases shared
	db.SetMaxOpenConns(1)

	if err := runMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate cache: %w", err)
	}
	return &Store{db: db}, nil
}

func runMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}
	return goose.UpContext(ctx, db, ".")
}

func (s *Store) Close() error {
	return s.db.Close()
}

// LoadSession returns the persisted session, or an empty one.
func (s *Store) LoadSession(ctx context.Context) (models.Session, error) {
	repo := metadata.NewSQLiteRepository(s.db)
	var sess models.Session
	for key, dst := range map[string]*string{
		keyEmail:        &sess.Email,
		keyAccessToken:  &sess.AccessToken,
		keyRefreshToken: &sess.RefreshToken,
	} {
		v, err := repo.Get(ctx, key)
		if errors.Is(err, common.ErrorNotFound) {
			continue
		}
		if err != nil {
			return models.Session{}, err
		}
		*dst = v
	}
	return sess, nil
}

func (s *Store) SaveSession(ctx context.Context, sess models.Session) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, keyEmail, sess.Email); err != nil {
			return err
		}
		if err := repo.Set(ctx, keyAccessToken, sess.AccessToken); err != nil {
			return err
		}
		return repo.Set(ctx, keyRefreshToken, sess.RefreshToken)
	})
}

func (s *Store) SaveCards(ctx context.Context, list []api.Card) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return cards.NewSQLiteRepository(tx).Replace(ctx, list)
	})
}

func (s *Store) LoadCards(ctx context.Context) ([]api.Card, error) {
	return cards.NewSQLiteRepository(s.db).List(ctx)
}

// Clear forgets the session and the cached cards, as on logout.
func (s *Store) Clear(ctx context.Context) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := metadata.NewSQLiteRepository(tx).Clear(ctx); err != nil {
			return err
		}
		return cards.NewSQLiteRepository(tx).Clear(ctx)
	})
}
