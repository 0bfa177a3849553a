package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/cardboard/internal/dbx"
	"github.com/dmitrijs2005/cardboard/internal/server/repositories/cards"
	"github.com/dmitrijs2005/cardboard/internal/server/repositories/notifications"
	"github.com/dmitrijs2005/cardboard/internal/server/repositories/profiles"
	"github.com/dmitrijs2005/cardboard/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/cardboard/internal/server/repositories/shares"
	"github.com/dmitrijs2005/cardboard/internal/server/repositories/users"
)

// RepositoryManager vends repositories bound to a DBTX, so the same
// service code runs against *sql.DB or inside dbx.WithTx.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Profiles(db dbx.DBTX) profiles.Repository
	RefreshTokens(db dbx.DBTX) refreshtokens.Repository
	Cards(db dbx.DBTX) cards.Repository
	Shares(db dbx.DBTX) shares.Repository
	Notifications(db dbx.DBTX) notifications.Repository
}
