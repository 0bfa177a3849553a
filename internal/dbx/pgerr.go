package dbx

import (
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE codes the repositories translate into domain errors.
const (
	CodeUniqueViolation     = "23505"
	CodeForeignKeyViolation = "23503"
	CodeCheckViolation      = "23514"

	// CodeInvalidTextRepresentation is raised when a client-supplied id is
	// not a valid uuid.
	CodeInvalidTextRepresentation = "22P02"
)

// PgCode returns the SQLSTATE of err if it wraps a *pgconn.PgError.
func PgCode(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code, true
	}
	return "", false
}

func IsUniqueViolation(err error) bool {
	c, ok := PgCode(err)
	return ok && c == CodeUniqueViolation
}

func IsForeignKeyViolation(err error) bool {
	c, ok := PgCode(err)
	return ok && c == CodeForeignKeyViolation
}

func IsCheckViolation(err error) bool {
	c, ok := PgCode(err)
	return ok && c == CodeCheckViolation
}

func IsInvalidTextRepresentation(err error) bool {
	c, ok := PgCode(err)
	return ok && c == CodeInvalidTextRepresentation
}

// IsNoMatch reports whether err means the id matched no row: either no row
// came back or the id could not be a uuid at all.
func IsNoMatch(err error) bool {
	return errors.Is(err, sql.ErrNoRows) || IsInvalidTextRepresentation(err)
}
