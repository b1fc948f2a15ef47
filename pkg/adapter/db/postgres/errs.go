package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// uniqueViolation is the PostgreSQL SQLSTATE code of a unique
// constraint violation.
const uniqueViolation = "23505"

// IsUniqueViolation reports whether err was caused by a unique
// constraint violation, so the repository packages can classify it
// as a key conflict instead of a generic server error.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) &&
		pgErr.SQLState() == uniqueViolation
}
