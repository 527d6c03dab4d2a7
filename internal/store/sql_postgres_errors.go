package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// postgresError returns the SQLSTATE code of err, or an empty string when err
// does not come from the PostgreSQL server.
func postgresError(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// isRetryable reports whether the failed operation may succeed when run
// again: connection exceptions (class 08), transaction rollbacks such as
// serialization failures and deadlocks (class 40) and "cannot connect now"
// during server start-up.
//
// Constraint violations, data exceptions and syntax errors are final.
// See https://www.postgresql.org/docs/current/errcodes-appendix.html.
func isRetryable(err error) bool {
	code := postgresError(err)
	if code == "" {
		return false
	}
	return pgerrcode.IsConnectionException(code) ||
		pgerrcode.IsTransactionRollback(code) ||
		code == pgerrcode.CannotConnectNow
}

// isUniqueViolation reports whether err is a unique constraint violation on
// the named constraint. An empty constraint matches any unique violation.
func isUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != pgerrcode.UniqueViolation {
		return false
	}
	return constraint == "" || pgErr.ConstraintName == constraint
}
