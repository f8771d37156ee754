package postgres

import (
	"database/sql"
	"errors"

	crerr "github.com/cockroachdb/errors"
	"github.com/lib/pq"
)

const (
	pqUniqueViolation     = "23505"
	pqForeignKeyViolation = "23503"
)

func isNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation
}

func isForeignKeyViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == pqForeignKeyViolation
}

// markConstraintError classifies a driver error against the domain sentinels
// the caller passes for the two constraint classes. Other errors pass through
// untouched so callers can wrap them.
func markConstraintError(err error, onUnique, onForeignKey error) error {
	switch {
	case onUnique != nil && isUniqueViolation(err):
		return crerr.Mark(err, onUnique)
	case onForeignKey != nil && isForeignKeyViolation(err):
		return crerr.Mark(err, onForeignKey)
	default:
		return err
	}
}
