package postgres

import (
	"strings"

	"accounts/internal/errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// pgErrorCode returns the SQLSTATE of a PostgreSQL error anywhere in err's chain.
func pgErrorCode(err error) string {
	if pgErr, ok := errors.Find[*pgconn.PgError](err); ok {
		return pgErr.Code
	}

	return ""
}

func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) || pgErrorCode(err) == pgerrcode.UniqueViolation {
		return true
	}

	// Drivers without error translation (SQLite) only expose the message.
	return strings.Contains(strings.ToLower(err.Error()), "unique constraint")
}

func isNotNullConstraintViolation(err error) bool {
	if pgErrorCode(err) == pgerrcode.NotNullViolation {
		return true
	}

	return strings.Contains(strings.ToLower(err.Error()), "not null constraint")
}

func isCheckConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrCheckConstraintViolated) || pgErrorCode(err) == pgerrcode.CheckViolation
}
