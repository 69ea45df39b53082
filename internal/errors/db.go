package errors

import (
	"errors"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// PostgreSQL SQLSTATE codes for integrity violations.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// MySQL error numbers for integrity violations.
const (
	mysqlDuplicateEntry      = 1062
	mysqlForeignKeyViolation = 1452
)

// ParseDBError translates a database error into the corresponding APIError.
// Constraint violations are mapped here, at the store boundary, so that
// handlers never leak raw driver errors and concurrent writers racing on a
// unique index resolve to one winner and one Conflict response.
// An already-parsed APIError passes through unchanged; nil maps to nil.
func ParseDBError(err error) *APIError {
	if err == nil {
		return nil
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrResourceNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return ErrDuplicateResource
		case pgForeignKeyViolation:
			return ErrResourceNotFound
		}
		return ErrDatabase
	}

	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		switch mysqlErr.Number {
		case mysqlDuplicateEntry:
			return ErrDuplicateResource
		case mysqlForeignKeyViolation:
			return ErrResourceNotFound
		}
		return ErrDatabase
	}

	// The pure-Go SQLite driver surfaces constraint failures as plain strings.
	msg := err.Error()
	if strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "constraint failed: UNIQUE") {
		return ErrDuplicateResource
	}
	if strings.Contains(msg, "FOREIGN KEY constraint failed") ||
		strings.Contains(msg, "constraint failed: FOREIGN KEY") {
		return ErrResourceNotFound
	}

	return ErrDatabase
}

// IsDuplicate reports whether err is a uniqueness violation.
func IsDuplicate(err error) bool {
	parsed := ParseDBError(err)
	return parsed != nil && parsed.Code == ErrDuplicateResource.Code
}

// IsNotFound reports whether err is a missing-row or missing-referent error.
func IsNotFound(err error) bool {
	parsed := ParseDBError(err)
	return parsed != nil && parsed.Code == ErrResourceNotFound.Code
}
