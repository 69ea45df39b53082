package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

// TestParseDBError_Mapping tests driver error translation across dialects
func TestParseDBError_Mapping(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		err  error
		want *APIError
	}{
		{"nil", nil, nil},
		{"record not found", gorm.ErrRecordNotFound, ErrResourceNotFound},
		{"pg unique violation", &pgconn.PgError{Code: "23505"}, ErrDuplicateResource},
		{"pg fk violation", &pgconn.PgError{Code: "23503"}, ErrResourceNotFound},
		{"pg other", &pgconn.PgError{Code: "42P01"}, ErrDatabase},
		{"mysql duplicate entry", &mysql.MySQLError{Number: 1062}, ErrDuplicateResource},
		{"mysql fk violation", &mysql.MySQLError{Number: 1452}, ErrResourceNotFound},
		{"mysql other", &mysql.MySQLError{Number: 1064}, ErrDatabase},
		{"sqlite unique", errors.New("UNIQUE constraint failed: translations.translation_key_id"), ErrDuplicateResource},
		{"sqlite unique alt", errors.New("constraint failed: UNIQUE constraint failed (2067)"), ErrDuplicateResource},
		{"sqlite fk", errors.New("FOREIGN KEY constraint failed"), ErrResourceNotFound},
		{"unknown", errors.New("disk I/O error"), ErrDatabase},
		{"already parsed", ErrDuplicateResource, ErrDuplicateResource},
		{"wrapped api error", fmt.Errorf("create assignment: %w", ErrResourceNotFound), ErrResourceNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ParseDBError(tc.err))
		})
	}
}

// TestIsDuplicate tests the conflict predicate
func TestIsDuplicate(t *testing.T) {
	t.Parallel()

	assert.True(t, IsDuplicate(&pgconn.PgError{Code: "23505"}))
	assert.True(t, IsDuplicate(errors.New("UNIQUE constraint failed: languages.code")))
	assert.True(t, IsDuplicate(ErrDuplicateResource))
	assert.True(t, IsDuplicate(ParseDBError(&mysql.MySQLError{Number: 1062})))
	assert.False(t, IsDuplicate(nil))
	assert.False(t, IsDuplicate(gorm.ErrRecordNotFound))
}

// TestIsNotFound tests the missing-referent predicate
func TestIsNotFound(t *testing.T) {
	t.Parallel()

	assert.True(t, IsNotFound(gorm.ErrRecordNotFound))
	assert.True(t, IsNotFound(errors.New("FOREIGN KEY constraint failed")))
	assert.True(t, IsNotFound(&mysql.MySQLError{Number: 1452}))
	assert.False(t, IsNotFound(nil))
	assert.False(t, IsNotFound(errors.New("UNIQUE constraint failed: x")))
}

// TestNewAPIError tests that helpers copy rather than mutate the base errors
func TestNewAPIError(t *testing.T) {
	t.Parallel()

	custom := NewAPIError(ErrValidation, "name is required")
	assert.Equal(t, ErrValidation.HTTPStatus, custom.HTTPStatus)
	assert.Equal(t, ErrValidation.Code, custom.Code)
	assert.Equal(t, "name is required", custom.Message)
	assert.Equal(t, "Request validation failed", ErrValidation.Message)
	assert.Equal(t, "name is required", custom.Error())
}
