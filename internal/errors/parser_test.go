package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestParseError_RecordNotFound(t *testing.T) {
	info := ParseError(gorm.ErrRecordNotFound, "product")
	assert.Equal(t, ResourceNotFound, info.Code)
	assert.Equal(t, "Product not found", info.Message)
}

func TestParseError_DuplicateUsername(t *testing.T) {
	// Postgres wording
	err := errors.New(`duplicate key value violates unique constraint "idx_users_username"`)
	info := ParseError(err, "user")
	assert.Equal(t, AuthUsernameExists, info.Code)

	// SQLite wording
	err = errors.New("UNIQUE constraint failed: users.username")
	info = ParseError(err, "user")
	assert.Equal(t, AuthUsernameExists, info.Code)
}

func TestParseError_DuplicateEmail(t *testing.T) {
	err := errors.New(`duplicate key value violates unique constraint "idx_users_email"`)
	info := ParseError(err, "user")
	assert.Equal(t, AuthEmailExists, info.Code)
}

func TestParseError_GenericDuplicate(t *testing.T) {
	err := errors.New(`duplicate key value violates unique constraint "idx_product_extra_code"`)
	info := ParseError(err, "product")
	assert.Equal(t, ResourceAlreadyExists, info.Code)
}

func TestParseError_NotNullViolation(t *testing.T) {
	err := errors.New(`null value in column "label" violates not-null constraint`)
	info := ParseError(err, "address")
	assert.Equal(t, ValidationRequired, info.Code)
}

func TestParseError_ConnectionFailure(t *testing.T) {
	err := errors.New("dial tcp 127.0.0.1:5432: connection refused")
	info := ParseError(err, "order")
	assert.Equal(t, InternalDatabaseError, info.Code)

	// The raw driver detail stays out of the user-facing message
	assert.NotContains(t, info.Message, "127.0.0.1")
}

func TestParseError_UnknownError(t *testing.T) {
	info := ParseError(errors.New("something odd"), "order")
	assert.Equal(t, InternalServerError, info.Code)
}
