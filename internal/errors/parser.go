package errors

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// ErrorInfo carries a code plus a message safe to show the user.
type ErrorInfo struct {
	Code    string
	Message string
}

// ParseError converts a store error into a user-facing code and message.
// Sensitive driver detail stays out of the message; the context string picks
// the wording for generic cases ("user", "address", "order", ...).
func ParseError(err error, context string) ErrorInfo {
	if err == nil {
		return ErrorInfo{
			Code:    InternalServerError,
			Message: "Something went wrong",
		}
	}

	errStr := err.Error()
	errStrLower := strings.ToLower(errStr)

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrorInfo{
			Code:    ResourceNotFound,
			Message: getNotFoundMessage(context),
		}
	}

	// Unique constraint violations. Postgres reports 23505 as "duplicate key
	// value violates unique constraint", SQLite as "UNIQUE constraint failed".
	if strings.Contains(errStrLower, "duplicate key") ||
		strings.Contains(errStrLower, "unique constraint") {
		return parseDuplicateKeyError(errStrLower)
	}

	// Not-null constraint violations (23502).
	if strings.Contains(errStrLower, "null value") &&
		strings.Contains(errStrLower, "violates not-null constraint") {
		return ErrorInfo{
			Code:    ValidationRequired,
			Message: "A required field is missing",
		}
	}

	// Connection-level failures.
	if strings.Contains(errStrLower, "connection refused") ||
		strings.Contains(errStrLower, "no such host") ||
		strings.Contains(errStrLower, "timeout") {
		return ErrorInfo{
			Code:    InternalDatabaseError,
			Message: "The service is temporarily unavailable. Please try again later",
		}
	}

	return ErrorInfo{
		Code:    InternalServerError,
		Message: getDefaultErrorMessage(context),
	}
}

func parseDuplicateKeyError(errLower string) ErrorInfo {
	if strings.Contains(errLower, "username") {
		return ErrorInfo{
			Code:    AuthUsernameExists,
			Message: "That username is already taken",
		}
	}
	if strings.Contains(errLower, "email") {
		return ErrorInfo{
			Code:    AuthEmailExists,
			Message: "That email is already registered",
		}
	}
	return ErrorInfo{
		Code:    ResourceAlreadyExists,
		Message: "That record already exists",
	}
}

func getNotFoundMessage(context string) string {
	switch context {
	case "user":
		return "User not found"
	case "product":
		return "Product not found"
	case "address":
		return "Address not found"
	case "order":
		return "Order not found"
	case "category":
		return "Category not found"
	default:
		return "We could not find what you were looking for"
	}
}

func getDefaultErrorMessage(context string) string {
	switch context {
	case "register":
		return "Could not create the account. Please try again"
	case "login":
		return "Could not sign you in. Please try again"
	case "checkout":
		return "Could not place the order. Please try again"
	default:
		return "Something went wrong. Please try again later"
	}
}
