package apperror

import (
	"errors"
	"net/http"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// HTTPError is the shape written to clients by handlers.
type HTTPError struct {
	Status  int
	Code    string
	Message string
	Details any
}

// ToHTTP maps any error returned by a service to its HTTP representation.
// Store constraint violations that slipped past the pre-checks are translated here;
// everything unknown becomes a 500 without leaking the cause.
func ToHTTP(err error) HTTPError {
	if err == nil {
		return HTTPError{Status: http.StatusOK}
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		return HTTPError{
			Status:  appErr.HTTPStatus,
			Code:    appErr.Code,
			Message: appErr.Message,
		}
	}

	switch {
	case IsUniqueViolation(err):
		return HTTPError{
			Status:  http.StatusConflict,
			Code:    CodeConflict,
			Message: ErrConflict.Message,
		}
	case IsForeignKeyViolation(err):
		return HTTPError{
			Status:  http.StatusBadRequest,
			Code:    CodeInvalidInput,
			Message: "Referenced resource does not exist",
		}
	}

	return HTTPError{
		Status:  ErrInternal.HTTPStatus,
		Code:    ErrInternal.Code,
		Message: ErrInternal.Message,
	}
}

// IsUniqueViolation reports whether err is a unique constraint failure from postgres or sqlite.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint failed") ||
		strings.Contains(msg, "duplicate key value")
}

// IsForeignKeyViolation reports whether err is a foreign key failure from postgres or sqlite.
func IsForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgForeignKeyViolation
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "foreign key constraint failed") ||
		strings.Contains(msg, "violates foreign key constraint")
}
