package apperror

import (
	"fmt"
	"net/http"
)

var (
	ErrNotFound = New(
		CodeNotFound,
		"Resource not found",
		http.StatusNotFound,
	)

	ErrConflict = New(
		CodeConflict,
		"Resource already exists",
		http.StatusConflict,
	)

	ErrInternal = New(
		CodeInternalError,
		"An unexpected error occurred",
		http.StatusInternalServerError,
	)

	ErrInvalidInput = New(
		CodeInvalidInput,
		"The provided input is invalid",
		http.StatusBadRequest,
	)

	ErrInvalidID = New(
		CodeInvalidInput,
		"Invalid id",
		http.StatusBadRequest,
	)

	ErrUnavailable = New(
		CodeServiceUnavailable,
		"Service unavailable",
		http.StatusServiceUnavailable,
	)
)

// RequiredField reports a missing mandatory field.
func RequiredField(field string) *AppError {
	return New(CodeInvalidInput, fmt.Sprintf("%s is required", field), http.StatusBadRequest)
}

// InvalidField reports a field that failed validation.
func InvalidField(field string) *AppError {
	return New(CodeInvalidInput, fmt.Sprintf("%s is invalid", field), http.StatusBadRequest)
}
