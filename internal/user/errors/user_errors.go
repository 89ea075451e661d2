package usererrors

import (
	"go-enlacerb/internal/shared/apperror"
	"net/http"
)

var (
	ErrUserNotFound = apperror.New(
		apperror.CodeNotFound,
		"Usuario no encontrado",
		http.StatusNotFound,
	)

	ErrEmailAlreadyRegistered = apperror.New(
		apperror.CodeConflict,
		"El correo ya está registrado",
		http.StatusConflict,
	)
)
