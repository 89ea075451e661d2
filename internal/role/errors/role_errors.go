package roleerrors

import (
	"go-enlacerb/internal/shared/apperror"
	"net/http"
)

var (
	ErrRoleNotFound = apperror.New(
		apperror.CodeNotFound,
		"Rol no encontrado",
		http.StatusNotFound,
	)
	ErrRoleAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"El rol ya existe",
		http.StatusConflict,
	)
)
