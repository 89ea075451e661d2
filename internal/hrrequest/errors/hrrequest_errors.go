package hrrequesterrors

import (
	"go-enlacerb/internal/shared/apperror"
	"net/http"
)

var ErrRequestNotFound = apperror.New(
	apperror.CodeNotFound,
	"Solicitud no encontrada",
	http.StatusNotFound,
)
