package attendanceerrors

import (
	"go-enlacerb/internal/shared/apperror"
	"net/http"
)

var (
	ErrAttendanceNotFound = apperror.New(
		apperror.CodeNotFound,
		"Asistencia no encontrada",
		http.StatusNotFound,
	)
	ErrInvalidDate = apperror.New(
		apperror.CodeInvalidInput,
		"Fecha inválida, formato esperado AAAA-MM-DD",
		http.StatusBadRequest,
	)
)
