package employeeerrors

import (
	"go-enlacerb/internal/shared/apperror"
	"net/http"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Empleado no encontrado",
		http.StatusNotFound,
	)
	ErrInvalidHireDate = apperror.New(
		apperror.CodeInvalidInput,
		"fecha_ingreso must use the YYYY-MM-DD format",
		http.StatusBadRequest,
	)
)
