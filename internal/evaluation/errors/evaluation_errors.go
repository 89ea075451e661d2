package evaluationerrors

import (
	"go-enlacerb/internal/shared/apperror"
	"net/http"
)

var ErrEvaluationNotFound = apperror.New(
	apperror.CodeNotFound,
	"Evaluación no encontrada",
	http.StatusNotFound,
)
