package documenterrors

import (
	"go-enlacerb/internal/shared/apperror"
	"net/http"
)

var ErrDocumentNotFound = apperror.New(
	apperror.CodeNotFound,
	"Documento no encontrado",
	http.StatusNotFound,
)
