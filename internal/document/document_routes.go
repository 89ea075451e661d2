package document

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, idempotent gin.HandlerFunc) {
	documents := r.Group("/documentos")
	{
		documents.GET("", handler.GetAll)
		documents.GET("/:id", handler.GetByID)
		documents.POST("", idempotent, handler.Create)
		documents.PATCH("/:id", handler.Update)
	}
}
