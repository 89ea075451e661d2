package role

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, idempotent gin.HandlerFunc) {
	roles := r.Group("/roles")
	{
		roles.GET("", handler.GetAll)
		roles.GET("/:id", handler.GetByID)
		roles.POST("", idempotent, handler.Create)
		roles.PATCH("/:id", handler.Update)
	}
}
