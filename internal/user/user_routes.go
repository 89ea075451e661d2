package user

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, idempotent gin.HandlerFunc) {
	users := r.Group("/usuarios")
	{
		users.GET("", handler.GetAll)
		users.GET("/:id", handler.GetByID)
		users.POST("", idempotent, handler.Create)
		users.PATCH("/:id", handler.Update)
	}
}
