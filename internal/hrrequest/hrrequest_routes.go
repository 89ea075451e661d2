package hrrequest

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, idempotent gin.HandlerFunc) {
	requests := r.Group("/solicitudes")
	{
		requests.GET("", handler.GetAll)
		requests.GET("/:id", handler.GetByID)
		requests.POST("", idempotent, handler.Create)
		requests.PATCH("/:id", handler.Update)
	}
}
