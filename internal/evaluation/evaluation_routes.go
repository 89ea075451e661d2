package evaluation

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, idempotent gin.HandlerFunc) {
	evaluations := r.Group("/evaluaciones")
	{
		evaluations.GET("", handler.GetAll)
		evaluations.GET("/:id", handler.GetByID)
		evaluations.POST("", idempotent, handler.Create)
		evaluations.PATCH("/:id", handler.Update)
	}

	r.GET("/empleados/:id/evaluaciones", handler.GetByEmployee)
}
