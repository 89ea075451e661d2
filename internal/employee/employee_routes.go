package employee

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	employees := r.Group("/empleados")
	{
		employees.GET("", handler.GetAll)
		employees.GET("/:id", handler.GetByID)
		employees.GET("/:id/ficha.pdf", handler.ProfileSheet)
		// PUT is kept for clients of the first API version; both apply a merge-patch.
		employees.PUT("/:id", handler.Update)
		employees.PATCH("/:id", handler.Update)
	}
	r.GET("/usuarios/:id/empleado", handler.GetByUserID)
}
