package attendance

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts /asistencias and the per-employee listing under /empleados/:id.
func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	attendances := r.Group("/asistencias")
	{
		attendances.GET("", h.GetAll)
		attendances.GET("/:id", h.GetByID)
		attendances.POST("", h.Upsert)
	}

	r.GET("/empleados/:id/asistencias", h.GetByEmployee)
}
