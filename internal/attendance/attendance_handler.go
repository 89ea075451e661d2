package attendance

import (
	"net/http"

	"go-enlacerb/internal/shared/apperror"
	"go-enlacerb/internal/shared/params"
	"go-enlacerb/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("attendance.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("attendance request failed",
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.Error(err),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Upsert(c *gin.Context) {
	var req UpsertAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, created, err := h.service.Upsert(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	response.Success(c, status, resp, nil)
}

func (h *Handler) GetAll(c *gin.Context) {
	page, err := params.Page(c)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	resp, err := h.service.GetAll(c.Request.Context(), page)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	meta := response.NewListMeta(page.Skip, page.Limit, len(resp))
	response.Success(c, http.StatusOK, resp, &meta)
}

func (h *Handler) GetByID(c *gin.Context) {
	id, err := params.ID(c, "id")
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	resp, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetByEmployee(c *gin.Context) {
	employeeID, err := params.ID(c, "id")
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	page, err := params.Page(c)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	resp, err := h.service.GetByEmployee(c.Request.Context(), employeeID, page)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	meta := response.NewListMeta(page.Skip, page.Limit, len(resp))
	response.Success(c, http.StatusOK, resp, &meta)
}
