package employee

import (
	"fmt"
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
	l := zap.L().Named("employee.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("employee request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
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
	h.logger.Debug("http get employee by id", zap.Uint("employee_id", id))

	resp, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

// GetByUserID serves the profile of a user account.
func (h *Handler) GetByUserID(c *gin.Context) {
	userID, err := params.ID(c, "id")
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	resp, err := h.service.GetByUserID(c.Request.Context(), userID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Update(c *gin.Context) {
	id, err := params.ID(c, "id")
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	h.logger.Debug("http update employee", zap.Uint("employee_id", id))

	var req UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http update employee validation failed", zap.Error(err))
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

// ProfileSheet streams the employee profile as a PDF attachment.
func (h *Handler) ProfileSheet(c *gin.Context) {
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

	pdfBytes, err := buildProfilePDF(resp)
	if err != nil {
		h.logger.Error("render employee profile failed", zap.Uint("employee_id", id), zap.Error(err))
		h.writeServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="empleado-%d.pdf"`, id))
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
