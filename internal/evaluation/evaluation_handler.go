package evaluation

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
	l := zap.L().Named("evaluation.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("evaluation.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("evaluation request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.Error(err),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateEvaluationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) GetAll(c *gin.Context) {
	page, err := params.Page(c)
	if err != nil {
		h.writeError(c, err)
		return
	}

	resp, err := h.service.GetAll(c.Request.Context(), page)
	if err != nil {
		h.writeError(c, err)
		return
	}

	meta := response.NewListMeta(page.Skip, page.Limit, len(resp))
	response.Success(c, http.StatusOK, resp, &meta)
}

func (h *Handler) GetByID(c *gin.Context) {
	id, err := params.ID(c, "id")
	if err != nil {
		h.writeError(c, err)
		return
	}

	resp, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Update(c *gin.Context) {
	id, err := params.ID(c, "id")
	if err != nil {
		h.writeError(c, err)
		return
	}

	var req UpdateEvaluationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetByEmployee(c *gin.Context) {
	employeeID, err := params.ID(c, "id")
	if err != nil {
		h.writeError(c, err)
		return
	}
	page, err := params.Page(c)
	if err != nil {
		h.writeError(c, err)
		return
	}

	resp, err := h.service.GetByEmployee(c.Request.Context(), employeeID, page)
	if err != nil {
		h.writeError(c, err)
		return
	}

	meta := response.NewListMeta(page.Skip, page.Limit, len(resp))
	response.Success(c, http.StatusOK, resp, &meta)
}
