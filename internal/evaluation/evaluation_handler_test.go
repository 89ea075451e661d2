package evaluation_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-enlacerb/internal/evaluation"
	"go-enlacerb/internal/shared/pagination"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeEvaluationService struct {
	evaluation.Service
	CreateFn        func(ctx context.Context, req evaluation.CreateEvaluationRequest) (evaluation.EvaluationResponse, error)
	GetByEmployeeFn func(ctx context.Context, employeeID uint, page pagination.Params) ([]evaluation.EvaluationResponse, error)
}

func (f *fakeEvaluationService) Create(ctx context.Context, req evaluation.CreateEvaluationRequest) (evaluation.EvaluationResponse, error) {
	return f.CreateFn(ctx, req)
}
func (f *fakeEvaluationService) GetByEmployee(ctx context.Context, employeeID uint, page pagination.Params) ([]evaluation.EvaluationResponse, error) {
	return f.GetByEmployeeFn(ctx, employeeID, page)
}

func setupRouter(svc evaluation.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	evaluation.RegisterRoutes(r.Group("/api/v1"), evaluation.NewHandler(svc, zap.NewNop()), func(c *gin.Context) { c.Next() })
	return r
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestEvaluationHandler_Create(t *testing.T) {
	svc := &fakeEvaluationService{
		CreateFn: func(ctx context.Context, req evaluation.CreateEvaluationRequest) (evaluation.EvaluationResponse, error) {
			return evaluation.EvaluationResponse{ID: 1, EmployeeID: req.EmployeeID, Type: req.Type, Score: *req.Score}, nil
		},
	}
	r := setupRouter(svc)

	t.Run("success", func(t *testing.T) {
		w := postJSON(r, "/api/v1/evaluaciones", `{"empleado_id":1,"tipo":"pares","puntaje":4.5}`)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"puntaje":4.5`)
	})

	t.Run("zero score is accepted", func(t *testing.T) {
		w := postJSON(r, "/api/v1/evaluaciones", `{"empleado_id":1,"tipo":"auto","puntaje":0}`)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("unknown type", func(t *testing.T) {
		w := postJSON(r, "/api/v1/evaluaciones", `{"empleado_id":1,"tipo":"jefe","puntaje":4}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "INVALID_INPUT")
	})

	t.Run("missing score", func(t *testing.T) {
		w := postJSON(r, "/api/v1/evaluaciones", `{"empleado_id":1,"tipo":"auto"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestEvaluationHandler_GetByEmployee(t *testing.T) {
	svc := &fakeEvaluationService{
		GetByEmployeeFn: func(ctx context.Context, employeeID uint, page pagination.Params) ([]evaluation.EvaluationResponse, error) {
			assert.Equal(t, uint(3), employeeID)
			assert.Equal(t, 1, page.Skip)
			return []evaluation.EvaluationResponse{{ID: 9}}, nil
		},
	}
	w := httptest.NewRecorder()

	setupRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/empleados/3/evaluaciones?skip=1", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"count":1`)
}
