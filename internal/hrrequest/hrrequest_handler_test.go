package hrrequest_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-enlacerb/internal/hrrequest"
	hrrequesterrors "go-enlacerb/internal/hrrequest/errors"
	"go-enlacerb/internal/shared/pagination"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeRequestService struct {
	CreateFn  func(ctx context.Context, req hrrequest.CreateRequest) (hrrequest.RequestResponse, error)
	GetAllFn  func(ctx context.Context, page pagination.Params) ([]hrrequest.RequestResponse, error)
	GetByIDFn func(ctx context.Context, id uint) (hrrequest.RequestResponse, error)
	UpdateFn  func(ctx context.Context, id uint, req hrrequest.UpdateRequest) (hrrequest.RequestResponse, error)
}

func (f *fakeRequestService) Create(ctx context.Context, req hrrequest.CreateRequest) (hrrequest.RequestResponse, error) {
	return f.CreateFn(ctx, req)
}
func (f *fakeRequestService) GetAll(ctx context.Context, page pagination.Params) ([]hrrequest.RequestResponse, error) {
	return f.GetAllFn(ctx, page)
}
func (f *fakeRequestService) GetByID(ctx context.Context, id uint) (hrrequest.RequestResponse, error) {
	return f.GetByIDFn(ctx, id)
}
func (f *fakeRequestService) Update(ctx context.Context, id uint, req hrrequest.UpdateRequest) (hrrequest.RequestResponse, error) {
	return f.UpdateFn(ctx, id, req)
}

func setupRouter(svc hrrequest.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	hrrequest.RegisterRoutes(r.Group("/api/v1"), hrrequest.NewHandler(svc, zap.NewNop()), func(c *gin.Context) { c.Next() })
	return r
}

func TestRequestHandler_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeRequestService{
			CreateFn: func(ctx context.Context, req hrrequest.CreateRequest) (hrrequest.RequestResponse, error) {
				return hrrequest.RequestResponse{ID: 1, Type: req.Type, Description: req.Description, CreatedBy: req.CreatedBy}, nil
			},
		}
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/solicitudes",
			strings.NewReader(`{"tipo":"vacante","descripcion":"Analista","creado_por":1}`))
		req.Header.Set("Content-Type", "application/json")

		setupRouter(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"tipo":"vacante"`)
	})

	t.Run("missing description", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/solicitudes",
			strings.NewReader(`{"tipo":"vacante","creado_por":1}`))
		req.Header.Set("Content-Type", "application/json")

		setupRouter(&fakeRequestService{}).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestRequestHandler_GetByID(t *testing.T) {
	svc := &fakeRequestService{
		GetByIDFn: func(ctx context.Context, id uint) (hrrequest.RequestResponse, error) {
			return hrrequest.RequestResponse{}, hrrequesterrors.ErrRequestNotFound
		},
	}
	w := httptest.NewRecorder()

	setupRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/solicitudes/4", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Solicitud no encontrada")
}

func TestRequestHandler_GetAll_LimitTooLarge(t *testing.T) {
	w := httptest.NewRecorder()

	setupRouter(&fakeRequestService{}).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/solicitudes?limit=5000", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
