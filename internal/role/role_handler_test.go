package role_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-enlacerb/internal/role"
	roleerrors "go-enlacerb/internal/role/errors"
	"go-enlacerb/internal/shared/pagination"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeRoleService struct {
	CreateFn  func(ctx context.Context, req role.CreateRoleRequest) (role.RoleResponse, error)
	GetAllFn  func(ctx context.Context, page pagination.Params) ([]role.RoleResponse, error)
	GetByIDFn func(ctx context.Context, id uint) (role.RoleResponse, error)
	UpdateFn  func(ctx context.Context, id uint, req role.UpdateRoleRequest) (role.RoleResponse, error)
}

func (f *fakeRoleService) Create(ctx context.Context, req role.CreateRoleRequest) (role.RoleResponse, error) {
	return f.CreateFn(ctx, req)
}
func (f *fakeRoleService) GetAll(ctx context.Context, page pagination.Params) ([]role.RoleResponse, error) {
	return f.GetAllFn(ctx, page)
}
func (f *fakeRoleService) GetByID(ctx context.Context, id uint) (role.RoleResponse, error) {
	return f.GetByIDFn(ctx, id)
}
func (f *fakeRoleService) Update(ctx context.Context, id uint, req role.UpdateRoleRequest) (role.RoleResponse, error) {
	return f.UpdateFn(ctx, id, req)
}

func setupRouter(svc role.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	role.RegisterRoutes(r.Group("/api/v1"), role.NewHandler(svc, zap.NewNop()), func(c *gin.Context) { c.Next() })
	return r
}

func TestRoleHandler_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeRoleService{
			CreateFn: func(ctx context.Context, req role.CreateRoleRequest) (role.RoleResponse, error) {
				assert.Equal(t, "Ventas", req.Name)
				return role.RoleResponse{ID: 1, Name: req.Name}, nil
			},
		}
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/roles", strings.NewReader(`{"nombre":"Ventas"}`))
		req.Header.Set("Content-Type", "application/json")

		setupRouter(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"nombre":"Ventas"`)
	})

	t.Run("missing name", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/roles", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")

		setupRouter(&fakeRoleService{}).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "INVALID_INPUT")
	})

	t.Run("duplicate name", func(t *testing.T) {
		svc := &fakeRoleService{
			CreateFn: func(ctx context.Context, req role.CreateRoleRequest) (role.RoleResponse, error) {
				return role.RoleResponse{}, roleerrors.ErrRoleAlreadyExists
			},
		}
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/roles", strings.NewReader(`{"nombre":"Ventas"}`))
		req.Header.Set("Content-Type", "application/json")

		setupRouter(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "El rol ya existe")
	})
}

func TestRoleHandler_GetAll(t *testing.T) {
	svc := &fakeRoleService{
		GetAllFn: func(ctx context.Context, page pagination.Params) ([]role.RoleResponse, error) {
			assert.Equal(t, pagination.Params{Skip: 1, Limit: 1}, page)
			return []role.RoleResponse{{ID: 2, Name: "RRHH"}}, nil
		},
	}
	w := httptest.NewRecorder()

	setupRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/roles?skip=1&limit=1", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"meta":{"skip":1,"limit":1,"count":1}`)
}

func TestRoleHandler_GetByID(t *testing.T) {
	svc := &fakeRoleService{
		GetByIDFn: func(ctx context.Context, id uint) (role.RoleResponse, error) {
			return role.RoleResponse{}, roleerrors.ErrRoleNotFound
		},
	}

	t.Run("not found", func(t *testing.T) {
		w := httptest.NewRecorder()
		setupRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/roles/42", nil))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("invalid id", func(t *testing.T) {
		w := httptest.NewRecorder()
		setupRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/roles/abc", nil))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestRoleHandler_Update(t *testing.T) {
	svc := &fakeRoleService{
		UpdateFn: func(ctx context.Context, id uint, req role.UpdateRoleRequest) (role.RoleResponse, error) {
			assert.Equal(t, uint(4), id)
			assert.Nil(t, req.Name)
			return role.RoleResponse{ID: id, Name: "Sin cambios"}, nil
		},
	}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/roles/4", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")

	setupRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
