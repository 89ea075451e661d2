package app_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-enlacerb/internal/app"
	"go-enlacerb/internal/config"
	"go-enlacerb/internal/shared/apperror"
	"go-enlacerb/internal/store/storetest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type envelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error map[string]any  `json:"error"`
}

func newTestRouter(t *testing.T) *gin.Engine {
	gin.SetMode(gin.TestMode)
	apperror.Init()

	r := gin.New()
	err := app.RegisterModules(r, app.Deps{
		Config: &config.Config{BcryptCost: 4},
		DB:     storetest.New(t),
		Logger: zap.NewNop(),
	})
	require.NoError(t, err)
	return r
}

func call(t *testing.T, r *gin.Engine, method, path, body string) (int, envelope) {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	r.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return w.Code, env
}

func TestApp_UserCreationFlow(t *testing.T) {
	r := newTestRouter(t)

	status, _ := call(t, r, http.MethodPost, "/api/v1/roles", `{"nombre":"Ventas"}`)
	require.Equal(t, http.StatusCreated, status)

	status, _ = call(t, r, http.MethodPost, "/api/v1/roles", `{"nombre":"Ventas"}`)
	assert.Equal(t, http.StatusConflict, status)

	status, env := call(t, r, http.MethodPost, "/api/v1/usuarios",
		`{"nombre":"Ana","correo":"ana@enlacerb.com","contrasena":"secreto123","rol_id":1}`)
	require.Equal(t, http.StatusCreated, status)
	assert.NotContains(t, string(env.Data), "secreto123")
	assert.Contains(t, string(env.Data), `"nombre":"Ventas"`)

	status, env = call(t, r, http.MethodGet, "/api/v1/empleados", "")
	require.Equal(t, http.StatusOK, status)

	var employees []struct {
		ID        uint    `json:"id"`
		UserID    uint    `json:"usuario_id"`
		FirstName *string `json:"nombres"`
		User      struct {
			Email string `json:"correo"`
			Role  struct {
				Name string `json:"nombre"`
			} `json:"rol"`
		} `json:"usuario"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &employees))
	require.Len(t, employees, 1)
	assert.Nil(t, employees[0].FirstName)
	assert.Equal(t, "ana@enlacerb.com", employees[0].User.Email)
	assert.Equal(t, "Ventas", employees[0].User.Role.Name)

	status, _ = call(t, r, http.MethodPatch, "/api/v1/empleados/1", `{"cargo":"Analista"}`)
	assert.Equal(t, http.StatusOK, status)

	status, _ = call(t, r, http.MethodPost, "/api/v1/asistencias", `{"empleado_id":1,"fecha":"2024-01-10","entrada":"08:00"}`)
	assert.Equal(t, http.StatusCreated, status)
	status, env = call(t, r, http.MethodPost, "/api/v1/asistencias", `{"empleado_id":1,"fecha":"2024-01-10","entrada":"ignored","salida":"17:00"}`)
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(env.Data), `"entrada":"08:00"`)
	assert.Contains(t, string(env.Data), `"salida":"17:00"`)
}

func TestApp_NotFoundAndBadReference(t *testing.T) {
	r := newTestRouter(t)

	status, env := call(t, r, http.MethodGet, "/api/v1/usuarios/99", "")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, apperror.CodeNotFound, env.Error["code"])

	status, _ = call(t, r, http.MethodPost, "/api/v1/documentos",
		`{"nombre":"a.pdf","categoria":"general","ruta":"/a.pdf","creado_por":99}`)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestApp_WelcomeAndHealth(t *testing.T) {
	r := newTestRouter(t)

	status, env := call(t, r, http.MethodGet, "/", "")
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(env.Data), "Bienvenido")

	status, env = call(t, r, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, status)
	assert.True(t, env.Ok)
}
