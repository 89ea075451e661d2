package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuccess_WithMeta(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	meta := NewListMeta(0, 2, 2)
	Success(c, http.StatusOK, []string{"a", "b"}, &meta)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, map[string]any{"skip": float64(0), "limit": float64(2), "count": float64(2)}, body["meta"])
	assert.NotContains(t, body, "error")
}

func TestError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Error(c, http.StatusNotFound, "NOT_FOUND", "Rol no encontrado", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	var body ApiEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.False(t, body.Ok)
	assert.Equal(t, "Rol no encontrado", body.Error.(map[string]any)["message"])
}
