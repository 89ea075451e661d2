package params

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-enlacerb/internal/shared/apperror"
	"go-enlacerb/internal/shared/pagination"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext(target string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, target, nil)
	return c
}

func TestID(t *testing.T) {
	tests := []struct {
		raw     string
		want    uint
		wantErr bool
	}{
		{"7", 7, false},
		{"0", 0, true},
		{"-1", 0, true},
		{"abc", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			c := newContext("/")
			c.Params = gin.Params{{Key: "id", Value: tt.raw}}

			got, err := ID(c, "id")
			if tt.wantErr {
				assert.ErrorIs(t, err, apperror.ErrInvalidID)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPage(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		p, err := Page(newContext("/roles"))
		require.NoError(t, err)
		assert.Equal(t, pagination.Params{Skip: 0, Limit: 100}, p)
	})

	t.Run("explicit window", func(t *testing.T) {
		p, err := Page(newContext("/roles?skip=2&limit=2"))
		require.NoError(t, err)
		assert.Equal(t, pagination.Params{Skip: 2, Limit: 2}, p)
	})

	t.Run("limit at the maximum", func(t *testing.T) {
		p, err := Page(newContext(fmt.Sprintf("/roles?limit=%d", pagination.MaxLimit)))
		require.NoError(t, err)
		assert.Equal(t, pagination.MaxLimit, p.Limit)
	})

	t.Run("limit out of range", func(t *testing.T) {
		_, err := Page(newContext("/roles?limit=5000"))
		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, http.StatusBadRequest, appErr.HTTPStatus)
	})

	t.Run("negative skip", func(t *testing.T) {
		_, err := Page(newContext("/roles?skip=-1"))
		assert.Error(t, err)
	})
}
