package response

import (
	"github.com/gin-gonic/gin"
)

// ListMeta describes the offset window a list response was cut from.
type ListMeta struct {
	Skip  int `json:"skip"`
	Limit int `json:"limit"`
	Count int `json:"count"`
}

func NewListMeta(skip, limit, count int) ListMeta {
	return ListMeta{Skip: skip, Limit: limit, Count: count}
}

type ApiEnvelope struct {
	Ok    bool      `json:"ok"`
	Data  any       `json:"data,omitempty"`
	Meta  *ListMeta `json:"meta,omitempty"`
	Error any       `json:"error,omitempty"`
}

func Success(c *gin.Context, status int, data any, meta *ListMeta) {
	c.JSON(status, ApiEnvelope{
		Ok:   true,
		Data: data,
		Meta: meta,
	})
}

func Error(c *gin.Context, status int, errorCode string, message string, details any) {
	c.JSON(status, ApiEnvelope{
		Ok: false,
		Error: map[string]any{
			"code":    errorCode,
			"message": message,
			"details": details,
		},
	})
}

// Abort writes an error envelope and stops the handler chain.
func Abort(c *gin.Context, status int, errorCode string, message string) {
	c.AbortWithStatusJSON(status, ApiEnvelope{
		Ok: false,
		Error: map[string]any{
			"code":    errorCode,
			"message": message,
		},
	})
}
