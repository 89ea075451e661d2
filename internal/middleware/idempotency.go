package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go-enlacerb/internal/shared/apperror"
	"go-enlacerb/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	IdempotencyKeyHeader = "Idempotency-Key"
	ReplayedHeader       = "Idempotent-Replayed"

	idempotencyLockTTL  = 30 * time.Second
	idempotencyCacheTTL = 24 * time.Hour
)

type cachedResponse struct {
	Status int    `json:"status"`
	Body   string `json:"body"`
}

type bodyCaptureWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *bodyCaptureWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *bodyCaptureWriter) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

// Idempotency replays the stored 2xx response of a POST that carries an already seen
// Idempotency-Key. A nil client disables the check.
func Idempotency(rdb *redis.Client, logger ...*zap.Logger) gin.HandlerFunc {
	if rdb == nil {
		return func(c *gin.Context) { c.Next() }
	}
	l := zap.L().Named("idempotency")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("idempotency")
	}

	return func(c *gin.Context) {
		idempKey := c.GetHeader(IdempotencyKeyHeader)
		if idempKey == "" || c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		cacheKey := fmt.Sprintf("idemp:%s:%s", c.FullPath(), idempKey)
		lockKey := cacheKey + ":lock"

		val, err := rdb.Get(ctx, cacheKey).Result()
		switch {
		case err == nil:
			var cached cachedResponse
			if jsonErr := json.Unmarshal([]byte(val), &cached); jsonErr == nil {
				c.Header(ReplayedHeader, "true")
				c.Data(cached.Status, "application/json; charset=utf-8", []byte(cached.Body))
				c.Abort()
				return
			}
			l.Warn("discarding unreadable idempotency entry", zap.String("key", cacheKey))
		case !errors.Is(err, redis.Nil):
			// redis down: serve the request without replay protection
			l.Warn("idempotency lookup failed", zap.String("key", cacheKey), zap.Error(err))
			c.Next()
			return
		}

		acquired, err := rdb.SetNX(ctx, lockKey, "1", idempotencyLockTTL).Result()
		if err != nil {
			l.Warn("idempotency lock failed", zap.String("key", lockKey), zap.Error(err))
			c.Next()
			return
		}
		if !acquired {
			response.Abort(c, http.StatusConflict, apperror.CodeConflict,
				"La solicitud con esta clave de idempotencia aún se está procesando")
			return
		}

		writer := &bodyCaptureWriter{ResponseWriter: c.Writer, body: &bytes.Buffer{}}
		c.Writer = writer

		c.Next()

		status := writer.Status()
		if status >= 200 && status < 300 {
			payload, _ := json.Marshal(cachedResponse{Status: status, Body: writer.body.String()})
			if err := rdb.Set(ctx, cacheKey, payload, idempotencyCacheTTL).Err(); err != nil {
				l.Warn("idempotency store failed", zap.String("key", cacheKey), zap.Error(err))
			}
		}
		if err := rdb.Del(ctx, lockKey).Err(); err != nil {
			l.Warn("idempotency unlock failed", zap.String("key", lockKey), zap.Error(err))
		}
	}
}
