package middleware

import (
	"time"

	"go-enlacerb/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ContextLogger assigns or propagates X-Request-ID, stores a request-scoped logger in
// the request context and writes one access log line per request.
func ContextLogger(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.L()
	}
	logger = logger.Named("http")

	return func(c *gin.Context) {
		start := time.Now()

		rid := c.GetHeader(contextutil.RequestIDHeader)
		if rid == "" {
			rid = uuid.New().String()
		}
		c.Header(contextutil.RequestIDHeader, rid)
		c.Set("request_id", rid)

		reqLogger := logger.With(zap.String("request_id", rid))

		ctx := c.Request.Context()
		ctx = contextutil.WithRequestID(ctx, rid)
		ctx = contextutil.WithLogger(ctx, reqLogger)
		c.Request = c.Request.WithContext(ctx)

		c.Next()

		reqLogger.Info("request completed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}
