package contextutil

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestRequestID(t *testing.T) {
	ctx := WithRequestID(context.Background(), "REQ-1")
	assert.Equal(t, "REQ-1", GetRequestID(ctx))
	assert.Empty(t, GetRequestID(context.Background()))
}

func TestGetLogger_Fallbacks(t *testing.T) {
	scoped := zap.NewExample()
	def := zap.NewNop()

	assert.Same(t, scoped, GetLogger(WithLogger(context.Background(), scoped), def))
	assert.Same(t, def, GetLogger(context.Background(), def))
	assert.NotNil(t, GetLogger(context.Background(), nil))
}
