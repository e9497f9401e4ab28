package contextutil_test

import (
	"context"
	"testing"

	"go-hotel/internal/shared/contextutil"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestRequestID(t *testing.T) {
	assert.Empty(t, contextutil.GetRequestID(context.Background()))

	ctx := contextutil.WithRequestID(context.Background(), "rid-1")
	assert.Equal(t, "rid-1", contextutil.GetRequestID(ctx))
}

func TestGetLogger(t *testing.T) {
	scoped := zap.NewExample()
	fallback := zap.NewNop()

	ctx := contextutil.WithLogger(context.Background(), scoped)
	assert.Same(t, scoped, contextutil.GetLogger(ctx, fallback))
	assert.Same(t, fallback, contextutil.GetLogger(context.Background(), fallback))
	assert.NotNil(t, contextutil.GetLogger(context.Background(), nil))
}
