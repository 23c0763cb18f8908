package context

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestGetRequestID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	c := echo.New().NewContext(req, httptest.NewRecorder())

	generated := GetRequestID(c)
	assert.Len(t, generated, 36)

	c.SetRequest(req.WithContext(WithRequestID(req.Context(), "from-ctx")))
	assert.Equal(t, "from-ctx", GetRequestID(c))

	SetRequestID(c, "from-echo")
	assert.Equal(t, "from-echo", GetRequestID(c))
}

func TestLoggerFromContext(t *testing.T) {
	fallback := slog.New(slog.NewTextHandler(io.Discard, nil))
	scoped := fallback.With(slog.String("request_id", "r-1"))

	assert.Nil(t, GetLogger(context.Background()))
	assert.Same(t, fallback, GetLoggerOrDefault(context.Background(), fallback))

	ctx := WithLogger(context.Background(), scoped)
	assert.Same(t, scoped, GetLogger(ctx))
	assert.Same(t, scoped, GetLoggerOrDefault(ctx, fallback))
	assert.Empty(t, GetRequestIDFromContext(ctx))
}
