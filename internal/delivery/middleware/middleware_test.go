package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"crowdmap/config"
	deliverycontext "crowdmap/internal/delivery/context"
	domainerrors "crowdmap/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLoggedEcho(debug bool, logs *bytes.Buffer) *echo.Echo {
	logger := slog.New(slog.NewTextHandler(logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	cfg := &config.Config{}
	cfg.Env.Debug = debug

	e := echo.New()
	e.Use(NewRequestIDMiddleware(logger).Process)
	e.Use(NewLoggerMiddleware(logger, cfg).Handle)

	return e
}

func serve(e *echo.Echo, path string, header map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestRequestIDMiddleware(t *testing.T) {
	var logs bytes.Buffer
	e := newLoggedEcho(false, &logs)

	var seen string
	e.GET("/api/locations", func(c echo.Context) error {
		seen = deliverycontext.GetRequestIDFromContext(c.Request().Context())
		require.NotNil(t, deliverycontext.GetLogger(c.Request().Context()))

		return c.NoContent(http.StatusOK)
	})

	rec := serve(e, "/api/locations", map[string]string{deliverycontext.HeaderXRequestID: "client-id-1"})
	assert.Equal(t, "client-id-1", rec.Header().Get(deliverycontext.HeaderXRequestID))
	assert.Equal(t, "client-id-1", seen)

	tests := []string{"has space", strings.Repeat("a", maxRequestIDLength+1), "tab\tchar"}
	for _, bad := range tests {
		rec = serve(e, "/api/locations", map[string]string{deliverycontext.HeaderXRequestID: bad})
		assert.NotEqual(t, bad, rec.Header().Get(deliverycontext.HeaderXRequestID))
		assert.Len(t, rec.Header().Get(deliverycontext.HeaderXRequestID), 36)
	}
}

func TestLoggerMiddleware_DebugLogsEverythingButHealth(t *testing.T) {
	var logs bytes.Buffer
	e := newLoggedEcho(true, &logs)
	e.GET("/health", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/api/locations/:id", func(_ echo.Context) error { return domainerrors.ErrLocationNotFound })

	serve(e, "/health", nil)
	assert.Empty(t, logs.String())

	serve(e, "/api/locations/7", nil)
	out := logs.String()
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "status=404")
	assert.Contains(t, out, "route=/api/locations/:id")
}

func TestLoggerMiddleware_ServerErrorsLoggedOutsideDebug(t *testing.T) {
	var logs bytes.Buffer
	e := newLoggedEcho(false, &logs)
	e.GET("/ok", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/fail", func(_ echo.Context) error { return domainerrors.ErrInternalError })

	serve(e, "/ok", nil)
	assert.Empty(t, logs.String())

	serve(e, "/fail", nil)
	assert.Contains(t, logs.String(), "level=ERROR")
	assert.Contains(t, logs.String(), "status=500")
}
