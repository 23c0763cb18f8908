package middleware

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "crowdmap/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type errorBody struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details any    `json:"details"`
	} `json:"error"`
}

func handle(t *testing.T, err error) (int, errorBody) {
	t.Helper()

	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/api/locations/9", nil), rec)

	m.HandleHTTPError(err, c)

	var body errorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return rec.Code, body
}

func TestHandleHTTPError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantErr  string
	}{
		{name: "app error", err: domainerrors.ErrLocationNotFound, wantCode: http.StatusNotFound, wantErr: "LOCATION_NOT_FOUND"},
		{name: "unknown route", err: echo.ErrNotFound, wantCode: http.StatusNotFound, wantErr: "NOT_FOUND"},
		{name: "wrong method", err: echo.ErrMethodNotAllowed, wantCode: http.StatusMethodNotAllowed, wantErr: "METHOD_NOT_ALLOWED"},
		{name: "body too large", err: echo.ErrStatusRequestEntityTooLarge, wantCode: http.StatusRequestEntityTooLarge, wantErr: "PAYLOAD_TOO_LARGE"},
		{name: "other client error", err: echo.NewHTTPError(http.StatusTeapot), wantCode: http.StatusTeapot, wantErr: "HTTP_ERROR"},
		{name: "echo server error", err: echo.ErrServiceUnavailable, wantCode: http.StatusInternalServerError, wantErr: "INTERNAL_ERROR"},
		{name: "plain error", err: errors.New("boom"), wantCode: http.StatusInternalServerError, wantErr: "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, body := handle(t, tt.err)
			assert.Equal(t, tt.wantCode, code)
			assert.Equal(t, tt.wantErr, body.Error.Code)
			assert.NotEmpty(t, body.Error.Message)
		})
	}
}

func TestHandleHTTPError_HidesDetailsOfServerErrors(t *testing.T) {
	_, body := handle(t, domainerrors.ErrInternalError.WithDetails("dial tcp: refused"))
	assert.Nil(t, body.Error.Details)

	_, body = handle(t, domainerrors.ErrInvalidID.WithDetails("id"))
	assert.Equal(t, "id", body.Error.Details)
}
