package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"sapphire/config"
	deliverycontext "sapphire/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware(t *testing.T) {
	tests := []struct {
		name    string
		inbound string
		keep    bool
	}{
		{"reuses a sane id", "req-abc-123", true},
		{"generates when missing", "", false},
		{"rejects control characters", "evil\nid", false},
		{"rejects overlong ids", strings.Repeat("a", maxRequestIDLength+1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.inbound != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.inbound)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var seen string
			h := NewRequestIDMiddleware(slog.New(slog.DiscardHandler)).Process(func(c echo.Context) error {
				seen = deliverycontext.GetRequestIDFromContext(c.Request().Context())

				return nil
			})
			require.NoError(t, h(c))

			assert.NotEmpty(t, seen)
			assert.Equal(t, seen, rec.Header().Get(deliverycontext.HeaderXRequestID))
			if tt.keep {
				assert.Equal(t, tt.inbound, seen)
			} else {
				assert.NotEqual(t, tt.inbound, seen)
			}
		})
	}
}

func TestLoggerMiddleware_LogsFailuresOnly(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	e := echo.New()
	mw := NewLoggerMiddleware(logger, &config.Config{})

	ok := mw.Handle(func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	require.NoError(t, ok(e.NewContext(httptest.NewRequest(http.MethodGet, "/fine", nil), httptest.NewRecorder())))
	assert.Empty(t, buf.String())

	failing := mw.Handle(func(echo.Context) error { return echo.NewHTTPError(http.StatusNotFound) })
	require.NoError(t, failing(e.NewContext(httptest.NewRequest(http.MethodGet, "/missing", nil), httptest.NewRecorder())))
	assert.Contains(t, buf.String(), `"status":404`)
	assert.Contains(t, buf.String(), `"uri":"/missing"`)
}
