package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"sapphire/internal/delivery/api/response"
	domainerrors "sapphire/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantCode    string
		wantMessage string
		wantDetails any
	}{
		{
			name:        "wrapped domain error keeps details",
			err:         errors.Wrap(domainerrors.ErrInvalidID.WithDetails("id"), "parse path"),
			wantStatus:  http.StatusBadRequest,
			wantCode:    "INVALID_ID",
			wantMessage: "Invalid ID format",
			wantDetails: "id",
		},
		{
			name:        "auth errors hide details",
			err:         domainerrors.ErrTokenExpired.WithDetails("exp=1"),
			wantStatus:  http.StatusUnauthorized,
			wantCode:    "TOKEN_EXPIRED",
			wantMessage: "Token has expired.",
		},
		{
			name:        "echo http error",
			err:         echo.NewHTTPError(http.StatusMethodNotAllowed, "Method Not Allowed"),
			wantStatus:  http.StatusMethodNotAllowed,
			wantCode:    "METHOD_NOT_ALLOWED",
			wantMessage: "Method Not Allowed",
		},
		{
			name:        "unknown error",
			err:         errors.New("boom"),
			wantStatus:  http.StatusInternalServerError,
			wantCode:    "INTERNAL_ERROR",
			wantMessage: "Internal server error, please try again later",
		},
	}

	m := NewErrorMiddleware(newDiscardLogger())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newTestContext(httptest.NewRequest(http.MethodGet, "/api/v1/users/x", nil))

			m.HandleHTTPError(tt.err, c)

			assert.Equal(t, tt.wantStatus, rec.Code)

			var body response.Envelope
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.False(t, body.Success)
			assert.Equal(t, tt.wantStatus, body.Code)
			assert.Equal(t, tt.wantMessage, body.Message)
			require.NotNil(t, body.Error)
			assert.Equal(t, tt.wantCode, body.Error.Code)
			assert.Equal(t, tt.wantDetails, body.Error.Details)
		})
	}
}

func TestErrorMiddleware_SkipsCommittedResponse(t *testing.T) {
	m := NewErrorMiddleware(newDiscardLogger())
	c, rec := newTestContext(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, c.String(http.StatusOK, "done"))

	m.HandleHTTPError(errors.New("late failure"), c)

	assert.Equal(t, "done", rec.Body.String())
}
