package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "sapphire/internal/domain/errors"
	mockservice "sapphire/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestRateLimitMiddleware_Limit(t *testing.T) {
	tests := []struct {
		name    string
		allowed bool
		limErr  error
		wantErr error
	}{
		{name: "within window", allowed: true},
		{name: "window used up", allowed: false, wantErr: domainerrors.ErrRateLimited},
		{name: "limiter down lets request through", limErr: errors.New("redis: connection refused")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			limiter := mockservice.NewMockRateLimiter(t)
			limiter.EXPECT().Allow(mock.Anything, "/api/v1/login|192.0.2.10").Return(tt.allowed, tt.limErr)
			m := NewRateLimitMiddleware(RateLimitMiddlewareParams{Limiter: limiter, Logger: newDiscardLogger()})

			req := httptest.NewRequest(http.MethodPost, "/api/v1/login", nil)
			req.RemoteAddr = "192.0.2.10:51234"
			c, rec := newTestContext(req)
			c.SetPath("/api/v1/login")

			err := m.Limit(okHandler)(c)

			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr))

				return
			}
			assert.NoError(t, err)
			assert.Equal(t, http.StatusNoContent, rec.Code)
		})
	}
}
