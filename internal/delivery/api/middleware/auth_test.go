package middleware

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"sapphire/internal/domain/constants"
	"sapphire/internal/domain/entity"
	domainerrors "sapphire/internal/domain/errors"
	mockusecase "sapphire/internal/mocks/usecase"
	"sapphire/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestContext(req *http.Request) (echo.Context, *httptest.ResponseRecorder) {
	rec := httptest.NewRecorder()

	return echo.New().NewContext(req, rec), rec
}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	principal := &usecase.Principal{UserID: uuid.New(), Username: "ada", Role: entity.RoleGroupAdmin}

	tests := []struct {
		name    string
		header  string
		setup   func(m *mockusecase.MockSessionUsecase)
		wantErr error
	}{
		{
			name:   "valid bearer token",
			header: "Bearer good-token",
			setup: func(m *mockusecase.MockSessionUsecase) {
				m.EXPECT().Authenticate(mock.Anything, "good-token").Return(principal, nil)
			},
		},
		{
			name:   "scheme is case insensitive",
			header: "bearer good-token",
			setup: func(m *mockusecase.MockSessionUsecase) {
				m.EXPECT().Authenticate(mock.Anything, "good-token").Return(principal, nil)
			},
		},
		{name: "missing header", header: "", wantErr: domainerrors.ErrMissingBearer},
		{name: "basic scheme", header: "Basic dXNlcjpwYXNz", wantErr: domainerrors.ErrMissingBearer},
		{name: "empty token", header: "Bearer ", wantErr: domainerrors.ErrMissingBearer},
		{
			name:   "revoked token",
			header: "Bearer revoked",
			setup: func(m *mockusecase.MockSessionUsecase) {
				m.EXPECT().Authenticate(mock.Anything, "revoked").Return(nil, domainerrors.ErrTokenInvalid)
			},
			wantErr: domainerrors.ErrTokenInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sessions := mockusecase.NewMockSessionUsecase(t)
			if tt.setup != nil {
				tt.setup(sessions)
			}
			m := NewAuthMiddleware(AuthMiddlewareParams{SessionUC: sessions, Logger: newDiscardLogger()})

			req := httptest.NewRequest(http.MethodGet, "/api/v1/users", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			c, rec := newTestContext(req)

			err := m.Authenticate(okHandler)(c)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr))

				return
			}
			require.NoError(t, err)
			assert.Equal(t, http.StatusNoContent, rec.Code)

			got, ok := GetPrincipal(c)
			require.True(t, ok)
			assert.Equal(t, principal, got)
		})
	}
}

func TestAuthMiddleware_AuthenticateQuery(t *testing.T) {
	principal := &usecase.Principal{UserID: uuid.New(), Username: "ada", Role: entity.RoleUser}
	sessions := mockusecase.NewMockSessionUsecase(t)
	sessions.EXPECT().Authenticate(mock.Anything, "query-token").Return(principal, nil).Once()
	m := NewAuthMiddleware(AuthMiddlewareParams{SessionUC: sessions, Logger: newDiscardLogger()})

	c, _ := newTestContext(httptest.NewRequest(http.MethodGet, "/api/v1/ws?token=query-token", nil))
	require.NoError(t, m.AuthenticateQuery(okHandler)(c))

	id, ok := GetUserID(c)
	require.True(t, ok)
	assert.Equal(t, principal.UserID, id)

	c, _ = newTestContext(httptest.NewRequest(http.MethodGet, "/api/v1/ws", nil))
	err := m.AuthenticateQuery(okHandler)(c)
	assert.True(t, errors.Is(err, domainerrors.ErrMissingBearer))
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	m := NewAuthMiddleware(AuthMiddlewareParams{Logger: newDiscardLogger()})
	guard := m.RequireRole(entity.RoleSuperAdmin, entity.RoleGroupAdmin)

	tests := []struct {
		name    string
		role    *entity.Role
		wantErr error
	}{
		{name: "super admin", role: ptr(entity.RoleSuperAdmin)},
		{name: "group admin", role: ptr(entity.RoleGroupAdmin)},
		{name: "plain user", role: ptr(entity.RoleUser), wantErr: domainerrors.ErrForbidden},
		{name: "unauthenticated", wantErr: domainerrors.ErrUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestContext(httptest.NewRequest(http.MethodPost, "/api/v1/approve_user", nil))
			if tt.role != nil {
				c.Set(constants.ContextKeyRole, *tt.role)
			}

			err := guard(okHandler)(c)

			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr))

				return
			}
			assert.NoError(t, err)
		})
	}
}

func ptr[T any](v T) *T {
	return &v
}
