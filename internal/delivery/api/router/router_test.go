package router

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"sapphire/config"
	"sapphire/internal/delivery/api/middleware"
	"sapphire/internal/delivery/api/router/handler"
	"sapphire/internal/domain/entity"
	mockusecase "sapphire/internal/mocks/usecase"
	"sapphire/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newTestRouter() *router {
	return newTestRouterWithAuth(&middleware.AuthMiddleware{})
}

func newTestRouterWithAuth(auth *middleware.AuthMiddleware) *router {
	return NewRouter(RouterParams{
		AuthHandler:         &handler.AuthHandler{},
		UserHandler:         &handler.UserHandler{},
		GroupHandler:        &handler.GroupHandler{},
		ProjectHandler:      &handler.ProjectHandler{},
		HostHandler:         &handler.HostHandler{},
		DeviceHandler:       &handler.DeviceHandler{},
		NotificationHandler: &handler.NotificationHandler{},
		ChangeFeedHandler:   &handler.ChangeFeedHandler{},
		AuthMiddleware:      auth,
		RateLimitMiddleware: &middleware.RateLimitMiddleware{},
		Config:              &config.Config{},
	})
}

func TestRouter_RegistersEveryEndpoint(t *testing.T) {
	e := echo.New()
	newTestRouter().RegisterRoutes(e)

	registered := make(map[string]bool)
	for _, r := range e.Routes() {
		registered[r.Method+" "+r.Path] = true
	}

	want := []string{
		"GET /api/v1/health",
		"POST /api/v1/sign-up",
		"POST /api/v1/login",
		"POST /api/v1/verify-otp",
		"POST /api/v1/superuser",
		"GET /api/v1/ws",
		"POST /api/v1/logout",
		"POST /api/v1/approve_user",
		"POST /api/v1/reject_user",
		"GET /api/v1/admin/requests",
		"PUT /api/v1/admin/request/:id/:action",
		"POST /api/v1/users",
		"GET /api/v1/users",
		"GET /api/v1/users/:id",
		"PUT /api/v1/users/:id",
		"PATCH /api/v1/user/:id/inactivate",
		"DELETE /api/v1/users/:id",
		"POST /api/v1/groups",
		"GET /api/v1/groups",
		"PUT /api/v1/groups",
		"PATCH /api/v1/group/:id/inactivate",
		"POST /api/v1/projects",
		"PUT /api/v1/projects/:id",
		"PATCH /api/v1/project/:id/inactivate",
		"GET /api/v1/hosts/geojson",
		"PATCH /api/v1/host/:id/inactivate",
		"GET /api/v1/devices/list",
		"GET /api/v1/devices/:id/qrcode",
		"POST /api/v1/registerdevice/:udid",
		"PUT /api/v1/deregisterdevice/:udid",
		"POST /api/v1/request-device/:id",
		"GET /api/v1/notifications/:user_id",
		"PUT /api/v1/notifications/:id/read",
	}
	for _, route := range want {
		assert.True(t, registered[route], "missing route %s", route)
	}
	assert.False(t, registered["GET /metrics"], "metrics route needs a registry")
}

func TestRouter_HealthCheck(t *testing.T) {
	e := echo.New()
	newTestRouter().RegisterRoutes(e)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Admin Dashboard API is running"}`, rec.Body.String())
}

func TestRouter_UnknownPathsAndAdminRoutesForRegularUser(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)
	sessions := mockusecase.NewMockSessionUsecase(t)
	sessions.EXPECT().Authenticate(mock.Anything, "user-token").
		Return(&usecase.Principal{UserID: uuid.New(), Username: "bob", Role: entity.RoleUser}, nil)

	e := echo.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError
	auth := middleware.NewAuthMiddleware(middleware.AuthMiddlewareParams{SessionUC: sessions, Logger: logger})
	newTestRouterWithAuth(auth).RegisterRoutes(e)

	tests := []struct {
		name   string
		method string
		path   string
		token  string
		want   int
	}{
		{"unknown path without token", http.MethodGet, "/api/v1/does-not-exist", "", http.StatusUnauthorized},
		{"unknown path after auth", http.MethodGet, "/api/v1/does-not-exist", "user-token", http.StatusNotFound},
		{"admin listing", http.MethodGet, "/api/v1/admin/requests", "user-token", http.StatusForbidden},
		{"admin decision", http.MethodPut, "/api/v1/admin/request/abc/reject", "user-token", http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.token != "" {
				req.Header.Set(echo.HeaderAuthorization, "Bearer "+tt.token)
			}
			rec := httptest.NewRecorder()

			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.want, rec.Code)
		})
	}
}
