// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"sapphire/config"
	"sapphire/internal/delivery/api/middleware"
	"sapphire/internal/delivery/api/router/handler"
	"sapphire/internal/domain/entity"
	"sapphire/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler         *handler.AuthHandler
	UserHandler         *handler.UserHandler
	GroupHandler        *handler.GroupHandler
	ProjectHandler      *handler.ProjectHandler
	HostHandler         *handler.HostHandler
	DeviceHandler       *handler.DeviceHandler
	NotificationHandler *handler.NotificationHandler
	ChangeFeedHandler   *handler.ChangeFeedHandler
	AuthMiddleware      *middleware.AuthMiddleware
	RateLimitMiddleware *middleware.RateLimitMiddleware
	Metrics             *metrics.Metrics `optional:"true"`
	Config              *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler         *handler.AuthHandler
	userHandler         *handler.UserHandler
	groupHandler        *handler.GroupHandler
	projectHandler      *handler.ProjectHandler
	hostHandler         *handler.HostHandler
	deviceHandler       *handler.DeviceHandler
	notificationHandler *handler.NotificationHandler
	changeFeedHandler   *handler.ChangeFeedHandler
	authMiddleware      *middleware.AuthMiddleware
	rateLimit           *middleware.RateLimitMiddleware
	metrics             *metrics.Metrics
	config              *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:         params.AuthHandler,
		userHandler:         params.UserHandler,
		groupHandler:        params.GroupHandler,
		projectHandler:      params.ProjectHandler,
		hostHandler:         params.HostHandler,
		deviceHandler:       params.DeviceHandler,
		notificationHandler: params.NotificationHandler,
		changeFeedHandler:   params.ChangeFeedHandler,
		authMiddleware:      params.AuthMiddleware,
		rateLimit:           params.RateLimitMiddleware,
		metrics:             params.Metrics,
		config:              params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	if r.metrics != nil {
		e.GET("/metrics", echo.WrapHandler(r.metrics.Handler()))
	}

	apiV1 := e.Group("/api/v1")
	apiV1.GET("/health", handler.HealthCheck)

	// Public account routes
	apiV1.POST("/sign-up", r.authHandler.SignUp, r.rateLimit.Limit)
	apiV1.POST("/login", r.authHandler.Login, r.rateLimit.Limit)
	apiV1.POST("/verify-otp", r.authHandler.VerifyOTP, r.rateLimit.Limit)
	apiV1.POST("/superuser", r.authHandler.CreateSuperUser, r.rateLimit.Limit)

	// The change feed also accepts ?token= because browsers cannot set headers on the handshake
	apiV1.GET("/ws", r.changeFeedHandler.Subscribe, r.authMiddleware.AuthenticateQuery)

	authed := apiV1.Group("", r.authMiddleware.Authenticate)
	authed.POST("/logout", r.authHandler.Logout)

	// Per-route rather than a nested group: Group.Use would add a role-checked catch-all under /api/v1.
	adminOnly := r.authMiddleware.RequireRole(entity.RoleSuperAdmin, entity.RoleGroupAdmin)
	{
		authed.POST("/approve_user", r.authHandler.ApproveUser, adminOnly)
		authed.POST("/reject_user", r.authHandler.RejectUser, adminOnly)
		authed.GET("/admin/requests", r.deviceHandler.ListPendingRequests, adminOnly)
		authed.PUT("/admin/request/:id/:action", r.deviceHandler.DecideRequest, adminOnly)
	}

	// User routes
	{
		authed.POST("/users", r.userHandler.CreateUser)
		authed.GET("/users", r.userHandler.ListUsers)
		authed.GET("/users/:id", r.userHandler.GetUser)
		authed.PUT("/users/:id", r.userHandler.UpdateUser)
		authed.PATCH("/user/:id/inactivate", r.userHandler.InactivateUser)
		authed.DELETE("/users/:id", r.userHandler.DeleteUser)
	}

	// Group routes
	{
		authed.POST("/groups", r.groupHandler.CreateGroup)
		authed.GET("/groups", r.groupHandler.ListGroups)
		authed.GET("/groups/:id", r.groupHandler.GetGroup)
		authed.PUT("/groups", r.groupHandler.UpdateGroup)
		authed.PUT("/groups/:id", r.groupHandler.UpdateGroup)
		authed.PATCH("/group/:id/inactivate", r.groupHandler.InactivateGroup)
		authed.DELETE("/groups/:id", r.groupHandler.DeleteGroup)
	}

	// Project routes
	{
		authed.POST("/projects", r.projectHandler.CreateProject)
		authed.GET("/projects", r.projectHandler.ListProjects)
		authed.GET("/projects/:id", r.projectHandler.GetProject)
		authed.PUT("/projects", r.projectHandler.UpdateProject)
		authed.PUT("/projects/:id", r.projectHandler.UpdateProject)
		authed.PATCH("/project/:id/inactivate", r.projectHandler.InactivateProject)
		authed.DELETE("/projects/:id", r.projectHandler.DeleteProject)
	}

	// Host routes
	{
		authed.POST("/hosts", r.hostHandler.CreateHost)
		authed.GET("/hosts", r.hostHandler.ListHosts)
		authed.GET("/hosts/geojson", r.hostHandler.HostsGeoJSON)
		authed.GET("/hosts/:id", r.hostHandler.GetHost)
		authed.PUT("/hosts", r.hostHandler.UpdateHost)
		authed.PUT("/hosts/:id", r.hostHandler.UpdateHost)
		authed.PATCH("/host/:id/inactivate", r.hostHandler.InactivateHost)
		authed.DELETE("/hosts/:id", r.hostHandler.DeleteHost)
	}

	// Device routes
	{
		authed.POST("/devices", r.deviceHandler.CreateDevice)
		authed.GET("/devices", r.deviceHandler.ListDevices)
		authed.GET("/devices/list", r.deviceHandler.ListDeviceSummaries)
		authed.GET("/devices/:id", r.deviceHandler.GetDevice)
		authed.GET("/devices/:id/qrcode", r.deviceHandler.DeviceQRCode)
		authed.DELETE("/devices/:id", r.deviceHandler.DeleteDevice)
		authed.POST("/registerdevice/:udid", r.deviceHandler.RegisterDevice)
		authed.PUT("/deregisterdevice/:udid", r.deviceHandler.DeregisterDevice)
		authed.POST("/request-device/:id", r.deviceHandler.RequestDevice)
	}

	// Notification routes
	{
		authed.GET("/notifications/:user_id", r.notificationHandler.ListNotifications)
		authed.PUT("/notifications/:id/read", r.notificationHandler.MarkRead)
	}
}
