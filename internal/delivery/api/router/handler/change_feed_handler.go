package handler

import (
	"log/slog"
	"net/http"
	"slices"
	"time"

	"sapphire/config"
	deliverycontext "sapphire/internal/delivery/context"
	"sapphire/internal/delivery/feed"
	domainerrors "sapphire/internal/domain/errors"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultPingInterval = 30 * time.Second

// ChangeFeedHandlerParams holds dependencies for ChangeFeedHandler, injected by Fx.
type ChangeFeedHandlerParams struct {
	fx.In

	Cfg    *config.Config
	Hub    *feed.Hub
	Logger *slog.Logger
}

// ChangeFeedHandler upgrades authenticated requests to change feed subscriptions.
type ChangeFeedHandler struct {
	enabled      bool
	pingInterval time.Duration
	hub          *feed.Hub
	upgrader     websocket.Upgrader
	logger       *slog.Logger
}

// NewChangeFeedHandler is the constructor for ChangeFeedHandler.
func NewChangeFeedHandler(params ChangeFeedHandlerParams) *ChangeFeedHandler {
	h := &ChangeFeedHandler{
		pingInterval: defaultPingInterval,
		hub:          params.Hub,
		logger:       params.Logger,
	}
	if ws := params.Cfg.WebSocket; ws != nil {
		h.enabled = ws.Enabled
		if ws.PingInterval > 0 {
			h.pingInterval = ws.PingInterval
		}
	}

	origins := params.Cfg.HTTP.AllowOrigins
	h.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 4096,
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")

			return origin == "" || slices.Contains(origins, "*") || slices.Contains(origins, origin)
		},
	}

	return h
}

// Subscribe handles GET /ws?collection=<name|*>.
func (h *ChangeFeedHandler) Subscribe(c echo.Context) error {
	if !h.enabled {
		return errors.WithStack(domainerrors.ErrNotFound.WithDetails("change feed is disabled"))
	}

	collection := c.QueryParam("collection")
	if collection == "" {
		collection = feed.AllCollections
	}

	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		// The upgrader already wrote the failure response.
		deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).
			Warn("WebSocket upgrade failed", slog.Any("error", err))

		return nil
	}

	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).
		With(slog.String("collection", collection))
	logger.Info("Change feed client connected")

	feed.NewClient(conn, collection, h.pingInterval, logger).Serve(h.hub)

	logger.Info("Change feed client disconnected")

	return nil
}
