package handler

import (
	"log/slog"
	"net/http"

	"sapphire/internal/delivery/api/response"
	"sapphire/internal/domain/entity"
	"sapphire/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// NotificationHandlerParams holds dependencies for NotificationHandler, injected by Fx.
type NotificationHandlerParams struct {
	fx.In

	NotificationUC usecase.NotificationUsecase
	Logger         *slog.Logger
}

// NotificationHandler serves a user's in-app notifications.
type NotificationHandler struct {
	notificationUC usecase.NotificationUsecase
	logger         *slog.Logger
}

// NewNotificationHandler is the constructor for NotificationHandler.
func NewNotificationHandler(params NotificationHandlerParams) *NotificationHandler {
	return &NotificationHandler{notificationUC: params.NotificationUC, logger: params.Logger}
}

// NotificationList is one page of notifications.
type NotificationList struct {
	Total         int64                  `json:"total"`
	Skip          int                    `json:"skip"`
	Limit         int                    `json:"limit"`
	Notifications []*entity.Notification `json:"notifications"`
}

// ListNotifications handles GET /notifications/:user_id.
func (h *NotificationHandler) ListNotifications(c echo.Context) error {
	userID, err := pathID(c, "user_id")
	if err != nil {
		return err
	}

	var query PageQuery
	if err := bind(c, &query); err != nil {
		return err
	}

	result, err := h.notificationUC.ListNotifications(c.Request().Context(), userID, query.Page())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, NotificationList{
		Total:         result.Total,
		Skip:          result.Skip,
		Limit:         result.Limit,
		Notifications: result.Items,
	})
}

// MarkRead handles PUT /notifications/:id/read.
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.notificationUC.MarkRead(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusOK, "Notification marked as read")
}
