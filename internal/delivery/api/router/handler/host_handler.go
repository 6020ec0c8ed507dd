package handler

import (
	"log/slog"
	"net/http"

	"sapphire/internal/delivery/api/response"
	domainerrors "sapphire/internal/domain/errors"
	"sapphire/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// HostHandlerParams holds dependencies for HostHandler, injected by Fx.
type HostHandlerParams struct {
	fx.In

	HostUC usecase.HostUsecase
	Logger *slog.Logger
}

// HostHandler serves the host endpoints.
type HostHandler struct {
	hostUC usecase.HostUsecase
	logger *slog.Logger
}

// NewHostHandler is the constructor for HostHandler.
func NewHostHandler(params HostHandlerParams) *HostHandler {
	return &HostHandler{hostUC: params.HostUC, logger: params.Logger}
}

// HostRequest carries the writable host fields. On update absent fields are left unchanged.
type HostRequest struct {
	ID          uuid.UUID  `json:"id"`
	Name        *string    `json:"name" validate:"omitempty,min=1,max=200"`
	Description *string    `json:"description" validate:"omitempty,max=2000"`
	IPAddress   *string    `json:"ipAddress" validate:"omitempty,ip"`
	Location    *string    `json:"location" validate:"omitempty,max=500"`
	Latitude    *float64   `json:"latitude" validate:"omitempty,latitude"`
	Longitude   *float64   `json:"longitude" validate:"omitempty,longitude"`
	GroupID     *uuid.UUID `json:"groupId"`
	ProjectID   *uuid.UUID `json:"projectId"`
}

func (r *HostRequest) input() *usecase.HostInput {
	return &usecase.HostInput{
		Name:        r.Name,
		Description: r.Description,
		IPAddress:   r.IPAddress,
		Location:    r.Location,
		Latitude:    r.Latitude,
		Longitude:   r.Longitude,
		GroupID:     r.GroupID,
		ProjectID:   r.ProjectID,
	}
}

// CreateHost handles POST /hosts.
func (h *HostHandler) CreateHost(c echo.Context) error {
	var req HostRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	if req.Name == nil || *req.Name == "" {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("name is required"))
	}

	host, err := h.hostUC.CreateHost(c.Request().Context(), req.input())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, host, "Host created successfully")
}

// ListHosts handles GET /hosts.
func (h *HostHandler) ListHosts(c echo.Context) error {
	var query ScopedPageQuery
	if err := bind(c, &query); err != nil {
		return err
	}
	userID, err := scopedUser(c, query.UserID)
	if err != nil {
		return err
	}

	result, err := h.hostUC.ListHosts(c.Request().Context(), &usecase.ListInput{UserID: userID, Page: query.Page()})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, result)
}

// HostsGeoJSON handles GET /hosts/geojson. The body is a bare FeatureCollection for map clients.
func (h *HostHandler) HostsGeoJSON(c echo.Context) error {
	userID, err := subject(c)
	if err != nil {
		return err
	}

	collection, err := h.hostUC.HostsGeoJSON(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	body, err := collection.MarshalJSON()
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "application/geo+json", body)
}

// GetHost handles GET /hosts/:id.
func (h *HostHandler) GetHost(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	host, err := h.hostUC.GetHost(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, host)
}

// UpdateHost handles PUT /hosts and PUT /hosts/:id.
func (h *HostHandler) UpdateHost(c echo.Context) error {
	var req HostRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	if c.Param("id") != "" {
		id, err := pathID(c, "id")
		if err != nil {
			return err
		}
		req.ID = id
	}
	if req.ID == uuid.Nil {
		return errors.WithStack(errInvalidBodyID)
	}

	host, err := h.hostUC.UpdateHost(c.Request().Context(), req.ID, req.input())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, host, "Host updated successfully")
}

// InactivateHost handles PATCH /host/:id/inactivate.
func (h *HostHandler) InactivateHost(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req ReasonRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	if err := h.hostUC.InactivateHost(c.Request().Context(), id, req.Reason); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusOK, "Host inactivated successfully")
}

// DeleteHost handles DELETE /hosts/:id.
func (h *HostHandler) DeleteHost(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.hostUC.DeleteHost(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusOK, "Host deleted successfully")
}
