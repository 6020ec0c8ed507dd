package handler

import (
	"log/slog"
	"net/http"

	"sapphire/internal/delivery/api/middleware"
	"sapphire/internal/delivery/api/response"
	domainerrors "sapphire/internal/domain/errors"
	"sapphire/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// DeviceHandlerParams holds dependencies for DeviceHandler, injected by Fx.
type DeviceHandlerParams struct {
	fx.In

	DeviceUC usecase.DeviceUsecase
	Logger   *slog.Logger
}

// DeviceHandler holds dependencies for device-related handlers
type DeviceHandler struct {
	deviceUC usecase.DeviceUsecase
	logger   *slog.Logger
}

// NewDeviceHandler is the constructor for DeviceHandler
func NewDeviceHandler(params DeviceHandlerParams) *DeviceHandler {
	return &DeviceHandler{
		deviceUC: params.DeviceUC,
		logger:   params.Logger,
	}
}

// CreateDeviceRequest is the inventory record reported for a host
type CreateDeviceRequest struct {
	UDID         string `json:"udid" validate:"required,max=200"`
	State        string `json:"state" validate:"max=100"`
	CPU          string `json:"cpu" validate:"max=100"`
	Manufacturer string `json:"manufacturer" validate:"max=200"`
	Model        string `json:"model" validate:"max=200"`
	OSVersion    string `json:"osVersion" validate:"max=100"`
	SDKVersion   string `json:"sdkVersion" validate:"max=100"`
	HostIP       string `json:"hostIp" validate:"omitempty,ip"`
}

// CreateDevice handles POST /devices
func (h *DeviceHandler) CreateDevice(c echo.Context) error {
	var req CreateDeviceRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	device, err := h.deviceUC.CreateDevice(c.Request().Context(), &usecase.CreateDeviceInput{
		UDID:         req.UDID,
		State:        req.State,
		CPU:          req.CPU,
		Manufacturer: req.Manufacturer,
		Model:        req.Model,
		OSVersion:    req.OSVersion,
		SDKVersion:   req.SDKVersion,
		HostIP:       req.HostIP,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, device, "Device created successfully")
}

// ListDevices handles GET /devices
func (h *DeviceHandler) ListDevices(c echo.Context) error {
	var query ScopedPageQuery
	if err := bind(c, &query); err != nil {
		return err
	}
	userID, err := scopedUser(c, query.UserID)
	if err != nil {
		return err
	}

	result, err := h.deviceUC.ListDevices(c.Request().Context(), &usecase.ListInput{UserID: userID, Page: query.Page()})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, result)
}

// ListDeviceSummaries handles GET /devices/list
func (h *DeviceHandler) ListDeviceSummaries(c echo.Context) error {
	var query PageQuery
	if err := bind(c, &query); err != nil {
		return err
	}

	result, err := h.deviceUC.ListDeviceSummaries(c.Request().Context(), query.Page())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, result)
}

// GetDevice handles GET /devices/:id
func (h *DeviceHandler) GetDevice(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	device, err := h.deviceUC.GetDevice(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, device)
}

// DeleteDevice handles DELETE /devices/:id
func (h *DeviceHandler) DeleteDevice(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.deviceUC.DeleteDevice(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusOK, "Device deleted successfully")
}

// RegisterDevice handles POST /registerdevice/:udid
func (h *DeviceHandler) RegisterDevice(c echo.Context) error {
	userID, err := subject(c)
	if err != nil {
		return err
	}

	securityID, err := h.deviceUC.RegisterDevice(c.Request().Context(), c.Param("udid"), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"security_id": securityID}, "Device registered successfully")
}

// RequestDevice handles POST /request-device/:id
func (h *DeviceHandler) RequestDevice(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	// user_id requests on behalf of another user; echo binds query params only for GET and DELETE.
	requesterID, err := scopedUser(c, c.QueryParam("user_id"))
	if err != nil {
		return err
	}

	device, err := h.deviceUC.RequestDevice(c.Request().Context(), id, requesterID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, device, "Device requested successfully")
}

// ListPendingRequests handles GET /admin/requests
func (h *DeviceHandler) ListPendingRequests(c echo.Context) error {
	requests, err := h.deviceUC.ListPendingRequests(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, requests)
}

// DecideRequest handles PUT /admin/request/:id/:action
func (h *DeviceHandler) DecideRequest(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	device, err := h.deviceUC.DecideRequest(c.Request().Context(), id, c.Param("action"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, device, "Device request "+string(device.Status))
}

// DeregisterDevice handles PUT /deregisterdevice/:udid
func (h *DeviceHandler) DeregisterDevice(c echo.Context) error {
	if err := h.deviceUC.DeregisterDevice(c.Request().Context(), c.Param("udid")); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusOK, "Device deregistered successfully")
}

// DeviceQRCode handles GET /devices/:id/qrcode, where id is the device UDID
func (h *DeviceHandler) DeviceQRCode(c echo.Context) error {
	viewer, ok := middleware.GetPrincipal(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrUnauthorized)
	}

	png, err := h.deviceUC.DeviceQRCode(c.Request().Context(), c.Param("id"), viewer)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
