package handler

import (
	"encoding/json"
	"net/http"
	"testing"

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

func newDeviceTestEcho(t *testing.T, principal *usecase.Principal) (*echo.Echo, *mockusecase.MockDeviceUsecase) {
	t.Helper()
	devices := mockusecase.NewMockDeviceUsecase(t)
	h := NewDeviceHandler(DeviceHandlerParams{DeviceUC: devices, Logger: newDiscardLogger()})

	e := newTestEcho()
	g := e.Group("", asPrincipal(principal))
	g.GET("/devices/:id/qrcode", h.DeviceQRCode)
	g.POST("/registerdevice/:udid", h.RegisterDevice)
	g.POST("/request-device/:id", h.RequestDevice)
	g.PUT("/admin/request/:id/:action", h.DecideRequest)

	return e, devices
}

func TestDeviceHandler_RegisterDevice(t *testing.T) {
	subject := uuid.New()
	e, devices := newDeviceTestEcho(t, &usecase.Principal{UserID: subject})
	devices.EXPECT().RegisterDevice(mock.Anything, "UDID-1", subject).Return(48213, nil)

	rec := doRequest(e, http.MethodPost, "/registerdevice/UDID-1", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var data map[string]int
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &data))
	assert.Equal(t, 48213, data["security_id"])
}

func TestDeviceHandler_RequestDeviceOnBehalf(t *testing.T) {
	subject := uuid.New()
	requester := uuid.New()
	deviceID := uuid.New()
	e, devices := newDeviceTestEcho(t, &usecase.Principal{UserID: subject})
	devices.EXPECT().RequestDevice(mock.Anything, deviceID, requester).
		Return(&entity.Device{ID: deviceID, Status: entity.DevicePending}, nil)

	rec := doRequest(e, http.MethodPost, "/request-device/"+deviceID.String()+"?user_id="+requester.String(), "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestDeviceHandler_RequestDeviceAlreadyPending(t *testing.T) {
	subject := uuid.New()
	deviceID := uuid.New()
	e, devices := newDeviceTestEcho(t, &usecase.Principal{UserID: subject})
	devices.EXPECT().RequestDevice(mock.Anything, deviceID, subject).Return(nil, domainerrors.ErrDeviceAlreadyRequested)

	rec := doRequest(e, http.MethodPost, "/request-device/"+deviceID.String(), "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeviceHandler_DecideRequest(t *testing.T) {
	deviceID := uuid.New()
	e, devices := newDeviceTestEcho(t, &usecase.Principal{UserID: uuid.New(), Role: entity.RoleSuperAdmin})
	devices.EXPECT().DecideRequest(mock.Anything, deviceID, "registered").
		Return(&entity.Device{ID: deviceID, Status: entity.DeviceRegistered}, nil)

	rec := doRequest(e, http.MethodPut, "/admin/request/"+deviceID.String()+"/registered", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Device request Registered", decodeEnvelope(t, rec).Message)
}

func TestDeviceHandler_DeviceQRCode(t *testing.T) {
	viewer := &usecase.Principal{UserID: uuid.New(), Username: "ada", Role: entity.RoleUser}
	e, devices := newDeviceTestEcho(t, viewer)
	png := []byte("\x89PNG\r\n\x1a\n")
	devices.EXPECT().DeviceQRCode(mock.Anything, "UDID-1", viewer).Return(png, nil)

	rec := doRequest(e, http.MethodGet, "/devices/UDID-1/qrcode", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, png, rec.Body.Bytes())
}

func TestDeviceHandler_DeviceQRCodeWithoutCode(t *testing.T) {
	e, devices := newDeviceTestEcho(t, &usecase.Principal{UserID: uuid.New()})
	devices.EXPECT().DeviceQRCode(mock.Anything, "UDID-2", mock.Anything).Return(nil, domainerrors.ErrDeviceNoSecurityCode)

	rec := doRequest(e, http.MethodGet, "/devices/UDID-2/qrcode", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
