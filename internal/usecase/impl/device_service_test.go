package impl

import (
	"context"
	"testing"

	"sapphire/internal/domain/entity"
	domainerrors "sapphire/internal/domain/errors"
	"sapphire/internal/domain/repository"
	"sapphire/internal/domain/service"
	mockSvc "sapphire/internal/mocks/service"
	"sapphire/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type deviceFixture struct {
	repos     *repoMocks
	codes     *mockSvc.MockCodeGenerator
	qrCodes   *mockSvc.MockQRCodeService
	publisher *mockSvc.MockEventPublisher
	srv       *deviceService
}

func newDeviceFixture(t *testing.T) *deviceFixture {
	repos := newRepoMocks(t)
	f := &deviceFixture{
		repos:     repos,
		codes:     mockSvc.NewMockCodeGenerator(t),
		qrCodes:   mockSvc.NewMockQRCodeService(t),
		publisher: mockSvc.NewMockEventPublisher(t),
	}
	f.srv = &deviceService{
		txManager: newTxManager(t, repos),
		codes:     f.codes,
		qrCodes:   f.qrCodes,
		publisher: f.publisher,
		logger:    newDiscardLogger(),
		now:       fixedClock,
	}

	return f
}

func TestDeviceService_CreateDevice_DuplicateUDID(t *testing.T) {
	f := newDeviceFixture(t)
	ctx := context.Background()

	f.repos.devices.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Device")).Return(repository.ErrDuplicateDevice)

	_, err := f.srv.CreateDevice(ctx, &usecase.CreateDeviceInput{UDID: "udid-1"})

	assert.ErrorIs(t, err, domainerrors.ErrDeviceAlreadyExists)
}

func TestDeviceService_RegisterDevice(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("assigns a new code", func(t *testing.T) {
		f := newDeviceFixture(t)
		device := &entity.Device{ID: uuid.New(), UDID: "udid-1", Status: entity.DeviceAvailable}
		f.repos.devices.EXPECT().FindByUDID(ctx, "udid-1").Return(device, nil)
		f.codes.EXPECT().GenerateSecurityCode().Return(48213, nil)
		f.repos.devices.EXPECT().Update(ctx, device).Return(nil)

		code, err := f.srv.RegisterDevice(ctx, "udid-1", userID)

		require.NoError(t, err)
		assert.Equal(t, 48213, code)
		assert.Equal(t, entity.DeviceRegistered, device.Status)
		assert.Equal(t, userID, *device.RegisteredTo)
	})

	t.Run("keeps an existing code", func(t *testing.T) {
		f := newDeviceFixture(t)
		device := &entity.Device{ID: uuid.New(), UDID: "udid-1", SecurityID: ptr(11111)}
		f.repos.devices.EXPECT().FindByUDID(ctx, "udid-1").Return(device, nil)
		f.repos.devices.EXPECT().Update(ctx, device).Return(nil)

		code, err := f.srv.RegisterDevice(ctx, "udid-1", userID)

		require.NoError(t, err)
		assert.Equal(t, 11111, code)
	})
}

func TestDeviceService_RequestDevice(t *testing.T) {
	ctx := context.Background()
	requester := uuid.New()

	t.Run("marks pending", func(t *testing.T) {
		f := newDeviceFixture(t)
		device := &entity.Device{ID: uuid.New(), Status: entity.DeviceAvailable}
		f.repos.devices.EXPECT().FindByID(ctx, device.ID).Return(device, nil)
		f.repos.devices.EXPECT().Update(ctx, device).Return(nil)

		got, err := f.srv.RequestDevice(ctx, device.ID, requester)

		require.NoError(t, err)
		assert.Equal(t, entity.DevicePending, got.Status)
		assert.Equal(t, requester, *got.RequestedBy)
		assert.Equal(t, fixedNow, *got.RequestedAt)
	})

	t.Run("already pending", func(t *testing.T) {
		f := newDeviceFixture(t)
		device := &entity.Device{ID: uuid.New(), Status: entity.DevicePending}
		f.repos.devices.EXPECT().FindByID(ctx, device.ID).Return(device, nil)

		_, err := f.srv.RequestDevice(ctx, device.ID, requester)

		assert.ErrorIs(t, err, domainerrors.ErrDeviceAlreadyRequested)
	})
}

func TestDeviceService_ListPendingRequests(t *testing.T) {
	f := newDeviceFixture(t)
	ctx := context.Background()
	known := &entity.User{ID: uuid.New(), Username: "mona"}
	gone := uuid.New()
	pending := entity.DevicePending
	first := &entity.Device{ID: uuid.New(), Model: "Pixel 9", Status: pending, RequestedBy: &known.ID, RequestedAt: ptr(fixedNow)}
	second := &entity.Device{ID: uuid.New(), Model: "iPhone 17", Status: pending, RequestedBy: &gone}

	f.repos.devices.EXPECT().List(ctx, repository.DeviceFilter{Status: &pending}, entity.Page{Limit: entity.MaxPageLimit}).
		Return([]*entity.Device{first, second}, 2, nil)
	f.repos.users.EXPECT().FindByIDs(ctx, []uuid.UUID{known.ID, gone}).Return([]*entity.User{known}, nil)

	views, err := f.srv.ListPendingRequests(ctx)

	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, "mona", views[0].RequestedBy)
	assert.Equal(t, "Pixel 9", views[0].DeviceName)
	assert.Equal(t, "Unknown User", views[1].RequestedBy)
}

func TestDeviceService_DecideRequest(t *testing.T) {
	ctx := context.Background()

	t.Run("approve registers to requester and notifies", func(t *testing.T) {
		f := newDeviceFixture(t)
		requester := uuid.New()
		device := &entity.Device{ID: uuid.New(), Status: entity.DevicePending, RequestedBy: &requester}

		f.repos.devices.EXPECT().FindByID(ctx, device.ID).Return(device, nil)
		f.codes.EXPECT().GenerateSecurityCode().Return(55555, nil)
		f.repos.devices.EXPECT().Update(ctx, device).Return(nil)
		f.repos.notifications.EXPECT().Create(ctx, &entity.Notification{
			UserID:    requester,
			Message:   "Your device request has been Registered",
			CreatedAt: fixedNow,
		}).Return(nil)
		f.publisher.EXPECT().PublishAdminEvent(ctx, mock.MatchedBy(func(e *service.AdminEvent) bool {
			return e.Type == service.EventDeviceRequestDecided && e.Status == "Registered" && e.UserID == requester.String()
		})).Return(nil)

		got, err := f.srv.DecideRequest(ctx, device.ID, usecase.DeviceActionApprove)

		require.NoError(t, err)
		assert.Equal(t, entity.DeviceRegistered, got.Status)
		assert.Equal(t, requester, *got.RegisteredTo)
		assert.Equal(t, 55555, *got.SecurityID)
		assert.Equal(t, fixedNow, *got.ApprovedOrRejectedAt)
	})

	t.Run("reject clears registration", func(t *testing.T) {
		f := newDeviceFixture(t)
		requester := uuid.New()
		device := &entity.Device{ID: uuid.New(), Status: entity.DevicePending, RequestedBy: &requester, SecurityID: ptr(12345)}

		f.repos.devices.EXPECT().FindByID(ctx, device.ID).Return(device, nil)
		f.repos.devices.EXPECT().Update(ctx, device).Return(nil)
		f.repos.notifications.EXPECT().Create(ctx, mock.MatchedBy(func(n *entity.Notification) bool {
			return n.Message == "Your device request has been Rejected"
		})).Return(nil)
		f.publisher.EXPECT().PublishAdminEvent(ctx, mock.Anything).Return(nil)

		got, err := f.srv.DecideRequest(ctx, device.ID, usecase.DeviceActionReject)

		require.NoError(t, err)
		assert.Equal(t, entity.DeviceRejected, got.Status)
		assert.Nil(t, got.SecurityID)
		assert.Nil(t, got.RegisteredTo)
	})

	t.Run("not pending", func(t *testing.T) {
		f := newDeviceFixture(t)
		device := &entity.Device{ID: uuid.New(), Status: entity.DeviceRegistered}
		f.repos.devices.EXPECT().FindByID(ctx, device.ID).Return(device, nil)

		_, err := f.srv.DecideRequest(ctx, device.ID, usecase.DeviceActionApprove)

		assert.ErrorIs(t, err, domainerrors.ErrDeviceNotPending)
	})

	t.Run("unknown action", func(t *testing.T) {
		f := newDeviceFixture(t)

		_, err := f.srv.DecideRequest(ctx, uuid.New(), "maybe")

		assert.ErrorIs(t, err, domainerrors.ErrInvalidAction)
	})
}

func TestDeviceService_DeregisterDevice(t *testing.T) {
	ctx := context.Background()

	t.Run("clears registration", func(t *testing.T) {
		f := newDeviceFixture(t)
		owner := uuid.New()
		device := &entity.Device{UDID: "udid-1", Status: entity.DeviceRegistered, RegisteredTo: &owner, SecurityID: ptr(12345), RequestedBy: &owner}
		f.repos.devices.EXPECT().FindByUDID(ctx, "udid-1").Return(device, nil)
		f.repos.devices.EXPECT().Update(ctx, device).Return(nil)

		require.NoError(t, f.srv.DeregisterDevice(ctx, "udid-1"))
		assert.Equal(t, entity.DeviceDeregistered, device.Status)
		assert.Nil(t, device.RegisteredTo)
		assert.Nil(t, device.SecurityID)
		assert.Nil(t, device.RequestedBy)
	})

	t.Run("already deregistered", func(t *testing.T) {
		f := newDeviceFixture(t)
		f.repos.devices.EXPECT().FindByUDID(ctx, "udid-1").Return(&entity.Device{Status: entity.DeviceDeregistered}, nil)

		assert.ErrorIs(t, f.srv.DeregisterDevice(ctx, "udid-1"), domainerrors.ErrDeviceAlreadyDeregistered)
	})
}

func TestDeviceService_DeviceQRCode(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()

	t.Run("owner gets png", func(t *testing.T) {
		f := newDeviceFixture(t)
		f.repos.devices.EXPECT().FindByUDID(ctx, "udid-1").Return(&entity.Device{UDID: "udid-1", RegisteredTo: &owner, SecurityID: ptr(12345)}, nil)
		f.qrCodes.EXPECT().GenerateDeviceQR("udid-1", 12345).Return([]byte("png"), nil)

		png, err := f.srv.DeviceQRCode(ctx, "udid-1", &usecase.Principal{UserID: owner, Role: entity.RoleUser})

		require.NoError(t, err)
		assert.Equal(t, []byte("png"), png)
	})

	t.Run("stranger is forbidden", func(t *testing.T) {
		f := newDeviceFixture(t)
		f.repos.devices.EXPECT().FindByUDID(ctx, "udid-1").Return(&entity.Device{UDID: "udid-1", RegisteredTo: &owner, SecurityID: ptr(12345)}, nil)

		_, err := f.srv.DeviceQRCode(ctx, "udid-1", &usecase.Principal{UserID: uuid.New(), Role: entity.RoleGroupAdmin})

		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})

	t.Run("superadmin without code", func(t *testing.T) {
		f := newDeviceFixture(t)
		f.repos.devices.EXPECT().FindByUDID(ctx, "udid-1").Return(&entity.Device{UDID: "udid-1"}, nil)

		_, err := f.srv.DeviceQRCode(ctx, "udid-1", &usecase.Principal{UserID: uuid.New(), Role: entity.RoleSuperAdmin})

		assert.ErrorIs(t, err, domainerrors.ErrDeviceNoSecurityCode)
	})
}

func TestDeviceService_ListDevices_ScopesToGroupHosts(t *testing.T) {
	f := newDeviceFixture(t)
	ctx := context.Background()
	groupID := uuid.New()
	viewer := &entity.User{ID: uuid.New(), Role: entity.RoleUser, GroupIDs: []uuid.UUID{groupID}}

	f.repos.users.EXPECT().FindByID(ctx, viewer.ID).Return(viewer, nil)
	f.repos.hosts.EXPECT().FindAll(ctx, repository.HostFilter{ActiveOnly: true, GroupIDs: []uuid.UUID{groupID}}).
		Return([]*entity.Host{{IPAddress: "10.0.0.5"}}, nil)
	f.repos.devices.EXPECT().List(ctx, repository.DeviceFilter{HostIPs: []string{"10.0.0.5"}, RegisteredTo: &viewer.ID}, entity.Page{Limit: 10}).
		Return([]*entity.Device{{ID: uuid.New()}}, 1, nil)

	page, err := f.srv.ListDevices(ctx, &usecase.ListInput{UserID: viewer.ID})

	require.NoError(t, err)
	assert.Len(t, page.Items, 1)
}
