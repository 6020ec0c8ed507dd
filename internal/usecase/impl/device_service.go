package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "sapphire/internal/delivery/context"
	"sapphire/internal/domain/entity"
	domainerrors "sapphire/internal/domain/errors"
	"sapphire/internal/domain/repository"
	"sapphire/internal/domain/service"
	"sapphire/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const unknownRequester = "Unknown User"

type deviceService struct {
	txManager repository.TransactionManager
	codes     service.CodeGenerator
	qrCodes   service.QRCodeService
	publisher service.EventPublisher
	logger    *slog.Logger
	now       func() time.Time
}

// DeviceServiceParams holds dependencies for DeviceService, injected by Fx.
type DeviceServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Codes     service.CodeGenerator
	QRCodes   service.QRCodeService
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewDeviceService is the constructor for deviceService.
func NewDeviceService(params DeviceServiceParams) usecase.DeviceUsecase {
	return &deviceService{
		txManager: params.TxManager,
		codes:     params.Codes,
		qrCodes:   params.QRCodes,
		publisher: params.Publisher,
		logger:    params.Logger,
		now:       time.Now,
	}
}

func (srv *deviceService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *deviceService) CreateDevice(ctx context.Context, input *usecase.CreateDeviceInput) (*entity.Device, error) {
	device := &entity.Device{
		UDID:         input.UDID,
		State:        input.State,
		CPU:          input.CPU,
		Manufacturer: input.Manufacturer,
		Model:        input.Model,
		OSVersion:    input.OSVersion,
		SDKVersion:   input.SDKVersion,
		HostIP:       input.HostIP,
		Status:       entity.DeviceAvailable,
	}

	err := srv.txManager.Execute(ctx, func(txCtx context.Context, repos repository.RepositoryFactory) error {
		return translate(repos.DeviceRepo().Create(txCtx, device), "failed to create device")
	})
	if err != nil {
		return nil, errors.Wrap(err, "create device")
	}

	srv.log(ctx).Info("Device created", slog.String("deviceID", device.ID.String()), slog.String("udid", device.UDID))

	return device, nil
}

// ListDevices shows SuperAdmins every device. Other users see the devices registered to them
// on active hosts of their groups.
func (srv *deviceService) ListDevices(ctx context.Context, input *usecase.ListInput) (*usecase.PageResult[*entity.Device], error) {
	page := input.Page.Normalize()

	var result *usecase.PageResult[*entity.Device]
	err := srv.txManager.Execute(ctx, func(txCtx context.Context, repos repository.RepositoryFactory) error {
		viewer, err := repos.UserRepo().FindByID(txCtx, input.UserID)
		if err != nil {
			return translate(err, "failed to find user")
		}

		var filter repository.DeviceFilter
		if viewer.Role != entity.RoleSuperAdmin {
			hosts, err := repos.HostRepo().FindAll(txCtx, repository.HostFilter{
				ActiveOnly: true,
				GroupIDs:   append([]uuid.UUID{}, viewer.GroupIDs...),
			})
			if err != nil {
				return errors.Wrap(err, "failed to load hosts")
			}

			filter.HostIPs = make([]string, 0, len(hosts))
			for _, h := range hosts {
				filter.HostIPs = append(filter.HostIPs, h.IPAddress)
			}
			filter.RegisteredTo = &viewer.ID
		}

		devices, total, err := repos.DeviceRepo().List(txCtx, filter, page)
		if err != nil {
			return errors.Wrap(err, "failed to list devices")
		}
		result = usecase.NewPageResult(devices, total, page)

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "list devices")
	}

	return result, nil
}

func (srv *deviceService) ListDeviceSummaries(ctx context.Context, page entity.Page) (*usecase.PageResult[*usecase.DeviceSummary], error) {
	page = page.Normalize()

	var result *usecase.PageResult[*usecase.DeviceSummary]
	err := srv.txManager.Execute(ctx, func(txCtx context.Context, repos repository.RepositoryFactory) error {
		devices, total, err := repos.DeviceRepo().List(txCtx, repository.DeviceFilter{}, page)
		if err != nil {
			return errors.Wrap(err, "failed to list devices")
		}

		items := make([]*usecase.DeviceSummary, 0, len(devices))
		for _, d := range devices {
			items = append(items, &usecase.DeviceSummary{ID: d.ID, Model: d.Model})
		}
		result = usecase.NewPageResult(items, total, page)

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "list device summaries")
	}

	return result, nil
}

func (srv *deviceService) GetDevice(ctx context.Context, id uuid.UUID) (*entity.Device, error) {
	var device *entity.Device
	err := srv.txManager.Execute(ctx, func(txCtx context.Context, repos repository.RepositoryFactory) error {
		found, err := repos.DeviceRepo().FindByID(txCtx, id)
		if err != nil {
			return translate(err, "failed to find device")
		}
		device = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "get device")
	}

	return device, nil
}

func (srv *deviceService) DeleteDevice(ctx context.Context, id uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(txCtx context.Context, repos repository.RepositoryFactory) error {
		return translate(repos.DeviceRepo().Delete(txCtx, id), "failed to delete device")
	})
	if err != nil {
		return errors.Wrap(err, "delete device")
	}

	srv.log(ctx).Info("Device deleted", slog.String("deviceID", id.String()))

	return nil
}

// ensureSecurityCode assigns a registration code unless the device already carries one.
func (srv *deviceService) ensureSecurityCode(device *entity.Device) error {
	if device.SecurityID != nil {
		return nil
	}

	code, err := srv.codes.GenerateSecurityCode()
	if err != nil {
		return errors.Wrap(err, "failed to generate security code")
	}
	device.SecurityID = &code

	return nil
}

func (srv *deviceService) RegisterDevice(ctx context.Context, udid string, userID uuid.UUID) (int, error) {
	var code int
	err := srv.txManager.Execute(ctx, func(txCtx context.Context, repos repository.RepositoryFactory) error {
		device, err := repos.DeviceRepo().FindByUDID(txCtx, udid)
		if err != nil {
			return translate(err, "failed to find device")
		}
		if err := srv.ensureSecurityCode(device); err != nil {
			return err
		}

		device.RegisteredTo = &userID
		device.Status = entity.DeviceRegistered
		if err := repos.DeviceRepo().Update(txCtx, device); err != nil {
			return translate(err, "failed to register device")
		}
		code = *device.SecurityID

		return nil
	})
	if err != nil {
		return 0, errors.Wrap(err, "register device")
	}

	srv.log(ctx).Info("Device registered", slog.String("udid", udid), slog.String("userID", userID.String()))

	return code, nil
}

func (srv *deviceService) RequestDevice(ctx context.Context, deviceID uuid.UUID, requesterID uuid.UUID) (*entity.Device, error) {
	now := srv.now().UTC()

	var device *entity.Device
	err := srv.txManager.Execute(ctx, func(txCtx context.Context, repos repository.RepositoryFactory) error {
		found, err := repos.DeviceRepo().FindByID(txCtx, deviceID)
		if err != nil {
			return translate(err, "failed to find device")
		}
		if found.Status == entity.DevicePending {
			return errors.WithStack(domainerrors.ErrDeviceAlreadyRequested)
		}

		found.RequestedBy = &requesterID
		found.RequestedAt = &now
		found.Status = entity.DevicePending
		if err := repos.DeviceRepo().Update(txCtx, found); err != nil {
			return translate(err, "failed to request device")
		}
		device = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "request device")
	}

	srv.log(ctx).Info("Device requested", slog.String("deviceID", deviceID.String()), slog.String("requesterID", requesterID.String()))

	return device, nil
}

// ListPendingRequests returns every pending request with the requester's username.
func (srv *deviceService) ListPendingRequests(ctx context.Context) ([]*usecase.DeviceRequestView, error) {
	pending := entity.DevicePending

	var views []*usecase.DeviceRequestView
	err := srv.txManager.Execute(ctx, func(txCtx context.Context, repos repository.RepositoryFactory) error {
		var devices []*entity.Device
		page := entity.Page{Limit: entity.MaxPageLimit}
		for {
			batch, total, err := repos.DeviceRepo().List(txCtx, repository.DeviceFilter{Status: &pending}, page)
			if err != nil {
				return errors.Wrap(err, "failed to list pending devices")
			}
			devices = append(devices, batch...)
			page.Skip += len(batch)
			if len(batch) == 0 || int64(page.Skip) >= total {
				break
			}
		}

		var requesterIDs []uuid.UUID
		for _, d := range devices {
			if d.RequestedBy != nil {
				requesterIDs = append(requesterIDs, *d.RequestedBy)
			}
		}
		requesters, err := repos.UserRepo().FindByIDs(txCtx, uniqueIDs(requesterIDs))
		if err != nil {
			return errors.Wrap(err, "failed to load requesters")
		}
		usernames := make(map[uuid.UUID]string, len(requesters))
		for _, u := range requesters {
			usernames[u.ID] = u.Username
		}

		views = make([]*usecase.DeviceRequestView, 0, len(devices))
		for _, d := range devices {
			requestedBy := unknownRequester
			if d.RequestedBy != nil {
				if name, ok := usernames[*d.RequestedBy]; ok {
					requestedBy = name
				}
			}
			views = append(views, &usecase.DeviceRequestView{
				DeviceID:    d.ID,
				DeviceName:  d.Model,
				RequestedBy: requestedBy,
				Status:      d.Status,
				RequestedAt: d.RequestedAt,
			})
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "list pending requests")
	}

	return views, nil
}

// DecideRequest approves or rejects a pending request and notifies the requester.
func (srv *deviceService) DecideRequest(ctx context.Context, deviceID uuid.UUID, action string) (*entity.Device, error) {
	if action != usecase.DeviceActionApprove && action != usecase.DeviceActionReject {
		return nil, errors.WithStack(domainerrors.ErrInvalidAction)
	}
	now := srv.now().UTC()

	var device *entity.Device
	err := srv.txManager.Execute(ctx, func(txCtx context.Context, repos repository.RepositoryFactory) error {
		found, err := repos.DeviceRepo().FindByID(txCtx, deviceID)
		if err != nil {
			return translate(err, "failed to find device")
		}
		if found.Status != entity.DevicePending {
			return errors.WithStack(domainerrors.ErrDeviceNotPending)
		}

		if action == usecase.DeviceActionApprove {
			if err := srv.ensureSecurityCode(found); err != nil {
				return err
			}
			found.RegisteredTo = found.RequestedBy
			found.Status = entity.DeviceRegistered
		} else {
			found.SecurityID = nil
			found.RegisteredTo = nil
			found.Status = entity.DeviceRejected
		}
		found.ApprovedOrRejectedAt = &now

		if err := repos.DeviceRepo().Update(txCtx, found); err != nil {
			return translate(err, "failed to update device")
		}

		if found.RequestedBy != nil {
			notification := &entity.Notification{
				UserID:    *found.RequestedBy,
				Message:   "Your device request has been " + string(found.Status),
				CreatedAt: now,
			}
			if err := repos.NotificationRepo().Create(txCtx, notification); err != nil {
				return errors.Wrap(err, "failed to notify requester")
			}
		}
		device = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "decide device request")
	}

	srv.log(ctx).Info("Device request decided", slog.String("deviceID", deviceID.String()), slog.String("status", string(device.Status)))
	srv.publishDecision(ctx, device, now)

	return device, nil
}

func (srv *deviceService) publishDecision(ctx context.Context, device *entity.Device, at time.Time) {
	event := &service.AdminEvent{
		EventID:    uuid.NewString(),
		Type:       service.EventDeviceRequestDecided,
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		DeviceID:   device.ID.String(),
		Status:     string(device.Status),
		OccurredAt: at,
	}
	if device.RequestedBy != nil {
		event.UserID = device.RequestedBy.String()
	}

	if err := srv.publisher.PublishAdminEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish device decision", slog.String("deviceID", device.ID.String()), slog.Any("error", err))
	}
}

func (srv *deviceService) DeregisterDevice(ctx context.Context, udid string) error {
	err := srv.txManager.Execute(ctx, func(txCtx context.Context, repos repository.RepositoryFactory) error {
		device, err := repos.DeviceRepo().FindByUDID(txCtx, udid)
		if err != nil {
			return translate(err, "failed to find device")
		}
		if device.Status == entity.DeviceDeregistered {
			return errors.WithStack(domainerrors.ErrDeviceAlreadyDeregistered)
		}

		device.ClearRegistration()
		device.Status = entity.DeviceDeregistered

		return translate(repos.DeviceRepo().Update(txCtx, device), "failed to deregister device")
	})
	if err != nil {
		return errors.Wrap(err, "deregister device")
	}

	srv.log(ctx).Info("Device deregistered", slog.String("udid", udid))

	return nil
}

// DeviceQRCode renders the registration code. Only the owner and SuperAdmins may see it.
func (srv *deviceService) DeviceQRCode(ctx context.Context, udid string, viewer *usecase.Principal) ([]byte, error) {
	var device *entity.Device
	err := srv.txManager.Execute(ctx, func(txCtx context.Context, repos repository.RepositoryFactory) error {
		found, err := repos.DeviceRepo().FindByUDID(txCtx, udid)
		if err != nil {
			return translate(err, "failed to find device")
		}
		device = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "device qr code")
	}

	isOwner := device.RegisteredTo != nil && *device.RegisteredTo == viewer.UserID
	if !isOwner && viewer.Role != entity.RoleSuperAdmin {
		return nil, errors.WithStack(domainerrors.ErrForbidden)
	}
	if device.SecurityID == nil {
		return nil, errors.WithStack(domainerrors.ErrDeviceNoSecurityCode)
	}

	png, err := srv.qrCodes.GenerateDeviceQR(device.UDID, *device.SecurityID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render qr code")
	}

	return png, nil
}
