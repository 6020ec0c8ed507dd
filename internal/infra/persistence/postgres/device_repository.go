package postgres

import (
	"context"
	"time"

	"sapphire/internal/domain/entity"
	domainerrors "sapphire/internal/domain/errors"
	"sapphire/internal/domain/repository"
	"sapphire/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

var deviceColumns = []string{
	"udid", "last_update", "state", "cpu", "manufacturer", "model", "os_version", "sdk_version",
	"security_id", "registered_to", "status", "requested_by", "requested_at",
	"approved_or_rejected_at", "host_ip", "updated_at",
}

type deviceRepository struct {
	db *gorm.DB
}

// NewDeviceRepository is the constructor for deviceRepository.
func NewDeviceRepository(db *gorm.DB) repository.DeviceRepository {
	return &deviceRepository{db: db}
}

func (repo *deviceRepository) Create(ctx context.Context, device *entity.Device) error {
	if device.ID == uuid.Nil {
		device.ID = newID()
	}
	deviceM := fromDeviceDomain(device)

	if err := repo.db.WithContext(ctx).Create(deviceM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateDevice
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create device")
	}

	device.CreatedAt = deviceM.CreatedAt
	device.UpdatedAt = deviceM.UpdatedAt

	return nil
}

func (repo *deviceRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Device, error) {
	return repo.findOne(ctx, "id = ?", id)
}

func (repo *deviceRepository) FindByUDID(ctx context.Context, udid string) (*entity.Device, error) {
	return repo.findOne(ctx, "udid = ?", udid)
}

func (repo *deviceRepository) findOne(ctx context.Context, query string, arg any) (*entity.Device, error) {
	var deviceM model.DeviceModel
	if err := repo.db.WithContext(ctx).Where(query, arg).Take(&deviceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDeviceNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find device")
	}

	return toDeviceDomain(&deviceM), nil
}

func (repo *deviceRepository) List(ctx context.Context, filter repository.DeviceFilter, page entity.Page) ([]*entity.Device, int64, error) {
	scope := func(db *gorm.DB) *gorm.DB {
		if filter.HostIPs != nil {
			if len(filter.HostIPs) == 0 {
				return matchNone(db)
			}
			db = db.Where("host_ip IN ?", filter.HostIPs)
		}
		if filter.RegisteredTo != nil {
			db = db.Where("registered_to = ?", *filter.RegisteredTo)
		}
		if filter.Status != nil {
			db = db.Where("status = ?", string(*filter.Status))
		}

		return db
	}

	var total int64
	if err := repo.db.WithContext(ctx).Model(&model.DeviceModel{}).Scopes(scope).Count(&total).Error; err != nil {
		return nil, 0, domainerrors.NewDatabaseExecuteError(err, "failed to count devices")
	}

	var rows []*model.DeviceModel
	err := repo.db.WithContext(ctx).Scopes(scope, paginate(page)).Order("created_at ASC").Find(&rows).Error
	if err != nil {
		return nil, 0, domainerrors.NewDatabaseExecuteError(err, "failed to list devices")
	}

	devices := make([]*entity.Device, 0, len(rows))
	for _, row := range rows {
		devices = append(devices, toDeviceDomain(row))
	}

	return devices, total, nil
}

// Update overwrites every mutable column, writing NULL for cleared registration fields.
func (repo *deviceRepository) Update(ctx context.Context, device *entity.Device) error {
	deviceM := fromDeviceDomain(device)
	deviceM.UpdatedAt = time.Now().UTC()

	result := repo.db.WithContext(ctx).Model(&model.DeviceModel{}).
		Where("id = ?", device.ID).
		Select(deviceColumns).
		Updates(deviceM)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrDuplicateDevice
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update device")
	}
	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	device.UpdatedAt = deviceM.UpdatedAt

	return nil
}

func (repo *deviceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.DeviceModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete device")
	}
	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toDeviceDomain(data *model.DeviceModel) *entity.Device {
	if data == nil {
		return nil
	}

	return &entity.Device{
		ID:                   data.ID,
		UDID:                 data.UDID,
		LastUpdate:           data.LastUpdate,
		State:                data.State,
		CPU:                  data.CPU,
		Manufacturer:         data.Manufacturer,
		Model:                data.Model,
		OSVersion:            data.OSVersion,
		SDKVersion:           data.SDKVersion,
		SecurityID:           data.SecurityID,
		RegisteredTo:         data.RegisteredTo,
		Status:               entity.DeviceStatus(data.Status),
		RequestedBy:          data.RequestedBy,
		RequestedAt:          data.RequestedAt,
		ApprovedOrRejectedAt: data.ApprovedOrRejectedAt,
		HostIP:               data.HostIP,
		CreatedAt:            data.CreatedAt,
		UpdatedAt:            data.UpdatedAt,
	}
}

func fromDeviceDomain(data *entity.Device) *model.DeviceModel {
	if data == nil {
		return nil
	}

	return &model.DeviceModel{
		ID:                   data.ID,
		UDID:                 data.UDID,
		LastUpdate:           data.LastUpdate,
		State:                data.State,
		CPU:                  data.CPU,
		Manufacturer:         data.Manufacturer,
		Model:                data.Model,
		OSVersion:            data.OSVersion,
		SDKVersion:           data.SDKVersion,
		SecurityID:           data.SecurityID,
		RegisteredTo:         data.RegisteredTo,
		Status:               string(data.Status),
		RequestedBy:          data.RequestedBy,
		RequestedAt:          data.RequestedAt,
		ApprovedOrRejectedAt: data.ApprovedOrRejectedAt,
		HostIP:               data.HostIP,
		CreatedAt:            data.CreatedAt,
		UpdatedAt:            data.UpdatedAt,
	}
}
