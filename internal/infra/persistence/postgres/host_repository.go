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

var hostColumns = []string{
	"name", "description", "ip_address", "location", "latitude", "longitude",
	"group_id", "project_id", "is_active", "reason", "updated_at",
}

type hostRepository struct {
	db *gorm.DB
}

// NewHostRepository is the constructor for hostRepository.
func NewHostRepository(db *gorm.DB) repository.HostRepository {
	return &hostRepository{db: db}
}

func (repo *hostRepository) Create(ctx context.Context, host *entity.Host) error {
	if host.ID == uuid.Nil {
		host.ID = newID()
	}
	hostM := fromHostDomain(host)

	if err := repo.db.WithContext(ctx).Create(hostM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create host")
	}

	host.CreatedAt = hostM.CreatedAt
	host.UpdatedAt = hostM.UpdatedAt

	return nil
}

func (repo *hostRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Host, error) {
	var hostM model.HostModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).Take(&hostM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrHostNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find host")
	}

	return toHostDomain(&hostM), nil
}

func hostScope(filter repository.HostFilter) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if filter.ActiveOnly {
			db = db.Where("is_active = ?", true)
		}
		if filter.GroupIDs != nil {
			if len(filter.GroupIDs) == 0 {
				return matchNone(db)
			}
			db = db.Where("group_id IN ?", filter.GroupIDs)
		}

		return db
	}
}

func (repo *hostRepository) List(ctx context.Context, filter repository.HostFilter, page entity.Page) ([]*entity.Host, int64, error) {
	var total int64
	if err := repo.db.WithContext(ctx).Model(&model.HostModel{}).Scopes(hostScope(filter)).Count(&total).Error; err != nil {
		return nil, 0, domainerrors.NewDatabaseExecuteError(err, "failed to count hosts")
	}

	var rows []*model.HostModel
	err := repo.db.WithContext(ctx).Scopes(hostScope(filter), paginate(page)).Order("created_at ASC").Find(&rows).Error
	if err != nil {
		return nil, 0, domainerrors.NewDatabaseExecuteError(err, "failed to list hosts")
	}

	return toHostDomainList(rows), total, nil
}

// FindAll returns every matching host without paging.
func (repo *hostRepository) FindAll(ctx context.Context, filter repository.HostFilter) ([]*entity.Host, error) {
	var rows []*model.HostModel
	if err := repo.db.WithContext(ctx).Scopes(hostScope(filter)).Order("created_at ASC").Find(&rows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find hosts")
	}

	return toHostDomainList(rows), nil
}

func (repo *hostRepository) Update(ctx context.Context, host *entity.Host) error {
	hostM := fromHostDomain(host)
	hostM.UpdatedAt = time.Now().UTC()

	result := repo.db.WithContext(ctx).Model(&model.HostModel{}).
		Where("id = ?", host.ID).
		Select(hostColumns).
		Updates(hostM)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update host")
	}
	if result.RowsAffected == 0 {
		return repository.ErrHostNotFound
	}

	host.UpdatedAt = hostM.UpdatedAt

	return nil
}

func (repo *hostRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.HostModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete host")
	}
	if result.RowsAffected == 0 {
		return repository.ErrHostNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toHostDomain(data *model.HostModel) *entity.Host {
	if data == nil {
		return nil
	}

	return &entity.Host{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		IPAddress:   data.IPAddress,
		Location:    data.Location,
		Latitude:    data.Latitude,
		Longitude:   data.Longitude,
		GroupID:     data.GroupID,
		ProjectID:   data.ProjectID,
		IsActive:    data.IsActive,
		Reason:      data.Reason,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func toHostDomainList(rows []*model.HostModel) []*entity.Host {
	hosts := make([]*entity.Host, 0, len(rows))
	for _, row := range rows {
		hosts = append(hosts, toHostDomain(row))
	}

	return hosts
}

func fromHostDomain(data *entity.Host) *model.HostModel {
	if data == nil {
		return nil
	}

	return &model.HostModel{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		IPAddress:   data.IPAddress,
		Location:    data.Location,
		Latitude:    data.Latitude,
		Longitude:   data.Longitude,
		GroupID:     data.GroupID,
		ProjectID:   data.ProjectID,
		IsActive:    data.IsActive,
		Reason:      data.Reason,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
