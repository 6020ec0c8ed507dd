package mongodb

import (
	"context"

	"sapphire/internal/domain/entity"
	domainerrors "sapphire/internal/domain/errors"
	"sapphire/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type deviceRepository struct {
	coll *mongo.Collection
}

// NewDeviceRepository is the constructor for deviceRepository.
func NewDeviceRepository(db *mongo.Database) repository.DeviceRepository {
	return &deviceRepository{coll: db.Collection(collDevices)}
}

func (repo *deviceRepository) Create(ctx context.Context, device *entity.Device) error {
	if device.ID == uuid.Nil {
		device.ID = newID()
	}
	now := utcNow()
	device.CreatedAt = now
	device.UpdatedAt = now

	if _, err := repo.coll.InsertOne(ctx, fromDeviceDomain(device)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return repository.ErrDuplicateDevice
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create device")
	}

	return nil
}

func (repo *deviceRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Device, error) {
	return repo.findOne(ctx, bson.M{"_id": idString(id)})
}

func (repo *deviceRepository) FindByUDID(ctx context.Context, udid string) (*entity.Device, error) {
	return repo.findOne(ctx, bson.M{"udid": udid})
}

func (repo *deviceRepository) findOne(ctx context.Context, filter bson.M) (*entity.Device, error) {
	var doc deviceDocument
	if err := repo.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrDeviceNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find device")
	}

	return doc.toDomain(), nil
}

func (repo *deviceRepository) List(ctx context.Context, filter repository.DeviceFilter, page entity.Page) ([]*entity.Device, int64, error) {
	query := bson.M{}
	if filter.HostIPs != nil {
		query["host_ip"] = bson.M{"$in": filter.HostIPs}
	}
	if filter.RegisteredTo != nil {
		query["registered_to"] = idString(*filter.RegisteredTo)
	}
	if filter.Status != nil {
		query["status"] = string(*filter.Status)
	}

	total, err := repo.coll.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, domainerrors.NewDatabaseExecuteError(err, "failed to count devices")
	}

	docs, err := findAll[deviceDocument](ctx, repo.coll, query, pageOptions(page, "created_at", 1))
	if err != nil {
		return nil, 0, err
	}

	devices := make([]*entity.Device, 0, len(docs))
	for _, doc := range docs {
		devices = append(devices, doc.toDomain())
	}

	return devices, total, nil
}

// Update replaces the whole document so cleared registration fields become null.
func (repo *deviceRepository) Update(ctx context.Context, device *entity.Device) error {
	device.UpdatedAt = utcNow()
	doc := fromDeviceDomain(device)

	result, err := repo.coll.ReplaceOne(ctx, bson.M{"_id": doc.ID}, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return repository.ErrDuplicateDevice
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update device")
	}
	if result.MatchedCount == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

func (repo *deviceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := repo.coll.DeleteOne(ctx, bson.M{"_id": idString(id)})
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete device")
	}
	if result.DeletedCount == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}
