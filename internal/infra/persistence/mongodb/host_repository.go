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
	"go.mongodb.org/mongo-driver/mongo/options"
)

type hostRepository struct {
	coll *mongo.Collection
}

// NewHostRepository is the constructor for hostRepository.
func NewHostRepository(db *mongo.Database) repository.HostRepository {
	return &hostRepository{coll: db.Collection(collHosts)}
}

func (repo *hostRepository) Create(ctx context.Context, host *entity.Host) error {
	if host.ID == uuid.Nil {
		host.ID = newID()
	}
	now := utcNow()
	host.CreatedAt = now
	host.UpdatedAt = now

	if _, err := repo.coll.InsertOne(ctx, fromHostDomain(host)); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create host")
	}

	return nil
}

func (repo *hostRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Host, error) {
	var doc hostDocument
	if err := repo.coll.FindOne(ctx, bson.M{"_id": idString(id)}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrHostNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find host")
	}

	return doc.toDomain(), nil
}

func hostQuery(filter repository.HostFilter) bson.M {
	query := bson.M{}
	if filter.ActiveOnly {
		query["isActive"] = true
	}
	if filter.GroupIDs != nil {
		if len(filter.GroupIDs) == 0 {
			return matchNone()
		}
		query["groupId"] = bson.M{"$in": idStrings(filter.GroupIDs)}
	}

	return query
}

func (repo *hostRepository) List(ctx context.Context, filter repository.HostFilter, page entity.Page) ([]*entity.Host, int64, error) {
	query := hostQuery(filter)

	total, err := repo.coll.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, domainerrors.NewDatabaseExecuteError(err, "failed to count hosts")
	}

	docs, err := findAll[hostDocument](ctx, repo.coll, query, pageOptions(page, "createdAt", 1))
	if err != nil {
		return nil, 0, err
	}

	return toHostDomainList(docs), total, nil
}

func (repo *hostRepository) FindAll(ctx context.Context, filter repository.HostFilter) ([]*entity.Host, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	docs, err := findAll[hostDocument](ctx, repo.coll, hostQuery(filter), opts)
	if err != nil {
		return nil, err
	}

	return toHostDomainList(docs), nil
}

func (repo *hostRepository) Update(ctx context.Context, host *entity.Host) error {
	host.UpdatedAt = utcNow()
	doc := fromHostDomain(host)

	set := bson.M{
		"name":        doc.Name,
		"description": doc.Description,
		"ipAddress":   doc.IPAddress,
		"location":    doc.Location,
		"latitude":    doc.Latitude,
		"longitude":   doc.Longitude,
		"groupId":     doc.GroupID,
		"projectId":   doc.ProjectID,
		"isActive":    doc.IsActive,
		"reason":      doc.Reason,
		"updatedAt":   doc.UpdatedAt,
	}

	result, err := repo.coll.UpdateOne(ctx, bson.M{"_id": doc.ID}, bson.M{"$set": set})
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update host")
	}
	if result.MatchedCount == 0 {
		return repository.ErrHostNotFound
	}

	return nil
}

func (repo *hostRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := repo.coll.DeleteOne(ctx, bson.M{"_id": idString(id)})
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete host")
	}
	if result.DeletedCount == 0 {
		return repository.ErrHostNotFound
	}

	return nil
}

func toHostDomainList(docs []*hostDocument) []*entity.Host {
	hosts := make([]*entity.Host, 0, len(docs))
	for _, doc := range docs {
		hosts = append(hosts, doc.toDomain())
	}

	return hosts
}
