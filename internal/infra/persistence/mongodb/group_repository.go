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

type groupRepository struct {
	coll *mongo.Collection
}

// NewGroupRepository is the constructor for groupRepository.
func NewGroupRepository(db *mongo.Database) repository.GroupRepository {
	return &groupRepository{coll: db.Collection(collGroups)}
}

func (repo *groupRepository) Create(ctx context.Context, group *entity.Group) error {
	if group.ID == uuid.Nil {
		group.ID = newID()
	}
	now := utcNow()
	group.CreatedAt = now
	group.UpdatedAt = now

	if _, err := repo.coll.InsertOne(ctx, fromGroupDomain(group)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return repository.ErrDuplicateGroup
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create group")
	}

	return nil
}

func (repo *groupRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Group, error) {
	return repo.findOne(ctx, bson.M{"_id": idString(id)})
}

func (repo *groupRepository) FindByName(ctx context.Context, name string) (*entity.Group, error) {
	return repo.findOne(ctx, bson.M{"name": name})
}

func (repo *groupRepository) findOne(ctx context.Context, filter bson.M) (*entity.Group, error) {
	var doc groupDocument
	if err := repo.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrGroupNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find group")
	}

	return doc.toDomain(), nil
}

func (repo *groupRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Group, error) {
	if len(ids) == 0 {
		return []*entity.Group{}, nil
	}

	docs, err := findAll[groupDocument](ctx, repo.coll, bson.M{"_id": bson.M{"$in": idStrings(ids)}})
	if err != nil {
		return nil, err
	}

	return toGroupDomainList(docs), nil
}

func (repo *groupRepository) List(ctx context.Context, filter repository.GroupFilter, page entity.Page) ([]*entity.Group, int64, error) {
	query := bson.M{}
	if filter.ActiveOnly {
		query["isActive"] = true
	}
	if filter.VisibleTo != nil {
		uid := idString(*filter.VisibleTo)
		query["$or"] = bson.A{bson.M{"createdBy": uid}, bson.M{"members": uid}}
	}

	total, err := repo.coll.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, domainerrors.NewDatabaseExecuteError(err, "failed to count groups")
	}

	docs, err := findAll[groupDocument](ctx, repo.coll, query, pageOptions(page, "createdAt", 1))
	if err != nil {
		return nil, 0, err
	}

	return toGroupDomainList(docs), total, nil
}

func (repo *groupRepository) Update(ctx context.Context, group *entity.Group) error {
	group.UpdatedAt = utcNow()
	doc := fromGroupDomain(group)

	set := bson.M{
		"name":        doc.Name,
		"description": doc.Description,
		"groupAdmin":  doc.GroupAdmin,
		"isActive":    doc.IsActive,
		"reason":      doc.Reason,
		"updatedAt":   doc.UpdatedAt,
	}

	result, err := repo.coll.UpdateOne(ctx, bson.M{"_id": doc.ID}, bson.M{"$set": set})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return repository.ErrDuplicateGroup
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update group")
	}
	if result.MatchedCount == 0 {
		return repository.ErrGroupNotFound
	}

	return nil
}

func (repo *groupRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := repo.coll.DeleteOne(ctx, bson.M{"_id": idString(id)})
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete group")
	}
	if result.DeletedCount == 0 {
		return repository.ErrGroupNotFound
	}

	return nil
}

func (repo *groupRepository) AddMember(ctx context.Context, groupID uuid.UUID, userID uuid.UUID) error {
	return addToSet(ctx, repo.coll, groupID, "members", userID)
}

func (repo *groupRepository) RemoveMember(ctx context.Context, groupID uuid.UUID, userID uuid.UUID) error {
	return pull(ctx, repo.coll, bson.M{"_id": idString(groupID)}, "members", userID)
}

func (repo *groupRepository) RemoveMemberFromAll(ctx context.Context, userID uuid.UUID) error {
	return pull(ctx, repo.coll, bson.M{"members": idString(userID)}, "members", userID)
}

func (repo *groupRepository) AddProject(ctx context.Context, groupID uuid.UUID, projectID uuid.UUID) error {
	return addToSet(ctx, repo.coll, groupID, "projects", projectID)
}

func (repo *groupRepository) RemoveProject(ctx context.Context, groupID uuid.UUID, projectID uuid.UUID) error {
	return pull(ctx, repo.coll, bson.M{"_id": idString(groupID)}, "projects", projectID)
}

func (repo *groupRepository) RemoveProjectFromAll(ctx context.Context, projectID uuid.UUID) error {
	return pull(ctx, repo.coll, bson.M{"projects": idString(projectID)}, "projects", projectID)
}

func toGroupDomainList(docs []*groupDocument) []*entity.Group {
	groups := make([]*entity.Group, 0, len(docs))
	for _, doc := range docs {
		groups = append(groups, doc.toDomain())
	}

	return groups
}
