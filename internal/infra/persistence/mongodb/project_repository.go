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

type projectRepository struct {
	coll *mongo.Collection
}

// NewProjectRepository is the constructor for projectRepository.
func NewProjectRepository(db *mongo.Database) repository.ProjectRepository {
	return &projectRepository{coll: db.Collection(collProjects)}
}

func (repo *projectRepository) Create(ctx context.Context, project *entity.Project) error {
	if project.ID == uuid.Nil {
		project.ID = newID()
	}
	now := utcNow()
	project.CreatedAt = now
	project.UpdatedAt = now

	if _, err := repo.coll.InsertOne(ctx, fromProjectDomain(project)); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create project")
	}

	return nil
}

func (repo *projectRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Project, error) {
	var doc projectDocument
	if err := repo.coll.FindOne(ctx, bson.M{"_id": idString(id)}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrProjectNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find project")
	}

	return doc.toDomain(), nil
}

func (repo *projectRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Project, error) {
	if len(ids) == 0 {
		return []*entity.Project{}, nil
	}

	return repo.find(ctx, bson.M{"_id": bson.M{"$in": idStrings(ids)}})
}

func (repo *projectRepository) FindByGroup(ctx context.Context, groupID uuid.UUID) ([]*entity.Project, error) {
	return repo.find(ctx, bson.M{"groupId": idString(groupID)})
}

func (repo *projectRepository) find(ctx context.Context, filter bson.M) ([]*entity.Project, error) {
	docs, err := findAll[projectDocument](ctx, repo.coll, filter)
	if err != nil {
		return nil, err
	}

	return toProjectDomainList(docs), nil
}

func (repo *projectRepository) List(ctx context.Context, filter repository.ProjectFilter, page entity.Page) ([]*entity.Project, int64, error) {
	query := bson.M{}
	if filter.ActiveOnly {
		query["isActive"] = true
	}

	switch {
	case filter.VisibleTo != nil && len(filter.GroupIDs) > 0:
		query["$or"] = bson.A{
			bson.M{"assignedUsers": idString(*filter.VisibleTo)},
			bson.M{"groupId": bson.M{"$in": idStrings(filter.GroupIDs)}},
		}
	case filter.VisibleTo != nil:
		query["assignedUsers"] = idString(*filter.VisibleTo)
	case filter.GroupIDs != nil:
		if len(filter.GroupIDs) == 0 {
			query = matchNone()
		} else {
			query["groupId"] = bson.M{"$in": idStrings(filter.GroupIDs)}
		}
	}

	total, err := repo.coll.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, domainerrors.NewDatabaseExecuteError(err, "failed to count projects")
	}

	docs, err := findAll[projectDocument](ctx, repo.coll, query, pageOptions(page, "createdAt", 1))
	if err != nil {
		return nil, 0, err
	}

	return toProjectDomainList(docs), total, nil
}

func (repo *projectRepository) Update(ctx context.Context, project *entity.Project) error {
	project.UpdatedAt = utcNow()
	doc := fromProjectDomain(project)

	set := bson.M{
		"name":        doc.Name,
		"description": doc.Description,
		"status":      doc.Status,
		"groupId":     doc.GroupID,
		"isActive":    doc.IsActive,
		"reason":      doc.Reason,
		"updatedAt":   doc.UpdatedAt,
	}

	result, err := repo.coll.UpdateOne(ctx, bson.M{"_id": doc.ID}, bson.M{"$set": set})
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update project")
	}
	if result.MatchedCount == 0 {
		return repository.ErrProjectNotFound
	}

	return nil
}

func (repo *projectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := repo.coll.DeleteOne(ctx, bson.M{"_id": idString(id)})
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete project")
	}
	if result.DeletedCount == 0 {
		return repository.ErrProjectNotFound
	}

	return nil
}

func (repo *projectRepository) SetGroup(ctx context.Context, projectID uuid.UUID, groupID *uuid.UUID) error {
	return repo.setGroup(ctx, bson.M{"_id": idString(projectID)}, optionalIDString(groupID))
}

func (repo *projectRepository) ClearGroup(ctx context.Context, groupID uuid.UUID) error {
	return repo.setGroup(ctx, bson.M{"groupId": idString(groupID)}, nil)
}

func (repo *projectRepository) setGroup(ctx context.Context, filter bson.M, groupID *string) error {
	update := bson.M{"$set": bson.M{"groupId": groupID, "updatedAt": utcNow()}}
	if _, err := repo.coll.UpdateMany(ctx, filter, update); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to set project group")
	}

	return nil
}

func (repo *projectRepository) AddAssignee(ctx context.Context, projectID uuid.UUID, userID uuid.UUID) error {
	return addToSet(ctx, repo.coll, projectID, "assignedUsers", userID)
}

func (repo *projectRepository) RemoveAssignee(ctx context.Context, projectID uuid.UUID, userID uuid.UUID) error {
	return pull(ctx, repo.coll, bson.M{"_id": idString(projectID)}, "assignedUsers", userID)
}

func (repo *projectRepository) RemoveAssigneeFromAll(ctx context.Context, userID uuid.UUID) error {
	return pull(ctx, repo.coll, bson.M{"assignedUsers": idString(userID)}, "assignedUsers", userID)
}

func toProjectDomainList(docs []*projectDocument) []*entity.Project {
	projects := make([]*entity.Project, 0, len(docs))
	for _, doc := range docs {
		projects = append(projects, doc.toDomain())
	}

	return projects
}
