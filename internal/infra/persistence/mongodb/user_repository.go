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

// userRepository keeps group and project membership as arrays on the user document.
type userRepository struct {
	coll *mongo.Collection
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *mongo.Database) repository.UserRepository {
	return &userRepository{coll: db.Collection(collUsers)}
}

func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	if user.ID == uuid.Nil {
		user.ID = newID()
	}
	now := utcNow()
	user.CreatedAt = now
	user.UpdatedAt = now

	if _, err := repo.coll.InsertOne(ctx, fromUserDomain(user)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return errors.Wrap(repository.ErrDuplicateUser, "username or email")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	return nil
}

func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return repo.findOne(ctx, bson.M{"_id": idString(id)})
}

func (repo *userRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	return repo.findOne(ctx, bson.M{"username": username})
}

func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return repo.findOne(ctx, bson.M{"email": email})
}

func (repo *userRepository) findOne(ctx context.Context, filter bson.M) (*entity.User, error) {
	var doc userDocument
	if err := repo.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrUserNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find user")
	}

	return doc.toDomain(), nil
}

func (repo *userRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.User, error) {
	if len(ids) == 0 {
		return []*entity.User{}, nil
	}

	docs, err := findAll[userDocument](ctx, repo.coll, bson.M{"_id": bson.M{"$in": idStrings(ids)}})
	if err != nil {
		return nil, err
	}

	return toUserDomainList(docs), nil
}

func (repo *userRepository) List(ctx context.Context, page entity.Page) ([]*entity.User, int64, error) {
	total, err := repo.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, domainerrors.NewDatabaseExecuteError(err, "failed to count users")
	}

	docs, err := findAll[userDocument](ctx, repo.coll, bson.M{}, pageOptions(page, "createdAt", 1))
	if err != nil {
		return nil, 0, err
	}

	return toUserDomainList(docs), total, nil
}

func (repo *userRepository) ExistsWithRole(ctx context.Context, role entity.Role) (bool, error) {
	count, err := repo.coll.CountDocuments(ctx, bson.M{"role": string(role)}, options.Count().SetLimit(1))
	if err != nil {
		return false, domainerrors.NewDatabaseExecuteError(err, "failed to check user role")
	}

	return count > 0, nil
}

// Update sets the scalar fields. groupIds and projectIds are left to the membership methods.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	user.UpdatedAt = utcNow()
	doc := fromUserDomain(user)

	set := bson.M{
		"firstName":       doc.FirstName,
		"lastName":        doc.LastName,
		"email":           doc.Email,
		"phone":           doc.Phone,
		"username":        doc.Username,
		"passwordHash":    doc.PasswordHash,
		"role":            doc.Role,
		"businessPurpose": doc.BusinessPurpose,
		"isActive":        doc.IsActive,
		"isApproved":      doc.IsApproved,
		"status":          doc.Status,
		"reason":          doc.Reason,
		"updatedAt":       doc.UpdatedAt,
	}

	result, err := repo.coll.UpdateOne(ctx, bson.M{"_id": doc.ID}, bson.M{"$set": set})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return errors.Wrap(repository.ErrDuplicateUser, "username or email")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update user")
	}
	if result.MatchedCount == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

func (repo *userRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := repo.coll.DeleteOne(ctx, bson.M{"_id": idString(id)})
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete user")
	}
	if result.DeletedCount == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

func (repo *userRepository) AddGroup(ctx context.Context, userID uuid.UUID, groupID uuid.UUID) error {
	return addToSet(ctx, repo.coll, userID, "groupIds", groupID)
}

func (repo *userRepository) RemoveGroup(ctx context.Context, userID uuid.UUID, groupID uuid.UUID) error {
	return pull(ctx, repo.coll, bson.M{"_id": idString(userID)}, "groupIds", groupID)
}

func (repo *userRepository) RemoveGroupFromAll(ctx context.Context, groupID uuid.UUID) error {
	return pull(ctx, repo.coll, bson.M{"groupIds": idString(groupID)}, "groupIds", groupID)
}

func (repo *userRepository) AddProject(ctx context.Context, userID uuid.UUID, projectID uuid.UUID) error {
	return addToSet(ctx, repo.coll, userID, "projectIds", projectID)
}

func (repo *userRepository) RemoveProject(ctx context.Context, userID uuid.UUID, projectID uuid.UUID) error {
	return pull(ctx, repo.coll, bson.M{"_id": idString(userID)}, "projectIds", projectID)
}

func (repo *userRepository) RemoveProjectFromAll(ctx context.Context, projectID uuid.UUID) error {
	return pull(ctx, repo.coll, bson.M{"projectIds": idString(projectID)}, "projectIds", projectID)
}

// addToSet appends value to the array field of one document unless it is already there.
func addToSet(ctx context.Context, coll *mongo.Collection, id uuid.UUID, field string, value uuid.UUID) error {
	update := bson.M{
		"$addToSet": bson.M{field: idString(value)},
		"$set":      bson.M{"updatedAt": utcNow()},
	}
	if _, err := coll.UpdateOne(ctx, bson.M{"_id": idString(id)}, update); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to add to "+coll.Name()+"."+field)
	}

	return nil
}

// pull removes value from the array field of every document matching filter.
func pull(ctx context.Context, coll *mongo.Collection, filter bson.M, field string, value uuid.UUID) error {
	update := bson.M{
		"$pull": bson.M{field: idString(value)},
		"$set":  bson.M{"updatedAt": utcNow()},
	}
	if _, err := coll.UpdateMany(ctx, filter, update); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to remove from "+coll.Name()+"."+field)
	}

	return nil
}

func toUserDomainList(docs []*userDocument) []*entity.User {
	users := make([]*entity.User, 0, len(docs))
	for _, doc := range docs {
		users = append(users, doc.toDomain())
	}

	return users
}
