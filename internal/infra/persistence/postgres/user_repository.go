// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
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
	"gorm.io/gorm/clause"
)

// userColumns are the columns written by Update. Memberships live in join tables.
var userColumns = []string{
	"first_name", "last_name", "email", "phone", "username", "password_hash", "role",
	"business_purpose", "is_active", "is_approved", "status", "reason", "updated_at",
}

// userRepository implements the domain.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a domain.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// Create persists a new user together with any group and project links it already carries.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	if user.ID == uuid.Nil {
		user.ID = newID()
	}
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return errors.Wrap(repository.ErrDuplicateUser, violatedConstraint(err))
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required user information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	for _, groupID := range user.GroupIDs {
		if err := repo.AddGroup(ctx, user.ID, groupID); err != nil {
			return err
		}
	}
	for _, projectID := range user.ProjectIDs {
		if err := repo.AddProject(ctx, user.ID, projectID); err != nil {
			return err
		}
	}

	return nil
}

// FindByID retrieves a single user by their unique ID with memberships loaded.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return repo.findOne(ctx, "id = ?", id)
}

// FindByUsername retrieves a single user by login name.
func (repo *userRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	return repo.findOne(ctx, "username = ?", username)
}

// FindByEmail retrieves a single user by their email address.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return repo.findOne(ctx, "email = ?", email)
}

func (repo *userRepository) findOne(ctx context.Context, query string, arg any) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.db.WithContext(ctx).Where(query, arg).Take(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find user")
	}

	users := []*entity.User{toUserDomain(&userM)}
	if err := loadUserMemberships(ctx, repo.db, users); err != nil {
		return nil, err
	}

	return users[0], nil
}

// FindByIDs retrieves the users that exist among ids.
func (repo *userRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.User, error) {
	if len(ids) == 0 {
		return []*entity.User{}, nil
	}

	var rows []*model.UserModel
	if err := repo.db.WithContext(ctx).Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find users")
	}

	users := toUserDomainList(rows)
	if err := loadUserMemberships(ctx, repo.db, users); err != nil {
		return nil, err
	}

	return users, nil
}

// List returns one page of users, oldest first, and the total count.
func (repo *userRepository) List(ctx context.Context, page entity.Page) ([]*entity.User, int64, error) {
	var total int64
	if err := repo.db.WithContext(ctx).Model(&model.UserModel{}).Count(&total).Error; err != nil {
		return nil, 0, domainerrors.NewDatabaseExecuteError(err, "failed to count users")
	}

	var rows []*model.UserModel
	if err := repo.db.WithContext(ctx).Scopes(paginate(page)).Order("created_at ASC").Find(&rows).Error; err != nil {
		return nil, 0, domainerrors.NewDatabaseExecuteError(err, "failed to list users")
	}

	users := toUserDomainList(rows)
	if err := loadUserMemberships(ctx, repo.db, users); err != nil {
		return nil, 0, err
	}

	return users, total, nil
}

// ExistsWithRole reports whether at least one user holds role.
func (repo *userRepository) ExistsWithRole(ctx context.Context, role entity.Role) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).Model(&model.UserModel{}).
		Where("role = ?", string(role)).
		Count(&count).Error
	if err != nil {
		return false, domainerrors.NewDatabaseExecuteError(err, "failed to check role")
	}

	return count > 0, nil
}

// Update writes the scalar fields of the user.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)
	userM.UpdatedAt = time.Now().UTC()

	result := repo.db.WithContext(ctx).Model(&model.UserModel{}).
		Where("id = ?", user.ID).
		Select(userColumns).
		Updates(userM)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return errors.Wrap(repository.ErrDuplicateUser, violatedConstraint(result.Error))
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update user")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// Delete removes the user. Join rows cascade.
func (repo *userRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.UserModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete user")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// AddGroup links the user to the group; an existing link is left alone.
func (repo *userRepository) AddGroup(ctx context.Context, userID uuid.UUID, groupID uuid.UUID) error {
	return linkUserGroup(ctx, repo.db, userID, groupID)
}

// RemoveGroup unlinks the user from the group.
func (repo *userRepository) RemoveGroup(ctx context.Context, userID uuid.UUID, groupID uuid.UUID) error {
	return unlinkUserGroup(ctx, repo.db, "user_id = ? AND group_id = ?", userID, groupID)
}

// RemoveGroupFromAll unlinks every user from the group.
func (repo *userRepository) RemoveGroupFromAll(ctx context.Context, groupID uuid.UUID) error {
	return unlinkUserGroup(ctx, repo.db, "group_id = ?", groupID)
}

// AddProject links the user to the project; an existing link is left alone.
func (repo *userRepository) AddProject(ctx context.Context, userID uuid.UUID, projectID uuid.UUID) error {
	return linkUserProject(ctx, repo.db, userID, projectID)
}

// RemoveProject unlinks the user from the project.
func (repo *userRepository) RemoveProject(ctx context.Context, userID uuid.UUID, projectID uuid.UUID) error {
	return unlinkUserProject(ctx, repo.db, "user_id = ? AND project_id = ?", userID, projectID)
}

// RemoveProjectFromAll unlinks every user from the project.
func (repo *userRepository) RemoveProjectFromAll(ctx context.Context, projectID uuid.UUID) error {
	return unlinkUserProject(ctx, repo.db, "project_id = ?", projectID)
}

// --- Join table helpers shared by the user, group and project repositories ---

func linkUserGroup(ctx context.Context, db *gorm.DB, userID, groupID uuid.UUID) error {
	link := &model.UserGroupModel{UserID: userID, GroupID: groupID}
	err := db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(link).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to link user and group")
	}

	return nil
}

func unlinkUserGroup(ctx context.Context, db *gorm.DB, query string, args ...any) error {
	if err := db.WithContext(ctx).Where(query, args...).Delete(&model.UserGroupModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to unlink user and group")
	}

	return nil
}

func linkUserProject(ctx context.Context, db *gorm.DB, userID, projectID uuid.UUID) error {
	link := &model.UserProjectModel{UserID: userID, ProjectID: projectID}
	err := db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(link).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to link user and project")
	}

	return nil
}

func unlinkUserProject(ctx context.Context, db *gorm.DB, query string, args ...any) error {
	if err := db.WithContext(ctx).Where(query, args...).Delete(&model.UserProjectModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to unlink user and project")
	}

	return nil
}

// loadUserMemberships fills GroupIDs and ProjectIDs from the join tables.
func loadUserMemberships(ctx context.Context, db *gorm.DB, users []*entity.User) error {
	if len(users) == 0 {
		return nil
	}

	byID := make(map[uuid.UUID]*entity.User, len(users))
	ids := make([]uuid.UUID, 0, len(users))
	for _, u := range users {
		u.GroupIDs = []uuid.UUID{}
		u.ProjectIDs = []uuid.UUID{}
		byID[u.ID] = u
		ids = append(ids, u.ID)
	}

	var groupLinks []model.UserGroupModel
	if err := db.WithContext(ctx).Where("user_id IN ?", ids).Order("created_at ASC").Find(&groupLinks).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to load user groups")
	}
	for _, link := range groupLinks {
		if u, ok := byID[link.UserID]; ok {
			u.GroupIDs = append(u.GroupIDs, link.GroupID)
		}
	}

	var projectLinks []model.UserProjectModel
	if err := db.WithContext(ctx).Where("user_id IN ?", ids).Order("created_at ASC").Find(&projectLinks).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to load user projects")
	}
	for _, link := range projectLinks {
		if u, ok := byID[link.UserID]; ok {
			u.ProjectIDs = append(u.ProjectIDs, link.ProjectID)
		}
	}

	return nil
}

// --- Mapper Functions ---

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:              data.ID,
		FirstName:       data.FirstName,
		LastName:        data.LastName,
		Email:           data.Email,
		Phone:           data.Phone,
		Username:        data.Username,
		PasswordHash:    data.PasswordHash,
		Role:            entity.Role(data.Role),
		BusinessPurpose: data.BusinessPurpose,
		IsActive:        data.IsActive,
		IsApproved:      data.IsApproved,
		Status:          entity.ApprovalStatus(data.Status),
		Reason:          data.Reason,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

func toUserDomainList(rows []*model.UserModel) []*entity.User {
	users := make([]*entity.User, 0, len(rows))
	for _, row := range rows {
		users = append(users, toUserDomain(row))
	}

	return users
}

// fromUserDomain converts a domain User entity to a GORM UserModel for persistence.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:              data.ID,
		FirstName:       data.FirstName,
		LastName:        data.LastName,
		Email:           data.Email,
		Phone:           data.Phone,
		Username:        data.Username,
		PasswordHash:    data.PasswordHash,
		Role:            string(data.Role),
		BusinessPurpose: data.BusinessPurpose,
		IsActive:        data.IsActive,
		IsApproved:      data.IsApproved,
		Status:          string(data.Status),
		Reason:          data.Reason,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}
