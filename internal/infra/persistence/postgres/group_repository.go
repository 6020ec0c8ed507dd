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

var groupColumns = []string{"name", "description", "group_admin", "is_active", "reason", "updated_at"}

type groupRepository struct {
	db *gorm.DB
}

// NewGroupRepository is the constructor for groupRepository.
func NewGroupRepository(db *gorm.DB) repository.GroupRepository {
	return &groupRepository{db: db}
}

// Create persists the group, its member links and the group_id of its projects.
func (repo *groupRepository) Create(ctx context.Context, group *entity.Group) error {
	if group.ID == uuid.Nil {
		group.ID = newID()
	}
	groupM := fromGroupDomain(group)

	if err := repo.db.WithContext(ctx).Create(groupM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateGroup
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create group")
	}

	group.CreatedAt = groupM.CreatedAt
	group.UpdatedAt = groupM.UpdatedAt

	for _, userID := range group.MemberIDs {
		if err := linkUserGroup(ctx, repo.db, userID, group.ID); err != nil {
			return err
		}
	}
	for _, projectID := range group.ProjectIDs {
		if err := repo.AddProject(ctx, group.ID, projectID); err != nil {
			return err
		}
	}

	return nil
}

func (repo *groupRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Group, error) {
	return repo.findOne(ctx, "id = ?", id)
}

func (repo *groupRepository) FindByName(ctx context.Context, name string) (*entity.Group, error) {
	return repo.findOne(ctx, "name = ?", name)
}

func (repo *groupRepository) findOne(ctx context.Context, query string, arg any) (*entity.Group, error) {
	var groupM model.GroupModel
	if err := repo.db.WithContext(ctx).Where(query, arg).Take(&groupM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrGroupNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find group")
	}

	groups := []*entity.Group{toGroupDomain(&groupM)}
	if err := loadGroupMemberships(ctx, repo.db, groups); err != nil {
		return nil, err
	}

	return groups[0], nil
}

func (repo *groupRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Group, error) {
	if len(ids) == 0 {
		return []*entity.Group{}, nil
	}

	var rows []*model.GroupModel
	if err := repo.db.WithContext(ctx).Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find groups")
	}

	groups := toGroupDomainList(rows)
	if err := loadGroupMemberships(ctx, repo.db, groups); err != nil {
		return nil, err
	}

	return groups, nil
}

// List returns one page of groups matching filter and the total count.
func (repo *groupRepository) List(ctx context.Context, filter repository.GroupFilter, page entity.Page) ([]*entity.Group, int64, error) {
	scope := func(db *gorm.DB) *gorm.DB {
		if filter.ActiveOnly {
			db = db.Where("is_active = ?", true)
		}
		if filter.VisibleTo != nil {
			memberOf := repo.db.Model(&model.UserGroupModel{}).Select("group_id").Where("user_id = ?", *filter.VisibleTo)
			db = db.Where("created_by = ? OR id IN (?)", *filter.VisibleTo, memberOf)
		}

		return db
	}

	var total int64
	if err := repo.db.WithContext(ctx).Model(&model.GroupModel{}).Scopes(scope).Count(&total).Error; err != nil {
		return nil, 0, domainerrors.NewDatabaseExecuteError(err, "failed to count groups")
	}

	var rows []*model.GroupModel
	err := repo.db.WithContext(ctx).Scopes(scope, paginate(page)).Order("created_at ASC").Find(&rows).Error
	if err != nil {
		return nil, 0, domainerrors.NewDatabaseExecuteError(err, "failed to list groups")
	}

	groups := toGroupDomainList(rows)
	if err := loadGroupMemberships(ctx, repo.db, groups); err != nil {
		return nil, 0, err
	}

	return groups, total, nil
}

// Update writes name, description, admin, active flag and reason.
func (repo *groupRepository) Update(ctx context.Context, group *entity.Group) error {
	groupM := fromGroupDomain(group)
	groupM.UpdatedAt = time.Now().UTC()

	result := repo.db.WithContext(ctx).Model(&model.GroupModel{}).
		Where("id = ?", group.ID).
		Select(groupColumns).
		Updates(groupM)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrDuplicateGroup
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update group")
	}
	if result.RowsAffected == 0 {
		return repository.ErrGroupNotFound
	}

	group.UpdatedAt = groupM.UpdatedAt

	return nil
}

func (repo *groupRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.GroupModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete group")
	}
	if result.RowsAffected == 0 {
		return repository.ErrGroupNotFound
	}

	return nil
}

func (repo *groupRepository) AddMember(ctx context.Context, groupID uuid.UUID, userID uuid.UUID) error {
	return linkUserGroup(ctx, repo.db, userID, groupID)
}

func (repo *groupRepository) RemoveMember(ctx context.Context, groupID uuid.UUID, userID uuid.UUID) error {
	return unlinkUserGroup(ctx, repo.db, "user_id = ? AND group_id = ?", userID, groupID)
}

func (repo *groupRepository) RemoveMemberFromAll(ctx context.Context, userID uuid.UUID) error {
	return unlinkUserGroup(ctx, repo.db, "user_id = ?", userID)
}

// AddProject points the project at the group. projects.group_id is the single source of truth.
func (repo *groupRepository) AddProject(ctx context.Context, groupID uuid.UUID, projectID uuid.UUID) error {
	return setProjectGroup(ctx, repo.db, &groupID, "id = ?", projectID)
}

// RemoveProject detaches the project if it still belongs to the group.
func (repo *groupRepository) RemoveProject(ctx context.Context, groupID uuid.UUID, projectID uuid.UUID) error {
	return setProjectGroup(ctx, repo.db, nil, "id = ? AND group_id = ?", projectID, groupID)
}

// RemoveProjectFromAll detaches the project from whatever group holds it.
func (repo *groupRepository) RemoveProjectFromAll(ctx context.Context, projectID uuid.UUID) error {
	return setProjectGroup(ctx, repo.db, nil, "id = ?", projectID)
}

// setProjectGroup sets group_id, or NULL when groupID is nil, on the projects matching query.
func setProjectGroup(ctx context.Context, db *gorm.DB, groupID *uuid.UUID, query string, args ...any) error {
	var value any
	if groupID != nil {
		value = *groupID
	}

	err := db.WithContext(ctx).Model(&model.ProjectModel{}).
		Where(query, args...).
		Updates(map[string]any{"group_id": value, "updated_at": time.Now().UTC()}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to set project group")
	}

	return nil
}

// loadGroupMemberships fills MemberIDs from user_groups and ProjectIDs from projects.group_id.
func loadGroupMemberships(ctx context.Context, db *gorm.DB, groups []*entity.Group) error {
	if len(groups) == 0 {
		return nil
	}

	byID := make(map[uuid.UUID]*entity.Group, len(groups))
	ids := make([]uuid.UUID, 0, len(groups))
	for _, g := range groups {
		g.MemberIDs = []uuid.UUID{}
		g.ProjectIDs = []uuid.UUID{}
		byID[g.ID] = g
		ids = append(ids, g.ID)
	}

	var memberLinks []model.UserGroupModel
	if err := db.WithContext(ctx).Where("group_id IN ?", ids).Order("created_at ASC").Find(&memberLinks).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to load group members")
	}
	for _, link := range memberLinks {
		if g, ok := byID[link.GroupID]; ok {
			g.MemberIDs = append(g.MemberIDs, link.UserID)
		}
	}

	var projects []model.ProjectModel
	err := db.WithContext(ctx).Select("id", "group_id").Where("group_id IN ?", ids).Order("created_at ASC").Find(&projects).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to load group projects")
	}
	for _, p := range projects {
		if p.GroupID == nil {
			continue
		}
		if g, ok := byID[*p.GroupID]; ok {
			g.ProjectIDs = append(g.ProjectIDs, p.ID)
		}
	}

	return nil
}

// --- Mapper Functions ---

func toGroupDomain(data *model.GroupModel) *entity.Group {
	if data == nil {
		return nil
	}

	return &entity.Group{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		CreatedBy:   data.CreatedBy,
		GroupAdmin:  data.GroupAdmin,
		IsActive:    data.IsActive,
		Reason:      data.Reason,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func toGroupDomainList(rows []*model.GroupModel) []*entity.Group {
	groups := make([]*entity.Group, 0, len(rows))
	for _, row := range rows {
		groups = append(groups, toGroupDomain(row))
	}

	return groups
}

func fromGroupDomain(data *entity.Group) *model.GroupModel {
	if data == nil {
		return nil
	}

	return &model.GroupModel{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		CreatedBy:   data.CreatedBy,
		GroupAdmin:  data.GroupAdmin,
		IsActive:    data.IsActive,
		Reason:      data.Reason,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
