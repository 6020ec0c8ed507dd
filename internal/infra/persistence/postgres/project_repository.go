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

var projectColumns = []string{"name", "description", "status", "group_id", "is_active", "reason", "updated_at"}

type projectRepository struct {
	db *gorm.DB
}

// NewProjectRepository is the constructor for projectRepository.
func NewProjectRepository(db *gorm.DB) repository.ProjectRepository {
	return &projectRepository{db: db}
}

// Create persists the project and its assignee links.
func (repo *projectRepository) Create(ctx context.Context, project *entity.Project) error {
	if project.ID == uuid.Nil {
		project.ID = newID()
	}
	projectM := fromProjectDomain(project)

	if err := repo.db.WithContext(ctx).Create(projectM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrGroupNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create project")
	}

	project.CreatedAt = projectM.CreatedAt
	project.UpdatedAt = projectM.UpdatedAt

	for _, userID := range project.AssignedUserIDs {
		if err := linkUserProject(ctx, repo.db, userID, project.ID); err != nil {
			return err
		}
	}

	return nil
}

func (repo *projectRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Project, error) {
	var projectM model.ProjectModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).Take(&projectM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProjectNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find project")
	}

	projects := []*entity.Project{toProjectDomain(&projectM)}
	if err := loadProjectAssignees(ctx, repo.db, projects); err != nil {
		return nil, err
	}

	return projects[0], nil
}

func (repo *projectRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Project, error) {
	if len(ids) == 0 {
		return []*entity.Project{}, nil
	}

	return repo.find(ctx, "id IN ?", ids)
}

// FindByGroup returns the projects owned by the group.
func (repo *projectRepository) FindByGroup(ctx context.Context, groupID uuid.UUID) ([]*entity.Project, error) {
	return repo.find(ctx, "group_id = ?", groupID)
}

func (repo *projectRepository) find(ctx context.Context, query string, args ...any) ([]*entity.Project, error) {
	var rows []*model.ProjectModel
	if err := repo.db.WithContext(ctx).Where(query, args...).Order("created_at ASC").Find(&rows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find projects")
	}

	projects := toProjectDomainList(rows)
	if err := loadProjectAssignees(ctx, repo.db, projects); err != nil {
		return nil, err
	}

	return projects, nil
}

// List returns one page of projects matching filter and the total count.
func (repo *projectRepository) List(ctx context.Context, filter repository.ProjectFilter, page entity.Page) ([]*entity.Project, int64, error) {
	scope := func(db *gorm.DB) *gorm.DB {
		if filter.ActiveOnly {
			db = db.Where("is_active = ?", true)
		}

		switch {
		case filter.VisibleTo != nil && len(filter.GroupIDs) > 0:
			assigned := repo.db.Model(&model.UserProjectModel{}).Select("project_id").Where("user_id = ?", *filter.VisibleTo)
			db = db.Where("id IN (?) OR group_id IN ?", assigned, filter.GroupIDs)
		case filter.VisibleTo != nil:
			assigned := repo.db.Model(&model.UserProjectModel{}).Select("project_id").Where("user_id = ?", *filter.VisibleTo)
			db = db.Where("id IN (?)", assigned)
		case filter.GroupIDs != nil:
			if len(filter.GroupIDs) == 0 {
				return matchNone(db)
			}
			db = db.Where("group_id IN ?", filter.GroupIDs)
		}

		return db
	}

	var total int64
	if err := repo.db.WithContext(ctx).Model(&model.ProjectModel{}).Scopes(scope).Count(&total).Error; err != nil {
		return nil, 0, domainerrors.NewDatabaseExecuteError(err, "failed to count projects")
	}

	var rows []*model.ProjectModel
	err := repo.db.WithContext(ctx).Scopes(scope, paginate(page)).Order("created_at ASC").Find(&rows).Error
	if err != nil {
		return nil, 0, domainerrors.NewDatabaseExecuteError(err, "failed to list projects")
	}

	projects := toProjectDomainList(rows)
	if err := loadProjectAssignees(ctx, repo.db, projects); err != nil {
		return nil, 0, err
	}

	return projects, total, nil
}

// Update writes the scalar fields including group_id.
func (repo *projectRepository) Update(ctx context.Context, project *entity.Project) error {
	projectM := fromProjectDomain(project)
	projectM.UpdatedAt = time.Now().UTC()

	result := repo.db.WithContext(ctx).Model(&model.ProjectModel{}).
		Where("id = ?", project.ID).
		Select(projectColumns).
		Updates(projectM)
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return repository.ErrGroupNotFound
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update project")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProjectNotFound
	}

	project.UpdatedAt = projectM.UpdatedAt

	return nil
}

func (repo *projectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.ProjectModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete project")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProjectNotFound
	}

	return nil
}

func (repo *projectRepository) SetGroup(ctx context.Context, projectID uuid.UUID, groupID *uuid.UUID) error {
	return setProjectGroup(ctx, repo.db, groupID, "id = ?", projectID)
}

func (repo *projectRepository) ClearGroup(ctx context.Context, groupID uuid.UUID) error {
	return setProjectGroup(ctx, repo.db, nil, "group_id = ?", groupID)
}

func (repo *projectRepository) AddAssignee(ctx context.Context, projectID uuid.UUID, userID uuid.UUID) error {
	return linkUserProject(ctx, repo.db, userID, projectID)
}

func (repo *projectRepository) RemoveAssignee(ctx context.Context, projectID uuid.UUID, userID uuid.UUID) error {
	return unlinkUserProject(ctx, repo.db, "user_id = ? AND project_id = ?", userID, projectID)
}

func (repo *projectRepository) RemoveAssigneeFromAll(ctx context.Context, userID uuid.UUID) error {
	return unlinkUserProject(ctx, repo.db, "user_id = ?", userID)
}

// loadProjectAssignees fills AssignedUserIDs from user_projects.
func loadProjectAssignees(ctx context.Context, db *gorm.DB, projects []*entity.Project) error {
	if len(projects) == 0 {
		return nil
	}

	byID := make(map[uuid.UUID]*entity.Project, len(projects))
	ids := make([]uuid.UUID, 0, len(projects))
	for _, p := range projects {
		p.AssignedUserIDs = []uuid.UUID{}
		byID[p.ID] = p
		ids = append(ids, p.ID)
	}

	var links []model.UserProjectModel
	if err := db.WithContext(ctx).Where("project_id IN ?", ids).Order("created_at ASC").Find(&links).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to load project assignees")
	}
	for _, link := range links {
		if p, ok := byID[link.ProjectID]; ok {
			p.AssignedUserIDs = append(p.AssignedUserIDs, link.UserID)
		}
	}

	return nil
}

// --- Mapper Functions ---

func toProjectDomain(data *model.ProjectModel) *entity.Project {
	if data == nil {
		return nil
	}

	return &entity.Project{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Status:      entity.ProjectStatus(data.Status),
		GroupID:     data.GroupID,
		CreatedBy:   data.CreatedBy,
		IsActive:    data.IsActive,
		Reason:      data.Reason,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func toProjectDomainList(rows []*model.ProjectModel) []*entity.Project {
	projects := make([]*entity.Project, 0, len(rows))
	for _, row := range rows {
		projects = append(projects, toProjectDomain(row))
	}

	return projects
}

func fromProjectDomain(data *entity.Project) *model.ProjectModel {
	if data == nil {
		return nil
	}

	return &model.ProjectModel{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Status:      string(data.Status),
		GroupID:     data.GroupID,
		CreatedBy:   data.CreatedBy,
		IsActive:    data.IsActive,
		Reason:      data.Reason,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
