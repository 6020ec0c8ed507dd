package impl

import (
	"context"
	"log/slog"

	deliverycontext "sapphire/internal/delivery/context"
	"sapphire/internal/domain/entity"
	domainerrors "sapphire/internal/domain/errors"
	"sapphire/internal/domain/repository"
	"sapphire/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type projectService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// ProjectServiceParams holds dependencies for ProjectService, injected by Fx.
type ProjectServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Logger    *slog.Logger
}

// NewProjectService is the constructor for projectService.
func NewProjectService(params ProjectServiceParams) usecase.ProjectUsecase {
	return &projectService{
		txManager: params.TxManager,
		logger:    params.Logger,
	}
}

func (srv *projectService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *projectService) CreateProject(ctx context.Context, input *usecase.CreateProjectInput) (*entity.Project, error) {
	status := input.Status
	if status == "" {
		status = entity.ProjectNotStarted
	}
	if !status.IsValid() {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("unknown project status " + string(status)))
	}
	assignees := uniqueIDs(input.AssignedUserIDs)

	project := &entity.Project{
		Name:            input.Name,
		Description:     input.Description,
		Status:          status,
		GroupID:         input.GroupID,
		AssignedUserIDs: []uuid.UUID{},
		CreatedBy:       input.ActorID,
		IsActive:        true,
	}

	err := srv.txManager.Execute(ctx, func(txCtx context.Context, repos repository.RepositoryFactory) error {
		if input.GroupID != nil {
			if _, err := repos.GroupRepo().FindByID(txCtx, *input.GroupID); err != nil {
				return translate(err, "failed to find group")
			}
		}
		if _, err := requireUsers(txCtx, repos.UserRepo(), assignees); err != nil {
			return err
		}

		if err := repos.ProjectRepo().Create(txCtx, project); err != nil {
			return translate(err, "failed to create project")
		}
		if input.GroupID != nil {
			if err := repos.GroupRepo().AddProject(txCtx, *input.GroupID, project.ID); err != nil {
				return errors.Wrap(err, "failed to add project to group")
			}
		}
		for _, userID := range assignees {
			if err := assignProject(txCtx, repos, userID, project.ID); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "create project")
	}

	project.AssignedUserIDs = assignees
	srv.log(ctx).Info("Project created", slog.String("projectID", project.ID.String()))

	return project, nil
}

// ListProjects shows SuperAdmins every active project and everybody else the active projects
// assigned to them or owned by one of their groups.
func (srv *projectService) ListProjects(ctx context.Context, input *usecase.ListInput) (*usecase.PageResult[*usecase.ProjectView], error) {
	page := input.Page.Normalize()

	var result *usecase.PageResult[*usecase.ProjectView]
	err := srv.txManager.Execute(ctx, func(txCtx context.Context, repos repository.RepositoryFactory) error {
		viewer, err := repos.UserRepo().FindByID(txCtx, input.UserID)
		if err != nil {
			return translate(err, "failed to find user")
		}

		filter := repository.ProjectFilter{ActiveOnly: true}
		if viewer.Role != entity.RoleSuperAdmin {
			filter.VisibleTo = &viewer.ID
			filter.GroupIDs = append([]uuid.UUID{}, viewer.GroupIDs...)
		}

		projects, total, err := repos.ProjectRepo().List(txCtx, filter, page)
		if err != nil {
			return errors.Wrap(err, "failed to list projects")
		}

		views, err := projectViews(txCtx, repos, projects)
		if err != nil {
			return err
		}
		result = usecase.NewPageResult(views, total, page)

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "list projects")
	}

	return result, nil
}

func (srv *projectService) GetProject(ctx context.Context, id uuid.UUID) (*usecase.ProjectView, error) {
	var view *usecase.ProjectView
	err := srv.txManager.Execute(ctx, func(txCtx context.Context, repos repository.RepositoryFactory) error {
		project, err := repos.ProjectRepo().FindByID(txCtx, id)
		if err != nil {
			return translate(err, "failed to find project")
		}

		views, err := projectViews(txCtx, repos, []*entity.Project{project})
		if err != nil {
			return err
		}
		view = views[0]

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "get project")
	}

	return view, nil
}

func projectViews(ctx context.Context, repos repository.RepositoryFactory, projects []*entity.Project) ([]*usecase.ProjectView, error) {
	var groupIDs, userIDs []uuid.UUID
	for _, p := range projects {
		if p.GroupID != nil {
			groupIDs = append(groupIDs, *p.GroupID)
		}
		userIDs = append(userIDs, p.AssignedUserIDs...)
	}

	groups, err := repos.GroupRepo().FindByIDs(ctx, uniqueIDs(groupIDs))
	if err != nil {
		return nil, errors.Wrap(err, "failed to load groups")
	}
	users, err := repos.UserRepo().FindByIDs(ctx, uniqueIDs(userIDs))
	if err != nil {
		return nil, errors.Wrap(err, "failed to load assignees")
	}

	groupByID := make(map[uuid.UUID]*entity.Group, len(groups))
	for _, g := range groups {
		groupByID[g.ID] = g
	}
	names := nameIndex(users)

	views := make([]*usecase.ProjectView, 0, len(projects))
	for _, p := range projects {
		view := &usecase.ProjectView{Project: p, AssignedUsers: userRefs(p.AssignedUserIDs, names)}
		if p.GroupID != nil {
			if g, ok := groupByID[*p.GroupID]; ok {
				view.Group = &usecase.GroupRef{ID: g.ID, Name: g.Name}
			}
		}
		views = append(views, view)
	}

	return views, nil
}

// UpdateProject applies the non-nil fields, moves the project between groups and diffs its assignees.
func (srv *projectService) UpdateProject(ctx context.Context, input *usecase.UpdateProjectInput) (*entity.Project, error) {
	if input.Status != nil && !input.Status.IsValid() {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("unknown project status " + string(*input.Status)))
	}

	var updated *entity.Project
	err := srv.txManager.Execute(ctx, func(txCtx context.Context, repos repository.RepositoryFactory) error {
		project, err := repos.ProjectRepo().FindByID(txCtx, input.ID)
		if err != nil {
			return translate(err, "failed to find project")
		}

		if input.Name != nil {
			project.Name = *input.Name
		}
		if input.Description != nil {
			project.Description = *input.Description
		}
		if input.Status != nil {
			project.Status = *input.Status
		}

		switch {
		case input.ClearGroup && project.GroupID != nil:
			if err := detachProject(txCtx, repos, *project.GroupID, project.ID); err != nil {
				return err
			}
			project.GroupID = nil
		case input.GroupID != nil && (project.GroupID == nil || *project.GroupID != *input.GroupID):
			if _, err := repos.GroupRepo().FindByID(txCtx, *input.GroupID); err != nil {
				return translate(err, "failed to find group")
			}
			if err := attachProject(txCtx, repos, *input.GroupID, project); err != nil {
				return err
			}
		}

		if input.AssignedUserIDs != nil {
			next := uniqueIDs(input.AssignedUserIDs)
			if _, err := requireUsers(txCtx, repos.UserRepo(), next); err != nil {
				return err
			}
			added, removed := diffIDs(project.AssignedUserIDs, next)
			for _, userID := range removed {
				if err := unassignProject(txCtx, repos, userID, project.ID); err != nil {
					return err
				}
			}
			for _, userID := range added {
				if err := assignProject(txCtx, repos, userID, project.ID); err != nil {
					return err
				}
			}
			project.AssignedUserIDs = next
		}

		if err := repos.ProjectRepo().Update(txCtx, project); err != nil {
			return translate(err, "failed to update project")
		}
		updated = project

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "update project")
	}

	srv.log(ctx).Info("Project updated", slog.String("projectID", updated.ID.String()))

	return updated, nil
}

func (srv *projectService) InactivateProject(ctx context.Context, id uuid.UUID, reason string) error {
	err := srv.txManager.Execute(ctx, func(txCtx context.Context, repos repository.RepositoryFactory) error {
		project, err := repos.ProjectRepo().FindByID(txCtx, id)
		if err != nil {
			return translate(err, "failed to find project")
		}

		project.IsActive = false
		project.Reason = reason

		return translate(repos.ProjectRepo().Update(txCtx, project), "failed to inactivate project")
	})
	if err != nil {
		return errors.Wrap(err, "inactivate project")
	}

	srv.log(ctx).Info("Project inactivated", slog.String("projectID", id.String()))

	return nil
}

// DeleteProject pulls the project from its assignees and its group before removing it.
func (srv *projectService) DeleteProject(ctx context.Context, id uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(txCtx context.Context, repos repository.RepositoryFactory) error {
		if _, err := repos.ProjectRepo().FindByID(txCtx, id); err != nil {
			return translate(err, "failed to find project")
		}

		if err := repos.UserRepo().RemoveProjectFromAll(txCtx, id); err != nil {
			return errors.Wrap(err, "failed to pull project from users")
		}
		if err := repos.GroupRepo().RemoveProjectFromAll(txCtx, id); err != nil {
			return errors.Wrap(err, "failed to pull project from groups")
		}

		return translate(repos.ProjectRepo().Delete(txCtx, id), "failed to delete project")
	})
	if err != nil {
		return errors.Wrap(err, "delete project")
	}

	srv.log(ctx).Info("Project deleted", slog.String("projectID", id.String()))

	return nil
}
