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

type groupService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// GroupServiceParams holds dependencies for GroupService, injected by Fx.
type GroupServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Logger    *slog.Logger
}

// NewGroupService is the constructor for groupService.
func NewGroupService(params GroupServiceParams) usecase.GroupUsecase {
	return &groupService{
		txManager: params.TxManager,
		logger:    params.Logger,
	}
}

func (srv *groupService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ensureGroupNameFree rejects a name already used by a different group.
func ensureGroupNameFree(ctx context.Context, repo repository.GroupRepository, selfID uuid.UUID, name string) error {
	existing, err := repo.FindByName(ctx, name)
	switch {
	case err == nil && existing.ID != selfID:
		return errors.WithStack(domainerrors.ErrGroupAlreadyExists)
	case err != nil && !errors.Is(err, repository.ErrGroupNotFound):
		return errors.Wrap(err, "failed to check group name")
	}

	return nil
}

// CreateGroup inserts the group and then writes the group id into every member and project.
func (srv *groupService) CreateGroup(ctx context.Context, input *usecase.CreateGroupInput) (*entity.Group, error) {
	createdBy := input.ActorID
	if input.CreatedBy != nil {
		createdBy = *input.CreatedBy
	}
	memberIDs := uniqueIDs(input.MemberIDs)
	projectIDs := uniqueIDs(input.ProjectIDs)

	group := &entity.Group{
		Name:        input.Name,
		Description: input.Description,
		CreatedBy:   createdBy,
		GroupAdmin:  input.GroupAdmin,
		MemberIDs:   []uuid.UUID{},
		ProjectIDs:  []uuid.UUID{},
		IsActive:    true,
	}

	err := srv.txManager.Execute(ctx, func(txCtx context.Context, repos repository.RepositoryFactory) error {
		if err := ensureGroupNameFree(txCtx, repos.GroupRepo(), uuid.Nil, input.Name); err != nil {
			return err
		}
		if _, err := requireUsers(txCtx, repos.UserRepo(), memberIDs); err != nil {
			return err
		}
		if input.GroupAdmin != nil {
			if _, err := requireUsers(txCtx, repos.UserRepo(), []uuid.UUID{*input.GroupAdmin}); err != nil {
				return err
			}
		}
		projects, err := requireProjects(txCtx, repos.ProjectRepo(), projectIDs)
		if err != nil {
			return err
		}

		if err := repos.GroupRepo().Create(txCtx, group); err != nil {
			return translate(err, "failed to create group")
		}

		for _, userID := range memberIDs {
			if err := joinGroup(txCtx, repos, userID, group.ID); err != nil {
				return err
			}
		}
		for _, project := range projects {
			if err := attachProject(txCtx, repos, group.ID, project); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "create group")
	}

	group.MemberIDs = memberIDs
	group.ProjectIDs = projectIDs
	srv.log(ctx).Info("Group created", slog.String("groupID", group.ID.String()), slog.Int("members", len(memberIDs)))

	return group, nil
}

// ListGroups shows SuperAdmins every active group and everybody else the active groups they belong to or created.
func (srv *groupService) ListGroups(ctx context.Context, input *usecase.ListInput) (*usecase.PageResult[*usecase.GroupView], error) {
	page := input.Page.Normalize()

	var result *usecase.PageResult[*usecase.GroupView]
	err := srv.txManager.Execute(ctx, func(txCtx context.Context, repos repository.RepositoryFactory) error {
		viewer, err := repos.UserRepo().FindByID(txCtx, input.UserID)
		if err != nil {
			return translate(err, "failed to find user")
		}

		filter := repository.GroupFilter{ActiveOnly: true}
		if viewer.Role != entity.RoleSuperAdmin {
			filter.VisibleTo = &viewer.ID
		}

		groups, total, err := repos.GroupRepo().List(txCtx, filter, page)
		if err != nil {
			return errors.Wrap(err, "failed to list groups")
		}

		views, err := groupViews(txCtx, repos, groups)
		if err != nil {
			return err
		}
		result = usecase.NewPageResult(views, total, page)

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "list groups")
	}

	return result, nil
}

func (srv *groupService) GetGroup(ctx context.Context, id uuid.UUID) (*usecase.GroupView, error) {
	var view *usecase.GroupView
	err := srv.txManager.Execute(ctx, func(txCtx context.Context, repos repository.RepositoryFactory) error {
		group, err := repos.GroupRepo().FindByID(txCtx, id)
		if err != nil {
			return translate(err, "failed to find group")
		}

		views, err := groupViews(txCtx, repos, []*entity.Group{group})
		if err != nil {
			return err
		}
		view = views[0]

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "get group")
	}

	return view, nil
}

// groupViews resolves members and projects of all groups with one lookup each.
func groupViews(ctx context.Context, repos repository.RepositoryFactory, groups []*entity.Group) ([]*usecase.GroupView, error) {
	var memberIDs, projectIDs []uuid.UUID
	for _, g := range groups {
		memberIDs = append(memberIDs, g.MemberIDs...)
		projectIDs = append(projectIDs, g.ProjectIDs...)
	}

	members, err := repos.UserRepo().FindByIDs(ctx, uniqueIDs(memberIDs))
	if err != nil {
		return nil, errors.Wrap(err, "failed to load members")
	}
	projects, err := repos.ProjectRepo().FindByIDs(ctx, uniqueIDs(projectIDs))
	if err != nil {
		return nil, errors.Wrap(err, "failed to load projects")
	}

	names := nameIndex(members)
	projectByID := make(map[uuid.UUID]*entity.Project, len(projects))
	for _, p := range projects {
		projectByID[p.ID] = p
	}

	views := make([]*usecase.GroupView, 0, len(groups))
	for _, g := range groups {
		view := &usecase.GroupView{
			ID:          g.ID,
			Name:        g.Name,
			Description: g.Description,
			CreatedBy:   g.CreatedBy,
			GroupAdmin:  g.GroupAdmin,
			Members:     userRefs(g.MemberIDs, names),
			Projects:    make([]usecase.ProjectRef, 0, len(g.ProjectIDs)),
			IsActive:    g.IsActive,
			Reason:      g.Reason,
		}
		for _, id := range g.ProjectIDs {
			if p, ok := projectByID[id]; ok {
				view.Projects = append(view.Projects, usecase.ProjectRef{ID: p.ID, Name: p.Name, Description: p.Description, Status: p.Status})
			}
		}
		views = append(views, view)
	}

	return views, nil
}

// UpdateGroup diffs members and projects against the stored group before it is overwritten.
func (srv *groupService) UpdateGroup(ctx context.Context, input *usecase.UpdateGroupInput) (*entity.Group, error) {
	var updated *entity.Group
	err := srv.txManager.Execute(ctx, func(txCtx context.Context, repos repository.RepositoryFactory) error {
		groupRepo := repos.GroupRepo()
		group, err := groupRepo.FindByID(txCtx, input.ID)
		if err != nil {
			return translate(err, "failed to find group")
		}
		prevMembers := group.MemberIDs
		prevProjects := group.ProjectIDs

		if input.Name != nil && *input.Name != group.Name {
			if err := ensureGroupNameFree(txCtx, groupRepo, group.ID, *input.Name); err != nil {
				return err
			}
			group.Name = *input.Name
		}
		if input.Description != nil {
			group.Description = *input.Description
		}
		if input.GroupAdmin != nil {
			if _, err := requireUsers(txCtx, repos.UserRepo(), []uuid.UUID{*input.GroupAdmin}); err != nil {
				return err
			}
			group.GroupAdmin = input.GroupAdmin
		}

		if input.MemberIDs != nil {
			next := uniqueIDs(input.MemberIDs)
			if _, err := requireUsers(txCtx, repos.UserRepo(), next); err != nil {
				return err
			}
			added, removed := diffIDs(prevMembers, next)
			for _, userID := range removed {
				if err := leaveGroup(txCtx, repos, userID, group.ID); err != nil {
					return err
				}
			}
			for _, userID := range added {
				if err := joinGroup(txCtx, repos, userID, group.ID); err != nil {
					return err
				}
			}
			group.MemberIDs = next
		}

		if input.ProjectIDs != nil {
			next := uniqueIDs(input.ProjectIDs)
			projects, err := requireProjects(txCtx, repos.ProjectRepo(), next)
			if err != nil {
				return err
			}
			added, removed := diffIDs(prevProjects, next)
			for _, projectID := range removed {
				if err := detachProject(txCtx, repos, group.ID, projectID); err != nil {
					return err
				}
			}
			addedSet := make(map[uuid.UUID]struct{}, len(added))
			for _, id := range added {
				addedSet[id] = struct{}{}
			}
			for _, project := range projects {
				if _, ok := addedSet[project.ID]; !ok {
					continue
				}
				if err := attachProject(txCtx, repos, group.ID, project); err != nil {
					return err
				}
			}
			group.ProjectIDs = next
		}

		if err := groupRepo.Update(txCtx, group); err != nil {
			return translate(err, "failed to update group")
		}
		updated = group

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "update group")
	}

	srv.log(ctx).Info("Group updated", slog.String("groupID", updated.ID.String()))

	return updated, nil
}

// InactivateGroup marks the group inactive and pulls it from every member.
func (srv *groupService) InactivateGroup(ctx context.Context, id uuid.UUID, reason string) error {
	err := srv.txManager.Execute(ctx, func(txCtx context.Context, repos repository.RepositoryFactory) error {
		group, err := repos.GroupRepo().FindByID(txCtx, id)
		if err != nil {
			return translate(err, "failed to find group")
		}

		group.IsActive = false
		group.Reason = reason
		if err := repos.GroupRepo().Update(txCtx, group); err != nil {
			return translate(err, "failed to inactivate group")
		}

		if err := repos.UserRepo().RemoveGroupFromAll(txCtx, id); err != nil {
			return errors.Wrap(err, "failed to pull group from users")
		}
		for _, userID := range group.MemberIDs {
			if err := repos.GroupRepo().RemoveMember(txCtx, id, userID); err != nil {
				return errors.Wrap(err, "failed to clear group members")
			}
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "inactivate group")
	}

	srv.log(ctx).Info("Group inactivated", slog.String("groupID", id.String()))

	return nil
}

func (srv *groupService) DeleteGroup(ctx context.Context, id uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(txCtx context.Context, repos repository.RepositoryFactory) error {
		if _, err := repos.GroupRepo().FindByID(txCtx, id); err != nil {
			return translate(err, "failed to find group")
		}

		if err := repos.UserRepo().RemoveGroupFromAll(txCtx, id); err != nil {
			return errors.Wrap(err, "failed to pull group from users")
		}
		if err := repos.ProjectRepo().ClearGroup(txCtx, id); err != nil {
			return errors.Wrap(err, "failed to detach projects")
		}

		return translate(repos.GroupRepo().Delete(txCtx, id), "failed to delete group")
	})
	if err != nil {
		return errors.Wrap(err, "delete group")
	}

	srv.log(ctx).Info("Group deleted", slog.String("groupID", id.String()))

	return nil
}
