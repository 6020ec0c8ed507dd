package impl

import (
	"context"

	"sapphire/internal/domain/entity"
	domainerrors "sapphire/internal/domain/errors"
	"sapphire/internal/domain/repository"
	"sapphire/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// repoErrors maps repository sentinels to the errors shown to API clients.
var repoErrors = map[error]*domainerrors.BaseError{
	repository.ErrUserNotFound:         domainerrors.ErrUserNotFound,
	repository.ErrGroupNotFound:        domainerrors.ErrGroupNotFound,
	repository.ErrProjectNotFound:      domainerrors.ErrProjectNotFound,
	repository.ErrHostNotFound:         domainerrors.ErrHostNotFound,
	repository.ErrDeviceNotFound:       domainerrors.ErrDeviceNotFound,
	repository.ErrNotificationNotFound: domainerrors.ErrNotificationNotFound,
	repository.ErrTokenNotFound:        domainerrors.ErrTokenNotFound,
	repository.ErrOTPNotFound:          domainerrors.ErrOTPNotFound,
	repository.ErrDuplicateGroup:       domainerrors.ErrGroupAlreadyExists,
	repository.ErrDuplicateDevice:      domainerrors.ErrDeviceAlreadyExists,
	repository.ErrDuplicateUser:        domainerrors.ErrConflict.WithDetails("username or email already exists"),
}

// translate turns a repository sentinel into its domain error and wraps everything else.
func translate(err error, message string) error {
	for sentinel, appErr := range repoErrors {
		if errors.Is(err, sentinel) {
			return errors.WithStack(appErr)
		}
	}

	return errors.Wrap(err, message)
}

// uniqueIDs drops duplicates and keeps the first occurrence order. The result is never nil.
func uniqueIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}

	return out
}

// diffIDs returns the ids only present in next and the ids only present in prev.
func diffIDs(prev, next []uuid.UUID) (added, removed []uuid.UUID) {
	prevSet := make(map[uuid.UUID]struct{}, len(prev))
	for _, id := range prev {
		prevSet[id] = struct{}{}
	}
	nextSet := make(map[uuid.UUID]struct{}, len(next))
	for _, id := range next {
		nextSet[id] = struct{}{}
		if _, ok := prevSet[id]; !ok {
			added = append(added, id)
		}
	}
	for _, id := range prev {
		if _, ok := nextSet[id]; !ok {
			removed = append(removed, id)
		}
	}

	return added, removed
}

func requireUsers(ctx context.Context, repo repository.UserRepository, ids []uuid.UUID) ([]*entity.User, error) {
	if len(ids) == 0 {
		return []*entity.User{}, nil
	}

	users, err := repo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find users")
	}
	if len(users) != len(ids) {
		return nil, errors.WithStack(domainerrors.ErrUsersNotFound)
	}

	return users, nil
}

func requireGroups(ctx context.Context, repo repository.GroupRepository, ids []uuid.UUID) ([]*entity.Group, error) {
	if len(ids) == 0 {
		return []*entity.Group{}, nil
	}

	groups, err := repo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find groups")
	}
	if len(groups) != len(ids) {
		return nil, errors.WithStack(domainerrors.ErrGroupNotFound.WithDetails("some groups not found"))
	}

	return groups, nil
}

func requireProjects(ctx context.Context, repo repository.ProjectRepository, ids []uuid.UUID) ([]*entity.Project, error) {
	if len(ids) == 0 {
		return []*entity.Project{}, nil
	}

	projects, err := repo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find projects")
	}
	if len(projects) != len(ids) {
		return nil, errors.WithStack(domainerrors.ErrProjectsNotFound)
	}

	return projects, nil
}

// joinGroup writes both sides of a user-group membership.
func joinGroup(ctx context.Context, repos repository.RepositoryFactory, userID, groupID uuid.UUID) error {
	if err := repos.UserRepo().AddGroup(ctx, userID, groupID); err != nil {
		return errors.Wrap(err, "failed to add group to user")
	}
	if err := repos.GroupRepo().AddMember(ctx, groupID, userID); err != nil {
		return errors.Wrap(err, "failed to add member to group")
	}

	return nil
}

func leaveGroup(ctx context.Context, repos repository.RepositoryFactory, userID, groupID uuid.UUID) error {
	if err := repos.UserRepo().RemoveGroup(ctx, userID, groupID); err != nil {
		return errors.Wrap(err, "failed to remove group from user")
	}
	if err := repos.GroupRepo().RemoveMember(ctx, groupID, userID); err != nil {
		return errors.Wrap(err, "failed to remove member from group")
	}

	return nil
}

// assignProject writes both sides of a user-project assignment.
func assignProject(ctx context.Context, repos repository.RepositoryFactory, userID, projectID uuid.UUID) error {
	if err := repos.UserRepo().AddProject(ctx, userID, projectID); err != nil {
		return errors.Wrap(err, "failed to add project to user")
	}
	if err := repos.ProjectRepo().AddAssignee(ctx, projectID, userID); err != nil {
		return errors.Wrap(err, "failed to add assignee to project")
	}

	return nil
}

func unassignProject(ctx context.Context, repos repository.RepositoryFactory, userID, projectID uuid.UUID) error {
	if err := repos.UserRepo().RemoveProject(ctx, userID, projectID); err != nil {
		return errors.Wrap(err, "failed to remove project from user")
	}
	if err := repos.ProjectRepo().RemoveAssignee(ctx, projectID, userID); err != nil {
		return errors.Wrap(err, "failed to remove assignee from project")
	}

	return nil
}

// attachProject moves the project into groupID, detaching it from its previous group first.
func attachProject(ctx context.Context, repos repository.RepositoryFactory, groupID uuid.UUID, project *entity.Project) error {
	if project.GroupID != nil && *project.GroupID != groupID {
		if err := repos.GroupRepo().RemoveProject(ctx, *project.GroupID, project.ID); err != nil {
			return errors.Wrap(err, "failed to remove project from previous group")
		}
	}
	if err := repos.GroupRepo().AddProject(ctx, groupID, project.ID); err != nil {
		return errors.Wrap(err, "failed to add project to group")
	}
	if err := repos.ProjectRepo().SetGroup(ctx, project.ID, &groupID); err != nil {
		return errors.Wrap(err, "failed to set project group")
	}
	project.GroupID = &groupID

	return nil
}

func detachProject(ctx context.Context, repos repository.RepositoryFactory, groupID, projectID uuid.UUID) error {
	if err := repos.GroupRepo().RemoveProject(ctx, groupID, projectID); err != nil {
		return errors.Wrap(err, "failed to remove project from group")
	}
	if err := repos.ProjectRepo().SetGroup(ctx, projectID, nil); err != nil {
		return errors.Wrap(err, "failed to clear project group")
	}

	return nil
}

// syncUserGroups moves the user from its current groups to next on both sides.
func syncUserGroups(ctx context.Context, repos repository.RepositoryFactory, userID uuid.UUID, prev, next []uuid.UUID) error {
	added, removed := diffIDs(prev, next)
	for _, groupID := range removed {
		if err := leaveGroup(ctx, repos, userID, groupID); err != nil {
			return err
		}
	}
	for _, groupID := range added {
		if err := joinGroup(ctx, repos, userID, groupID); err != nil {
			return err
		}
	}

	return nil
}

// syncUserProjects moves the user from its current projects to next on both sides.
func syncUserProjects(ctx context.Context, repos repository.RepositoryFactory, userID uuid.UUID, prev, next []uuid.UUID) error {
	added, removed := diffIDs(prev, next)
	for _, projectID := range removed {
		if err := unassignProject(ctx, repos, userID, projectID); err != nil {
			return err
		}
	}
	for _, projectID := range added {
		if err := assignProject(ctx, repos, userID, projectID); err != nil {
			return err
		}
	}

	return nil
}

// nameIndex resolves user ids to display names.
func nameIndex(users []*entity.User) map[uuid.UUID]string {
	names := make(map[uuid.UUID]string, len(users))
	for _, u := range users {
		names[u.ID] = usecase.DisplayName(u)
	}

	return names
}

func userRefs(ids []uuid.UUID, names map[uuid.UUID]string) []usecase.UserRef {
	refs := make([]usecase.UserRef, 0, len(ids))
	for _, id := range ids {
		if name, ok := names[id]; ok {
			refs = append(refs, usecase.UserRef{ID: id, Name: name})
		}
	}

	return refs
}
