package impl

import (
	"context"
	"testing"

	"sapphire/internal/domain/entity"
	domainerrors "sapphire/internal/domain/errors"
	"sapphire/internal/domain/repository"
	"sapphire/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newProjectTestService(t *testing.T) (*projectService, *repoMocks) {
	repos := newRepoMocks(t)

	return &projectService{txManager: newTxManager(t, repos), logger: newDiscardLogger()}, repos
}

func TestProjectService_CreateProject(t *testing.T) {
	srv, repos := newProjectTestService(t)
	ctx := context.Background()
	groupID := uuid.New()
	assignee := uuid.New()
	projectID := uuid.New()

	repos.groups.EXPECT().FindByID(ctx, groupID).Return(&entity.Group{ID: groupID}, nil)
	repos.users.EXPECT().FindByIDs(ctx, []uuid.UUID{assignee}).Return([]*entity.User{{ID: assignee}}, nil)
	repos.projects.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Project")).
		RunAndReturn(func(_ context.Context, p *entity.Project) error {
			p.ID = projectID

			return nil
		})
	repos.groups.EXPECT().AddProject(ctx, groupID, projectID).Return(nil)
	repos.users.EXPECT().AddProject(ctx, assignee, projectID).Return(nil)
	repos.projects.EXPECT().AddAssignee(ctx, projectID, assignee).Return(nil)

	project, err := srv.CreateProject(ctx, &usecase.CreateProjectInput{
		ActorID:         uuid.New(),
		Name:            "apollo",
		GroupID:         &groupID,
		AssignedUserIDs: []uuid.UUID{assignee},
	})

	require.NoError(t, err)
	assert.Equal(t, entity.ProjectNotStarted, project.Status)
	assert.Equal(t, []uuid.UUID{assignee}, project.AssignedUserIDs)
	assert.True(t, project.IsActive)
}

func TestProjectService_CreateProject_UnknownGroup(t *testing.T) {
	srv, repos := newProjectTestService(t)
	ctx := context.Background()
	groupID := uuid.New()

	repos.groups.EXPECT().FindByID(ctx, groupID).Return(nil, repository.ErrGroupNotFound)

	_, err := srv.CreateProject(ctx, &usecase.CreateProjectInput{Name: "apollo", GroupID: &groupID})

	assert.ErrorIs(t, err, domainerrors.ErrGroupNotFound)
}

func TestProjectService_CreateProject_InvalidStatus(t *testing.T) {
	srv, _ := newProjectTestService(t)

	_, err := srv.CreateProject(context.Background(), &usecase.CreateProjectInput{Name: "apollo", Status: "Paused"})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestProjectService_ListProjects_ScopesNonAdmins(t *testing.T) {
	srv, repos := newProjectTestService(t)
	ctx := context.Background()
	groupID := uuid.New()
	viewer := &entity.User{ID: uuid.New(), Role: entity.RoleUser, GroupIDs: []uuid.UUID{groupID}}
	project := &entity.Project{ID: uuid.New(), Name: "apollo", GroupID: &groupID, AssignedUserIDs: []uuid.UUID{}}

	repos.users.EXPECT().FindByID(ctx, viewer.ID).Return(viewer, nil)
	repos.projects.EXPECT().List(ctx, repository.ProjectFilter{ActiveOnly: true, VisibleTo: &viewer.ID, GroupIDs: []uuid.UUID{groupID}}, entity.Page{Limit: 10}).
		Return([]*entity.Project{project}, 1, nil)
	repos.groups.EXPECT().FindByIDs(ctx, []uuid.UUID{groupID}).Return([]*entity.Group{{ID: groupID, Name: "ops"}}, nil)
	repos.users.EXPECT().FindByIDs(ctx, []uuid.UUID{}).Return([]*entity.User{}, nil)

	page, err := srv.ListProjects(ctx, &usecase.ListInput{UserID: viewer.ID})

	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, &usecase.GroupRef{ID: groupID, Name: "ops"}, page.Items[0].Group)
}

func TestProjectService_UpdateProject_MovesGroupAndDiffsAssignees(t *testing.T) {
	srv, repos := newProjectTestService(t)
	ctx := context.Background()
	oldGroup, newGroup := uuid.New(), uuid.New()
	stay, leave, join := uuid.New(), uuid.New(), uuid.New()
	project := &entity.Project{ID: uuid.New(), Name: "apollo", GroupID: &oldGroup, AssignedUserIDs: []uuid.UUID{stay, leave}}

	repos.projects.EXPECT().FindByID(ctx, project.ID).Return(project, nil)
	repos.groups.EXPECT().FindByID(ctx, newGroup).Return(&entity.Group{ID: newGroup}, nil)
	repos.groups.EXPECT().RemoveProject(ctx, oldGroup, project.ID).Return(nil)
	repos.groups.EXPECT().AddProject(ctx, newGroup, project.ID).Return(nil)
	repos.projects.EXPECT().SetGroup(ctx, project.ID, &newGroup).Return(nil)
	repos.users.EXPECT().FindByIDs(ctx, []uuid.UUID{stay, join}).Return([]*entity.User{{ID: stay}, {ID: join}}, nil)
	repos.users.EXPECT().RemoveProject(ctx, leave, project.ID).Return(nil)
	repos.projects.EXPECT().RemoveAssignee(ctx, project.ID, leave).Return(nil)
	repos.users.EXPECT().AddProject(ctx, join, project.ID).Return(nil)
	repos.projects.EXPECT().AddAssignee(ctx, project.ID, join).Return(nil)
	repos.projects.EXPECT().Update(ctx, project).Return(nil)

	updated, err := srv.UpdateProject(ctx, &usecase.UpdateProjectInput{
		ID:              project.ID,
		Status:          ptr(entity.ProjectCompleted),
		GroupID:         &newGroup,
		AssignedUserIDs: []uuid.UUID{stay, join},
	})

	require.NoError(t, err)
	assert.Equal(t, entity.ProjectCompleted, updated.Status)
	assert.Equal(t, newGroup, *updated.GroupID)
	assert.Equal(t, []uuid.UUID{stay, join}, updated.AssignedUserIDs)
}

func TestProjectService_UpdateProject_ClearGroup(t *testing.T) {
	srv, repos := newProjectTestService(t)
	ctx := context.Background()
	groupID := uuid.New()
	project := &entity.Project{ID: uuid.New(), GroupID: &groupID}

	repos.projects.EXPECT().FindByID(ctx, project.ID).Return(project, nil)
	repos.groups.EXPECT().RemoveProject(ctx, groupID, project.ID).Return(nil)
	repos.projects.EXPECT().SetGroup(ctx, project.ID, (*uuid.UUID)(nil)).Return(nil)
	repos.projects.EXPECT().Update(ctx, project).Return(nil)

	updated, err := srv.UpdateProject(ctx, &usecase.UpdateProjectInput{ID: project.ID, ClearGroup: true})

	require.NoError(t, err)
	assert.Nil(t, updated.GroupID)
}

func TestProjectService_DeleteProject(t *testing.T) {
	srv, repos := newProjectTestService(t)
	ctx := context.Background()
	id := uuid.New()

	repos.projects.EXPECT().FindByID(ctx, id).Return(&entity.Project{ID: id}, nil)
	repos.users.EXPECT().RemoveProjectFromAll(ctx, id).Return(nil)
	repos.groups.EXPECT().RemoveProjectFromAll(ctx, id).Return(nil)
	repos.projects.EXPECT().Delete(ctx, id).Return(nil)

	require.NoError(t, srv.DeleteProject(ctx, id))
}

func TestProjectService_GetProject_NotFound(t *testing.T) {
	srv, repos := newProjectTestService(t)
	ctx := context.Background()
	id := uuid.New()

	repos.projects.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrProjectNotFound)

	_, err := srv.GetProject(ctx, id)

	assert.ErrorIs(t, err, domainerrors.ErrProjectNotFound)
}
