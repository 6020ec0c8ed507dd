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

func newGroupTestService(t *testing.T) (*groupService, *repoMocks) {
	repos := newRepoMocks(t)

	return &groupService{txManager: newTxManager(t, repos), logger: newDiscardLogger()}, repos
}

func TestGroupService_CreateGroup_WritesBothSides(t *testing.T) {
	srv, repos := newGroupTestService(t)
	ctx := context.Background()
	actor := uuid.New()
	member := uuid.New()
	oldGroup := uuid.New()
	project := &entity.Project{ID: uuid.New(), GroupID: &oldGroup}
	groupID := uuid.New()

	repos.groups.EXPECT().FindByName(ctx, "ops").Return(nil, repository.ErrGroupNotFound)
	repos.users.EXPECT().FindByIDs(ctx, []uuid.UUID{member}).Return([]*entity.User{{ID: member}}, nil)
	repos.projects.EXPECT().FindByIDs(ctx, []uuid.UUID{project.ID}).Return([]*entity.Project{project}, nil)
	repos.groups.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Group")).
		RunAndReturn(func(_ context.Context, g *entity.Group) error {
			g.ID = groupID

			return nil
		})
	repos.users.EXPECT().AddGroup(ctx, member, groupID).Return(nil)
	repos.groups.EXPECT().AddMember(ctx, groupID, member).Return(nil)
	repos.groups.EXPECT().RemoveProject(ctx, oldGroup, project.ID).Return(nil)
	repos.groups.EXPECT().AddProject(ctx, groupID, project.ID).Return(nil)
	repos.projects.EXPECT().SetGroup(ctx, project.ID, &groupID).Return(nil)

	group, err := srv.CreateGroup(ctx, &usecase.CreateGroupInput{
		ActorID:    actor,
		Name:       "ops",
		MemberIDs:  []uuid.UUID{member},
		ProjectIDs: []uuid.UUID{project.ID},
	})

	require.NoError(t, err)
	assert.Equal(t, groupID, group.ID)
	assert.Equal(t, actor, group.CreatedBy, "createdBy defaults to the caller")
	assert.Equal(t, []uuid.UUID{member}, group.MemberIDs)
	assert.True(t, group.IsActive)
}

func TestGroupService_CreateGroup_Rejections(t *testing.T) {
	ctx := context.Background()

	t.Run("duplicate name", func(t *testing.T) {
		srv, repos := newGroupTestService(t)
		repos.groups.EXPECT().FindByName(ctx, "ops").Return(&entity.Group{ID: uuid.New()}, nil)

		_, err := srv.CreateGroup(ctx, &usecase.CreateGroupInput{Name: "ops"})

		assert.ErrorIs(t, err, domainerrors.ErrGroupAlreadyExists)
	})

	t.Run("unknown member", func(t *testing.T) {
		srv, repos := newGroupTestService(t)
		member := uuid.New()
		repos.groups.EXPECT().FindByName(ctx, "ops").Return(nil, repository.ErrGroupNotFound)
		repos.users.EXPECT().FindByIDs(ctx, []uuid.UUID{member}).Return([]*entity.User{}, nil)

		_, err := srv.CreateGroup(ctx, &usecase.CreateGroupInput{Name: "ops", MemberIDs: []uuid.UUID{member}})

		assert.ErrorIs(t, err, domainerrors.ErrUsersNotFound)
	})
}

func TestGroupService_UpdateGroup_DiffsMembersBeforeOverwrite(t *testing.T) {
	srv, repos := newGroupTestService(t)
	ctx := context.Background()
	stay, leave, join := uuid.New(), uuid.New(), uuid.New()
	group := &entity.Group{ID: uuid.New(), Name: "ops", MemberIDs: []uuid.UUID{stay, leave}, ProjectIDs: []uuid.UUID{}}

	repos.groups.EXPECT().FindByID(ctx, group.ID).Return(group, nil)
	repos.users.EXPECT().FindByIDs(ctx, []uuid.UUID{stay, join}).Return([]*entity.User{{ID: stay}, {ID: join}}, nil)
	repos.users.EXPECT().RemoveGroup(ctx, leave, group.ID).Return(nil).Once()
	repos.groups.EXPECT().RemoveMember(ctx, group.ID, leave).Return(nil).Once()
	repos.users.EXPECT().AddGroup(ctx, join, group.ID).Return(nil).Once()
	repos.groups.EXPECT().AddMember(ctx, group.ID, join).Return(nil).Once()
	repos.groups.EXPECT().Update(ctx, group).Return(nil)

	updated, err := srv.UpdateGroup(ctx, &usecase.UpdateGroupInput{ID: group.ID, MemberIDs: []uuid.UUID{stay, join}})

	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{stay, join}, updated.MemberIDs)
	repos.users.AssertNotCalled(t, "AddGroup", ctx, stay, group.ID)
	repos.users.AssertNotCalled(t, "RemoveGroup", ctx, stay, group.ID)
}

func TestGroupService_UpdateGroup_MovesProjects(t *testing.T) {
	srv, repos := newGroupTestService(t)
	ctx := context.Background()
	kept, dropped := uuid.New(), uuid.New()
	group := &entity.Group{ID: uuid.New(), Name: "ops", ProjectIDs: []uuid.UUID{kept, dropped}}
	incoming := &entity.Project{ID: uuid.New()}

	repos.groups.EXPECT().FindByID(ctx, group.ID).Return(group, nil)
	repos.projects.EXPECT().FindByIDs(ctx, []uuid.UUID{kept, incoming.ID}).
		Return([]*entity.Project{{ID: kept, GroupID: &group.ID}, incoming}, nil)
	repos.groups.EXPECT().RemoveProject(ctx, group.ID, dropped).Return(nil)
	repos.projects.EXPECT().SetGroup(ctx, dropped, (*uuid.UUID)(nil)).Return(nil)
	repos.groups.EXPECT().AddProject(ctx, group.ID, incoming.ID).Return(nil)
	repos.projects.EXPECT().SetGroup(ctx, incoming.ID, &group.ID).Return(nil)
	repos.groups.EXPECT().Update(ctx, group).Return(nil)

	_, err := srv.UpdateGroup(ctx, &usecase.UpdateGroupInput{ID: group.ID, ProjectIDs: []uuid.UUID{kept, incoming.ID}})

	require.NoError(t, err)
}

func TestGroupService_UpdateGroup_RenameToTakenName(t *testing.T) {
	srv, repos := newGroupTestService(t)
	ctx := context.Background()
	group := &entity.Group{ID: uuid.New(), Name: "ops"}

	repos.groups.EXPECT().FindByID(ctx, group.ID).Return(group, nil)
	repos.groups.EXPECT().FindByName(ctx, "dev").Return(&entity.Group{ID: uuid.New(), Name: "dev"}, nil)

	_, err := srv.UpdateGroup(ctx, &usecase.UpdateGroupInput{ID: group.ID, Name: ptr("dev")})

	assert.ErrorIs(t, err, domainerrors.ErrGroupAlreadyExists)
}

func TestGroupService_ListGroups_Visibility(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name        string
		role        entity.Role
		wantVisible bool
	}{
		{name: "superadmin sees all active groups", role: entity.RoleSuperAdmin},
		{name: "user sees own groups", role: entity.RoleUser, wantVisible: true},
		{name: "group admin sees own groups", role: entity.RoleGroupAdmin, wantVisible: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, repos := newGroupTestService(t)
			viewer := &entity.User{ID: uuid.New(), Role: tt.role}
			member := &entity.User{ID: uuid.New(), Username: "lee"}
			group := &entity.Group{ID: uuid.New(), Name: "ops", MemberIDs: []uuid.UUID{member.ID}, ProjectIDs: []uuid.UUID{}, IsActive: true}

			want := repository.GroupFilter{ActiveOnly: true}
			if tt.wantVisible {
				want.VisibleTo = &viewer.ID
			}

			repos.users.EXPECT().FindByID(ctx, viewer.ID).Return(viewer, nil)
			repos.groups.EXPECT().List(ctx, want, entity.Page{Skip: 0, Limit: 10}).Return([]*entity.Group{group}, 1, nil)
			repos.users.EXPECT().FindByIDs(ctx, []uuid.UUID{member.ID}).Return([]*entity.User{member}, nil)
			repos.projects.EXPECT().FindByIDs(ctx, []uuid.UUID{}).Return([]*entity.Project{}, nil)

			page, err := srv.ListGroups(ctx, &usecase.ListInput{UserID: viewer.ID})

			require.NoError(t, err)
			assert.Equal(t, int64(1), page.Total)
			assert.Equal(t, 10, page.Limit)
			require.Len(t, page.Items, 1)
			assert.Equal(t, []usecase.UserRef{{ID: member.ID, Name: "lee"}}, page.Items[0].Members)
		})
	}
}

func TestGroupService_InactivateGroup_PullsFromUsers(t *testing.T) {
	srv, repos := newGroupTestService(t)
	ctx := context.Background()
	member := uuid.New()
	group := &entity.Group{ID: uuid.New(), IsActive: true, MemberIDs: []uuid.UUID{member}}

	repos.groups.EXPECT().FindByID(ctx, group.ID).Return(group, nil)
	repos.groups.EXPECT().Update(ctx, group).Return(nil)
	repos.users.EXPECT().RemoveGroupFromAll(ctx, group.ID).Return(nil)
	repos.groups.EXPECT().RemoveMember(ctx, group.ID, member).Return(nil)

	require.NoError(t, srv.InactivateGroup(ctx, group.ID, "merged"))
	assert.False(t, group.IsActive)
	assert.Equal(t, "merged", group.Reason)
}

func TestGroupService_DeleteGroup(t *testing.T) {
	ctx := context.Background()

	t.Run("clears references", func(t *testing.T) {
		srv, repos := newGroupTestService(t)
		id := uuid.New()
		repos.groups.EXPECT().FindByID(ctx, id).Return(&entity.Group{ID: id}, nil)
		repos.users.EXPECT().RemoveGroupFromAll(ctx, id).Return(nil)
		repos.projects.EXPECT().ClearGroup(ctx, id).Return(nil)
		repos.groups.EXPECT().Delete(ctx, id).Return(nil)

		require.NoError(t, srv.DeleteGroup(ctx, id))
	})

	t.Run("missing", func(t *testing.T) {
		srv, repos := newGroupTestService(t)
		id := uuid.New()
		repos.groups.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrGroupNotFound)

		assert.ErrorIs(t, srv.DeleteGroup(ctx, id), domainerrors.ErrGroupNotFound)
	})
}
