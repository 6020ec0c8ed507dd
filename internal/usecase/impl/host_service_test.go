package impl

import (
	"context"
	"testing"

	"sapphire/internal/domain/entity"
	domainerrors "sapphire/internal/domain/errors"
	"sapphire/internal/domain/repository"
	"sapphire/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newHostTestService(t *testing.T) (*hostService, *repoMocks) {
	repos := newRepoMocks(t)

	return &hostService{txManager: newTxManager(t, repos), logger: newDiscardLogger()}, repos
}

func TestHostService_CreateHost(t *testing.T) {
	srv, repos := newHostTestService(t)
	ctx := context.Background()
	groupID := uuid.New()

	repos.groups.EXPECT().FindByID(ctx, groupID).Return(&entity.Group{ID: groupID}, nil)
	repos.hosts.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Host")).Return(nil)

	host, err := srv.CreateHost(ctx, &usecase.HostInput{Name: ptr("rack-1"), IPAddress: ptr("10.0.0.5"), GroupID: &groupID})

	require.NoError(t, err)
	assert.Equal(t, "rack-1", host.Name)
	assert.Equal(t, "10.0.0.5", host.IPAddress)
	assert.True(t, host.IsActive)
}

func TestHostService_UpdateHost_KeepsUnsetFields(t *testing.T) {
	srv, repos := newHostTestService(t)
	ctx := context.Background()
	host := &entity.Host{ID: uuid.New(), Name: "rack-1", IPAddress: "10.0.0.5", Location: "Lab"}

	repos.hosts.EXPECT().FindByID(ctx, host.ID).Return(host, nil)
	repos.hosts.EXPECT().Update(ctx, host).Return(nil)

	updated, err := srv.UpdateHost(ctx, host.ID, &usecase.HostInput{Location: ptr("Basement")})

	require.NoError(t, err)
	assert.Equal(t, "rack-1", updated.Name)
	assert.Equal(t, "Basement", updated.Location)
}

func TestHostService_ListHosts_UserWithoutGroupsSeesNothing(t *testing.T) {
	srv, repos := newHostTestService(t)
	ctx := context.Background()
	viewer := &entity.User{ID: uuid.New(), Role: entity.RoleUser}

	repos.users.EXPECT().FindByID(ctx, viewer.ID).Return(viewer, nil)
	repos.hosts.EXPECT().List(ctx, repository.HostFilter{ActiveOnly: true, GroupIDs: []uuid.UUID{}}, entity.Page{Limit: 10}).
		Return([]*entity.Host{}, 0, nil)

	page, err := srv.ListHosts(ctx, &usecase.ListInput{UserID: viewer.ID})

	require.NoError(t, err)
	assert.Empty(t, page.Items)
}

func TestHostService_GetHost_NotFound(t *testing.T) {
	srv, repos := newHostTestService(t)
	ctx := context.Background()
	id := uuid.New()

	repos.hosts.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrHostNotFound)

	_, err := srv.GetHost(ctx, id)

	assert.ErrorIs(t, err, domainerrors.ErrHostNotFound)
}

func TestHostService_InactivateHost(t *testing.T) {
	srv, repos := newHostTestService(t)
	ctx := context.Background()
	host := &entity.Host{ID: uuid.New(), IsActive: true}

	repos.hosts.EXPECT().FindByID(ctx, host.ID).Return(host, nil)
	repos.hosts.EXPECT().Update(ctx, host).Return(nil)

	require.NoError(t, srv.InactivateHost(ctx, host.ID, "decommissioned"))
	assert.False(t, host.IsActive)
}

func TestHostService_HostsGeoJSON(t *testing.T) {
	srv, repos := newHostTestService(t)
	ctx := context.Background()
	viewer := &entity.User{ID: uuid.New(), Role: entity.RoleSuperAdmin}
	placed := &entity.Host{ID: uuid.New(), Name: "rack-1", IPAddress: "10.0.0.5", Latitude: ptr(25.03), Longitude: ptr(121.56)}
	unplaced := &entity.Host{ID: uuid.New(), Name: "rack-2"}

	repos.users.EXPECT().FindByID(ctx, viewer.ID).Return(viewer, nil)
	repos.hosts.EXPECT().FindAll(ctx, repository.HostFilter{ActiveOnly: true}).Return([]*entity.Host{placed, unplaced}, nil)

	fc, err := srv.HostsGeoJSON(ctx, viewer.ID)

	require.NoError(t, err)
	require.Len(t, fc.Features, 1)
	assert.Equal(t, orb.Point{121.56, 25.03}, fc.Features[0].Geometry)
	assert.Equal(t, placed.ID.String(), fc.Features[0].ID)
	assert.Equal(t, "rack-1", fc.Features[0].Properties["name"])
}
