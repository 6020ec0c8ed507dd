package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"sapphire/internal/domain/entity"
	domainerrors "sapphire/internal/domain/errors"
	mockusecase "sapphire/internal/mocks/usecase"
	"sapphire/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newGroupTestEcho(t *testing.T, subject uuid.UUID) (*echo.Echo, *mockusecase.MockGroupUsecase) {
	t.Helper()
	groups := mockusecase.NewMockGroupUsecase(t)
	h := NewGroupHandler(GroupHandlerParams{GroupUC: groups, Logger: newDiscardLogger()})

	e := newTestEcho()
	g := e.Group("", asPrincipal(&usecase.Principal{UserID: subject, Role: entity.RoleUser}))
	g.POST("/groups", h.CreateGroup)
	g.GET("/groups", h.ListGroups)
	g.GET("/groups/:id", h.GetGroup)
	g.PUT("/groups", h.UpdateGroup)
	g.PUT("/groups/:id", h.UpdateGroup)
	g.PATCH("/group/:id/inactivate", h.InactivateGroup)

	return e, groups
}

func TestGroupHandler_CreateGroup(t *testing.T) {
	subject := uuid.New()
	member := uuid.New()
	e, groups := newGroupTestEcho(t, subject)
	groupID := uuid.New()
	groups.EXPECT().CreateGroup(mock.Anything, mock.MatchedBy(func(in *usecase.CreateGroupInput) bool {
		return in.ActorID == subject && in.Name == "ops" && len(in.MemberIDs) == 1 && in.MemberIDs[0] == member
	})).Return(&entity.Group{ID: groupID, Name: "ops"}, nil)

	rec := doRequest(e, http.MethodPost, "/groups", `{"name":"ops","members":["`+member.String()+`"]}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, "Group created successfully", env.Message)

	var data map[string]string
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, groupID.String(), data["groupId"])
}

func TestGroupHandler_CreateGroupDuplicate(t *testing.T) {
	e, groups := newGroupTestEcho(t, uuid.New())
	groups.EXPECT().CreateGroup(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrGroupAlreadyExists)

	rec := doRequest(e, http.MethodPost, "/groups", `{"name":"ops"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Group already exists", decodeEnvelope(t, rec).Message)
}

func TestGroupHandler_ListGroupsDefaultsToSubject(t *testing.T) {
	subject := uuid.New()
	e, groups := newGroupTestEcho(t, subject)
	groups.EXPECT().ListGroups(mock.Anything, &usecase.ListInput{
		UserID: subject,
		Page:   entity.Page{Skip: 5, Limit: 20}.Normalize(),
	}).Return(usecase.NewPageResult[*usecase.GroupView](nil, 0, entity.Page{Skip: 5, Limit: 20}), nil)

	rec := doRequest(e, http.MethodGet, "/groups?skip=5&limit=20", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var page usecase.PageResult[*usecase.GroupView]
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &page))
	assert.Equal(t, 5, page.Skip)
	assert.Equal(t, 20, page.Limit)
	assert.Empty(t, page.Items)
}

func TestGroupHandler_ListGroupsRejectsBadWindow(t *testing.T) {
	e, _ := newGroupTestEcho(t, uuid.New())

	for _, target := range []string{"/groups?limit=101", "/groups?skip=-1", "/groups?user_id=nope"} {
		rec := doRequest(e, http.MethodGet, target, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code, target)
	}
}

func TestGroupHandler_GetGroupInvalidID(t *testing.T) {
	e, _ := newGroupTestEcho(t, uuid.New())

	rec := doRequest(e, http.MethodGet, "/groups/not-a-uuid", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_ID", errorCode(t, rec))
}

func TestGroupHandler_GetGroupNotFound(t *testing.T) {
	e, groups := newGroupTestEcho(t, uuid.New())
	id := uuid.New()
	groups.EXPECT().GetGroup(mock.Anything, id).Return(nil, domainerrors.ErrGroupNotFound)

	rec := doRequest(e, http.MethodGet, "/groups/"+id.String(), "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGroupHandler_UpdateGroup(t *testing.T) {
	e, groups := newGroupTestEcho(t, uuid.New())
	id := uuid.New()
	groups.EXPECT().UpdateGroup(mock.Anything, mock.MatchedBy(func(in *usecase.UpdateGroupInput) bool {
		return in.ID == id && in.Name != nil && *in.Name == "ops" && in.MemberIDs == nil
	})).Return(&entity.Group{ID: id, Name: "ops"}, nil).Twice()

	rec := doRequest(e, http.MethodPut, "/groups", `{"id":"`+id.String()+`","name":"ops"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(e, http.MethodPut, "/groups/"+id.String(), `{"name":"ops"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGroupHandler_UpdateGroupRequiresID(t *testing.T) {
	e, _ := newGroupTestEcho(t, uuid.New())

	rec := doRequest(e, http.MethodPut, "/groups", `{"name":"ops"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_ID", errorCode(t, rec))
}

func TestGroupHandler_InactivateGroup(t *testing.T) {
	e, groups := newGroupTestEcho(t, uuid.New())
	id := uuid.New()
	groups.EXPECT().InactivateGroup(mock.Anything, id, "merged").Return(nil)

	rec := doRequest(e, http.MethodPatch, "/group/"+id.String()+"/inactivate", `{"reason":"merged"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Group inactivated successfully", decodeEnvelope(t, rec).Message)
}
