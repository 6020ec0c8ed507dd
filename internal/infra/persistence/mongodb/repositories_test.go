package mongodb

import (
	"context"
	"testing"
	"time"

	"sapphire/internal/domain/entity"
	"sapphire/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestGroupRepository(t *testing.T) {
	mt := newMockMT(t)

	mt.Run("create duplicate name", func(mt *mtest.T) {
		repo := NewGroupRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{Code: 11000, Message: "E11000 name_1"}))

		err := repo.Create(context.Background(), &entity.Group{Name: "ops"})

		assert.ErrorIs(mt, err, repository.ErrDuplicateGroup)
	})

	mt.Run("list visible to user", func(mt *mtest.T) {
		repo := NewGroupRepository(mt.DB)
		userID := uuid.New()
		mt.AddMockResponses(
			countReply(collGroups, 1),
			mtest.CreateCursorResponse(0, ns(collGroups), mtest.FirstBatch, bson.D{
				{Key: "_id", Value: uuid.NewString()},
				{Key: "name", Value: "ops"},
				{Key: "members", Value: bson.A{userID.String()}},
			}),
		)

		groups, total, err := repo.List(context.Background(), repository.GroupFilter{VisibleTo: &userID}, entity.Page{})

		require.NoError(mt, err)
		assert.Equal(mt, int64(1), total)
		require.Len(mt, groups, 1)
		assert.True(mt, groups[0].HasMember(userID))
		assert.NotNil(mt, groups[0].ProjectIDs)
	})

	mt.Run("find by name not found", func(mt *mtest.T) {
		repo := NewGroupRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns(collGroups), mtest.FirstBatch))

		_, err := repo.FindByName(context.Background(), "none")

		assert.ErrorIs(mt, err, repository.ErrGroupNotFound)
	})
}

func TestProjectRepository(t *testing.T) {
	mt := newMockMT(t)

	mt.Run("list with empty group set matches nothing", func(mt *mtest.T) {
		repo := NewProjectRepository(mt.DB)
		mt.AddMockResponses(
			countReply(collProjects, 0),
			mtest.CreateCursorResponse(0, ns(collProjects), mtest.FirstBatch),
		)

		projects, total, err := repo.List(context.Background(), repository.ProjectFilter{GroupIDs: []uuid.UUID{}}, entity.Page{})

		require.NoError(mt, err)
		assert.Zero(mt, total)
		assert.Empty(mt, projects)
	})

	mt.Run("clear group sets null on every project", func(mt *mtest.T) {
		repo := NewProjectRepository(mt.DB)
		mt.AddMockResponses(writeAck(2))

		err := repo.ClearGroup(context.Background(), uuid.New())
		require.NoError(mt, err)

		started := mt.GetStartedEvent()
		require.NotNil(mt, started)
		assert.Contains(mt, started.Command.String(), `"groupId": null`)
	})

	mt.Run("find by id decodes group", func(mt *mtest.T) {
		repo := NewProjectRepository(mt.DB)
		projectID := uuid.New()
		groupID := uuid.New()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns(collProjects), mtest.FirstBatch, bson.D{
			{Key: "_id", Value: projectID.String()},
			{Key: "name", Value: "apollo"},
			{Key: "status", Value: "In Progress"},
			{Key: "groupId", Value: groupID.String()},
		}))

		project, err := repo.FindByID(context.Background(), projectID)

		require.NoError(mt, err)
		assert.Equal(mt, entity.ProjectInProgress, project.Status)
		require.NotNil(mt, project.GroupID)
		assert.Equal(mt, groupID, *project.GroupID)
	})
}

func TestDeviceRepository(t *testing.T) {
	mt := newMockMT(t)

	mt.Run("find by udid", func(mt *mtest.T) {
		repo := NewDeviceRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns(collDevices), mtest.FirstBatch, bson.D{
			{Key: "_id", Value: uuid.NewString()},
			{Key: "udid", Value: "R58M123"},
			{Key: "status", Value: "Available"},
			{Key: "security_id", Value: 12345},
			{Key: "registered_to", Value: nil},
		}))

		device, err := repo.FindByUDID(context.Background(), "R58M123")

		require.NoError(mt, err)
		assert.Equal(mt, entity.DeviceAvailable, device.Status)
		require.NotNil(mt, device.SecurityID)
		assert.Equal(mt, 12345, *device.SecurityID)
		assert.Nil(mt, device.RegisteredTo)
	})

	mt.Run("update replaces document", func(mt *mtest.T) {
		repo := NewDeviceRepository(mt.DB)
		mt.AddMockResponses(writeAck(1))

		device := &entity.Device{ID: uuid.New(), UDID: "R58M123", Status: entity.DeviceAvailable}
		require.NoError(mt, repo.Update(context.Background(), device))

		started := mt.GetStartedEvent()
		require.NotNil(mt, started)
		assert.Contains(mt, started.Command.String(), `"registered_to": null`)
	})
}

func TestNotificationRepository_MarkRead_NotFound(t *testing.T) {
	mt := newMockMT(t)

	mt.Run("missing", func(mt *mtest.T) {
		repo := NewNotificationRepository(mt.DB)
		mt.AddMockResponses(writeAck(0))

		err := repo.MarkRead(context.Background(), uuid.New())

		assert.ErrorIs(mt, err, repository.ErrNotificationNotFound)
	})
}

func TestTokenAndOTPRepositories(t *testing.T) {
	mt := newMockMT(t)

	mt.Run("latest token", func(mt *mtest.T) {
		repo := NewTokenRepository(mt.DB)
		userID := uuid.New()
		expires := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns(collTokens), mtest.FirstBatch, bson.D{
			{Key: "_id", Value: uuid.NewString()},
			{Key: "user_id", Value: userID.String()},
			{Key: "token", Value: "jwt"},
			{Key: "expires_at", Value: expires},
		}))

		token, err := repo.FindLatestByUser(context.Background(), userID)

		require.NoError(mt, err)
		assert.Equal(mt, "jwt", token.Token)
		assert.Equal(mt, userID, token.UserID)
		assert.True(mt, expires.Equal(token.ExpiresAt))
	})

	mt.Run("delete expired tokens reports count", func(mt *mtest.T) {
		repo := NewTokenRepository(mt.DB)
		mt.AddMockResponses(writeAck(5))

		n, err := repo.DeleteExpired(context.Background(), time.Now())

		require.NoError(mt, err)
		assert.Equal(mt, int64(5), n)
	})

	mt.Run("otp upsert", func(mt *mtest.T) {
		repo := NewOTPRepository(mt.DB)
		mt.AddMockResponses(writeAck(1))

		otp := &entity.UserOTP{UserID: uuid.New(), OTP: "123456", ExpiresAt: time.Now().Add(time.Minute)}
		require.NoError(mt, repo.Upsert(context.Background(), otp))
		assert.NotEqual(mt, uuid.Nil, otp.ID)

		started := mt.GetStartedEvent()
		require.NotNil(mt, started)
		assert.Contains(mt, started.Command.String(), `"upsert": true`)
		assert.Contains(mt, started.Command.String(), `"$setOnInsert"`)
	})

	mt.Run("otp not found", func(mt *mtest.T) {
		repo := NewOTPRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns(collOTPs), mtest.FirstBatch))

		_, err := repo.FindByUser(context.Background(), uuid.New())

		assert.ErrorIs(mt, err, repository.ErrOTPNotFound)
	})
}
