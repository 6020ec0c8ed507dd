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

func TestUserRepository(t *testing.T) {
	mt := newMockMT(t)

	mt.Run("create assigns id and timestamps", func(mt *mtest.T) {
		repo := NewUserRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		user := &entity.User{Username: "jdoe", Email: "jdoe@example.com", Role: entity.RoleUser}
		err := repo.Create(context.Background(), user)

		require.NoError(mt, err)
		assert.NotEqual(mt, uuid.Nil, user.ID)
		assert.False(mt, user.CreatedAt.IsZero())

		started := mt.GetStartedEvent()
		require.NotNil(mt, started)
		assert.Equal(mt, "insert", started.CommandName)
	})

	mt.Run("create duplicate", func(mt *mtest.T) {
		repo := NewUserRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "E11000 duplicate key error collection: test.users index: username_1",
		}))

		err := repo.Create(context.Background(), &entity.User{Username: "jdoe"})

		assert.ErrorIs(mt, err, repository.ErrDuplicateUser)
	})

	mt.Run("find by id decodes memberships", func(mt *mtest.T) {
		repo := NewUserRepository(mt.DB)
		userID := uuid.New()
		groupID := uuid.New()
		created := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns(collUsers), mtest.FirstBatch, bson.D{
			{Key: "_id", Value: userID.String()},
			{Key: "username", Value: "jdoe"},
			{Key: "role", Value: "GroupAdmin"},
			{Key: "groupIds", Value: bson.A{groupID.String(), "not-a-uuid"}},
			{Key: "projectIds", Value: bson.A{}},
			{Key: "isActive", Value: true},
			{Key: "createdAt", Value: created},
		}))

		user, err := repo.FindByID(context.Background(), userID)

		require.NoError(mt, err)
		assert.Equal(mt, userID, user.ID)
		assert.Equal(mt, entity.RoleGroupAdmin, user.Role)
		assert.Equal(mt, []uuid.UUID{groupID}, user.GroupIDs)
		assert.Empty(mt, user.ProjectIDs)
		assert.True(mt, user.IsActive)
		assert.True(mt, created.Equal(user.CreatedAt))
	})

	mt.Run("find by username not found", func(mt *mtest.T) {
		repo := NewUserRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns(collUsers), mtest.FirstBatch))

		_, err := repo.FindByUsername(context.Background(), "ghost")

		assert.ErrorIs(mt, err, repository.ErrUserNotFound)
	})

	mt.Run("list returns page and total", func(mt *mtest.T) {
		repo := NewUserRepository(mt.DB)
		mt.AddMockResponses(
			countReply(collUsers, 3),
			mtest.CreateCursorResponse(0, ns(collUsers), mtest.FirstBatch,
				bson.D{{Key: "_id", Value: uuid.NewString()}, {Key: "username", Value: "a"}},
				bson.D{{Key: "_id", Value: uuid.NewString()}, {Key: "username", Value: "b"}},
			),
		)

		users, total, err := repo.List(context.Background(), entity.Page{Skip: 0, Limit: 2})

		require.NoError(mt, err)
		assert.Equal(mt, int64(3), total)
		require.Len(mt, users, 2)
		assert.Equal(mt, "a", users[0].Username)
	})

	mt.Run("update missing user", func(mt *mtest.T) {
		repo := NewUserRepository(mt.DB)
		mt.AddMockResponses(writeAck(0))

		err := repo.Update(context.Background(), &entity.User{ID: uuid.New()})

		assert.ErrorIs(mt, err, repository.ErrUserNotFound)
	})

	mt.Run("delete missing user", func(mt *mtest.T) {
		repo := NewUserRepository(mt.DB)
		mt.AddMockResponses(writeAck(0))

		err := repo.Delete(context.Background(), uuid.New())

		assert.ErrorIs(mt, err, repository.ErrUserNotFound)
	})

	mt.Run("add group uses addToSet", func(mt *mtest.T) {
		repo := NewUserRepository(mt.DB)
		groupID := uuid.New()
		mt.AddMockResponses(writeAck(1))

		err := repo.AddGroup(context.Background(), uuid.New(), groupID)
		require.NoError(mt, err)

		started := mt.GetStartedEvent()
		require.NotNil(mt, started)
		assert.Equal(mt, "update", started.CommandName)
		assert.Contains(mt, started.Command.String(), `"$addToSet"`)
		assert.Contains(mt, started.Command.String(), groupID.String())
	})

	mt.Run("remove group from all is a multi update", func(mt *mtest.T) {
		repo := NewUserRepository(mt.DB)
		mt.AddMockResponses(writeAck(4))

		err := repo.RemoveGroupFromAll(context.Background(), uuid.New())
		require.NoError(mt, err)

		started := mt.GetStartedEvent()
		require.NotNil(mt, started)
		assert.Contains(mt, started.Command.String(), `"$pull"`)
		assert.Contains(mt, started.Command.String(), `"multi": true`)
	})
}
