package impl

import (
	"context"
	"testing"

	"sapphire/internal/domain/entity"
	domainerrors "sapphire/internal/domain/errors"
	"sapphire/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationService_ListNotifications(t *testing.T) {
	repos := newRepoMocks(t)
	srv := NewNotificationService(newTxManager(t, repos), newDiscardLogger())
	ctx := context.Background()
	userID := uuid.New()
	items := []*entity.Notification{{ID: uuid.New(), UserID: userID, Message: "hi"}}

	repos.notifications.EXPECT().ListByUser(ctx, userID, entity.Page{Skip: 20, Limit: 100}).Return(items, 21, nil)

	page, err := srv.ListNotifications(ctx, userID, entity.Page{Skip: 20, Limit: 500})

	require.NoError(t, err)
	assert.Equal(t, int64(21), page.Total)
	assert.Equal(t, 20, page.Skip)
	assert.Equal(t, 100, page.Limit)
	assert.Equal(t, items, page.Items)
}

func TestNotificationService_MarkRead(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		repos := newRepoMocks(t)
		srv := NewNotificationService(newTxManager(t, repos), newDiscardLogger())
		id := uuid.New()
		repos.notifications.EXPECT().MarkRead(ctx, id).Return(nil)

		require.NoError(t, srv.MarkRead(ctx, id))
	})

	t.Run("missing", func(t *testing.T) {
		repos := newRepoMocks(t)
		srv := NewNotificationService(newTxManager(t, repos), newDiscardLogger())
		id := uuid.New()
		repos.notifications.EXPECT().MarkRead(ctx, id).Return(repository.ErrNotificationNotFound)

		assert.ErrorIs(t, srv.MarkRead(ctx, id), domainerrors.ErrNotificationNotFound)
	})
}
