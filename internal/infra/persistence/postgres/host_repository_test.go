package postgres

import (
	"context"
	"testing"

	"sapphire/internal/domain/entity"
	"sapphire/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHostRepository_List_EmptyGroupSetMatchesNothing(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewHostRepository(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "hosts" WHERE is_active = \$1 AND 1 = 0`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`SELECT \* FROM "hosts" WHERE is_active = \$1 AND 1 = 0`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	hosts, total, err := repo.List(context.Background(), repository.HostFilter{ActiveOnly: true, GroupIDs: []uuid.UUID{}}, entity.Page{})

	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, hosts)
}

func TestNotificationRepository_MarkRead_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewNotificationRepository(db)

	mock.ExpectExec(`UPDATE "notifications" SET "is_read"=\$1 WHERE id = \$2`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.MarkRead(context.Background(), uuid.New())

	assert.ErrorIs(t, err, repository.ErrNotificationNotFound)
}

func TestDeviceRepository_FindByUDID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDeviceRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "devices" WHERE udid = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	device, err := repo.FindByUDID(context.Background(), "UDID-1")

	assert.Nil(t, device)
	assert.ErrorIs(t, err, repository.ErrDeviceNotFound)
}
