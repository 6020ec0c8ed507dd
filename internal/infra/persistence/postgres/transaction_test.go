package postgres

import (
	"context"
	"errors"
	"testing"

	"sapphire/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionManager_CommitsOnSuccess(t *testing.T) {
	db, mock := newMockDB(t)
	tm := NewTransactionManager(db)
	userID := uuid.New()
	groupID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "user_groups"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO "user_groups"`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := tm.Execute(context.Background(), func(txCtx context.Context, repos repository.RepositoryFactory) error {
		if err := repos.UserRepo().AddGroup(txCtx, userID, groupID); err != nil {
			return err
		}

		return repos.GroupRepo().AddMember(txCtx, groupID, userID)
	})

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionManager_RollsBackOnError(t *testing.T) {
	db, mock := newMockDB(t)
	tm := NewTransactionManager(db)
	boom := errors.New("boom")

	mock.ExpectBegin()
	mock.ExpectRollback()

	err := tm.Execute(context.Background(), func(context.Context, repository.RepositoryFactory) error {
		return boom
	})

	assert.ErrorIs(t, err, boom)
	require.NoError(t, mock.ExpectationsWereMet())
}
