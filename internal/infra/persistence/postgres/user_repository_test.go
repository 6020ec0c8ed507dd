package postgres

import (
	"context"
	"testing"

	"sapphire/internal/domain/entity"
	"sapphire/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_Create_AssignsIDAndLinksGroups(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)
	groupID := uuid.New()

	mock.ExpectExec(`INSERT INTO "users"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO "user_groups" .* ON CONFLICT DO NOTHING`).WillReturnResult(sqlmock.NewResult(0, 1))

	user := &entity.User{
		Username: "jdoe",
		Email:    "jdoe@example.com",
		Role:     entity.RoleUser,
		Status:   entity.StatusPending,
		GroupIDs: []uuid.UUID{groupID},
	}
	err := repo.Create(context.Background(), user)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.False(t, user.CreatedAt.IsZero())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Create_Duplicate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectExec(`INSERT INTO "users"`).
		WillReturnError(&pgconn.PgError{Code: pgUniqueViolation, ConstraintName: "users_username_key"})

	err := repo.Create(context.Background(), &entity.User{Username: "jdoe", Email: "jdoe@example.com"})

	require.Error(t, err)
	assert.ErrorIs(t, err, repository.ErrDuplicateUser)
	assert.Contains(t, err.Error(), "users_username_key")
}

func TestUserRepository_FindByID_LoadsMemberships(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)
	userID := uuid.New()
	groupID := uuid.New()
	projectID := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "email", "role", "is_active"}).
			AddRow(userID.String(), "jdoe", "jdoe@example.com", "User", true))
	mock.ExpectQuery(`SELECT \* FROM "user_groups" WHERE user_id IN \(\$1\)`).
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "group_id"}).AddRow(userID.String(), groupID.String()))
	mock.ExpectQuery(`SELECT \* FROM "user_projects" WHERE user_id IN \(\$1\)`).
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "project_id"}).AddRow(userID.String(), projectID.String()))

	user, err := repo.FindByID(context.Background(), userID)

	require.NoError(t, err)
	assert.Equal(t, "jdoe", user.Username)
	assert.Equal(t, entity.RoleUser, user.Role)
	assert.Equal(t, []uuid.UUID{groupID}, user.GroupIDs)
	assert.Equal(t, []uuid.UUID{projectID}, user.ProjectIDs)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindByUsername_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE username = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	user, err := repo.FindByUsername(context.Background(), "ghost")

	assert.Nil(t, user)
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestUserRepository_Update_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectExec(`UPDATE "users" SET`).WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), &entity.User{ID: uuid.New(), Username: "jdoe"})

	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestUserRepository_ExistsWithRole(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "users" WHERE role = \$1`).
		WithArgs("SuperAdmin").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	exists, err := repo.ExistsWithRole(context.Background(), entity.RoleSuperAdmin)

	require.NoError(t, err)
	assert.True(t, exists)
}

func TestUserRepository_RemoveGroupFromAll(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)
	groupID := uuid.New()

	mock.ExpectExec(`DELETE FROM "user_groups" WHERE group_id = \$1`).
		WithArgs(groupID).
		WillReturnResult(sqlmock.NewResult(0, 3))

	require.NoError(t, repo.RemoveGroupFromAll(context.Background(), groupID))
	require.NoError(t, mock.ExpectationsWereMet())
}
