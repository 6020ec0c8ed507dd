package impl

import (
	"context"
	"testing"
	"time"

	"sapphire/internal/domain/entity"
	domainerrors "sapphire/internal/domain/errors"
	"sapphire/internal/domain/repository"
	"sapphire/internal/domain/service"
	mockSvc "sapphire/internal/mocks/service"
	"sapphire/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type userFixture struct {
	repos     *repoMocks
	hasher    *mockSvc.MockPasswordHasher
	codes     *mockSvc.MockCodeGenerator
	publisher *mockSvc.MockEventPublisher
	srv       *userService
}

func newUserFixture(t *testing.T) *userFixture {
	repos := newRepoMocks(t)
	f := &userFixture{
		repos:     repos,
		hasher:    mockSvc.NewMockPasswordHasher(t),
		codes:     mockSvc.NewMockCodeGenerator(t),
		publisher: mockSvc.NewMockEventPublisher(t),
	}
	f.srv = &userService{
		txManager: newTxManager(t, repos),
		hasher:    f.hasher,
		codes:     f.codes,
		publisher: f.publisher,
		otpTTL:    5 * time.Minute,
		logger:    newDiscardLogger(),
		now:       fixedClock,
	}

	return f
}

func TestUserService_SignUp_Success(t *testing.T) {
	f := newUserFixture(t)
	ctx := context.Background()

	f.hasher.EXPECT().Hash("pw").Return("hashed", nil)
	f.repos.users.EXPECT().FindByUsername(ctx, "bob").Return(nil, repository.ErrUserNotFound)
	f.repos.users.EXPECT().FindByEmail(ctx, "bob@example.com").Return(nil, repository.ErrUserNotFound)
	f.repos.users.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).
		RunAndReturn(func(_ context.Context, u *entity.User) error {
			u.ID = uuid.New()

			return nil
		})

	user, err := f.srv.SignUp(ctx, &usecase.SignUpInput{Username: "bob", Email: "bob@example.com", Password: "pw"})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.Equal(t, "hashed", user.PasswordHash)
	assert.False(t, user.IsActive)
	assert.False(t, user.IsApproved)
	assert.Equal(t, entity.StatusPending, user.Status)
	assert.Equal(t, entity.RoleUser, user.Role)
}

func TestUserService_SignUp_Conflicts(t *testing.T) {
	ctx := context.Background()

	t.Run("username taken", func(t *testing.T) {
		f := newUserFixture(t)
		f.repos.users.EXPECT().FindByUsername(ctx, "bob").Return(&entity.User{ID: uuid.New()}, nil)

		_, err := f.srv.SignUp(ctx, &usecase.SignUpInput{Username: "bob", Email: "bob@example.com"})

		assert.ErrorIs(t, err, domainerrors.ErrUsernameTaken)
	})

	t.Run("email in use", func(t *testing.T) {
		f := newUserFixture(t)
		f.repos.users.EXPECT().FindByUsername(ctx, "bob").Return(nil, repository.ErrUserNotFound)
		f.repos.users.EXPECT().FindByEmail(ctx, "bob@example.com").Return(&entity.User{ID: uuid.New()}, nil)

		_, err := f.srv.SignUp(ctx, &usecase.SignUpInput{Username: "bob", Email: "bob@example.com"})

		assert.ErrorIs(t, err, domainerrors.ErrEmailInUse)
	})
}

func TestUserService_CreateUser_DualWritesMemberships(t *testing.T) {
	f := newUserFixture(t)
	ctx := context.Background()
	userID := uuid.New()
	groupID := uuid.New()
	projectID := uuid.New()

	f.repos.users.EXPECT().FindByUsername(ctx, "carol").Return(nil, repository.ErrUserNotFound)
	f.repos.users.EXPECT().FindByEmail(ctx, "carol@example.com").Return(nil, repository.ErrUserNotFound)
	f.repos.groups.EXPECT().FindByIDs(ctx, []uuid.UUID{groupID}).Return([]*entity.Group{{ID: groupID}}, nil)
	f.repos.projects.EXPECT().FindByIDs(ctx, []uuid.UUID{projectID}).Return([]*entity.Project{{ID: projectID}}, nil)
	f.repos.users.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).
		RunAndReturn(func(_ context.Context, u *entity.User) error {
			u.ID = userID

			return nil
		})
	f.repos.users.EXPECT().AddGroup(ctx, userID, groupID).Return(nil)
	f.repos.groups.EXPECT().AddMember(ctx, groupID, userID).Return(nil)
	f.repos.users.EXPECT().AddProject(ctx, userID, projectID).Return(nil)
	f.repos.projects.EXPECT().AddAssignee(ctx, projectID, userID).Return(nil)

	user, err := f.srv.CreateUser(ctx, &usecase.CreateUserInput{
		Username:   "carol",
		Email:      "carol@example.com",
		Role:       entity.RoleSuperAdmin,
		GroupIDs:   []uuid.UUID{groupID, groupID},
		ProjectIDs: []uuid.UUID{projectID},
	})

	require.NoError(t, err)
	assert.True(t, user.IsActive)
	assert.True(t, user.IsApproved, "SuperAdmin accounts are approved on creation")
	assert.Equal(t, []uuid.UUID{groupID}, user.GroupIDs)
	assert.Equal(t, []uuid.UUID{projectID}, user.ProjectIDs)
}

func TestUserService_CreateUser_MissingProject(t *testing.T) {
	f := newUserFixture(t)
	ctx := context.Background()
	projectID := uuid.New()

	f.repos.users.EXPECT().FindByUsername(ctx, "carol").Return(nil, repository.ErrUserNotFound)
	f.repos.users.EXPECT().FindByEmail(ctx, "carol@example.com").Return(nil, repository.ErrUserNotFound)
	f.repos.projects.EXPECT().FindByIDs(ctx, []uuid.UUID{projectID}).Return([]*entity.Project{}, nil)

	_, err := f.srv.CreateUser(ctx, &usecase.CreateUserInput{Username: "carol", Email: "carol@example.com", ProjectIDs: []uuid.UUID{projectID}})

	assert.ErrorIs(t, err, domainerrors.ErrProjectsNotFound)
}

func TestUserService_CreateUser_InvalidRole(t *testing.T) {
	f := newUserFixture(t)

	_, err := f.srv.CreateUser(context.Background(), &usecase.CreateUserInput{Username: "x", Role: "Root"})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestUserService_GetUser(t *testing.T) {
	ctx := context.Background()

	t.Run("enriches groups and projects", func(t *testing.T) {
		f := newUserFixture(t)
		other := &entity.User{ID: uuid.New(), FirstName: "Dan", LastName: "Lee"}
		user := &entity.User{ID: uuid.New(), Username: "eve"}
		group := &entity.Group{ID: uuid.New(), Name: "ops", MemberIDs: []uuid.UUID{user.ID, other.ID}}
		project := &entity.Project{ID: uuid.New(), Name: "apollo", Status: entity.ProjectInProgress, AssignedUserIDs: []uuid.UUID{other.ID}}
		user.GroupIDs = []uuid.UUID{group.ID}
		user.ProjectIDs = []uuid.UUID{project.ID}

		f.repos.users.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
		f.repos.groups.EXPECT().FindByIDs(ctx, user.GroupIDs).Return([]*entity.Group{group}, nil)
		f.repos.projects.EXPECT().FindByIDs(ctx, user.ProjectIDs).Return([]*entity.Project{project}, nil)
		f.repos.users.EXPECT().FindByIDs(ctx, []uuid.UUID{user.ID, other.ID}).Return([]*entity.User{user, other}, nil)

		detail, err := f.srv.GetUser(ctx, user.ID)

		require.NoError(t, err)
		require.Len(t, detail.Groups, 1)
		assert.Equal(t, []usecase.UserRef{{ID: user.ID, Name: "eve"}, {ID: other.ID, Name: "Dan Lee"}}, detail.Groups[0].Members)
		require.Len(t, detail.Projects, 1)
		assert.Equal(t, entity.ProjectInProgress, detail.Projects[0].Status)
		assert.Equal(t, []usecase.UserRef{{ID: other.ID, Name: "Dan Lee"}}, detail.Projects[0].AssignedUsers)
	})

	t.Run("not found", func(t *testing.T) {
		f := newUserFixture(t)
		id := uuid.New()
		f.repos.users.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrUserNotFound)

		_, err := f.srv.GetUser(ctx, id)

		assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	})
}

func TestUserService_UpdateUser_DiffsGroups(t *testing.T) {
	f := newUserFixture(t)
	ctx := context.Background()
	keep, drop, add := uuid.New(), uuid.New(), uuid.New()
	user := &entity.User{ID: uuid.New(), Username: "frank", FirstName: "Frank", GroupIDs: []uuid.UUID{keep, drop}, ProjectIDs: []uuid.UUID{}}

	f.repos.users.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	f.repos.users.EXPECT().Update(ctx, user).Return(nil)
	f.repos.groups.EXPECT().FindByIDs(ctx, []uuid.UUID{keep, add}).Return([]*entity.Group{{ID: keep}, {ID: add}}, nil)
	f.repos.users.EXPECT().RemoveGroup(ctx, user.ID, drop).Return(nil).Once()
	f.repos.groups.EXPECT().RemoveMember(ctx, drop, user.ID).Return(nil).Once()
	f.repos.users.EXPECT().AddGroup(ctx, user.ID, add).Return(nil).Once()
	f.repos.groups.EXPECT().AddMember(ctx, add, user.ID).Return(nil).Once()

	updated, err := f.srv.UpdateUser(ctx, &usecase.UpdateUserInput{
		ID:        user.ID,
		FirstName: ptr("Franklin"),
		Username:  ptr("frank"),
		GroupIDs:  []uuid.UUID{keep, add},
	})

	require.NoError(t, err)
	assert.Equal(t, "Franklin", updated.FirstName)
	assert.Equal(t, []uuid.UUID{keep, add}, updated.GroupIDs)
}

func TestUserService_UpdateUser_NoChangesIsIdempotent(t *testing.T) {
	f := newUserFixture(t)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Username: "gina", Email: "g@example.com", GroupIDs: []uuid.UUID{}, ProjectIDs: []uuid.UUID{}}
	before := *user

	f.repos.users.EXPECT().FindByID(ctx, user.ID).Return(user, nil).Twice()
	f.repos.users.EXPECT().Update(ctx, user).Return(nil).Twice()

	input := &usecase.UpdateUserInput{ID: user.ID, Username: ptr("gina"), Email: ptr("g@example.com")}
	first, err := f.srv.UpdateUser(ctx, input)
	require.NoError(t, err)
	second, err := f.srv.UpdateUser(ctx, input)
	require.NoError(t, err)

	assert.Equal(t, before, *first)
	assert.Equal(t, *first, *second)
}

func TestUserService_UpdateUser_RevokesSessionsOnPrivilegeLoss(t *testing.T) {
	tests := []struct {
		name   string
		input  func(id uuid.UUID) *usecase.UpdateUserInput
		revoke bool
	}{
		{
			name:   "demoted",
			input:  func(id uuid.UUID) *usecase.UpdateUserInput { return &usecase.UpdateUserInput{ID: id, Role: ptr(entity.RoleUser)} },
			revoke: true,
		},
		{
			name:   "deactivated",
			input:  func(id uuid.UUID) *usecase.UpdateUserInput { return &usecase.UpdateUserInput{ID: id, IsActive: ptr(false)} },
			revoke: true,
		},
		{
			name:  "same role, still active",
			input: func(id uuid.UUID) *usecase.UpdateUserInput { return &usecase.UpdateUserInput{ID: id, Role: ptr(entity.RoleSuperAdmin), IsActive: ptr(true)} },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newUserFixture(t)
			ctx := context.Background()
			user := &entity.User{ID: uuid.New(), Username: "root", Role: entity.RoleSuperAdmin, IsActive: true, IsApproved: true}

			f.repos.users.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
			f.repos.users.EXPECT().Update(ctx, user).Return(nil)
			if tt.revoke {
				f.repos.tokens.EXPECT().DeleteByUser(ctx, user.ID).Return(1, nil).Once()
			}

			_, err := f.srv.UpdateUser(ctx, tt.input(user.ID))

			require.NoError(t, err)
		})
	}
}

func TestUserService_UpdateUser_UsernameTakenByOther(t *testing.T) {
	f := newUserFixture(t)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Username: "henry"}

	f.repos.users.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	f.repos.users.EXPECT().FindByUsername(ctx, "ida").Return(&entity.User{ID: uuid.New(), Username: "ida"}, nil)

	_, err := f.srv.UpdateUser(ctx, &usecase.UpdateUserInput{ID: user.ID, Username: ptr("ida")})

	assert.ErrorIs(t, err, domainerrors.ErrUsernameTaken)
}

func TestUserService_DeleteUser_PullsReferences(t *testing.T) {
	f := newUserFixture(t)
	ctx := context.Background()
	id := uuid.New()

	f.repos.users.EXPECT().FindByID(ctx, id).Return(&entity.User{ID: id}, nil)
	f.repos.groups.EXPECT().RemoveMemberFromAll(ctx, id).Return(nil)
	f.repos.projects.EXPECT().RemoveAssigneeFromAll(ctx, id).Return(nil)
	f.repos.tokens.EXPECT().DeleteByUser(ctx, id).Return(1, nil)
	f.repos.otps.EXPECT().DeleteByUser(ctx, id).Return(nil)
	f.repos.users.EXPECT().Delete(ctx, id).Return(nil)

	require.NoError(t, f.srv.DeleteUser(ctx, id))
}

func TestUserService_InactivateUser(t *testing.T) {
	f := newUserFixture(t)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), IsActive: true}

	f.repos.users.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	f.repos.users.EXPECT().Update(ctx, user).Return(nil)
	f.repos.tokens.EXPECT().DeleteByUser(ctx, user.ID).Return(0, nil)

	require.NoError(t, f.srv.InactivateUser(ctx, user.ID, "left the company"))
	assert.False(t, user.IsActive)
	assert.Equal(t, "left the company", user.Reason)
}

func TestUserService_ApproveUser_IssuesOTP(t *testing.T) {
	f := newUserFixture(t)
	ctx := context.Background()
	groupID := uuid.New()
	user := &entity.User{ID: uuid.New(), Email: "jo@example.com", Status: entity.StatusPending, GroupIDs: []uuid.UUID{}, ProjectIDs: []uuid.UUID{}}

	f.repos.users.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	f.repos.groups.EXPECT().FindByIDs(ctx, []uuid.UUID{groupID}).Return([]*entity.Group{{ID: groupID}}, nil)
	f.repos.users.EXPECT().Update(ctx, user).Return(nil)
	f.repos.users.EXPECT().AddGroup(ctx, user.ID, groupID).Return(nil)
	f.repos.groups.EXPECT().AddMember(ctx, groupID, user.ID).Return(nil)
	f.repos.otps.EXPECT().FindByUser(ctx, user.ID).Return(nil, repository.ErrOTPNotFound)
	f.codes.EXPECT().GenerateOTP().Return("123456", nil)
	f.repos.otps.EXPECT().Upsert(ctx, &entity.UserOTP{UserID: user.ID, OTP: "123456", ExpiresAt: fixedNow.Add(5 * time.Minute), CreatedAt: fixedNow}).Return(nil)
	f.publisher.EXPECT().PublishAdminEvent(ctx, mock.MatchedBy(func(e *service.AdminEvent) bool {
		return e.Type == service.EventOTPIssued && e.OTP == "123456" && e.Email == "jo@example.com"
	})).Return(nil)

	approved, err := f.srv.ApproveUser(ctx, &usecase.ApproveUserInput{UserID: user.ID, ApproverID: uuid.New(), GroupIDs: []uuid.UUID{groupID}, Role: entity.RoleGroupAdmin})

	require.NoError(t, err)
	assert.True(t, approved.IsApproved)
	assert.True(t, approved.IsActive)
	assert.Equal(t, entity.StatusApproved, approved.Status)
	assert.Equal(t, entity.RoleGroupAdmin, approved.Role)
	assert.Equal(t, []uuid.UUID{groupID}, approved.GroupIDs)
}

func TestUserService_ApproveUser_ReusesValidOTPAndToleratesPublishFailure(t *testing.T) {
	f := newUserFixture(t)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), GroupIDs: []uuid.UUID{}, ProjectIDs: []uuid.UUID{}}
	existing := &entity.UserOTP{UserID: user.ID, OTP: "654321", ExpiresAt: fixedNow.Add(time.Minute)}

	f.repos.users.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	f.repos.users.EXPECT().Update(ctx, user).Return(nil)
	f.repos.otps.EXPECT().FindByUser(ctx, user.ID).Return(existing, nil)
	f.publisher.EXPECT().PublishAdminEvent(ctx, mock.MatchedBy(func(e *service.AdminEvent) bool {
		return e.OTP == "654321"
	})).Return(errors.New("broker down"))

	_, err := f.srv.ApproveUser(ctx, &usecase.ApproveUserInput{UserID: user.ID})

	require.NoError(t, err)
}

func TestUserService_RejectUser(t *testing.T) {
	f := newUserFixture(t)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), IsActive: true, Status: entity.StatusPending}

	f.repos.users.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	f.repos.users.EXPECT().Update(ctx, user).Return(nil)
	f.repos.tokens.EXPECT().DeleteByUser(ctx, user.ID).Return(1, nil)

	require.NoError(t, f.srv.RejectUser(ctx, &usecase.RejectUserInput{UserID: user.ID, Reason: "unknown requester"}))
	assert.Equal(t, entity.StatusRejected, user.Status)
	assert.False(t, user.IsActive)
	assert.Equal(t, "unknown requester", user.Reason)
}

func TestUserService_VerifyOTP(t *testing.T) {
	ctx := context.Background()
	user := func() *entity.User { return &entity.User{ID: uuid.MustParse("0190f3a4-0000-7000-8000-000000000001"), Email: "kim@example.com"} }

	tests := []struct {
		name    string
		otp     *entity.UserOTP
		findErr error
		input   string
		wantErr error
	}{
		{name: "no otp", findErr: repository.ErrOTPNotFound, input: "111111", wantErr: domainerrors.ErrOTPNotFound},
		{name: "mismatch", otp: &entity.UserOTP{OTP: "111111", ExpiresAt: fixedNow.Add(time.Minute)}, input: "222222", wantErr: domainerrors.ErrOTPInvalid},
		{name: "expired", otp: &entity.UserOTP{OTP: "111111", ExpiresAt: fixedNow.Add(-time.Minute)}, input: "111111", wantErr: domainerrors.ErrOTPExpired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newUserFixture(t)
			u := user()
			f.hasher.EXPECT().Hash("new-pw").Return("new-hash", nil)
			f.repos.users.EXPECT().FindByEmail(ctx, u.Email).Return(u, nil)
			f.repos.otps.EXPECT().FindByUser(ctx, u.ID).Return(tt.otp, tt.findErr)

			err := f.srv.VerifyOTP(ctx, &usecase.VerifyOTPInput{Email: u.Email, OTP: tt.input, NewPassword: "new-pw"})

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	t.Run("sets password and consumes code", func(t *testing.T) {
		f := newUserFixture(t)
		u := user()
		f.hasher.EXPECT().Hash("new-pw").Return("new-hash", nil)
		f.repos.users.EXPECT().FindByEmail(ctx, u.Email).Return(u, nil)
		f.repos.otps.EXPECT().FindByUser(ctx, u.ID).Return(&entity.UserOTP{OTP: "111111", ExpiresAt: fixedNow.Add(time.Minute)}, nil)
		f.repos.users.EXPECT().Update(ctx, u).Return(nil)
		f.repos.otps.EXPECT().DeleteByUser(ctx, u.ID).Return(nil)

		err := f.srv.VerifyOTP(ctx, &usecase.VerifyOTPInput{Email: u.Email, OTP: "111111", NewPassword: "new-pw"})

		require.NoError(t, err)
		assert.Equal(t, "new-hash", u.PasswordHash)
	})

	t.Run("unknown email", func(t *testing.T) {
		f := newUserFixture(t)
		f.hasher.EXPECT().Hash("new-pw").Return("new-hash", nil)
		f.repos.users.EXPECT().FindByEmail(ctx, "nobody@example.com").Return(nil, repository.ErrUserNotFound)

		err := f.srv.VerifyOTP(ctx, &usecase.VerifyOTPInput{Email: "nobody@example.com", OTP: "1", NewPassword: "new-pw"})

		assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	})
}

func TestUserService_CreateSuperUser(t *testing.T) {
	ctx := context.Background()

	t.Run("refused once a superuser exists", func(t *testing.T) {
		f := newUserFixture(t)
		f.hasher.EXPECT().Hash("pw").Return("hashed", nil)
		f.repos.users.EXPECT().ExistsWithRole(ctx, entity.RoleSuperAdmin).Return(true, nil)

		_, err := f.srv.CreateSuperUser(ctx, &usecase.SuperUserInput{Username: "root", Email: "root@example.com", Password: "pw"})

		assert.ErrorIs(t, err, domainerrors.ErrSuperUserExists)
	})

	t.Run("creates approved superadmin", func(t *testing.T) {
		f := newUserFixture(t)
		f.hasher.EXPECT().Hash("pw").Return("hashed", nil)
		f.repos.users.EXPECT().ExistsWithRole(ctx, entity.RoleSuperAdmin).Return(false, nil)
		f.repos.users.EXPECT().FindByUsername(ctx, "root").Return(nil, repository.ErrUserNotFound)
		f.repos.users.EXPECT().FindByEmail(ctx, "root@example.com").Return(nil, repository.ErrUserNotFound)
		f.repos.users.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).Return(nil)

		user, err := f.srv.CreateSuperUser(ctx, &usecase.SuperUserInput{Username: "root", Email: "root@example.com", Password: "pw"})

		require.NoError(t, err)
		assert.Equal(t, entity.RoleSuperAdmin, user.Role)
		assert.True(t, user.CanLogin())
	})
}
