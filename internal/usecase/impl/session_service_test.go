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
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sessionFixture struct {
	repos  *repoMocks
	hasher *mockSvc.MockPasswordHasher
	tokens *mockSvc.MockTokenService
	srv    *sessionService
}

func newSessionFixture(t *testing.T) *sessionFixture {
	repos := newRepoMocks(t)
	f := &sessionFixture{
		repos:  repos,
		hasher: mockSvc.NewMockPasswordHasher(t),
		tokens: mockSvc.NewMockTokenService(t),
	}
	f.srv = &sessionService{
		txManager:    newTxManager(t, repos),
		hasher:       f.hasher,
		tokenService: f.tokens,
		logger:       newDiscardLogger(),
		now:          fixedClock,
	}

	return f
}

func approvedUser() *entity.User {
	return &entity.User{
		ID:           uuid.New(),
		Username:     "alice",
		PasswordHash: "hashed",
		Role:         entity.RoleUser,
		IsActive:     true,
		IsApproved:   true,
		Status:       entity.StatusApproved,
	}
}

func TestSessionService_Login_IssuesNewToken(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()
	user := approvedUser()
	expiresAt := fixedNow.Add(time.Hour)

	f.repos.users.EXPECT().FindByUsername(ctx, "alice").Return(user, nil)
	f.hasher.EXPECT().Check("secret", "hashed").Return(true)
	f.repos.tokens.EXPECT().FindLatestByUser(ctx, user.ID).Return(nil, repository.ErrTokenNotFound)
	f.repos.tokens.EXPECT().DeleteByUser(ctx, user.ID).Return(0, nil)
	f.tokens.EXPECT().GenerateAccessToken(user, fixedNow).Return("signed", expiresAt, nil)
	f.repos.tokens.EXPECT().Create(ctx, &entity.UserToken{UserID: user.ID, Token: "signed", ExpiresAt: expiresAt, CreatedAt: fixedNow}).Return(nil)

	out, err := f.srv.Login(ctx, &usecase.LoginInput{Username: "alice", Password: "secret"})

	require.NoError(t, err)
	assert.Equal(t, "signed", out.AccessToken)
	assert.Equal(t, "bearer", out.TokenType)
	assert.Equal(t, expiresAt, out.ExpiresAt)
}

func TestSessionService_Login_ReusesUnexpiredToken(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()
	user := approvedUser()
	existing := &entity.UserToken{UserID: user.ID, Token: "still-good", ExpiresAt: fixedNow.Add(10 * time.Minute)}

	f.repos.users.EXPECT().FindByUsername(ctx, "alice").Return(user, nil)
	f.hasher.EXPECT().Check("secret", "hashed").Return(true)
	f.repos.tokens.EXPECT().FindLatestByUser(ctx, user.ID).Return(existing, nil)

	out, err := f.srv.Login(ctx, &usecase.LoginInput{Username: "alice", Password: "secret"})

	require.NoError(t, err)
	assert.Equal(t, "still-good", out.AccessToken)
}

func TestSessionService_Login_ReplacesExpiredToken(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()
	user := approvedUser()
	stale := &entity.UserToken{UserID: user.ID, Token: "stale", ExpiresAt: fixedNow.Add(-time.Second)}
	expiresAt := fixedNow.Add(time.Hour)

	f.repos.users.EXPECT().FindByUsername(ctx, "alice").Return(user, nil)
	f.hasher.EXPECT().Check("secret", "hashed").Return(true)
	f.repos.tokens.EXPECT().FindLatestByUser(ctx, user.ID).Return(stale, nil)
	f.repos.tokens.EXPECT().DeleteByUser(ctx, user.ID).Return(1, nil)
	f.tokens.EXPECT().GenerateAccessToken(user, fixedNow).Return("fresh", expiresAt, nil)
	f.repos.tokens.EXPECT().Create(ctx, &entity.UserToken{UserID: user.ID, Token: "fresh", ExpiresAt: expiresAt, CreatedAt: fixedNow}).Return(nil)

	out, err := f.srv.Login(ctx, &usecase.LoginInput{Username: "alice", Password: "secret"})

	require.NoError(t, err)
	assert.Equal(t, "fresh", out.AccessToken)
}

func TestSessionService_Login_Failures(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(f *sessionFixture, user *entity.User)
		wantErr error
	}{
		{
			name: "unknown username",
			setup: func(f *sessionFixture, _ *entity.User) {
				f.repos.users.EXPECT().FindByUsername(context.Background(), "alice").Return(nil, repository.ErrUserNotFound)
			},
			wantErr: domainerrors.ErrInvalidUsername,
		},
		{
			name: "wrong password",
			setup: func(f *sessionFixture, user *entity.User) {
				f.repos.users.EXPECT().FindByUsername(context.Background(), "alice").Return(user, nil)
				f.hasher.EXPECT().Check("secret", "hashed").Return(false)
			},
			wantErr: domainerrors.ErrInvalidPassword,
		},
		{
			name: "not approved",
			setup: func(f *sessionFixture, user *entity.User) {
				user.IsApproved = false
				f.repos.users.EXPECT().FindByUsername(context.Background(), "alice").Return(user, nil)
				f.hasher.EXPECT().Check("secret", "hashed").Return(true)
			},
			wantErr: domainerrors.ErrUserNotApproved,
		},
		{
			name: "inactive",
			setup: func(f *sessionFixture, user *entity.User) {
				user.IsActive = false
				f.repos.users.EXPECT().FindByUsername(context.Background(), "alice").Return(user, nil)
				f.hasher.EXPECT().Check("secret", "hashed").Return(true)
			},
			wantErr: domainerrors.ErrUserNotApproved,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newSessionFixture(t)
			tt.setup(f, approvedUser())

			out, err := f.srv.Login(context.Background(), &usecase.LoginInput{Username: "alice", Password: "secret"})

			require.Error(t, err)
			assert.Nil(t, out)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestSessionService_Logout(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("deletes tokens", func(t *testing.T) {
		f := newSessionFixture(t)
		f.repos.tokens.EXPECT().DeleteByUser(ctx, userID).Return(2, nil)

		require.NoError(t, f.srv.Logout(ctx, userID))
	})

	t.Run("nothing to delete", func(t *testing.T) {
		f := newSessionFixture(t)
		f.repos.tokens.EXPECT().DeleteByUser(ctx, userID).Return(0, nil)

		err := f.srv.Logout(ctx, userID)

		assert.ErrorIs(t, err, domainerrors.ErrTokenNotFound)
	})
}

func TestSessionService_Authenticate(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	claims := &service.Claims{UserID: userID, Username: "alice", Role: entity.RoleGroupAdmin}

	owner := func() *entity.User {
		u := approvedUser()
		u.ID = userID
		u.Role = entity.RoleGroupAdmin

		return u
	}
	liveRecord := &entity.UserToken{UserID: userID, Token: "tok", ExpiresAt: fixedNow.Add(time.Minute)}

	t.Run("valid token", func(t *testing.T) {
		f := newSessionFixture(t)
		f.tokens.EXPECT().ValidateToken("tok").Return(claims, nil)
		f.repos.tokens.EXPECT().FindByTokenAndUser(ctx, "tok", userID).Return(liveRecord, nil)
		f.repos.users.EXPECT().FindByID(ctx, userID).Return(owner(), nil)

		principal, err := f.srv.Authenticate(ctx, "tok")

		require.NoError(t, err)
		assert.Equal(t, userID, principal.UserID)
		assert.Equal(t, entity.RoleGroupAdmin, principal.Role)
		assert.True(t, principal.IsAdmin())
	})

	t.Run("role comes from the user row", func(t *testing.T) {
		f := newSessionFixture(t)
		demoted := owner()
		demoted.Role = entity.RoleUser
		f.tokens.EXPECT().ValidateToken("tok").Return(claims, nil)
		f.repos.tokens.EXPECT().FindByTokenAndUser(ctx, "tok", userID).Return(liveRecord, nil)
		f.repos.users.EXPECT().FindByID(ctx, userID).Return(demoted, nil)

		principal, err := f.srv.Authenticate(ctx, "tok")

		require.NoError(t, err)
		assert.Equal(t, entity.RoleUser, principal.Role)
		assert.False(t, principal.IsAdmin())
	})

	t.Run("owner deactivated or rejected", func(t *testing.T) {
		for name, mutate := range map[string]func(u *entity.User){
			"inactive": func(u *entity.User) { u.IsActive = false },
			"rejected": func(u *entity.User) { u.IsActive, u.IsApproved, u.Status = false, false, entity.StatusRejected },
		} {
			t.Run(name, func(t *testing.T) {
				f := newSessionFixture(t)
				u := owner()
				mutate(u)
				f.tokens.EXPECT().ValidateToken("tok").Return(claims, nil)
				f.repos.tokens.EXPECT().FindByTokenAndUser(ctx, "tok", userID).Return(liveRecord, nil)
				f.repos.users.EXPECT().FindByID(ctx, userID).Return(u, nil)

				principal, err := f.srv.Authenticate(ctx, "tok")

				assert.Nil(t, principal)
				assert.ErrorIs(t, err, domainerrors.ErrUserNotApproved)
			})
		}
	})

	t.Run("owner deleted", func(t *testing.T) {
		f := newSessionFixture(t)
		f.tokens.EXPECT().ValidateToken("tok").Return(claims, nil)
		f.repos.tokens.EXPECT().FindByTokenAndUser(ctx, "tok", userID).Return(liveRecord, nil)
		f.repos.users.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

		_, err := f.srv.Authenticate(ctx, "tok")

		assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
	})

	t.Run("revoked token", func(t *testing.T) {
		f := newSessionFixture(t)
		f.tokens.EXPECT().ValidateToken("tok").Return(claims, nil)
		f.repos.tokens.EXPECT().FindByTokenAndUser(ctx, "tok", userID).Return(nil, repository.ErrTokenNotFound)

		_, err := f.srv.Authenticate(ctx, "tok")

		assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
	})

	t.Run("record past expiry", func(t *testing.T) {
		f := newSessionFixture(t)
		f.tokens.EXPECT().ValidateToken("tok").Return(claims, nil)
		f.repos.tokens.EXPECT().FindByTokenAndUser(ctx, "tok", userID).
			Return(&entity.UserToken{UserID: userID, Token: "tok", ExpiresAt: fixedNow.Add(-time.Nanosecond)}, nil)

		_, err := f.srv.Authenticate(ctx, "tok")

		assert.ErrorIs(t, err, domainerrors.ErrTokenExpired)
	})

	t.Run("expiry instant is still valid", func(t *testing.T) {
		f := newSessionFixture(t)
		f.tokens.EXPECT().ValidateToken("tok").Return(claims, nil)
		f.repos.tokens.EXPECT().FindByTokenAndUser(ctx, "tok", userID).
			Return(&entity.UserToken{UserID: userID, Token: "tok", ExpiresAt: fixedNow}, nil)
		f.repos.users.EXPECT().FindByID(ctx, userID).Return(owner(), nil)

		_, err := f.srv.Authenticate(ctx, "tok")

		assert.NoError(t, err)
	})

	t.Run("bad signature", func(t *testing.T) {
		f := newSessionFixture(t)
		f.tokens.EXPECT().ValidateToken("tok").Return(nil, domainerrors.ErrTokenMalformed)

		_, err := f.srv.Authenticate(ctx, "tok")

		assert.ErrorIs(t, err, domainerrors.ErrTokenMalformed)
	})
}
