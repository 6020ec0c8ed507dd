package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "sapphire/internal/delivery/context"
	"sapphire/internal/domain/entity"
	domainerrors "sapphire/internal/domain/errors"
	"sapphire/internal/domain/repository"
	"sapphire/internal/domain/service"
	"sapphire/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const tokenTypeBearer = "bearer"

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	txManager    repository.TransactionManager
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
	now          func() time.Time
}

// SessionServiceParams holds dependencies for SessionService, injected by Fx.
type SessionServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	return &sessionService{
		txManager:    params.TxManager,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
		now:          time.Now,
	}
}

func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login reuses the latest unexpired token so parallel dashboard tabs share one session.
func (srv *sessionService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	now := srv.now().UTC()

	var output *usecase.LoginOutput
	err := srv.txManager.Execute(ctx, func(txCtx context.Context, repos repository.RepositoryFactory) error {
		user, err := repos.UserRepo().FindByUsername(txCtx, input.Username)
		if errors.Is(err, repository.ErrUserNotFound) {
			return errors.WithStack(domainerrors.ErrInvalidUsername)
		}
		if err != nil {
			return errors.Wrap(err, "failed to find user")
		}

		if user.PasswordHash == "" || !srv.hasher.Check(input.Password, user.PasswordHash) {
			return errors.WithStack(domainerrors.ErrInvalidPassword)
		}
		if !user.CanLogin() {
			return errors.WithStack(domainerrors.ErrUserNotApproved)
		}

		tokenRepo := repos.TokenRepo()
		latest, err := tokenRepo.FindLatestByUser(txCtx, user.ID)
		switch {
		case err == nil && !latest.IsExpired(now):
			output = &usecase.LoginOutput{AccessToken: latest.Token, TokenType: tokenTypeBearer, ExpiresAt: latest.ExpiresAt}

			return nil
		case err != nil && !errors.Is(err, repository.ErrTokenNotFound):
			return errors.Wrap(err, "failed to find latest token")
		}

		if _, err := tokenRepo.DeleteByUser(txCtx, user.ID); err != nil {
			return errors.Wrap(err, "failed to delete stale tokens")
		}

		signed, expiresAt, err := srv.tokenService.GenerateAccessToken(user, now)
		if err != nil {
			return errors.Wrap(err, "failed to generate access token")
		}

		record := &entity.UserToken{UserID: user.ID, Token: signed, ExpiresAt: expiresAt, CreatedAt: now}
		if err := tokenRepo.Create(txCtx, record); err != nil {
			return errors.Wrap(err, "failed to store access token")
		}

		output = &usecase.LoginOutput{AccessToken: signed, TokenType: tokenTypeBearer, ExpiresAt: expiresAt}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("username", input.Username), slog.Any("error", err))

		return nil, errors.Wrap(err, "login")
	}

	srv.log(ctx).Info("Login succeeded", slog.String("username", input.Username))

	return output, nil
}

func (srv *sessionService) Logout(ctx context.Context, userID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(txCtx context.Context, repos repository.RepositoryFactory) error {
		deleted, err := repos.TokenRepo().DeleteByUser(txCtx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to delete tokens")
		}
		if deleted == 0 {
			return errors.WithStack(domainerrors.ErrTokenNotFound)
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "logout")
	}

	srv.log(ctx).Info("Logged out", slog.String("userID", userID.String()))

	return nil
}

// Authenticate checks the signature first, then the persisted record and its expiry.
// A token removed by logout fails here even though its signature still verifies.
// Role and username come from the user row, so a demotion or deactivation applies on the next request.
func (srv *sessionService) Authenticate(ctx context.Context, token string) (*usecase.Principal, error) {
	claims, err := srv.tokenService.ValidateToken(token)
	if err != nil {
		return nil, err
	}

	now := srv.now().UTC()
	var principal *usecase.Principal
	err = srv.txManager.Execute(ctx, func(txCtx context.Context, repos repository.RepositoryFactory) error {
		record, err := repos.TokenRepo().FindByTokenAndUser(txCtx, token, claims.UserID)
		if errors.Is(err, repository.ErrTokenNotFound) {
			return errors.WithStack(domainerrors.ErrTokenInvalid)
		}
		if err != nil {
			return errors.Wrap(err, "failed to find token record")
		}
		if record.IsExpired(now) {
			return errors.WithStack(domainerrors.ErrTokenExpired)
		}

		user, err := repos.UserRepo().FindByID(txCtx, claims.UserID)
		if errors.Is(err, repository.ErrUserNotFound) {
			return errors.WithStack(domainerrors.ErrTokenInvalid)
		}
		if err != nil {
			return errors.Wrap(err, "failed to find token owner")
		}
		if !user.CanLogin() {
			return errors.WithStack(domainerrors.ErrUserNotApproved)
		}

		principal = &usecase.Principal{UserID: user.ID, Username: user.Username, Role: user.Role}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return principal, nil
}
