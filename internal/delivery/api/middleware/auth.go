package middleware

import (
	"log/slog"
	"slices"
	"strings"

	deliverycontext "sapphire/internal/delivery/context"
	"sapphire/internal/domain/constants"
	"sapphire/internal/domain/entity"
	domainerrors "sapphire/internal/domain/errors"
	"sapphire/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const bearerScheme = "bearer"

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	SessionUC usecase.SessionUsecase
	Logger    *slog.Logger
}

// AuthMiddleware checks the bearer token against its persisted record.
type AuthMiddleware struct {
	sessionUC usecase.SessionUsecase
	logger    *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{sessionUC: params.SessionUC, logger: params.Logger}
}

// Authenticate requires an "Authorization: Bearer <token>" header.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, err := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
		if err != nil {
			return err
		}

		return m.authenticate(c, token, next)
	}
}

// AuthenticateQuery also accepts the token in the "token" query parameter.
// Browsers cannot set headers on a WebSocket handshake.
func (m *AuthMiddleware) AuthenticateQuery(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if header := c.Request().Header.Get(echo.HeaderAuthorization); header != "" {
			token, err := bearerToken(header)
			if err != nil {
				return err
			}

			return m.authenticate(c, token, next)
		}

		token := c.QueryParam("token")
		if token == "" {
			return errors.WithStack(domainerrors.ErrMissingBearer)
		}

		return m.authenticate(c, token, next)
	}
}

func (m *AuthMiddleware) authenticate(c echo.Context, token string, next echo.HandlerFunc) error {
	ctx := c.Request().Context()

	principal, err := m.sessionUC.Authenticate(ctx, token)
	if err != nil {
		return errors.Wrap(err, "authenticate")
	}

	c.Set(constants.ContextKeyUserID, principal.UserID)
	c.Set(constants.ContextKeyUsername, principal.Username)
	c.Set(constants.ContextKeyRole, principal.Role)

	logger := deliverycontext.GetLoggerOrDefault(ctx, m.logger).With(slog.String("user_id", principal.UserID.String()))
	c.SetRequest(c.Request().WithContext(deliverycontext.WithLogger(ctx, logger)))

	return next(c)
}

// RequireRole rejects callers whose role is not listed. It must run after Authenticate.
func (m *AuthMiddleware) RequireRole(roles ...entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := GetRole(c)
			if !ok {
				return errors.WithStack(domainerrors.ErrUnauthorized)
			}
			if !slices.Contains(roles, role) {
				return errors.WithStack(domainerrors.ErrForbidden)
			}

			return next(c)
		}
	}
}

func bearerToken(header string) (string, error) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, bearerScheme) || strings.TrimSpace(token) == "" {
		return "", errors.WithStack(domainerrors.ErrMissingBearer)
	}

	return strings.TrimSpace(token), nil
}

// GetUserID returns the authenticated subject.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	id, ok := c.Get(constants.ContextKeyUserID).(uuid.UUID)

	return id, ok
}

// GetRole returns the role of the authenticated subject.
func GetRole(c echo.Context) (entity.Role, bool) {
	role, ok := c.Get(constants.ContextKeyRole).(entity.Role)

	return role, ok
}

// GetPrincipal rebuilds the caller from the values set by Authenticate.
func GetPrincipal(c echo.Context) (*usecase.Principal, bool) {
	userID, ok := GetUserID(c)
	if !ok {
		return nil, false
	}
	role, _ := GetRole(c)
	username, _ := c.Get(constants.ContextKeyUsername).(string)

	return &usecase.Principal{UserID: userID, Username: username, Role: role}, true
}
