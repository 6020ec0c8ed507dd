package handler

import (
	"log/slog"
	"net/http"
	"time"

	"sapphire/internal/delivery/api/response"
	"sapphire/internal/domain/entity"
	"sapphire/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	SessionUC usecase.SessionUsecase
	UserUC    usecase.UserUsecase
	Logger    *slog.Logger
}

// AuthHandler serves sign-up, login, approval and password setup.
type AuthHandler struct {
	sessionUC usecase.SessionUsecase
	userUC    usecase.UserUsecase
	logger    *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler.
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		sessionUC: params.SessionUC,
		userUC:    params.UserUC,
		logger:    params.Logger,
	}
}

// SignUpRequest is a self-service account request.
type SignUpRequest struct {
	FirstName       string `json:"first_name" validate:"max=100"`
	LastName        string `json:"last_name" validate:"max=100"`
	Email           string `json:"email" validate:"required,email"`
	Phone           string `json:"phone" validate:"max=32"`
	Username        string `json:"username" validate:"required,min=3,max=64"`
	Password        string `json:"password" validate:"omitempty,min=6,max=72"`
	BusinessPurpose string `json:"business_purpose" validate:"max=1000"`
}

// LoginRequest carries the password credentials.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse is the token handed to the client.
type LoginResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// ApproveUserRequest activates a pending account.
type ApproveUserRequest struct {
	UserID   uuid.UUID   `json:"user_id" validate:"required"`
	Groups   []uuid.UUID `json:"groups"`
	Projects []uuid.UUID `json:"projects"`
	Role     entity.Role `json:"role"`
}

// RejectUserRequest declines a pending account.
type RejectUserRequest struct {
	UserID uuid.UUID `json:"user_id" validate:"required"`
	Reason string    `json:"reason" validate:"max=500"`
}

// VerifyOTPRequest sets a new password with the emailed code.
type VerifyOTPRequest struct {
	Email       string `json:"email" validate:"required,email"`
	OTP         string `json:"otp" validate:"required,len=6,numeric"`
	NewPassword string `json:"new_password" validate:"required,min=6,max=72"`
}

// SuperUserRequest bootstraps the first SuperAdmin.
type SuperUserRequest struct {
	FirstName string `json:"first_name" validate:"max=100"`
	LastName  string `json:"last_name" validate:"max=100"`
	Email     string `json:"email" validate:"required,email"`
	Username  string `json:"username" validate:"required,min=3,max=64"`
	Password  string `json:"password" validate:"required,min=6,max=72"`
}

// SignUp registers an inactive account awaiting approval.
func (h *AuthHandler) SignUp(c echo.Context) error {
	var req SignUpRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	user, err := h.userUC.SignUp(c.Request().Context(), &usecase.SignUpInput{
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Email:           req.Email,
		Phone:           req.Phone,
		Username:        req.Username,
		Password:        req.Password,
		BusinessPurpose: req.BusinessPurpose,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, user, "User Register successfully. Pending Request from admin")
}

// Login exchanges credentials for a bearer token.
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	output, err := h.sessionUC.Login(c.Request().Context(), &usecase.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, LoginResponse{
		AccessToken: output.AccessToken,
		TokenType:   output.TokenType,
		ExpiresAt:   output.ExpiresAt,
	}, "Login successful.")
}

// Logout revokes every token of the caller.
func (h *AuthHandler) Logout(c echo.Context) error {
	userID, err := subject(c)
	if err != nil {
		return err
	}

	if err := h.sessionUC.Logout(c.Request().Context(), userID); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusOK, "Logout successful.")
}

// ApproveUser activates an account and issues its one-time password.
func (h *AuthHandler) ApproveUser(c echo.Context) error {
	approverID, err := subject(c)
	if err != nil {
		return err
	}

	var req ApproveUserRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	user, err := h.userUC.ApproveUser(c.Request().Context(), &usecase.ApproveUserInput{
		UserID:     req.UserID,
		ApproverID: approverID,
		GroupIDs:   req.Groups,
		ProjectIDs: req.Projects,
		Role:       req.Role,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "User approved successfully")
}

// RejectUser declines a pending account.
func (h *AuthHandler) RejectUser(c echo.Context) error {
	var req RejectUserRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	if err := h.userUC.RejectUser(c.Request().Context(), &usecase.RejectUserInput{
		UserID: req.UserID,
		Reason: req.Reason,
	}); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusOK, "User rejected successfully")
}

// VerifyOTP replaces the password using the one-time code.
func (h *AuthHandler) VerifyOTP(c echo.Context) error {
	var req VerifyOTPRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	if err := h.userUC.VerifyOTP(c.Request().Context(), &usecase.VerifyOTPInput{
		Email:       req.Email,
		OTP:         req.OTP,
		NewPassword: req.NewPassword,
	}); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusOK, "Password updated successfully")
}

// CreateSuperUser creates the first SuperAdmin.
func (h *AuthHandler) CreateSuperUser(c echo.Context) error {
	var req SuperUserRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	user, err := h.userUC.CreateSuperUser(c.Request().Context(), &usecase.SuperUserInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Username:  req.Username,
		Password:  req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, user, "Superuser created successfully")
}
