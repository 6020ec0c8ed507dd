// Package handler contains the HTTP handlers of the admin API.
package handler

import (
	"log/slog"
	"net/http"

	"sapphire/internal/delivery/api/response"
	"sapphire/internal/domain/entity"
	"sapphire/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	UserUC usecase.UserUsecase
	Logger *slog.Logger
}

// UserHandler holds dependencies for user administration handlers.
type UserHandler struct {
	userUC usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler.
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		userUC: params.UserUC,
		logger: params.Logger,
	}
}

// CreateUserRequest is an admin-created account.
type CreateUserRequest struct {
	FirstName       string      `json:"first_name" validate:"max=100"`
	LastName        string      `json:"last_name" validate:"max=100"`
	Email           string      `json:"email" validate:"required,email"`
	Phone           string      `json:"phone" validate:"max=32"`
	Username        string      `json:"username" validate:"required,min=3,max=64"`
	Password        string      `json:"password" validate:"omitempty,min=6,max=72"`
	Role            entity.Role `json:"role"`
	BusinessPurpose string      `json:"business_purpose" validate:"max=1000"`
	Groups          []uuid.UUID `json:"groups"`
	Projects        []uuid.UUID `json:"projects"`
}

// UpdateUserRequest is a partial update; absent fields are left unchanged.
type UpdateUserRequest struct {
	FirstName       *string      `json:"first_name" validate:"omitempty,max=100"`
	LastName        *string      `json:"last_name" validate:"omitempty,max=100"`
	Email           *string      `json:"email" validate:"omitempty,email"`
	Phone           *string      `json:"phone" validate:"omitempty,max=32"`
	Username        *string      `json:"username" validate:"omitempty,min=3,max=64"`
	Password        *string      `json:"password" validate:"omitempty,min=6,max=72"`
	Role            *entity.Role `json:"role"`
	BusinessPurpose *string      `json:"business_purpose" validate:"omitempty,max=1000"`
	IsActive        *bool        `json:"is_active"`
	Groups          []uuid.UUID  `json:"groups"`
	Projects        []uuid.UUID  `json:"projects"`
}

// CreateUser handles POST /users.
func (h *UserHandler) CreateUser(c echo.Context) error {
	var req CreateUserRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	user, err := h.userUC.CreateUser(c.Request().Context(), &usecase.CreateUserInput{
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Email:           req.Email,
		Phone:           req.Phone,
		Username:        req.Username,
		Password:        req.Password,
		Role:            req.Role,
		BusinessPurpose: req.BusinessPurpose,
		GroupIDs:        req.Groups,
		ProjectIDs:      req.Projects,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, user, "User created successfully")
}

// ListUsers handles GET /users.
func (h *UserHandler) ListUsers(c echo.Context) error {
	var query PageQuery
	if err := bind(c, &query); err != nil {
		return err
	}

	result, err := h.userUC.ListUsers(c.Request().Context(), query.Page())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, result)
}

// GetUser handles GET /users/:id.
func (h *UserHandler) GetUser(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	user, err := h.userUC.GetUser(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user)
}

// UpdateUser handles PUT /users/:id.
func (h *UserHandler) UpdateUser(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req UpdateUserRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	user, err := h.userUC.UpdateUser(c.Request().Context(), &usecase.UpdateUserInput{
		ID:              id,
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Email:           req.Email,
		Phone:           req.Phone,
		Username:        req.Username,
		Password:        req.Password,
		Role:            req.Role,
		BusinessPurpose: req.BusinessPurpose,
		IsActive:        req.IsActive,
		GroupIDs:        req.Groups,
		ProjectIDs:      req.Projects,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "User updated successfully")
}

// InactivateUser handles PATCH /user/:id/inactivate.
func (h *UserHandler) InactivateUser(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req ReasonRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	if err := h.userUC.InactivateUser(c.Request().Context(), id, req.Reason); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusOK, "User inactivated successfully")
}

// DeleteUser handles DELETE /users/:id.
func (h *UserHandler) DeleteUser(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.userUC.DeleteUser(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusOK, "User deleted successfully")
}
