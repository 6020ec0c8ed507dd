package handler

import (
	"log/slog"
	"net/http"

	"sapphire/internal/delivery/api/response"
	"sapphire/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// GroupHandlerParams holds dependencies for GroupHandler, injected by Fx.
type GroupHandlerParams struct {
	fx.In

	GroupUC usecase.GroupUsecase
	Logger  *slog.Logger
}

// GroupHandler serves the group endpoints.
type GroupHandler struct {
	groupUC usecase.GroupUsecase
	logger  *slog.Logger
}

// NewGroupHandler is the constructor for GroupHandler.
func NewGroupHandler(params GroupHandlerParams) *GroupHandler {
	return &GroupHandler{groupUC: params.GroupUC, logger: params.Logger}
}

// CreateGroupRequest defines a new group.
type CreateGroupRequest struct {
	Name        string      `json:"name" validate:"required,max=200"`
	Description string      `json:"description" validate:"max=2000"`
	CreatedBy   *uuid.UUID  `json:"createdBy"`
	GroupAdmin  *uuid.UUID  `json:"groupAdmin"`
	Members     []uuid.UUID `json:"members"`
	Projects    []uuid.UUID `json:"projects"`
}

// UpdateGroupRequest is a partial update; the id comes from the body or the path.
type UpdateGroupRequest struct {
	ID          uuid.UUID   `json:"id"`
	Name        *string     `json:"name" validate:"omitempty,min=1,max=200"`
	Description *string     `json:"description" validate:"omitempty,max=2000"`
	GroupAdmin  *uuid.UUID  `json:"groupAdmin"`
	Members     []uuid.UUID `json:"members"`
	Projects    []uuid.UUID `json:"projects"`
}

// CreateGroup handles POST /groups.
func (h *GroupHandler) CreateGroup(c echo.Context) error {
	actorID, err := subject(c)
	if err != nil {
		return err
	}

	var req CreateGroupRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	group, err := h.groupUC.CreateGroup(c.Request().Context(), &usecase.CreateGroupInput{
		ActorID:     actorID,
		Name:        req.Name,
		Description: req.Description,
		CreatedBy:   req.CreatedBy,
		GroupAdmin:  req.GroupAdmin,
		MemberIDs:   req.Members,
		ProjectIDs:  req.Projects,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]any{"groupId": group.ID}, "Group created successfully")
}

// ListGroups handles GET /groups.
func (h *GroupHandler) ListGroups(c echo.Context) error {
	var query ScopedPageQuery
	if err := bind(c, &query); err != nil {
		return err
	}
	userID, err := scopedUser(c, query.UserID)
	if err != nil {
		return err
	}

	result, err := h.groupUC.ListGroups(c.Request().Context(), &usecase.ListInput{UserID: userID, Page: query.Page()})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, result)
}

// GetGroup handles GET /groups/:id.
func (h *GroupHandler) GetGroup(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	group, err := h.groupUC.GetGroup(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, group)
}

// UpdateGroup handles PUT /groups and PUT /groups/:id.
func (h *GroupHandler) UpdateGroup(c echo.Context) error {
	var req UpdateGroupRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	if c.Param("id") != "" {
		id, err := pathID(c, "id")
		if err != nil {
			return err
		}
		req.ID = id
	}
	if req.ID == uuid.Nil {
		return errors.WithStack(errInvalidBodyID)
	}

	group, err := h.groupUC.UpdateGroup(c.Request().Context(), &usecase.UpdateGroupInput{
		ID:          req.ID,
		Name:        req.Name,
		Description: req.Description,
		GroupAdmin:  req.GroupAdmin,
		MemberIDs:   req.Members,
		ProjectIDs:  req.Projects,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, group, "Group updated successfully")
}

// InactivateGroup handles PATCH /group/:id/inactivate.
func (h *GroupHandler) InactivateGroup(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req ReasonRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	if err := h.groupUC.InactivateGroup(c.Request().Context(), id, req.Reason); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusOK, "Group inactivated successfully")
}

// DeleteGroup handles DELETE /groups/:id.
func (h *GroupHandler) DeleteGroup(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.groupUC.DeleteGroup(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusOK, "Group deleted successfully")
}
