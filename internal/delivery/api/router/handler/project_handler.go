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

// ProjectHandlerParams holds dependencies for ProjectHandler, injected by Fx.
type ProjectHandlerParams struct {
	fx.In

	ProjectUC usecase.ProjectUsecase
	Logger    *slog.Logger
}

// ProjectHandler serves the project endpoints.
type ProjectHandler struct {
	projectUC usecase.ProjectUsecase
	logger    *slog.Logger
}

// NewProjectHandler is the constructor for ProjectHandler.
func NewProjectHandler(params ProjectHandlerParams) *ProjectHandler {
	return &ProjectHandler{projectUC: params.ProjectUC, logger: params.Logger}
}

// CreateProjectRequest defines a new project.
type CreateProjectRequest struct {
	Name          string               `json:"name" validate:"required,max=200"`
	Description   string               `json:"description" validate:"max=2000"`
	Status        entity.ProjectStatus `json:"status"`
	GroupID       *uuid.UUID           `json:"groupId"`
	AssignedUsers []uuid.UUID          `json:"assignedUsers"`
}

// UpdateProjectRequest is a partial update; the id comes from the body or the path.
type UpdateProjectRequest struct {
	ID            uuid.UUID             `json:"id"`
	Name          *string               `json:"name" validate:"omitempty,min=1,max=200"`
	Description   *string               `json:"description" validate:"omitempty,max=2000"`
	Status        *entity.ProjectStatus `json:"status"`
	GroupID       *uuid.UUID            `json:"groupId"`
	ClearGroup    bool                  `json:"clearGroup"`
	AssignedUsers []uuid.UUID           `json:"assignedUsers"`
}

// CreateProject handles POST /projects.
func (h *ProjectHandler) CreateProject(c echo.Context) error {
	actorID, err := subject(c)
	if err != nil {
		return err
	}

	var req CreateProjectRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	project, err := h.projectUC.CreateProject(c.Request().Context(), &usecase.CreateProjectInput{
		ActorID:         actorID,
		Name:            req.Name,
		Description:     req.Description,
		Status:          req.Status,
		GroupID:         req.GroupID,
		AssignedUserIDs: req.AssignedUsers,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, project, "Project created successfully")
}

// ListProjects handles GET /projects.
func (h *ProjectHandler) ListProjects(c echo.Context) error {
	var query ScopedPageQuery
	if err := bind(c, &query); err != nil {
		return err
	}
	userID, err := scopedUser(c, query.UserID)
	if err != nil {
		return err
	}

	result, err := h.projectUC.ListProjects(c.Request().Context(), &usecase.ListInput{UserID: userID, Page: query.Page()})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, result)
}

// GetProject handles GET /projects/:id.
func (h *ProjectHandler) GetProject(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	project, err := h.projectUC.GetProject(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, project)
}

// UpdateProject handles PUT /projects and PUT /projects/:id.
func (h *ProjectHandler) UpdateProject(c echo.Context) error {
	var req UpdateProjectRequest
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

	project, err := h.projectUC.UpdateProject(c.Request().Context(), &usecase.UpdateProjectInput{
		ID:              req.ID,
		Name:            req.Name,
		Description:     req.Description,
		Status:          req.Status,
		GroupID:         req.GroupID,
		ClearGroup:      req.ClearGroup,
		AssignedUserIDs: req.AssignedUsers,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, project, "Project updated successfully")
}

// InactivateProject handles PATCH /project/:id/inactivate.
func (h *ProjectHandler) InactivateProject(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req ReasonRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	if err := h.projectUC.InactivateProject(c.Request().Context(), id, req.Reason); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusOK, "Project inactivated successfully")
}

// DeleteProject handles DELETE /projects/:id.
func (h *ProjectHandler) DeleteProject(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.projectUC.DeleteProject(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusOK, "Project deleted successfully")
}
