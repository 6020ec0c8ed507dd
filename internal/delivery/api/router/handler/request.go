package handler

import (
	"sapphire/internal/delivery/api/middleware"
	"sapphire/internal/domain/entity"
	domainerrors "sapphire/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

var errInvalidBodyID = domainerrors.ErrInvalidID.WithDetails("id")

// PageQuery is the skip/limit window accepted by every listing.
type PageQuery struct {
	Skip  int `query:"skip" validate:"min=0"`
	Limit int `query:"limit" validate:"omitempty,min=1,max=100"`
}

// Page converts the query to a normalized entity.Page.
func (q PageQuery) Page() entity.Page {
	return entity.Page{Skip: q.Skip, Limit: q.Limit}.Normalize()
}

// ScopedPageQuery is a listing that may be evaluated for another user.
type ScopedPageQuery struct {
	PageQuery
	UserID string `query:"user_id" validate:"omitempty,uuid"`
}

// ReasonRequest is the body of the inactivate endpoints.
type ReasonRequest struct {
	Reason string `json:"reason" validate:"max=500"`
}

// bind decodes and validates the request into req.
func bind(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("malformed request"))
	}

	return errors.WithStack(c.Validate(req))
}

// pathID parses a UUID path parameter.
func pathID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, errors.WithStack(domainerrors.ErrInvalidID.WithDetails(name))
	}

	return id, nil
}

// subject returns the authenticated caller's id.
func subject(c echo.Context) (uuid.UUID, error) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return uuid.Nil, errors.WithStack(domainerrors.ErrUnauthorized)
	}

	return userID, nil
}

// scopedUser is the user_id query parameter, defaulting to the caller.
func scopedUser(c echo.Context, raw string) (uuid.UUID, error) {
	if raw == "" {
		return subject(c)
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, errors.WithStack(domainerrors.ErrInvalidID.WithDetails("user_id"))
	}

	return id, nil
}
