package validator

import (
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signUpRequest struct {
	Username string `json:"username" validate:"required,min=3"`
	Email    string `json:"email" validate:"required,email"`
	Limit    int    `query:"limit" validate:"omitempty,min=1,max=100"`
}

func TestValidator_Validate(t *testing.T) {
	v := New()

	require.NoError(t, v.Validate(&signUpRequest{Username: "ada", Email: "ada@example.com"}))

	err := v.Validate(&signUpRequest{Username: "ad", Email: "nope", Limit: 500})
	require.Error(t, err)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, []FieldError{
		{Field: "username", Rule: "min", Param: "3"},
		{Field: "email", Rule: "email"},
		{Field: "limit", Rule: "max", Param: "100"},
	}, verr.Fields)

	assert.Equal(t, http.StatusBadRequest, verr.HTTPCode())
	assert.Equal(t, "VALIDATION_FAILED", verr.ErrorCode())
	assert.Equal(t, "validation failed: username:min, email:email, limit:max", verr.Details())
}

func TestValidator_RejectsNonStruct(t *testing.T) {
	err := New().Validate("not a struct")

	var verr *ValidationError
	assert.Error(t, err)
	assert.False(t, errors.As(err, &verr))
}
