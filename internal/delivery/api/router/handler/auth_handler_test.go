package handler

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"sapphire/internal/domain/entity"
	domainerrors "sapphire/internal/domain/errors"
	mockusecase "sapphire/internal/mocks/usecase"
	"sapphire/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAuthTestEcho(t *testing.T, principal *usecase.Principal) (*echo.Echo, *mockusecase.MockSessionUsecase, *mockusecase.MockUserUsecase) {
	t.Helper()
	sessions := mockusecase.NewMockSessionUsecase(t)
	users := mockusecase.NewMockUserUsecase(t)
	h := NewAuthHandler(AuthHandlerParams{SessionUC: sessions, UserUC: users, Logger: newDiscardLogger()})

	e := newTestEcho()
	e.POST("/sign-up", h.SignUp)
	e.POST("/login", h.Login)
	e.POST("/verify-otp", h.VerifyOTP)
	authed := e.Group("", asPrincipal(principal))
	authed.POST("/logout", h.Logout)
	authed.POST("/approve_user", h.ApproveUser)

	return e, sessions, users
}

func TestAuthHandler_Login(t *testing.T) {
	e, sessions, _ := newAuthTestEcho(t, &usecase.Principal{UserID: uuid.New()})
	expires := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	sessions.EXPECT().Login(mock.Anything, &usecase.LoginInput{Username: "ada", Password: "secret1"}).
		Return(&usecase.LoginOutput{AccessToken: "jwt", TokenType: "bearer", ExpiresAt: expires}, nil)

	rec := doRequest(e, http.MethodPost, "/login", `{"username":"ada","password":"secret1"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.True(t, env.Success)
	assert.Equal(t, "Login successful.", env.Message)

	var got LoginResponse
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, "jwt", got.AccessToken)
	assert.Equal(t, "bearer", got.TokenType)
	assert.True(t, expires.Equal(got.ExpiresAt))
}

func TestAuthHandler_LoginBadPassword(t *testing.T) {
	e, sessions, _ := newAuthTestEcho(t, &usecase.Principal{UserID: uuid.New()})
	sessions.EXPECT().Login(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrInvalidPassword)

	rec := doRequest(e, http.MethodPost, "/login", `{"username":"ada","password":"wrong!"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_PASSWORD", errorCode(t, rec))
}

func TestAuthHandler_SignUpValidation(t *testing.T) {
	e, _, _ := newAuthTestEcho(t, &usecase.Principal{UserID: uuid.New()})

	rec := doRequest(e, http.MethodPost, "/sign-up", `{"username":"ada","email":"not-an-email"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", errorCode(t, rec))
}

func TestAuthHandler_SignUp(t *testing.T) {
	e, _, users := newAuthTestEcho(t, &usecase.Principal{UserID: uuid.New()})
	users.EXPECT().SignUp(mock.Anything, mock.MatchedBy(func(in *usecase.SignUpInput) bool {
		return in.Username == "ada" && in.Email == "ada@example.com"
	})).Return(&entity.User{ID: uuid.New(), Username: "ada", Status: entity.StatusPending}, nil)

	rec := doRequest(e, http.MethodPost, "/sign-up", `{"username":"ada","email":"ada@example.com"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "User Register successfully. Pending Request from admin", decodeEnvelope(t, rec).Message)
}

func TestAuthHandler_VerifyOTPRejectsShortCode(t *testing.T) {
	e, _, _ := newAuthTestEcho(t, &usecase.Principal{UserID: uuid.New()})

	rec := doRequest(e, http.MethodPost, "/verify-otp", `{"email":"ada@example.com","otp":"12a","new_password":"secret1"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAuthHandler_Logout(t *testing.T) {
	subject := uuid.New()
	e, sessions, _ := newAuthTestEcho(t, &usecase.Principal{UserID: subject})
	sessions.EXPECT().Logout(mock.Anything, subject).Return(domainerrors.ErrTokenNotFound).Once()

	rec := doRequest(e, http.MethodPost, "/logout", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "TOKEN_NOT_FOUND", errorCode(t, rec))
}

func TestAuthHandler_ApproveUserUsesSubjectAsApprover(t *testing.T) {
	approver := uuid.New()
	target := uuid.New()
	group := uuid.New()
	e, _, users := newAuthTestEcho(t, &usecase.Principal{UserID: approver, Role: entity.RoleSuperAdmin})
	users.EXPECT().ApproveUser(mock.Anything, mock.MatchedBy(func(in *usecase.ApproveUserInput) bool {
		return in.ApproverID == approver && in.UserID == target && len(in.GroupIDs) == 1 && in.GroupIDs[0] == group
	})).Return(&entity.User{ID: target, IsApproved: true}, nil)

	rec := doRequest(e, http.MethodPost, "/approve_user",
		`{"user_id":"`+target.String()+`","groups":["`+group.String()+`"],"role":"User"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
}
