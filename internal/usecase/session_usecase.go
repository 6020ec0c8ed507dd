package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// LoginInput defines the credentials for a password login.
type LoginInput struct {
	Username string
	Password string
}

// LoginOutput carries the bearer token handed to the client.
type LoginOutput struct {
	AccessToken string
	TokenType   string
	ExpiresAt   time.Time
}

// SessionUsecase issues, validates and revokes persisted access tokens.
type SessionUsecase interface {
	// Login returns the user's unexpired token if there is one, otherwise issues a new one.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// Logout deletes every token of the user.
	Logout(ctx context.Context, userID uuid.UUID) error

	// Authenticate verifies the token signature and its persisted record.
	Authenticate(ctx context.Context, token string) (*Principal, error)
}
