// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// UserToken is the persisted record of an issued access token.
// A bearer token is only honoured while a matching, unexpired record exists.
type UserToken struct {
	ID        uuid.UUID // The unique ID for this token record.
	UserID    uuid.UUID // Owner of the token.
	Token     string    // The signed JWT exactly as handed to the client.
	ExpiresAt time.Time // After this instant the token is rejected.
	CreatedAt time.Time // When the token was issued.
}

// IsExpired reports whether the token is past its expiry at the given instant.
func (t *UserToken) IsExpired(now time.Time) bool {
	return now.After(t.ExpiresAt)
}

// UserOTP is the one-time code that lets an approved user set a password.
type UserOTP struct {
	ID        uuid.UUID // The unique ID for this OTP record.
	UserID    uuid.UUID // One OTP per user.
	OTP       string    // Six decimal digits.
	ExpiresAt time.Time // After this instant the code is rejected.
	CreatedAt time.Time // When the code was (re)generated.
}

// IsExpired reports whether the code is past its expiry at the given instant.
func (o *UserOTP) IsExpired(now time.Time) bool {
	return now.After(o.ExpiresAt)
}
