// Package service declares the ports the usecases need from infrastructure:
// hashing, tokens, codes, QR rendering, rate limiting, events and the change feed.
package service

// PasswordHasher hashes account passwords. An empty stored hash never matches,
// which keeps users that are still waiting for their OTP out of Login.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Check(password, hash string) bool
}
