// Package constants holds identifiers shared between configuration and infrastructure.
package constants

// Deployment environments
const (
	EnvLocal   = "local"
	EnvDevelop = "develop"
)

// Pub/Sub providers
const (
	PubSubProviderNoop   = "noop"
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Context keys set by the auth middleware on echo.Context
const (
	ContextKeyUserID   = "userID"
	ContextKeyUsername = "username"
	ContextKeyRole     = "role"
)
