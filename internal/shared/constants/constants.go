// Package constants defines shared context keys and limits.
package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// ContextKeyOwnerID is the gin context key carrying the authenticated
	// owner (fleet operator) id.
	ContextKeyOwnerID = "owner_id"

	// ContextKeyActorID is the gin context key carrying the authenticated
	// user id performing the request.
	ContextKeyActorID = "actor_id"

	// MaxNoteLength bounds free-form ticket notes and report text.
	MaxNoteLength = 5000

	// DefaultPageSize is used when a list request does not specify one.
	DefaultPageSize = 20

	// MaxPageSize caps list page sizes.
	MaxPageSize = 100
)
