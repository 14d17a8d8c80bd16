// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"encoding/json"

	"gatekeeper/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new user. Profile is
// an opaque document owned by the embedding application; the core stores it
// without looking inside.
type RegisterInput struct {
	Email    string
	Password string
	Profile  json.RawMessage
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// RegisterOutput returns the newly created user.
type RegisterOutput struct {
	User *entity.User
}

// LoginOutput returns the issued access token after a successful login.
type LoginOutput struct {
	User        *entity.User
	AccessToken *entity.AccessToken
}

// AuthUsecase defines the interface for the authentication core.
// This is the contract the delivery layer (API handlers, guard middleware)
// depends on.
type AuthUsecase interface {
	// Register creates a new account from a login identifier and password.
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)

	// Login verifies credentials and issues a fresh access token. Concurrent
	// logins for the same user each get their own independent token.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// IsAuthenticated reports whether the (user id, token) pair names a live
	// session. This is the hot path: a single cache lookup, no durable-store
	// round trip.
	IsAuthenticated(ctx context.Context, userID uuid.UUID, token string) (bool, error)

	// Logout revokes one session. Revoking an unknown or already-expired pair
	// is a silent success.
	Logout(ctx context.Context, userID uuid.UUID, token string) error

	// LogoutAll revokes every live session of the user.
	LogoutAll(ctx context.Context, userID uuid.UUID) error

	// GetUser retrieves a user by ID, for protected profile reads.
	GetUser(ctx context.Context, userID uuid.UUID) (*entity.User, error)
}
