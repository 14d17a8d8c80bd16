// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrCacheUnavailable is returned when the cache backend cannot be reached.
// Callers on the authentication hot path must treat it as "not authenticated";
// it is never mapped to a credential error.
var ErrCacheUnavailable = errors.New("token cache unavailable")

// TokenCache defines the operations over the ephemeral session store. The cache
// is the source of truth for session validity: a token is valid if and only if
// the (user id, token) pair is present and unexpired. There is no durable
// session table behind it.
type TokenCache interface {
	// Put stores the pair with the given time-to-live. Overwrites silently if
	// the pair is already present.
	Put(ctx context.Context, userID uuid.UUID, token string, ttl time.Duration) error

	// Exists reports whether the pair is present and unexpired.
	Exists(ctx context.Context, userID uuid.UUID, token string) (bool, error)

	// Delete removes the pair. Deleting an absent pair is not an error.
	Delete(ctx context.Context, userID uuid.UUID, token string) error

	// DeleteAll removes every token held by the user, ending all their sessions.
	DeleteAll(ctx context.Context, userID uuid.UUID) error
}
