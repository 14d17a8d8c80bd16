// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// AccessToken represents a single live session. It exists only in the cache;
// a token is valid exactly while the cache holds the (user id, token) pair.
// A user may hold several tokens at once, one per device.
type AccessToken struct {
	UserID    uuid.UUID // The user this token belongs to.
	Token     string    // The opaque high-entropy bearer value.
	ExpiresAt time.Time // When the cache will drop the token unless revoked earlier.
}
