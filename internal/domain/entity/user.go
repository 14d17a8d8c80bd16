// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// User is the durable account record. It carries the fixed identity subset the
// auth core operates on (id, email, password hash) plus an opaque profile
// document owned by the embedding application. The core stores and returns the
// profile payload but never inspects it.
type User struct {
	ID           uuid.UUID       // The unique identifier assigned by the store.
	Email        string          // The login identifier, unique across all users.
	PasswordHash string          // The bcrypt hash of the password. Never the plaintext.
	Profile      json.RawMessage // Application-owned extension fields, stored verbatim.
	CreatedAt    time.Time       // Timestamp of when this account was created.
	UpdatedAt    time.Time       // Timestamp of the last modification to this account.
}
