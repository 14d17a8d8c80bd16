package entity

import (
	"time"

	"github.com/google/uuid"
)

// Auth event types published after state-changing operations.
const (
	EventUserRegistered = "user.registered"
	EventUserLoggedIn   = "user.logged_in"
	EventUserLoggedOut  = "user.logged_out"
)

// AuthEvent is the notification emitted after a registration, login or logout.
// Consumers subscribe to these for welcome mails, session dashboards and the
// like; the auth core itself never reads them back.
type AuthEvent struct {
	Type       string    `json:"type"`
	UserID     uuid.UUID `json:"user_id"`
	Email      string    `json:"email,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}
