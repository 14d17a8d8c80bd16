package service

import (
	"context"

	"gatekeeper/internal/domain/entity"
)

// EventPublisher defines the interface for publishing auth events to a message queue.
// Publishing is best-effort: the auth core logs a failed publish but never fails
// the operation that triggered it.
type EventPublisher interface {
	// PublishAuthEvent publishes an auth event for async consumers.
	PublishAuthEvent(ctx context.Context, event *entity.AuthEvent) error

	// Close releases any resources held by the publisher.
	Close() error
}
