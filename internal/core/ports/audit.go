package ports

import (
	"context"

	"github.com/jltforwarding/backoffice/internal/core/domain"
)

// AuditDispatcher accepts audit events for asynchronous persistence. Producers
// (handlers, middleware) enqueue and move on; they never block on storage.
type AuditDispatcher interface {
	Enqueue(event domain.AuditEvent)
}

// AuditService records session-lifecycle events.
type AuditService interface {
	Record(ctx context.Context, event domain.AuditEvent) error
}

// AuditRepository persists audit events.
type AuditRepository interface {
	Insert(ctx context.Context, event domain.AuditEvent) error
}
