package ports

import (
	"context"
	"time"

	"github.com/jltforwarding/backoffice/internal/core/domain"
)

// SessionRepository persists active sessions keyed by session id. A bearer
// token is only honoured while its session record exists, so deleting the
// record revokes the token immediately regardless of its expiry claim.
type SessionRepository interface {
	// Save stores the session's user snapshot with the given time-to-live.
	Save(ctx context.Context, sessionID string, user *domain.User, ttl time.Duration) error
	// Find returns the user snapshot for an active session, or
	// domain.ErrSessionNotFound when the session was revoked or expired.
	Find(ctx context.Context, sessionID string) (*domain.User, error)
	// Delete revokes a session. Deleting an absent session is a no-op.
	Delete(ctx context.Context, sessionID string) error
}
