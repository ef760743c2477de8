package domain

import "time"

// Audit actions recorded for the session lifecycle.
const (
	AuditLogin          = "login"
	AuditLoginFailed    = "login_failed"
	AuditLogout         = "logout"
	AuditSessionRevoked = "session_revoked"
)

// AuditEvent records a single session-lifecycle action for a user.
type AuditEvent struct {
	UserID    int64
	Email     string
	Action    string
	Timestamp time.Time
}
