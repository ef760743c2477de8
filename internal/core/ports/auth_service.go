package ports

import (
	"context"

	"github.com/jltforwarding/backoffice/internal/core/domain"
)

// AuthService implements the session lifecycle: credential verification,
// bearer-token minting, and revocation.
type AuthService interface {
	// Login verifies the credentials and returns a bearer token plus the
	// authenticated user. The token stays valid until it expires or Logout
	// revokes it.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	// Logout revokes the session identified by sessionID. Revoking an
	// already-revoked session is not an error.
	Logout(ctx context.Context, sessionID string) error
}
