package backoffice

import "context"

// GuardAction is what a guard decided to do with a navigation attempt.
type GuardAction int

const (
	// ActionAllow renders the guarded content.
	ActionAllow GuardAction = iota
	// ActionRedirect sends the caller to Decision.RedirectTo.
	ActionRedirect
	// ActionDeny renders the guard's configured fallback in place.
	ActionDeny
)

// Decision is a guard's verdict for one navigation attempt.
type Decision struct {
	Action     GuardAction
	RedirectTo string
}

// Routes guards redirect to.
const (
	RootPath         = "/"
	LoginPath        = "/login"
	UnauthorizedPath = "/unauthorized"
)

// GuestGuard gates routes reserved for unauthenticated visitors (login,
// password reset). Authenticated sessions are sent back to the root.
// Stateless: evaluate on every navigation.
type GuestGuard struct {
	Session *SessionStore
}

func (g GuestGuard) Evaluate() Decision {
	if g.Session.IsAuthenticated() {
		return Decision{Action: ActionRedirect, RedirectTo: RootPath}
	}
	return Decision{Action: ActionAllow}
}

// ProtectedGuard gates routes requiring authentication. With RefreshUser set
// it refetches the profile before allowing; a failed refetch is non-fatal and
// the cached identity stands — the session is never torn down here. (If the
// failure was a 401, the client has already cleared the session; the next
// evaluation redirects to login.)
type ProtectedGuard struct {
	Session     *SessionStore
	Client      *Client
	RefreshUser bool
}

func (g ProtectedGuard) Evaluate(ctx context.Context) Decision {
	if !g.Session.IsAuthenticated() {
		return Decision{Action: ActionRedirect, RedirectTo: LoginPath}
	}

	if g.RefreshUser && g.Client != nil {
		if _, err := g.Client.RefreshCurrentUser(ctx); err != nil {
			g.Client.log.Error().Err(err).Msg("failed to refresh user data")
		}
	}

	return Decision{Action: ActionAllow}
}

// RoleGuard gates routes on role membership. A missing identity redirects to
// login; a disallowed role either denies in place (when Fallback is set) or
// redirects to RedirectTo, defaulting to the unauthorized route. Synchronous —
// no fetches, evaluated against the cached identity.
type RoleGuard struct {
	Session    *SessionStore
	Allowed    []Role
	RedirectTo string
	// Fallback selects ActionDeny over a redirect, for callers that render
	// an in-place "no access" view.
	Fallback bool
}

func (g RoleGuard) Evaluate() Decision {
	identity := g.Session.User()
	if identity == nil {
		return Decision{Action: ActionRedirect, RedirectTo: LoginPath}
	}

	for _, role := range g.Allowed {
		if identity.Role == role {
			return Decision{Action: ActionAllow}
		}
	}

	if g.Fallback {
		return Decision{Action: ActionDeny}
	}

	redirectTo := g.RedirectTo
	if redirectTo == "" {
		redirectTo = UnauthorizedPath
	}
	return Decision{Action: ActionRedirect, RedirectTo: redirectTo}
}
