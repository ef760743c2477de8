package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jltforwarding/backoffice/internal/core/domain"
)

// ctxUser extracts the session user injected by the Auth middleware and
// performs a fast-fail check before any service call: a request reaching an
// authenticated handler without a user means the middleware did not run.
func ctxUser(c echo.Context) (*domain.User, error) {
	user, _ := c.Get("user").(*domain.User)
	if user == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return user, nil
}

// ctxSessionID extracts the session id bound to the bearer token.
func ctxSessionID(c echo.Context) string {
	sessionID, _ := c.Get("session_id").(string)
	return sessionID
}
