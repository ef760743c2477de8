package middleware

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/jltforwarding/backoffice/internal/api/metrics"
	"github.com/jltforwarding/backoffice/internal/core/domain"
	"github.com/jltforwarding/backoffice/internal/core/ports"
)

// Auth validates the bearer token and injects the session user into context.
// A structurally valid JWT is still rejected when its session record no longer
// exists — logout revokes sessions server-side. That rejection is the moment a
// revoked or expired session becomes observable, so it lands in the audit
// trail too.
func Auth(jwtSecret string, sessions ports.SessionRepository, audit ports.AuditDispatcher) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			sessionID, _ := claims["jti"].(string)
			if sessionID == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			user, err := sessions.Find(c.Request().Context(), sessionID)
			if err != nil {
				email, _ := claims["email"].(string)
				var userID int64
				if sub, ok := claims["sub"].(string); ok {
					userID, _ = strconv.ParseInt(sub, 10, 64)
				}
				audit.Enqueue(domain.AuditEvent{
					UserID:    userID,
					Email:     email,
					Action:    domain.AuditSessionRevoked,
					Timestamp: time.Now().UTC(),
				})
				metrics.SessionsRevokedTotal.WithLabelValues("expired").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "session revoked or expired")
			}

			c.Set("user", user)
			c.Set("role", user.Role)
			c.Set("session_id", sessionID)

			return next(c)
		}
	}
}
