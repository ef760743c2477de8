package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/jltforwarding/backoffice/internal/core/domain"
	"github.com/jltforwarding/backoffice/internal/core/ports"
)

// AuthHandler handles login and logout.
type AuthHandler struct {
	authService ports.AuthService
	audit       ports.AuditDispatcher
}

func NewAuthHandler(authService ports.AuthService, audit ports.AuditDispatcher) *AuthHandler {
	return &AuthHandler{authService: authService, audit: audit}
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginData struct {
	User  *domain.User `json:"user"`
	Token string       `json:"token"`
}

// Login authenticates a user and returns a bearer token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  handler.envelope
// @Failure      401   {object}  handler.envelope
// @Failure      422   {object}  handler.envelope
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	token, user, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		// A missing account and a wrong password are indistinguishable to the caller.
		if errors.Is(err, domain.ErrUserNotFound) {
			err = domain.ErrInvalidCredentials
		}
		h.audit.Enqueue(domain.AuditEvent{
			Email:     req.Email,
			Action:    domain.AuditLoginFailed,
			Timestamp: time.Now().UTC(),
		})
		return err
	}

	h.audit.Enqueue(domain.AuditEvent{
		UserID:    user.ID,
		Email:     user.Email,
		Action:    domain.AuditLogin,
		Timestamp: time.Now().UTC(),
	})

	return respond(c, http.StatusOK, "Logged in successfully", loginData{User: user, Token: token})
}

// Logout revokes the caller's session. Idempotent: logging out an already
// revoked session still succeeds.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  handler.envelope
// @Failure      401  {object}  handler.envelope
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	if err := h.authService.Logout(c.Request().Context(), ctxSessionID(c)); err != nil {
		return err
	}

	h.audit.Enqueue(domain.AuditEvent{
		UserID:    user.ID,
		Email:     user.Email,
		Action:    domain.AuditLogout,
		Timestamp: time.Now().UTC(),
	})

	return respond(c, http.StatusOK, "Logged out successfully", nil)
}
