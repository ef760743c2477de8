package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jltforwarding/backoffice/internal/core/ports"
)

// DashboardHandler serves the role-shaped dashboard payload.
type DashboardHandler struct {
	dashboardService ports.DashboardService
}

func NewDashboardHandler(dashboardService ports.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// Get returns the dashboard payload for the authenticated user. The shape of
// the data field depends on the caller's role; consumers classify it by which
// keys are present.
//
// @Summary      Get dashboard data
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  handler.envelope
// @Failure      401  {object}  handler.envelope
// @Router       /dashboard [get]
func (h *DashboardHandler) Get(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	data, err := h.dashboardService.ForUser(c.Request().Context(), user)
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, "Dashboard data retrieved successfully", data)
}
