package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/jltforwarding/backoffice/internal/core/ports"
)

// UserHandler handles user lookup and account management.
type UserHandler struct {
	userService ports.UserService
}

func NewUserHandler(userService ports.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

type createUserRequest struct {
	FirstName     string  `json:"first_name" validate:"required"`
	MiddleName    *string `json:"middle_name"`
	LastName      string  `json:"last_name" validate:"required"`
	Role          string  `json:"role" validate:"required,oneof='Client' 'Account Specialist' 'Marketing' 'Human Resource'"`
	Email         string  `json:"email" validate:"required,email"`
	Password      string  `json:"password" validate:"required,min=8"`
	Address       string  `json:"address" validate:"required"`
	ContactNumber string  `json:"contact_number" validate:"required"`
	CompanyName   string  `json:"company_name" validate:"required"`
}

// GetByID returns a user resource by id.
//
// @Summary      Get a user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "User ID"
// @Success      200  {object}  handler.envelope
// @Failure      401  {object}  handler.envelope
// @Failure      404  {object}  handler.envelope
// @Router       /users/{id} [get]
func (h *UserHandler) GetByID(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid user id")
	}

	user, err := h.userService.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, "User retrieved successfully", user)
}

// Create registers a new user account. Restricted to Human Resource.
//
// @Summary      Create a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createUserRequest  true  "User details"
// @Success      201   {object}  handler.envelope
// @Failure      403   {object}  handler.envelope
// @Failure      409   {object}  handler.envelope
// @Failure      422   {object}  handler.envelope
// @Router       /users [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	user, err := h.userService.Create(c.Request().Context(), ports.CreateUserInput{
		FirstName:     req.FirstName,
		MiddleName:    req.MiddleName,
		LastName:      req.LastName,
		Role:          req.Role,
		Email:         req.Email,
		Password:      req.Password,
		Address:       req.Address,
		ContactNumber: req.ContactNumber,
		CompanyName:   req.CompanyName,
	})
	if err != nil {
		return err
	}

	return respond(c, http.StatusCreated, "User created successfully", user)
}
