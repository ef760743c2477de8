package handler

import "github.com/labstack/echo/v4"

// envelope is the canonical response wrapper: every endpoint, success or
// failure, renders {message, data, code, error}. The error field is a boolean
// flag, not the error text.
type envelope struct {
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
	Code    int    `json:"code"`
	Error   bool   `json:"error"`
}

// respond renders a success envelope with the given HTTP status.
func respond(c echo.Context, status int, message string, data any) error {
	return c.JSON(status, envelope{
		Message: message,
		Data:    data,
		Code:    status,
		Error:   false,
	})
}
