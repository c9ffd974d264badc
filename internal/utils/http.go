package utils

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Response wraps every successful JSON body
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Code    int    `json:"code,omitempty"`
}

// SuccessResponse writes data inside the success envelope
func SuccessResponse(c echo.Context, statusCode int, message string, data interface{}) error {
	return c.JSON(statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// ErrorJSON writes the error envelope. An empty message falls back to the
// status text.
func ErrorJSON(c echo.Context, statusCode int, message string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}
	return c.JSON(statusCode, ErrorResponse{
		Error: message,
		Code:  statusCode,
	})
}

func BadRequestResponse(c echo.Context, message string) error {
	return ErrorJSON(c, http.StatusBadRequest, message)
}

func UnauthorizedResponse(c echo.Context, message string) error {
	return ErrorJSON(c, http.StatusUnauthorized, message)
}

func NotFoundResponse(c echo.Context, message string) error {
	return ErrorJSON(c, http.StatusNotFound, message)
}

func InternalServerErrorResponse(c echo.Context, message string) error {
	return ErrorJSON(c, http.StatusInternalServerError, message)
}
