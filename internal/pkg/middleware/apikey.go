package middleware

import (
	"crypto/subtle"

	"github.com/labstack/echo/v4"
	"github.com/piresc/sparkrides/internal/utils"
)

const (
	APIKeyHeader = "X-API-Key"
)

// ValidateAdminKey guards operator endpoints. With no key configured the
// endpoints do not exist and answer 404.
func ValidateAdminKey(adminKey string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if adminKey == "" {
				return utils.NotFoundResponse(c, "")
			}

			apiKey := c.Request().Header.Get(APIKeyHeader)
			if apiKey == "" {
				return utils.UnauthorizedResponse(c, "API key is required")
			}
			if subtle.ConstantTimeCompare([]byte(apiKey), []byte(adminKey)) != 1 {
				return utils.UnauthorizedResponse(c, "Invalid API key")
			}

			return next(c)
		}
	}
}
