package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/memories-timeline/memories-backend/pkg/config"
)

// Adds the request Id to the general context, generating one when the client sent none
func AddRequestId(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestId := c.Request().Header.Get(config.HeaderRequestId)
		if requestId == "" {
			requestId = uuid.NewString()
			c.Request().Header.Set(config.HeaderRequestId, requestId)
		}
		c.Set(config.HeaderRequestId, requestId)
		c.Response().Header().Set(config.HeaderRequestId, requestId)
		return next(c)
	}
}
