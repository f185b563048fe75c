package middleware

import "github.com/labstack/echo/v4"

const HeaderContentSecurityPolicy = "Content-Security-Policy"

// ContentSecurityPolicy lets the UI load images and media from https sources and inline data URLs
const ContentSecurityPolicy = "default-src 'self'; img-src 'self' data: https:; media-src 'self' https:;"

func SecurityHeaders(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		c.Response().Header().Set(HeaderContentSecurityPolicy, ContentSecurityPolicy)
		return next(c)
	}
}
