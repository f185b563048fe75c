package identity

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echo_middleware "github.com/labstack/echo/v4/middleware"
	ce "github.com/memories-timeline/memories-backend/pkg/errors"
	"github.com/rs/zerolog"
)

// Middleware resolves the caller and stores it in the request context. Requests matched
// by optional carry on anonymously when no identity is found; all others get a 401.
func Middleware(resolver Resolver, optional echo_middleware.Skipper) echo.MiddlewareFunc {
	if resolver == nil {
		panic("resolver is nil")
	}
	if optional == nil {
		optional = echo_middleware.DefaultSkipper
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, err := resolver.Resolve(c.Request())
			if err != nil {
				if optional(c) {
					return next(c)
				}
				zerolog.Ctx(c.Request().Context()).Debug().Err(err).Msg("Rejected unauthenticated request")
				return ce.NewErrorResponse(http.StatusUnauthorized, "Unauthorized", "Authentication required")
			}

			ctx := WithUser(c.Request().Context(), user)
			logger := zerolog.Ctx(ctx).With().Str("user", user).Logger()
			c.SetRequest(c.Request().WithContext(logger.WithContext(ctx)))
			return next(c)
		}
	}
}
