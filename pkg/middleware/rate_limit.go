package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echo_middleware "github.com/labstack/echo/v4/middleware"
	"github.com/memories-timeline/memories-backend/pkg/config"
	ce "github.com/memories-timeline/memories-backend/pkg/errors"
	"github.com/memories-timeline/memories-backend/pkg/identity"
	"golang.org/x/time/rate"
)

// RateLimit throttles each user, or each client IP for anonymous requests, to the
// configured rate. A non positive rate disables limiting.
func RateLimit(cfg config.RateLimit) echo.MiddlewareFunc {
	if cfg.UploadsPerSecond <= 0 {
		return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = 1
	}
	store := echo_middleware.NewRateLimiterMemoryStoreWithConfig(echo_middleware.RateLimiterMemoryStoreConfig{
		Rate:  rate.Limit(cfg.UploadsPerSecond),
		Burst: burst,
	})
	return echo_middleware.RateLimiterWithConfig(echo_middleware.RateLimiterConfig{
		Store:               store,
		IdentifierExtractor: rateLimitIdentifier,
		ErrorHandler: func(c echo.Context, err error) error {
			return ce.NewErrorResponse(http.StatusForbidden, "Rate limit", err.Error())
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			return ce.NewErrorResponse(http.StatusTooManyRequests, "Too many requests", "Upload rate limit exceeded, try again shortly")
		},
	})
}

func rateLimitIdentifier(c echo.Context) (string, error) {
	if user, ok := identity.Get(c.Request().Context()); ok {
		return "user:" + user, nil
	}
	return "ip:" + c.RealIP(), nil
}
