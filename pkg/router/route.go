package router

import (
	"net/http"
	"time"

	"github.com/content-services/lecho/v3"
	"github.com/labstack/echo/v4"
	echo_middleware "github.com/labstack/echo/v4/middleware"
	"github.com/memories-timeline/memories-backend/pkg/config"
	"github.com/memories-timeline/memories-backend/pkg/handler"
	"github.com/memories-timeline/memories-backend/pkg/instrumentation"
	"github.com/memories-timeline/memories-backend/pkg/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// ConfigureEcho builds the public server. With a nil deps only the ping route is registered.
func ConfigureEcho(deps *handler.Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	// Add global middlewares
	echoLogger := lecho.From(log.Logger,
		lecho.WithTimestamp(),
		lecho.WithCaller(),
	)

	e.Use(middleware.AddRequestId)
	e.Use(lecho.Middleware(lecho.Config{
		Logger:              echoLogger,
		RequestIDHeader:     config.HeaderRequestId,
		RequestIDKey:        config.RequestIdLoggingKey,
		Skipper:             config.SkipLogging,
		RequestLatencyLevel: zerolog.WarnLevel,
		RequestLatencyLimit: 500 * time.Millisecond,
	}))
	e.Use(middleware.ExtractStatus) // Must be after lecho
	e.Use(echo_middleware.Recover())
	e.Use(middleware.SecurityHeaders)
	if origins := config.Get().Cors.AllowedOrigins; len(origins) > 0 {
		e.Use(echo_middleware.CORSWithConfig(echo_middleware.CORSConfig{
			AllowOrigins: origins,
			AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodOptions},
		}))
	}
	e.Use(middleware.EnforceJSONContentType)
	e.Use(middleware.LogServerErrorRequest)

	// Add routes
	handler.RegisterPing(e)
	if deps != nil {
		handler.RegisterRoutes(e, *deps)
	}

	// Set error handler
	e.HTTPErrorHandler = config.CustomHTTPErrorHandler
	return e
}

func ConfigureEchoWithMetrics(deps handler.Dependencies) *echo.Echo {
	e := ConfigureEcho(&deps)
	if deps.Metrics != nil {
		e.Use(middleware.CreateMetricsMiddleware(deps.Metrics))
	}
	return e
}

// ConfigureMetricsEcho builds the server exposing the prometheus registry on the metrics path
func ConfigureMetricsEcho(metrics *instrumentation.Metrics) *echo.Echo {
	e := ConfigureEcho(nil)
	e.Add(http.MethodGet, config.Get().Metrics.Path, echo.WrapHandler(promhttp.HandlerFor(
		metrics.Registry(),
		promhttp.HandlerOpts{
			// Opt into OpenMetrics to support exemplars.
			EnableOpenMetrics: true,
			// Pass custom registry
			Registry: metrics.Registry(),
		},
	)))
	return e
}
