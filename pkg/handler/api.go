package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	echo_middleware "github.com/labstack/echo/v4/middleware"
	spec_api "github.com/memories-timeline/memories-backend/api"
	"github.com/memories-timeline/memories-backend/pkg/api"
	"github.com/memories-timeline/memories-backend/pkg/assets"
	"github.com/memories-timeline/memories-backend/pkg/cache"
	"github.com/memories-timeline/memories-backend/pkg/config"
	"github.com/memories-timeline/memories-backend/pkg/dao"
	"github.com/memories-timeline/memories-backend/pkg/identity"
	"github.com/memories-timeline/memories-backend/pkg/instrumentation"
	"github.com/memories-timeline/memories-backend/pkg/middleware"
	"github.com/rs/zerolog/log"
)

// nolint: lll
// @title MemoriesBackend
// @version  v1.0.0
// @description API of the shared memories timeline
// @BasePath /api/

// bodyLimitSlack leaves room for multipart framing around an upload of the maximum size
const bodyLimitSlack = 1

// Dependencies are the collaborators the API routes are built from
type Dependencies struct {
	DaoRegistry *dao.DaoRegistry
	Assets      assets.AssetStore
	Cache       cache.Cache
	Resolver    identity.Resolver
	Metrics     *instrumentation.Metrics
}

func RegisterRoutes(engine *echo.Echo, deps Dependencies) {
	if deps.Cache == nil {
		deps.Cache = cache.NewNoOpCache()
	}

	group := engine.Group(api.RootPath, identity.Middleware(deps.Resolver, anonymousAllowed))
	group.GET(api.OpenAPIPath, openapi)

	RegisterConfigRoutes(group)
	RegisterMemoryRoutes(group, deps.DaoRegistry, deps.Cache, deps.Metrics)
	RegisterMediaRoutes(group, deps.DaoRegistry, deps.Cache)
	RegisterAssetRoutes(group, deps.Assets,
		middleware.RateLimit(config.Get().RateLimit),
		echo_middleware.BodyLimit(strconv.Itoa(config.Get().Assets.MaxUploadMB+bodyLimitSlack)+"M"),
	)

	data, err := json.MarshalIndent(engine.Routes(), "", "  ")
	if err == nil {
		log.Debug().Msg(string(data))
	}
}

// anonymousAllowed lists the /api requests that may proceed without an identity.
// Unmatched paths are let through so they end in a 404 rather than a 401.
func anonymousAllowed(c echo.Context) bool {
	switch c.Path() {
	case api.RootPath + api.ConfigPath,
		api.RootPath + api.OpenAPIPath,
		api.RootPath + api.AuthMePath,
		api.RootPath,
		api.RootPath + "/*":
		return true
	}
	return false
}

func RegisterPing(engine *echo.Echo) {
	engine.GET("/ping", ping)
	engine.GET("/ping/", ping)
}

func ping(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"message": "pong",
	})
}

func openapi(c echo.Context) error {
	var doc, err = spec_api.Openapi()
	if err != nil {
		return err
	}
	return c.JSONBlob(http.StatusOK, doc)
}
