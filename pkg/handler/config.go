package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/memories-timeline/memories-backend/pkg/api"
	"github.com/memories-timeline/memories-backend/pkg/config"
	"github.com/memories-timeline/memories-backend/pkg/identity"
)

func RegisterConfigRoutes(engine *echo.Group) {
	if engine == nil {
		panic("engine is nil")
	}
	engine.GET(api.ConfigPath, getConfig)
	engine.GET(api.AuthMePath, authMe)
}

// GetConfig godoc
// @Summary      Get display configuration
// @ID           getConfig
// @Tags         config
// @Produce      json
// @Success      200 {object} api.ConfigResponse
// @Router       /config [get]
func getConfig(c echo.Context) error {
	app := config.Get().App
	return c.JSON(http.StatusOK, api.ConfigResponse{
		AppTitle:   app.Title,
		FooterText: app.Footer(),
	})
}

// AuthMe godoc
// @Summary      Get the current user
// @ID           authMe
// @Tags         config
// @Produce      json
// @Success      200 {object} api.IdentityResponse
// @Failure      401 {object} api.IdentityResponse
// @Router       /auth/me [get]
func authMe(c echo.Context) error {
	user, ok := identity.Get(c.Request().Context())
	if !ok {
		return c.JSON(http.StatusUnauthorized, api.IdentityResponse{Authenticated: false})
	}
	return c.JSON(http.StatusOK, api.IdentityResponse{Authenticated: true, Email: user})
}
