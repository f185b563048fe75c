package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/memories-timeline/memories-backend/pkg/api"
	"github.com/memories-timeline/memories-backend/pkg/cache"
	"github.com/memories-timeline/memories-backend/pkg/dao"
	ce "github.com/memories-timeline/memories-backend/pkg/errors"
	"github.com/rs/zerolog"
)

type MediaHandler struct {
	DaoRegistry dao.DaoRegistry
	Cache       cache.Cache
}

func RegisterMediaRoutes(engine *echo.Group, daoReg *dao.DaoRegistry, mediaCache cache.Cache) {
	if engine == nil {
		panic("engine is nil")
	}
	if daoReg == nil {
		panic("daoReg is nil")
	}
	if mediaCache == nil {
		panic("mediaCache is nil")
	}
	h := MediaHandler{
		DaoRegistry: *daoReg,
		Cache:       mediaCache,
	}
	engine.GET(api.MediaPath, h.listMedia)
}

// ListMedia godoc
// @Summary      List Media
// @ID           listMedia
// @Description  Returns every asset once, newest memory first.
// @Tags         media
// @Produce      json
// @Success      200 {object} api.MediaCollectionResponse
// @Failure      401 {object} ce.ErrorResponse
// @Failure      500 {object} ce.ErrorResponse
// @Router       /all-media [get]
func (h *MediaHandler) listMedia(c echo.Context) error {
	ctx := c.Request().Context()
	logger := zerolog.Ctx(ctx)

	cached, err := h.Cache.GetMedia(ctx)
	if err == nil && cached != nil {
		return c.JSON(http.StatusOK, cached)
	}
	if err != nil && !errors.Is(err, cache.ErrNotFound) {
		logger.Warn().Err(err).Msg("Could not read media cache")
	}

	resp, err := h.DaoRegistry.Memory.ListMedia(ctx)
	if err != nil {
		return ce.NewErrorResponse(ce.HttpCodeForDaoError(err), "Error listing media", err.Error())
	}

	if err := h.Cache.SetMedia(ctx, resp); err != nil {
		logger.Warn().Err(err).Msg("Could not write media cache")
	}
	return c.JSON(http.StatusOK, resp)
}
