package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/memories-timeline/memories-backend/pkg/api"
	"github.com/memories-timeline/memories-backend/pkg/cache"
	"github.com/memories-timeline/memories-backend/pkg/dao"
	ce "github.com/memories-timeline/memories-backend/pkg/errors"
	"github.com/memories-timeline/memories-backend/pkg/identity"
	"github.com/memories-timeline/memories-backend/pkg/instrumentation"
	"github.com/rs/zerolog"
)

type MemoryHandler struct {
	DaoRegistry dao.DaoRegistry
	Cache       cache.Cache
	Metrics     *instrumentation.Metrics
}

func RegisterMemoryRoutes(engine *echo.Group, daoReg *dao.DaoRegistry, mediaCache cache.Cache, metrics *instrumentation.Metrics) {
	if engine == nil {
		panic("engine is nil")
	}
	if daoReg == nil {
		panic("daoReg is nil")
	}
	if mediaCache == nil {
		panic("mediaCache is nil")
	}
	h := MemoryHandler{
		DaoRegistry: *daoReg,
		Cache:       mediaCache,
		Metrics:     metrics,
	}

	engine.GET(api.MemoriesPath, h.listMemories)
	engine.POST(api.MemoriesPath, h.createMemory)
	engine.GET(api.MemoriesPath+"/:id", h.fetchMemory)
	engine.PATCH(api.MemoriesPath+"/:id", h.partialUpdateMemory)
}

// ListMemories godoc
// @Summary      List Memories
// @ID           listMemories
// @Description  Returns a page of memories, newest first, matching the given filters.
// @Tags         memories
// @Param        q query string false "Substring searched in content, caption, location and tags."
// @Param        location query string false "Substring of the location."
// @Param        startDate query string false "Inclusive lower bound of the memory date."
// @Param        endDate query string false "Inclusive upper bound of the memory date. A bare date covers the whole day."
// @Param        tags query string false "Comma separated tags, every one must match."
// @Param        limit query int false "Page size. Default value: `10`, maximum `100`."
// @Param        cursorDate query string false "memory_date of the last memory of the previous page."
// @Param        cursorId query string false "id of the last memory of the previous page."
// @Produce      json
// @Success      200 {object} api.MemoryCollectionResponse
// @Failure      400 {object} ce.ErrorResponse
// @Failure      401 {object} ce.ErrorResponse
// @Failure      500 {object} ce.ErrorResponse
// @Router       /memories [get]
func (h *MemoryHandler) listMemories(c echo.Context) error {
	filters, limit, err := ParseMemoryFilters(c)
	if err != nil {
		return ce.NewErrorResponse(http.StatusBadRequest, "Error parsing filters", err.Error())
	}

	resp, err := h.DaoRegistry.Memory.List(c.Request().Context(), filters, limit)
	if err != nil {
		return ce.NewErrorResponse(ce.HttpCodeForDaoError(err), "Error listing memories", err.Error())
	}
	return c.JSON(http.StatusOK, resp)
}

// CreateMemory godoc
// @Summary      Create Memory
// @ID           createMemory
// @Description  Creates a memory together with its assets.
// @Tags         memories
// @Accept       json
// @Produce      json
// @Param        body  body     api.MemoryCreateRequest  true  "request body"
// @Success      201  {object}  api.MemoryEnvelope
// @Failure      400 {object} ce.ErrorResponse
// @Failure      401 {object} ce.ErrorResponse
// @Failure      415 {object} ce.ErrorResponse
// @Failure      500 {object} ce.ErrorResponse
// @Router       /memories [post]
func (h *MemoryHandler) createMemory(c echo.Context) error {
	var req api.MemoryCreateRequest
	if err := (&echo.DefaultBinder{}).BindBody(c, &req); err != nil {
		return ce.NewErrorResponse(http.StatusBadRequest, "Error binding params", err.Error())
	}
	user, _ := identity.Get(c.Request().Context())

	resp, err := h.DaoRegistry.Memory.Create(c.Request().Context(), user, req)
	if err != nil {
		return ce.NewErrorResponse(ce.HttpCodeForDaoError(err), "Error creating memory", err.Error())
	}

	h.Metrics.RecordMemoryCreated()
	h.invalidateMedia(c)
	return c.JSON(http.StatusCreated, api.MemoryEnvelope{Memory: resp})
}

// FetchMemory godoc
// @Summary      Get Memory
// @ID           getMemory
// @Tags         memories
// @Produce      json
// @Param        id  path  string    true  "Memory ID."
// @Success      200   {object}  api.MemoryEnvelope
// @Failure      401 {object} ce.ErrorResponse
// @Failure      404 {object} ce.ErrorResponse
// @Failure      500 {object} ce.ErrorResponse
// @Router       /memories/{id} [get]
func (h *MemoryHandler) fetchMemory(c echo.Context) error {
	resp, err := h.DaoRegistry.Memory.Fetch(c.Request().Context(), c.Param("id"))
	if err != nil {
		return ce.NewErrorResponse(ce.HttpCodeForDaoError(err), "Error fetching memory", err.Error())
	}
	return c.JSON(http.StatusOK, api.MemoryEnvelope{Memory: resp})
}

// PartialUpdateMemory godoc
// @Summary      Partial Update Memory
// @ID           partialUpdateMemory
// @Description  Applies only the keys present in the body. A present assets key replaces every asset of the memory.
// @Tags         memories
// @Accept       json
// @Produce      json
// @Param        id  path  string    true  "Memory ID."
// @Param        body  body     api.MemoryUpdateRequest  true  "request body"
// @Success      200   {object}  api.MemoryEnvelope
// @Failure      400 {object} ce.ErrorResponse
// @Failure      401 {object} ce.ErrorResponse
// @Failure      404 {object} ce.ErrorResponse
// @Failure      415 {object} ce.ErrorResponse
// @Failure      500 {object} ce.ErrorResponse
// @Router       /memories/{id} [patch]
func (h *MemoryHandler) partialUpdateMemory(c echo.Context) error {
	var req api.MemoryUpdateRequest
	if err := (&echo.DefaultBinder{}).BindBody(c, &req); err != nil {
		return ce.NewErrorResponse(http.StatusBadRequest, "Error binding params", err.Error())
	}
	user, _ := identity.Get(c.Request().Context())

	// A body without known keys returns the current state untouched
	resp, err := h.DaoRegistry.Memory.Update(c.Request().Context(), c.Param("id"), user, req)
	if err != nil {
		return ce.NewErrorResponse(ce.HttpCodeForDaoError(err), "Error updating memory", err.Error())
	}

	if !req.Empty() {
		h.Metrics.RecordMemoryUpdated()
		h.invalidateMedia(c)
	}
	return c.JSON(http.StatusOK, api.MemoryEnvelope{Memory: resp})
}

func (h *MemoryHandler) invalidateMedia(c echo.Context) {
	if err := h.Cache.InvalidateMedia(c.Request().Context()); err != nil {
		zerolog.Ctx(c.Request().Context()).Warn().Err(err).Msg("Could not invalidate media cache")
	}
}

// ParseMemoryFilters reads the list query. A zero limit means the default page size.
func ParseMemoryFilters(c echo.Context) (api.MemoryFilters, int, error) {
	var (
		filters api.MemoryFilters
		limit   int
	)
	err := echo.QueryParamsBinder(c).
		String("q", &filters.Q).
		String("location", &filters.Location).
		String("startDate", &filters.StartDate).
		String("endDate", &filters.EndDate).
		String("tags", &filters.Tags).
		String("cursorDate", &filters.CursorDate).
		String("cursorId", &filters.CursorID).
		Int("limit", &limit).
		BindError()
	return filters, limit, err
}
