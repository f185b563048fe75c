package handler

import (
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/memories-timeline/memories-backend/pkg/api"
	"github.com/memories-timeline/memories-backend/pkg/assets"
	"github.com/memories-timeline/memories-backend/pkg/config"
	ce "github.com/memories-timeline/memories-backend/pkg/errors"
	"github.com/rs/zerolog"
)

const uploadFormField = "file"

type AssetHandler struct {
	Assets assets.AssetStore
}

// RegisterAssetRoutes adds the upload and download routes. uploadLimits run only on uploads.
func RegisterAssetRoutes(engine *echo.Group, store assets.AssetStore, uploadLimits ...echo.MiddlewareFunc) {
	if engine == nil {
		panic("engine is nil")
	}
	if store == nil {
		panic("store is nil")
	}
	h := AssetHandler{Assets: store}

	engine.POST(api.AssetsPath, h.uploadAsset, uploadLimits...)
	engine.GET(api.AssetsPath+"/*", h.fetchAsset)
}

// UploadAsset godoc
// @Summary      Upload Asset
// @ID           uploadAsset
// @Description  Stores a file and, for raster images, a JPEG thumbnail.
// @Tags         assets
// @Accept       mpfd
// @Produce      json
// @Param        file formData file true "file to upload"
// @Success      200 {object} api.UploadResponse
// @Failure      400 {object} ce.ErrorResponse
// @Failure      401 {object} ce.ErrorResponse
// @Failure      413 {object} ce.ErrorResponse
// @Failure      415 {object} ce.ErrorResponse
// @Failure      429 {object} ce.ErrorResponse
// @Failure      502 {object} ce.ErrorResponse
// @Router       /assets [post]
func (h *AssetHandler) uploadAsset(c echo.Context) error {
	fileHeader, err := c.FormFile(uploadFormField)
	if err != nil {
		return ce.NewErrorResponse(http.StatusBadRequest, "Error uploading asset", "No file uploaded")
	}

	maxBytes := config.Get().Assets.MaxUploadBytes()
	if maxBytes > 0 && fileHeader.Size > maxBytes {
		return ce.NewErrorResponse(http.StatusRequestEntityTooLarge, "Error uploading asset",
			"File exceeds "+strconv.Itoa(config.Get().Assets.MaxUploadMB)+" MB limit")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return ce.NewErrorResponse(http.StatusBadRequest, "Error uploading asset", err.Error())
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return ce.NewErrorResponse(http.StatusBadRequest, "Error uploading asset", err.Error())
	}

	result, err := h.Assets.Upload(c.Request().Context(), assets.UploadRequest{
		Data:        data,
		FileName:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get(echo.HeaderContentType),
	})
	if err != nil {
		return ce.NewErrorResponse(ce.HttpCodeForDaoError(err), "Error uploading asset", err.Error())
	}

	return c.JSON(http.StatusOK, api.UploadResponse{
		Key:          result.Key,
		ThumbnailKey: result.ThumbnailKey,
	})
}

// FetchAsset godoc
// @Summary      Get Asset
// @ID           getAsset
// @Description  Streams a stored file. Keys may contain slashes.
// @Tags         assets
// @Produce      octet-stream
// @Param        key  path  string  true  "Asset key."
// @Success      200
// @Success      304
// @Failure      401 {object} ce.ErrorResponse
// @Failure      404 {object} ce.ErrorResponse
// @Failure      502 {object} ce.ErrorResponse
// @Router       /assets/{key} [get]
func (h *AssetHandler) fetchAsset(c echo.Context) error {
	key := c.Param("*")
	if unescaped, err := url.PathUnescape(key); err == nil {
		key = unescaped
	}

	obj, err := h.Assets.Fetch(c.Request().Context(), key)
	if err != nil {
		return ce.NewErrorResponse(ce.HttpCodeForDaoError(err), "Error fetching asset", err.Error())
	}
	defer func() {
		if err := obj.Body.Close(); err != nil {
			zerolog.Ctx(c.Request().Context()).Warn().Err(err).Str("key", key).Msg("Could not close asset body")
		}
	}()

	header := c.Response().Header()
	if obj.CacheControl != "" {
		header.Set("Cache-Control", obj.CacheControl)
	}
	if obj.ETag != "" {
		header.Set("ETag", obj.ETag)
		if c.Request().Header.Get("If-None-Match") == obj.ETag {
			return c.NoContent(http.StatusNotModified)
		}
	}

	contentType := obj.ContentType
	if contentType == "" {
		contentType = echo.MIMEOctetStream
	}
	if obj.Size > 0 {
		header.Set(echo.HeaderContentLength, strconv.FormatInt(obj.Size, 10))
	}
	return c.Stream(http.StatusOK, contentType, obj.Body)
}
