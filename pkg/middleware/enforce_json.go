package middleware

import (
	"mime"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/memories-timeline/memories-backend/pkg/api"
	ce "github.com/memories-timeline/memories-backend/pkg/errors"
)

const JSONMimeType = "application/json"
const MultipartMimeType = "multipart/form-data"

// enforceJSONContentTypeSkipper lets through reads and requests that carry neither a body nor a content type
func enforceJSONContentTypeSkipper(c echo.Context) bool {
	req := c.Request()
	switch req.Method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return true
	}
	if req.Body == nil || req.Body == http.NoBody {
		return true
	}
	return req.ContentLength == 0 && req.Header.Get(echo.HeaderContentType) == ""
}

// isUpload matches the only route that takes a multipart body
func isUpload(c echo.Context) bool {
	return c.Request().Method == http.MethodPost && c.Path() == api.RootPath+api.AssetsPath
}

func EnforceJSONContentType(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if enforceJSONContentTypeSkipper(c) {
			return next(c)
		}
		mediatype, _, err := mime.ParseMediaType(c.Request().Header.Get("Content-Type"))
		if err != nil {
			return ce.NewErrorResponse(http.StatusUnsupportedMediaType, "Error parsing content type", err.Error())
		}
		if isUpload(c) {
			if mediatype != MultipartMimeType {
				return ce.NewErrorResponse(http.StatusUnsupportedMediaType, "Incorrect content type", "Content-Type must be multipart/form-data")
			}
			return next(c)
		}
		if mediatype != JSONMimeType {
			return ce.NewErrorResponse(http.StatusUnsupportedMediaType, "Incorrect content type", "Content-Type must be application/json")
		}
		return next(c)
	}
}
