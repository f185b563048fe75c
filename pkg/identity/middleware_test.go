package identity

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/memories-timeline/memories-backend/pkg/config"
	"github.com/stretchr/testify/assert"
)

func serveWithIdentity(resolver Resolver, optional func(c echo.Context) bool, req *http.Request) *httptest.ResponseRecorder {
	e := echo.New()
	e.HTTPErrorHandler = config.CustomHTTPErrorHandler
	e.Use(Middleware(resolver, optional))
	handler := func(c echo.Context) error {
		user, ok := Get(c.Request().Context())
		if !ok {
			return c.String(http.StatusOK, "anonymous")
		}
		return c.String(http.StatusOK, user)
	}
	e.GET("/private", handler)
	e.GET("/public", handler)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func publicOnly(c echo.Context) bool {
	return c.Path() == "/public"
}

func TestMiddlewareStoresUser(t *testing.T) {
	resolver := HeaderResolver{Header: "X-Email"}
	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	req.Header.Set("X-Email", "user@example.com")

	rec := serveWithIdentity(resolver, publicOnly, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "user@example.com", rec.Body.String())
}

func TestMiddlewareRejectsAnonymous(t *testing.T) {
	resolver := HeaderResolver{Header: "X-Email"}

	rec := serveWithIdentity(resolver, publicOnly, httptest.NewRequest(http.MethodGet, "/private", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Unauthorized")
}

func TestMiddlewareOptionalRoute(t *testing.T) {
	resolver := HeaderResolver{Header: "X-Email"}

	rec := serveWithIdentity(resolver, publicOnly, httptest.NewRequest(http.MethodGet, "/public", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "anonymous", rec.Body.String())
}

func TestMiddlewareNilResolver(t *testing.T) {
	assert.Panics(t, func() {
		Middleware(nil, nil)
	})
}
