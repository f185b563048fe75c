package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/memories-timeline/memories-backend/pkg/api"
	"github.com/memories-timeline/memories-backend/pkg/assets"
	"github.com/memories-timeline/memories-backend/pkg/cache"
	"github.com/memories-timeline/memories-backend/pkg/config"
	"github.com/memories-timeline/memories-backend/pkg/dao"
	"github.com/memories-timeline/memories-backend/pkg/identity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testUserHeader = "X-Test-User"
	testUser       = "someone@example.com"
)

func testDependencies(t *testing.T) Dependencies {
	return Dependencies{
		DaoRegistry: dao.GetMockDaoRegistry(t).ToDaoRegistry(),
		Assets:      assets.NewMockAssetStore(t),
		Cache:       cache.NewNoOpCache(),
		Resolver:    identity.HeaderResolver{Header: testUserHeader},
	}
}

func serveRouter(deps Dependencies, req *http.Request) (int, []byte, error) {
	router := echo.New()
	router.HTTPErrorHandler = config.CustomHTTPErrorHandler
	RegisterPing(router)
	RegisterRoutes(router, deps)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	response := rr.Result()
	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)
	return response.StatusCode, body, err
}

func TestPing(t *testing.T) {
	paths := []string{"/ping", "/ping/"}
	for _, path := range paths {
		req, _ := http.NewRequest("GET", path, nil)
		code, body, err := serveRouter(testDependencies(t), req)
		assert.Nil(t, err)
		assert.Equal(t, http.StatusOK, code)

		expected := "{\"message\":\"pong\"}\n"
		assert.Equal(t, expected, string(body))
	}
}

func TestUnknownApiRoute(t *testing.T) {
	for _, authenticated := range []bool{false, true} {
		for _, method := range []string{http.MethodGet, http.MethodDelete} {
			req := httptest.NewRequest(method, api.RootPath+"/does-not-exist", nil)
			if authenticated {
				req.Header.Set(testUserHeader, testUser)
			}
			code, body, err := serveRouter(testDependencies(t), req)
			require.NoError(t, err)
			assert.Equal(t, http.StatusNotFound, code, method)

			expected := "{\"errors\":[{\"status\":404,\"detail\":\"Not Found\"}]}\n"
			assert.Equal(t, expected, string(body))
		}
	}
}

func TestProtectedRoutesRequireIdentity(t *testing.T) {
	paths := []string{
		api.RootPath + api.MemoriesPath,
		api.RootPath + api.MemoriesPath + "/some-id",
		api.RootPath + api.MediaPath,
		api.RootPath + api.AssetsPath + "/key.png",
	}
	for _, path := range paths {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		code, body, err := serveRouter(testDependencies(t), req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, code, path)

		var errResp struct {
			Errors []struct {
				Status int    `json:"status"`
				Title  string `json:"title"`
			} `json:"errors"`
		}
		require.NoError(t, json.Unmarshal(body, &errResp))
		require.Len(t, errResp.Errors, 1)
		assert.Equal(t, http.StatusUnauthorized, errResp.Errors[0].Status)
	}
}

func TestOpenapi(t *testing.T) {
	req, _ := http.NewRequest("GET", api.RootPath+api.OpenAPIPath, nil)
	code, body, err := serveRouter(testDependencies(t), req)

	assert.Nil(t, err)
	assert.Equal(t, http.StatusOK, code)

	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(body)
	require.NoError(t, err)
	require.NoError(t, doc.Validate(context.Background()))

	for _, path := range []string{
		api.AssetsPath,
		api.AssetsPath + "/{key}",
		api.MemoriesPath,
		api.MemoriesPath + "/{id}",
		api.MediaPath,
		api.ConfigPath,
		api.AuthMePath,
	} {
		assert.NotNil(t, doc.Paths.Find(path), path)
	}
}

func TestAnonymousAllowed(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	c.SetPath(api.RootPath + api.ConfigPath)
	assert.True(t, anonymousAllowed(c))
	c.SetPath(api.RootPath + api.AuthMePath)
	assert.True(t, anonymousAllowed(c))
	c.SetPath(api.RootPath + "/*")
	assert.True(t, anonymousAllowed(c))
	c.SetPath(api.RootPath + api.MemoriesPath)
	assert.False(t, anonymousAllowed(c))
	c.SetPath(api.RootPath + api.AssetsPath + "/*")
	assert.False(t, anonymousAllowed(c))
}
