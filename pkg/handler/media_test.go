package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/memories-timeline/memories-backend/pkg/api"
	"github.com/memories-timeline/memories-backend/pkg/cache"
	"github.com/memories-timeline/memories-backend/pkg/config"
	"github.com/memories-timeline/memories-backend/pkg/dao"
	ce "github.com/memories-timeline/memories-backend/pkg/errors"
	"github.com/memories-timeline/memories-backend/pkg/identity"
	"github.com/memories-timeline/memories-backend/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type MediaSuite struct {
	suite.Suite
	reg   *dao.MockDaoRegistry
	cache *cache.MockCache
}

func TestMediaSuite(t *testing.T) {
	suite.Run(t, new(MediaSuite))
}

func (suite *MediaSuite) SetupTest() {
	suite.reg = dao.GetMockDaoRegistry(suite.T())
	suite.cache = cache.NewMockCache(suite.T())
}

func (suite *MediaSuite) serveMediaRouter() (int, []byte, error) {
	router := echo.New()
	router.HTTPErrorHandler = config.CustomHTTPErrorHandler
	pathPrefix := router.Group(api.RootPath, identity.Middleware(identity.HeaderResolver{Header: testUserHeader}, nil))

	RegisterMediaRoutes(pathPrefix, suite.reg.ToDaoRegistry(), suite.cache)

	req := httptest.NewRequest(http.MethodGet, api.RootPath+api.MediaPath, nil)
	req.Header.Set(testUserHeader, testUser)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	response := rr.Result()
	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)
	return response.StatusCode, body, err
}

func testMedia() api.MediaCollectionResponse {
	return api.MediaCollectionResponse{Media: []api.MediaItem{
		{
			AssetKey:      "abc-beach.jpg",
			ThumbnailKey:  utils.Ptr("thumb-def-beach.jpg"),
			AssetType:     "image",
			MemoryDate:    time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC),
			MemoryCaption: utils.Ptr("Beach day"),
		},
		{
			AssetKey:   "ghi-clip.mp4",
			AssetType:  "video",
			MemoryDate: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		},
	}}
}

func (suite *MediaSuite) TestListFromStore() {
	t := suite.T()
	media := testMedia()
	suite.cache.On("GetMedia", mock.Anything).Return(nil, cache.ErrNotFound)
	suite.reg.Memory.On("ListMedia", mock.Anything).Return(media, nil)
	suite.cache.On("SetMedia", mock.Anything, media).Return(nil)

	code, body, err := suite.serveMediaRouter()
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, code)

	var response api.MediaCollectionResponse
	require.NoError(t, json.Unmarshal(body, &response))
	assert.Equal(t, media, response)
}

func (suite *MediaSuite) TestListFromCache() {
	t := suite.T()
	media := testMedia()
	suite.cache.On("GetMedia", mock.Anything).Return(&media, nil)

	code, body, err := suite.serveMediaRouter()
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, code)

	var response api.MediaCollectionResponse
	require.NoError(t, json.Unmarshal(body, &response))
	assert.Len(t, response.Media, 2)
	suite.reg.Memory.AssertNotCalled(t, "ListMedia", mock.Anything)
}

func (suite *MediaSuite) TestCacheErrorsAreNotFatal() {
	t := suite.T()
	media := testMedia()
	suite.cache.On("GetMedia", mock.Anything).Return(nil, errors.New("connection refused"))
	suite.reg.Memory.On("ListMedia", mock.Anything).Return(media, nil)
	suite.cache.On("SetMedia", mock.Anything, media).Return(errors.New("connection refused"))

	code, _, err := suite.serveMediaRouter()
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, code)
}

func (suite *MediaSuite) TestListStoreFailure() {
	t := suite.T()
	suite.cache.On("GetMedia", mock.Anything).Return(nil, cache.ErrNotFound)
	suite.reg.Memory.On("ListMedia", mock.Anything).
		Return(api.MediaCollectionResponse{}, &ce.DaoError{Message: "Failed to list media", Err: errors.New("timeout")})

	code, body, err := suite.serveMediaRouter()
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, "Error listing media", decodeErrorResponse(t, body).Errors[0].Title)
}
