package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/memories-timeline/memories-backend/pkg/instrumentation"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateMetricsMiddleware(t *testing.T) {
	var (
		metrics    *instrumentation.Metrics
		middleware echo.MiddlewareFunc
	)
	metrics = instrumentation.NewMetrics(prometheus.NewRegistry())
	middleware = CreateMetricsMiddleware(metrics)

	assert.NotNil(t, middleware)
}

func TestMetricsMiddlewareSkipper(t *testing.T) {
	type TestCase struct {
		Name     string
		Given    string
		Expected bool
	}
	testCases := []TestCase{
		{
			Name:     "Empty",
			Given:    "/",
			Expected: false,
		},
		{
			Name:     "Ping",
			Given:    "/ping",
			Expected: true,
		},
		{
			Name:     "Ping with /",
			Given:    "/ping/",
			Expected: true,
		},
		{
			Name:     "Metrics",
			Given:    "/metrics",
			Expected: true,
		},
		{
			Name:     "Metrics with /",
			Given:    "/metrics/",
			Expected: true,
		},
		{
			Name:     "Memories resource",
			Given:    "/api/memories",
			Expected: false,
		},
		{
			Name:     "Ping below api",
			Given:    "/api/ping",
			Expected: false,
		},
	}
	for _, testCase := range testCases {
		t.Log(testCase.Name)
		ctx := echo.New().NewContext(
			httptest.NewRequest(http.MethodGet, testCase.Given, http.NoBody),
			httptest.NewRecorder())
		result := metricsMiddlewareSkipper(ctx)
		assert.Equal(t, testCase.Expected, result)
	}
}

func TestMapStatus(t *testing.T) {
	type TestCase struct {
		Name     string
		Given    int
		Expected string
	}
	testCases := []TestCase{
		{Name: "0", Given: 0, Expected: ""},
		{Name: "1xx", Given: http.StatusContinue, Expected: "1xx"},
		{Name: "2xx", Given: http.StatusOK, Expected: "2xx"},
		{Name: "3xx", Given: http.StatusMultipleChoices, Expected: "3xx"},
		{Name: "4xx", Given: http.StatusBadRequest, Expected: "4xx"},
		{Name: "5xx", Given: http.StatusInternalServerError, Expected: "5xx"},
	}

	for _, testCase := range testCases {
		result := mapStatus(testCase.Given)
		assert.Equal(t, testCase.Expected, result)
	}
}

func TestMetricsMiddlewareWithConfigCreation(t *testing.T) {
	var (
		reg    *prometheus.Registry
		config *MetricsConfig
	)

	config = &MetricsConfig{
		Metrics: nil,
		Skipper: nil,
	}
	assert.Panics(t, func() {
		MetricsMiddlewareWithConfig(config)
	})

	reg = prometheus.NewRegistry()
	config = &MetricsConfig{
		Metrics: instrumentation.NewMetrics(reg),
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/ping"
		},
	}

	require.NotPanics(t, func() {
		MetricsMiddlewareWithConfig(config)
	})

	assert.NotPanics(t, func() {
		MetricsMiddlewareWithConfig(nil)
	})

	h := func(c echo.Context) error {
		return c.String(http.StatusOK, "Ok")
	}

	e := echo.New()
	m := MetricsMiddlewareWithConfig(config)
	e.Use(m)
	e.Add(http.MethodGet, "/api/memories/:id", h)

	resp := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/memories/abc", nil)
	e.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "Ok", resp.Body.String())
	assert.Equal(t, 1, testutil.CollectAndCount(config.Metrics.HttpStatusHistogram))
}

func TestMetricsMiddlewareObservesHandlerDuration(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := instrumentation.NewMetrics(reg)

	e := echo.New()
	e.Use(MetricsMiddlewareWithConfig(&MetricsConfig{Metrics: metrics}))
	e.Add(http.MethodGet, "/api/memories", func(c echo.Context) error {
		time.Sleep(20 * time.Millisecond)
		return c.NoContent(http.StatusOK)
	})

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/memories", nil))

	families, err := reg.Gather()
	require.NoError(t, err)
	var sum float64
	found := false
	for _, family := range families {
		if !strings.HasSuffix(family.GetName(), instrumentation.HttpStatusHistogram) {
			continue
		}
		for _, m := range family.GetMetric() {
			found = true
			sum += m.GetHistogram().GetSampleSum()
		}
	}
	require.True(t, found)
	assert.GreaterOrEqual(t, sum, 0.02)
}
