package custom

import (
	"context"
	"testing"
	"time"

	"github.com/memories-timeline/memories-backend/pkg/dao"
	"github.com/memories-timeline/memories-backend/pkg/instrumentation"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestNewCollector(t *testing.T) {
	var c *Collector
	metricsDao := dao.NewMockMetricsDao(t)

	// Success case
	reg := prometheus.NewRegistry()
	metrics := instrumentation.NewMetrics(reg)
	c = NewCollector(context.Background(), metrics, metricsDao, time.Second)
	assert.NotNil(t, c)
	assert.Equal(t, time.Second, c.interval)

	// Forcing nil Context
	//nolint:staticcheck
	c = NewCollector(nil, metrics, metricsDao, time.Second)
	assert.Nil(t, c)

	// metrics nil
	c = NewCollector(context.Background(), nil, metricsDao, time.Second)
	assert.Nil(t, c)

	// dao nil
	c = NewCollector(context.Background(), metrics, nil, time.Second)
	assert.Nil(t, c)

	// interval defaults
	c = NewCollector(context.Background(), metrics, metricsDao, 0)
	require.NotNil(t, c)
	assert.Equal(t, defaultInterval, c.interval)
}

func TestIterate(t *testing.T) {
	metricsDao := dao.NewMockMetricsDao(t)
	metricsDao.On("MemoriesCountByType", mock.Anything).Return(map[string]int64{"quote": 3, "gallery": 1}).Once()
	metricsDao.On("AssetsCountByType", mock.Anything).Return(map[string]int64{"image": 4}).Once()

	metrics := instrumentation.NewMetrics(prometheus.NewRegistry())
	c := NewCollector(context.Background(), metrics, metricsDao, time.Second)
	require.NotNil(t, c)

	assert.NotPanics(t, func() {
		c.iterate()
	})
	assert.Equal(t, 3.0, testutil.ToFloat64(metrics.MemoriesTotal.WithLabelValues("quote")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.MemoriesTotal.WithLabelValues("gallery")))
	assert.Equal(t, 4.0, testutil.ToFloat64(metrics.MemoryAssetsTotal.WithLabelValues("image")))
}

func TestRunStopsOnCancel(t *testing.T) {
	defer goleak.VerifyNone(t)

	metricsDao := dao.NewMockMetricsDao(t)
	metricsDao.On("MemoriesCountByType", mock.Anything).Return(map[string]int64{})
	metricsDao.On("AssetsCountByType", mock.Anything).Return(map[string]int64{})

	ctx, cancel := context.WithCancel(context.Background())
	c := NewCollector(ctx, instrumentation.NewMetrics(prometheus.NewRegistry()), metricsDao, time.Hour)
	require.NotNil(t, c)

	done := make(chan struct{})
	go func() {
		c.Run()
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("collector did not stop")
	}
}
