package instrumentation

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestNewMetrics(t *testing.T) {
	var (
		reg     *prometheus.Registry
		metrics *Metrics
	)
	assert.Panics(t, func() {
		metrics = NewMetrics(nil)
	})

	reg = prometheus.NewRegistry()

	metrics = NewMetrics(reg)
	assert.NotNil(t, metrics)
}

func TestRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewMetrics(reg)
	assert.NotNil(t, metrics)
	assert.Equal(t, reg, metrics.Registry())
}

func TestRecordHelpers(t *testing.T) {
	metrics := NewMetrics(prometheus.NewRegistry())

	metrics.RecordMemoryCreated()
	metrics.RecordMemoryCreated()
	metrics.RecordMemoryUpdated()
	metrics.RecordAssetUploaded(true)
	metrics.RecordAssetUploaded(false)
	metrics.RecordAssetUploaded(false)
	metrics.RecordThumbnailFailure()

	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.MemoriesCreatedTotal))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.MemoriesUpdatedTotal))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.AssetsUploadedTotal.WithLabelValues("true")))
	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.AssetsUploadedTotal.WithLabelValues("false")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.ThumbnailFailuresTotal))
}

func TestRecordHelpersNilReceiver(t *testing.T) {
	var metrics *Metrics
	assert.NotPanics(t, func() {
		metrics.RecordMemoryCreated()
		metrics.RecordMemoryUpdated()
		metrics.RecordAssetUploaded(true)
		metrics.RecordThumbnailFailure()
	})
}
