package instrumentation

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	NameSpace              = "memories"
	HttpStatusHistogram    = "http_status_histogram"
	MemoriesCreatedTotal   = "memories_created_total"
	MemoriesUpdatedTotal   = "memories_updated_total"
	AssetsUploadedTotal    = "assets_uploaded_total"
	ThumbnailFailuresTotal = "thumbnail_failures_total"
	MemoriesTotal          = "memories_total"
	MemoryAssetsTotal      = "memory_assets_total"
)

type Metrics struct {
	HttpStatusHistogram prometheus.HistogramVec

	MemoriesCreatedTotal   prometheus.Counter
	MemoriesUpdatedTotal   prometheus.Counter
	AssetsUploadedTotal    prometheus.CounterVec
	ThumbnailFailuresTotal prometheus.Counter

	// Collected periodically from the database
	MemoriesTotal     prometheus.GaugeVec
	MemoryAssetsTotal prometheus.GaugeVec

	reg *prometheus.Registry
}

// See: https://prometheus.io/docs/tutorials/understanding_metric_types/#types-of-metrics
func NewMetrics(reg *prometheus.Registry) *Metrics {
	if reg == nil {
		panic("reg cannot be nil")
	}
	metrics := &Metrics{
		reg: reg,
		HttpStatusHistogram: *promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Namespace: NameSpace,
			Name:      HttpStatusHistogram,
			Help:      "Duration of HTTP requests",
			Buckets:   prometheus.DefBuckets,
		}, []string{"status", "method", "path"}),
		MemoriesCreatedTotal: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Namespace: NameSpace,
			Name:      MemoriesCreatedTotal,
			Help:      "Number of memories created",
		}),
		MemoriesUpdatedTotal: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Namespace: NameSpace,
			Name:      MemoriesUpdatedTotal,
			Help:      "Number of memories updated",
		}),
		AssetsUploadedTotal: *promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Namespace: NameSpace,
			Name:      AssetsUploadedTotal,
			Help:      "Number of uploaded assets, labeled by whether a thumbnail was produced",
		}, []string{"thumbnail"}),
		ThumbnailFailuresTotal: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Namespace: NameSpace,
			Name:      ThumbnailFailuresTotal,
			Help:      "Number of thumbnails that could not be generated or stored",
		}),
		MemoriesTotal: *promauto.With(reg).NewGaugeVec(prometheus.GaugeOpts{
			Namespace: NameSpace,
			Name:      MemoriesTotal,
			Help:      "Number of memories by type",
		}, []string{"type"}),
		MemoryAssetsTotal: *promauto.With(reg).NewGaugeVec(prometheus.GaugeOpts{
			Namespace: NameSpace,
			Name:      MemoryAssetsTotal,
			Help:      "Number of memory assets by asset type",
		}, []string{"asset_type"}),
	}

	reg.MustRegister(collectors.NewBuildInfoCollector())

	return metrics
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.reg
}

// The record helpers accept a nil receiver so components can run without metrics.

func (m *Metrics) RecordMemoryCreated() {
	if m == nil {
		return
	}
	m.MemoriesCreatedTotal.Inc()
}

func (m *Metrics) RecordMemoryUpdated() {
	if m == nil {
		return
	}
	m.MemoriesUpdatedTotal.Inc()
}

func (m *Metrics) RecordAssetUploaded(withThumbnail bool) {
	if m == nil {
		return
	}
	m.AssetsUploadedTotal.WithLabelValues(strconv.FormatBool(withThumbnail)).Inc()
}

func (m *Metrics) RecordThumbnailFailure() {
	if m == nil {
		return
	}
	m.ThumbnailFailuresTotal.Inc()
}
