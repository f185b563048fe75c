package custom

import (
	"context"
	"time"

	"github.com/memories-timeline/memories-backend/pkg/dao"
	"github.com/memories-timeline/memories-backend/pkg/instrumentation"
	"github.com/rs/zerolog/log"
)

const defaultInterval = 30 * time.Second

type Collector struct {
	context  context.Context
	metrics  *instrumentation.Metrics
	dao      dao.MetricsDao
	interval time.Duration
}

func NewCollector(context context.Context, metrics *instrumentation.Metrics, metricsDao dao.MetricsDao, interval time.Duration) *Collector {
	if context == nil {
		return nil
	}
	if metrics == nil {
		return nil
	}
	if metricsDao == nil {
		return nil
	}
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Collector{
		context:  log.Logger.With().Str("component", "metrics_collector").Logger().WithContext(context),
		metrics:  metrics,
		dao:      metricsDao,
		interval: interval,
	}
}

func (c *Collector) iterate() {
	ctx := c.context

	c.metrics.MemoriesTotal.Reset()
	for memoryType, total := range c.dao.MemoriesCountByType(ctx) {
		c.metrics.MemoriesTotal.WithLabelValues(memoryType).Set(float64(total))
	}

	c.metrics.MemoryAssetsTotal.Reset()
	for assetType, total := range c.dao.AssetsCountByType(ctx) {
		c.metrics.MemoryAssetsTotal.WithLabelValues(assetType).Set(float64(total))
	}
}

func (c *Collector) Run() {
	log.Info().Msg("Starting metrics collector go routine")
	c.iterate()
	ticker := time.NewTicker(c.interval)
	for {
		select {
		case <-ticker.C:
			c.iterate()
		case <-c.context.Done():
			log.Info().Msgf("Stopping metrics collector go routine")
			ticker.Stop()
			return
		}
	}
}
