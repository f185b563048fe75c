package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/memories-timeline/memories-backend/pkg/assets"
	"github.com/memories-timeline/memories-backend/pkg/cache"
	"github.com/memories-timeline/memories-backend/pkg/config"
	"github.com/memories-timeline/memories-backend/pkg/dao"
	"github.com/memories-timeline/memories-backend/pkg/db"
	"github.com/memories-timeline/memories-backend/pkg/handler"
	"github.com/memories-timeline/memories-backend/pkg/identity"
	"github.com/memories-timeline/memories-backend/pkg/instrumentation"
	"github.com/memories-timeline/memories-backend/pkg/instrumentation/custom"
	"github.com/memories-timeline/memories-backend/pkg/router"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"
)

func main() {
	var wg sync.WaitGroup

	config.Load()
	config.ConfigureLogging()
	cfg := config.Get()

	ctx, cancel := context.WithCancel(context.Background())
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	if err := db.Connect(); err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}

	s3Store, err := assets.NewS3Store(ctx, cfg.Storage.S3)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to configure asset storage")
	}
	resolver, err := identity.NewResolver(cfg.Auth)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to configure authentication")
	}

	metrics := instrumentation.NewMetrics(prometheus.NewRegistry())
	daoReg := dao.GetDaoRegistry(db.DB)
	deps := handler.Dependencies{
		DaoRegistry: daoReg,
		Assets: assets.NewStore(
			assets.NewBreakerStore(s3Store, cfg.Storage.Breaker),
			assets.NewImageThumbnailer(cfg.Assets),
			cfg.Assets,
			metrics,
		),
		Cache:    cache.Initialize(),
		Resolver: resolver,
		Metrics:  metrics,
	}

	apiServer := newServer(fmt.Sprintf(":%d", cfg.Server.Port), router.ConfigureEchoWithMetrics(deps), cfg.Server.RequestTimeout)
	metricsServer := newServer(fmt.Sprintf(":%d", cfg.Metrics.Port), router.ConfigureMetricsEcho(metrics), 10*time.Second)

	for name, server := range map[string]*http.Server{"api": apiServer, "metrics": metricsServer} {
		wg.Add(1)
		go func() {
			defer wg.Done()
			log.Info().Str("server", name).Str("addr", server.Addr).Msg("Starting server")
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Fatal().Err(err).Str("server", name).Msg("Server failed")
			}
		}()
	}

	if collector := custom.NewCollector(ctx, metrics, daoReg.Metrics, cfg.Metrics.CollectionInterval); collector != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			collector.Run()
		}()
	}

	<-quit
	log.Info().Msg("Shutting down")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	for _, server := range []*http.Server{apiServer, metricsServer} {
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("Could not shutdown server")
		}
	}
	wg.Wait()

	if err := db.Close(); err != nil {
		log.Error().Err(err).Msg("Could not close database")
	}
}

func newServer(addr string, handler *echo.Echo, timeout time.Duration) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		IdleTimeout:       1 * time.Minute,
		ReadTimeout:       timeout,
		ReadHeaderTimeout: 2 * time.Second,
		WriteTimeout:      timeout,
	}
}
