package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/monasquad/keepalive/internal/api"
	"github.com/monasquad/keepalive/internal/checker"
	"github.com/monasquad/keepalive/internal/config"
	"github.com/monasquad/keepalive/internal/domain"
	"github.com/monasquad/keepalive/internal/logging"
	"github.com/monasquad/keepalive/internal/metrics"
	"github.com/monasquad/keepalive/internal/repository"
	"github.com/monasquad/keepalive/internal/worker"
)

func main() {
	// ---- configuration ----
	cfg, err := config.Load()
	if err != nil {
		bootstrap, _ := zap.NewProduction()
		bootstrap.Fatal("failed to load config", zap.Error(err))
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		bootstrap, _ := zap.NewProduction()
		bootstrap.Fatal("failed to build logger", zap.Error(err))
	}
	defer logger.Sync() //nolint:errcheck

	schedule, err := cfg.Schedule()
	if err != nil {
		logger.Fatal("invalid schedule", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// ---- core dependencies ----
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	store := repository.NewResultStore()
	chk := checker.NewHTTPChecker(cfg.HealthCheckURL, cfg.HealthCheckTimeout)

	scheduler := worker.NewSchedulerWorker(chk, schedule, clockwork.NewRealClock(), logger, worker.Hooks{
		OnResult: func(r domain.CheckResult) {
			m.Observe(r)
			store.Save(r)
		},
	})

	// ---- HTTP listener ----
	srv := api.NewServer(cfg, api.NewRouter(cfg, store, reg, logger), logger)
	if err := srv.Listen(); err != nil {
		logger.Fatal("failed to bind listener", zap.Error(err))
	}

	logger.Info("health check scheduled",
		zap.String("url", cfg.HealthCheckURL),
		zap.String("schedule", cfg.HealthCheckSchedule),
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		scheduler.Run(gctx)
		return nil
	})

	g.Go(srv.Serve)

	// ---- graceful shutdown ----
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("server error", zap.Error(err))
	}

	// In-flight checks saw gctx cancelled; wait for them to log and return.
	scheduler.Wait()

	logger.Info("server stopped cleanly")
}
