package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	ledgerapp "github.com/findash/backend/internal/application/ledger"
	marketapp "github.com/findash/backend/internal/application/market"
	reportapp "github.com/findash/backend/internal/application/report"
	"github.com/findash/backend/internal/infrastructure/cache"
	"github.com/findash/backend/internal/infrastructure/config"
	"github.com/findash/backend/internal/infrastructure/logger"
	"github.com/findash/backend/internal/infrastructure/persistence/memory"
	"github.com/findash/backend/internal/infrastructure/telemetry"
	"github.com/findash/backend/internal/interfaces/http/server"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

//	@title			Financial Dashboard API
//	@version		1.0
//	@description	Financial statements, ledger reference data and market KPIs for the dashboard

//	@contact.name	API Support
//	@contact.url	https://github.com/findash/backend

//	@BasePath	/api

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: logger.DefaultTimeFormat,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting financial dashboard backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	ctx := context.Background()

	tp, err := telemetry.NewTracerProvider(ctx, telemetry.Config{
		Enabled:           cfg.Telemetry.Enabled,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		SamplingRatio:     cfg.Telemetry.SamplingRatio,
		ServiceName:       cfg.Telemetry.ServiceName,
		Insecure:          cfg.Telemetry.Insecure,
	}, log)
	if err != nil {
		log.Fatal("Failed to initialize tracer provider", zap.Error(err))
	}

	mp, err := telemetry.NewMeterProvider(ctx, telemetry.MetricsConfig{
		Enabled:           cfg.Telemetry.MetricsEnabled,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		ExportInterval:    cfg.Telemetry.MetricsExportInterval,
		ServiceName:       cfg.Telemetry.ServiceName,
		Insecure:          cfg.Telemetry.Insecure,
	}, log)
	if err != nil {
		log.Fatal("Failed to initialize meter provider", zap.Error(err))
	}

	var store *memory.Storage
	if cfg.Seed.Enabled {
		store, err = memory.NewSeededStorage(ctx, cfg.Seed.File)
		if err != nil {
			log.Fatal("Failed to load seed data", zap.String("file", cfg.Seed.File), zap.Error(err))
		}
	} else {
		store = memory.NewStorage()
	}
	log.Info("In-memory store ready", zap.Any("records", store.Counts(ctx)))

	reportOpts := []reportapp.Option{reportapp.WithLogger(log)}
	var queryCache *cache.QueryCache
	if cfg.Cache.Enabled {
		queryCache = cache.NewQueryCache(cfg.Cache.TTL, cfg.Cache.CleanupInterval, cache.WithLogger(log))
		reportOpts = append(reportOpts, reportapp.WithQueryCache(queryCache))
	}

	services := server.Services{
		Reports: reportapp.NewReportService(store.ProfitLoss(), store.BalanceSheets(), store.CashFlows(), reportOpts...),
		Ledger:  ledgerapp.NewLedgerService(store.PlAccounts(), store.IoMappings(), log),
		Market:  marketapp.NewMarketService(store.Companies(), store.Market(), log),
	}

	var serviceMetrics *telemetry.ServiceMetrics
	if mp.IsEnabled() {
		metricsCfg := telemetry.ServiceMetricsConfig{
			Meter:        mp.Meter(telemetry.TracerName),
			Logger:       log,
			RecordCounts: store.Counts,
		}
		if queryCache != nil {
			metricsCfg.CacheStats = func() (hits, misses, entries int64) {
				s := queryCache.Stats()
				return s.Hits, s.Misses, int64(s.Entries)
			}
		}
		serviceMetrics, err = telemetry.NewServiceMetrics(metricsCfg)
		if err != nil {
			log.Fatal("Failed to initialize service metrics", zap.Error(err))
		}
		defer serviceMetrics.Stop()
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := server.NewEngine(server.Options{
		Config:  cfg,
		Logger:  log,
		Metrics: serviceMetrics,
		Records: store,
	}, services)

	srv := server.NewHTTPServer(cfg, engine)

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}
	if err := mp.Shutdown(shutdownCtx); err != nil {
		log.Error("Failed to shut down meter provider", zap.Error(err))
	}
	if err := tp.Shutdown(shutdownCtx); err != nil {
		log.Error("Failed to shut down tracer provider", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
