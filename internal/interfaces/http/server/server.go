// Package server assembles the gin engine and the HTTP server for the
// dashboard API.
package server

import (
	"net/http"
	"time"

	ledgerapp "github.com/findash/backend/internal/application/ledger"
	marketapp "github.com/findash/backend/internal/application/market"
	reportapp "github.com/findash/backend/internal/application/report"
	"github.com/findash/backend/internal/infrastructure/config"
	"github.com/findash/backend/internal/infrastructure/logger"
	"github.com/findash/backend/internal/infrastructure/telemetry"
	"github.com/findash/backend/internal/interfaces/http/handler"
	"github.com/findash/backend/internal/interfaces/http/middleware"
	"github.com/findash/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	_ "github.com/findash/backend/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Version is reported by /health and /api/system/info
const Version = telemetry.ServiceVersion

// Services are the application services behind the API routes
type Services struct {
	Reports *reportapp.ReportService
	Ledger  *ledgerapp.LedgerService
	Market  *marketapp.MarketService
}

// Options configures NewEngine
type Options struct {
	Config  *config.Config
	Logger  *zap.Logger
	Metrics *telemetry.ServiceMetrics // optional
	Records handler.RecordCounter     // optional, feeds /health
}

// NewEngine builds the gin engine with the full middleware chain, the
// liveness and documentation routes and every API route group.
func NewEngine(opts Options, svc Services) *gin.Engine {
	cfg := opts.Config
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	middleware.SetupValidator()

	engine := gin.New()
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Order matters: request ids must exist before logging, and recovery
	// must wrap everything that can panic.
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())
	engine.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{middleware.RequestIDHeader, "X-RateLimit-Limit", "X-RateLimit-Remaining"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	if cfg.HTTP.RateLimitEnabled {
		limiter := middleware.NewRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow, cfg.HTTP.RateLimitBurst)
		engine.Use(middleware.RateLimit(limiter))
		log.Info("Rate limiting enabled",
			zap.Int("requests", cfg.HTTP.RateLimitRequests),
			zap.Duration("window", cfg.HTTP.RateLimitWindow),
			zap.Int("burst", cfg.HTTP.RateLimitBurst),
		)
	}

	engine.Use(middleware.TracingWithConfig(middleware.TracingConfig{
		ServiceName: cfg.Telemetry.ServiceName,
		Enabled:     cfg.Telemetry.Enabled,
	}))
	if cfg.Telemetry.Enabled {
		engine.Use(middleware.SpanEnricher())
	}
	engine.Use(middleware.HTTPMetrics(opts.Metrics))

	systemHandler := handler.NewSystemHandler(cfg.App.Name, Version, opts.Records)
	engine.GET("/health", systemHandler.Health)

	engine.GET("/swagger/*any",
		middleware.SwaggerProtection(middleware.SwaggerConfig{
			Enabled:    cfg.HTTP.SwaggerEnabled,
			AllowedIPs: cfg.HTTP.SwaggerAllowedIPs,
		}),
		ginSwagger.WrapHandler(swaggerFiles.Handler),
	)

	r := router.NewRouter(engine)
	r.RegisterGroups(handler.StatementRoutes(handler.NewReportHandler(svc.Reports))...).
		RegisterGroups(handler.LedgerRoutes(handler.NewLedgerHandler(svc.Ledger))...).
		RegisterGroups(handler.CompanyRoutes(handler.NewCompanyHandler(svc.Market))).
		RegisterGroups(handler.MarketRoutes(handler.NewMarketHandler(svc.Market))...).
		RegisterGroups(handler.SystemRoutes(systemHandler))
	r.Setup()

	return engine
}

// NewHTTPServer wraps h in an http.Server using the configured timeouts
func NewHTTPServer(cfg *config.Config, h http.Handler) *http.Server {
	return &http.Server{
		Addr:           cfg.Addr(),
		Handler:        h,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}
}
