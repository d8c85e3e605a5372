package telemetry

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

// CacheStatsFunc reports cumulative cache hits and misses and the current
// number of cached entries
type CacheStatsFunc func() (hits, misses, entries int64)

// RecordCountsFunc reports the number of stored records per resource
type RecordCountsFunc func(ctx context.Context) map[string]int

// ServiceMetricsConfig holds the inputs for NewServiceMetrics
type ServiceMetricsConfig struct {
	Meter        metric.Meter
	Logger       *zap.Logger
	CacheStats   CacheStatsFunc   // optional
	RecordCounts RecordCountsFunc // optional
}

// ServiceMetrics records HTTP traffic and observes cache and store state.
type ServiceMetrics struct {
	logger *zap.Logger

	requestsTotal    *Counter
	requestDuration  *Histogram
	requestsInFlight *UpDownCounter

	registration metric.Registration
}

// NewServiceMetrics creates the request instruments and registers the
// observable cache and record-count instruments.
func NewServiceMetrics(cfg ServiceMetricsConfig) (*ServiceMetrics, error) {
	if cfg.Meter == nil {
		return nil, ErrMeterNil
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	sm := &ServiceMetrics{logger: logger}

	var err error
	sm.requestsTotal, err = NewCounter(cfg.Meter,
		"http_requests_total", "Total number of HTTP requests", "{request}")
	if err != nil {
		return nil, err
	}
	sm.requestDuration, err = NewHistogram(cfg.Meter, HistogramOpts{
		Name:        "http_request_duration_seconds",
		Description: "HTTP request latency",
		Unit:        "s",
		Boundaries:  HTTPDurationBuckets,
	})
	if err != nil {
		return nil, err
	}
	sm.requestsInFlight, err = NewUpDownCounter(cfg.Meter,
		"http_requests_in_flight", "Requests currently being served", "{request}")
	if err != nil {
		return nil, err
	}

	if err := sm.registerObservers(cfg); err != nil {
		return nil, err
	}
	return sm, nil
}

func (sm *ServiceMetrics) registerObservers(cfg ServiceMetricsConfig) error {
	if cfg.CacheStats == nil && cfg.RecordCounts == nil {
		return nil
	}

	cacheLookups, err := cfg.Meter.Int64ObservableCounter("query_cache_lookups_total",
		metric.WithDescription("Statement query cache lookups by result"),
		metric.WithUnit("{lookup}"),
	)
	if err != nil {
		return err
	}
	cacheEntries, err := cfg.Meter.Int64ObservableGauge("query_cache_entries",
		metric.WithDescription("Entries currently held by the statement query cache"),
		metric.WithUnit("{entry}"),
	)
	if err != nil {
		return err
	}
	records, err := cfg.Meter.Int64ObservableGauge("store_records",
		metric.WithDescription("Records held in the in-memory store by resource"),
		metric.WithUnit("{record}"),
	)
	if err != nil {
		return err
	}

	sm.registration, err = cfg.Meter.RegisterCallback(func(ctx context.Context, o metric.Observer) error {
		if cfg.CacheStats != nil {
			hits, misses, entries := cfg.CacheStats()
			o.ObserveInt64(cacheLookups, hits, metric.WithAttributes(AttrCacheResult.String("hit")))
			o.ObserveInt64(cacheLookups, misses, metric.WithAttributes(AttrCacheResult.String("miss")))
			o.ObserveInt64(cacheEntries, entries)
		}
		if cfg.RecordCounts != nil {
			for resource, n := range cfg.RecordCounts(ctx) {
				o.ObserveInt64(records, int64(n), metric.WithAttributes(AttrResource.String(resource)))
			}
		}
		return nil
	}, cacheLookups, cacheEntries, records)
	return err
}

// RequestStarted marks a request as in flight. The returned func records
// the finished request and must be called exactly once.
func (sm *ServiceMetrics) RequestStarted(ctx context.Context) func(method, route string, status int) {
	if sm == nil {
		return func(string, string, int) {}
	}
	start := time.Now()
	sm.requestsInFlight.Add(ctx, 1)

	return func(method, route string, status int) {
		sm.requestsInFlight.Add(ctx, -1)
		if route == "" {
			route = "unmatched"
		}
		attrs := []attribute.KeyValue{
			AttrHTTPMethod.String(method),
			AttrHTTPRoute.String(route),
			AttrHTTPStatusCode.Int(status),
		}
		sm.requestsTotal.Inc(ctx, attrs...)
		sm.requestDuration.RecordDuration(ctx, time.Since(start), attrs...)
	}
}

// Stop unregisters the observable callbacks.
func (sm *ServiceMetrics) Stop() {
	if sm == nil || sm.registration == nil {
		return
	}
	if err := sm.registration.Unregister(); err != nil {
		sm.logger.Warn("Failed to unregister metric callbacks", zap.Error(err))
	}
}
