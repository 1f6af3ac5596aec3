package telemetry

import (
	"context"
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

type AppMetrics struct {
	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
	userOperations  *prometheus.CounterVec
	taskOperations  *prometheus.CounterVec
	resetOutcomes   *prometheus.CounterVec
	rateLimitHits   *prometheus.CounterVec
	memoryUsage     prometheus.Gauge
	goroutines      prometheus.Gauge
}

func NewAppMetrics(registry prometheus.Registerer) *AppMetrics {
	metrics := &AppMetrics{
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		),
		requestTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		userOperations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "user_operations_total",
				Help: "Total number of user operations",
			},
			[]string{"operation"},
		),
		taskOperations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "task_operations_total",
				Help: "Total number of task operations",
			},
			[]string{"operation"},
		),
		resetOutcomes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "reset_operations_total",
				Help: "Total number of bulk reset operations by outcome",
			},
			[]string{"entity", "outcome"},
		),
		rateLimitHits: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rate_limit_hits_total",
				Help: "Total number of rate limit hits",
			},
			[]string{"path", "key_type"},
		),
		memoryUsage: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "memory_usage_bytes",
				Help: "Memory usage in bytes",
			},
		),
		goroutines: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "goroutines_total",
				Help: "Number of goroutines",
			},
		),
	}

	registry.MustRegister(
		metrics.requestDuration,
		metrics.requestTotal,
		metrics.userOperations,
		metrics.taskOperations,
		metrics.resetOutcomes,
		metrics.rateLimitHits,
		metrics.memoryUsage,
		metrics.goroutines,
	)

	return metrics
}

// NewNoOpMetrics returns metrics bound to a throwaway registry, for tests
// and for services constructed without telemetry.
func NewNoOpMetrics() *AppMetrics {
	return NewAppMetrics(prometheus.NewRegistry())
}

func (m *AppMetrics) RecordHTTPRequest(method, path, status string, duration time.Duration) {
	m.requestTotal.WithLabelValues(method, path, status).Inc()
	m.requestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

func (m *AppMetrics) RecordUserOperation(operation string) {
	m.userOperations.WithLabelValues(operation).Inc()
}

func (m *AppMetrics) RecordTaskOperation(operation string) {
	m.taskOperations.WithLabelValues(operation).Inc()
}

// RecordReset keeps swallowed reset failures observable even though the
// caller-visible operation always succeeds.
func (m *AppMetrics) RecordReset(entity, outcome string) {
	m.resetOutcomes.WithLabelValues(entity, outcome).Inc()
}

func (m *AppMetrics) RecordRateLimitHit(path, keyType string) {
	m.rateLimitHits.WithLabelValues(path, keyType).Inc()
}

func (m *AppMetrics) StartSystemMetrics(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(15 * time.Second)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				var stats runtime.MemStats
				runtime.ReadMemStats(&stats)

				m.memoryUsage.Set(float64(stats.Alloc))
				m.goroutines.Set(float64(runtime.NumGoroutine()))
			}
		}
	}()
}
