package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	dto "github.com/prometheus/client_model/go"

	"github.com/ofstlaxcala/lexnum/internal/domain"
)

// Metrics holds all Prometheus metrics for LexNum.
type Metrics struct {
	// Registry is the Prometheus registry that owns these metrics.
	// Exposed so the /metrics endpoint can use it.
	Registry *prometheus.Registry

	requestDuration *prometheus.HistogramVec
	conversions     *prometheus.CounterVec
	batchRows       *prometheus.CounterVec
	cacheHits       *prometheus.CounterVec
	cacheMisses     *prometheus.CounterVec
}

// NewMetrics creates a dedicated Prometheus registry and registers all
// application metrics in it. Using a private registry avoids "duplicate
// collector" panics when NewMetrics is called more than once (e.g. in tests).
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		Registry: reg,

		requestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "lexnum_request_duration_seconds",
				Help:    "Duration of requests by operation.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
		conversions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "lexnum_conversions_total",
				Help: "Total conversions by outcome (ok, empty, error).",
			},
			[]string{"status"},
		),
		batchRows: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "lexnum_batch_rows_total",
				Help: "Total workbook rows processed by outcome (ok, failed).",
			},
			[]string{"outcome"},
		),
		cacheHits: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "lexnum_cache_hits_total",
				Help: "Total cache hits.",
			},
			[]string{"cache"},
		),
		cacheMisses: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "lexnum_cache_misses_total",
				Help: "Total cache misses.",
			},
			[]string{"cache"},
		),
	}
}

// RecordRequestDuration records the duration of an operation.
func (m *Metrics) RecordRequestDuration(operation string, d time.Duration) {
	m.requestDuration.WithLabelValues(operation).Observe(d.Seconds())
}

// IncrConversion increments the conversion counter for a status
// (ok, empty, error).
func (m *Metrics) IncrConversion(status string) {
	m.conversions.WithLabelValues(status).Inc()
}

// AddBatchRows records rows processed in a workbook batch.
func (m *Metrics) AddBatchRows(ok, failed int) {
	m.batchRows.WithLabelValues("ok").Add(float64(ok))
	m.batchRows.WithLabelValues("failed").Add(float64(failed))
}

// IncrCacheHit increments the cache hit counter.
func (m *Metrics) IncrCacheHit(cache string) {
	m.cacheHits.WithLabelValues(cache).Inc()
}

// IncrCacheMiss increments the cache miss counter.
func (m *Metrics) IncrCacheMiss(cache string) {
	m.cacheMisses.WithLabelValues(cache).Inc()
}

// GetConversionSnapshot returns a snapshot of conversion metrics suitable for
// the GET /v1/metrics/conversions endpoint.
func (m *Metrics) GetConversionSnapshot() *domain.ConversionMetrics {
	// Gather current values from Prometheus counters.
	// Note: Prometheus counters expose cumulative values.
	ok := getCounterValue(m.conversions, "ok")
	empty := getCounterValue(m.conversions, "empty")
	failed := getCounterValue(m.conversions, "error")
	total := ok + empty + failed

	rowsOK := getCounterValue(m.batchRows, "ok")
	rowsFailed := getCounterValue(m.batchRows, "failed")

	hits := getCounterValue(m.cacheHits, "texto")
	misses := getCounterValue(m.cacheMisses, "texto")

	errorRate := float64(0)
	if total > 0 {
		errorRate = failed / total
	}
	cacheHitRate := float64(0)
	if hits+misses > 0 {
		cacheHitRate = hits / (hits + misses)
	}

	return &domain.ConversionMetrics{
		TotalConversions:  int64(total),
		EmptyResults:      int64(empty),
		FailedConversions: int64(failed),
		ErrorRate:         errorRate,
		CacheHitRate:      cacheHitRate,
		BatchRows:         int64(rowsOK + rowsFailed),
		BatchRowsFailed:   int64(rowsFailed),
		Period:            "all_time",
	}
}

// getCounterValue extracts the current float64 value from a CounterVec for a given label.
func getCounterValue(cv *prometheus.CounterVec, label string) float64 {
	counter := cv.WithLabelValues(label)
	m := &dto.Metric{}
	if err := counter.(prometheus.Metric).Write(m); err != nil {
		return 0
	}
	if m.Counter != nil && m.Counter.Value != nil {
		return *m.Counter.Value
	}
	return 0
}
