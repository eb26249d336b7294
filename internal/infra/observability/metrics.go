package observability

import (
	"time"

	"github.com/boddenberg/cards-api-go/internal/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	dto "github.com/prometheus/client_model/go"
)

const (
	metricRequestDuration     = "cards_request_duration_seconds"
	metricStoreErrors         = "cards_store_errors_total"
	metricOwnershipViolations = "cards_ownership_violations_total"
	metricCacheHits           = "cards_cache_hits_total"
	metricCacheMisses         = "cards_cache_misses_total"
)

// Metrics holds all Prometheus metrics for the service.
type Metrics struct {
	// Registry is the Prometheus registry that owns these metrics.
	// Exposed so the /metrics endpoint can use it.
	Registry *prometheus.Registry

	requestDuration     *prometheus.HistogramVec
	storeErrors         *prometheus.CounterVec
	ownershipViolations *prometheus.CounterVec
	cacheHits           *prometheus.CounterVec
	cacheMisses         *prometheus.CounterVec
}

// NewMetrics creates a dedicated Prometheus registry and registers all
// application metrics in it. A private registry lets tests call NewMetrics
// any number of times.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		Registry: reg,

		requestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricRequestDuration,
				Help:    "Duration of service operations by resource and operation.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
		storeErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricStoreErrors,
				Help: "Total failed calls to the backing store.",
			},
			[]string{"backend"},
		),
		ownershipViolations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricOwnershipViolations,
				Help: "Total accesses to a record through a card that does not own it.",
			},
			[]string{"resource"},
		),
		cacheHits: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricCacheHits,
				Help: "Total cache hits.",
			},
			[]string{"cache"},
		),
		cacheMisses: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricCacheMisses,
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

// IncrStoreError increments the store error counter for a backend.
func (m *Metrics) IncrStoreError(backend string) {
	m.storeErrors.WithLabelValues(backend).Inc()
}

// IncrOwnershipViolation counts a rejected cross-card access.
func (m *Metrics) IncrOwnershipViolation(resource string) {
	m.ownershipViolations.WithLabelValues(resource).Inc()
}

// IncrCacheHit increments the cache hit counter.
func (m *Metrics) IncrCacheHit(cache string) {
	m.cacheHits.WithLabelValues(cache).Inc()
}

// IncrCacheMiss increments the cache miss counter.
func (m *Metrics) IncrCacheMiss(cache string) {
	m.cacheMisses.WithLabelValues(cache).Inc()
}

// Summary returns a snapshot of the counters for GET /api/v1/metrics/summary.
// Counters are cumulative since process start.
func (m *Metrics) Summary() *domain.MetricsSummary {
	s := &domain.MetricsSummary{
		OwnershipViolations: map[string]int64{},
		StoreErrors:         map[string]int64{},
		Period:              "all_time",
	}

	families, err := m.Registry.Gather()
	if err != nil {
		return s
	}

	var hits, misses float64
	for _, mf := range families {
		switch mf.GetName() {
		case metricOwnershipViolations:
			collectByLabel(mf, "resource", s.OwnershipViolations)
		case metricStoreErrors:
			collectByLabel(mf, "backend", s.StoreErrors)
		case metricCacheHits:
			hits = sumCounters(mf)
		case metricCacheMisses:
			misses = sumCounters(mf)
		}
	}

	s.CacheHits = int64(hits)
	s.CacheMisses = int64(misses)
	if hits+misses > 0 {
		s.CacheHitRate = hits / (hits + misses)
	}
	return s
}

func collectByLabel(mf *dto.MetricFamily, label string, out map[string]int64) {
	for _, metric := range mf.GetMetric() {
		for _, lp := range metric.GetLabel() {
			if lp.GetName() == label {
				out[lp.GetValue()] += int64(metric.GetCounter().GetValue())
			}
		}
	}
}

func sumCounters(mf *dto.MetricFamily) float64 {
	var total float64
	for _, metric := range mf.GetMetric() {
		total += metric.GetCounter().GetValue()
	}
	return total
}
