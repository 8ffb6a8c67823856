package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "wine_explorer"

// Page fetch outcomes.
const (
	PageOK     = "ok"
	PageFailed = "failed"
)

// Cache lookup results.
const (
	CacheHit   = "hit"
	CacheMiss  = "miss"
	CacheError = "error"
)

var (
	registerOnce sync.Once

	pagesFetched = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "pages_fetched_total",
		Help:      "Backend pages requested during aggregation by outcome",
	}, []string{"outcome"})
	aggregations = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "aggregations_total",
		Help:      "Completed page aggregations",
	})
	aggregationDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "aggregation_duration_seconds",
		Help:      "Wall time of a full page aggregation",
		Buckets:   prometheus.ExponentialBuckets(0.05, 2, 10),
	})
	aggregatedWines = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "aggregated_wines",
		Help:      "Wines returned by the most recent aggregation",
	})
	searchRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "search_requests_total",
		Help:      "Search requests by mode (local or remote)",
	}, []string{"mode"})
	searchesDiscarded = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "searches_discarded_total",
		Help:      "Remote search results dropped because a newer query superseded them",
	})
	cacheLookups = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cache_lookups_total",
		Help:      "Cache lookups by entry kind and result",
	}, []string{"kind", "result"})
)

// Register adds the collectors to the default Prometheus registry. Safe to
// call more than once.
func Register() {
	registerOnce.Do(func() {
		prometheus.MustRegister(pagesFetched, aggregations, aggregationDuration, aggregatedWines,
			searchRequests, searchesDiscarded, cacheLookups)
	})
}

func IncPageFetched(outcome string) { pagesFetched.WithLabelValues(outcome).Inc() }
func IncSearchRequest(mode string)  { searchRequests.WithLabelValues(mode).Inc() }
func IncSearchDiscarded()           { searchesDiscarded.Inc() }

func IncCacheLookup(kind, result string) { cacheLookups.WithLabelValues(kind, result).Inc() }

// ObserveAggregation records one finished aggregation.
func ObserveAggregation(d time.Duration, wines int) {
	aggregations.Inc()
	aggregationDuration.Observe(d.Seconds())
	aggregatedWines.Set(float64(wines))
}
