// Package metrics provides Prometheus metrics for the fieldscore service.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager owns all Prometheus collectors for the service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	registry         prometheus.Registerer

	// Analysis pipeline metrics
	playersAnalyzed    prometheus.Counter
	factsEvaluated     prometheus.Counter
	predictionsTotal   prometheus.Counter
	predictionsSkipped prometheus.Counter
	analysisDuration   prometheus.Histogram

	// Matchup metrics
	matchupsScored prometheus.Counter

	// Store metrics
	storePlayers prometheus.Gauge

	// HTTP metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // singleton metrics manager

// Init creates the global metrics manager and registers all collectors.
// Calling Init twice replaces the manager; callers should supply a fresh
// registry in that case to avoid duplicate registration.
func Init(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "fieldscore",
		subsystem:        "",
		histogramBuckets: prometheus.DefBuckets,
		enabled:          true,
		registry:         prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.enabled {
		m.register()
	}
	globalManager = m
	return m
}

// Get returns the global metrics manager, or nil when metrics are not initialized.
func Get() *Manager { return globalManager }

func (m *Manager) register() {
	factory := promauto.With(m.registry)

	m.playersAnalyzed = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "players_analyzed_total",
		Help:      "Total number of players run through the defensive pipeline.",
	})
	m.factsEvaluated = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "facts_evaluated_total",
		Help:      "Total number of defensive facts evaluated.",
	})
	m.predictionsTotal = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "predictions_total",
		Help:      "Total number of cross-position facts synthesized.",
	})
	m.predictionsSkipped = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "predictions_skipped_total",
		Help:      "Predictions omitted because no eligible source position existed.",
	})
	m.analysisDuration = factory.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "analysis_duration_seconds",
		Help:      "Duration of full batch analysis passes.",
		Buckets:   m.histogramBuckets,
	})
	m.matchupsScored = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "matchups_scored_total",
		Help:      "Total number of batter-vs-pitcher matchups scored.",
	})
	m.storePlayers = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "store_players",
		Help:      "Number of players currently held in the score store.",
	})
	m.httpRequests = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "http_requests_total",
		Help:      "HTTP requests by endpoint, method, and status code.",
	}, []string{"endpoint", "method", "status"})
	m.httpRequestDuration = factory.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency by endpoint.",
		Buckets:   m.histogramBuckets,
	}, []string{"endpoint"})
}

// Package-level helpers. All are safe to call before Init; they become no-ops.

// IncPlayersAnalyzed records one player passing through the pipeline.
func IncPlayersAnalyzed() {
	if globalManager != nil && globalManager.enabled {
		globalManager.playersAnalyzed.Inc()
	}
}

// AddFactsEvaluated records n defensive fact evaluations.
func AddFactsEvaluated(n int) {
	if globalManager != nil && globalManager.enabled {
		globalManager.factsEvaluated.Add(float64(n))
	}
}

// IncPredictions records one synthesized cross-position fact.
func IncPredictions() {
	if globalManager != nil && globalManager.enabled {
		globalManager.predictionsTotal.Inc()
	}
}

// IncPredictionsSkipped records one omitted prediction target.
func IncPredictionsSkipped() {
	if globalManager != nil && globalManager.enabled {
		globalManager.predictionsSkipped.Inc()
	}
}

// ObserveAnalysisDuration records the duration of a batch analysis pass.
func ObserveAnalysisDuration(d time.Duration) {
	if globalManager != nil && globalManager.enabled {
		globalManager.analysisDuration.Observe(d.Seconds())
	}
}

// IncMatchupsScored records one matchup evaluation.
func IncMatchupsScored() {
	if globalManager != nil && globalManager.enabled {
		globalManager.matchupsScored.Inc()
	}
}

// SetStorePlayers records the current score store size.
func SetStorePlayers(n int) {
	if globalManager != nil && globalManager.enabled {
		globalManager.storePlayers.Set(float64(n))
	}
}

// RecordHTTPRequest records one HTTP request outcome.
func RecordHTTPRequest(endpoint, method, status string) {
	if globalManager != nil && globalManager.enabled {
		globalManager.httpRequests.WithLabelValues(endpoint, method, status).Inc()
	}
}

// ObserveHTTPDuration records HTTP request latency for an endpoint.
func ObserveHTTPDuration(endpoint string, d time.Duration) {
	if globalManager != nil && globalManager.enabled {
		globalManager.httpRequestDuration.WithLabelValues(endpoint).Observe(d.Seconds())
	}
}
