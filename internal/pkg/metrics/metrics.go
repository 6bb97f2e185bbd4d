package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type MetricsProviderInterface interface {
	IncAnalysisRequests(tone string)
	IncDemoFallbacks()
	IncNarrativeFallbacks()
	IncCacheHits()
	IncCacheMisses()
	SetStoredCharts(count int64)
	SetActiveSessions(count int64)
}

type MetricsProvider struct {
	analysisRequests   *prometheus.CounterVec
	demoFallbacks      prometheus.Counter
	narrativeFallbacks prometheus.Counter
	cacheHits          prometheus.Counter
	cacheMisses        prometheus.Counter
	storedCharts       prometheus.Gauge
	activeSessions     prometheus.Gauge
}

func NewMetricsProvider() MetricsProviderInterface {
	return &MetricsProvider{
		analysisRequests: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "hongling_analysis_requests_total",
			Help: "Total number of full-analysis requests by tone",
		}, []string{"tone"}),

		demoFallbacks: promauto.NewCounter(prometheus.CounterOpts{
			Name: "hongling_demo_fallbacks_total",
			Help: "Full-analysis requests served from the demo dataset",
		}),

		narrativeFallbacks: promauto.NewCounter(prometheus.CounterOpts{
			Name: "hongling_narrative_fallbacks_total",
			Help: "Narrative generations that fell back to local templates",
		}),

		cacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "hongling_analysis_cache_hits_total",
			Help: "Analysis cache hits",
		}),

		cacheMisses: promauto.NewCounter(prometheus.CounterOpts{
			Name: "hongling_analysis_cache_misses_total",
			Help: "Analysis cache misses",
		}),

		storedCharts: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "hongling_stored_charts",
			Help: "Charts currently persisted",
		}),

		activeSessions: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "hongling_active_sessions",
			Help: "Sessions with an expiry in the future",
		}),
	}
}

func (m *MetricsProvider) IncAnalysisRequests(tone string) {
	m.analysisRequests.WithLabelValues(tone).Inc()
}

func (m *MetricsProvider) IncDemoFallbacks() {
	m.demoFallbacks.Inc()
}

func (m *MetricsProvider) IncNarrativeFallbacks() {
	m.narrativeFallbacks.Inc()
}

func (m *MetricsProvider) IncCacheHits() {
	m.cacheHits.Inc()
}

func (m *MetricsProvider) IncCacheMisses() {
	m.cacheMisses.Inc()
}

func (m *MetricsProvider) SetStoredCharts(count int64) {
	m.storedCharts.Set(float64(count))
}

func (m *MetricsProvider) SetActiveSessions(count int64) {
	m.activeSessions.Set(float64(count))
}

// NoopMetrics satisfies the interface when metrics are disabled (tests).
type NoopMetrics struct{}

func (NoopMetrics) IncAnalysisRequests(string) {}
func (NoopMetrics) IncDemoFallbacks()          {}
func (NoopMetrics) IncNarrativeFallbacks()     {}
func (NoopMetrics) IncCacheHits()              {}
func (NoopMetrics) IncCacheMisses()            {}
func (NoopMetrics) SetStoredCharts(int64)      {}
func (NoopMetrics) SetActiveSessions(int64)    {}
