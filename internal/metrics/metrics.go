// Package metrics defines the Prometheus collectors of the practice server.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Replenishment sources.
const (
	SourceGenerated = "generated"
	SourceStored    = "stored"
	SourceFailed    = "failed"
)

// Metrics groups the collectors. A nil *Metrics is valid and records nothing.
type Metrics struct {
	gatherer prometheus.Gatherer

	completions           *prometheus.CounterVec
	generationAttempts    *prometheus.CounterVec
	generationDuration    *prometheus.HistogramVec
	replenishments        *prometheus.CounterVec
	segmentationFallbacks *prometheus.CounterVec
	activeSessions        prometheus.Gauge
}

// New registers the collectors on a fresh registry (with Go and process
// collectors) and returns them.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	return NewWithRegistry(reg, reg)
}

// NewWithRegistry registers the collectors on reg and serves them from g.
func NewWithRegistry(reg prometheus.Registerer, g prometheus.Gatherer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		gatherer: g,

		completions: f.NewCounterVec(prometheus.CounterOpts{
			Name: "practice_completions_total",
			Help: "Exercises completed by outcome",
		}, []string{"outcome"}),

		generationAttempts: f.NewCounterVec(prometheus.CounterOpts{
			Name: "practice_generation_attempts_total",
			Help: "Exercise generation attempts by provider and result",
		}, []string{"provider", "result"}),

		generationDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "practice_generation_duration_seconds",
			Help:    "Exercise generation latency in seconds",
			Buckets: prometheus.ExponentialBuckets(0.25, 2, 8), // 250ms to 32s
		}, []string{"provider"}),

		replenishments: f.NewCounterVec(prometheus.CounterOpts{
			Name: "practice_replenishments_total",
			Help: "Queue replenishments by exercise source",
		}, []string{"source"}),

		segmentationFallbacks: f.NewCounterVec(prometheus.CounterOpts{
			Name: "practice_segmentation_fallbacks_total",
			Help: "Sentences segmented by the heuristic fallback, by script",
		}, []string{"script"}),

		activeSessions: f.NewGauge(prometheus.GaugeOpts{
			Name: "practice_active_sessions",
			Help: "Practice sessions held in memory",
		}),
	}
}

// Handler serves the metrics in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}

func (m *Metrics) Completion(outcome string) {
	if m == nil {
		return
	}
	m.completions.WithLabelValues(outcome).Inc()
}

func (m *Metrics) GenerationAttempt(provider string, err error, took time.Duration) {
	if m == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.generationAttempts.WithLabelValues(provider, result).Inc()
	m.generationDuration.WithLabelValues(provider).Observe(took.Seconds())
}

func (m *Metrics) Replenished(source string) {
	if m == nil {
		return
	}
	m.replenishments.WithLabelValues(source).Inc()
}

func (m *Metrics) SegmentationFallback(script string) {
	if m == nil {
		return
	}
	m.segmentationFallbacks.WithLabelValues(script).Inc()
}

func (m *Metrics) SetActiveSessions(n int) {
	if m == nil {
		return
	}
	m.activeSessions.Set(float64(n))
}
