package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"foodbridge/internal/models"
)

// Match outcomes
const (
	OutcomeMatched      = "matched"
	OutcomeFallback     = "fallback"
	OutcomeNone         = "none"
	OutcomeCityNotFound = "city_not_found"
)

// Metrics holds the decision counters. A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry      *prometheus.Registry
	verdicts      *prometheus.CounterVec
	matches       *prometheus.CounterVec
	matchDistance prometheus.Histogram
}

// New creates the collectors and registers them on a dedicated registry
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		verdicts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "foodbridge",
			Name:      "safety_verdicts_total",
			Help:      "Safety evaluations by resulting status.",
		}, []string{"status"}),
		matches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "foodbridge",
			Name:      "matches_total",
			Help:      "NGO match attempts by outcome.",
		}, []string{"outcome"}),
		matchDistance: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "foodbridge",
			Name:      "match_distance_km",
			Help:      "Distance between the city center and the matched NGO.",
			Buckets:   []float64{0.5, 1, 2, 5, 10, 20, 50, 100, 250},
		}),
	}

	m.registry.MustRegister(
		m.verdicts,
		m.matches,
		m.matchDistance,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Registry exposes the underlying registry
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveVerdict counts a safety verdict
func (m *Metrics) ObserveVerdict(status models.SafetyStatus) {
	if m == nil {
		return
	}
	m.verdicts.WithLabelValues(string(status)).Inc()
}

// ObserveMatch counts a match attempt. result may be nil.
func (m *Metrics) ObserveMatch(outcome string, result *models.MatchResult) {
	if m == nil {
		return
	}
	m.matches.WithLabelValues(outcome).Inc()
	if result != nil {
		m.matchDistance.Observe(result.DistanceKm)
	}
}

// Outcome classifies a FindBestNGO return value
func Outcome(result *models.MatchResult) string {
	switch {
	case result == nil:
		return OutcomeNone
	case result.Fallback:
		return OutcomeFallback
	default:
		return OutcomeMatched
	}
}
