package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"foodbridge/internal/models"
)

func TestObserveVerdict(t *testing.T) {
	m := New()

	m.ObserveVerdict(models.StatusSafe)
	m.ObserveVerdict(models.StatusSafe)
	m.ObserveVerdict(models.StatusUnsafe)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.verdicts.WithLabelValues("Safe")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.verdicts.WithLabelValues("Unsafe")))
}

func TestObserveMatch(t *testing.T) {
	m := New()

	m.ObserveMatch(OutcomeMatched, &models.MatchResult{DistanceKm: 4.3})
	m.ObserveMatch(OutcomeCityNotFound, nil)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.matches.WithLabelValues(OutcomeMatched)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.matches.WithLabelValues(OutcomeCityNotFound)))
	assert.Equal(t, 1, testutil.CollectAndCount(m.matchDistance))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveVerdict(models.StatusSafe)
		m.ObserveMatch(OutcomeNone, nil)
	})
}

func TestOutcome(t *testing.T) {
	assert.Equal(t, OutcomeNone, Outcome(nil))
	assert.Equal(t, OutcomeFallback, Outcome(&models.MatchResult{Fallback: true}))
	assert.Equal(t, OutcomeMatched, Outcome(&models.MatchResult{}))
}

func TestHandler(t *testing.T) {
	m := New()
	m.ObserveVerdict(models.StatusUrgent)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `foodbridge_safety_verdicts_total{status="Urgent"} 1`)
}
