package handlers

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"

	"foodbridge/internal/config"
	apperrors "foodbridge/internal/errors"
	"foodbridge/internal/logger"
	"foodbridge/internal/matching"
	"foodbridge/internal/metrics"
	"foodbridge/internal/models"
	"foodbridge/internal/safety"
)

// DonationHandler serves the safety and matching decisions. It holds no
// mutable state; the engines read immutable reference data.
type DonationHandler struct {
	Safety   *safety.Engine
	Matching *matching.Engine
	Metrics  *metrics.Metrics
	Cfg      *config.Config
}

func NewDonationHandler(s *safety.Engine, m *matching.Engine, mt *metrics.Metrics, cfg *config.Config) *DonationHandler {
	return &DonationHandler{Safety: s, Matching: m, Metrics: mt, Cfg: cfg}
}

// MatchResponse wraps a match outcome. Result is nil when Matched is false.
type MatchResponse struct {
	Matched bool                `json:"matched"`
	Result  *models.MatchResult `json:"result,omitempty"`
}

// SubmitResponse is the outcome of evaluating and matching one donation.
// It encodes as {verdict, matched, result}.
type SubmitResponse struct {
	Verdict models.SafetyVerdict `json:"verdict"`
	MatchResponse
}

// TriageRequest is the body of the triage endpoint
type TriageRequest struct {
	Donations []models.DonationAttributes `json:"donations"`
}

// validateDonation performs the input checks the safety engine leaves to
// its caller. Unknown food types and storage conditions are accepted: the
// engine handles them with its defaults.
func validateDonation(d models.DonationAttributes, prefix string) error {
	switch {
	case math.IsNaN(d.QuantityKg) || d.QuantityKg <= 0:
		return apperrors.ValidationError{Field: prefix + "quantity_kg", Message: "must be positive"}
	case math.IsNaN(d.TimeSinceCookedHours) || d.TimeSinceCookedHours < 0:
		return apperrors.ValidationError{Field: prefix + "time_since_cooked_hours", Message: "must not be negative"}
	case strings.TrimSpace(d.City) == "":
		return apperrors.ValidationError{Field: prefix + "city", Message: "is required"}
	}
	return nil
}

func (h *DonationHandler) evaluate(ctx context.Context, d models.DonationAttributes) models.SafetyVerdict {
	if !d.StorageCondition.Valid() {
		logger.DebugContext(ctx, "Unrecognized storage condition, using room temperature threshold", "storage_condition", d.StorageCondition)
	}
	v := h.Safety.Evaluate(d)
	h.Metrics.ObserveVerdict(v.Status)
	logger.DebugContext(ctx, "Safety evaluated",
		"food_type", d.FoodType,
		"storage_condition", d.StorageCondition,
		"city", d.City,
		"status", v.Status,
		"remaining_hours", v.RemainingHours,
	)
	return v
}

func (h *DonationHandler) match(ctx context.Context, city string, remainingHours float64) (*models.MatchResult, error) {
	result, err := h.Matching.FindBestNGO(city, remainingHours)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			h.Metrics.ObserveMatch(metrics.OutcomeCityNotFound, nil)
		}
		return nil, err
	}

	outcome := metrics.Outcome(result)
	h.Metrics.ObserveMatch(outcome, result)
	if result != nil {
		logger.DebugContext(ctx, "NGO selected", "city", city, "ngo_id", result.NGOID, "outcome", outcome,
			"distance_km", result.DistanceKm, "urgency_score", result.UrgencyScore)
	} else {
		logger.Warn("No NGO available", "city", city)
	}
	if outcome == metrics.OutcomeFallback {
		logger.Warn("No NGO in city, using fallback directory entry", "city", city, "ngo_id", result.NGOID)
	}
	return result, nil
}

// Evaluate handles POST /api/safety/evaluate
func (h *DonationHandler) Evaluate(w http.ResponseWriter, r *http.Request) {
	var d models.DonationAttributes
	if err := decodeJSON(w, r, &d); err != nil {
		writeError(w, err)
		return
	}
	if err := validateDonation(d, ""); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, h.evaluate(r.Context(), d))
}

// Match handles GET /api/match?city=&hours=
func (h *DonationHandler) Match(w http.ResponseWriter, r *http.Request) {
	city := strings.TrimSpace(r.URL.Query().Get("city"))
	if city == "" {
		writeError(w, apperrors.ValidationError{Field: "city", Message: "query parameter is required"})
		return
	}

	hours, err := parseHours(r.URL.Query().Get("hours"))
	if err != nil {
		writeError(w, err)
		return
	}

	result, err := h.match(r.Context(), city, hours)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, MatchResponse{Matched: result != nil, Result: result})
}

// Submit handles POST /api/donations/submit: evaluate, then match unless
// the food is unsafe. Nothing is persisted.
func (h *DonationHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var d models.DonationAttributes
	if err := decodeJSON(w, r, &d); err != nil {
		writeError(w, err)
		return
	}
	if err := validateDonation(d, ""); err != nil {
		writeError(w, err)
		return
	}

	verdict := h.evaluate(r.Context(), d)
	if verdict.Status == models.StatusUnsafe {
		logger.InfoContext(r.Context(), "Donation rejected as unsafe", "city", d.City, "food_type", d.FoodType, "message", verdict.Message)
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
			"error":   apperrors.ErrUnsafeFood.Error(),
			"verdict": verdict,
		})
		return
	}

	result, err := h.match(r.Context(), d.City, verdict.RemainingHours)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, SubmitResponse{
		Verdict:       verdict,
		MatchResponse: MatchResponse{Matched: result != nil, Result: result},
	})
}

// Triage handles POST /api/donations/triage?emergency=true
func (h *DonationHandler) Triage(w http.ResponseWriter, r *http.Request) {
	emergency := false
	if v := r.URL.Query().Get("emergency"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			writeError(w, apperrors.ValidationError{Field: "emergency", Message: "must be a boolean"})
			return
		}
		emergency = b
	}

	var req TriageRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, err)
		return
	}
	for i, d := range req.Donations {
		if err := validateDonation(d, fmt.Sprintf("donations[%d].", i)); err != nil {
			writeError(w, err)
			return
		}
	}

	results := h.Safety.Triage(req.Donations, emergency)
	for _, res := range results {
		h.Metrics.ObserveVerdict(res.Verdict.Status)
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"emergency": emergency,
		"results":   results,
	})
}

func parseHours(raw string) (float64, error) {
	if raw == "" {
		return 0, apperrors.ValidationError{Field: "hours", Message: "query parameter is required"}
	}
	hours, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(hours) || math.IsInf(hours, 0) {
		return 0, apperrors.ValidationError{Field: "hours", Message: "must be a number"}
	}
	if hours < 0 {
		return 0, apperrors.ValidationError{Field: "hours", Message: "must not be negative"}
	}
	return hours, nil
}
