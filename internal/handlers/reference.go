package handlers

import (
	"net/http"

	"foodbridge/internal/directory"
	"foodbridge/internal/models"
	"foodbridge/internal/version"
)

// ReferenceHandler exposes the canonical label tables and the city list
type ReferenceHandler struct {
	cities []directory.CityInfo
}

// NewReferenceHandler snapshots the city list from d
func NewReferenceHandler(d *directory.Directory) *ReferenceHandler {
	return &ReferenceHandler{cities: d.CitySummaries()}
}

// Labels handles GET /api/reference/labels
func (h *ReferenceHandler) Labels(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"food_types":         models.FoodTypeLabels(),
		"storage_conditions": models.StorageLabels(),
	})
}

// Cities handles GET /api/reference/cities
func (h *ReferenceHandler) Cities(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"cities": h.cities,
		"total":  len(h.cities),
	})
}

// Health handles GET /healthz
func Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": version.GetVersion(),
	})
}
