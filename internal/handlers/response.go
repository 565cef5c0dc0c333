package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	apperrors "foodbridge/internal/errors"
	"foodbridge/internal/logger"
)

// maxBodyBytes limits request bodies
const maxBodyBytes = 1 << 20

// writeJSON is a helper to write JSON responses
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("Error encoding JSON response", "error", err)
	}
}

// writeError is a helper to write error responses
func writeError(w http.ResponseWriter, err error) {
	var status int
	var message string

	var validation apperrors.ValidationError
	var cityNotFound apperrors.CityNotFoundError

	switch {
	case errors.As(err, &cityNotFound):
		status = http.StatusNotFound
		message = "Unknown city: " + cityNotFound.City
	case errors.Is(err, apperrors.ErrNotFound):
		status = http.StatusNotFound
		message = "Resource not found"
	case errors.As(err, &validation):
		status = http.StatusBadRequest
		message = validation.Error()
	case errors.Is(err, apperrors.ErrInvalidInput):
		status = http.StatusBadRequest
		message = "Invalid input"
	default:
		status = http.StatusInternalServerError
		message = "Internal server error"
		logger.Error("Internal error", "error", err)
	}

	writeJSON(w, status, map[string]string{"error": message})
}

// decodeJSON decodes a size-limited request body holding exactly one JSON value into v
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return apperrors.ValidationError{Field: "body", Message: err.Error()}
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return apperrors.ValidationError{Field: "body", Message: "must contain a single JSON value"}
	}
	return nil
}
