package directory

import (
	"fmt"
	"sort"

	apperrors "foodbridge/internal/errors"
	"foodbridge/internal/models"
)

// Directory is the reference data the engines read: city centers, the
// high-temperature city set and the NGO candidates in directory order.
// It is loaded once at startup and treated as immutable afterwards.
type Directory struct {
	Cities          map[string]models.Coordinates `json:"cities" yaml:"cities"`
	HighTemperature []string                      `json:"high_temperature" yaml:"high_temperature"`
	NGOs            []models.NGOCandidate         `json:"ngos" yaml:"ngos"`
}

// CityInfo is a city center with its climate flag
type CityInfo struct {
	Name            string             `json:"name"`
	Center          models.Coordinates `json:"center"`
	HighTemperature bool               `json:"high_temperature"`
	NGOCount        int                `json:"ngo_count"`
}

// Center returns the center coordinates of a city
func (d *Directory) Center(city string) (models.Coordinates, bool) {
	c, ok := d.Cities[city]
	return c, ok
}

// CityNames returns the known cities sorted by name
func (d *Directory) CityNames() []string {
	names := make([]string, 0, len(d.Cities))
	for name := range d.Cities {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CitySummaries returns every known city with its center, climate flag and
// candidate count, sorted by name
func (d *Directory) CitySummaries() []CityInfo {
	hot := make(map[string]bool, len(d.HighTemperature))
	for _, c := range d.HighTemperature {
		hot[c] = true
	}
	counts := make(map[string]int)
	for _, n := range d.NGOs {
		counts[n.City]++
	}

	out := make([]CityInfo, 0, len(d.Cities))
	for _, name := range d.CityNames() {
		out = append(out, CityInfo{
			Name:            name,
			Center:          d.Cities[name],
			HighTemperature: hot[name],
			NGOCount:        counts[name],
		})
	}
	return out
}

// Clone returns a deep copy so the caller's slices and maps can change
// without affecting engines built from the copy
func (d *Directory) Clone() *Directory {
	out := &Directory{
		Cities:          make(map[string]models.Coordinates, len(d.Cities)),
		HighTemperature: make([]string, len(d.HighTemperature)),
		NGOs:            make([]models.NGOCandidate, len(d.NGOs)),
	}
	for k, v := range d.Cities {
		out.Cities[k] = v
	}
	copy(out.HighTemperature, d.HighTemperature)
	copy(out.NGOs, d.NGOs)
	return out
}

// Validate checks the directory for internal consistency. An empty NGO list
// is valid: matching then reports no match.
func (d *Directory) Validate() error {
	for name, c := range d.Cities {
		if name == "" {
			return apperrors.ValidationError{Field: "cities", Message: "city name is empty"}
		}
		if !validCoordinates(c.Lat, c.Lng) {
			return apperrors.ValidationError{Field: "cities", Message: fmt.Sprintf("%s has out of range coordinates", name)}
		}
	}

	for _, name := range d.HighTemperature {
		if _, ok := d.Cities[name]; !ok {
			return apperrors.ValidationError{Field: "high_temperature", Message: fmt.Sprintf("unknown city %q", name)}
		}
	}

	seen := make(map[string]bool, len(d.NGOs))
	for i, n := range d.NGOs {
		field := fmt.Sprintf("ngos[%d]", i)
		if n.ID == "" {
			return apperrors.ValidationError{Field: field, Message: "id is required"}
		}
		if seen[n.ID] {
			return apperrors.ValidationError{Field: field, Message: fmt.Sprintf("duplicate id %q", n.ID)}
		}
		seen[n.ID] = true
		if n.Name == "" {
			return apperrors.ValidationError{Field: field, Message: "name is required"}
		}
		if n.City == "" {
			return apperrors.ValidationError{Field: field, Message: "city is required"}
		}
		if _, ok := d.Cities[n.City]; !ok {
			return apperrors.ValidationError{Field: field, Message: fmt.Sprintf("unknown city %q", n.City)}
		}
		if !(n.CapacityScore >= 0 && n.CapacityScore <= 1) {
			return apperrors.ValidationError{Field: field, Message: "capacity_score must be within [0,1]"}
		}
		if !validCoordinates(n.Lat, n.Lng) {
			return apperrors.ValidationError{Field: field, Message: "coordinates out of range"}
		}
	}

	return nil
}

// validCoordinates also rejects NaN
func validCoordinates(lat, lng float64) bool {
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}
