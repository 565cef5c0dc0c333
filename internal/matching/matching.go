package matching

import (
	"math"

	"foodbridge/internal/directory"
	apperrors "foodbridge/internal/errors"
	"foodbridge/internal/models"
)

const (
	// EarthRadiusKm is the mean Earth radius used by Haversine
	EarthRadiusKm = 6371.0

	// Urgency score weights
	RemainingHoursWeight = 0.4
	ProximityWeight      = 0.4
	CapacityWeight       = 0.2

	// MinDistanceKm bounds the proximity term for NGOs at the city center
	MinDistanceKm = 0.1

	// PickupSpeedKmPerMinute is the assumed effective travel speed (30 km/h)
	PickupSpeedKmPerMinute = 0.5
)

// Engine selects NGOs from an immutable directory snapshot. It is safe for
// concurrent use.
type Engine struct {
	dir *directory.Directory
}

// NewEngine creates an engine over a private copy of d
func NewEngine(d *directory.Directory) *Engine {
	return &Engine{dir: d.Clone()}
}

// Haversine returns the great-circle distance between a and b in kilometres
func Haversine(a, b models.Coordinates) float64 {
	dLat := toRadians(b.Lat - a.Lat)
	dLng := toRadians(b.Lng - a.Lng)
	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(a.Lat))*math.Cos(toRadians(b.Lat))*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
	return EarthRadiusKm * c
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

// UrgencyScore blends remaining safe time, proximity and capacity preference
func UrgencyScore(remainingHours, distanceKm, capacityScore float64) float64 {
	return RemainingHoursWeight*remainingHours +
		ProximityWeight*(1/math.Max(distanceKm, MinDistanceKm)) +
		CapacityWeight*capacityScore
}

// PickupMinutes estimates pickup time from distance
func PickupMinutes(distanceKm float64) int {
	return int(math.Round(distanceKm / PickupSpeedKmPerMinute))
}

// FindBestNGO selects the highest scoring NGO in city.
//
// An unknown city returns CityNotFoundError. When the city has no
// candidates the first directory entry is returned as a fallback with a
// zero urgency score. A nil result with a nil error means the directory is
// empty and there is no match.
func (e *Engine) FindBestNGO(city string, remainingHours float64) (*models.MatchResult, error) {
	center, ok := e.dir.Center(city)
	if !ok {
		return nil, apperrors.CityNotFoundError{City: city}
	}

	var (
		best         *models.NGOCandidate
		bestScore    = math.Inf(-1)
		bestDistance float64
	)
	for i := range e.dir.NGOs {
		ngo := &e.dir.NGOs[i]
		if ngo.City != city {
			continue
		}
		distance := Haversine(center, ngo.Location())
		score := UrgencyScore(remainingHours, distance, ngo.CapacityScore)
		// strict comparison keeps the first candidate on ties
		if score > bestScore {
			best = ngo
			bestScore = score
			bestDistance = distance
		}
	}

	if best == nil {
		if len(e.dir.NGOs) == 0 {
			return nil, nil
		}
		first := e.dir.NGOs[0]
		result := snapshot(first, Haversine(center, first.Location()), 0)
		result.Fallback = true
		return result, nil
	}

	return snapshot(*best, bestDistance, bestScore), nil
}

func snapshot(ngo models.NGOCandidate, distanceKm, score float64) *models.MatchResult {
	return &models.MatchResult{
		NGOID:                  ngo.ID,
		NGOName:                ngo.Name,
		NGOArea:                ngo.Area,
		City:                   ngo.City,
		DistanceKm:             round(distanceKm, 1),
		EstimatedPickupMinutes: PickupMinutes(distanceKm),
		UrgencyScore:           round(score, 2),
	}
}

func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
