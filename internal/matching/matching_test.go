package matching

import (
	"errors"
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"foodbridge/internal/directory"
	apperrors "foodbridge/internal/errors"
	"foodbridge/internal/models"
)

// referenceDistance uses the arcsine form of the haversine formula
func referenceDistance(lat1, lng1, lat2, lng2 float64) float64 {
	rad := math.Pi / 180
	dLat := (lat2 - lat1) * rad
	dLng := (lng2 - lng1) * rad
	h := math.Pow(math.Sin(dLat/2), 2) + math.Cos(lat1*rad)*math.Cos(lat2*rad)*math.Pow(math.Sin(dLng/2), 2)
	return 2 * 6371 * math.Asin(math.Sqrt(h))
}

func TestHaversine(t *testing.T) {
	mumbai := models.Coordinates{Lat: 19.0760, Lng: 72.8777}
	pune := models.Coordinates{Lat: 18.5204, Lng: 73.8567}

	d := Haversine(mumbai, pune)
	assert.InDelta(t, referenceDistance(mumbai.Lat, mumbai.Lng, pune.Lat, pune.Lng), d, 1e-6)
	assert.InDelta(t, 120, d, 5)
	assert.Equal(t, 0.0, Haversine(mumbai, mumbai))
	assert.InDelta(t, d, Haversine(pune, mumbai), 1e-9)
}

func TestUrgencyScore(t *testing.T) {
	assert.InDelta(t, 0.4*5+0.4/2+0.2*0.5, UrgencyScore(5, 2, 0.5), 1e-12)
	// distances under 0.1 km are treated as 0.1 km
	assert.Equal(t, UrgencyScore(1, 0.1, 1), UrgencyScore(1, 0, 1))
	assert.Equal(t, UrgencyScore(1, 0.1, 1), UrgencyScore(1, 0.05, 1))
}

func TestPickupMinutes(t *testing.T) {
	assert.Equal(t, 0, PickupMinutes(0))
	assert.Equal(t, 9, PickupMinutes(4.3))
	assert.Equal(t, 240, PickupMinutes(120))
}

func TestFindBestNGO_Mumbai(t *testing.T) {
	dir := directory.Default()
	engine := NewEngine(dir)

	result, err := engine.FindBestNGO("Mumbai", 5)
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, "Mumbai", result.City)
	assert.Equal(t, "Robin Hood Army", result.NGOName)
	assert.Equal(t, "Andheri", result.NGOArea)
	assert.False(t, result.Fallback)

	center := dir.Cities["Mumbai"]
	raw := referenceDistance(center.Lat, center.Lng, 19.1136, 72.8697)
	assert.InDelta(t, math.Round(raw*10)/10, result.DistanceKm, 1e-6)
	assert.Equal(t, int(math.Round(raw/0.5)), result.EstimatedPickupMinutes)

	score := 0.4*5 + 0.4/raw + 0.2*0.9
	assert.InDelta(t, math.Round(score*100)/100, result.UrgencyScore, 1e-6)
}

func TestFindBestNGO_CandidateAtCityCenter(t *testing.T) {
	engine := NewEngine(directory.Default())

	result, err := engine.FindBestNGO("Nagpur", 2)
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, "Bhojan Seva Trust", result.NGOName)
	assert.Equal(t, 0.0, result.DistanceKm)
	assert.Equal(t, 0, result.EstimatedPickupMinutes)
	assert.Equal(t, 4.94, result.UrgencyScore)
}

func TestFindBestNGO_UnknownCity(t *testing.T) {
	engine := NewEngine(directory.Default())

	result, err := engine.FindBestNGO("Atlantis", 5)

	assert.Nil(t, result)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
	var cnf apperrors.CityNotFoundError
	require.True(t, errors.As(err, &cnf))
	assert.Equal(t, "Atlantis", cnf.City)
}

func TestFindBestNGO_Deterministic(t *testing.T) {
	engine := NewEngine(directory.Default())

	first, err := engine.FindBestNGO("Pune", 3.5)
	require.NoError(t, err)
	second, err := engine.FindBestNGO("Pune", 3.5)
	require.NoError(t, err)

	assert.Equal(t, *first, *second)
}

func TestFindBestNGO_TieKeepsDirectoryOrder(t *testing.T) {
	dir := &directory.Directory{
		Cities: map[string]models.Coordinates{"Equator": {Lat: 0, Lng: 0}},
		NGOs: []models.NGOCandidate{
			{ID: "north", Name: "North Kitchen", City: "Equator", Lat: 0.01, Lng: 0, CapacityScore: 0.5},
			{ID: "south", Name: "South Kitchen", City: "Equator", Lat: -0.01, Lng: 0, CapacityScore: 0.5},
		},
	}
	require.Equal(t, UrgencyScore(4, Haversine(models.Coordinates{}, dir.NGOs[0].Location()), 0.5),
		UrgencyScore(4, Haversine(models.Coordinates{}, dir.NGOs[1].Location()), 0.5))

	result, err := NewEngine(dir).FindBestNGO("Equator", 4)
	require.NoError(t, err)
	assert.Equal(t, "North Kitchen", result.NGOName)

	dir.NGOs[0], dir.NGOs[1] = dir.NGOs[1], dir.NGOs[0]
	result, err = NewEngine(dir).FindBestNGO("Equator", 4)
	require.NoError(t, err)
	assert.Equal(t, "South Kitchen", result.NGOName)
}

func TestFindBestNGO_FallbackToFirstEntry(t *testing.T) {
	dir := directory.Default()
	dir.Cities["Thane"] = models.Coordinates{Lat: 19.2183, Lng: 72.9781}
	engine := NewEngine(dir)

	result, err := engine.FindBestNGO("Thane", 10)
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.True(t, result.Fallback)
	assert.Equal(t, "Robin Hood Army", result.NGOName)
	assert.Equal(t, "Mumbai", result.City)
	assert.Equal(t, 0.0, result.UrgencyScore)

	raw := referenceDistance(19.2183, 72.9781, 19.1136, 72.8697)
	assert.InDelta(t, math.Round(raw*10)/10, result.DistanceKm, 1e-6)
	assert.Equal(t, int(math.Round(raw/0.5)), result.EstimatedPickupMinutes)
}

func TestFindBestNGO_EmptyDirectory(t *testing.T) {
	dir := &directory.Directory{
		Cities: map[string]models.Coordinates{"Pune": {Lat: 18.5204, Lng: 73.8567}},
	}

	result, err := NewEngine(dir).FindBestNGO("Pune", 5)

	assert.NoError(t, err)
	assert.Nil(t, result)
}

func TestFindBestNGO_ProximityCanOutweighCapacity(t *testing.T) {
	dir := &directory.Directory{
		Cities: map[string]models.Coordinates{"Pune": {Lat: 18.5204, Lng: 73.8567}},
		NGOs: []models.NGOCandidate{
			{ID: "far", Name: "Far But Large", City: "Pune", Lat: 18.60, Lng: 73.90, CapacityScore: 1},
			{ID: "near", Name: "Near But Small", City: "Pune", Lat: 18.5205, Lng: 73.8568, CapacityScore: 0},
		},
	}

	result, err := NewEngine(dir).FindBestNGO("Pune", 1)
	require.NoError(t, err)
	assert.Equal(t, "Near But Small", result.NGOName)
}

func TestNewEngine_CopiesDirectory(t *testing.T) {
	dir := directory.Default()
	engine := NewEngine(dir)

	before, err := engine.FindBestNGO("Mumbai", 5)
	require.NoError(t, err)

	dir.NGOs[0].Name = "Renamed"
	delete(dir.Cities, "Mumbai")

	after, err := engine.FindBestNGO("Mumbai", 5)
	require.NoError(t, err)
	assert.Equal(t, *before, *after)
}

func TestFindBestNGO_Concurrent(t *testing.T) {
	engine := NewEngine(directory.Default())
	want, err := engine.FindBestNGO("Pune", 6)
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([]*models.MatchResult, 32)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = engine.FindBestNGO("Pune", 6)
		}(i)
	}
	wg.Wait()

	for _, r := range results {
		require.NotNil(t, r)
		assert.Equal(t, *want, *r)
	}
}
