package models

// FoodType is the category of a donated dish
type FoodType string

const (
	FoodRice       FoodType = "rice"
	FoodCurry      FoodType = "curry"
	FoodBread      FoodType = "bread"
	FoodDesserts   FoodType = "desserts"
	FoodVegetables FoodType = "vegetables"
	FoodFish       FoodType = "fish"
	FoodDairy      FoodType = "dairy"
	FoodOther      FoodType = "other"
)

// StorageCondition describes how a donation has been kept since cooking
type StorageCondition string

const (
	StorageRefrigerated    StorageCondition = "refrigerated"
	StorageRoomTemperature StorageCondition = "roomTemperature"
	StorageHot             StorageCondition = "hot"
)

// SafetyStatus is the spoilage verdict for a donation
type SafetyStatus string

const (
	StatusSafe   SafetyStatus = "Safe"
	StatusUrgent SafetyStatus = "Urgent"
	StatusUnsafe SafetyStatus = "Unsafe"
)

// DonationAttributes is the input to the safety engine
type DonationAttributes struct {
	FoodType             FoodType         `json:"food_type" yaml:"food_type"`
	QuantityKg           float64          `json:"quantity_kg" yaml:"quantity_kg"`
	TimeSinceCookedHours float64          `json:"time_since_cooked_hours" yaml:"time_since_cooked_hours"`
	StorageCondition     StorageCondition `json:"storage_condition" yaml:"storage_condition"`
	City                 string           `json:"city" yaml:"city"`
}

// SafetyVerdict is computed fresh on every evaluation. Message is derived
// from Status and RemainingHours.
type SafetyVerdict struct {
	Status         SafetyStatus `json:"status"`
	RemainingHours float64      `json:"remaining_hours"`
	Message        string       `json:"message"`
}

// Coordinates is a WGS84 point in decimal degrees
type Coordinates struct {
	Lat float64 `json:"lat" yaml:"lat"`
	Lng float64 `json:"lng" yaml:"lng"`
}

// NGOCandidate is a receiving organization from the reference directory
type NGOCandidate struct {
	ID            string  `json:"id" yaml:"id" db:"id"`
	Name          string  `json:"name" yaml:"name" db:"name"`
	City          string  `json:"city" yaml:"city" db:"city"`
	Area          string  `json:"area" yaml:"area" db:"area"`
	Lat           float64 `json:"lat" yaml:"lat" db:"lat"`
	Lng           float64 `json:"lng" yaml:"lng" db:"lng"`
	CapacityScore float64 `json:"capacity_score" yaml:"capacity_score" db:"capacity_score"` // relative weight in [0,1]
}

// Location returns the candidate's coordinates
func (c NGOCandidate) Location() Coordinates {
	return Coordinates{Lat: c.Lat, Lng: c.Lng}
}

// MatchResult is a snapshot of the selected candidate. Fallback marks the
// degraded first-entry match used when the city has no candidates.
type MatchResult struct {
	NGOID                  string  `json:"ngo_id"`
	NGOName                string  `json:"ngo_name"`
	NGOArea                string  `json:"ngo_area"`
	City                   string  `json:"city"`
	DistanceKm             float64 `json:"distance_km"`
	EstimatedPickupMinutes int     `json:"estimated_pickup_minutes"`
	UrgencyScore           float64 `json:"urgency_score"`
	Fallback               bool    `json:"fallback"`
}
