package safety

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"

	"foodbridge/internal/models"
)

// Base spoilage thresholds in hours
const (
	RefrigeratedHours    = 24.0
	HotHours             = 4.0
	RoomTemperatureHours = 6.0

	// PerishablePenaltyHours applies to fish and dairy
	PerishablePenaltyHours = 2.0
	// ClimatePenaltyHours applies to high-temperature cities
	ClimatePenaltyHours = 0.5

	SafeMinHours   = 3.0
	UrgentMinHours = 1.0
)

// Engine evaluates donation safety. It holds only the high-temperature city
// set, which is never modified after construction.
type Engine struct {
	highTemp map[string]struct{}
}

// NewEngine creates an engine that applies the climate penalty to the given cities
func NewEngine(highTemperatureCities []string) *Engine {
	set := make(map[string]struct{}, len(highTemperatureCities))
	for _, c := range highTemperatureCities {
		set[c] = struct{}{}
	}
	return &Engine{highTemp: set}
}

// IsHighTemperature reports whether the climate penalty applies to city
func (e *Engine) IsHighTemperature(city string) bool {
	_, ok := e.highTemp[city]
	return ok
}

// Threshold returns the adjusted spoilage threshold for a donation, clamped to >= 0.
// Unrecognized storage conditions use the room temperature threshold.
func (e *Engine) Threshold(d models.DonationAttributes) float64 {
	var threshold float64
	switch d.StorageCondition {
	case models.StorageRefrigerated:
		threshold = RefrigeratedHours
	case models.StorageHot:
		threshold = HotHours
	default:
		threshold = RoomTemperatureHours
	}

	if d.FoodType.Perishable() {
		threshold -= PerishablePenaltyHours
	}
	if e.IsHighTemperature(d.City) {
		threshold -= ClimatePenaltyHours
	}

	return math.Max(0, threshold)
}

// Evaluate returns the safety verdict for a donation. It never fails and does
// not validate its input: a negative time since cooking extends the
// remaining time beyond the threshold.
func (e *Engine) Evaluate(d models.DonationAttributes) models.SafetyVerdict {
	remaining := math.Max(0, e.Threshold(d)-d.TimeSinceCookedHours)
	status := Classify(remaining)
	return models.SafetyVerdict{
		Status:         status,
		RemainingHours: remaining,
		Message:        Message(status, remaining),
	}
}

// Classify maps remaining hours to a status. Boundaries are inclusive at the
// lower end: 3.0 is Safe, 1.0 is Urgent.
func Classify(remainingHours float64) models.SafetyStatus {
	switch {
	case remainingHours >= SafeMinHours:
		return models.StatusSafe
	case remainingHours >= UrgentMinHours:
		return models.StatusUrgent
	default:
		return models.StatusUnsafe
	}
}

// Message formats the human-readable verdict text. Rounding happens here only.
func Message(status models.SafetyStatus, remainingHours float64) string {
	switch status {
	case models.StatusSafe:
		return fmt.Sprintf("Safe for %s more hours", FormatFixed(remainingHours, 1))
	case models.StatusUrgent:
		return fmt.Sprintf("Urgent: %s hours remaining", FormatFixed(remainingHours, 1))
	default:
		if remainingHours <= 0 {
			return "Unsafe: Food has expired"
		}
		return fmt.Sprintf("Unsafe: Only %s minutes remaining", FormatFixed(remainingHours*60, 0))
	}
}

// FormatFixed formats x with the given number of decimal places, rounding
// exact halves of the binary value away from zero. strconv rounds them to
// even, which would print 4.25 as "4.2".
func FormatFixed(x float64, places int) string {
	if math.IsNaN(x) || math.IsInf(x, 0) || places < 0 {
		return strconv.FormatFloat(x, 'f', places, 64)
	}

	sign := ""
	if x < 0 {
		sign = "-"
		x = -x
	}

	scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(places)), nil)
	v := new(big.Float).SetPrec(256).SetFloat64(x)
	v.Mul(v, new(big.Float).SetPrec(256).SetInt(scale))
	v.Add(v, big.NewFloat(0.5))
	n, _ := v.Int(nil)

	digits := n.String()
	if places == 0 {
		return sign + digits
	}
	if len(digits) <= places {
		digits = strings.Repeat("0", places-len(digits)+1) + digits
	}
	cut := len(digits) - places
	return sign + digits[:cut] + "." + digits[cut:]
}
