package models

var foodTypeOrder = []FoodType{
	FoodRice, FoodCurry, FoodBread, FoodDesserts,
	FoodVegetables, FoodFish, FoodDairy, FoodOther,
}

var foodTypeLabels = map[FoodType]string{
	FoodRice:       "Rice",
	FoodCurry:      "Curry",
	FoodBread:      "Bread",
	FoodDesserts:   "Desserts",
	FoodVegetables: "Vegetables",
	FoodFish:       "Fish",
	FoodDairy:      "Dairy",
	FoodOther:      "Other",
}

var storageOrder = []StorageCondition{
	StorageRefrigerated, StorageRoomTemperature, StorageHot,
}

var storageLabels = map[StorageCondition]string{
	StorageRefrigerated:    "Refrigerated",
	StorageRoomTemperature: "Room Temperature",
	StorageHot:             "Hot",
}

// Label is a display entry for an enumerated value
type Label struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// FoodTypes returns all known food types in display order
func FoodTypes() []FoodType {
	out := make([]FoodType, len(foodTypeOrder))
	copy(out, foodTypeOrder)
	return out
}

// StorageConditions returns all known storage conditions in display order
func StorageConditions() []StorageCondition {
	out := make([]StorageCondition, len(storageOrder))
	copy(out, storageOrder)
	return out
}

// Valid reports whether ft is one of the known food types
func (ft FoodType) Valid() bool {
	_, ok := foodTypeLabels[ft]
	return ok
}

// Label returns the display label, or the raw value when unknown
func (ft FoodType) Label() string {
	if l, ok := foodTypeLabels[ft]; ok {
		return l
	}
	return string(ft)
}

// Perishable reports whether the food type spoils faster than the storage
// threshold alone suggests
func (ft FoodType) Perishable() bool {
	return ft == FoodFish || ft == FoodDairy
}

// Valid reports whether sc is one of the known storage conditions
func (sc StorageCondition) Valid() bool {
	_, ok := storageLabels[sc]
	return ok
}

// Label returns the display label, or the raw value when unknown
func (sc StorageCondition) Label() string {
	if l, ok := storageLabels[sc]; ok {
		return l
	}
	return string(sc)
}

// FoodTypeLabels returns the canonical label table for food types
func FoodTypeLabels() []Label {
	out := make([]Label, 0, len(foodTypeOrder))
	for _, ft := range foodTypeOrder {
		out = append(out, Label{Value: string(ft), Label: ft.Label()})
	}
	return out
}

// StorageLabels returns the canonical label table for storage conditions
func StorageLabels() []Label {
	out := make([]Label, 0, len(storageOrder))
	for _, sc := range storageOrder {
		out = append(out, Label{Value: string(sc), Label: sc.Label()})
	}
	return out
}

// Severity orders statuses from most to least pressing: Unsafe 0, Urgent 1,
// Safe 2. Unknown statuses sort last.
func (s SafetyStatus) Severity() int {
	switch s {
	case StatusUnsafe:
		return 0
	case StatusUrgent:
		return 1
	case StatusSafe:
		return 2
	default:
		return 3
	}
}
