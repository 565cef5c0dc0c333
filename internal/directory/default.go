package directory

import "foodbridge/internal/models"

// Default returns the built-in Maharashtra directory
func Default() *Directory {
	return &Directory{
		Cities: map[string]models.Coordinates{
			"Mumbai":     {Lat: 19.0760, Lng: 72.8777},
			"Pune":       {Lat: 18.5204, Lng: 73.8567},
			"Nagpur":     {Lat: 21.1458, Lng: 79.0882},
			"Nashik":     {Lat: 19.9975, Lng: 73.7898},
			"Aurangabad": {Lat: 19.8762, Lng: 75.3433},
			"Kolhapur":   {Lat: 16.7050, Lng: 74.2433},
		},
		HighTemperature: []string{"Mumbai", "Nashik", "Aurangabad", "Nagpur"},
		NGOs: []models.NGOCandidate{
			{ID: "rha-andheri", Name: "Robin Hood Army", City: "Mumbai", Area: "Andheri", Lat: 19.1136, Lng: 72.8697, CapacityScore: 0.9},
			{ID: "rb-dadar", Name: "Roti Bank", City: "Mumbai", Area: "Dadar", Lat: 19.0176, Lng: 72.8422, CapacityScore: 0.8},
			{ID: "fi-bandra", Name: "Feeding India", City: "Mumbai", Area: "Bandra", Lat: 19.0544, Lng: 72.8402, CapacityScore: 0.85},
			{ID: "af-kothrud", Name: "Annadaan Foundation", City: "Pune", Area: "Kothrud", Lat: 18.5018, Lng: 73.8077, CapacityScore: 0.75},
			{ID: "ss-shivajinagar", Name: "Seva Sahayog", City: "Pune", Area: "Shivajinagar", Lat: 18.5308, Lng: 73.8474, CapacityScore: 0.8},
			{ID: "bst-dharampeth", Name: "Bhojan Seva Trust", City: "Nagpur", Area: "Dharampeth", Lat: 21.1458, Lng: 79.0882, CapacityScore: 0.7},
			{ID: "gnn-sitabuldi", Name: "Green Nagpur NGO", City: "Nagpur", Area: "Sitabuldi", Lat: 21.1497, Lng: 79.0809, CapacityScore: 0.65},
			{ID: "nf-nashik", Name: "Nashik Food Bank", City: "Nashik", Area: "Nashik Road", Lat: 19.9975, Lng: 73.7898, CapacityScore: 0.7},
			{ID: "af-aurangabad", Name: "Aurangabad Relief Trust", City: "Aurangabad", Area: "Cidco", Lat: 19.8762, Lng: 75.3433, CapacityScore: 0.65},
			{ID: "kf-kolhapur", Name: "Kolhapur Food Mission", City: "Kolhapur", Area: "Rajarampuri", Lat: 16.7050, Lng: 74.2433, CapacityScore: 0.6},
		},
	}
}
