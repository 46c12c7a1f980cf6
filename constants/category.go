package constants

import (
	"strings"
)

type Category string

const (
	Agriculture             Category = "Agriculture"
	ForestVegetation        Category = "Forest/Vegetation"
	WaterResources          Category = "Water Resources"
	ClimateWeather          Category = "Climate/Weather"
	DisasterManagement      Category = "Disaster Management"
	UrbanPlanning           Category = "Urban Planning"
	EnvironmentalMonitoring Category = "Environmental Monitoring"
	Uncategorized           Category = "Uncategorized"
)

// allCategories is ordered: classification assigns the FIRST category whose
// keyword list has a substring hit, so declaration order is load-bearing.
var allCategories = []Category{
	Agriculture,
	ForestVegetation,
	WaterResources,
	ClimateWeather,
	DisasterManagement,
	UrbanPlanning,
	EnvironmentalMonitoring,
}

// CategoryKeywords maps each category to its trigger keywords (lowercase).
var CategoryKeywords = map[Category][]string{
	Agriculture:             {"crop", "agriculture", "farm", "yield", "soil", "irrigation", "harvest"},
	ForestVegetation:        {"forest", "vegetation", "ndvi", "deforestation", "tree", "biomass"},
	WaterResources:          {"water", "flood", "drought", "lake", "river", "moisture", "rainfall"},
	ClimateWeather:          {"climate", "weather", "temperature", "precipitation", "storm"},
	DisasterManagement:      {"wildfire", "flood", "disaster", "risk", "emergency", "damage"},
	UrbanPlanning:           {"urban", "city", "building", "infrastructure", "land use"},
	EnvironmentalMonitoring: {"pollution", "air quality", "emission", "environmental"},
}

// GeospatialKeywords gates which free-text survey answers count as a
// geospatial use case at all.
var GeospatialKeywords = []string{
	"satellite", "imagery", "ndvi", "vegetation", "crop", "agriculture",
	"forest", "water", "land", "climate", "weather", "monitor", "analysis",
	"detection", "classification", "map", "earth", "observation", "remote sensing",
	"wildfire", "flood", "drought", "yield", "urban", "deforestation",
}

func Categories() []Category {
	out := make([]Category, len(allCategories))
	copy(out, allCategories)
	return out
}

func AsStringSlice() []string {
	result := make([]string, len(allCategories))
	for i, cat := range allCategories {
		result[i] = string(cat)
	}
	return result
}

func Canonicalize(input string) (Category, bool) {
	if input == "" {
		return Uncategorized, false
	}

	normalized := strings.ToLower(strings.TrimSpace(input))

	for _, cat := range allCategories {
		if normalized == strings.ToLower(string(cat)) {
			return cat, true
		}
	}

	// keyword fallback, same order as classification
	for _, cat := range allCategories {
		for _, kw := range CategoryKeywords[cat] {
			if normalized == kw {
				return cat, true
			}
		}
	}

	return Uncategorized, false
}
