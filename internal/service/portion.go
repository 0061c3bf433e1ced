package service

import (
	"fmt"
	"strings"
)

// basePortions holds base gram portions per food, bucketed by demographic.
// Foods not listed fall back to the vegetables row.
var basePortions = map[string]map[string]int{
	"rice":        {"adult_male": 100, "adult_female": 80, "child": 60},
	"wheat":       {"adult_male": 80, "adult_female": 65, "child": 50},
	"toor_dal":    {"adult_male": 60, "adult_female": 50, "child": 40},
	"moong_dal":   {"adult_male": 60, "adult_female": 50, "child": 40},
	"urad_dal":    {"adult_male": 60, "adult_female": 50, "child": 40},
	"vegetables":  {"adult_male": 100, "adult_female": 100, "child": 75},
	"ghee":        {"adult_male": 15, "adult_female": 12, "child": 8},
	"coconut_oil": {"adult_male": 15, "adult_female": 12, "child": 8},
}

var activityMultipliers = map[string]float64{
	"low":      0.8,
	"moderate": 1.0,
	"high":     1.2,
}

// PortionCalculator derives gram portions from age, gender and activity
// level. Every input combination resolves to a number; there is no error
// path.
type PortionCalculator struct{}

// NewPortionCalculator creates a PortionCalculator.
func NewPortionCalculator() *PortionCalculator {
	return &PortionCalculator{}
}

// CalculatePortion returns the portion in grams and its display label.
// Under-18s use the child bucket; otherwise gender selects the adult
// bucket, with any unrecognized gender falling through to adult_female.
// Unrecognized activity levels scale by 1.0.
func (c *PortionCalculator) CalculatePortion(foodKey string, age int, gender, activityLevel string) (int, string) {
	var bucket string
	switch {
	case age < 18:
		bucket = "child"
	case strings.EqualFold(gender, "male"):
		bucket = "adult_male"
	default:
		bucket = "adult_female"
	}

	portions, ok := basePortions[foodKey]
	if !ok {
		portions = basePortions["vegetables"]
	}
	base, ok := portions[bucket]
	if !ok {
		base = 50
	}

	multiplier, ok := activityMultipliers[activityLevel]
	if !ok {
		multiplier = 1.0
	}

	grams := int(float64(base) * multiplier)
	return grams, fmt.Sprintf("%dg", grams)
}
