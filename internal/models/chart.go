package models

import (
	"time"

	"github.com/google/uuid"
)

// WeatherData is one weather snapshot for a city, produced once per chart
// generation and immutable thereafter.
type WeatherData struct {
	Temperature float64 `json:"temperature"`
	Humidity    float64 `json:"humidity"`
	Description string  `json:"description"`
	Season      string  `json:"season"`
	City        string  `json:"city"`
}

// EnhancedFoodItem is a catalog entry scaled to a computed portion, with
// swap suggestions attached. Built fresh per chart, never mutated after.
type EnhancedFoodItem struct {
	Name        string                 `json:"name"`
	Category    string                 `json:"category"`
	Quantity    string                 `json:"quantity"`
	Calories    int                    `json:"calories"`
	Protein     float64                `json:"protein"`
	Carbs       float64                `json:"carbs"`
	Fat         float64                `json:"fat"`
	Fiber       float64                `json:"fiber"`
	Rasa        []string               `json:"rasa"`
	Guna        []string               `json:"guna"`
	Virya       string                 `json:"virya"`
	Vipaka      string                 `json:"vipaka"`
	DoshaEffect map[string]string      `json:"dosha_effect"`
	Allergens   []string               `json:"allergens"`
	SmartSwaps  []string               `json:"smart_swaps"`
	PortionInfo map[string]interface{} `json:"portion_info"`
}

// NutrientBars holds macro percentages for one meal. All zero when the
// meal contributes no calories.
type NutrientBars struct {
	Protein float64 `json:"protein"`
	Carbs   float64 `json:"carbs"`
	Fat     float64 `json:"fat"`
}

// Meal is one slot of the generated chart.
type Meal struct {
	MealType           MealType           `json:"meal_type"`
	Foods              []EnhancedFoodItem `json:"foods"`
	TotalCalories      int                `json:"total_calories"`
	AyurvedicRationale string             `json:"ayurvedic_rationale"`
	NutrientBars       NutrientBars       `json:"nutrient_bars"`
}

// DietChart is the full generated plan returned to the caller and handed
// to the document store afterwards.
type DietChart struct {
	ID                 uuid.UUID         `json:"id"`
	PatientID          string            `json:"patient_id"`
	Meals              []Meal            `json:"meals"`
	TotalDailyCalories int               `json:"total_daily_calories"`
	WeatherContext     WeatherData       `json:"weather_context"`
	AyurvedicAnalysis  string            `json:"ayurvedic_analysis"`
	Recommendations    []string          `json:"recommendations"`
	SmartSwapsApplied  []string          `json:"smart_swaps_applied"`
	PortionAdjustments map[string]string `json:"portion_adjustments"`
	CreatedAt          time.Time         `json:"created_at"`
}

// PatientDietChart is the patient-scoped copy of a chart kept alongside
// the chart collection, with room for doctor annotations.
type PatientDietChart struct {
	ID          uuid.UUID `json:"id"`
	PatientID   string    `json:"patient_id"`
	ChartData   DietChart `json:"chart_data"`
	CreatedAt   time.Time `json:"created_at"`
	DoctorNotes string    `json:"doctor_notes"`
}
