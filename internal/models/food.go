package models

// FoodItem is one entry of the static food catalog. Loaded once at startup
// and never mutated; nutrition values are per 100g.
type FoodItem struct {
	Name              string            `json:"name"`
	Category          string            `json:"category"`
	CaloriesPer100g   float64           `json:"calories_per_100g"`
	Protein           float64           `json:"protein"`
	Carbs             float64           `json:"carbs"`
	Fat               float64           `json:"fat"`
	Fiber             float64           `json:"fiber"`
	Rasa              []string          `json:"rasa"`
	Guna              []string          `json:"guna"`
	Virya             string            `json:"virya"`
	Vipaka            string            `json:"vipaka"`
	DoshaEffect       map[string]string `json:"dosha_effect"`
	Allergens         []string          `json:"allergens"`
	ClimatePreference string            `json:"climate_preference"`
}
