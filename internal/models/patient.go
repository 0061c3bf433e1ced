package models

// PatientProfile is supplied by the caller on every chart request. The core
// does not own its lifecycle; it is passed by value into generation.
type PatientProfile struct {
	PatientID     string    `json:"patient_id" binding:"required"`
	Name          string    `json:"name" binding:"required"`
	Age           int       `json:"age" binding:"required,gt=0"`
	Gender        Gender    `json:"gender" binding:"required"`
	City          string    `json:"city" binding:"required"`
	Constitution  DoshaType `json:"constitution" binding:"required"`
	Condition     string    `json:"condition"`
	Allergies     []string  `json:"allergies"`
	ActivityLevel string    `json:"activity_level"`
}

// DietPreferences carries per-request dietary constraints.
type DietPreferences struct {
	Allergies         []string `json:"allergies"`
	Dislikes          []string `json:"dislikes"`
	CalorieTarget     *int     `json:"calorie_target,omitempty"`
	CustomPreferences string   `json:"custom_preferences"`
}

// RecipeInput holds an optional free-text recipe or a base64 recipe photo
// for one meal slot.
type RecipeInput struct {
	RecipeText        string `json:"recipe_text"`
	RecipeImageBase64 string `json:"recipe_image_base64"`
}

// MealRecipeInput maps meal slots to their optional recipe inputs.
type MealRecipeInput struct {
	Breakfast *RecipeInput `json:"breakfast,omitempty"`
	Lunch     *RecipeInput `json:"lunch,omitempty"`
	Snack     *RecipeInput `json:"snack,omitempty"`
	Dinner    *RecipeInput `json:"dinner,omitempty"`
}

// ForSlot returns the recipe input for a lowercase slot name, or nil.
func (m *MealRecipeInput) ForSlot(slot string) *RecipeInput {
	if m == nil {
		return nil
	}
	switch slot {
	case "breakfast":
		return m.Breakfast
	case "lunch":
		return m.Lunch
	case "snack":
		return m.Snack
	case "dinner":
		return m.Dinner
	}
	return nil
}

// DietChartRequest is the body of the enhanced chart generation endpoint.
type DietChartRequest struct {
	PatientProfile  PatientProfile   `json:"patient_profile" binding:"required"`
	DietPreferences DietPreferences  `json:"diet_preferences"`
	CityName        string           `json:"city_name" binding:"required"`
	MealRecipes     *MealRecipeInput `json:"meal_recipes,omitempty"`
}
