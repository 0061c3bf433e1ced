package service

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ayushaahar/backend/internal/dataset"
	"github.com/ayushaahar/backend/internal/models"
)

// DietChartEngine assembles complete diet charts from the patient profile,
// weather, recipe inputs and the food catalog. One request is one linear
// pipeline; the only blocking calls (weather, OCR) absorb their own
// failures, so generation always completes.
type DietChartEngine struct {
	data     *dataset.Data
	weather  WeatherProvider
	parser   *RecipeParser
	portions *PortionCalculator
	swaps    *SwapEngine
	selector *FoodSelector
	logger   *zap.Logger
}

// NewDietChartEngine wires the engine with its collaborators.
func NewDietChartEngine(data *dataset.Data, weather WeatherProvider, parser *RecipeParser, logger *zap.Logger) *DietChartEngine {
	return &DietChartEngine{
		data:     data,
		weather:  weather,
		parser:   parser,
		portions: NewPortionCalculator(),
		swaps:    NewSwapEngine(data),
		selector: NewFoodSelector(data),
		logger:   logger,
	}
}

var slotMealTypes = map[string]models.MealType{
	"breakfast": models.Breakfast,
	"lunch":     models.Lunch,
	"snack":     models.Snack,
	"dinner":    models.Dinner,
}

// GenerateDietChart runs the full pipeline and returns the assembled
// chart. Persisting the result is the caller's concern.
func (e *DietChartEngine) GenerateDietChart(ctx context.Context, req models.DietChartRequest) (*models.DietChart, error) {
	weather := e.weather.GetWeatherData(ctx, req.CityName)

	activityLevel := req.PatientProfile.ActivityLevel
	if activityLevel == "" {
		activityLevel = "moderate"
	}

	// Per-slot recipe resolution; text wins over image when both present.
	recipeIngredients := map[string][]string{}
	for _, slot := range models.MealSlots {
		input := req.MealRecipes.ForSlot(slot)
		if input == nil {
			continue
		}
		switch {
		case input.RecipeText != "":
			recipeIngredients[slot] = e.parser.ParseRecipeText(input.RecipeText)
		case input.RecipeImageBase64 != "":
			recipeIngredients[slot] = e.parser.ParseRecipeImageBase64(ctx, input.RecipeImageBase64)
		}
	}

	allergens := unionLists(req.PatientProfile.Allergies, req.DietPreferences.Allergies)

	selectedKeys := map[string][]string{}
	for _, slot := range models.MealSlots {
		if len(recipeIngredients[slot]) > 0 {
			selectedKeys[slot] = recipeIngredients[slot]
			continue
		}
		general := e.selector.SelectFoods(weather, req.PatientProfile.Constitution, allergens, nil)
		selectedKeys[slot] = general[slot]
	}

	var meals []models.Meal
	var swapsApplied []string
	portionAdjustments := map[string]string{}

	for _, slot := range models.MealSlots {
		var foods []models.EnhancedFoodItem
		mealCalories := 0

		for _, key := range selectedKeys[slot] {
			food, ok := e.data.Food(key)
			if !ok {
				// resolved keys absent from the catalog are dropped silently
				continue
			}

			grams, quantity := e.portions.CalculatePortion(key, req.PatientProfile.Age, string(req.PatientProfile.Gender), activityLevel)
			factor := float64(grams) / 100

			calories := int(food.CaloriesPer100g * factor)
			swapNames := e.swaps.FindSwaps(key, allergens, req.DietPreferences.Dislikes)

			foods = append(foods, models.EnhancedFoodItem{
				Name:        food.Name,
				Category:    food.Category,
				Quantity:    quantity,
				Calories:    calories,
				Protein:     round1(food.Protein * factor),
				Carbs:       round1(food.Carbs * factor),
				Fat:         round1(food.Fat * factor),
				Fiber:       round1(food.Fiber * factor),
				Rasa:        food.Rasa,
				Guna:        food.Guna,
				Virya:       food.Virya,
				Vipaka:      food.Vipaka,
				DoshaEffect: food.DoshaEffect,
				Allergens:   food.Allergens,
				SmartSwaps:  swapNames,
				PortionInfo: map[string]interface{}{
					"age_adjusted":   true,
					"activity_level": activityLevel,
					"base_portion":   grams,
				},
			})
			mealCalories += calories

			if len(swapNames) > 0 {
				swapsApplied = append(swapsApplied, fmt.Sprintf("%s → %s", food.Name, swapNames[0]))
			}
			portionAdjustments[food.Name] = fmt.Sprintf("Adjusted for %dyr %s", req.PatientProfile.Age, req.PatientProfile.Gender)
		}

		mealContext := ""
		if n := len(recipeIngredients[slot]); n > 0 {
			mealContext = fmt.Sprintf("Based on your %s recipe with %d ingredients. ", slot, n)
		}

		meals = append(meals, models.Meal{
			MealType:      slotMealTypes[slot],
			Foods:         foods,
			TotalCalories: mealCalories,
			AyurvedicRationale: fmt.Sprintf("%sClimate-adapted %s for %s constitution in %s weather (%.1f°C)",
				mealContext, slot, req.PatientProfile.Constitution, strings.ToLower(weather.Season), weather.Temperature),
			NutrientBars: nutrientBars(foods),
		})
	}

	totalCalories := 0
	for _, meal := range meals {
		totalCalories += meal.TotalCalories
	}

	recommendations := []string{
		fmt.Sprintf("Diet adapted for %s season with %.1f°C temperature", strings.ToLower(weather.Season), weather.Temperature),
		fmt.Sprintf("Portion sizes adjusted for %d-year-old %s", req.PatientProfile.Age, req.PatientProfile.Gender),
		fmt.Sprintf("Foods selected to balance %s constitution", req.PatientProfile.Constitution),
		"All allergens avoided based on patient profile",
	}

	recipeMeals, recipeTotal := 0, 0
	for _, ingredients := range recipeIngredients {
		if len(ingredients) > 0 {
			recipeMeals++
			recipeTotal += len(ingredients)
		}
	}
	if recipeMeals > 0 {
		recommendations = append(recommendations,
			fmt.Sprintf("Custom meal recipes used for %d meals with %d total ingredients", recipeMeals, recipeTotal))
	}
	if len(swapsApplied) > 0 {
		recommendations = append(recommendations,
			fmt.Sprintf("Smart swaps suggested for %d items", len(swapsApplied)))
	}

	chart := &models.DietChart{
		ID:                 uuid.New(),
		PatientID:          req.PatientProfile.PatientID,
		Meals:              meals,
		TotalDailyCalories: totalCalories,
		WeatherContext:     weather,
		AyurvedicAnalysis: fmt.Sprintf("Personalized %s diet plan adapted for %s climate conditions. Portion sizes optimized for %s activity level.",
			req.PatientProfile.Constitution, weather.City, activityLevel),
		Recommendations:    recommendations,
		SmartSwapsApplied:  swapsApplied,
		PortionAdjustments: portionAdjustments,
		CreatedAt:          time.Now().UTC(),
	}

	e.logger.Info("diet chart generated",
		zap.String("patient_id", chart.PatientID),
		zap.Int("total_calories", chart.TotalDailyCalories),
		zap.Int("recipe_meals", recipeMeals))
	return chart, nil
}

// nutrientBars converts a meal's macro grams into calorie-share
// percentages (4/4/9 kcal per gram). A meal with no caloric contribution
// gets all-zero bars.
func nutrientBars(foods []models.EnhancedFoodItem) models.NutrientBars {
	var proteinCal, carbCal, fatCal float64
	for _, f := range foods {
		proteinCal += f.Protein * 4
		carbCal += f.Carbs * 4
		fatCal += f.Fat * 9
	}
	total := proteinCal + carbCal + fatCal
	if total == 0 {
		return models.NutrientBars{}
	}
	return models.NutrientBars{
		Protein: round1(proteinCal / total * 100),
		Carbs:   round1(carbCal / total * 100),
		Fat:     round1(fatCal / total * 100),
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// unionLists concatenates with case-preserving de-duplication, keeping
// first-seen order.
func unionLists(lists ...[]string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, list := range lists {
		for _, item := range list {
			lower := strings.ToLower(item)
			if _, ok := seen[lower]; ok {
				continue
			}
			seen[lower] = struct{}{}
			out = append(out, item)
		}
	}
	return out
}
