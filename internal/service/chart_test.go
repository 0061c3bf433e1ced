package service

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ayushaahar/backend/internal/models"
)

func testEngine(t *testing.T, weather WeatherProvider) *DietChartEngine {
	t.Helper()
	data := testData(t)
	parser := NewRecipeParser(data, nil, zap.NewNop())
	return NewDietChartEngine(data, weather, parser, zap.NewNop())
}

func chartRequest() models.DietChartRequest {
	return models.DietChartRequest{
		PatientProfile: models.PatientProfile{
			PatientID:     "PAT001",
			Name:          "Ramesh Kumar",
			Age:           45,
			Gender:        models.Male,
			City:          "Chennai",
			Constitution:  models.Pitta,
			ActivityLevel: "moderate",
		},
		CityName: "Chennai",
	}
}

func TestGenerateDietChartBasic(t *testing.T) {
	weather := stubWeather{data: models.WeatherData{
		Temperature: 28, Humidity: 70, Description: "haze", Season: "Spring", City: "Chennai",
	}}
	engine := testEngine(t, weather)

	chart, err := engine.GenerateDietChart(context.Background(), chartRequest())
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, chart.ID)
	assert.Equal(t, "PAT001", chart.PatientID)
	assert.Equal(t, "Chennai", chart.WeatherContext.City)
	assert.False(t, chart.CreatedAt.IsZero())

	require.Len(t, chart.Meals, 4)
	order := []models.MealType{models.Breakfast, models.Lunch, models.Snack, models.Dinner}
	total := 0
	for i, meal := range chart.Meals {
		assert.Equal(t, order[i], meal.MealType)
		assert.NotEmpty(t, meal.Foods)
		mealTotal := 0
		for _, f := range meal.Foods {
			mealTotal += f.Calories
		}
		assert.Equal(t, mealTotal, meal.TotalCalories)
		total += meal.TotalCalories
	}
	assert.Equal(t, total, chart.TotalDailyCalories)

	require.GreaterOrEqual(t, len(chart.Recommendations), 4)
	assert.Contains(t, chart.Recommendations[0], "spring season")
	assert.Contains(t, chart.Recommendations[1], "45-year-old")
	assert.NotEmpty(t, chart.PortionAdjustments)
}

func TestGenerateDietChartWithLunchRecipe(t *testing.T) {
	weather := stubWeather{data: models.WeatherData{Temperature: 25, Season: "Spring", City: "Chennai"}}
	engine := testEngine(t, weather)

	req := chartRequest()
	req.MealRecipes = &models.MealRecipeInput{
		Lunch: &models.RecipeInput{RecipeText: "sambar with rice"},
	}

	chart, err := engine.GenerateDietChart(context.Background(), req)
	require.NoError(t, err)

	lunch := chart.Meals[1]
	require.Equal(t, models.Lunch, lunch.MealType)
	assert.Contains(t, lunch.AyurvedicRationale, "Based on your lunch recipe")

	lunchNames := map[string]bool{}
	for _, f := range lunch.Foods {
		lunchNames[f.Name] = true
	}
	assert.True(t, lunchNames["Toor Dal"], "lunch should carry the recipe's dal")
	assert.True(t, lunchNames["Drumstick"], "lunch should carry the recipe's drumstick")

	found := false
	for _, rec := range chart.Recommendations {
		if strings.HasPrefix(rec, "Custom meal recipes used for 1 meals") {
			found = true
		}
	}
	assert.True(t, found, "expected a custom recipe recommendation line")
}

func TestGenerateDietChartAvoidsAllergens(t *testing.T) {
	weather := stubWeather{data: models.WeatherData{Temperature: 25, Season: "Spring", City: "Mumbai"}}
	engine := testEngine(t, weather)

	req := chartRequest()
	req.PatientProfile.Allergies = []string{"dairy"}

	chart, err := engine.GenerateDietChart(context.Background(), req)
	require.NoError(t, err)

	for _, meal := range chart.Meals {
		for _, food := range meal.Foods {
			assert.NotContains(t, food.Allergens, "dairy", "meal %s served %s", meal.MealType, food.Name)
		}
	}
}

func TestGenerateDietChartDefaultsActivityLevel(t *testing.T) {
	weather := stubWeather{data: models.WeatherData{Temperature: 25, Season: "Spring"}}
	engine := testEngine(t, weather)

	req := chartRequest()
	req.PatientProfile.ActivityLevel = ""

	chart, err := engine.GenerateDietChart(context.Background(), req)
	require.NoError(t, err)

	for _, meal := range chart.Meals {
		for _, food := range meal.Foods {
			assert.Equal(t, "moderate", food.PortionInfo["activity_level"])
		}
	}
	assert.Contains(t, chart.AyurvedicAnalysis, "moderate activity level")
}

func TestNutrientBars(t *testing.T) {
	assert.Equal(t, models.NutrientBars{}, nutrientBars(nil))

	bars := nutrientBars([]models.EnhancedFoodItem{
		{Protein: 10, Carbs: 10, Fat: 0},
	})
	assert.Equal(t, 50.0, bars.Protein)
	assert.Equal(t, 50.0, bars.Carbs)
	assert.Equal(t, 0.0, bars.Fat)

	bars = nutrientBars([]models.EnhancedFoodItem{{Protein: 5, Carbs: 20, Fat: 10}})
	assert.InDelta(t, 100.0, bars.Protein+bars.Carbs+bars.Fat, 0.3)
}

func TestUnionLists(t *testing.T) {
	out := unionLists([]string{"Dairy", "nuts"}, []string{"dairy", "Gluten"})
	assert.Equal(t, []string{"Dairy", "nuts", "Gluten"}, out)

	assert.Empty(t, unionLists(nil, nil))
}
