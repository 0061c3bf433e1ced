package service

import (
	"github.com/ayushaahar/backend/internal/dataset"
	"github.com/ayushaahar/backend/internal/models"
)

// FoodSelector picks default ingredient sets per meal slot from climate,
// constitution and allergen constraints when no recipe was supplied.
type FoodSelector struct {
	data *dataset.Data
}

// NewFoodSelector creates a FoodSelector over the loaded catalog.
func NewFoodSelector(data *dataset.Data) *FoodSelector {
	return &FoodSelector{data: data}
}

// SelectFoods returns food keys per meal slot. When recipeIngredients is
// non-empty the climate logic is skipped entirely and the ingredients are
// distributed across slots as overlapping prefixes (2/4/2/3 when there are
// at least four, otherwise the whole list with a half-size snack).
func (s *FoodSelector) SelectFoods(weather models.WeatherData, constitution models.DoshaType, allergens []string, recipeIngredients []string) map[string][]string {
	selected := map[string][]string{"breakfast": nil, "lunch": nil, "snack": nil, "dinner": nil}

	if len(recipeIngredients) > 0 {
		if len(recipeIngredients) >= 4 {
			selected["breakfast"] = recipeIngredients[:2]
			selected["lunch"] = recipeIngredients[:4]
			selected["snack"] = recipeIngredients[:2]
			selected["dinner"] = recipeIngredients[:3]
		} else {
			snackLen := len(recipeIngredients) / 2
			if snackLen < 1 {
				snackLen = 1
			}
			selected["breakfast"] = recipeIngredients
			selected["lunch"] = recipeIngredients
			selected["snack"] = recipeIngredients[:snackLen]
			selected["dinner"] = recipeIngredients
		}
		return selected
	}

	var climate string
	switch {
	case weather.Temperature > 30:
		climate = "hot"
	case weather.Temperature < 15:
		climate = "cold"
	default:
		climate = "moderate"
	}

	var safe []string
	for _, key := range s.data.FoodKeys() {
		food, _ := s.data.Food(key)
		switch climate {
		case "hot":
			if food.ClimatePreference != "hot" && food.ClimatePreference != "neutral" {
				continue
			}
		case "cold":
			if food.ClimatePreference != "cold" && food.ClimatePreference != "neutral" {
				continue
			}
		}
		if s.data.HasAllergenConflict(key, allergens) {
			continue
		}
		safe = append(safe, key)
	}

	var grains, proteins, vegetables, spices []string
	for _, key := range safe {
		food, _ := s.data.Food(key)
		switch food.Category {
		case "grains":
			grains = append(grains, key)
		case "legumes", "dairy":
			proteins = append(proteins, key)
		case "vegetables":
			vegetables = append(vegetables, key)
		case "spices", "herbs":
			spices = append(spices, key)
		}
	}

	selected["breakfast"] = orElse(capped(join(take(grains, 1), take(proteins, 1)), 2), take(safe, 2))
	selected["lunch"] = orElse(capped(join(take(grains, 1), take(proteins, 1), take(vegetables, 2)), 4), take(safe, 4))
	selected["snack"] = orElse(capped(join(take(proteins, 1), take(spices, 1)), 2), take(safe, 2))
	selected["dinner"] = orElse(capped(join(take(grains, 1), take(vegetables, 1), take(spices, 1)), 3), take(safe, 3))

	return selected
}

func take(keys []string, n int) []string {
	if len(keys) < n {
		n = len(keys)
	}
	return keys[:n]
}

func join(parts ...[]string) []string {
	var out []string
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

func capped(keys []string, n int) []string {
	return take(keys, n)
}

// orElse mirrors the "preferred combination, else first survivors" rule:
// the fallback applies only when the preferred set is empty.
func orElse(preferred, fallback []string) []string {
	if len(preferred) > 0 {
		return preferred
	}
	return fallback
}
