package service

import (
	"strings"

	"github.com/ayushaahar/backend/internal/dataset"
)

// proactiveScanLimit bounds the candidate scan when the food itself has no
// allergen or dislike problem: only the first few same-category entries in
// catalog order are screened, a deliberate small deterministic sample for
// "variety" suggestions rather than a full-pool search.
const proactiveScanLimit = 3

// SwapEngine proposes alternative foods in the same category, honoring the
// caller's allergens and dislikes.
type SwapEngine struct {
	data *dataset.Data
}

// NewSwapEngine creates a SwapEngine over the loaded catalog.
func NewSwapEngine(data *dataset.Data) *SwapEngine {
	return &SwapEngine{data: data}
}

// FindSwaps returns up to 3 display names of same-category alternatives
// for foodKey. When the food conflicts with an allergen or is disliked,
// the full candidate pool is scanned for safe replacements; otherwise only
// the first proactiveScanLimit candidates are considered. An unknown
// foodKey yields no swaps.
func (e *SwapEngine) FindSwaps(foodKey string, allergens, dislikes []string) []string {
	if _, ok := e.data.Food(foodKey); !ok {
		return nil
	}

	hasAllergen := e.data.HasAllergenConflict(foodKey, allergens)
	isDisliked := e.isDisliked(foodKey, dislikes)

	candidates := e.data.SameCategory(foodKey)
	if !hasAllergen && !isDisliked && len(candidates) > proactiveScanLimit {
		candidates = candidates[:proactiveScanLimit]
	}

	var swaps []string
	for _, alt := range candidates {
		if e.data.HasAllergenConflict(alt, allergens) {
			continue
		}
		if e.isDisliked(alt, dislikes) {
			continue
		}
		food, _ := e.data.Food(alt)
		swaps = append(swaps, food.Name)
		if len(swaps) == 3 {
			break
		}
	}
	return swaps
}

// isDisliked accepts either the catalog key or the display name,
// case-insensitively.
func (e *SwapEngine) isDisliked(foodKey string, dislikes []string) bool {
	food, ok := e.data.Food(foodKey)
	if !ok {
		return false
	}
	for _, d := range dislikes {
		if strings.EqualFold(d, foodKey) || strings.EqualFold(d, food.Name) {
			return true
		}
	}
	return false
}
