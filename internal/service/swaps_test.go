package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindSwapsUnknownFood(t *testing.T) {
	engine := NewSwapEngine(testData(t))
	assert.Empty(t, engine.FindSwaps("unobtainium", nil, nil))
}

func TestFindSwapsProperties(t *testing.T) {
	data := testData(t)
	engine := NewSwapEngine(data)

	nameToKey := map[string]string{}
	for _, key := range data.FoodKeys() {
		food, _ := data.Food(key)
		nameToKey[food.Name] = key
	}

	for _, key := range data.FoodKeys() {
		food, _ := data.Food(key)
		swaps := engine.FindSwaps(key, nil, nil)

		assert.LessOrEqual(t, len(swaps), 3, "food %s", key)
		for _, name := range swaps {
			assert.NotEqual(t, food.Name, name, "food %s suggested itself", key)
			altKey, ok := nameToKey[name]
			require.True(t, ok, "swap %q for %s is not a catalog food", name, key)
			alt, _ := data.Food(altKey)
			assert.Equal(t, food.Category, alt.Category, "swap %s for %s crosses category", name, key)
		}
	}
}

func TestFindSwapsProactiveScanIsBounded(t *testing.T) {
	engine := NewSwapEngine(testData(t))

	// Spices has eleven alternatives; without conflicts only the first
	// three catalog-order candidates are considered.
	swaps := engine.FindSwaps("turmeric", nil, nil)

	assert.Equal(t, []string{"Asafoetida", "Coriander Seeds", "Cumin Seeds"}, swaps)
}

func TestFindSwapsAllergenConflictScansFullPool(t *testing.T) {
	engine := NewSwapEngine(testData(t))

	// Every dairy alternative also carries the dairy allergen.
	assert.Empty(t, engine.FindSwaps("paneer", []string{"dairy"}, nil))

	// All grain alternatives to rice carry gluten.
	assert.Empty(t, engine.FindSwaps("rice", []string{"gluten"}, nil))
}

func TestFindSwapsDislikes(t *testing.T) {
	engine := NewSwapEngine(testData(t))

	// Disliking the food itself lifts the proactive bound.
	swaps := engine.FindSwaps("turmeric", nil, []string{"Turmeric", "Asafoetida"})
	assert.Equal(t, []string{"Coriander Seeds", "Cumin Seeds", "Fenugreek Seeds"}, swaps)

	// Dislikes match catalog keys as well as display names.
	swaps = engine.FindSwaps("turmeric", nil, []string{"turmeric", "asafoetida"})
	assert.Equal(t, []string{"Coriander Seeds", "Cumin Seeds", "Fenugreek Seeds"}, swaps)
}

func TestFindSwapsFiltersDislikedCandidates(t *testing.T) {
	engine := NewSwapEngine(testData(t))

	// The food itself is fine, so only the first three candidates are
	// screened and the disliked one drops out.
	swaps := engine.FindSwaps("turmeric", nil, []string{"Asafoetida"})
	assert.Equal(t, []string{"Coriander Seeds", "Cumin Seeds"}, swaps)
}
