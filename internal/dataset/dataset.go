package dataset

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ayushaahar/backend/internal/models"
)

// Data holds the three static reference tables. It is loaded once at
// startup and treated as immutable afterwards, so concurrent chart
// requests can share it without locking.
type Data struct {
	foods      map[string]models.FoodItem
	foodKeys   []string // sorted; fixes iteration order for "first N" logic
	allergyMap map[string][]string
	patients   []map[string]interface{}
}

// Load reads food_dataset.json, allergy_map.json and patients.json from dir.
func Load(dir string) (*Data, error) {
	d := &Data{}

	if err := readJSON(filepath.Join(dir, "food_dataset.json"), &d.foods); err != nil {
		return nil, fmt.Errorf("loading food dataset: %w", err)
	}
	if err := readJSON(filepath.Join(dir, "allergy_map.json"), &d.allergyMap); err != nil {
		return nil, fmt.Errorf("loading allergy map: %w", err)
	}
	if err := readJSON(filepath.Join(dir, "patients.json"), &d.patients); err != nil {
		return nil, fmt.Errorf("loading patients: %w", err)
	}

	d.foodKeys = make([]string, 0, len(d.foods))
	for key := range d.foods {
		d.foodKeys = append(d.foodKeys, key)
	}
	sort.Strings(d.foodKeys)

	// lowercase allergen names once; lookups are case-insensitive
	normalized := make(map[string][]string, len(d.allergyMap))
	for name, foods := range d.allergyMap {
		normalized[strings.ToLower(name)] = foods
	}
	d.allergyMap = normalized

	return d, nil
}

func readJSON(path string, v interface{}) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, v)
}

// Food returns the catalog entry for a key.
func (d *Data) Food(key string) (models.FoodItem, bool) {
	f, ok := d.foods[key]
	return f, ok
}

// FoodKeys returns the catalog keys in their fixed iteration order.
// Callers must not modify the returned slice.
func (d *Data) FoodKeys() []string {
	return d.foodKeys
}

// SameCategory returns catalog keys sharing the category of key, in catalog
// order, excluding key itself.
func (d *Data) SameCategory(key string) []string {
	food, ok := d.foods[key]
	if !ok {
		return nil
	}
	var out []string
	for _, k := range d.foodKeys {
		if k != key && d.foods[k].Category == food.Category {
			out = append(out, k)
		}
	}
	return out
}

// AllergenFoods returns the excluded food list for a lowercase allergen name.
func (d *Data) AllergenFoods(allergen string) ([]string, bool) {
	foods, ok := d.allergyMap[strings.ToLower(allergen)]
	return foods, ok
}

// HasAllergenConflict reports whether the food identified by key conflicts
// with any of the given allergens: either the allergy map lists the key
// under the allergen, or the food's own allergen tags contain it.
func (d *Data) HasAllergenConflict(key string, allergens []string) bool {
	food, ok := d.foods[key]
	if !ok {
		return false
	}
	keyLower := strings.ToLower(key)
	for _, allergen := range allergens {
		allergenLower := strings.ToLower(allergen)
		mapped, listed := d.allergyMap[allergenLower]
		if listed {
			for _, f := range mapped {
				if strings.ToLower(f) == keyLower {
					return true
				}
			}
		}
		for _, tag := range food.Allergens {
			if tag == allergenLower {
				return true
			}
		}
	}
	return false
}

// Patients returns the static patient records as loaded.
func (d *Data) Patients() []map[string]interface{} {
	return d.patients
}
