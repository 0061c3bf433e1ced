package models

// DoshaType is an Ayurvedic constitution classification.
type DoshaType string

const (
	Vata       DoshaType = "Vata"
	Pitta      DoshaType = "Pitta"
	Kapha      DoshaType = "Kapha"
	VataPitta  DoshaType = "Vata-Pitta"
	PittaKapha DoshaType = "Pitta-Kapha"
	VataKapha  DoshaType = "Vata-Kapha"
	Tridoshic  DoshaType = "Tridoshic"
)

// Gender values accepted in patient profiles.
type Gender string

const (
	Male   Gender = "Male"
	Female Gender = "Female"
	Other  Gender = "Other"
)

// MealType labels the four daily meal slots.
type MealType string

const (
	Breakfast MealType = "Breakfast"
	Lunch     MealType = "Lunch"
	Snack     MealType = "Snack"
	Dinner    MealType = "Dinner"
)

// MealSlots is the canonical slot order used throughout chart generation.
var MealSlots = []string{"breakfast", "lunch", "snack", "dinner"}
