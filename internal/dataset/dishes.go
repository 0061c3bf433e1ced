package dataset

// Dishes maps lowercase dish names to the food keys they imply. Substring
// matching against recipe text means "sambar rice" and "sambar" can both
// fire on the same input; the resolver unions everything.
var Dishes = map[string][]string{
	// South Indian dishes
	"sambar":      {"toor_dal", "tomato", "onion", "drumstick", "tamarind", "turmeric", "curry_leaves", "mustard_seeds", "coconut_oil", "salt", "coriander_seeds", "red_chili", "asafoetida"},
	"sambar rice": {"rice", "toor_dal", "tomato", "onion", "drumstick", "tamarind", "turmeric", "curry_leaves", "mustard_seeds", "coconut_oil", "salt", "ghee"},
	"dosa":        {"rice", "urad_dal", "fenugreek_seeds", "salt", "coconut_oil"},
	"idly":        {"rice", "urad_dal", "fenugreek_seeds", "salt"},
	"idli":        {"rice", "urad_dal", "fenugreek_seeds", "salt"},
	"curd rice":   {"rice", "curd", "salt", "curry_leaves", "mustard_seeds", "coconut_oil"},
	"rasam":       {"toor_dal", "tomato", "tamarind", "turmeric", "red_chili", "coriander_seeds", "cumin_seeds", "curry_leaves", "mustard_seeds", "asafoetida", "ghee"},
	"dal rice":    {"rice", "toor_dal", "turmeric", "salt", "ghee", "cumin_seeds"},
	"khichdi":     {"rice", "moong_dal", "turmeric", "salt", "ghee", "cumin_seeds"},
	"upma":        {"semolina", "onion", "curry_leaves", "mustard_seeds", "coconut_oil", "salt"},
	"pongal":      {"rice", "moong_dal", "ghee", "cumin_seeds", "curry_leaves", "salt"},

	// North Indian dishes
	"chicken biryani":      {"rice", "chicken", "onion", "tomato", "ginger", "garlic", "turmeric", "red_chili", "garam_masala", "coriander_seeds", "cumin_seeds", "ghee", "salt"},
	"biryani":              {"rice", "chicken", "onion", "tomato", "ginger", "garlic", "turmeric", "red_chili", "garam_masala", "coriander_seeds", "cumin_seeds", "ghee", "salt"},
	"paneer butter masala": {"paneer", "tomato", "onion", "butter", "ginger", "garlic", "turmeric", "red_chili", "garam_masala", "coriander_seeds", "cumin_seeds", "salt"},
	"butter masala":        {"paneer", "tomato", "onion", "butter", "ginger", "garlic", "turmeric", "red_chili", "garam_masala", "coriander_seeds", "cumin_seeds", "salt"},
	"chapati":              {"wheat", "salt", "coconut_oil"},
	"roti":                 {"wheat", "salt", "coconut_oil"},
	"paneer puff":          {"wheat", "paneer", "onion", "ginger", "turmeric", "red_chili", "coriander_seeds", "cumin_seeds", "salt", "coconut_oil"},
	"puff":                 {"wheat", "paneer", "onion", "ginger", "turmeric", "red_chili", "coriander_seeds", "cumin_seeds", "salt", "coconut_oil"},
	"dal":                  {"toor_dal", "turmeric", "salt", "ghee", "cumin_seeds"},
	"masala":               {"tomato", "onion", "ginger", "garlic", "turmeric", "red_chili", "garam_masala", "coriander_seeds", "cumin_seeds"},
}
