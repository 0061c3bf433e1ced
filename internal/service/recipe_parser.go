package service

import (
	"context"
	"encoding/base64"
	"regexp"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/ayushaahar/backend/internal/dataset"
)

// Fallback ingredient sets for the image path. Fixed product choices kept
// verbatim from the original system; note they ignore patient allergens,
// so a dairy-allergic patient can still receive a ghee fallback. Known
// limitation, intentionally not patched here.
var (
	ocrEmptyFallback = []string{"rice", "toor_dal", "coconut_oil", "curry_leaves", "mustard_seeds", "turmeric", "salt", "onion", "tomato"}
	ocrErrorFallback = []string{"rice", "toor_dal", "ghee", "turmeric", "salt"}
)

// synonyms are hand-authored alternate names for high-frequency foods,
// covering transliterations and common English variants.
var synonyms = map[string][]string{
	"rice":        {"chawal", "bhat", "anna", "basmati", "steamed rice"},
	"chicken":     {"murgh", "poultry", "fowl", "hen", "broiler"},
	"toor_dal":    {"dal", "dhal", "pigeon pea", "arhar", "tuvar"},
	"curd":        {"yogurt", "yoghurt", "dahi"},
	"coconut_oil": {"oil", "coconut oil"},
	"paneer":      {"cottage cheese", "fresh cheese"},
	"wheat":       {"atta", "flour", "bread", "roti", "chapati"},
	"butter":      {"makhan", "white butter", "unsalted butter"},
}

// ingredientPattern pairs a compiled regex with the food keys it implies.
type ingredientPattern struct {
	re   *regexp.Regexp
	keys []string
}

// ingredientPatterns is an ordered table of dish and staple patterns.
// Every pattern that matches contributes its keys; patterns are never
// mutually exclusive so a text like "sambar rice" fires both the sambar
// and the sambar-rice entries. The redundancy with the dish table and the
// lexical stage is deliberate: union semantics maximize recall on
// free-form, transliterated input.
var ingredientPatterns = []ingredientPattern{
	// South Indian dishes
	{regexp.MustCompile(`\b(?:sambar|sambhar)\b`), []string{"toor_dal", "tomato", "onion", "drumstick", "tamarind", "turmeric", "curry_leaves", "mustard_seeds", "coconut_oil", "salt"}},
	{regexp.MustCompile(`\b(?:sambar\s*rice|sambhar\s*rice)\b`), []string{"rice", "toor_dal", "tomato", "onion", "drumstick", "tamarind", "turmeric", "curry_leaves", "mustard_seeds", "coconut_oil", "salt", "ghee"}},
	{regexp.MustCompile(`\b(?:curd\s*rice|dahi\s*chawal)\b`), []string{"rice", "curd", "salt", "curry_leaves", "mustard_seeds", "coconut_oil"}},
	{regexp.MustCompile(`\b(?:dal\s*rice|daal\s*chawal)\b`), []string{"rice", "toor_dal", "turmeric", "salt", "ghee", "cumin_seeds"}},
	{regexp.MustCompile(`\bdosa\b`), []string{"rice", "urad_dal", "fenugreek_seeds", "salt", "coconut_oil"}},
	{regexp.MustCompile(`\bidl[yi]\b`), []string{"rice", "urad_dal", "fenugreek_seeds", "salt"}},
	{regexp.MustCompile(`\brasam\b`), []string{"toor_dal", "tomato", "tamarind", "turmeric", "red_chili", "coriander_seeds", "cumin_seeds", "curry_leaves", "mustard_seeds", "asafoetida", "ghee"}},
	{regexp.MustCompile(`\bkhichdi\b`), []string{"rice", "moong_dal", "turmeric", "salt", "ghee", "cumin_seeds"}},
	{regexp.MustCompile(`\bupma\b`), []string{"semolina", "onion", "curry_leaves", "mustard_seeds", "coconut_oil", "salt"}},
	{regexp.MustCompile(`\bpongal\b`), []string{"rice", "moong_dal", "ghee", "cumin_seeds", "curry_leaves", "salt"}},

	// North Indian dishes
	{regexp.MustCompile(`\b(?:chicken\s*biryani|biryani)\b`), []string{"rice", "chicken", "onion", "tomato", "ginger", "garlic", "turmeric", "red_chili", "garam_masala", "coriander_seeds", "cumin_seeds", "ghee", "salt"}},
	{regexp.MustCompile(`\b(?:chicken\s*curry|murgh\s*curry)\b`), []string{"chicken", "onion", "tomato", "ginger", "garlic", "turmeric", "red_chili", "garam_masala", "coriander_seeds", "cumin_seeds", "coconut_oil", "salt"}},
	{regexp.MustCompile(`\b(?:paneer\s*butter\s*masala|butter\s*masala)\b`), []string{"paneer", "tomato", "onion", "butter", "ginger", "garlic", "turmeric", "red_chili", "garam_masala", "coriander_seeds", "cumin_seeds", "salt"}},
	{regexp.MustCompile(`\b(?:paneer\s*puff|puff)\b`), []string{"wheat", "paneer", "onion", "ginger", "turmeric", "red_chili", "coriander_seeds", "cumin_seeds", "salt", "coconut_oil"}},
	{regexp.MustCompile(`\b(?:chapati|roti)\b`), []string{"wheat", "salt", "coconut_oil"}},

	// Individual ingredients and their common synonyms
	{regexp.MustCompile(`\b(?:dal|dhal|daal)\b`), []string{"toor_dal", "moong_dal"}},
	{regexp.MustCompile(`\b(?:rice|chawal|bhat|anna|basmati)\b`), []string{"rice"}},
	{regexp.MustCompile(`\b(?:chicken|murgh|poultry)\b`), []string{"chicken"}},
	{regexp.MustCompile(`\b(?:paneer|cottage\s*cheese)\b`), []string{"paneer"}},
	{regexp.MustCompile(`\b(?:wheat|atta|flour)\b`), []string{"wheat"}},
	{regexp.MustCompile(`\b(?:chapati|roti|bread)\b`), []string{"chapati"}},
	{regexp.MustCompile(`\b(?:butter|makhan)\b`), []string{"butter"}},
	{regexp.MustCompile(`\b(?:strawberry|strawberries)\b`), []string{"strawberry"}},
	{regexp.MustCompile(`\b(?:coconut|nariyal)\b`), []string{"coconut"}},
	{regexp.MustCompile(`\b(?:tomato|tamatar)\b`), []string{"tomato"}},
	{regexp.MustCompile(`\b(?:onion|pyaaz|kanda)\b`), []string{"onion"}},
	{regexp.MustCompile(`\b(?:curd|dahi|yogurt|yoghurt)\b`), []string{"curd"}},
	{regexp.MustCompile(`\b(?:ghee|clarified butter)\b`), []string{"ghee"}},
	{regexp.MustCompile(`\b(?:oil|tel)\b`), []string{"coconut_oil"}},
	{regexp.MustCompile(`\b(?:spice|masala|masalas)\b`), []string{"turmeric", "red_chili", "coriander_seeds"}},
	{regexp.MustCompile(`\b(?:curry\s*leaves|kadi\s*patta)\b`), []string{"curry_leaves"}},
	{regexp.MustCompile(`\b(?:mustard|rai|sarson)\b`), []string{"mustard_seeds"}},
	{regexp.MustCompile(`\b(?:turmeric|haldi)\b`), []string{"turmeric"}},
	{regexp.MustCompile(`\b(?:tamarind|imli)\b`), []string{"tamarind"}},
	{regexp.MustCompile(`\b(?:fenugreek|methi)\b`), []string{"fenugreek_seeds"}},
	{regexp.MustCompile(`\b(?:coriander|dhania)\b`), []string{"coriander_seeds"}},
	{regexp.MustCompile(`\b(?:cumin|jeera)\b`), []string{"cumin_seeds"}},
	{regexp.MustCompile(`\b(?:chili|chilli|mirch|pepper)\b`), []string{"red_chili"}},
	{regexp.MustCompile(`\b(?:hing|asafoetida)\b`), []string{"asafoetida"}},
	{regexp.MustCompile(`\b(?:drumstick|moringa)\b`), []string{"drumstick"}},
	{regexp.MustCompile(`\b(?:semolina|suji|rava)\b`), []string{"semolina"}},
	{regexp.MustCompile(`\b(?:urad|black gram)\b`), []string{"urad_dal"}},
	{regexp.MustCompile(`\b(?:moong|green gram|mung)\b`), []string{"moong_dal"}},
	{regexp.MustCompile(`\b(?:toor|arhar|pigeon pea)\b`), []string{"toor_dal"}},
}

var wordRe = regexp.MustCompile(`\w+`)

// RecipeParser resolves free-form recipe text (typed or OCR-extracted)
// into catalog food keys.
type RecipeParser struct {
	data   *dataset.Data
	ocr    TextExtractor
	logger *zap.Logger
}

// NewRecipeParser creates a RecipeParser. ocr may be nil when no OCR
// collaborator is configured; the image path then always falls back.
func NewRecipeParser(data *dataset.Data, ocr TextExtractor, logger *zap.Logger) *RecipeParser {
	return &RecipeParser{data: data, ocr: ocr, logger: logger}
}

// ParseRecipeText resolves recipe text into catalog keys by unioning four
// independent matchers: dish-name substring lookup, catalog lexical
// variants, the regex pattern table, and a per-word scan. No stage
// suppresses another. Empty text yields an empty result, never an error.
// The result is sorted for reproducibility.
func (p *RecipeParser) ParseRecipeText(text string) []string {
	if text == "" {
		return nil
	}

	found := make(map[string]struct{})
	lower := strings.ToLower(text)

	// Stage 1: known dishes, plain substring match.
	for dish, keys := range dataset.Dishes {
		if strings.Contains(lower, dish) {
			for _, k := range keys {
				found[k] = struct{}{}
			}
		}
	}

	// Stage 2: lexical variants of every catalog entry.
	words := strings.Fields(lower)
	for _, key := range p.data.FoodKeys() {
		food, _ := p.data.Food(key)
		name := strings.ToLower(food.Name)

		variants := []string{
			strings.ToLower(key),
			name,
			strings.ReplaceAll(name, " ", ""),
			strings.ToLower(strings.ReplaceAll(key, "_", " ")),
			strings.ToLower(strings.ReplaceAll(key, "_", "")),
		}
		variants = append(variants, synonyms[key]...)

		for _, variant := range variants {
			if len(variant) <= 2 {
				continue
			}
			if strings.Contains(lower, variant) {
				found[key] = struct{}{}
				break
			}
			// Prefix match on whole tokens catches compound and declined
			// word forms at the cost of some false positives.
			if len(variant) > 4 && anyTokenHasPrefix(words, variant[:4]) {
				found[key] = struct{}{}
				break
			}
		}
	}

	// Stage 3: pattern table; every matching pattern contributes.
	for _, pat := range ingredientPatterns {
		if pat.re.MatchString(lower) {
			for _, k := range pat.keys {
				found[k] = struct{}{}
			}
		}
	}

	// Stage 4: per-word fallback against keys and display names.
	for _, word := range wordRe.FindAllString(lower, -1) {
		if len(word) <= 3 {
			continue
		}
		for _, key := range p.data.FoodKeys() {
			food, _ := p.data.Food(key)
			if word == strings.ToLower(key) || word == strings.ToLower(food.Name) {
				found[key] = struct{}{}
				break
			}
		}
	}

	result := make([]string, 0, len(found))
	for k := range found {
		result = append(result, k)
	}
	sort.Strings(result)

	p.logger.Debug("parsed recipe text",
		zap.Int("text_len", len(text)),
		zap.Int("ingredients", len(result)))
	return result
}

// ParseRecipeImage extracts text from a recipe photo via the OCR
// collaborator and resolves it. The image path never returns an empty
// result: zero resolved ingredients yield the staple fallback set, and a
// hard OCR failure yields a smaller one. Errors never escape.
func (p *RecipeParser) ParseRecipeImage(ctx context.Context, image []byte) []string {
	if p.ocr == nil {
		p.logger.Warn("no OCR collaborator configured, using error fallback")
		return append([]string(nil), ocrErrorFallback...)
	}

	text, err := p.ocr.ExtractText(ctx, image)
	if err != nil {
		p.logger.Warn("OCR extraction failed, using error fallback", zap.Error(err))
		return append([]string(nil), ocrErrorFallback...)
	}

	if strings.TrimSpace(text) != "" {
		if ingredients := p.ParseRecipeText(text); len(ingredients) > 0 {
			return ingredients
		}
	}

	p.logger.Warn("OCR yielded no recognizable ingredients, using staple fallback")
	return append([]string(nil), ocrEmptyFallback...)
}

// ParseRecipeImageBase64 decodes a base64 image payload and resolves it.
// An undecodable payload counts as a hard failure and yields the error
// fallback set.
func (p *RecipeParser) ParseRecipeImageBase64(ctx context.Context, encoded string) []string {
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		p.logger.Warn("recipe image is not valid base64, using error fallback", zap.Error(err))
		return append([]string(nil), ocrErrorFallback...)
	}
	return p.ParseRecipeImage(ctx, raw)
}

func anyTokenHasPrefix(tokens []string, prefix string) bool {
	for _, t := range tokens {
		if strings.HasPrefix(t, prefix) {
			return true
		}
	}
	return false
}
