package api

import (
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ayushaahar/backend/internal/dataset"
	"github.com/ayushaahar/backend/internal/service"
)

// RecipeHandler serves standalone recipe parsing and swap lookup.
type RecipeHandler struct {
	data   *dataset.Data
	parser *service.RecipeParser
	swaps  *service.SwapEngine
	logger *zap.Logger
}

func NewRecipeHandler(data *dataset.Data, parser *service.RecipeParser, swaps *service.SwapEngine, logger *zap.Logger) *RecipeHandler {
	return &RecipeHandler{data: data, parser: parser, swaps: swaps, logger: logger}
}

func (h *RecipeHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/parse-recipe", h.ParseRecipe)
	r.GET("/smart-swaps/:food", h.SmartSwaps)
}

// ParseRecipe resolves catalog ingredients from a multipart form carrying
// recipe_text and/or a recipe_image file. Text wins when both are present.
func (h *RecipeHandler) ParseRecipe(c *gin.Context) {
	text := c.PostForm("recipe_text")

	var ingredients []string
	if strings.TrimSpace(text) != "" {
		ingredients = h.parser.ParseRecipeText(text)
	} else if file, err := c.FormFile("recipe_image"); err == nil {
		f, err := file.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Could not read recipe image"})
			return
		}
		defer f.Close()
		img, err := io.ReadAll(f)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Could not read recipe image"})
			return
		}
		ingredients = h.parser.ParseRecipeImage(c.Request.Context(), img)
	} else {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Provide recipe_text or recipe_image"})
		return
	}

	details := make([]gin.H, 0, len(ingredients))
	for _, key := range ingredients {
		food, ok := h.data.Food(key)
		if !ok {
			continue
		}
		details = append(details, gin.H{
			"key":      key,
			"name":     food.Name,
			"category": food.Category,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"success":            true,
		"ingredients":        ingredients,
		"ingredient_details": details,
		"total_found":        len(details),
	})
}

// SmartSwaps returns swap suggestions for one food, with allergens and
// dislikes taken from repeatable (or comma-separated) query parameters.
func (h *RecipeHandler) SmartSwaps(c *gin.Context) {
	foodKey := c.Param("food")
	allergens := queryList(c, "allergens")
	dislikes := queryList(c, "dislikes")

	original := "Unknown"
	if food, ok := h.data.Food(foodKey); ok {
		original = food.Name
	}

	swaps := h.swaps.FindSwaps(foodKey, allergens, dislikes)

	reason := "Alternative option"
	if len(allergens) > 0 {
		reason = "Allergen-free alternative"
	}
	suggestions := make([]gin.H, 0, len(swaps))
	for _, name := range swaps {
		suggestions = append(suggestions, gin.H{"name": name, "reason": reason})
	}

	c.JSON(http.StatusOK, gin.H{
		"original_food": original,
		"swaps":         suggestions,
		"total_swaps":   len(suggestions),
	})
}

// queryList collects a repeatable query parameter, splitting any
// comma-separated values and dropping empties.
func queryList(c *gin.Context, key string) []string {
	var out []string
	for _, raw := range c.QueryArray(key) {
		for _, part := range strings.Split(raw, ",") {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				out = append(out, trimmed)
			}
		}
	}
	return out
}
