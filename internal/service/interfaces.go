package service

import (
	"context"

	"github.com/ayushaahar/backend/internal/models"
)

// TextExtractor pulls text out of a recipe photo. Implementations return
// an empty string and an error on failure; callers degrade to fallback
// ingredient sets instead of propagating it.
type TextExtractor interface {
	ExtractText(ctx context.Context, image []byte) (string, error)
}

// WeatherProvider looks up current weather for a city. Implementations
// never fail: any upstream problem yields the fixed temperate default.
type WeatherProvider interface {
	GetWeatherData(ctx context.Context, city string) models.WeatherData
}
