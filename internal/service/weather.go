package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/ayushaahar/backend/internal/models"
)

const (
	defaultWeatherURL = "http://api.openweathermap.org/data/2.5/weather"
	weatherCacheTTL   = 10 * time.Minute
)

// WeatherService fetches weather snapshots from OpenWeather, caching them
// briefly in Redis. Lookup failures of any kind (network, bad city, cache
// trouble) degrade to a fixed temperate default instead of erroring.
type WeatherService struct {
	client *resty.Client
	redis  *redis.Client // optional; nil disables caching
	apiKey string
	logger *zap.Logger
}

// NewWeatherService creates a WeatherService. redisClient may be nil.
func NewWeatherService(apiKey string, redisClient *redis.Client, logger *zap.Logger) *WeatherService {
	client := resty.New().
		SetBaseURL(defaultWeatherURL).
		SetTimeout(10 * time.Second)
	return &WeatherService{
		client: client,
		redis:  redisClient,
		apiKey: apiKey,
		logger: logger,
	}
}

// SetBaseURL overrides the upstream endpoint, used by tests.
func (s *WeatherService) SetBaseURL(url string) {
	s.client.SetBaseURL(url)
}

// openWeatherResponse is the subset of the OpenWeather payload we read.
type openWeatherResponse struct {
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity float64 `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
	Name string `json:"name"`
}

// GetWeatherData returns the weather snapshot for city. Never fails: any
// error on the way produces the fixed fallback snapshot for that city.
func (s *WeatherService) GetWeatherData(ctx context.Context, city string) models.WeatherData {
	cacheKey := "weather:" + strings.ToLower(city)

	if s.redis != nil {
		if cached, err := s.redis.Get(ctx, cacheKey).Result(); err == nil {
			var data models.WeatherData
			if json.Unmarshal([]byte(cached), &data) == nil {
				return data
			}
		}
	}

	data, err := s.fetch(ctx, city)
	if err != nil {
		s.logger.Warn("weather lookup failed, using fallback",
			zap.String("city", city), zap.Error(err))
		return fallbackWeather(city)
	}

	if s.redis != nil {
		if raw, err := json.Marshal(data); err == nil {
			// cache errors are ignored; the snapshot is already in hand
			s.redis.Set(ctx, cacheKey, raw, weatherCacheTTL)
		}
	}
	return data
}

func (s *WeatherService) fetch(ctx context.Context, city string) (models.WeatherData, error) {
	var payload openWeatherResponse
	resp, err := s.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"q":     city,
			"appid": s.apiKey,
			"units": "metric",
		}).
		SetResult(&payload).
		Get("")
	if err != nil {
		return models.WeatherData{}, err
	}
	if resp.IsError() {
		return models.WeatherData{}, fmt.Errorf("weather API returned %s", resp.Status())
	}

	description := ""
	if len(payload.Weather) > 0 {
		description = payload.Weather[0].Description
	}

	return models.WeatherData{
		Temperature: payload.Main.Temp,
		Humidity:    payload.Main.Humidity,
		Description: description,
		Season:      seasonForTemperature(payload.Main.Temp),
		City:        payload.Name,
	}, nil
}

// seasonForTemperature derives the season label from temperature alone.
func seasonForTemperature(temp float64) string {
	switch {
	case temp > 35:
		return "Summer"
	case temp > 25:
		return "Spring"
	case temp > 15:
		return "Autumn"
	default:
		return "Winter"
	}
}

func fallbackWeather(city string) models.WeatherData {
	return models.WeatherData{
		Temperature: 25.0,
		Humidity:    60,
		Description: "moderate climate",
		Season:      "Spring",
		City:        city,
	}
}
