package service

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ayushaahar/backend/internal/dataset"
	"github.com/ayushaahar/backend/internal/models"
)

func testData(t *testing.T) *dataset.Data {
	t.Helper()
	data, err := dataset.Load(filepath.Join("..", "..", "datasets"))
	require.NoError(t, err)
	return data
}

// fakeOCR returns canned text or a canned error.
type fakeOCR struct {
	text string
	err  error
}

func (f fakeOCR) ExtractText(ctx context.Context, image []byte) (string, error) {
	return f.text, f.err
}

// stubWeather returns a fixed snapshot regardless of city.
type stubWeather struct {
	data models.WeatherData
}

func (s stubWeather) GetWeatherData(ctx context.Context, city string) models.WeatherData {
	d := s.data
	if d.City == "" {
		d.City = city
	}
	return d
}
