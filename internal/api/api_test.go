package api

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/ayushaahar/backend/internal/dataset"
	"github.com/ayushaahar/backend/internal/models"
	"github.com/ayushaahar/backend/internal/service"
	"github.com/ayushaahar/backend/internal/store"
)

type stubWeather struct{}

func (stubWeather) GetWeatherData(ctx context.Context, city string) models.WeatherData {
	return models.WeatherData{Temperature: 28, Humidity: 65, Description: "haze", Season: "Spring", City: city}
}

func testRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	data, err := dataset.Load(filepath.Join("..", "..", "datasets"))
	require.NoError(t, err)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	documents := store.NewDocumentStore(db)
	require.NoError(t, documents.Migrate())

	log := zap.NewNop()
	parser := service.NewRecipeParser(data, nil, log)
	swaps := service.NewSwapEngine(data)
	engine := service.NewDietChartEngine(data, stubWeather{}, parser, log)

	router := gin.New()
	group := router.Group("/api")
	NewPatientHandler(data, documents, log).RegisterRoutes(group)
	NewChartHandler(engine, documents, log).RegisterRoutes(group)
	NewRecipeHandler(data, parser, swaps, log).RegisterRoutes(group)
	NewWeatherHandler(stubWeather{}).RegisterRoutes(group)
	NewAppointmentHandler(documents, log).RegisterRoutes(group)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Buffer
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewBuffer(raw)
	} else {
		reader = &bytes.Buffer{}
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestWeatherEndpoint(t *testing.T) {
	router := testRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/weather/Chennai", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var data models.WeatherData
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &data))
	assert.Equal(t, "Chennai", data.City)
	assert.Equal(t, 28.0, data.Temperature)
}

func TestSmartSwapsEndpoint(t *testing.T) {
	router := testRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/smart-swaps/turmeric", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		OriginalFood string `json:"original_food"`
		Swaps        []struct {
			Name   string `json:"name"`
			Reason string `json:"reason"`
		} `json:"swaps"`
		TotalSwaps int `json:"total_swaps"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Turmeric", resp.OriginalFood)
	assert.Equal(t, 3, resp.TotalSwaps)
	assert.Equal(t, "Alternative option", resp.Swaps[0].Reason)
}

func TestSmartSwapsEndpointWithAllergens(t *testing.T) {
	router := testRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/smart-swaps/paneer?allergens=dairy", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		TotalSwaps int `json:"total_swaps"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Zero(t, resp.TotalSwaps)
}

func TestParseRecipeEndpoint(t *testing.T) {
	router := testRouter(t)

	var body bytes.Buffer
	form := multipart.NewWriter(&body)
	require.NoError(t, form.WriteField("recipe_text", "sambar with rice"))
	require.NoError(t, form.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/parse-recipe", &body)
	req.Header.Set("Content-Type", form.FormDataContentType())
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Success     bool     `json:"success"`
		Ingredients []string `json:"ingredients"`
		TotalFound  int      `json:"total_found"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Contains(t, resp.Ingredients, "toor_dal")
	assert.Contains(t, resp.Ingredients, "rice")
	assert.Equal(t, len(resp.Ingredients), resp.TotalFound)
}

func TestParseRecipeEndpointWithoutInput(t *testing.T) {
	router := testRouter(t)

	var body bytes.Buffer
	form := multipart.NewWriter(&body)
	require.NoError(t, form.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/parse-recipe", &body)
	req.Header.Set("Content-Type", form.FormDataContentType())
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListPatientsIncludesSeedRecords(t *testing.T) {
	router := testRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/patients", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var patients []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &patients))
	require.NotEmpty(t, patients)

	ids := map[string]bool{}
	for _, p := range patients {
		ids[p["PatientID"].(string)] = true
	}
	assert.True(t, ids["PAT001"])
}

func TestCreatePatientMissingField(t *testing.T) {
	router := testRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/patients", map[string]interface{}{
		"PatientID": "PAT900",
		"Age":       33,
		"Gender":    "Female",
		"City":      "Pune",
	})

	require.Equal(t, http.StatusBadRequest, w.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Missing required field: Name", resp["error"])
}

func TestCreatePatientRegeneratesCollidingID(t *testing.T) {
	router := testRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/patients", map[string]interface{}{
		"PatientID": "PAT001",
		"Name":      "Duplicate Dev",
		"Age":       33,
		"Gender":    "Female",
		"City":      "Pune",
	})

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Message string                 `json:"message"`
		Patient map[string]interface{} `json:"patient"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Patient created successfully", resp.Message)
	assert.NotEqual(t, "PAT001", resp.Patient["PatientID"])
}

func TestGetPatient(t *testing.T) {
	router := testRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/patients/PAT001", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var patient map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &patient))
	assert.Equal(t, "Ramesh Kumar", patient["Name"])

	w = doJSON(t, router, http.MethodGet, "/api/patients/PAT999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGenerateDietChartEndpoint(t *testing.T) {
	router := testRouter(t)

	body := map[string]interface{}{
		"patient_profile": map[string]interface{}{
			"patient_id":   "PAT001",
			"name":         "Ramesh Kumar",
			"age":          45,
			"gender":       "Male",
			"city":         "Chennai",
			"constitution": "Pitta",
		},
		"city_name": "Chennai",
	}
	w := doJSON(t, router, http.MethodPost, "/api/generate-enhanced-diet-chart", body)

	require.Equal(t, http.StatusOK, w.Code)
	var chart models.DietChart
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &chart))
	assert.Len(t, chart.Meals, 4)
	assert.Equal(t, "PAT001", chart.PatientID)

	// the chart is also visible in the patient's history, newest first
	w = doJSON(t, router, http.MethodGet, "/api/patients/PAT001/diet-charts", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var history []models.PatientDietChart
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &history))
	require.Len(t, history, 1)
	assert.Equal(t, chart.ID, history[0].ChartData.ID)
}

func TestGenerateDietChartEndpointValidation(t *testing.T) {
	router := testRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/generate-enhanced-diet-chart", map[string]interface{}{
		"city_name": "Chennai",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAppointments(t *testing.T) {
	router := testRouter(t)
	today := time.Now().Format("2006-01-02")

	create := func(date, at string) {
		w := doJSON(t, router, http.MethodPost, "/api/appointments", map[string]interface{}{
			"patient_id":       "PAT001",
			"patient_name":     "Ramesh Kumar",
			"appointment_date": date,
			"appointment_time": at,
			"reason":           "Follow-up",
		})
		require.Equal(t, http.StatusOK, w.Code)
	}
	create(today, "10:30")
	create("2030-01-01", "09:00")

	w := doJSON(t, router, http.MethodGet, "/api/appointments", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var all []models.Appointment
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &all))
	require.Len(t, all, 2)
	assert.Equal(t, models.AppointmentScheduled, all[0].Status)
	assert.True(t, all[0].AppointmentDate <= all[1].AppointmentDate)

	w = doJSON(t, router, http.MethodGet, "/api/appointments/today", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var todays []models.Appointment
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &todays))
	require.Len(t, todays, 1)
	assert.Equal(t, today, todays[0].AppointmentDate)
}

func TestAppointmentValidation(t *testing.T) {
	router := testRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/appointments", map[string]interface{}{
		"patient_id": "PAT001",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
