package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ayushaahar/backend/internal/models"
	"github.com/ayushaahar/backend/internal/service"
	"github.com/ayushaahar/backend/internal/store"
)

// ChartHandler serves diet chart generation.
type ChartHandler struct {
	engine *service.DietChartEngine
	store  *store.DocumentStore
	logger *zap.Logger
}

func NewChartHandler(engine *service.DietChartEngine, st *store.DocumentStore, logger *zap.Logger) *ChartHandler {
	return &ChartHandler{engine: engine, store: st, logger: logger}
}

func (h *ChartHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/generate-enhanced-diet-chart", h.GenerateDietChart)
}

// GenerateDietChart builds a chart for the request and persists it to both
// chart collections. Persistence failures are logged but do not fail the
// request; the generated chart is still returned.
func (h *ChartHandler) GenerateDietChart(c *gin.Context) {
	var req models.DietChartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	chart, err := h.engine.GenerateDietChart(c.Request.Context(), req)
	if err != nil {
		h.logger.Error("chart generation failed",
			zap.String("patient_id", req.PatientProfile.PatientID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error generating diet chart"})
		return
	}

	date := chart.CreatedAt.Format("2006-01-02")
	if err := h.store.Insert(c.Request.Context(), store.DietCharts, store.Record{
		PatientID: chart.PatientID,
		Date:      date,
		Value:     chart,
	}); err != nil {
		h.logger.Error("storing chart failed", zap.String("patient_id", chart.PatientID), zap.Error(err))
	}

	patientChart := models.PatientDietChart{
		ID:        uuid.New(),
		PatientID: chart.PatientID,
		ChartData: *chart,
		CreatedAt: time.Now().UTC(),
	}
	if err := h.store.Insert(c.Request.Context(), store.PatientDietCharts, store.Record{
		PatientID: chart.PatientID,
		Date:      date,
		Value:     patientChart,
	}); err != nil {
		h.logger.Error("storing patient chart failed", zap.String("patient_id", chart.PatientID), zap.Error(err))
	}

	c.JSON(http.StatusOK, chart)
}
