package api

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ayushaahar/backend/internal/dataset"
	"github.com/ayushaahar/backend/internal/store"
)

// requiredPatientFields are validated in order so the error always names
// the first missing one.
var requiredPatientFields = []string{"PatientID", "Name", "Age", "Gender", "City"}

// PatientHandler serves the patient directory: the static seed records
// merged with patients created at runtime.
type PatientHandler struct {
	data   *dataset.Data
	store  *store.DocumentStore
	logger *zap.Logger
}

func NewPatientHandler(data *dataset.Data, st *store.DocumentStore, logger *zap.Logger) *PatientHandler {
	return &PatientHandler{data: data, store: st, logger: logger}
}

func (h *PatientHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/patients", h.ListPatients)
	r.POST("/patients", h.CreatePatient)
	r.GET("/patients/:id", h.GetPatient)
	r.GET("/patients/:id/diet-charts", h.GetPatientDietCharts)
}

// ListPatients returns the static records plus stored ones, deduplicated
// by PatientID. A store failure degrades to the static list alone.
func (h *PatientHandler) ListPatients(c *gin.Context) {
	patients := make([]map[string]interface{}, 0, len(h.data.Patients()))
	seen := make(map[string]bool)
	for _, p := range h.data.Patients() {
		patients = append(patients, p)
		if id, ok := p["PatientID"].(string); ok {
			seen[id] = true
		}
	}

	docs, err := h.store.Find(c.Request.Context(), store.Patients, store.Filter{})
	if err != nil {
		h.logger.Warn("listing stored patients failed, serving static records only", zap.Error(err))
		c.JSON(http.StatusOK, patients)
		return
	}
	for _, raw := range docs {
		var p map[string]interface{}
		if err := json.Unmarshal(raw, &p); err != nil {
			continue
		}
		if id, ok := p["PatientID"].(string); ok && seen[id] {
			continue
		} else if ok {
			seen[id] = true
		}
		patients = append(patients, p)
	}

	c.JSON(http.StatusOK, patients)
}

// CreatePatient stores a new patient record. On a PatientID collision the
// last three digits are regenerated until the ID is free.
func (h *PatientHandler) CreatePatient(c *gin.Context) {
	var patient map[string]interface{}
	if err := c.ShouldBindJSON(&patient); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid patient data"})
		return
	}

	for _, field := range requiredPatientFields {
		if _, ok := patient[field]; !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Missing required field: %s", field)})
			return
		}
	}

	id, _ := patient["PatientID"].(string)
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required field: PatientID"})
		return
	}

	for h.patientExists(c, id) {
		base := id
		if len(base) > 3 {
			base = base[:len(base)-3]
		}
		id = fmt.Sprintf("%s%03d", base, rand.Intn(900)+100)
	}
	patient["PatientID"] = id

	if err := h.store.Insert(c.Request.Context(), store.Patients, store.Record{PatientID: id, Value: patient}); err != nil {
		h.logger.Error("storing patient failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create patient"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Patient created successfully", "patient": patient})
}

// GetPatient looks a patient up by ID, stored records first.
func (h *PatientHandler) GetPatient(c *gin.Context) {
	id := c.Param("id")

	docs, err := h.store.Find(c.Request.Context(), store.Patients, store.Filter{PatientID: id})
	if err != nil {
		h.logger.Warn("patient lookup failed", zap.String("patient_id", id), zap.Error(err))
	}
	if len(docs) > 0 {
		var p map[string]interface{}
		if err := json.Unmarshal(docs[0], &p); err == nil {
			c.JSON(http.StatusOK, p)
			return
		}
	}

	for _, p := range h.data.Patients() {
		if pid, ok := p["PatientID"].(string); ok && pid == id {
			c.JSON(http.StatusOK, p)
			return
		}
	}

	c.JSON(http.StatusNotFound, gin.H{"error": "Patient not found"})
}

// GetPatientDietCharts returns the patient's stored charts, newest first.
func (h *PatientHandler) GetPatientDietCharts(c *gin.Context) {
	id := c.Param("id")

	docs, err := h.store.Find(c.Request.Context(), store.PatientDietCharts, store.Filter{PatientID: id, NewestFirst: true})
	if err != nil {
		h.logger.Error("chart history lookup failed", zap.String("patient_id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch diet charts"})
		return
	}

	c.JSON(http.StatusOK, docs)
}

func (h *PatientHandler) patientExists(c *gin.Context, id string) bool {
	for _, p := range h.data.Patients() {
		if pid, ok := p["PatientID"].(string); ok && pid == id {
			return true
		}
	}
	docs, err := h.store.Find(c.Request.Context(), store.Patients, store.Filter{PatientID: id})
	if err != nil {
		return false
	}
	return len(docs) > 0
}
