package api

import (
	"encoding/json"
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ayushaahar/backend/internal/models"
	"github.com/ayushaahar/backend/internal/store"
)

// AppointmentHandler serves appointment scheduling.
type AppointmentHandler struct {
	store  *store.DocumentStore
	logger *zap.Logger
}

func NewAppointmentHandler(st *store.DocumentStore, logger *zap.Logger) *AppointmentHandler {
	return &AppointmentHandler{store: st, logger: logger}
}

func (h *AppointmentHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/appointments", h.CreateAppointment)
	r.GET("/appointments", h.ListAppointments)
	r.GET("/appointments/today", h.TodayAppointments)
}

// CreateAppointment stores a new appointment, defaulting status to Scheduled.
func (h *AppointmentHandler) CreateAppointment(c *gin.Context) {
	var appt models.Appointment
	if err := c.ShouldBindJSON(&appt); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	appt.ID = uuid.New()
	if appt.Status == "" {
		appt.Status = models.AppointmentScheduled
	}
	appt.CreatedAt = time.Now().UTC()

	if err := h.store.Insert(c.Request.Context(), store.Appointments, store.Record{
		PatientID: appt.PatientID,
		Date:      appt.AppointmentDate,
		Value:     appt,
	}); err != nil {
		h.logger.Error("storing appointment failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create appointment"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Appointment created successfully", "appointment": appt})
}

// ListAppointments returns all appointments ordered by date and time.
func (h *AppointmentHandler) ListAppointments(c *gin.Context) {
	appts, err := h.findAppointments(c, store.Filter{})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch appointments"})
		return
	}
	c.JSON(http.StatusOK, appts)
}

// TodayAppointments returns appointments for the current date, ordered by time.
func (h *AppointmentHandler) TodayAppointments(c *gin.Context) {
	today := time.Now().Format("2006-01-02")
	appts, err := h.findAppointments(c, store.Filter{Date: today})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch appointments"})
		return
	}
	c.JSON(http.StatusOK, appts)
}

func (h *AppointmentHandler) findAppointments(c *gin.Context, f store.Filter) ([]models.Appointment, error) {
	docs, err := h.store.Find(c.Request.Context(), store.Appointments, f)
	if err != nil {
		h.logger.Error("appointment lookup failed", zap.Error(err))
		return nil, err
	}

	appts := make([]models.Appointment, 0, len(docs))
	for _, raw := range docs {
		var a models.Appointment
		if err := json.Unmarshal(raw, &a); err != nil {
			continue
		}
		appts = append(appts, a)
	}
	sort.SliceStable(appts, func(i, j int) bool {
		if appts[i].AppointmentDate != appts[j].AppointmentDate {
			return appts[i].AppointmentDate < appts[j].AppointmentDate
		}
		return appts[i].AppointmentTime < appts[j].AppointmentTime
	})
	return appts, nil
}
