package models

import (
	"time"

	"github.com/google/uuid"
)

// Appointment statuses.
const (
	AppointmentScheduled = "Scheduled"
	AppointmentCompleted = "Completed"
	AppointmentCancelled = "Cancelled"
)

// Appointment is a scheduled patient visit kept in the document store.
type Appointment struct {
	ID              uuid.UUID `json:"id"`
	PatientID       string    `json:"patient_id" binding:"required"`
	PatientName     string    `json:"patient_name" binding:"required"`
	AppointmentDate string    `json:"appointment_date" binding:"required"` // YYYY-MM-DD
	AppointmentTime string    `json:"appointment_time" binding:"required"` // HH:MM
	Reason          string    `json:"reason"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
}
