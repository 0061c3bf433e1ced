package store

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Collection names used by the application.
const (
	Patients          = "patients"
	DietCharts        = "enhanced_diet_charts"
	PatientDietCharts = "patient_diet_charts"
	Appointments      = "appointments"
)

// Document is one stored record. The payload is opaque JSON; collection,
// patient and date columns exist only so lookups can filter without
// touching the payload.
type Document struct {
	ID         uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Collection string         `gorm:"size:64;not null;index"`
	PatientID  string         `gorm:"size:64;index"`
	DocDate    string         `gorm:"size:10;index"` // YYYY-MM-DD, where the record has a natural date
	Data       datatypes.JSON `gorm:"not null"`
	CreatedAt  time.Time
}

func (Document) TableName() string {
	return "documents"
}

// Record is what callers hand to Insert: the value plus the index fields
// extracted from it.
type Record struct {
	PatientID string
	Date      string
	Value     interface{}
}

// Filter narrows a Find. Zero values mean "no constraint".
type Filter struct {
	PatientID   string
	Date        string
	NewestFirst bool
}

// DocumentStore is the opaque insert/find persistence surface. No
// transactional guarantees are offered across inserts; the chart and
// patient-chart dual write is two independent calls by design.
type DocumentStore struct {
	db *gorm.DB
}

// NewDocumentStore creates a DocumentStore over an open gorm connection.
func NewDocumentStore(db *gorm.DB) *DocumentStore {
	return &DocumentStore{db: db}
}

// Migrate creates the documents table.
func (s *DocumentStore) Migrate() error {
	return s.db.AutoMigrate(&Document{})
}

// Insert serializes rec.Value and stores it under collection.
func (s *DocumentStore) Insert(ctx context.Context, collection string, rec Record) error {
	raw, err := json.Marshal(rec.Value)
	if err != nil {
		return err
	}
	doc := Document{
		ID:         uuid.New(),
		Collection: collection,
		PatientID:  rec.PatientID,
		DocDate:    rec.Date,
		Data:       datatypes.JSON(raw),
		CreatedAt:  time.Now().UTC(),
	}
	return s.db.WithContext(ctx).Create(&doc).Error
}

// Find returns the raw payloads matching the filter. Results are ordered
// by creation time (newest first when requested) or by document date.
func (s *DocumentStore) Find(ctx context.Context, collection string, f Filter) ([]json.RawMessage, error) {
	query := s.db.WithContext(ctx).Model(&Document{}).Where("collection = ?", collection)
	if f.PatientID != "" {
		query = query.Where("patient_id = ?", f.PatientID)
	}
	if f.Date != "" {
		query = query.Where("doc_date = ?", f.Date)
	}
	if f.NewestFirst {
		query = query.Order("created_at DESC")
	} else {
		query = query.Order("doc_date ASC, created_at ASC")
	}

	var docs []Document
	if err := query.Find(&docs).Error; err != nil {
		return nil, err
	}

	out := make([]json.RawMessage, len(docs))
	for i, d := range docs {
		out[i] = json.RawMessage(d.Data)
	}
	return out, nil
}
