package models

import (
	"time"

	"github.com/google/uuid"
)

type ExtractionStatus string

const (
	StatusQueued     ExtractionStatus = "queued"
	StatusProcessing ExtractionStatus = "processing"
	StatusCompleted  ExtractionStatus = "completed"
	StatusFailed     ExtractionStatus = "failed"
)

// Extraction is one AI extraction job for an uploaded resume. RawResponse
// keeps the model's text before parsing for diagnostics; ProfileJSON holds
// the normalized profile once the job completes.
type Extraction struct {
	ID           uuid.UUID        `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	DocumentID   uuid.UUID        `gorm:"type:uuid;not null" json:"document_id"`
	Status       ExtractionStatus `gorm:"not null;default:'queued'" json:"status"`
	RawResponse  string           `gorm:"type:text" json:"-"`
	ProfileJSON  string           `gorm:"type:text" json:"-"`
	ErrorMessage string           `gorm:"type:text" json:"error_message,omitempty"`
	CreatedAt    time.Time        `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt    time.Time        `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`

	// Relations
	Document Document `gorm:"foreignKey:DocumentID" json:"-"`
}

func (Extraction) TableName() string {
	return "extractions"
}
