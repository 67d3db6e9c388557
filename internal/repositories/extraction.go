package repositories

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Alucard0x1/AI-Resume-Builder/internal/models"
)

type ExtractionRepository interface {
	Create(extraction *models.Extraction) error
	FindByID(id uuid.UUID) (*models.Extraction, error)
	FindActiveByDocumentID(docID uuid.UUID) (*models.Extraction, error)
	UpdateStatus(id uuid.UUID, status models.ExtractionStatus) error
	UpdateResult(id uuid.UUID, rawResponse, profileJSON string) error
	UpdateError(id uuid.UUID, errorMsg string) error
	FindPendingJobs(limit int) ([]models.Extraction, error)
}

type extractionRepository struct {
	db *gorm.DB
}

func NewExtractionRepository(db *gorm.DB) ExtractionRepository {
	return &extractionRepository{db: db}
}

func (r *extractionRepository) Create(extraction *models.Extraction) error {
	if err := r.db.Create(extraction).Error; err != nil {
		return fmt.Errorf("failed to create extraction: %w", err)
	}
	return nil
}

func (r *extractionRepository) FindByID(id uuid.UUID) (*models.Extraction, error) {
	var extraction models.Extraction
	if err := r.db.Where("id = ?", id).First(&extraction).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("extraction not found")
		}
		return nil, fmt.Errorf("failed to find extraction: %w", err)
	}
	return &extraction, nil
}

// FindActiveByDocumentID returns a queued or processing extraction for the
// document, if one exists. Used to reject overlapping extraction requests.
func (r *extractionRepository) FindActiveByDocumentID(docID uuid.UUID) (*models.Extraction, error) {
	var extraction models.Extraction
	err := r.db.
		Where("document_id = ? AND status IN ?", docID, []models.ExtractionStatus{
			models.StatusQueued,
			models.StatusProcessing,
		}).
		First(&extraction).Error

	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find active extraction: %w", err)
	}

	return &extraction, nil
}

func (r *extractionRepository) UpdateStatus(id uuid.UUID, status models.ExtractionStatus) error {
	result := r.db.Model(&models.Extraction{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update status: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("extraction not found")
	}

	return nil
}

func (r *extractionRepository) UpdateResult(id uuid.UUID, rawResponse, profileJSON string) error {
	result := r.db.Model(&models.Extraction{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":       models.StatusCompleted,
			"raw_response": rawResponse,
			"profile_json": profileJSON,
			"updated_at":   time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update result: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("extraction not found")
	}

	return nil
}

func (r *extractionRepository) UpdateError(id uuid.UUID, errorMsg string) error {
	result := r.db.Model(&models.Extraction{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":        models.StatusFailed,
			"error_message": errorMsg,
			"updated_at":    time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update error: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("extraction not found")
	}

	return nil
}

func (r *extractionRepository) FindPendingJobs(limit int) ([]models.Extraction, error) {
	var extractions []models.Extraction
	err := r.db.
		Where("status = ?", models.StatusQueued).
		Order("created_at ASC").
		Limit(limit).
		Find(&extractions).Error

	if err != nil {
		return nil, fmt.Errorf("failed to find pending jobs: %w", err)
	}

	return extractions, nil
}
