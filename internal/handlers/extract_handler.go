package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/Alucard0x1/AI-Resume-Builder/internal/models"
	"github.com/Alucard0x1/AI-Resume-Builder/internal/repositories"
	"github.com/Alucard0x1/AI-Resume-Builder/internal/services"
)

type ExtractHandler struct {
	extractionRepo repositories.ExtractionRepository
	docRepo        repositories.DocumentRepository
	worker         services.Worker
}

func NewExtractHandler(
	extractionRepo repositories.ExtractionRepository,
	docRepo repositories.DocumentRepository,
	worker services.Worker,
) *ExtractHandler {
	return &ExtractHandler{
		extractionRepo: extractionRepo,
		docRepo:        docRepo,
		worker:         worker,
	}
}

// HandleExtract handles POST /extract
func (h *ExtractHandler) HandleExtract(c *fiber.Ctx) error {
	var req models.ExtractRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if req.DocumentID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "document_id is required",
		})
	}

	docID, err := uuid.Parse(req.DocumentID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid document_id format",
		})
	}

	// Verify document exists
	if _, err := h.docRepo.FindByID(docID); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Resume document not found",
		})
	}

	// Reject overlapping extraction requests for the same document
	active, err := h.extractionRepo.FindActiveByDocumentID(docID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to check extraction status",
		})
	}
	if active != nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "An extraction for this document is already in progress",
			"id":    active.ID.String(),
		})
	}

	// Create extraction record
	extraction := &models.Extraction{
		ID:         uuid.New(),
		DocumentID: docID,
		Status:     models.StatusQueued,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}

	if err := h.extractionRepo.Create(extraction); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create extraction job",
		})
	}

	// Enqueue job to worker
	h.worker.EnqueueJob(extraction.ID)

	// Return job ID immediately
	return c.Status(fiber.StatusAccepted).JSON(models.ExtractResponse{
		ID:     extraction.ID.String(),
		Status: string(models.StatusQueued),
	})
}
