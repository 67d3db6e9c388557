package handlers

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/Alucard0x1/AI-Resume-Builder/internal/models"
	"github.com/Alucard0x1/AI-Resume-Builder/internal/profile"
	"github.com/Alucard0x1/AI-Resume-Builder/internal/repositories"
)

type ResultHandler struct {
	extractionRepo repositories.ExtractionRepository
}

func NewResultHandler(extractionRepo repositories.ExtractionRepository) *ResultHandler {
	return &ResultHandler{
		extractionRepo: extractionRepo,
	}
}

func (h *ResultHandler) HandleGetResult(c *fiber.Ctx) error {
	// Parse ID from params
	idParam := c.Params("id")
	extractionID, err := uuid.Parse(idParam)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid extraction ID format",
		})
	}

	// Get extraction
	extraction, err := h.extractionRepo.FindByID(extractionID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Extraction not found",
		})
	}

	// Build response based on status
	response := models.ResultResponse{
		ID:     extraction.ID.String(),
		Status: string(extraction.Status),
	}

	// If completed, include the normalized profile
	if extraction.Status == models.StatusCompleted {
		var p profile.Profile
		if err := json.Unmarshal([]byte(extraction.ProfileJSON), &p); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to decode stored profile",
			})
		}
		response.Profile = &p
	}

	// If failed, include error message
	if extraction.Status == models.StatusFailed && extraction.ErrorMessage != "" {
		response.ErrorMessage = &extraction.ErrorMessage
	}

	return c.JSON(response)
}
