package handlers

import (
	"encoding/json"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/Alucard0x1/AI-Resume-Builder/internal/models"
	"github.com/Alucard0x1/AI-Resume-Builder/internal/profile"
	"github.com/Alucard0x1/AI-Resume-Builder/internal/render"
	"github.com/Alucard0x1/AI-Resume-Builder/internal/repositories"
)

type ExportHandler struct {
	extractionRepo repositories.ExtractionRepository
}

func NewExportHandler(extractionRepo repositories.ExtractionRepository) *ExportHandler {
	return &ExportHandler{
		extractionRepo: extractionRepo,
	}
}

// HandleExport handles GET /export/:id and returns the rendered CV as a
// downloadable standalone HTML document.
func (h *ExportHandler) HandleExport(c *fiber.Ctx) error {
	idParam := c.Params("id")
	extractionID, err := uuid.Parse(idParam)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid extraction ID format",
		})
	}

	extraction, err := h.extractionRepo.FindByID(extractionID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Extraction not found",
		})
	}

	if extraction.Status != models.StatusCompleted {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error":  "Extraction is not completed yet",
			"status": string(extraction.Status),
		})
	}

	var p profile.Profile
	if err := json.Unmarshal([]byte(extraction.ProfileJSON), &p); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to decode stored profile",
		})
	}

	html, err := render.Render(p)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("failed to render CV: %v", err),
		})
	}

	c.Set(fiber.HeaderContentDisposition,
		fmt.Sprintf("attachment; filename=%q", render.ExportFilename(p.Name)))
	c.Type("html")
	return c.SendString(html)
}
