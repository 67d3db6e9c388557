package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/Alucard0x1/AI-Resume-Builder/internal/models"
	"github.com/Alucard0x1/AI-Resume-Builder/internal/profile"
	"github.com/Alucard0x1/AI-Resume-Builder/internal/repositories"
)

type ExtractorService interface {
	ExtractProfile(ctx context.Context, extractionID uuid.UUID) error
}

type extractorService struct {
	extractionRepo repositories.ExtractionRepository
	docRepo        repositories.DocumentRepository
	geminiService  GeminiService
	storageService StorageService
	promptBuilder  *PromptBuilder
}

func NewExtractorService(
	extractionRepo repositories.ExtractionRepository,
	docRepo repositories.DocumentRepository,
	geminiService GeminiService,
	storageService StorageService,
) ExtractorService {
	return &extractorService{
		extractionRepo: extractionRepo,
		docRepo:        docRepo,
		geminiService:  geminiService,
		storageService: storageService,
		promptBuilder:  NewPromptBuilder(),
	}
}

func (e *extractorService) ExtractProfile(ctx context.Context, extractionID uuid.UUID) error {
	// Update status to processing
	if err := e.extractionRepo.UpdateStatus(extractionID, models.StatusProcessing); err != nil {
		return fmt.Errorf("failed to update status: %w", err)
	}

	log.Printf("🔄 Starting extraction for job ID: %s\n", extractionID)

	// Get extraction details
	extraction, err := e.extractionRepo.FindByID(extractionID)
	if err != nil {
		e.extractionRepo.UpdateError(extractionID, err.Error())
		return fmt.Errorf("failed to get extraction: %w", err)
	}

	// Get the resume document
	doc, err := e.docRepo.FindByID(extraction.DocumentID)
	if err != nil {
		e.extractionRepo.UpdateError(extractionID, fmt.Sprintf("Resume document not found: %v", err))
		return fmt.Errorf("failed to get resume document: %w", err)
	}

	// Step 1: Read the PDF bytes
	log.Println("📄 Reading resume PDF...")
	pdfData, err := e.storageService.ReadFile(doc.FilePath)
	if err != nil {
		e.extractionRepo.UpdateError(extractionID, fmt.Sprintf("Failed to read resume file: %v", err))
		return fmt.Errorf("failed to read resume file: %w", err)
	}

	// Step 2: Ask the model for structured resume data
	log.Println("🤖 Extracting resume data with LLM...")
	prompt := e.promptBuilder.BuildResumeExtractionPrompt()

	response, err := e.geminiService.ExtractResumeData(ctx, pdfData, prompt)
	if err != nil {
		e.extractionRepo.UpdateError(extractionID, fmt.Sprintf("AI extraction failed: %v", err))
		return fmt.Errorf("failed to extract resume data: %w", err)
	}

	log.Printf("✅ Extraction response received: %d characters", len(response))

	// Step 3: Parse and normalize. An unparseable response fails the job with
	// a distinct message; any JSON that parses always yields a profile.
	result, err := profile.ParseResponse(response)
	if err != nil {
		if errors.Is(err, profile.ErrUnparseable) {
			e.extractionRepo.UpdateError(extractionID, "Could not parse AI response as JSON")
		} else {
			e.extractionRepo.UpdateError(extractionID, err.Error())
		}
		return fmt.Errorf("failed to parse AI response: %w", err)
	}

	// Step 4: Save the normalized profile
	log.Println("💾 Saving extracted profile...")
	profileJSON, err := json.Marshal(result)
	if err != nil {
		e.extractionRepo.UpdateError(extractionID, fmt.Sprintf("Failed to encode profile: %v", err))
		return fmt.Errorf("failed to encode profile: %w", err)
	}

	if err := e.extractionRepo.UpdateResult(extractionID, response, string(profileJSON)); err != nil {
		return fmt.Errorf("failed to save result: %w", err)
	}

	log.Printf("✅ Extraction completed successfully for job ID: %s\n", extractionID)
	return nil
}
