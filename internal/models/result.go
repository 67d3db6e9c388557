package models

import "github.com/Alucard0x1/AI-Resume-Builder/internal/profile"

type UploadResponse struct {
	ID           string `json:"id"`
	Filename     string `json:"filename"`
	OriginalName string `json:"original_name"`
	FileType     string `json:"file_type"`
	PageCount    int    `json:"page_count"`
}

type ExtractRequest struct {
	DocumentID string `json:"document_id" validate:"required,uuid"`
}

type ExtractResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type ResultResponse struct {
	ID           string           `json:"id"`
	Status       string           `json:"status"`
	Profile      *profile.Profile `json:"profile,omitempty"`
	ErrorMessage *string          `json:"error_message,omitempty"`
}
