package services

import (
	"fmt"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"
)

type PDFParserService interface {
	Inspect(filePath string) (*PDFInfo, error)
}

// PDFInfo describes an uploaded resume PDF after validation.
type PDFInfo struct {
	PageCount int
	HasText   bool
	FilePath  string
}

type pdfParserService struct{}

func NewPDFParserService() PDFParserService {
	return &pdfParserService{}
}

// Inspect verifies the file is a readable PDF and reports its page count and
// whether any extractable text was found. A scanned-image resume still passes
// (the AI model reads the page image), but HasText lets the caller warn.
func (p *pdfParserService) Inspect(filePath string) (*PDFInfo, error) {
	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return nil, fmt.Errorf("file does not exist: %s", filePath)
	}

	f, r, err := pdf.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}
	defer f.Close()

	totalPage := r.NumPage()
	if totalPage < 1 {
		return nil, fmt.Errorf("PDF has no pages")
	}

	var textBuilder strings.Builder
	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			// Log error but continue with other pages
			continue
		}

		textBuilder.WriteString(text)
	}

	return &PDFInfo{
		PageCount: totalPage,
		HasText:   strings.TrimSpace(textBuilder.String()) != "",
		FilePath:  filePath,
	}, nil
}
