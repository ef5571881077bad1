// Package service implements the ingestion and question-answering logic.
package service

import (
	"fmt"

	"github.com/gen2brain/go-fitz"

	"github.com/TechMaverickHub/100x-LLM-week2-pdf-chatbot/internal/domain"
)

// PDFExtractor extracts per-page text from PDF bytes via MuPDF.
type PDFExtractor struct {
	logger domain.Logger
}

// NewPDFExtractor creates a new PDF extractor
func NewPDFExtractor(logger domain.Logger) *PDFExtractor {
	return &PDFExtractor{
		logger: logger,
	}
}

// ExtractPages returns the text of every page in order. Any fault opening
// the document or reading a page is returned as-is; callers treat the
// document as unprocessable.
func (p *PDFExtractor) ExtractPages(data []byte) ([]string, error) {
	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}
	defer doc.Close()

	numPages := doc.NumPage()
	pages := make([]string, 0, numPages)
	for pageNum := 0; pageNum < numPages; pageNum++ {
		text, err := doc.Text(pageNum)
		if err != nil {
			return nil, fmt.Errorf("failed to extract text from page %d: %w", pageNum+1, err)
		}
		pages = append(pages, text)
	}

	p.logger.Debug("PDF text extracted", "pages", numPages)
	return pages, nil
}
