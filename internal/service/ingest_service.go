package service

import (
	"strings"
	"unicode/utf8"

	"github.com/TechMaverickHub/100x-LLM-week2-pdf-chatbot/internal/domain"
	apperrors "github.com/TechMaverickHub/100x-LLM-week2-pdf-chatbot/pkg/errors"
)

const pdfContentType = "application/pdf"

// IngestService validates an uploaded file, extracts its text, and stores
// it as the single active document.
type IngestService struct {
	extractor domain.TextExtractor
	store     domain.DocumentStore
	config    domain.Config
	logger    domain.Logger
}

// NewIngestService creates a new ingest service
func NewIngestService(
	extractor domain.TextExtractor,
	store domain.DocumentStore,
	config domain.Config,
	logger domain.Logger,
) *IngestService {
	return &IngestService{
		extractor: extractor,
		store:     store,
		config:    config,
		logger:    logger,
	}
}

// Ingest runs the upload pipeline: type check, extraction, emptiness gate,
// token-size gate, store. On any failure the store is left untouched, so a
// previously loaded document stays queryable.
func (s *IngestService) Ingest(filename, contentType string, data []byte) error {
	if !isPDF(filename, contentType) {
		return apperrors.NewInvalidFileType()
	}

	pages, err := s.extractor.ExtractPages(data)
	if err != nil {
		s.logger.Error("PDF extraction failed", err, "filename", filename)
		return apperrors.NewUnprocessableDocument(err)
	}

	text := strings.TrimSpace(strings.Join(pages, "\n\n"))
	if text == "" {
		return apperrors.NewUnprocessableDocument(nil)
	}

	if estimateTokens(text, s.config.GetCharsPerToken()) > s.config.GetMaxContextTokens() {
		return apperrors.NewDocumentTooLarge()
	}

	s.store.Set(text)
	s.logger.Info("document stored", "filename", filename, "chars", utf8.RuneCountInString(text))
	return nil
}

// isPDF accepts either signal: a .pdf extension or the PDF MIME type.
func isPDF(filename, contentType string) bool {
	return strings.HasSuffix(strings.ToLower(filename), ".pdf") || contentType == pdfContentType
}

// estimateTokens is a coarse character-count proxy for context size, not an
// exact tokenizer count.
func estimateTokens(text string, charsPerToken int) int {
	if charsPerToken <= 0 {
		charsPerToken = 4
	}
	tokens := utf8.RuneCountInString(text) / charsPerToken
	if tokens < 1 {
		return 1
	}
	return tokens
}
