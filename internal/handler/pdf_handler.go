// Package handler provides HTTP handlers for the API.
package handler

import (
	"io"
	"net/http"

	"github.com/TechMaverickHub/100x-LLM-week2-pdf-chatbot/internal/domain"
	apperrors "github.com/TechMaverickHub/100x-LLM-week2-pdf-chatbot/pkg/errors"
)

// PDFHandler handles PDF upload requests
type PDFHandler struct {
	ingestService domain.IngestService
	config        domain.Config
	logger        domain.Logger
}

// NewPDFHandler creates a new PDF handler
func NewPDFHandler(ingestService domain.IngestService, config domain.Config, logger domain.Logger) *PDFHandler {
	return &PDFHandler{
		ingestService: ingestService,
		config:        config,
		logger:        logger,
	}
}

// UploadPDF handles POST /upload-pdf. A request without a usable file part
// is rejected the same way as a non-PDF upload.
func (h *PDFHandler) UploadPDF(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(h.config.GetMaxUploadSize()); err != nil {
		writeError(w, apperrors.NewInvalidFileType())
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, apperrors.NewInvalidFileType())
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		h.logger.Error("failed to read upload", err, "filename", header.Filename)
		writeError(w, apperrors.NewUnprocessableDocument(err))
		return
	}

	if err := h.ingestService.Ingest(header.Filename, header.Header.Get("Content-Type"), data); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, domain.MsgPDFProcessed, domain.UploadResult{Status: "processed"})
}
