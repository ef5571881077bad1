package handler

import (
	"encoding/json"
	"net/http"

	"github.com/TechMaverickHub/100x-LLM-week2-pdf-chatbot/internal/domain"
	apperrors "github.com/TechMaverickHub/100x-LLM-week2-pdf-chatbot/pkg/errors"
)

// AskHandler handles question requests against the stored document
type AskHandler struct {
	askService domain.AskService
	logger     domain.Logger
}

// NewAskHandler creates a new ask handler
func NewAskHandler(askService domain.AskService, logger domain.Logger) *AskHandler {
	return &AskHandler{
		askService: askService,
		logger:     logger,
	}
}

// Ask handles POST /ask. A body that fails to decode behaves the same as a
// missing question.
func (h *AskHandler) Ask(w http.ResponseWriter, r *http.Request) {
	var req domain.AskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperrors.NewInvalidQuestion())
		return
	}

	answer, err := h.askService.Ask(r.Context(), req.Question)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, domain.MsgAnswerGenerated, domain.AskResult{Answer: answer})
}
