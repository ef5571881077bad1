package service

import (
	"context"
	"strings"

	"github.com/TechMaverickHub/100x-LLM-week2-pdf-chatbot/internal/domain"
	apperrors "github.com/TechMaverickHub/100x-LLM-week2-pdf-chatbot/pkg/errors"
)

const (
	systemInstructions = "You are a helpful assistant that answers ONLY using the provided DOCUMENT. " +
		"If the DOCUMENT does not contain the answer, reply exactly: " +
		"'The document does not contain that information.' Keep answers concise."

	// FallbackAnswer is returned verbatim when the model comes back empty.
	FallbackAnswer = "The document does not contain that information."
)

// AskService answers questions strictly from the stored document via the
// chat completion collaborator.
type AskService struct {
	completer domain.ChatCompleter
	store     domain.DocumentStore
	config    domain.Config
	logger    domain.Logger
}

// NewAskService creates a new ask service
func NewAskService(
	completer domain.ChatCompleter,
	store domain.DocumentStore,
	config domain.Config,
	logger domain.Logger,
) *AskService {
	return &AskService{
		completer: completer,
		store:     store,
		config:    config,
		logger:    logger,
	}
}

// Ask validates the question, builds the grounded prompt, and shapes the
// model's answer. The credential check runs before the store read so a
// missing key surfaces regardless of document state.
func (s *AskService) Ask(ctx context.Context, question string) (string, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return "", apperrors.NewInvalidQuestion()
	}

	if s.config.GetGroqAPIKey() == "" {
		return "", apperrors.NewServerMisconfigured()
	}

	text, ok := s.store.Get()
	if !ok {
		return "", apperrors.NewNoDocumentLoaded()
	}

	answer, err := s.completer.Complete(ctx, systemInstructions, buildPrompt(text, question))
	if err != nil {
		// All collaborator failures collapse into one outward kind; the
		// real cause is only logged.
		s.logger.Error("answer generation failed", err)
		return "", apperrors.NewAnswerGenerationFailed(err)
	}

	answer = strings.TrimSpace(answer)
	if answer == "" {
		answer = FallbackAnswer
	}
	return answer, nil
}

// buildPrompt produces the grounded prompt. The layout is fixed; clients of
// the model depend on it exactly as written.
func buildPrompt(document, question string) string {
	return "[DOCUMENT]\n" + document + "\n\n" +
		"[QUESTION]\n" + question + "\n\n" +
		"[INSTRUCTIONS]\n" +
		"- Only answer using DOCUMENT.\n" +
		"- If unsure or not present, say it is not in the document."
}
