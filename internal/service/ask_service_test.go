package service

import (
	"context"
	"errors"
	"testing"

	"github.com/TechMaverickHub/100x-LLM-week2-pdf-chatbot/internal/repository"
	apperrors "github.com/TechMaverickHub/100x-LLM-week2-pdf-chatbot/pkg/errors"
)

type MockCompleter struct {
	answer       string
	err          error
	called       bool
	systemPrompt string
	userPrompt   string
}

func (m *MockCompleter) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	m.called = true
	m.systemPrompt = systemPrompt
	m.userPrompt = userPrompt
	if m.err != nil {
		return "", m.err
	}
	return m.answer, nil
}

func newAskService(completer *MockCompleter, cfg *MockConfig) (*AskService, *repository.DocumentStore) {
	store := repository.NewDocumentStore()
	return NewAskService(completer, store, cfg, &MockServiceLogger{}), store
}

func TestAsk_EmptyQuestion(t *testing.T) {
	for _, question := range []string{"", "   ", "\n\t "} {
		completer := &MockCompleter{answer: "irrelevant"}
		svc, store := newAskService(completer, &MockConfig{apiKey: "gsk-test"})
		store.Set("some document")

		_, err := svc.Ask(context.Background(), question)
		if !apperrors.IsKind(err, apperrors.KindInvalidQuestion) {
			t.Fatalf("question %q: expected invalid question error, got %v", question, err)
		}
		if completer.called {
			t.Fatalf("question %q: completer must not run", question)
		}
	}
}

func TestAsk_MissingCredential(t *testing.T) {
	// The credential check fires whether or not a document is loaded.
	withDoc, store := newAskService(&MockCompleter{}, &MockConfig{})
	store.Set("some document")
	if _, err := withDoc.Ask(context.Background(), "anything?"); !apperrors.IsKind(err, apperrors.KindServerMisconfigured) {
		t.Fatalf("expected server misconfigured error with document, got %v", err)
	}

	withoutDoc, _ := newAskService(&MockCompleter{}, &MockConfig{})
	if _, err := withoutDoc.Ask(context.Background(), "anything?"); !apperrors.IsKind(err, apperrors.KindServerMisconfigured) {
		t.Fatalf("expected server misconfigured error without document, got %v", err)
	}
}

func TestAsk_NoDocumentLoaded(t *testing.T) {
	completer := &MockCompleter{answer: "irrelevant"}
	svc, _ := newAskService(completer, &MockConfig{apiKey: "gsk-test"})

	_, err := svc.Ask(context.Background(), "What is this about?")
	if !apperrors.IsKind(err, apperrors.KindNoDocumentLoaded) {
		t.Fatalf("expected no document loaded error, got %v", err)
	}
	if completer.called {
		t.Fatalf("completer must not run without a document")
	}
}

func TestAsk_PromptFormat(t *testing.T) {
	completer := &MockCompleter{answer: "Paris."}
	svc, store := newAskService(completer, &MockConfig{apiKey: "gsk-test"})
	store.Set("Paris is the capital of France.")

	answer, err := svc.Ask(context.Background(), "  What is the capital of France?  ")
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if answer != "Paris." {
		t.Fatalf("unexpected answer: %q", answer)
	}

	wantPrompt := "[DOCUMENT]\n" +
		"Paris is the capital of France.\n" +
		"\n" +
		"[QUESTION]\n" +
		"What is the capital of France?\n" +
		"\n" +
		"[INSTRUCTIONS]\n" +
		"- Only answer using DOCUMENT.\n" +
		"- If unsure or not present, say it is not in the document."
	if completer.userPrompt != wantPrompt {
		t.Fatalf("prompt mismatch:\nwant: %q\ngot:  %q", wantPrompt, completer.userPrompt)
	}

	wantSystem := "You are a helpful assistant that answers ONLY using the provided DOCUMENT. " +
		"If the DOCUMENT does not contain the answer, reply exactly: " +
		"'The document does not contain that information.' Keep answers concise."
	if completer.systemPrompt != wantSystem {
		t.Fatalf("system prompt mismatch:\nwant: %q\ngot:  %q", wantSystem, completer.systemPrompt)
	}
}

func TestAsk_CollapsesCollaboratorFailures(t *testing.T) {
	for _, cause := range []error{
		errors.New("dial tcp: connection refused"),
		errors.New("401 invalid api key"),
		errors.New("429 rate limit exceeded"),
	} {
		svc, store := newAskService(&MockCompleter{err: cause}, &MockConfig{apiKey: "gsk-test"})
		store.Set("some document")

		_, err := svc.Ask(context.Background(), "anything?")
		if !apperrors.IsKind(err, apperrors.KindAnswerGenerationFailed) {
			t.Fatalf("cause %v: expected answer generation failed, got %v", cause, err)
		}
		// The cause stays internal.
		if msg := apperrors.GetMessage(err); msg != "We’re having trouble generating an answer. Please try again." {
			t.Fatalf("cause %v: unexpected outward message %q", cause, msg)
		}
	}
}

func TestAsk_EmptyCompletionFallsBack(t *testing.T) {
	for _, raw := range []string{"", "   ", "\n\t"} {
		svc, store := newAskService(&MockCompleter{answer: raw}, &MockConfig{apiKey: "gsk-test"})
		store.Set("some document")

		answer, err := svc.Ask(context.Background(), "anything?")
		if err != nil {
			t.Fatalf("expected success, got %v", err)
		}
		if answer != FallbackAnswer {
			t.Fatalf("raw %q: expected fallback answer, got %q", raw, answer)
		}
	}
}

func TestAsk_TrimsCompletion(t *testing.T) {
	svc, store := newAskService(&MockCompleter{answer: "  Paris.  \n"}, &MockConfig{apiKey: "gsk-test"})
	store.Set("some document")

	answer, err := svc.Ask(context.Background(), "anything?")
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if answer != "Paris." {
		t.Fatalf("expected trimmed answer, got %q", answer)
	}
}
