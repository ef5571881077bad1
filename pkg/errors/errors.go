// Package errors defines the application error taxonomy and its mapping to
// HTTP status codes and fixed user-facing messages.
package errors

import (
	"fmt"
	"net/http"
)

// Kind identifies each failure mode the API can surface.
type Kind string

const (
	KindInvalidFileType        Kind = "invalid_file_type"
	KindUnprocessableDocument  Kind = "unprocessable_document"
	KindDocumentTooLarge       Kind = "document_too_large"
	KindInvalidQuestion        Kind = "invalid_question"
	KindNoDocumentLoaded       Kind = "no_document_loaded"
	KindServerMisconfigured    Kind = "server_misconfigured"
	KindAnswerGenerationFailed Kind = "answer_generation_failed"
)

// genericMessage is used for errors that are not an *AppError. Clients never
// see internal failure detail.
const genericMessage = "Something went wrong, please try again."

var messages = map[Kind]string{
	KindInvalidFileType:        "Only PDF files are supported.",
	KindUnprocessableDocument:  "Could not process this PDF. Please try another file.",
	KindDocumentTooLarge:       "PDF too large, please shorten or split.",
	KindInvalidQuestion:        "Question must be provided.",
	KindNoDocumentLoaded:       "Please upload a PDF first.",
	KindServerMisconfigured:    "Server configuration error: missing GROQ_API_KEY.",
	KindAnswerGenerationFailed: "We’re having trouble generating an answer. Please try again.",
}

var statusCodes = map[Kind]int{
	KindInvalidFileType:        http.StatusBadRequest,
	KindUnprocessableDocument:  http.StatusUnprocessableEntity,
	KindDocumentTooLarge:       http.StatusRequestEntityTooLarge,
	KindInvalidQuestion:        http.StatusBadRequest,
	KindNoDocumentLoaded:       http.StatusConflict,
	KindServerMisconfigured:    http.StatusInternalServerError,
	KindAnswerGenerationFailed: http.StatusInternalServerError,
}

// AppError represents a structured application error
type AppError struct {
	Kind       Kind
	Message    string
	StatusCode int
	Cause      error
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap returns the underlying error
func (e *AppError) Unwrap() error {
	return e.Cause
}

// New creates an AppError of the given kind with its fixed message and
// status code.
func New(kind Kind, cause error) *AppError {
	return &AppError{
		Kind:       kind,
		Message:    messages[kind],
		StatusCode: statusCodes[kind],
		Cause:      cause,
	}
}

// NewInvalidFileType reports an upload that is not a PDF.
func NewInvalidFileType() *AppError {
	return New(KindInvalidFileType, nil)
}

// NewUnprocessableDocument reports a PDF that could not be extracted or
// extracted to nothing.
func NewUnprocessableDocument(cause error) *AppError {
	return New(KindUnprocessableDocument, cause)
}

// NewDocumentTooLarge reports a document over the context-token ceiling.
func NewDocumentTooLarge() *AppError {
	return New(KindDocumentTooLarge, nil)
}

// NewInvalidQuestion reports an empty or whitespace-only question.
func NewInvalidQuestion() *AppError {
	return New(KindInvalidQuestion, nil)
}

// NewNoDocumentLoaded reports a question asked before any upload.
func NewNoDocumentLoaded() *AppError {
	return New(KindNoDocumentLoaded, nil)
}

// NewServerMisconfigured reports a missing LLM credential.
func NewServerMisconfigured() *AppError {
	return New(KindServerMisconfigured, nil)
}

// NewAnswerGenerationFailed collapses any LLM collaborator failure into the
// single generic outward kind.
func NewAnswerGenerationFailed(cause error) *AppError {
	return New(KindAnswerGenerationFailed, cause)
}

// IsKind checks if the error is of a specific kind
func IsKind(err error, kind Kind) bool {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Kind == kind
	}
	return false
}

// GetStatusCode returns the HTTP status code for an error
func GetStatusCode(err error) int {
	if appErr, ok := err.(*AppError); ok {
		return appErr.StatusCode
	}
	return http.StatusInternalServerError
}

// GetMessage returns the user-facing message for an error
func GetMessage(err error) string {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Message
	}
	return genericMessage
}
