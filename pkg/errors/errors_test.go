package errors

import (
	stderrors "errors"
	"net/http"
	"testing"
)

func TestKindMapping(t *testing.T) {
	cases := []struct {
		kind    Kind
		status  int
		message string
	}{
		{KindInvalidFileType, http.StatusBadRequest, "Only PDF files are supported."},
		{KindUnprocessableDocument, http.StatusUnprocessableEntity, "Could not process this PDF. Please try another file."},
		{KindDocumentTooLarge, http.StatusRequestEntityTooLarge, "PDF too large, please shorten or split."},
		{KindInvalidQuestion, http.StatusBadRequest, "Question must be provided."},
		{KindNoDocumentLoaded, http.StatusConflict, "Please upload a PDF first."},
		{KindServerMisconfigured, http.StatusInternalServerError, "Server configuration error: missing GROQ_API_KEY."},
		{KindAnswerGenerationFailed, http.StatusInternalServerError, "We’re having trouble generating an answer. Please try again."},
	}

	for _, tc := range cases {
		err := New(tc.kind, nil)
		if err.StatusCode != tc.status {
			t.Fatalf("%s: expected status %d, got %d", tc.kind, tc.status, err.StatusCode)
		}
		if err.Message != tc.message {
			t.Fatalf("%s: expected message %q, got %q", tc.kind, tc.message, err.Message)
		}
		if !IsKind(err, tc.kind) {
			t.Fatalf("%s: IsKind returned false", tc.kind)
		}
	}
}

func TestGetStatusCode_UnknownError(t *testing.T) {
	if code := GetStatusCode(stderrors.New("boom")); code != http.StatusInternalServerError {
		t.Fatalf("expected 500 for unknown error, got %d", code)
	}
}

func TestGetMessage_UnknownError(t *testing.T) {
	if msg := GetMessage(stderrors.New("boom")); msg != "Something went wrong, please try again." {
		t.Fatalf("unexpected generic message: %q", msg)
	}
}

func TestUnwrap(t *testing.T) {
	cause := stderrors.New("connection refused")
	err := NewAnswerGenerationFailed(cause)

	if !stderrors.Is(err, cause) {
		t.Fatalf("expected wrapped cause to be reachable via errors.Is")
	}
	// The cause never leaks into the user-facing message.
	if GetMessage(err) != "We’re having trouble generating an answer. Please try again." {
		t.Fatalf("unexpected message: %q", GetMessage(err))
	}
}
