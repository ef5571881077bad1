package domain

import "context"

// TextExtractor extracts ordered per-page text from a raw PDF.
type TextExtractor interface {
	ExtractPages(data []byte) ([]string, error)
}

// DocumentStore holds the single active document for the process lifetime.
type DocumentStore interface {
	Set(text string)
	Get() (text string, ok bool)
}

// ChatCompleter sends one system+user exchange to the hosted model and
// returns the raw completion text.
type ChatCompleter interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// IngestService validates an uploaded PDF and stores its extracted text.
type IngestService interface {
	Ingest(filename, contentType string, data []byte) error
}

// AskService answers a question strictly from the stored document.
type AskService interface {
	Ask(ctx context.Context, question string) (string, error)
}

// Logger defines the interface for logging operations
type Logger interface {
	Info(msg string, fields ...interface{})
	Error(msg string, err error, fields ...interface{})
	Debug(msg string, fields ...interface{})
	Warn(msg string, fields ...interface{})
}

// Config defines the interface for configuration management
type Config interface {
	GetServerPort() string
	GetLogLevel() string
	GetGroqAPIKey() string
	GetGroqBaseURL() string
	GetGroqModel() string
	GetMaxContextTokens() int
	GetCharsPerToken() int
	GetMaxUploadSize() int64
}
