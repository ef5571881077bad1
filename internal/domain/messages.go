package domain

// User-facing success messages. Error messages live in pkg/errors next to
// their status codes.
const (
	MsgAPIHealthy      = "PDF-Grounded Chatbot API is healthy."
	MsgPDFProcessed    = "PDF processed successfully."
	MsgAnswerGenerated = "Answer generated successfully."
)
