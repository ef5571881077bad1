package handler

import (
	"encoding/json"
	"net/http"

	apperrors "github.com/TechMaverickHub/100x-LLM-week2-pdf-chatbot/pkg/errors"
)

// response is the uniform envelope every endpoint returns. Errors carry a
// null data field; the shape is otherwise identical to a success.
type response struct {
	Data       interface{} `json:"data"`
	Message    string      `json:"message"`
	StatusCode int         `json:"status_code"`
}

// writeJSON writes the uniform response envelope (helper function)
func writeJSON(w http.ResponseWriter, statusCode int, message string, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(response{
		Data:       data,
		Message:    message,
		StatusCode: statusCode,
	})
}

// writeError maps an error to its status code and fixed message and writes
// the envelope with null data
func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, apperrors.GetStatusCode(err), apperrors.GetMessage(err), nil)
}
