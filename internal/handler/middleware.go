package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/TechMaverickHub/100x-LLM-week2-pdf-chatbot/internal/domain"
)

// RequestLogger tags every request with an ID and logs method, path, and
// latency once the handler returns.
func RequestLogger(logger domain.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := uuid.NewString()
			w.Header().Set("X-Request-ID", requestID)

			start := time.Now()
			next.ServeHTTP(w, r)

			logger.Info("request handled",
				"request_id", requestID,
				"method", r.Method,
				"path", r.URL.Path,
				"duration_ms", time.Since(start).Milliseconds())
		})
	}
}
