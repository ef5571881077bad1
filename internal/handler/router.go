package handler

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/TechMaverickHub/100x-LLM-week2-pdf-chatbot/internal/domain"
)

const (
	serviceName    = "pdf-grounded-chatbot"
	serviceVersion = "0.1.0"
)

// NewRouter creates a new HTTP router with all routes configured
func NewRouter(pdfHandler *PDFHandler, askHandler *AskHandler, logger domain.Logger) http.Handler {
	router := mux.NewRouter()
	router.Use(RequestLogger(logger))

	router.HandleFunc("/", Health).Methods("GET")
	router.HandleFunc("/upload-pdf", pdfHandler.UploadPDF).Methods("POST")
	router.HandleFunc("/ask", askHandler.Ask).Methods("POST")

	// Configure CORS
	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Accept",
			"Content-Type",
		},
		MaxAge: 300, // Maximum value not ignored by any of major browsers
	})

	return c.Handler(router)
}

// Health handles GET / with the service health payload
func Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, domain.MsgAPIHealthy, domain.HealthStatus{
		Status:  "ok",
		Service: serviceName,
		Version: serviceVersion,
	})
}
