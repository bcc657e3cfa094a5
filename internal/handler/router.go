package handler

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

// NewRouter creates a new HTTP router with all routes configured
func NewRouter(pdfHandler *PDFHandler, allowedOrigins []string, middlewares ...mux.MiddlewareFunc) http.Handler {
	router := mux.NewRouter()
	router.Use(middlewares...)

	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok","service":"pdf-intake"}`))
	}).Methods("GET")

	// Browser UI
	router.HandleFunc("/", pdfHandler.ShowUploadForm).Methods("GET")
	router.HandleFunc("/", pdfHandler.SubmitUploadForm).Methods("POST")

	api := router.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/extract", pdfHandler.ExtractPDF).Methods("POST")

	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Accept",
			"Content-Type",
			"X-Request-ID",
		},
		ExposedHeaders: []string{
			"X-Request-ID",
		},
		MaxAge: 300, // Maximum value not ignored by any of major browsers
	})

	return c.Handler(router)
}
