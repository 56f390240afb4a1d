package rest

import (
	"net/http"
	"os"

	"github.com/gorilla/mux"

	"careinspect/internal/bank"
	"careinspect/internal/service"
	"careinspect/internal/transport/rest/handler"
)

// Container holds all dependencies for the router
type Container struct {
	InspectionService *service.InspectionService
	AuditService      *service.AuditService
	ReportService     *service.ReportService
	AnalyzerService   *service.AnalyzerService
	Bank              *bank.Bank
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	// Initialize handlers
	inspectionHandler := handler.NewInspectionHandler(c.InspectionService, c.ReportService)
	auditHandler := handler.NewAuditHandler(c.AuditService, c.ReportService)
	bankHandler := handler.NewBankHandler(c.Bank)
	analysisHandler := handler.NewAnalysisHandler(c.AnalyzerService)

	// CORS middleware (apply first)
	r.Use(corsMiddleware)

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// API v1 routes
	v1 := r.PathPrefix("/v1").Subrouter()

	// Question banks
	v1.HandleFunc("/sections", bankHandler.Sections).Methods("GET", "OPTIONS")
	v1.HandleFunc("/sections/closing", bankHandler.ClosingQuestions).Methods("GET", "OPTIONS")
	v1.HandleFunc("/audit-sections", bankHandler.AuditSections).Methods("GET", "OPTIONS")

	// Question-bank analysis
	v1.HandleFunc("/analysis/questions", analysisHandler.Analyze).Methods("POST", "OPTIONS")

	// Open-ended inspection flow
	v1.HandleFunc("/inspections", inspectionHandler.Create).Methods("POST", "OPTIONS")
	v1.HandleFunc("/inspections/{id}", inspectionHandler.Get).Methods("GET", "OPTIONS")
	v1.HandleFunc("/inspections/{id}/setup", inspectionHandler.UpdateSetup).Methods("PUT", "OPTIONS")
	v1.HandleFunc("/inspections/{id}/start", inspectionHandler.Start).Methods("POST", "OPTIONS")
	v1.HandleFunc("/inspections/{id}/sections/{sectionId}", inspectionHandler.SaveSection).Methods("PUT", "OPTIONS")
	v1.HandleFunc("/inspections/{id}/sections/{sectionId}/quotes", inspectionHandler.AddQuote).Methods("POST", "OPTIONS")
	v1.HandleFunc("/inspections/{id}/sections/{sectionId}/quotes/{index}", inspectionHandler.RemoveQuote).Methods("DELETE", "OPTIONS")
	v1.HandleFunc("/inspections/{id}/actions", inspectionHandler.AddAction).Methods("POST", "OPTIONS")
	v1.HandleFunc("/inspections/{id}/actions/{actionId}", inspectionHandler.RemoveAction).Methods("DELETE", "OPTIONS")
	v1.HandleFunc("/inspections/{id}/next", inspectionHandler.Next).Methods("POST", "OPTIONS")
	v1.HandleFunc("/inspections/{id}/previous", inspectionHandler.Previous).Methods("POST", "OPTIONS")
	v1.HandleFunc("/inspections/{id}/goto", inspectionHandler.Goto).Methods("POST", "OPTIONS")
	v1.HandleFunc("/inspections/{id}/progress", inspectionHandler.Progress).Methods("GET", "OPTIONS")
	v1.HandleFunc("/inspections/{id}/reset", inspectionHandler.Reset).Methods("POST", "OPTIONS")
	v1.HandleFunc("/inspections/{id}/report", inspectionHandler.Report).Methods("GET", "OPTIONS")

	// Compliance-audit flow
	v1.HandleFunc("/audits", auditHandler.Create).Methods("POST", "OPTIONS")
	v1.HandleFunc("/audits/{id}", auditHandler.Get).Methods("GET", "OPTIONS")
	v1.HandleFunc("/audits/{id}/setup", auditHandler.UpdateSetup).Methods("PUT", "OPTIONS")
	v1.HandleFunc("/audits/{id}/setup/save", auditHandler.SaveSetup).Methods("POST", "OPTIONS")
	v1.HandleFunc("/audits/{id}/start", auditHandler.Start).Methods("POST", "OPTIONS")
	v1.HandleFunc("/audits/{id}/visit-details", auditHandler.UpdateVisitDetails).Methods("PUT", "OPTIONS")
	v1.HandleFunc("/audits/{id}/visit-details/save", auditHandler.SaveVisitDetails).Methods("POST", "OPTIONS")
	v1.HandleFunc("/audits/{id}/sections/{sectionId}/answers/{questionId}", auditHandler.UpdateAnswer).Methods("PUT", "OPTIONS")
	v1.HandleFunc("/audits/{id}/sections/{sectionId}/narrative", auditHandler.UpdateNarrative).Methods("PUT", "OPTIONS")
	v1.HandleFunc("/audits/{id}/sections/{sectionId}/save-score", auditHandler.SaveScore).Methods("POST", "OPTIONS")
	v1.HandleFunc("/audits/{id}/sections/{sectionId}/save-narrative", auditHandler.SaveNarrative).Methods("POST", "OPTIONS")
	v1.HandleFunc("/audits/{id}/next", auditHandler.Next).Methods("POST", "OPTIONS")
	v1.HandleFunc("/audits/{id}/previous", auditHandler.Previous).Methods("POST", "OPTIONS")
	v1.HandleFunc("/audits/{id}/goto", auditHandler.Goto).Methods("POST", "OPTIONS")
	v1.HandleFunc("/audits/{id}/reset", auditHandler.Reset).Methods("POST", "OPTIONS")
	v1.HandleFunc("/audits/{id}/report", auditHandler.Report).Methods("GET", "OPTIONS")

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowedOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
		if allowedOrigins == "" {
			allowedOrigins = "*"
		}

		allowedMethods := os.Getenv("CORS_ALLOWED_METHODS")
		if allowedMethods == "" {
			allowedMethods = "GET, POST, PUT, DELETE, OPTIONS"
		}

		allowedHeaders := os.Getenv("CORS_ALLOWED_HEADERS")
		if allowedHeaders == "" {
			allowedHeaders = "Content-Type, Authorization"
		}

		w.Header().Set("Access-Control-Allow-Origin", allowedOrigins)
		w.Header().Set("Access-Control-Allow-Methods", allowedMethods)
		w.Header().Set("Access-Control-Allow-Headers", allowedHeaders)

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
