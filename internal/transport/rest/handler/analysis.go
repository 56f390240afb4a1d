package handler

import (
	"net/http"

	"careinspect/internal/service"
)

// AnalysisHandler runs the question-bank regulatory analysis.
type AnalysisHandler struct {
	analyzerSvc *service.AnalyzerService
}

// NewAnalysisHandler creates a new analysis handler.
func NewAnalysisHandler(analyzerSvc *service.AnalyzerService) *AnalysisHandler {
	return &AnalysisHandler{analyzerSvc: analyzerSvc}
}

// Analyze handles POST /v1/analysis/questions
func (h *AnalysisHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	result, err := h.analyzerSvc.Analyze(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, result)
}
