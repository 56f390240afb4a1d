package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"careinspect/internal/model"
	"careinspect/internal/service"
)

// AuditHandler handles the compliance-audit endpoints.
type AuditHandler struct {
	auditSvc  *service.AuditService
	reportSvc *service.ReportService
}

// NewAuditHandler creates a new audit handler.
func NewAuditHandler(auditSvc *service.AuditService, reportSvc *service.ReportService) *AuditHandler {
	return &AuditHandler{
		auditSvc:  auditSvc,
		reportSvc: reportSvc,
	}
}

// AnswerRequest is the request body for answering one yes/no question.
// Answer carries the wire shape true, false, or null.
type AnswerRequest struct {
	Answer model.Answer `json:"answer"`
}

// NarrativeRequest is the request body for editing a section narrative.
type NarrativeRequest struct {
	Narrative string `json:"narrative"`
}

// NextRequest is the request body for advancing a step. SaveNarrative
// defaults to true; clients set it false to continue without saving.
type NextRequest struct {
	SaveNarrative *bool `json:"saveNarrative"`
}

// Create handles POST /v1/audits
func (h *AuditHandler) Create(w http.ResponseWriter, r *http.Request) {
	sess, err := h.auditSvc.Create(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, sess)
}

// Get handles GET /v1/audits/{id}
func (h *AuditHandler) Get(w http.ResponseWriter, r *http.Request) {
	sess, err := h.auditSvc.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sess)
}

// UpdateSetup handles PUT /v1/audits/{id}/setup
func (h *AuditHandler) UpdateSetup(w http.ResponseWriter, r *http.Request) {
	var req service.AuditSetupUpdate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	sess, err := h.auditSvc.UpdateSetup(r.Context(), mux.Vars(r)["id"], req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sess)
}

// SaveSetup handles POST /v1/audits/{id}/setup/save
func (h *AuditHandler) SaveSetup(w http.ResponseWriter, r *http.Request) {
	sess, err := h.auditSvc.SaveSetup(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sess)
}

// Start handles POST /v1/audits/{id}/start
func (h *AuditHandler) Start(w http.ResponseWriter, r *http.Request) {
	sess, err := h.auditSvc.Start(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sess)
}

// UpdateVisitDetails handles PUT /v1/audits/{id}/visit-details
func (h *AuditHandler) UpdateVisitDetails(w http.ResponseWriter, r *http.Request) {
	var req service.VisitDetailsUpdate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	sess, err := h.auditSvc.UpdateVisitDetails(r.Context(), mux.Vars(r)["id"], req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sess)
}

// SaveVisitDetails handles POST /v1/audits/{id}/visit-details/save
func (h *AuditHandler) SaveVisitDetails(w http.ResponseWriter, r *http.Request) {
	sess, err := h.auditSvc.SaveVisitDetails(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sess)
}

// UpdateAnswer handles PUT /v1/audits/{id}/sections/{sectionId}/answers/{questionId}
func (h *AuditHandler) UpdateAnswer(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	var req AnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	sess, err := h.auditSvc.UpdateAnswer(r.Context(), vars["id"], vars["sectionId"], vars["questionId"], req.Answer)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sess)
}

// UpdateNarrative handles PUT /v1/audits/{id}/sections/{sectionId}/narrative
func (h *AuditHandler) UpdateNarrative(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	var req NarrativeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	sess, err := h.auditSvc.UpdateNarrative(r.Context(), vars["id"], vars["sectionId"], req.Narrative)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sess)
}

// SaveScore handles POST /v1/audits/{id}/sections/{sectionId}/save-score
func (h *AuditHandler) SaveScore(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	sess, err := h.auditSvc.SaveScore(r.Context(), vars["id"], vars["sectionId"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sess)
}

// SaveNarrative handles POST /v1/audits/{id}/sections/{sectionId}/save-narrative
func (h *AuditHandler) SaveNarrative(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	sess, err := h.auditSvc.SaveNarrative(r.Context(), vars["id"], vars["sectionId"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sess)
}

// Next handles POST /v1/audits/{id}/next
func (h *AuditHandler) Next(w http.ResponseWriter, r *http.Request) {
	req := NextRequest{}
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
	}
	saveNarrative := req.SaveNarrative == nil || *req.SaveNarrative
	sess, err := h.auditSvc.Next(r.Context(), mux.Vars(r)["id"], saveNarrative)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sess)
}

// Previous handles POST /v1/audits/{id}/previous
func (h *AuditHandler) Previous(w http.ResponseWriter, r *http.Request) {
	sess, err := h.auditSvc.Previous(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sess)
}

// Goto handles POST /v1/audits/{id}/goto
func (h *AuditHandler) Goto(w http.ResponseWriter, r *http.Request) {
	var req GotoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	sess, err := h.auditSvc.Goto(r.Context(), mux.Vars(r)["id"], req.Index)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sess)
}

// Reset handles POST /v1/audits/{id}/reset
func (h *AuditHandler) Reset(w http.ResponseWriter, r *http.Request) {
	sess, err := h.auditSvc.Reset(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sess)
}

// Report handles GET /v1/audits/{id}/report
func (h *AuditHandler) Report(w http.ResponseWriter, r *http.Request) {
	sess, err := h.auditSvc.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, h.reportSvc.AssembleAudit(sess))
}
