package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"careinspect/internal/model"
	"careinspect/internal/service"
)

// InspectionHandler handles the open-ended inspection endpoints.
type InspectionHandler struct {
	inspectionSvc *service.InspectionService
	reportSvc     *service.ReportService
}

// NewInspectionHandler creates a new inspection handler.
func NewInspectionHandler(inspectionSvc *service.InspectionService, reportSvc *service.ReportService) *InspectionHandler {
	return &InspectionHandler{
		inspectionSvc: inspectionSvc,
		reportSvc:     reportSvc,
	}
}

// Create handles POST /v1/inspections
func (h *InspectionHandler) Create(w http.ResponseWriter, r *http.Request) {
	sess, err := h.inspectionSvc.Create(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, sess)
}

// Get handles GET /v1/inspections/{id}
func (h *InspectionHandler) Get(w http.ResponseWriter, r *http.Request) {
	sess, err := h.inspectionSvc.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sess)
}

// UpdateSetup handles PUT /v1/inspections/{id}/setup
func (h *InspectionHandler) UpdateSetup(w http.ResponseWriter, r *http.Request) {
	var req model.InspectionSetup
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	sess, err := h.inspectionSvc.UpdateSetup(r.Context(), mux.Vars(r)["id"], req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sess)
}

// Start handles POST /v1/inspections/{id}/start
func (h *InspectionHandler) Start(w http.ResponseWriter, r *http.Request) {
	sess, err := h.inspectionSvc.Start(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sess)
}

// SaveSection handles PUT /v1/inspections/{id}/sections/{sectionId}
func (h *InspectionHandler) SaveSection(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	var req service.SectionResponseUpdate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	sess, err := h.inspectionSvc.SaveSection(r.Context(), vars["id"], vars["sectionId"], req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sess)
}

// AddQuote handles POST /v1/inspections/{id}/sections/{sectionId}/quotes
func (h *InspectionHandler) AddQuote(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	var req model.Quote
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	sess, err := h.inspectionSvc.AddQuote(r.Context(), vars["id"], vars["sectionId"], req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sess)
}

// RemoveQuote handles DELETE /v1/inspections/{id}/sections/{sectionId}/quotes/{index}
func (h *InspectionHandler) RemoveQuote(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	index, err := strconv.Atoi(vars["index"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid quote index")
		return
	}
	sess, err := h.inspectionSvc.RemoveQuote(r.Context(), vars["id"], vars["sectionId"], index)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sess)
}

// AddAction handles POST /v1/inspections/{id}/actions
func (h *InspectionHandler) AddAction(w http.ResponseWriter, r *http.Request) {
	var req model.Action
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	sess, err := h.inspectionSvc.AddAction(r.Context(), mux.Vars(r)["id"], req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sess)
}

// RemoveAction handles DELETE /v1/inspections/{id}/actions/{actionId}
func (h *InspectionHandler) RemoveAction(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	sess, err := h.inspectionSvc.RemoveAction(r.Context(), vars["id"], vars["actionId"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sess)
}

// Next handles POST /v1/inspections/{id}/next
func (h *InspectionHandler) Next(w http.ResponseWriter, r *http.Request) {
	sess, err := h.inspectionSvc.Next(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sess)
}

// Previous handles POST /v1/inspections/{id}/previous
func (h *InspectionHandler) Previous(w http.ResponseWriter, r *http.Request) {
	sess, err := h.inspectionSvc.Previous(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sess)
}

// Goto handles POST /v1/inspections/{id}/goto
func (h *InspectionHandler) Goto(w http.ResponseWriter, r *http.Request) {
	var req GotoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	sess, err := h.inspectionSvc.Goto(r.Context(), mux.Vars(r)["id"], req.Index)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sess)
}

// Progress handles GET /v1/inspections/{id}/progress
func (h *InspectionHandler) Progress(w http.ResponseWriter, r *http.Request) {
	pct, err := h.inspectionSvc.Progress(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]float64{"progress": pct})
}

// Reset handles POST /v1/inspections/{id}/reset
func (h *InspectionHandler) Reset(w http.ResponseWriter, r *http.Request) {
	sess, err := h.inspectionSvc.Reset(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sess)
}

// Report handles GET /v1/inspections/{id}/report
func (h *InspectionHandler) Report(w http.ResponseWriter, r *http.Request) {
	sess, err := h.inspectionSvc.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, h.reportSvc.AssembleInspection(sess))
}
