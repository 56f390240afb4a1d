package handler

import (
	"net/http"

	"careinspect/internal/bank"
	"careinspect/internal/model"
)

// BankHandler serves the read-only question banks.
type BankHandler struct {
	bank *bank.Bank
}

// NewBankHandler creates a new bank handler.
func NewBankHandler(b *bank.Bank) *BankHandler {
	return &BankHandler{bank: b}
}

// Sections handles GET /v1/sections
func (h *BankHandler) Sections(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"sections":         h.bank.InspectionSections(),
		"closingQuestions": h.bank.ClosingQuestions(),
	})
}

// ClosingQuestions handles GET /v1/sections/closing
func (h *BankHandler) ClosingQuestions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"closingQuestions": h.bank.ClosingQuestions(),
	})
}

// AuditSections handles GET /v1/audit-sections?country=
func (h *BankHandler) AuditSections(w http.ResponseWriter, r *http.Request) {
	country := model.Country(r.URL.Query().Get("country"))
	if !country.Valid() {
		writeError(w, http.StatusBadRequest, "unknown country")
		return
	}
	sections := h.bank.AuditSections(country)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"sections":      sections,
		"totalMaxScore": bank.TotalMaxScore(sections),
	})
}
